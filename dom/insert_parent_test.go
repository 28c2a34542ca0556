package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boldParent() *Container { return NewContainer(KindFormatBold) }

func TestInsertParentOverRangeWholeLeaf(t *testing.T) {
	d := twoParagraphDoc()
	r := FindRange(d, 0, 5) // whole "Hello"
	require.NoError(t, InsertParentOverRange(d, r, boldParent))

	p := d.Root.Children[0].(*Container)
	require.Len(t, p.Children, 1)
	bold := p.Children[0].(*Container)
	assert.Equal(t, KindFormatBold, bold.Kind)
	assert.Equal(t, "Hello", bold.Children[0].(*Text).Content.String())
}

func TestInsertParentOverRangePartialLeafSplitsThree(t *testing.T) {
	d := twoParagraphDoc()
	r := FindRange(d, 1, 3) // "el" inside "Hello"
	require.NoError(t, InsertParentOverRange(d, r, boldParent))

	p := d.Root.Children[0].(*Container)
	require.Len(t, p.Children, 3)
	assert.Equal(t, "H", p.Children[0].(*Text).Content.String())
	bold := p.Children[1].(*Container)
	assert.Equal(t, KindFormatBold, bold.Kind)
	assert.Equal(t, "el", bold.Children[0].(*Text).Content.String())
	assert.Equal(t, "lo", p.Children[2].(*Text).Content.String())
}
