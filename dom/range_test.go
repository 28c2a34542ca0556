package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRangeCollapsed(t *testing.T) {
	d := twoParagraphDoc()
	r := FindRange(d, 2, 2)
	assert.False(t, r.IsSelection())
	loc, ok := r.PreferredCaretLeaf()
	require.True(t, ok)
	assert.Equal(t, "Hello", loc.Node.(*Text).Content.String())
}

func TestFindRangeSelection(t *testing.T) {
	d := twoParagraphDoc()
	r := FindRange(d, 2, 8)
	assert.True(t, r.IsSelection())
	leaves := r.Leaves()
	require.NotEmpty(t, leaves)

	loc, ok := r.PreferredCaretLeaf()
	require.True(t, ok)
	// non-empty selection prefers the last leaf
	assert.Equal(t, leaves[len(leaves)-1].NodeHandle, loc.NodeHandle)
}

func TestPreferredCaretLeafPrefersPrecedingLeafAtBoundary(t *testing.T) {
	d := twoParagraphDoc()
	// position 5 sits exactly at the boundary between "Hello" and the gap
	r := FindRange(d, 5, 5)
	loc, ok := r.PreferredCaretLeaf()
	require.True(t, ok)
	assert.Equal(t, "Hello", loc.Node.(*Text).Content.String())
}

func TestSharedParentOutside(t *testing.T) {
	d := twoParagraphDoc()
	r := FindRange(d, 2, 8)
	shared := r.SharedParentOutside()
	assert.True(t, shared.IsRoot())
}
