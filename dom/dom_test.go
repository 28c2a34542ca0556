package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/composer/handle"
	"github.com/oxhq/composer/ustring"
)

func twoParagraphDoc() *Dom {
	d := New(ustring.U16)
	p1 := NewContainer(KindParagraph)
	p1.Children = []Node{NewText(ustring.U16, "Hello")}
	p2 := NewContainer(KindParagraph)
	p2.Children = []Node{NewText(ustring.U16, "World")}
	_ = d.AppendAtEndOfDocument(p1)
	_ = d.AppendAtEndOfDocument(p2)
	return d
}

func TestTextLenCountsBlockGaps(t *testing.T) {
	d := twoParagraphDoc()
	// "Hello" (5) + gap (1) + "World" (5) = 11
	assert.Equal(t, 11, d.TextLen())
}

func TestLookupAndPositionOf(t *testing.T) {
	d := twoParagraphDoc()
	h := handle.Root().Child(1)
	n, err := d.Lookup(h)
	require.NoError(t, err)
	c, ok := n.(*Container)
	require.True(t, ok)
	assert.Equal(t, "World", c.Children[0].(*Text).Content.String())

	pos, err := d.PositionOf(h)
	require.NoError(t, err)
	assert.Equal(t, 6, pos)
}

func TestInsertAtAndRemove(t *testing.T) {
	d := twoParagraphDoc()
	p3 := NewContainer(KindParagraph)
	p3.Children = []Node{NewText(ustring.U16, "Mid")}

	require.NoError(t, d.InsertAt(handle.Root().Child(1), p3))
	assert.Equal(t, 3, len(d.Root.Children))
	assert.Equal(t, "Mid", d.Root.Children[1].(*Container).Children[0].(*Text).Content.String())

	removed, err := d.Remove(handle.Root().Child(1))
	require.NoError(t, err)
	assert.Equal(t, p3, removed)
	assert.Equal(t, 2, len(d.Root.Children))
	// remaining siblings re-stamped
	assert.True(t, d.Root.Children[1].Handle().Equal(handle.Root().Child(1)))
}

func TestReplace(t *testing.T) {
	d := twoParagraphDoc()
	a := NewContainer(KindParagraph)
	a.Children = []Node{NewText(ustring.U16, "A")}
	b := NewContainer(KindParagraph)
	b.Children = []Node{NewText(ustring.U16, "B")}

	require.NoError(t, d.Replace(handle.Root().Child(0), []Node{a, b}))
	assert.Equal(t, 3, len(d.Root.Children))
	assert.Equal(t, "A", d.Root.Children[0].(*Container).Children[0].(*Text).Content.String())
	assert.Equal(t, "World", d.Root.Children[2].(*Container).Children[0].(*Text).Content.String())
}

func TestIterAndIterReverse(t *testing.T) {
	d := twoParagraphDoc()
	all := d.Iter()
	assert.Equal(t, d.Root, all[0])

	rev := d.IterReverse()
	assert.Equal(t, all[len(all)-1], rev[0])
}

func TestSplitSubTreeFromMidText(t *testing.T) {
	d := twoParagraphDoc()
	tail, err := d.SplitSubTreeFrom(handle.Root(), 2, 0)
	require.NoError(t, err)

	assert.Equal(t, "He", d.Root.Children[0].(*Container).Children[0].(*Text).Content.String())
	// tail starts with remainder of "Hello" then the "World" paragraph
	assert.Equal(t, "llo", tail.Children[0].(*Container).Children[0].(*Text).Content.String())
	assert.Equal(t, "World", tail.Children[1].(*Container).Children[0].(*Text).Content.String())
}

func TestSplitSubTreeBetween(t *testing.T) {
	d := twoParagraphDoc()
	rootH := handle.Root()
	middle, err := d.SplitSubTreeBetween(rootH, 2, rootH, 9, 0)
	require.NoError(t, err)

	// remaining document: "He" + "ld"
	assert.Equal(t, 5, d.TextLen())
	// middle fragment: "llo" gap "Wor"
	assert.NotNil(t, middle)
}
