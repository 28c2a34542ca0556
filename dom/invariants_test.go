package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxhq/composer/ustring"
)

func TestAssertInvariantsOnWellFormedDoc(t *testing.T) {
	d := twoParagraphDoc()
	assert.NoError(t, AssertInvariants(d))
}

func TestAssertInvariantsCatchesEmptyTextNode(t *testing.T) {
	d := New(ustring.U16)
	p := NewContainer(KindParagraph)
	p.Children = []Node{NewTextFrom(ustring.New(ustring.U16, ""))}
	_ = d.AppendAtEndOfDocument(p)

	err := AssertInvariants(d)
	assert.ErrorIs(t, err, ErrEmptyTextNode)
}

func TestAssertInvariantsCatchesAdjacentTextNodes(t *testing.T) {
	d := New(ustring.U16)
	p := NewContainer(KindParagraph)
	p.Children = []Node{NewText(ustring.U16, "a"), NewText(ustring.U16, "b")}
	_ = d.AppendAtEndOfDocument(p)

	err := AssertInvariants(d)
	assert.ErrorIs(t, err, ErrAdjacentTextNodes)
}

func TestAssertInvariantsCatchesMixedChildKinds(t *testing.T) {
	d := New(ustring.U16)
	p := NewContainer(KindParagraph)
	inline := NewContainer(KindFormatBold)
	inline.Children = []Node{NewText(ustring.U16, "a")}
	p.Children = []Node{inline, NewText(ustring.U16, "b")}
	another := NewContainer(KindParagraph)
	another.Children = []Node{NewText(ustring.U16, "c")}
	p.Children = append(p.Children, another)
	_ = d.AppendAtEndOfDocument(p)

	err := AssertInvariants(d)
	assert.ErrorIs(t, err, ErrMixedChildKinds)
}
