package dom

import (
	"github.com/oxhq/composer/handle"
	"github.com/oxhq/composer/ustring"
)

// Text is a leaf node carrying an owned Unicode string. Never empty
// (invariant 1) once attached to a live tree — callers constructing
// transient fragments may briefly hold an empty one before normalization.
type Text struct {
	Content ustring.String
	h       handle.Handle
}

// NewText builds a Text node from a Go string in the given code-unit width.
func NewText(w ustring.Width, s string) *Text {
	return &Text{Content: ustring.New(w, s)}
}

// NewTextFrom wraps an already-built ustring.String.
func NewTextFrom(s ustring.String) *Text {
	return &Text{Content: s}
}

func (t *Text) Handle() handle.Handle     { return t.h }
func (t *Text) SetHandle(h handle.Handle) { t.h = h }
func (t *Text) Type() NodeType            { return NodeText }
func (t *Text) TextLen() int              { return t.Content.Len() }

func (t *Text) Clone() Node {
	return &Text{Content: t.Content.Slice(0, t.Content.Len()), h: t.h}
}

// IsEmpty reports whether this text node carries zero code units.
func (t *Text) IsEmpty() bool { return t.Content.IsEmpty() }
