package dom

import "github.com/oxhq/composer/handle"

// LineBreak is a leaf with text-length 1; renders as a hard break (§3.1).
type LineBreak struct {
	h handle.Handle
}

// NewLineBreak builds a LineBreak node.
func NewLineBreak() *LineBreak { return &LineBreak{} }

func (b *LineBreak) Handle() handle.Handle     { return b.h }
func (b *LineBreak) SetHandle(h handle.Handle) { b.h = h }
func (b *LineBreak) Type() NodeType            { return NodeLineBreak }
func (b *LineBreak) TextLen() int              { return 1 }
func (b *LineBreak) Clone() Node               { return &LineBreak{h: b.h} }

// Mention is an opaque atomic inline leaf with text-length 1, carrying a URI
// classification and a display string (§3.1, §4.J).
type Mention struct {
	MentionKind MentionKind
	URI         string
	Display     string

	h handle.Handle
}

// NewMention builds a Mention node.
func NewMention(kind MentionKind, uri, display string) *Mention {
	return &Mention{MentionKind: kind, URI: uri, Display: display}
}

func (m *Mention) Handle() handle.Handle     { return m.h }
func (m *Mention) SetHandle(h handle.Handle) { m.h = h }
func (m *Mention) Type() NodeType            { return NodeMention }
func (m *Mention) TextLen() int              { return 1 }
func (m *Mention) Clone() Node {
	return &Mention{MentionKind: m.MentionKind, URI: m.URI, Display: m.Display, h: m.h}
}

// IsAtRoom reports whether this mention is the special "@room" mention,
// which renders with href="#" rather than a matrix: URI (§4.E.1).
func (m *Mention) IsAtRoom() bool { return m.MentionKind == MentionAtRoom }
