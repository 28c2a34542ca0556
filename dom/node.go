// Package dom implements the document tree (component C), its node kinds
// (§3.1), and the range resolver (component D, §4.D). The tree is a typed
// heterogeneous structure addressed by handle.Handle paths rather than
// pointers, per the "no inherited behavior... prefer exhaustive matching
// over virtual dispatch" design note: Node is a small interface and callers
// type-switch on the concrete node kinds rather than relying on dynamic
// dispatch for behavior that differs per kind.
package dom

import (
	"github.com/oxhq/composer/handle"
)

// NodeType distinguishes the broad shape of a node: does it hold children,
// or is it a leaf of one specific flavor.
type NodeType int

const (
	NodeContainer NodeType = iota
	NodeText
	NodeLineBreak
	NodeMention
)

// ContainerKind is the subkind of a Container node (§3.1).
type ContainerKind int

const (
	KindGeneric ContainerKind = iota
	KindParagraph
	KindListOrdered
	KindListUnordered
	KindListItem
	KindCodeBlock
	KindQuote
	KindFormatBold
	KindFormatItalic
	KindFormatUnderline
	KindFormatStrikeThrough
	KindFormatInlineCode
	KindLink
)

func (k ContainerKind) String() string {
	switch k {
	case KindGeneric:
		return "Generic"
	case KindParagraph:
		return "Paragraph"
	case KindListOrdered:
		return "ListOrdered"
	case KindListUnordered:
		return "ListUnordered"
	case KindListItem:
		return "ListItem"
	case KindCodeBlock:
		return "CodeBlock"
	case KindQuote:
		return "Quote"
	case KindFormatBold:
		return "Bold"
	case KindFormatItalic:
		return "Italic"
	case KindFormatUnderline:
		return "Underline"
	case KindFormatStrikeThrough:
		return "StrikeThrough"
	case KindFormatInlineCode:
		return "InlineCode"
	case KindLink:
		return "Link"
	default:
		return "Unknown"
	}
}

// IsBlock reports whether a container of this kind is a block node
// (GLOSSARY: Paragraph, List, ListItem, CodeBlock, Quote, Generic).
func (k ContainerKind) IsBlock() bool {
	switch k {
	case KindGeneric, KindParagraph, KindListOrdered, KindListUnordered,
		KindListItem, KindCodeBlock, KindQuote:
		return true
	default:
		return false
	}
}

// IsFormatting reports whether this kind is one of the inline Formatting
// subkinds (Bold/Italic/Underline/StrikeThrough/InlineCode).
func (k ContainerKind) IsFormatting() bool {
	switch k {
	case KindFormatBold, KindFormatItalic, KindFormatUnderline,
		KindFormatStrikeThrough, KindFormatInlineCode:
		return true
	default:
		return false
	}
}

// IsList reports whether this kind is an ordered or unordered list.
func (k ContainerKind) IsList() bool {
	return k == KindListOrdered || k == KindListUnordered
}

// MentionKind classifies a Mention's URI (§3.1, §4.J).
type MentionKind int

const (
	MentionUser MentionKind = iota
	MentionRoomID
	MentionRoomAlias
	MentionAtRoom
)

// Node is implemented by every node variant: Container, Text, LineBreak,
// Mention.
type Node interface {
	Handle() handle.Handle
	SetHandle(h handle.Handle)
	// TextLen returns the node's contribution to the linear document length
	// in code units (§3.3).
	TextLen() int
	// Type reports which concrete variant this node is.
	Type() NodeType
	// Clone returns a deep, independently-owned copy with the same handle.
	Clone() Node
}

// IsBlockNode reports whether n is a block node per the GLOSSARY. Only
// Container nodes can be block; all leaves are inline.
func IsBlockNode(n Node) bool {
	c, ok := n.(*Container)
	if !ok {
		return false
	}
	return c.Kind.IsBlock()
}

// IsLeaf reports whether n has no children (Text, LineBreak, Mention, or an
// empty Container).
func IsLeaf(n Node) bool {
	c, ok := n.(*Container)
	if !ok {
		return true
	}
	return len(c.Children) == 0
}
