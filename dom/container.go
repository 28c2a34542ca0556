package dom

import "github.com/oxhq/composer/handle"

// Container is a node that owns children: Generic, Paragraph, List,
// ListItem, CodeBlock, Quote, Formatting(*), or Link (§3.1).
type Container struct {
	Kind     ContainerKind
	Children []Node
	// LinkURL holds the href when Kind == KindLink; unused otherwise.
	LinkURL string

	h handle.Handle
}

// NewContainer builds an empty container of the given kind.
func NewContainer(kind ContainerKind) *Container {
	return &Container{Kind: kind}
}

// NewLink builds an empty Link container with the given URL.
func NewLink(url string, children ...Node) *Container {
	return &Container{Kind: KindLink, LinkURL: url, Children: children}
}

func (c *Container) Handle() handle.Handle     { return c.h }
func (c *Container) SetHandle(h handle.Handle) { c.h = h }
func (c *Container) Type() NodeType            { return NodeContainer }

// TextLen sums children's text lengths, plus one implicit newline per
// sibling gap when the children are block-level (§3.3).
func (c *Container) TextLen() int {
	n := 0
	for _, child := range c.Children {
		n += child.TextLen()
	}
	if len(c.Children) > 1 && IsBlockNode(c.Children[0]) {
		n += len(c.Children) - 1
	}
	return n
}

// IsBlock reports whether this container's own kind is block-level.
func (c *Container) IsBlock() bool { return c.Kind.IsBlock() }

// ChildrenAreBlock reports whether this container's children are block-level
// (invariant 4: a container's children are either all block or all inline).
// Returns false for an empty container (vacuously inline).
func (c *Container) ChildrenAreBlock() bool {
	return len(c.Children) > 0 && IsBlockNode(c.Children[0])
}

// Clone deep-copies the container and all descendants, preserving handles.
func (c *Container) Clone() Node {
	children := make([]Node, len(c.Children))
	for i, ch := range c.Children {
		children[i] = ch.Clone()
	}
	return &Container{Kind: c.Kind, Children: children, LinkURL: c.LinkURL, h: c.h}
}

// SetChildrenRestamped replaces the children slice and re-stamps every
// descendant's handle to match its new tree position (§3.5: "Structural
// mutation methods re-stamp handles of affected descendants").
func (c *Container) SetChildrenRestamped(children []Node) {
	c.Children = children
	c.restampChildren()
}

func (c *Container) restampChildren() {
	for i, child := range c.Children {
		RestampSubtree(child, c.h.Child(i))
	}
}

// RestampSubtree sets n's handle to h and, if n is a container, cascades to
// every descendant so embedded handles always match tree position
// (invariant 5).
func RestampSubtree(n Node, h handle.Handle) {
	n.SetHandle(h)
	if c, ok := n.(*Container); ok {
		for i, child := range c.Children {
			RestampSubtree(child, h.Child(i))
		}
	}
}
