package dom

import (
	"github.com/oxhq/composer/handle"
	"github.com/oxhq/composer/ustring"
)

// Dom owns the document tree: exactly one Generic root (invariant 3). All
// structural mutation happens through its methods, which re-stamp affected
// descendant handles (invariant 5) before returning.
type Dom struct {
	Root  *Container
	Width ustring.Width
}

// New builds an empty document: a Generic root with no children.
func New(w ustring.Width) *Dom {
	root := NewContainer(KindGeneric)
	root.SetHandle(handle.Root())
	return &Dom{Root: root, Width: w}
}

// TextLen returns the document's linear length in code units (§3.3).
func (d *Dom) TextLen() int {
	return d.Root.TextLen()
}

// Lookup returns the node at handle h.
func (d *Dom) Lookup(h handle.Handle) (Node, error) {
	if !h.IsSet() {
		return nil, ErrInvalidHandle
	}
	var cur Node = d.Root
	for _, idx := range h.Path() {
		c, ok := cur.(*Container)
		if !ok {
			return nil, ErrNotAContainer
		}
		if idx < 0 || idx >= len(c.Children) {
			return nil, ErrChildIndexOutOfRange
		}
		cur = c.Children[idx]
	}
	return cur, nil
}

// LookupContainer is Lookup plus a type assertion to *Container.
func (d *Dom) LookupContainer(h handle.Handle) (*Container, error) {
	n, err := d.Lookup(h)
	if err != nil {
		return nil, err
	}
	c, ok := n.(*Container)
	if !ok {
		return nil, ErrNotAContainer
	}
	return c, nil
}

// parentAndIndex resolves h's parent container and h's index within it.
func (d *Dom) parentAndIndex(h handle.Handle) (*Container, int, error) {
	if h.IsRoot() {
		return nil, 0, ErrRootHasNoParent
	}
	idx, ok := h.Index()
	if !ok {
		return nil, 0, ErrInvalidHandle
	}
	parent, err := d.LookupContainer(h.Parent())
	if err != nil {
		return nil, 0, err
	}
	return parent, idx, nil
}

// InsertAt inserts n as a new child, before the sibling position identified
// by h (h's index may equal the parent's current child count to append).
func (d *Dom) InsertAt(h handle.Handle, n Node) error {
	if h.IsRoot() {
		return ErrRootHasNoParent
	}
	idx, ok := h.Index()
	if !ok {
		return ErrInvalidHandle
	}
	parent, err := d.LookupContainer(h.Parent())
	if err != nil {
		return err
	}
	if idx < 0 || idx > len(parent.Children) {
		return ErrChildIndexOutOfRange
	}
	children := make([]Node, 0, len(parent.Children)+1)
	children = append(children, parent.Children[:idx]...)
	children = append(children, n)
	children = append(children, parent.Children[idx:]...)
	parent.SetChildrenRestamped(children)
	return nil
}

// Remove extracts and returns the node at h, re-indexing later siblings.
func (d *Dom) Remove(h handle.Handle) (Node, error) {
	parent, idx, err := d.parentAndIndex(h)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(parent.Children) {
		return nil, ErrChildIndexOutOfRange
	}
	removed := parent.Children[idx]
	children := make([]Node, 0, len(parent.Children)-1)
	children = append(children, parent.Children[:idx]...)
	children = append(children, parent.Children[idx+1:]...)
	parent.SetChildrenRestamped(children)
	return removed, nil
}

// Replace removes the node at h and splices nodes into its place.
func (d *Dom) Replace(h handle.Handle, nodes []Node) error {
	parent, idx, err := d.parentAndIndex(h)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(parent.Children) {
		return ErrChildIndexOutOfRange
	}
	children := make([]Node, 0, len(parent.Children)-1+len(nodes))
	children = append(children, parent.Children[:idx]...)
	children = append(children, nodes...)
	children = append(children, parent.Children[idx+1:]...)
	parent.SetChildrenRestamped(children)
	return nil
}

// AppendAtEndOfDocument appends n as the root's last child.
func (d *Dom) AppendAtEndOfDocument(n Node) error {
	children := append(d.Root.Children, n)
	d.Root.SetChildrenRestamped(children)
	return nil
}

// Iter returns every node in pre-order, root first.
func (d *Dom) Iter() []Node {
	var out []Node
	var walk func(n Node)
	walk = func(n Node) {
		out = append(out, n)
		if c, ok := n.(*Container); ok {
			for _, ch := range c.Children {
				walk(ch)
			}
		}
	}
	walk(d.Root)
	return out
}

// IterFromHandle returns the pre-order sequence starting at (and including)
// the node identified by h.
func (d *Dom) IterFromHandle(h handle.Handle) []Node {
	all := d.Iter()
	for i, n := range all {
		if n.Handle().Equal(h) {
			return all[i:]
		}
	}
	return nil
}

// IterReverse returns every node in reverse pre-order.
func (d *Dom) IterReverse() []Node {
	all := d.Iter()
	out := make([]Node, len(all))
	for i, n := range all {
		out[len(all)-1-i] = n
	}
	return out
}

// WalkPositions visits every node in pre-order along with its start position
// in document code units, using the same child-gap accounting as TextLen.
func (d *Dom) WalkPositions(fn func(n Node, pos int)) {
	var walk func(n Node, pos int) int
	walk = func(n Node, pos int) int {
		fn(n, pos)
		c, ok := n.(*Container)
		if !ok {
			return n.TextLen()
		}
		blockChildren := c.ChildrenAreBlock()
		cur := pos
		total := 0
		for i, child := range c.Children {
			if blockChildren && i > 0 {
				cur++
				total++
			}
			l := walk(child, cur)
			cur += l
			total += l
		}
		return total
	}
	walk(d.Root, 0)
}

// PositionOf returns the document-coordinate start position of the node
// identified by h.
func (d *Dom) PositionOf(h handle.Handle) (int, error) {
	found := -1
	d.WalkPositions(func(n Node, pos int) {
		if found == -1 && n.Handle().Equal(h) {
			found = pos
		}
	})
	if found == -1 {
		return 0, ErrInvalidHandle
	}
	return found, nil
}

// splitNodeAt splits a single node at local code-unit offset localPos,
// returning the (possibly nil) before and after pieces.
func splitNodeAt(n Node, localPos int) (before, after Node) {
	switch v := n.(type) {
	case *Text:
		l := v.Content.Len()
		if localPos <= 0 {
			return nil, v
		}
		if localPos >= l {
			return v, nil
		}
		b := NewTextFrom(v.Content.Slice(0, localPos))
		a := NewTextFrom(v.Content.Slice(localPos, l))
		return b, a
	case *LineBreak:
		if localPos <= 0 {
			return nil, v
		}
		return v, nil
	case *Mention:
		if localPos <= 0 {
			return nil, v
		}
		return v, nil
	case *Container:
		b, a := splitContainerAt(v, localPos)
		var before, after Node
		if len(b.Children) > 0 {
			before = b
		}
		if len(a.Children) > 0 {
			after = a
		}
		return before, after
	default:
		return n, nil
	}
}

// SplitContainerContent splits a container's children at local offset,
// preserving its own Kind on both halves — the building block command code
// uses to split a single Paragraph/ListItem in place (e.g. pressing Enter
// mid-block) without touching the rest of the document.
func SplitContainerContent(c *Container, localOffset int) (before, after *Container) {
	return splitContainerAt(c, localOffset)
}

// splitContainerAt splits a container's children at local position localPos
// (document coordinates relative to the start of this container's own
// content), preserving the implicit block-gap accounting.
func splitContainerAt(c *Container, localPos int) (before, after *Container) {
	blockChildren := c.ChildrenAreBlock()
	var beforeChildren, afterChildren []Node
	pos := 0
	placed := false
	for i, child := range c.Children {
		gap := 0
		if blockChildren && i > 0 {
			gap = 1
		}
		if placed {
			afterChildren = append(afterChildren, child)
			continue
		}
		if localPos < pos+gap {
			afterChildren = append(afterChildren, child)
			placed = true
			pos += gap + child.TextLen()
			continue
		}
		localInChild := localPos - pos - gap
		childLen := child.TextLen()
		if localInChild >= childLen {
			beforeChildren = append(beforeChildren, child)
			pos += gap + childLen
			continue
		}
		cb, ca := splitNodeAt(child, localInChild)
		if cb != nil {
			beforeChildren = append(beforeChildren, cb)
		}
		if ca != nil {
			afterChildren = append(afterChildren, ca)
		}
		placed = true
		pos += gap + childLen
	}
	before = &Container{Kind: c.Kind, LinkURL: c.LinkURL, Children: beforeChildren}
	after = &Container{Kind: c.Kind, LinkURL: c.LinkURL, Children: afterChildren}
	return before, after
}

// SplitSubTreeFrom detaches the portion of the document at and after
// (handle,offset) as a new, independently-owned fragment, mirroring the
// ancestor chain down to the split point (§4.C). depth is accepted for API
// parity with the spec; the implementation always mirrors the full ancestor
// chain and callers that only need a shallower fragment descend into
// fragment.Children themselves.
func (d *Dom) SplitSubTreeFrom(h handle.Handle, offset, depth int) (*Container, error) {
	pos, err := d.PositionOf(h)
	if err != nil {
		return nil, err
	}
	return d.splitAtPosition(pos + offset)
}

func (d *Dom) splitAtPosition(pos int) (*Container, error) {
	if pos < 0 {
		pos = 0
	}
	if pos > d.Root.TextLen() {
		pos = d.Root.TextLen()
	}
	before, after := splitContainerAt(d.Root, pos)
	d.Root.SetChildrenRestamped(before.Children)
	RestampSubtree(after, handle.Root())
	return after, nil
}

// SplitSubTreeBetween detaches the portion of the document strictly between
// (a,offA) and (b,offB) as a new fragment, rejoining what remains on either
// side in place.
func (d *Dom) SplitSubTreeBetween(a handle.Handle, offA int, b handle.Handle, offB int, depth int) (*Container, error) {
	posA, err := d.PositionOf(a)
	if err != nil {
		return nil, err
	}
	posB, err := d.PositionOf(b)
	if err != nil {
		return nil, err
	}
	start, end := posA+offA, posB+offB
	if end < start {
		start, end = end, start
	}
	beforeA, afterFromA := splitContainerAt(d.Root, start)
	middle, afterB := splitContainerAt(afterFromA, end-start)

	merged := make([]Node, 0, len(beforeA.Children)+len(afterB.Children))
	merged = append(merged, beforeA.Children...)
	merged = append(merged, afterB.Children...)
	d.Root.SetChildrenRestamped(merged)
	RestampSubtree(middle, handle.Root())
	return middle, nil
}
