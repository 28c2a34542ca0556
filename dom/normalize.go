package dom

import "github.com/oxhq/composer/handle"

// NormalizeAfterEdit restores invariants 1 and 2 after a structural edit:
// adjacent Text siblings are merged, adjacent Formatting/Link siblings of
// the same kind are merged, and empty Text nodes and inline wrapper
// containers left with no children are dropped.
func NormalizeAfterEdit(d *Dom) {
	joinAdjacentTextNodes(d.Root)
	joinFormatNodesWithSiblings(d.Root)
	removeEmptyContainers(d.Root)
}

// joinAdjacentTextNodes recursively merges runs of adjacent Text children
// into a single node (invariant 2).
func joinAdjacentTextNodes(c *Container) {
	for _, child := range c.Children {
		if cc, ok := child.(*Container); ok {
			joinAdjacentTextNodes(cc)
		}
	}
	out := make([]Node, 0, len(c.Children))
	for _, child := range c.Children {
		if t, ok := child.(*Text); ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].(*Text); ok {
				out[len(out)-1] = NewTextFrom(prev.Content.Append(t.Content))
				continue
			}
		}
		out = append(out, child)
	}
	if len(out) != len(c.Children) {
		c.SetChildrenRestamped(out)
	}
}

// joinFormatNodesWithSiblings recursively merges adjacent Formatting or Link
// containers that share the same kind (and, for Link, the same URL) into
// one, concatenating their children (§4.G.6).
func joinFormatNodesWithSiblings(c *Container) {
	for _, child := range c.Children {
		if cc, ok := child.(*Container); ok {
			joinFormatNodesWithSiblings(cc)
		}
	}
	out := make([]Node, 0, len(c.Children))
	merged := false
	for _, child := range c.Children {
		cc, ok := child.(*Container)
		if ok && len(out) > 0 {
			if prev, ok2 := out[len(out)-1].(*Container); ok2 && sameMergeableKind(prev, cc) {
				combined := append(append([]Node{}, prev.Children...), cc.Children...)
				out[len(out)-1] = &Container{Kind: prev.Kind, LinkURL: prev.LinkURL, Children: combined}
				merged = true
				continue
			}
		}
		out = append(out, child)
	}
	if merged || len(out) != len(c.Children) {
		c.SetChildrenRestamped(out)
		joinAdjacentTextNodes(c)
	}
}

func sameMergeableKind(a, b *Container) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind.IsFormatting() {
		return true
	}
	if a.Kind == KindLink {
		return a.LinkURL == b.LinkURL
	}
	return false
}

// removeEmptyContainers recursively drops empty Text nodes and inline
// wrapper containers (Formatting, Link) that ended up with no children. Block containers are
// never dropped here: an empty Paragraph/ListItem/CodeBlock/Quote is
// meaningful structure, and callers that want to drop one do so explicitly.
func removeEmptyContainers(c *Container) {
	out := make([]Node, 0, len(c.Children))
	changed := false
	for _, child := range c.Children {
		if t, ok := child.(*Text); ok && t.Content.Len() == 0 {
			changed = true
			continue
		}
		if cc, ok := child.(*Container); ok {
			removeEmptyContainers(cc)
			if len(cc.Children) == 0 && isEmptyRemovableKind(cc.Kind) {
				changed = true
				continue
			}
		}
		out = append(out, child)
	}
	if changed {
		c.SetChildrenRestamped(out)
	}
}

func isEmptyRemovableKind(k ContainerKind) bool {
	return k.IsFormatting() || k == KindLink
}

// MoveChildrenAndDeleteParent replaces the container at h with its own
// children, spliced into the same position in its parent (used to unwrap a
// container whose grouping is no longer needed, e.g. a ListItem left with a
// single Paragraph after unindenting).
func MoveChildrenAndDeleteParent(d *Dom, h handle.Handle) error {
	parent, idx, err := d.parentAndIndex(h)
	if err != nil {
		return err
	}
	node, ok := parent.Children[idx].(*Container)
	if !ok {
		return ErrNotAContainer
	}
	return d.Replace(h, node.Children)
}
