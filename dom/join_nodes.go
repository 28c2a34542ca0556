package dom

import "github.com/oxhq/composer/handle"

// JoinNodeWithSiblings merges the node at h with every directly adjacent
// sibling of the same mergeable kind (§4.G.6): adjacent Lists of the same
// ordered/unordered kind, ListItems, Paragraphs, Quotes or CodeBlocks
// combine their children, as do adjacent Formatting or Link wrappers of the
// same kind; Text children that meet at the seam become one Text. Command code
// calls this at a specific boundary right after an edit, rather than
// relying on the blanket NormalizeAfterEdit pass, when it already knows
// exactly where a new adjacency was created (e.g. after backspace merges
// two block siblings into one).
func JoinNodeWithSiblings(d *Dom, h handle.Handle) error {
	if h.IsRoot() {
		return nil
	}
	parent, idx, err := d.parentAndIndex(h)
	if err != nil {
		return err
	}
	node, ok := parent.Children[idx].(*Container)
	if !ok {
		return nil
	}

	if idx+1 < len(parent.Children) {
		if next, ok := parent.Children[idx+1].(*Container); ok && joinableKind(node, next) {
			combined := append(append([]Node{}, node.Children...), next.Children...)
			merged := &Container{Kind: node.Kind, LinkURL: node.LinkURL, Children: combined}
			joinAdjacentTextNodes(merged)
			if err := d.Replace(h, []Node{merged}); err != nil {
				return err
			}
			nextH := h.NextSibling()
			if _, err := d.Remove(nextH); err != nil {
				return err
			}
			return JoinNodeWithSiblings(d, h)
		}
	}
	if idx > 0 {
		if prev, ok := parent.Children[idx-1].(*Container); ok && joinableKind(prev, node) {
			combined := append(append([]Node{}, prev.Children...), node.Children...)
			merged := &Container{Kind: node.Kind, LinkURL: node.LinkURL, Children: combined}
			joinAdjacentTextNodes(merged)
			prevH := h.PrevSibling()
			if err := d.Replace(prevH, []Node{merged}); err != nil {
				return err
			}
			if _, err := d.Remove(h); err != nil {
				return err
			}
			return JoinNodeWithSiblings(d, prevH)
		}
	}
	return nil
}

func joinableKind(a, b *Container) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindListOrdered, KindListUnordered, KindListItem, KindParagraph, KindQuote, KindCodeBlock:
		return true
	case KindLink:
		return a.LinkURL == b.LinkURL
	default:
		return a.Kind.IsFormatting()
	}
}
