package composer

import (
	"github.com/oxhq/composer/dom"
	"github.com/oxhq/composer/handle"
	"github.com/oxhq/composer/ustring"
)

// ReplaceText deletes the current selection (if any) and inserts text at
// its start, the general-purpose editing primitive behind typing, paste,
// and IME composition (§4.F).
func (e *Engine) ReplaceText(text string) Update {
	start, end := e.State.SafeSelection()
	return e.replaceTextIn(start, end, text)
}

// ReplaceTextIn is ReplaceText against an explicit [start,end) span rather
// than the live selection, the host-driven counterpart used when a caller
// already knows the range it wants to rewrite (§6.3: replace_text_in).
func (e *Engine) ReplaceTextIn(start, end int, text string) Update {
	return e.replaceTextIn(start, end, text)
}

func (e *Engine) replaceTextIn(start, end int, text string) Update {
	return e.run(func() Update {
		s := e.State
		start, end = clampRange(s, start, end)
		e.snapshot()

		if start != end {
			if err := deleteRange(s.Dom, start, end); err != nil {
				return noChange(s)
			}
		}
		if text != "" {
			if err := insertTextAt(s.Dom, start, text, s.PendingFormats); err != nil {
				return noChange(s)
			}
		}
		newEnd := start + ustring.New(s.Dom.Width, text).Len()
		s.Select(newEnd, newEnd)
		return e.changedUpdate(start, newEnd)
	})
}

// deleteRange removes the linear span [start,end) from the document,
// splitting the whole tree at each boundary and discarding the middle
// fragment (the dual of dom.SplitSubTreeBetween, specialized to "don't keep
// the middle").
func deleteRange(d *dom.Dom, start, end int) error {
	if start == end {
		return nil
	}
	tail, err := d.SplitSubTreeFrom(handle.Root(), end, 0)
	if err != nil {
		return err
	}
	if _, err := d.SplitSubTreeFrom(handle.Root(), start, 0); err != nil {
		return err
	}
	for _, child := range tail.Children {
		if err := d.AppendAtEndOfDocument(child); err != nil {
			return err
		}
	}
	dom.NormalizeAfterEdit(d)
	if start > 0 {
		joinSeamAt(d, start)
		dom.NormalizeAfterEdit(d)
	}
	return nil
}

// joinSeamAt merges whatever two block siblings now meet at document
// position pos, if they are mergeable (§4.G.6) — needed because deleting a
// block boundary's implicit gap produces no node-level change on its own.
func joinSeamAt(d *dom.Dom, pos int) {
	r := dom.FindRange(d, pos, pos)
	loc, ok := r.PreferredCaretLeaf()
	if !ok {
		return
	}
	h := loc.NodeHandle
	for h.Depth() > 0 {
		_ = dom.JoinNodeWithSiblings(d, h)
		h = h.Parent()
	}
}

// insertTextAt splices text, wrapped in any active pending formats, into
// the document at linear position pos.
func insertTextAt(d *dom.Dom, pos int, text string, pending map[dom.ContainerKind]bool) error {
	textNode := buildFormattedText(d.Width, text, pending)
	return insertNodeAt(d, pos, textNode)
}

// insertNodeAt splices an arbitrary node into the document at linear
// position pos: into the middle of a Text leaf if the caret lands inside
// one, or as a sibling of whatever leaf the caret sits next to otherwise.
// An empty document gets a fresh Paragraph to hold the new node.
func insertNodeAt(d *dom.Dom, pos int, newNode dom.Node) error {
	if d.Root.TextLen() == 0 {
		p := dom.NewContainer(dom.KindParagraph)
		p.Children = []dom.Node{newNode}
		return d.AppendAtEndOfDocument(p)
	}

	r := dom.FindRange(d, pos, pos)
	loc, ok := r.PreferredCaretLeaf()
	if !ok {
		return dom.ErrInvalidHandle
	}
	node, err := d.Lookup(loc.NodeHandle)
	if err != nil {
		return err
	}
	if existing, ok := node.(*dom.Text); ok {
		before := existing.Content.Slice(0, loc.StartOffset)
		after := existing.Content.Slice(loc.StartOffset, existing.Content.Len())
		var parts []dom.Node
		if before.Len() > 0 {
			parts = append(parts, dom.NewTextFrom(before))
		}
		parts = append(parts, newNode)
		if after.Len() > 0 {
			parts = append(parts, dom.NewTextFrom(after))
		}
		return d.Replace(loc.NodeHandle, parts)
	}
	if c, ok := node.(*dom.Container); ok && len(c.Children) == 0 {
		return d.InsertAt(loc.NodeHandle.Child(0), newNode)
	}
	at := loc.NodeHandle
	if loc.StartOffset > 0 {
		at = at.NextSibling()
	}
	return d.InsertAt(at, newNode)
}

func buildFormattedText(w ustring.Width, text string, pending map[dom.ContainerKind]bool) dom.Node {
	var n dom.Node = dom.NewText(w, text)
	for kind, on := range pending {
		if !on {
			continue
		}
		c := dom.NewContainer(kind)
		c.Children = []dom.Node{n}
		n = c
	}
	return n
}
