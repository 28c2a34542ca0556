package composer

import (
	"strings"
	"unicode"

	"github.com/oxhq/composer/dom"
	"github.com/oxhq/composer/handle"
)

// Backspace removes the selection if non-collapsed, otherwise the one
// grapheme cluster before the caret (§3.2: grapheme-aware, not code-unit or
// rune-aware). At the start of a non-empty list item, backspace_in_list
// runs instead of the generic grapheme delete (§4.G.2).
func (e *Engine) Backspace() Update {
	return e.run(func() Update {
		s := e.State
		start, end := s.SafeSelection()
		if start == end {
			if itemHandle, ok := listItemStartingAt(s.Dom, start); ok {
				e.snapshot()
				newPos, err := backspaceInList(s.Dom, itemHandle)
				if err != nil {
					return noChange(s)
				}
				dom.NormalizeAfterEdit(s.Dom)
				s.Select(newPos, newPos)
				return e.changedUpdate(newPos, start)
			}
		}
		if start == end && start == 0 {
			return noChange(s)
		}
		e.snapshot()
		if start != end {
			if err := deleteRange(s.Dom, start, end); err != nil {
				return noChange(s)
			}
			s.Select(start, start)
			return e.changedUpdate(start, start)
		}
		width := graphemeWidthBefore(s.Dom, start)
		newStart := start - width
		if err := deleteRange(s.Dom, newStart, start); err != nil {
			return noChange(s)
		}
		s.Select(newStart, newStart)
		return e.changedUpdate(newStart, newStart)
	})
}

// listItemStartingAt reports the handle of a non-empty ListItem whose own
// content begins exactly at pos, the trigger condition for backspace_in_list.
func listItemStartingAt(d *dom.Dom, pos int) (handle.Handle, bool) {
	r := dom.FindRange(d, pos, pos)
	blockHandle, ok := r.DeepestBlockNode(pos)
	if !ok {
		return handle.Handle{}, false
	}
	n, err := d.Lookup(blockHandle)
	if err != nil {
		return handle.Handle{}, false
	}
	c, ok := n.(*dom.Container)
	if !ok || c.Kind != dom.KindListItem || c.TextLen() == 0 {
		return handle.Handle{}, false
	}
	itemStart, err := d.PositionOf(blockHandle)
	if err != nil || itemStart != pos {
		return handle.Handle{}, false
	}
	return blockHandle, true
}

// backspaceInList removes the list item at itemHandle (§4.G.2): its
// children move to the end of the preceding sibling item, or out of the
// list entirely as a Paragraph if it was the first item; removing the sole
// remaining item removes the whole list.
func backspaceInList(d *dom.Dom, itemHandle handle.Handle) (int, error) {
	listHandle := itemHandle.Parent()
	list, err := d.LookupContainer(listHandle)
	if err != nil {
		return 0, err
	}
	idx, _ := itemHandle.Index()

	removed, err := d.Remove(itemHandle)
	if err != nil {
		return 0, err
	}
	item, ok := removed.(*dom.Container)
	if !ok {
		return 0, dom.ErrNotAContainer
	}

	if idx > 0 {
		prevHandle := listHandle.Child(idx - 1)
		prevNode, err := d.Lookup(prevHandle)
		if err != nil {
			return 0, err
		}
		prev, ok := prevNode.(*dom.Container)
		if !ok {
			return 0, dom.ErrNotAContainer
		}
		newCaret, err := d.PositionOf(prevHandle)
		if err != nil {
			return 0, err
		}
		newCaret += prev.TextLen()
		prev.Children = append(append([]dom.Node{}, prev.Children...), item.Children...)
		if err := d.Replace(prevHandle, []dom.Node{prev}); err != nil {
			return 0, err
		}
		return newCaret, nil
	}

	para := dom.NewContainer(dom.KindParagraph)
	para.Children = item.Children
	newCaret, err := d.PositionOf(listHandle)
	if err != nil {
		return 0, err
	}
	if len(list.Children) == 0 {
		if err := d.Replace(listHandle, []dom.Node{para}); err != nil {
			return 0, err
		}
	} else if err := d.InsertAt(listHandle, para); err != nil {
		return 0, err
	}
	return newCaret, nil
}

// Delete removes the selection if non-collapsed, otherwise the one
// grapheme cluster after the caret.
func (e *Engine) Delete() Update {
	return e.run(func() Update {
		s := e.State
		start, end := s.SafeSelection()
		if start == end && start >= s.Dom.TextLen() {
			return noChange(s)
		}
		e.snapshot()
		if start != end {
			if err := deleteRange(s.Dom, start, end); err != nil {
				return noChange(s)
			}
			s.Select(start, start)
			return e.changedUpdate(start, start)
		}
		width := graphemeWidthAfter(s.Dom, start)
		if err := deleteRange(s.Dom, start, start+width); err != nil {
			return noChange(s)
		}
		s.Select(start, start)
		return e.changedUpdate(start, start)
	})
}

// DeleteIn removes the explicit [start,end) span regardless of the current
// selection, the host-driven counterpart of Delete (§6.3: delete_in).
func (e *Engine) DeleteIn(start, end int) Update {
	return e.run(func() Update {
		s := e.State
		start, end = clampRange(s, start, end)
		if start == end {
			return noChange(s)
		}
		e.snapshot()
		if err := deleteRange(s.Dom, start, end); err != nil {
			return noChange(s)
		}
		s.Select(start, start)
		return e.changedUpdate(start, start)
	})
}

func graphemeWidthBefore(d *dom.Dom, pos int) int {
	r := dom.FindRange(d, pos, pos)
	loc, ok := r.PreferredCaretLeaf()
	if !ok || loc.Type != dom.NodeText {
		return 1
	}
	node, err := d.Lookup(loc.NodeHandle)
	if err != nil {
		return 1
	}
	t := node.(*dom.Text)
	g := t.Content.GraphemeBefore(loc.EndOffset)
	if g.Len() == 0 {
		return 1
	}
	return g.Len()
}

func graphemeWidthAfter(d *dom.Dom, pos int) int {
	r := dom.FindRange(d, pos, pos)
	for _, loc := range r.Leaves() {
		if loc.Position != pos {
			continue
		}
		if loc.Type != dom.NodeText {
			return 1
		}
		node, err := d.Lookup(loc.NodeHandle)
		if err != nil {
			return 1
		}
		t := node.(*dom.Text)
		g := t.Content.GraphemeAfter(loc.StartOffset)
		if g.Len() == 0 {
			return 1
		}
		return g.Len()
	}
	return 1
}

// charClass groups runes for word-boundary jumps: a run of one class is
// one "word" for BackspaceWord/DeleteWord purposes (§4.F).
type charClass int

const (
	classWhitespace charClass = iota
	classNewline
	classPunct
	classOther
)

func classify(r rune) charClass {
	switch {
	case r == '\n':
		return classNewline
	case unicode.IsSpace(r):
		return classWhitespace
	case unicode.IsPunct(r) || unicode.IsSymbol(r):
		return classPunct
	default:
		return classOther
	}
}

// BackspaceWord removes the selection if non-collapsed, otherwise one
// trailing run of whitespace followed by one run of a single character
// class before the caret (ctrl+backspace semantics).
func (e *Engine) BackspaceWord() Update {
	return e.run(func() Update {
		s := e.State
		start, end := s.SafeSelection()
		if start != end {
			e.snapshot()
			if err := deleteRange(s.Dom, start, end); err != nil {
				return noChange(s)
			}
			s.Select(start, start)
			return e.changedUpdate(start, start)
		}
		text := []rune(plainTextBeforeCaret(s.Dom, start))
		if len(text) == 0 {
			return noChange(s)
		}
		i := len(text)
		for i > 0 && classify(text[i-1]) == classWhitespace {
			i--
		}
		if i > 0 {
			cls := classify(text[i-1])
			for i > 0 && classify(text[i-1]) == cls {
				i--
			}
		}
		removed := len(text) - i
		if removed == 0 {
			removed = 1
		}
		newStart := start - removed
		if newStart < 0 {
			newStart = 0
		}
		e.snapshot()
		if err := deleteRange(s.Dom, newStart, start); err != nil {
			return noChange(s)
		}
		s.Select(newStart, newStart)
		return e.changedUpdate(newStart, newStart)
	})
}

// DeleteWord removes the selection if non-collapsed, otherwise the
// forward-jump counterpart of BackspaceWord.
func (e *Engine) DeleteWord() Update {
	return e.run(func() Update {
		s := e.State
		start, end := s.SafeSelection()
		if start != end {
			e.snapshot()
			if err := deleteRange(s.Dom, start, end); err != nil {
				return noChange(s)
			}
			s.Select(start, start)
			return e.changedUpdate(start, start)
		}
		text := []rune(plainTextAfterCaret(s.Dom, start))
		if len(text) == 0 {
			return noChange(s)
		}
		i := 0
		for i < len(text) && classify(text[i]) == classWhitespace {
			i++
		}
		if i < len(text) {
			cls := classify(text[i])
			for i < len(text) && classify(text[i]) == cls {
				i++
			}
		}
		if i == 0 {
			i = 1
		}
		e.snapshot()
		if err := deleteRange(s.Dom, start, start+i); err != nil {
			return noChange(s)
		}
		s.Select(start, start)
		return e.changedUpdate(start, start)
	})
}

func plainTextAfterCaret(d *dom.Dom, pos int) string {
	r := dom.FindRange(d, pos, d.TextLen())
	var sb strings.Builder
	for _, loc := range r.Leaves() {
		if loc.Type != dom.NodeText {
			break
		}
		node, err := d.Lookup(loc.NodeHandle)
		if err != nil {
			break
		}
		t := node.(*dom.Text)
		sb.WriteString(t.Content.Slice(loc.StartOffset, t.Content.Len()).String())
	}
	return sb.String()
}
