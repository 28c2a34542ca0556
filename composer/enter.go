package composer

import "github.com/oxhq/composer/dom"

// Enter is context-sensitive (§4.G): inside a code block it inserts a
// literal newline; on an empty list item it breaks out of the list; on an
// ordinary block it splits the block in two at the caret.
func (e *Engine) Enter() Update {
	return e.run(func() Update {
		s := e.State
		start, end := s.SafeSelection()
		e.snapshot()
		if start != end {
			if err := deleteRange(s.Dom, start, end); err != nil {
				return noChange(s)
			}
		}

		r := dom.FindRange(s.Dom, start, start)
		loc, ok := r.PreferredCaretLeaf()
		if !ok {
			return noChange(s)
		}
		block := containingBlock(s.Dom, loc.NodeHandle)
		n, err := s.Dom.Lookup(block)
		if err != nil {
			return noChange(s)
		}
		c, ok := n.(*dom.Container)
		if !ok {
			return noChange(s)
		}

		switch {
		case c.Kind == dom.KindCodeBlock:
			if err := insertTextAt(s.Dom, start, "\n", nil); err != nil {
				return noChange(s)
			}
			newPos := start + 1
			s.Select(newPos, newPos)
			return e.changedUpdate(start, newPos)

		case c.Kind == dom.KindListItem && c.TextLen() == 0:
			if err := unindentListItem(s.Dom, block); err != nil {
				return noChange(s)
			}
			s.Select(start, start)
			return e.changedUpdate(start, start)

		default:
			blockStart, err := s.Dom.PositionOf(block)
			if err != nil {
				return noChange(s)
			}
			before, after := dom.SplitContainerContent(c, start-blockStart)
			if err := s.Dom.Replace(block, []dom.Node{before, after}); err != nil {
				return noChange(s)
			}
			newCaret := blockStart + before.TextLen() + 1
			s.Select(newCaret, newCaret)
			return e.changedUpdate(start, newCaret)
		}
	})
}
