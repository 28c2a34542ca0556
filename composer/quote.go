package composer

import (
	"github.com/oxhq/composer/dom"
	"github.com/oxhq/composer/handle"
)

// Quote toggles the selected blocks into (or out of) a block quote,
// keeping each one as a distinct Paragraph inside it (§4.G).
func (e *Engine) Quote() Update {
	return e.run(func() Update {
		s := e.State
		start, end := s.SafeSelection()
		r := dom.FindRange(s.Dom, start, end)
		blocks := containingBlocks(s.Dom, r)
		if len(blocks) == 0 {
			return noChange(s)
		}
		e.snapshot()
		var err error
		if quoteHandle, ok := enclosingQuote(s.Dom, blocks); ok {
			err = unwrapQuote(s.Dom, quoteHandle)
		} else {
			err = wrapBlocksAsQuote(s.Dom, blocks)
		}
		if err != nil {
			return noChange(s)
		}
		s.Select(start, end)
		return e.changedUpdate(start, end)
	})
}

func enclosingQuote(d *dom.Dom, blocks []handle.Handle) (handle.Handle, bool) {
	if len(blocks) == 0 {
		return handle.Handle{}, false
	}
	parent := blocks[0].Parent()
	n, err := d.Lookup(parent)
	if err != nil {
		return handle.Handle{}, false
	}
	c, ok := n.(*dom.Container)
	if !ok || c.Kind != dom.KindQuote {
		return handle.Handle{}, false
	}
	return parent, true
}

func wrapBlocksAsQuote(d *dom.Dom, blocks []handle.Handle) error {
	children := make([]dom.Node, 0, len(blocks))
	for _, b := range blocks {
		n, err := d.Lookup(b)
		if err != nil {
			return err
		}
		children = append(children, n)
	}
	q := dom.NewContainer(dom.KindQuote)
	q.Children = children

	for i := len(blocks) - 1; i >= 1; i-- {
		if _, err := d.Remove(blocks[i]); err != nil {
			return err
		}
	}
	if err := d.Replace(blocks[0], []dom.Node{q}); err != nil {
		return err
	}
	return dom.JoinNodeWithSiblings(d, blocks[0])
}

func unwrapQuote(d *dom.Dom, quoteHandle handle.Handle) error {
	q, err := d.LookupContainer(quoteHandle)
	if err != nil {
		return err
	}
	return d.Replace(quoteHandle, q.Children)
}
