package composer

import (
	"github.com/oxhq/composer/dom"
	"github.com/oxhq/composer/handle"
)

// CodeBlock toggles the selected blocks into (or out of) a single code
// block, joining multiple paragraphs with a literal line break the way a
// plain-text code editor would (§4.G).
func (e *Engine) CodeBlock() Update {
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
		if existing, ok := singleCodeBlock(s.Dom, blocks); ok {
			err = unwrapCodeBlock(s.Dom, existing)
		} else {
			err = wrapBlocksAsCodeBlock(s.Dom, blocks)
		}
		if err != nil {
			return noChange(s)
		}
		s.Select(start, end)
		return e.changedUpdate(start, end)
	})
}

func singleCodeBlock(d *dom.Dom, blocks []handle.Handle) (handle.Handle, bool) {
	if len(blocks) != 1 {
		return handle.Handle{}, false
	}
	n, err := d.Lookup(blocks[0])
	if err != nil {
		return handle.Handle{}, false
	}
	c, ok := n.(*dom.Container)
	if !ok || c.Kind != dom.KindCodeBlock {
		return handle.Handle{}, false
	}
	return blocks[0], true
}

// wrapBlocksAsCodeBlock merges every touched block's inline content into
// one CodeBlock, separating what used to be distinct blocks with a literal
// line break.
func wrapBlocksAsCodeBlock(d *dom.Dom, blocks []handle.Handle) error {
	var merged []dom.Node
	for i, b := range blocks {
		n, err := d.Lookup(b)
		if err != nil {
			return err
		}
		c, ok := n.(*dom.Container)
		if !ok {
			continue
		}
		if i > 0 {
			merged = append(merged, dom.NewLineBreak())
		}
		merged = append(merged, c.Children...)
	}
	cb := dom.NewContainer(dom.KindCodeBlock)
	cb.Children = merged

	for i := len(blocks) - 1; i >= 1; i-- {
		if _, err := d.Remove(blocks[i]); err != nil {
			return err
		}
	}
	if err := d.Replace(blocks[0], []dom.Node{cb}); err != nil {
		return err
	}
	return dom.JoinNodeWithSiblings(d, blocks[0])
}

// unwrapCodeBlock splits a CodeBlock's content back into one Paragraph per
// literal line break.
func unwrapCodeBlock(d *dom.Dom, cbHandle handle.Handle) error {
	cb, err := d.LookupContainer(cbHandle)
	if err != nil {
		return err
	}
	var groups [][]dom.Node
	var cur []dom.Node
	for _, child := range cb.Children {
		if _, ok := child.(*dom.LineBreak); ok {
			groups = append(groups, cur)
			cur = nil
			continue
		}
		cur = append(cur, child)
	}
	groups = append(groups, cur)

	replacement := make([]dom.Node, 0, len(groups))
	for _, g := range groups {
		p := dom.NewContainer(dom.KindParagraph)
		p.Children = g
		replacement = append(replacement, p)
	}
	return d.Replace(cbHandle, replacement)
}
