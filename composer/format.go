package composer

import (
	"github.com/oxhq/composer/dom"
	"github.com/oxhq/composer/handle"
)

// Bold toggles Bold formatting over the current selection.
func (e *Engine) Bold() Update { return e.ToggleFormat(dom.KindFormatBold) }

// Italic toggles Italic formatting over the current selection.
func (e *Engine) Italic() Update { return e.ToggleFormat(dom.KindFormatItalic) }

// Underline toggles Underline formatting over the current selection.
func (e *Engine) Underline() Update { return e.ToggleFormat(dom.KindFormatUnderline) }

// StrikeThrough toggles StrikeThrough formatting over the current selection.
func (e *Engine) StrikeThrough() Update { return e.ToggleFormat(dom.KindFormatStrikeThrough) }

// InlineCode wraps the selection in InlineCode (§4.G.4): unlike the other
// formats, it strips every other inline Formatting wrapper the selection
// carries rather than nesting inside them, flattens any InlineCode already
// covering part of the range into the one new wrapper, and turns any
// absorbed <br> line breaks into literal newline characters (InlineCode
// renders as a single run of literal text, never as multiple lines). A
// selection that lies entirely inside InlineCode is unwrapped instead, and a
// selection reaching both into and out of a CodeBlock is left unchanged.
func (e *Engine) InlineCode() Update {
	return e.run(func() Update {
		s := e.State
		start, end := s.SafeSelection()
		if start == end {
			e.snapshot()
			s.PendingFormats[dom.KindFormatInlineCode] = !s.PendingFormats[dom.KindFormatInlineCode]
			return e.menuOnlyUpdate()
		}
		r := dom.FindRange(s.Dom, start, end)
		if rangeCrossesCodeBlock(s.Dom, r) {
			return noChange(s)
		}
		e.snapshot()
		if rangeInsideAncestorKind(s.Dom, r, dom.KindFormatInlineCode) {
			if err := removeFormatFromRange(s.Dom, r, dom.KindFormatInlineCode); err != nil {
				return noChange(s)
			}
			s.Select(start, end)
			return e.changedUpdate(start, end)
		}
		if err := stripInlineFormattingFromRange(s.Dom, dom.FindRange(s.Dom, start, end)); err != nil {
			return noChange(s)
		}
		literalizeLineBreaksInRange(s.Dom, dom.FindRange(s.Dom, start, end))
		if err := dom.InsertParentOverRange(s.Dom, dom.FindRange(s.Dom, start, end), func() *dom.Container {
			return dom.NewContainer(dom.KindFormatInlineCode)
		}); err != nil {
			return noChange(s)
		}
		s.Select(start, end)
		return e.changedUpdate(start, end)
	})
}

// stripInlineFormattingFromRange removes every Bold/Italic/Underline/
// StrikeThrough/Link/InlineCode wrapper reached by a leaf in r, flattening
// them down to plain text before InlineCode wraps it (§4.G.4: InlineCode
// never nests inside other inline formatting). Wrappers extending past r
// stay in place over the part outside it.
func stripInlineFormattingFromRange(d *dom.Dom, r *dom.Range) error {
	for _, kind := range []dom.ContainerKind{
		dom.KindFormatBold, dom.KindFormatItalic, dom.KindFormatUnderline,
		dom.KindFormatStrikeThrough, dom.KindLink, dom.KindFormatInlineCode,
	} {
		if err := removeFormatFromRange(d, r, kind); err != nil {
			return err
		}
		r = dom.FindRange(d, r.Start, r.End)
	}
	return nil
}

// rangeCrossesCodeBlock reports whether r touches leaves both inside and
// outside a CodeBlock.
func rangeCrossesCodeBlock(d *dom.Dom, r *dom.Range) bool {
	inside, outside := false, false
	for _, loc := range r.Leaves() {
		if hasAncestorKind(d, loc.NodeHandle, dom.KindCodeBlock) {
			inside = true
		} else {
			outside = true
		}
	}
	return inside && outside
}

// literalizeLineBreaksInRange replaces every LineBreak leaf in r with a
// literal "\n" Text node, the conversion InlineCode applies to any <br/>
// it absorbs (§4.G.4).
func literalizeLineBreaksInRange(d *dom.Dom, r *dom.Range) {
	var breaks []handle.Handle
	for _, loc := range r.Leaves() {
		if loc.Type == dom.NodeLineBreak {
			breaks = append(breaks, loc.NodeHandle)
		}
	}
	for i := len(breaks) - 1; i >= 0; i-- {
		_ = d.Replace(breaks[i], []dom.Node{dom.NewText(d.Width, "\n")})
	}
	if len(breaks) > 0 {
		dom.NormalizeAfterEdit(d)
	}
}

// ToggleFormat is the shared implementation behind every inline formatting
// command (§4.G): with a selection, it wraps or unwraps the covered leaves;
// with a collapsed caret, it flips a pending format that applies to the
// next typed text instead. A selection reaching both into and out of a
// CodeBlock is left unchanged.
func (e *Engine) ToggleFormat(kind dom.ContainerKind) Update {
	return e.run(func() Update {
		s := e.State
		start, end := s.SafeSelection()
		if start == end {
			e.snapshot()
			s.PendingFormats[kind] = !s.PendingFormats[kind]
			return e.menuOnlyUpdate()
		}
		r := dom.FindRange(s.Dom, start, end)
		if rangeCrossesCodeBlock(s.Dom, r) {
			return noChange(s)
		}
		e.snapshot()
		var err error
		if rangeInsideAncestorKind(s.Dom, r, kind) {
			err = removeFormatFromRange(s.Dom, r, kind)
		} else {
			err = dom.InsertParentOverRange(s.Dom, r, func() *dom.Container { return dom.NewContainer(kind) })
		}
		if err != nil {
			return noChange(s)
		}
		s.Select(start, end)
		return e.changedUpdate(start, end)
	})
}

// removeFormatFromRange unwraps every ancestor of kind reached by a leaf in
// r. A wrapper that extends beyond the range is unwrapped in full and then
// rewrapped over whatever prefix/suffix text fell outside the range but
// was still covered by it, so un-formatting part of a run leaves the rest
// of the run formatted exactly as before (§4.G.4 "Remove"). Re-resolving
// the range after each unwrap keeps leaf handles valid across the edit;
// the loop terminates because a reapplied wrapper sits outside [r.Start,
// r.End) and so never matches as a leaf's ancestor on the next pass.
func removeFormatFromRange(d *dom.Dom, r *dom.Range, kind dom.ContainerKind) error {
	for {
		h, ok := firstAncestorOfKind(d, r, kind)
		if !ok {
			return nil
		}
		node, err := d.Lookup(h)
		if err != nil {
			return err
		}
		c, ok := node.(*dom.Container)
		if !ok {
			return dom.ErrNotAContainer
		}
		origKind, origURL := c.Kind, c.LinkURL
		blockStart, err := d.PositionOf(h)
		if err != nil {
			return err
		}
		blockEnd := blockStart + c.TextLen()

		if err := dom.MoveChildrenAndDeleteParent(d, h); err != nil {
			return err
		}
		dom.NormalizeAfterEdit(d)

		makeParent := func() *dom.Container {
			if origKind == dom.KindLink {
				return dom.NewLink(origURL)
			}
			return dom.NewContainer(origKind)
		}
		if blockStart < r.Start {
			if err := dom.InsertParentOverRange(d, dom.FindRange(d, blockStart, r.Start), makeParent); err != nil {
				return err
			}
		}
		if r.End < blockEnd {
			if err := dom.InsertParentOverRange(d, dom.FindRange(d, r.End, blockEnd), makeParent); err != nil {
				return err
			}
		}
		r = dom.FindRange(d, r.Start, r.End)
	}
}

// firstAncestorOfKind returns the nearest ancestor of kind reached by
// walking up from any leaf touched by r.
func firstAncestorOfKind(d *dom.Dom, r *dom.Range, kind dom.ContainerKind) (handle.Handle, bool) {
	for _, loc := range r.Leaves() {
		h := loc.NodeHandle
		for h.Depth() > 0 {
			h = h.Parent()
			n, err := d.Lookup(h)
			if err != nil {
				break
			}
			if c, ok := n.(*dom.Container); ok && c.Kind == kind {
				return h, true
			}
		}
	}
	return handle.Handle{}, false
}
