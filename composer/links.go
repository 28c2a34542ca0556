package composer

import (
	"strings"

	"github.com/oxhq/composer/dom"
)

// SetLink wraps the current selection in a Link to url, replacing any
// link(s) already covering part of it. A collapsed selection has no text
// to link and is a no-op; use SetLinkWithText to insert new linked text.
func (e *Engine) SetLink(url string) Update {
	return e.run(func() Update {
		s := e.State
		start, end := s.SafeSelection()
		if start == end {
			return noChange(s)
		}
		e.snapshot()
		normalized := normalizeURL(url)
		_ = removeFormatFromRange(s.Dom, dom.FindRange(s.Dom, start, end), dom.KindLink)
		r := dom.FindRange(s.Dom, start, end)
		if err := dom.InsertParentOverRange(s.Dom, r, func() *dom.Container { return dom.NewLink(normalized) }); err != nil {
			return noChange(s)
		}
		s.Select(start, end)
		return e.changedUpdate(start, end)
	})
}

// SetLinkWithText inserts text as a new Link at the caret (or in place of
// the current selection), the usual "insert link" affordance when the
// caret is collapsed and there is no existing text to link.
func (e *Engine) SetLinkWithText(url, text string) Update {
	return e.run(func() Update {
		s := e.State
		start, end := s.SafeSelection()
		e.snapshot()
		if start != end {
			if err := deleteRange(s.Dom, start, end); err != nil {
				return noChange(s)
			}
		}
		normalized := normalizeURL(url)
		textNode := dom.NewText(s.Dom.Width, text)
		link := dom.NewLink(normalized, textNode)
		if err := insertNodeAt(s.Dom, start, link); err != nil {
			return noChange(s)
		}
		newEnd := start + textNode.TextLen()
		s.Select(newEnd, newEnd)
		return e.changedUpdate(start, newEnd)
	})
}

// RemoveLinks strips any Link wrapper(s) covering the current selection,
// keeping their text content in place.
func (e *Engine) RemoveLinks() Update {
	return e.run(func() Update {
		s := e.State
		start, end := s.SafeSelection()
		if start == end {
			return noChange(s)
		}
		e.snapshot()
		r := dom.FindRange(s.Dom, start, end)
		if err := removeFormatFromRange(s.Dom, r, dom.KindLink); err != nil {
			return noChange(s)
		}
		s.Select(start, end)
		return e.changedUpdate(start, end)
	})
}

// LinkActionKind classifies which link affordance applies to the current
// selection (§4.G.5).
type LinkActionKind int

const (
	// LinkActionCreateWithText: the selection is empty or only whitespace/
	// line-breaks — there is no text to link, so a host should prompt for
	// both a URL and display text.
	LinkActionCreateWithText LinkActionKind = iota
	// LinkActionCreate: a non-empty, non-Link selection — wrap it in a new
	// Link.
	LinkActionCreate
	// LinkActionEdit: the selection lies inside an existing Link — a host
	// should prompt to edit URL, prefilled from it.
	LinkActionEdit
)

// LinkAction is GetLinkAction's result.
type LinkAction struct {
	Kind LinkActionKind
	// URL is the existing link's href when Kind == LinkActionEdit; empty
	// otherwise.
	URL string
}

// GetLinkAction reports which link affordance applies to the current
// selection (§4.G.5): Edit(url) inside an existing Link, Create over a
// non-empty plain-text selection, or CreateWithText when the selection is
// empty or holds only whitespace/line-breaks.
func (e *Engine) GetLinkAction() LinkAction {
	s := e.State
	start, end := s.SafeSelection()
	r := dom.FindRange(s.Dom, start, end)
	if url, ok := enclosingLinkURL(s.Dom, r); ok {
		return LinkAction{Kind: LinkActionEdit, URL: url}
	}
	if start == end || isBlankRange(s.Dom, r) {
		return LinkAction{Kind: LinkActionCreateWithText}
	}
	return LinkAction{Kind: LinkActionCreate}
}

// enclosingLinkURL reports the URL of the Link ancestor fully covering r,
// if any.
func enclosingLinkURL(d *dom.Dom, r *dom.Range) (string, bool) {
	if !rangeInsideAncestorKind(d, r, dom.KindLink) {
		return "", false
	}
	loc, ok := r.PreferredCaretLeaf()
	if !ok {
		return "", false
	}
	cur := loc.NodeHandle
	for cur.Depth() > 0 {
		cur = cur.Parent()
		n, err := d.Lookup(cur)
		if err != nil {
			break
		}
		if c, ok := n.(*dom.Container); ok && c.Kind == dom.KindLink {
			return c.LinkURL, true
		}
	}
	return "", false
}

// isBlankRange reports whether every leaf in r is a LineBreak or Text
// containing only whitespace.
func isBlankRange(d *dom.Dom, r *dom.Range) bool {
	leaves := r.Leaves()
	if len(leaves) == 0 {
		return true
	}
	for _, loc := range leaves {
		switch loc.Type {
		case dom.NodeLineBreak:
			continue
		case dom.NodeText:
			node, err := d.Lookup(loc.NodeHandle)
			if err != nil {
				return false
			}
			t := node.(*dom.Text)
			if strings.TrimSpace(t.Content.Slice(loc.StartOffset, loc.EndOffset).String()) != "" {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// normalizeURL applies the same light normalization a paste handler would:
// bare email addresses get "mailto:", and anything without a scheme gets
// "https://" (§4.G).
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	lower := strings.ToLower(raw)
	if raw == "" || strings.Contains(raw, "://") || strings.HasPrefix(lower, "mailto:") {
		return raw
	}
	if strings.Contains(raw, "@") {
		return "mailto:" + raw
	}
	return "https://" + raw
}
