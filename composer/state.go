// Package composer implements the command engine (components F-J): the
// editing State, the Engine that dispatches commands against it, and the
// Update/MenuState result types returned to a host view.
package composer

import (
	"github.com/oxhq/composer/dom"
	"github.com/oxhq/composer/ustring"
)

// State is the engine's mutable editing state: the document, the current
// selection in linear code-unit coordinates, and any formats the caller has
// toggled ahead of typing at a collapsed selection (§4.F).
type State struct {
	Dom            *dom.Dom
	SelectionStart int
	SelectionEnd   int
	// PendingFormats holds formats toggled with no selection (e.g. pressing
	// Bold with the caret collapsed): applied to the next inserted text only.
	PendingFormats map[dom.ContainerKind]bool
}

// NewState builds an empty document with an empty, collapsed selection.
func NewState(w ustring.Width) *State {
	return &State{Dom: dom.New(w), PendingFormats: map[dom.ContainerKind]bool{}}
}

// SafeSelection clamps the selection to the document's current length,
// guarding against a selection left stale by an edit that shortened the
// document (§4.F: "selections are re-validated before every command").
func (s *State) SafeSelection() (int, int) {
	n := s.Dom.TextLen()
	start := clamp(s.SelectionStart, 0, n)
	end := clamp(s.SelectionEnd, 0, n)
	return start, end
}

// Select sets the selection, in document order (start may be greater than
// end to represent a selection made by dragging backward).
func (s *State) Select(start, end int) {
	s.SelectionStart, s.SelectionEnd = start, end
	s.PendingFormats = map[dom.ContainerKind]bool{}
}

// clampRange clamps an explicit (start,end) span to the document's current
// length, the same guard SafeSelection applies to the live selection.
func clampRange(s *State, start, end int) (int, int) {
	n := s.Dom.TextLen()
	return clamp(start, 0, n), clamp(end, 0, n)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
