package composer

import (
	"github.com/oxhq/composer/dom"
	"github.com/oxhq/composer/handle"
)

// Action names every menu/toolbar affordance a host can query or invoke.
type Action int

const (
	ActionBold Action = iota
	ActionItalic
	ActionUnderline
	ActionStrikeThrough
	ActionInlineCode
	ActionLink
	ActionOrderedList
	ActionUnorderedList
	ActionIndent
	ActionUnindent
	ActionCodeBlock
	ActionQuote
	ActionUndo
	ActionRedo
)

// ActionState is the menu state of one action: a toolbar button is either
// unusable, usable-and-inactive, usable-and-already-active (invoking it
// again removes the format), or hidden altogether.
type ActionState int

const (
	Disabled ActionState = iota
	Enabled
	Reversed
	// Hidden marks an action a host should not even show a button for in
	// the current context (currently Indent/Unindent when no leaf in the
	// selection is inside a list, §4.I).
	Hidden
)

// MenuState is the full set of action states a host toolbar renders.
type MenuState map[Action]ActionState

// DiffMenuState returns only the entries that differ between old and next,
// so a host can patch a toolbar instead of re-rendering it (§6.2).
func DiffMenuState(old, next MenuState) map[Action]ActionState {
	diff := map[Action]ActionState{}
	for a, v := range next {
		if old[a] != v {
			diff[a] = v
		}
	}
	for a := range old {
		if _, ok := next[a]; !ok {
			diff[a] = Disabled
		}
	}
	return diff
}

var formatActionKind = map[Action]dom.ContainerKind{
	ActionBold:          dom.KindFormatBold,
	ActionItalic:        dom.KindFormatItalic,
	ActionUnderline:     dom.KindFormatUnderline,
	ActionStrikeThrough: dom.KindFormatStrikeThrough,
	ActionInlineCode:    dom.KindFormatInlineCode,
}

// ComputeMenuState derives the current menu state from the document and
// selection alone (history-dependent entries, Undo/Redo, are filled in by
// the Engine, which owns the history stack).
func ComputeMenuState(s *State) MenuState {
	start, end := s.SafeSelection()
	r := dom.FindRange(s.Dom, start, end)
	ms := MenuState{}

	insideCode := rangeInsideAncestorKind(s.Dom, r, dom.KindCodeBlock)
	insideInlineCode := rangeInsideAncestorKind(s.Dom, r, dom.KindFormatInlineCode)
	disableOtherInline := (insideCode || insideInlineCode)
	for action, kind := range formatActionKind {
		switch {
		case disableOtherInline && kind != dom.KindFormatInlineCode:
			ms[action] = Disabled
		case rangeInsideAncestorKind(s.Dom, r, kind):
			ms[action] = Reversed
		default:
			ms[action] = Enabled
		}
	}

	switch {
	case insideCode, insideInlineCode:
		ms[ActionLink] = Disabled
	case rangeInsideAncestorKind(s.Dom, r, dom.KindLink):
		ms[ActionLink] = Reversed
	default:
		ms[ActionLink] = Enabled
	}

	ms[ActionOrderedList] = listActionState(s.Dom, r, dom.KindListOrdered)
	ms[ActionUnorderedList] = listActionState(s.Dom, r, dom.KindListUnordered)

	if anyLeafInList(s.Dom, r) {
		if CanIndent(s) {
			ms[ActionIndent] = Enabled
		} else {
			ms[ActionIndent] = Disabled
		}
		if CanUnindent(s) {
			ms[ActionUnindent] = Enabled
		} else {
			ms[ActionUnindent] = Disabled
		}
	} else {
		ms[ActionIndent] = Hidden
		ms[ActionUnindent] = Hidden
	}

	if rangeInsideAncestorKind(s.Dom, r, dom.KindCodeBlock) {
		ms[ActionCodeBlock] = Reversed
	} else {
		ms[ActionCodeBlock] = Enabled
	}
	if rangeInsideAncestorKind(s.Dom, r, dom.KindQuote) {
		ms[ActionQuote] = Reversed
	} else {
		ms[ActionQuote] = Enabled
	}

	return ms
}

func listActionState(d *dom.Dom, r *dom.Range, kind dom.ContainerKind) ActionState {
	if rangeInsideAncestorKind(d, r, kind) {
		return Reversed
	}
	return Enabled
}

// rangeInsideAncestorKind reports whether every leaf touched by r has an
// ancestor container of the given kind (a non-empty, fully-covered
// selection is required; an empty range is never considered "inside").
func rangeInsideAncestorKind(d *dom.Dom, r *dom.Range, kind dom.ContainerKind) bool {
	leaves := r.Leaves()
	if len(leaves) == 0 {
		return false
	}
	for _, loc := range leaves {
		if !hasAncestorKind(d, loc.NodeHandle, kind) {
			return false
		}
	}
	return true
}

// anyLeafInList reports whether any leaf touched by r has a ListItem
// ancestor (§4.I: Indent/Unindent are Hidden when this is false).
func anyLeafInList(d *dom.Dom, r *dom.Range) bool {
	for _, loc := range r.Leaves() {
		if hasAncestorKind(d, loc.NodeHandle, dom.KindListItem) {
			return true
		}
	}
	return false
}

func hasAncestorKind(d *dom.Dom, h handle.Handle, kind dom.ContainerKind) bool {
	cur := h
	for cur.Depth() > 0 {
		cur = cur.Parent()
		n, err := d.Lookup(cur)
		if err != nil {
			return false
		}
		if c, ok := n.(*dom.Container); ok && c.Kind == kind {
			return true
		}
	}
	return false
}
