package composer

// TextUpdate describes the linear region of the document a command
// rewrote, so a host view can patch its own representation incrementally
// instead of re-rendering from scratch (§6.2).
type TextUpdate struct {
	Start int
	End   int
}

// Update is what every Engine command returns: whether anything changed,
// which region of text changed (if any), the resulting selection, and the
// menu-state deltas a host toolbar should apply.
type Update struct {
	Changed        bool
	Text           *TextUpdate
	SelectionStart int
	SelectionEnd   int
	MenuChanges    map[Action]ActionState
	// ParseErrors is only set by SetContentFromHTML: one message per tag or
	// structure the parser could not map onto the document model (§7.2).
	ParseErrors []string
}

func noChange(s *State) Update {
	start, end := s.SafeSelection()
	return Update{Changed: false, SelectionStart: start, SelectionEnd: end}
}
