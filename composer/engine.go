package composer

import (
	"github.com/oxhq/composer/mention"
	"github.com/oxhq/composer/ustring"
)

// Engine dispatches editing commands against a State, wrapping each one in
// undo-history bookkeeping and a panic-safe rollback boundary (§4.F-§4.I).
type Engine struct {
	State     *State
	History   *History
	Mentions  mention.Classifier
	lastMenu  MenuState
}

// NewEngine builds an engine over a fresh empty document.
func NewEngine(w ustring.Width, historyLimit int, classifier mention.Classifier) *Engine {
	if classifier == nil {
		classifier = mention.MatrixClassifier{}
	}
	return &Engine{
		State:    NewState(w),
		History:  NewHistory(historyLimit),
		Mentions: classifier,
	}
}

// snapshot pushes the current state onto the undo stack. Every
// state-mutating command calls this before making any change.
func (e *Engine) snapshot() {
	e.History.push(e.State)
}

// Select updates the selection without touching history (selection
// movement alone is not an undoable edit).
func (e *Engine) Select(start, end int) Update {
	e.State.Select(start, end)
	return e.menuOnlyUpdate()
}

// run executes fn with panic-safe rollback: if fn panics, the state is
// restored to exactly how it was before the command began and the panic is
// swallowed, reported back as a no-op Update (mirrors a transaction's
// begin/commit/rollback, kept in-memory here).
func (e *Engine) run(fn func() Update) (result Update) {
	before := captureState(e.State)
	defer func() {
		if r := recover(); r != nil {
			before.restore(e.State)
			result = noChange(e.State)
		}
	}()
	result = fn()
	return
}

// Undo reverts the most recent snapshot, if any.
func (e *Engine) Undo() Update {
	if !e.History.Undo(e.State) {
		return noChange(e.State)
	}
	return e.menuOnlyUpdate()
}

// Redo re-applies the most recently undone snapshot, if any.
func (e *Engine) Redo() Update {
	if !e.History.Redo(e.State) {
		return noChange(e.State)
	}
	return e.menuOnlyUpdate()
}

// MenuState returns the full current menu state, including Undo/Redo
// availability, which ComputeMenuState cannot see on its own.
func (e *Engine) MenuState() MenuState {
	ms := ComputeMenuState(e.State)
	if e.History.CanUndo() {
		ms[ActionUndo] = Enabled
	} else {
		ms[ActionUndo] = Disabled
	}
	if e.History.CanRedo() {
		ms[ActionRedo] = Enabled
	} else {
		ms[ActionRedo] = Disabled
	}
	return ms
}

func (e *Engine) menuOnlyUpdate() Update {
	start, end := e.State.SafeSelection()
	next := e.MenuState()
	changes := next
	if e.lastMenu != nil {
		changes = DiffMenuState(e.lastMenu, next)
	}
	e.lastMenu = next
	return Update{Changed: false, SelectionStart: start, SelectionEnd: end, MenuChanges: changes}
}

// changedUpdate builds an Update for a command that rewrote [start,end) and
// refreshes the cached menu state for the next diff.
func (e *Engine) changedUpdate(start, end int) Update {
	s, selEnd := e.State.SafeSelection()
	next := e.MenuState()
	changes := next
	if e.lastMenu != nil {
		changes = DiffMenuState(e.lastMenu, next)
	}
	e.lastMenu = next
	return Update{
		Changed:        true,
		Text:           &TextUpdate{Start: start, End: end},
		SelectionStart: s,
		SelectionEnd:   selEnd,
		MenuChanges:    changes,
	}
}
