package composer

import "github.com/oxhq/composer/serialize"

// CurrentState is a full snapshot of the editor, for a host that needs to
// rehydrate its own view from scratch rather than apply incremental
// Updates (§6.3: get_current_state).
type CurrentState struct {
	HTML           string
	SelectionStart int
	SelectionEnd   int
	Menu           MenuState
}

// GetCurrentState renders the document plus selection and menu state. The
// counterpart to SetContentFromHTML for a host pulling state instead of
// pushing it.
func (e *Engine) GetCurrentState() CurrentState {
	start, end := e.State.SafeSelection()
	return CurrentState{
		HTML:           serialize.HTML(e.State.Dom),
		SelectionStart: start,
		SelectionEnd:   end,
		Menu:           e.MenuState(),
	}
}
