package composer

import (
	"github.com/google/uuid"

	"github.com/oxhq/composer/dom"
	"github.com/oxhq/composer/ustring"
)

// snapshot is one point-in-time copy of the document and selection, deep
// enough to restore State exactly (mirrors a transaction log's before-image:
// grounded on the same begin/commit/rollback shape, kept entirely in
// memory here rather than persisted).
type snapshot struct {
	id       string
	root     *dom.Container
	width    ustring.Width
	selStart int
	selEnd   int
	pending  map[dom.ContainerKind]bool
}

func captureState(s *State) snapshot {
	pending := make(map[dom.ContainerKind]bool, len(s.PendingFormats))
	for k, v := range s.PendingFormats {
		pending[k] = v
	}
	return snapshot{
		id:       uuid.NewString(),
		root:     s.Dom.Root.Clone().(*dom.Container),
		width:    s.Dom.Width,
		selStart: s.SelectionStart,
		selEnd:   s.SelectionEnd,
		pending:  pending,
	}
}

func (snap snapshot) restore(s *State) {
	s.Dom.Root = snap.root
	s.Dom.Width = snap.width
	s.Select(snap.selStart, snap.selEnd)
	s.PendingFormats = make(map[dom.ContainerKind]bool, len(snap.pending))
	for k, v := range snap.pending {
		s.PendingFormats[k] = v
	}
}

// History is a bounded undo/redo stack of snapshots (§4.I). Pushing a new
// snapshot after an edit clears the redo stack, the usual editor behavior.
type History struct {
	limit     int
	undoStack []snapshot
	redoStack []snapshot
}

// NewHistory builds a history bounded to at most limit undo steps.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 1
	}
	return &History{limit: limit}
}

func (h *History) push(s *State) {
	h.undoStack = append(h.undoStack, captureState(s))
	if len(h.undoStack) > h.limit {
		h.undoStack = h.undoStack[len(h.undoStack)-h.limit:]
	}
	h.redoStack = nil
}

// CanUndo reports whether Undo would have any effect.
func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

// CanRedo reports whether Redo would have any effect.
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// Undo restores the most recent snapshot, pushing the current state onto
// the redo stack. Reports false if there was nothing to undo.
func (h *History) Undo(s *State) bool {
	if len(h.undoStack) == 0 {
		return false
	}
	cur := captureState(s)
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, cur)
	last.restore(s)
	return true
}

// Redo re-applies the most recently undone snapshot. Reports false if
// there was nothing to redo.
func (h *History) Redo(s *State) bool {
	if len(h.redoStack) == 0 {
		return false
	}
	cur := captureState(s)
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, cur)
	last.restore(s)
	return true
}
