package history

// History holds performed and undone edits. Pushing a new edit discards the
// redo branch.
type History struct {
	performed []*DrawEdit
	undone    []*DrawEdit
	limit     int
}

// New creates a History. A positive limit caps the number of performed edits
// kept; older ones are forgotten.
func New(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Push records edit as the most recent performed edit and clears undone.
func (h *History) Push(edit *DrawEdit) {
	if edit == nil {
		return
	}
	clear(h.undone)
	h.undone = h.undone[:0]
	h.performed = append(h.performed, edit)
	if h.limit > 0 && len(h.performed) > h.limit {
		drop := len(h.performed) - h.limit
		copy(h.performed, h.performed[drop:])
		for i := len(h.performed) - drop; i < len(h.performed); i++ {
			h.performed[i] = nil
		}
		h.performed = h.performed[:h.limit]
	}
}

// Undo reverts the latest performed edit. It reports false when there is
// nothing to undo.
func (h *History) Undo() bool {
	n := len(h.performed)
	if n == 0 {
		return false
	}
	e := h.performed[n-1]
	h.performed[n-1] = nil
	h.performed = h.performed[:n-1]
	e.Seal()
	e.Enact(false)
	h.undone = append(h.undone, e)
	return true
}

// Redo re-applies the latest undone edit. It reports false when there is
// nothing to redo.
func (h *History) Redo() bool {
	n := len(h.undone)
	if n == 0 {
		return false
	}
	e := h.undone[n-1]
	h.undone[n-1] = nil
	h.undone = h.undone[:n-1]
	e.Enact(true)
	h.performed = append(h.performed, e)
	return true
}

// Peek returns the latest performed edit or nil.
func (h *History) Peek() *DrawEdit {
	if len(h.performed) == 0 {
		return nil
	}
	return h.performed[len(h.performed)-1]
}

// Clear forgets every edit.
func (h *History) Clear() {
	h.performed = nil
	h.undone = nil
}

// Len returns the number of performed edits.
func (h *History) Len() int { return len(h.performed) }

// UndoneLen returns the number of edits available to redo.
func (h *History) UndoneLen() int { return len(h.undone) }

// Limit returns the configured depth, 0 meaning unlimited.
func (h *History) Limit() int { return h.limit }

// Performed returns the performed edits, oldest first.
func (h *History) Performed() []*DrawEdit {
	out := make([]*DrawEdit, len(h.performed))
	copy(out, h.performed)
	return out
}
