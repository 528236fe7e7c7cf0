// Package history remembers the view position of every directory
// visited during a session, so returning to a directory lands exactly
// where the user left it.
package history

// Position is a saved cursor/scroll pair for one directory.
type Position struct {
	Cursor int
	Scroll int
}

// History maps absolute directory paths to their last known position.
// Entries are never evicted; the map lives for the process lifetime and
// is confined to the view loop, so it needs no locking.
type History struct {
	positions map[string]Position
}

func New() *History {
	return &History{positions: make(map[string]Position)}
}

// Save records pos for path, overwriting any earlier record.
func (h *History) Save(path string, pos Position) {
	h.positions[path] = pos
}

// Lookup returns the saved position for path. Exact match only; there
// is no ancestor or prefix fallback.
func (h *History) Lookup(path string) (Position, bool) {
	pos, ok := h.positions[path]
	return pos, ok
}

// Len reports how many directories have saved positions.
func (h *History) Len() int {
	return len(h.positions)
}
