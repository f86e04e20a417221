package matcher

import "github.com/jaime-s5/lgrep/pkg/types"

// Window tracks the context around matches for a single file: a bounded
// FIFO of candidate "before" lines plus the most recent match, which opens
// the trailing "after" range.
type Window struct {
	ring  []types.Line
	head  int // index of the oldest buffered line
	count int

	last    types.Line
	matched bool
}

// NewWindow creates a window holding up to size lines of context.
func NewWindow(size int) *Window {
	if size < 0 {
		size = 0
	}
	return &Window{ring: make([]types.Line, size)}
}

// Cap returns the configured context size.
func (w *Window) Cap() int {
	return len(w.ring)
}

// Len returns the number of buffered before-context lines.
func (w *Window) Len() int {
	return w.count
}

// Push buffers line, evicting the oldest line when full.
func (w *Window) Push(line types.Line) {
	size := len(w.ring)
	if size == 0 {
		return
	}
	if w.count == size {
		w.ring[w.head] = line
		w.head = (w.head + 1) % size
		return
	}
	w.ring[(w.head+w.count)%size] = line
	w.count++
}

// Flush returns the buffered lines oldest first and empties the buffer.
func (w *Window) Flush() []types.Line {
	if w.count == 0 {
		return nil
	}
	out := make([]types.Line, 0, w.count)
	for i := 0; i < w.count; i++ {
		out = append(out, w.ring[(w.head+i)%len(w.ring)])
	}
	w.head, w.count = 0, 0
	return out
}

// MarkMatch records line as the most recent match.
func (w *Window) MarkMatch(line types.Line) {
	w.last = line
	w.matched = true
}

// LastMatch returns the most recent match, if any.
func (w *Window) LastMatch() (types.Line, bool) {
	return w.last, w.matched
}

// IsAfter reports whether index falls in the after-context range of the
// most recent match.
func (w *Window) IsAfter(index int) bool {
	if !w.matched {
		return false
	}
	d := index - w.last.Index
	return d > 0 && d <= len(w.ring)
}
