package scanner

import "github.com/jaime-s5/lgrep/pkg/types"

// Sink receives scan events in line order.
type Sink interface {
	Emit(ev types.Event) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ev types.Event) error

// Emit calls f(ev).
func (f SinkFunc) Emit(ev types.Event) error {
	return f(ev)
}

// Stats summarizes a single scan.
type Stats struct {
	Lines   int // decoded lines
	Matches int
	Context int // context lines emitted
}
