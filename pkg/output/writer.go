// Package output renders scan events in the fixed record format:
//
//	{source}-{index}: {text}        context line
//	{source}-{index}:{highlighted}  matching line
package output

import (
	"fmt"
	"io"

	"github.com/jaime-s5/lgrep/pkg/types"
)

// Writer writes one record per event to an io.Writer.
type Writer struct {
	w       io.Writer
	records int
}

// NewWriter creates a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Emit writes ev.
func (w *Writer) Emit(ev types.Event) error {
	var err error
	switch ev.Kind {
	case types.KindMatch:
		_, err = fmt.Fprintf(w.w, "%s-%d:%s\n", ev.Source, ev.Index, ev.Text)
	case types.KindContext:
		_, err = fmt.Fprintf(w.w, "%s-%d: %s\n", ev.Source, ev.Index, ev.Text)
	default:
		return fmt.Errorf("unknown event kind: %d", ev.Kind)
	}
	if err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	w.records++
	return nil
}

// Records returns the number of records written so far.
func (w *Writer) Records() int {
	return w.records
}
