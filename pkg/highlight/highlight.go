// Package highlight decorates every occurrence of a literal term in a line
// with paired start/end markers.
package highlight

import (
	"strings"

	"github.com/fatih/color"
)

// Span is a byte range [Start, End) of one occurrence.
type Span struct {
	Start int
	End   int
}

// Markers are the delimiters written around each occurrence. Flat markers
// cannot nest, because an end marker cancels every open start marker (as an
// ANSI reset does); overlapping occurrences are then written as one run.
type Markers struct {
	Start string
	End   string
	Flat  bool
}

// Plain writes no markers at all.
var Plain = Markers{}

// Terminal derives the escape sequences of c. When c has color disabled
// (or color.NoColor is set) both markers are empty.
func Terminal(c *color.Color) Markers {
	// color exposes no accessor for the raw sequences, so split a
	// rendered sentinel instead.
	const sentinel = "\x00"
	start, end, ok := strings.Cut(c.Sprint(sentinel), sentinel)
	if !ok || (start == "" && end == "") {
		return Plain
	}
	return Markers{Start: start, End: end, Flat: true}
}

// Occurrences returns the span of every occurrence of term in line,
// including overlapping ones, in increasing start order.
func Occurrences(line, term string) []Span {
	if term == "" {
		return nil
	}
	var spans []Span
	for offset := 0; offset <= len(line)-len(term); {
		i := strings.Index(line[offset:], term)
		if i < 0 {
			break
		}
		start := offset + i
		spans = append(spans, Span{Start: start, End: start + len(term)})
		offset = start + 1
	}
	return spans
}

// Merge joins overlapping spans into single runs. Spans that only touch stay
// separate.
func Merge(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}
	merged := make([]Span, 0, len(spans))
	current := spans[0]
	for _, next := range spans[1:] {
		if next.Start < current.End {
			if next.End > current.End {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}

// Highlight wraps every occurrence of term in line with m. Overlapping
// occurrences nest: at a shared boundary the end markers of closing spans are
// written before the start markers of opening ones, so each occurrence keeps
// its own pair. With Flat markers overlapping occurrences share one pair.
func Highlight(line, term string, m Markers) string {
	spans := Occurrences(line, term)
	if len(spans) == 0 {
		return line
	}
	if m.Flat {
		spans = Merge(spans)
	}

	var b strings.Builder
	b.Grow(len(line) + len(spans)*(len(m.Start)+len(m.End)))

	// Ends are produced in start order: spans share one length, and merged
	// runs never overlap.
	next, closing := 0, 0
	pos := 0
	for closing < len(spans) {
		boundary := spans[closing].End
		if next < len(spans) && spans[next].Start < boundary {
			boundary = spans[next].Start
		}
		b.WriteString(line[pos:boundary])
		pos = boundary
		for closing < next && spans[closing].End == pos {
			b.WriteString(m.End)
			closing++
		}
		for next < len(spans) && spans[next].Start == pos {
			b.WriteString(m.Start)
			next++
		}
	}
	b.WriteString(line[pos:])
	return b.String()
}

// Strip removes every marker of m from s.
func Strip(s string, m Markers) string {
	if m.Start != "" {
		s = strings.ReplaceAll(s, m.Start, "")
	}
	if m.End != "" {
		s = strings.ReplaceAll(s, m.End, "")
	}
	return s
}
