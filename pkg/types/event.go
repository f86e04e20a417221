package types

// EventKind distinguishes context lines from matching lines.
type EventKind int

const (
	KindContext EventKind = iota
	KindMatch
)

// String returns "context" or "match".
func (k EventKind) String() string {
	switch k {
	case KindContext:
		return "context"
	case KindMatch:
		return "match"
	default:
		return "unknown"
	}
}

// Event is one output record produced by a scan.
type Event struct {
	Kind   EventKind
	Source string // file path or other identifier
	Index  int
	Text   string // highlighted for KindMatch, verbatim for KindContext
}

// ContextEvent builds a context record for line.
func ContextEvent(source string, line Line) Event {
	return Event{Kind: KindContext, Source: source, Index: line.Index, Text: line.Text}
}

// MatchEvent builds a match record carrying the decorated text.
func MatchEvent(source string, index int, highlighted string) Event {
	return Event{Kind: KindMatch, Source: source, Index: index, Text: highlighted}
}
