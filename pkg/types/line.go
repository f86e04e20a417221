package types

// Line is a single decoded line of a source file.
type Line struct {
	Text  string
	Index int // 0-based ordinal among decoded lines
}
