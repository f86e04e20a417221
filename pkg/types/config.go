package types

// MaxContextSize is the largest accepted context window.
const MaxContextSize = 255

// SearchConfig is shared read-only by every file of a scan.
type SearchConfig struct {
	Term        string
	ContextSize int
}

// Validate rejects configurations that cannot drive a scan.
func (c SearchConfig) Validate() error {
	if c.Term == "" {
		return &ConfigurationError{Field: "string", Reason: "search term must not be empty"}
	}
	if c.ContextSize < 0 || c.ContextSize > MaxContextSize {
		return &ConfigurationError{Field: "context", Reason: "context size must be between 0 and 255"}
	}
	return nil
}
