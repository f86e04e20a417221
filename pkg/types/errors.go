package types

import (
	"errors"
	"fmt"
)

// ConfigurationError reports invalid input detected before scanning starts.
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := e.Reason
	if e.Field != "" {
		msg = fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// AccessError reports a file that could not be opened or read.
type AccessError struct {
	Path string
	Op   string // "open", "read" or "stat"
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// BinaryContentError reports a file whose content is not text.
type BinaryContentError struct {
	Path string
	Line int // index of the first line that failed to decode
}

func (e *BinaryContentError) Error() string {
	return fmt.Sprintf("%s: binary content at line %d, skipped", e.Path, e.Line)
}

// TraversalError reports a directory that could not be enumerated.
type TraversalError struct {
	Path string
	Err  error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("traversing %s: %v", e.Path, e.Err)
}

func (e *TraversalError) Unwrap() error { return e.Err }

// IsRecoverable reports whether err only concerns a single file, so a
// recursive scan may skip that file and keep going.
func IsRecoverable(err error) bool {
	var accessErr *AccessError
	var binaryErr *BinaryContentError
	return errors.As(err, &accessErr) || errors.As(err, &binaryErr)
}
