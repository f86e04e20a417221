// Package scanner implements the streaming line-match engine: it reads a
// source line by line, classifies each line and emits match and context
// events through a Sink.
package scanner

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jaime-s5/lgrep/pkg/highlight"
	"github.com/jaime-s5/lgrep/pkg/matcher"
	"github.com/jaime-s5/lgrep/pkg/types"
)

// Scanner scans sources for a single search configuration. It holds no
// per-file state and can be reused for every file of a recursive scan.
type Scanner struct {
	config  types.SearchConfig
	matcher matcher.Matcher
	markers highlight.Markers
}

// New creates a Scanner. The configuration is validated first.
func New(config types.SearchConfig, markers highlight.Markers) (*Scanner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Scanner{
		config:  config,
		matcher: matcher.NewLiteral(config.Term),
		markers: markers,
	}, nil
}

// Config returns the search configuration.
func (s *Scanner) Config() types.SearchConfig {
	return s.config
}

// ScanFile opens path and scans it. Open and read failures are returned as
// *types.AccessError, non-text content as *types.BinaryContentError.
func (s *Scanner) ScanFile(path string, sink Sink) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, &types.AccessError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	return s.Scan(path, f, sink)
}

// Scan reads r line by line, labelling events with source.
func (s *Scanner) Scan(source string, r io.Reader, sink Sink) (Stats, error) {
	var stats Stats
	window := matcher.NewWindow(s.config.ContextSize)
	lr := newLineReader(r)

	for index := 0; ; index++ {
		text, err := lr.next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if errors.Is(err, errBinary) {
			return stats, &types.BinaryContentError{Path: source, Line: index}
		}
		if err != nil {
			return stats, &types.AccessError{Path: source, Op: "read", Err: err}
		}
		stats.Lines++
		current := types.Line{Text: text, Index: index}

		if s.matcher.Match(text) {
			for _, before := range window.Flush() {
				if err := sink.Emit(types.ContextEvent(source, before)); err != nil {
					return stats, fmt.Errorf("emitting context: %w", err)
				}
				stats.Context++
			}
			decorated := highlight.Highlight(text, s.config.Term, s.markers)
			if err := sink.Emit(types.MatchEvent(source, index, decorated)); err != nil {
				return stats, fmt.Errorf("emitting match: %w", err)
			}
			stats.Matches++
			window.MarkMatch(current)
			continue
		}

		if s.config.ContextSize == 0 {
			continue
		}
		if window.IsAfter(index) {
			if err := sink.Emit(types.ContextEvent(source, current)); err != nil {
				return stats, fmt.Errorf("emitting context: %w", err)
			}
			stats.Context++
			continue
		}
		window.Push(current)
	}
}
