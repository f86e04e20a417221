// Package lgrep searches text files for a literal string and reports matching
// lines with surrounding context.
//
// # Basic Usage
//
// Search a single file and print records to stdout:
//
//	searcher, err := lgrep.NewSearcher("TODO", lgrep.WithContextSize(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := searcher.SearchFile("main.go", os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// # Recursive Search
//
// Files that cannot be read or are not text are logged and skipped:
//
//	summary, err := searcher.SearchDir(ctx, "./src", os.Stdout)
//	fmt.Printf("%d files, %d skipped\n", summary.Files, summary.Skipped)
package lgrep

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jaime-s5/lgrep/pkg/enum"
	"github.com/jaime-s5/lgrep/pkg/highlight"
	"github.com/jaime-s5/lgrep/pkg/output"
	"github.com/jaime-s5/lgrep/pkg/scanner"
	"github.com/jaime-s5/lgrep/pkg/types"
)

// Re-export the error taxonomy so callers can use errors.As without
// importing subpackages.
type (
	ConfigurationError = types.ConfigurationError
	AccessError        = types.AccessError
	BinaryContentError = types.BinaryContentError
	TraversalError     = types.TraversalError
	Markers            = highlight.Markers
)

// Searcher runs one search configuration against files, readers or trees.
type Searcher struct {
	scanner *scanner.Scanner
	config  *searcherConfig
}

type searcherConfig struct {
	contextSize int
	markers     highlight.Markers
	walk        enum.Config
	logger      *slog.Logger
}

// Option configures a Searcher.
type Option func(*searcherConfig)

// WithContextSize sets how many lines of context to print on each side of
// a match. Default is 0.
func WithContextSize(n int) Option {
	return func(c *searcherConfig) {
		c.contextSize = n
	}
}

// WithMarkers sets the delimiters written around each occurrence. Default is
// no markers.
func WithMarkers(m Markers) Option {
	return func(c *searcherConfig) {
		c.markers = m
	}
}

// WithHidden controls whether hidden files and directories are searched in
// recursive mode. Default is true.
func WithHidden(include bool) Option {
	return func(c *searcherConfig) {
		c.walk.IncludeHidden = include
	}
}

// WithGitignore skips paths matched by the root .gitignore.
func WithGitignore(enabled bool) Option {
	return func(c *searcherConfig) {
		c.walk.UseGitignore = enabled
	}
}

// WithGlobs restricts recursive searches to files matching any pattern.
func WithGlobs(patterns ...string) Option {
	return func(c *searcherConfig) {
		c.walk.Globs = append(c.walk.Globs, patterns...)
	}
}

// WithMaxFileSize skips files larger than n bytes (0 = no limit).
func WithMaxFileSize(n int64) Option {
	return func(c *searcherConfig) {
		c.walk.MaxFileSize = n
	}
}

// WithFollowSymlinks follows symbolic links to regular files.
func WithFollowSymlinks(enabled bool) Option {
	return func(c *searcherConfig) {
		c.walk.FollowSymlinks = enabled
	}
}

// WithSkipUnreadableDirs skips directories that cannot be listed instead of
// aborting the search.
func WithSkipUnreadableDirs(enabled bool) Option {
	return func(c *searcherConfig) {
		c.walk.SkipUnreadableDirs = enabled
	}
}

// WithLogger sets the logger used for skipped files and scan summaries.
func WithLogger(logger *slog.Logger) Option {
	return func(c *searcherConfig) {
		c.logger = logger
	}
}

// NewSearcher validates the configuration and creates a Searcher for term.
func NewSearcher(term string, opts ...Option) (*Searcher, error) {
	config := &searcherConfig{
		walk:   enum.Config{IncludeHidden: true},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(config)
	}

	s, err := scanner.New(types.SearchConfig{Term: term, ContextSize: config.contextSize}, config.markers)
	if err != nil {
		return nil, err
	}
	return &Searcher{scanner: s, config: config}, nil
}

// Term returns the search term.
func (s *Searcher) Term() string {
	return s.scanner.Config().Term
}

// ContextSize returns the configured context size.
func (s *Searcher) ContextSize() int {
	return s.scanner.Config().ContextSize
}

// SearchFile searches a single file. Every error is returned, including
// *AccessError and *BinaryContentError.
func (s *Searcher) SearchFile(path string, w io.Writer) error {
	out := output.NewWriter(w)
	stats, err := s.scanner.ScanFile(path, out)
	if err != nil {
		return err
	}
	s.config.logger.Debug("scanned file", "path", path, "lines", stats.Lines, "matches", stats.Matches)
	return nil
}

// SearchReader searches r, labelling records with source.
func (s *Searcher) SearchReader(source string, r io.Reader, w io.Writer) error {
	_, err := s.scanner.Scan(source, r, output.NewWriter(w))
	return err
}

// Summary describes a finished recursive search.
type Summary struct {
	Files   int // files scanned to completion
	Skipped int // files or directories skipped because of an error
	Matches int
	Records int
}

// SearchDir searches every eligible file under root, depth-first. Files that
// cannot be opened or are not text are logged and skipped. A root that is not
// a directory is a *ConfigurationError; an unreadable directory aborts the
// search with a *TraversalError unless WithSkipUnreadableDirs is set.
func (s *Searcher) SearchDir(ctx context.Context, root string, w io.Writer) (Summary, error) {
	var summary Summary
	logger := s.config.logger
	out := output.NewWriter(w)

	walk := s.config.walk
	walk.Root = root
	walk.OnSkip = func(err error) {
		summary.Skipped++
		logger.Warn("skipping", "error", err)
	}

	err := enum.NewFilesystemEnumerator(walk).Enumerate(ctx, func(path string) error {
		stats, err := s.scanner.ScanFile(path, out)
		summary.Matches += stats.Matches
		if err != nil {
			if types.IsRecoverable(err) {
				summary.Skipped++
				logger.Warn("skipping file", "error", err)
				return nil
			}
			return fmt.Errorf("searching %s: %w", path, err)
		}
		summary.Files++
		logger.Debug("scanned file", "path", path, "lines", stats.Lines, "matches", stats.Matches)
		return nil
	})
	summary.Records = out.Records()
	if err != nil {
		return summary, err
	}

	logger.Debug("search complete", "files", summary.Files, "skipped", summary.Skipped, "matches", summary.Matches)
	return summary, nil
}
