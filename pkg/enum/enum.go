package enum

import (
	"context"
)

// Enumerator discovers the files to scan under a root.
type Enumerator interface {
	// Enumerate calls callback once per eligible file, in traversal order.
	// An error returned by callback stops the enumeration and is returned.
	Enumerate(ctx context.Context, callback func(path string) error) error
}

// Config for enumeration.
type Config struct {
	// Root is the directory to walk. It must exist and be a directory.
	Root string

	// IncludeHidden includes hidden files/directories (starting with .).
	IncludeHidden bool

	// MaxFileSize is the maximum file size to process (0 = no limit).
	MaxFileSize int64

	// FollowSymlinks follows symbolic links to regular files. Links to
	// directories are never followed.
	FollowSymlinks bool

	// UseGitignore skips paths matched by Root/.gitignore.
	UseGitignore bool

	// Globs restricts the walk to files matching at least one doublestar
	// pattern, tested against the slash-separated path relative to Root and
	// against the base name.
	Globs []string

	// SkipUnreadableDirs skips a directory that cannot be listed instead of
	// aborting the whole walk.
	SkipUnreadableDirs bool

	// OnSkip is told about every entry skipped because of an error.
	OnSkip func(err error)
}
