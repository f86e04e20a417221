package enum

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/jaime-s5/lgrep/pkg/types"
)

// FilesystemEnumerator walks a directory tree depth-first, one entry at a
// time, in lexical order within each directory.
type FilesystemEnumerator struct {
	config Config
}

// NewFilesystemEnumerator creates a new filesystem enumerator.
func NewFilesystemEnumerator(config Config) *FilesystemEnumerator {
	return &FilesystemEnumerator{config: config}
}

// Enumerate walks the tree and invokes callback for each eligible file.
// A root that is missing or not a directory is a *types.ConfigurationError
// and nothing is visited. A directory that cannot be listed aborts the walk
// with a *types.TraversalError unless SkipUnreadableDirs is set.
func (e *FilesystemEnumerator) Enumerate(ctx context.Context, callback func(path string) error) error {
	root := e.config.Root
	info, err := os.Stat(root)
	if err != nil {
		return &types.ConfigurationError{Field: "recursive", Reason: "directory does not exist: " + root, Err: err}
	}
	if !info.IsDir() {
		return &types.ConfigurationError{Field: "recursive", Reason: "not a directory: " + root}
	}

	for _, pattern := range e.config.Globs {
		if !doublestar.ValidatePattern(pattern) {
			return &types.ConfigurationError{Field: "glob", Reason: "invalid pattern " + pattern}
		}
	}

	var ignore *gitignore.GitIgnore
	if e.config.UseGitignore {
		gitignorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitignorePath); err == nil {
			ignore, err = gitignore.CompileIgnoreFile(gitignorePath)
			if err != nil {
				return &types.ConfigurationError{Field: "gitignore", Reason: "cannot load " + gitignorePath, Err: err}
			}
		}
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// WalkDir reports an unreadable directory after visiting it.
			traversalErr := &types.TraversalError{Path: path, Err: err}
			if e.config.SkipUnreadableDirs && path != root {
				e.skip(traversalErr)
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			return traversalErr
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path == root {
				return nil
			}
			if !e.config.IncludeHidden && isHidden(d.Name()) {
				return filepath.SkipDir
			}
			if ignore != nil && ignore.MatchesPath(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if !e.config.IncludeHidden && isHidden(d.Name()) {
			return nil
		}
		if ignore != nil && ignore.MatchesPath(rel) {
			return nil
		}
		if !e.matchesGlobs(rel, d.Name()) {
			return nil
		}

		info, err := e.fileInfo(path, d)
		if err != nil {
			e.skip(&types.AccessError{Path: path, Op: "stat", Err: err})
			return nil
		}
		if info == nil || !info.Mode().IsRegular() {
			return nil
		}
		if e.config.MaxFileSize > 0 && info.Size() > e.config.MaxFileSize {
			return nil
		}

		return callback(path)
	})
}

// fileInfo resolves d, following a symlink when configured. It returns a nil
// FileInfo for entries that must be ignored.
func (e *FilesystemEnumerator) fileInfo(path string, d fs.DirEntry) (fs.FileInfo, error) {
	if d.Type()&fs.ModeSymlink != 0 {
		if !e.config.FollowSymlinks {
			return nil, nil
		}
		return os.Stat(path)
	}
	return d.Info()
}

func (e *FilesystemEnumerator) matchesGlobs(rel, name string) bool {
	if len(e.config.Globs) == 0 {
		return true
	}
	for _, pattern := range e.config.Globs {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func (e *FilesystemEnumerator) skip(err error) {
	if e.config.OnSkip != nil {
		e.config.OnSkip(err)
	}
}

// isHidden checks if a filename is hidden (starts with .).
// The special entries "." and ".." are NOT considered hidden.
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}
