package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaime-s5/lgrep"
	"github.com/jaime-s5/lgrep/pkg/config"
	"github.com/jaime-s5/lgrep/pkg/types"
)

func runSearch(cmd *cobra.Command, args []string) error {
	if err := applyConfigFile(cmd); err != nil {
		return err
	}

	enabled, err := colorEnabled(searchColor, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	s := newStyles(enabled)
	logger := setupLogger(cmd.ErrOrStderr())

	searcher, err := lgrep.NewSearcher(searchTerm,
		lgrep.WithContextSize(int(searchContext)),
		lgrep.WithMarkers(s.markers()),
		lgrep.WithHidden(!searchNoHidden),
		lgrep.WithGitignore(searchGitignore),
		lgrep.WithGlobs(searchGlobs...),
		lgrep.WithMaxFileSize(searchMaxFileSize),
		lgrep.WithFollowSymlinks(searchFollow),
		lgrep.WithSkipUnreadableDirs(searchSkipUnreadable),
		lgrep.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if searchFile != "" {
		err := searcher.SearchFile(searchFile, out)
		var binErr *types.BinaryContentError
		if errors.As(err, &binErr) {
			logger.Warn("skipping file", "error", err)
			return nil
		}
		return err
	}

	summary, err := searcher.SearchDir(cmd.Context(), searchDir, out)
	if err != nil {
		return err
	}
	logger.Info("search complete", "files", summary.Files, "skipped", summary.Skipped, "matches", summary.Matches)
	return nil
}

// applyConfigFile fills every flag not set on the command line from the
// YAML defaults file.
func applyConfigFile(cmd *cobra.Command) error {
	path, optional := searchConfigPath, false
	if !cmd.Flags().Changed("config") {
		path, optional = config.DefaultPath(), true
	}

	f, err := config.Load(path, optional)
	if err != nil {
		return &types.ConfigurationError{Field: "config", Reason: "cannot load defaults", Err: err}
	}

	changed := cmd.Flags().Changed
	if f.Context != nil && !changed("context") {
		searchContext = uint8(*f.Context)
	}
	if f.Color != "" && !changed("color") {
		searchColor = f.Color
	}
	if f.NoHidden != nil && !changed("no-hidden") {
		searchNoHidden = *f.NoHidden
	}
	if f.Gitignore != nil && !changed("gitignore") {
		searchGitignore = *f.Gitignore
	}
	if len(f.Globs) > 0 && !changed("glob") {
		searchGlobs = f.Globs
	}
	if f.MaxFileSize != nil && !changed("max-file-size") {
		searchMaxFileSize = *f.MaxFileSize
	}
	if f.Follow != nil && !changed("follow") {
		searchFollow = *f.Follow
	}
	if f.SkipUnreadable != nil && !changed("skip-unreadable") {
		searchSkipUnreadable = *f.SkipUnreadable
	}
	if searchMaxFileSize < 0 {
		return &types.ConfigurationError{Field: "max-file-size", Reason: fmt.Sprintf("must not be negative, got %d", searchMaxFileSize)}
	}
	return nil
}
