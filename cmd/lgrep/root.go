package main

import (
	"github.com/spf13/cobra"

	"github.com/jaime-s5/lgrep/pkg/types"
)

var (
	verbose bool
	quiet   bool

	searchTerm           string
	searchFile           string
	searchDir            string
	searchContext        uint8
	searchColor          string
	searchNoHidden       bool
	searchGitignore      bool
	searchGlobs          []string
	searchMaxFileSize    int64
	searchFollow         bool
	searchSkipUnreadable bool
	searchConfigPath     string
)

var rootCmd = newRootCmd()

// newRootCmd builds the command tree. Flag variables are reset to their
// defaults every time it is called.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lgrep -s STRING (-f FILE | -r DIR)",
		Short: "Searches for a string in the specified file",
		Long: `lgrep is a light version of grep that searches for a literal string in a
file, or recursively in a directory, and prints the lines that match.

Context lines are printed as "path-index: text" and matching lines as
"path-index:text", with every occurrence of the string highlighted.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSearch,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	flags := cmd.Flags()
	flags.StringVarP(&searchTerm, "string", "s", "", "String to search for")
	flags.StringVarP(&searchFile, "file", "f", "", "File to do the search on")
	flags.StringVarP(&searchDir, "recursive", "r", "", "Searches recursively in the specified directory")
	flags.Uint8VarP(&searchContext, "context", "c", 0, "Lines of context before/after matches (0-255)")
	flags.StringVar(&searchColor, "color", "auto", "Color output: auto, always, never")
	flags.BoolVar(&searchNoHidden, "no-hidden", false, "Skip hidden files and directories")
	flags.BoolVar(&searchGitignore, "gitignore", false, "Skip paths listed in the directory's .gitignore")
	flags.StringArrayVarP(&searchGlobs, "glob", "g", nil, "Only search files matching this glob (repeatable)")
	flags.Int64Var(&searchMaxFileSize, "max-file-size", 0, "Maximum file size to search in bytes (0 = no limit)")
	flags.BoolVar(&searchFollow, "follow", false, "Follow symbolic links to files")
	flags.BoolVar(&searchSkipUnreadable, "skip-unreadable", false, "Skip unreadable directories instead of aborting")
	flags.StringVar(&searchConfigPath, "config", "", "Path to a YAML defaults file")

	cmd.MarkFlagRequired("string")
	cmd.MarkFlagsOneRequired("file", "recursive")
	cmd.MarkFlagsMutuallyExclusive("file", "recursive")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &types.ConfigurationError{Reason: err.Error()}
	})

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
