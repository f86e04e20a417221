package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/jaime-s5/lgrep/pkg/highlight"
	"github.com/jaime-s5/lgrep/pkg/types"
)

// styles holds color formatters for search output
type styles struct {
	match *color.Color
}

// newStyles creates color formatters for search output
// enabled=false respects --color=never and the NO_COLOR env var
func newStyles(enabled bool) *styles {
	s := &styles{
		match: color.New(color.Bold, color.FgRed),
	}
	if enabled {
		s.match.EnableColor()
	} else {
		s.match.DisableColor()
	}
	return s
}

// markers returns the highlight delimiters for matched text.
func (s *styles) markers() highlight.Markers {
	return highlight.Terminal(s.match)
}

// colorEnabled resolves the --color mode against the output stream.
func colorEnabled(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, &types.ConfigurationError{Field: "color", Reason: fmt.Sprintf("unknown mode %q (want auto, always or never)", mode)}
	}
}
