// Package config loads user defaults for lgrep from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File mirrors the YAML defaults file. Pointer fields distinguish "unset"
// from zero values.
type File struct {
	Context        *int     `yaml:"context,omitempty"`
	Color          string   `yaml:"color,omitempty"`
	NoHidden       *bool    `yaml:"no_hidden,omitempty"`
	Gitignore      *bool    `yaml:"gitignore,omitempty"`
	Globs          []string `yaml:"globs,omitempty"`
	MaxFileSize    *int64   `yaml:"max_file_size,omitempty"`
	Follow         *bool    `yaml:"follow,omitempty"`
	SkipUnreadable *bool    `yaml:"skip_unreadable,omitempty"`
}

// DefaultPath returns $XDG_CONFIG_HOME/lgrep/config.yaml, falling back to
// the platform user config directory.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "lgrep", "config.yaml")
}

// Load reads path. A missing file yields an empty File and no error when
// optional is true.
func Load(path string, optional bool) (*File, error) {
	if path == "" {
		return &File{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &f, nil
}

func (f *File) validate() error {
	if f.Context != nil && (*f.Context < 0 || *f.Context > 255) {
		return fmt.Errorf("context must be between 0 and 255, got %d", *f.Context)
	}
	switch f.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q", f.Color)
	}
	if f.MaxFileSize != nil && *f.MaxFileSize < 0 {
		return fmt.Errorf("max_file_size must not be negative")
	}
	return nil
}
