package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `context: 3
color: never
no_hidden: true
gitignore: true
globs:
  - "*.go"
  - "docs/**"
max_file_size: 1048576
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	f, err := Load(path, false)
	require.NoError(t, err)

	require.NotNil(t, f.Context)
	assert.Equal(t, 3, *f.Context)
	assert.Equal(t, "never", f.Color)
	require.NotNil(t, f.NoHidden)
	assert.True(t, *f.NoHidden)
	require.NotNil(t, f.Gitignore)
	assert.True(t, *f.Gitignore)
	assert.Equal(t, []string{"*.go", "docs/**"}, f.Globs)
	require.NotNil(t, f.MaxFileSize)
	assert.Equal(t, int64(1048576), *f.MaxFileSize)
	assert.Nil(t, f.Follow)
	assert.Nil(t, f.SkipUnreadable)
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	f, err := Load(path, true)
	require.NoError(t, err)
	assert.Nil(t, f.Context)

	_, err = Load(path, false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEmptyPath(t *testing.T) {
	f, err := Load("", false)
	require.NoError(t, err)
	assert.Equal(t, &File{}, f)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "context out of range", content: "context: 300\n", wantErr: "between 0 and 255"},
		{name: "bad color", content: "color: sometimes\n", wantErr: "unknown color mode"},
		{name: "negative size", content: "max_file_size: -1\n", wantErr: "must not be negative"},
		{name: "malformed yaml", content: "context: [\n", wantErr: "parsing config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path, false)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	assert.Equal(t, filepath.Join("/tmp/xdg", "lgrep", "config.yaml"), DefaultPath())
}
