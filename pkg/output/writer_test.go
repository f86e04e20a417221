package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jaime-s5/lgrep/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterFormats(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Emit(types.ContextEvent("dir/a.txt", types.Line{Text: "  before  ", Index: 0})))
	require.NoError(t, w.Emit(types.MatchEvent("dir/a.txt", 1, "[beta]")))

	assert.Equal(t, "dir/a.txt-0:   before  \ndir/a.txt-1:[beta]\n", buf.String())
	assert.Equal(t, 2, w.Records())
}

func TestWriterUnknownKind(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	err := w.Emit(types.Event{Kind: types.EventKind(42)})
	assert.Error(t, err)
	assert.Empty(t, buf.String())
	assert.Zero(t, w.Records())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterPropagatesWriteError(t *testing.T) {
	w := NewWriter(failingWriter{})

	err := w.Emit(types.MatchEvent("a", 0, "x"))
	assert.ErrorContains(t, err, "disk full")
}
