package export

import (
	"os"
	"path/filepath"
	"testing"

	"cn7-transcriptor/internal/app/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, Filename, ResolvePath(""))
	assert.Equal(t, filepath.Join(dir, Filename), ResolvePath(dir))
	assert.Equal(t, filepath.Join(dir, "out.txt"), ResolvePath(filepath.Join(dir, "out.txt")))
}

func TestWriteTranscript(t *testing.T) {
	dir := t.TempDir()
	text := "[00:00] Falante A: Olá."

	path, err := WriteTranscript(dir, text)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "CN7_TRANSCRICAO.txt"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, text, string(content))
}

func TestWriteTranscript_CreatesParent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "out.txt")

	path, err := WriteTranscript(target, "x")
	require.NoError(t, err)
	assert.Equal(t, target, path)
}

func TestWriteTranscript_Failure(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0o644))

	_, err := WriteTranscript(filepath.Join(parent, "out.txt"), "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrFileWriteFailed))
}
