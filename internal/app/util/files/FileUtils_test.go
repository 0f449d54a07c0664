package files

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	root := t.TempDir()
	testCases := []struct {
		name string
		dir  string
	}{
		{"empty", ""},
		{"current", "."},
		{"existing", root},
		{"nested", filepath.Join(root, "a", "b", "c")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, EnsureDir(tc.dir))
			if tc.dir != "" {
				info, err := os.Stat(tc.dir)
				require.NoError(t, err)
				assert.True(t, info.IsDir())
			}
		})
	}
}

func TestReadLimited(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp3")
	require.NoError(t, os.WriteFile(path, make([]byte, 100*1024), 0o644))

	testCases := []struct {
		name      string
		path      string
		maxBytes  int64
		expectErr error
		expectLen int
	}{
		{name: "no limit", path: path, expectLen: 100 * 1024},
		{name: "under limit", path: path, maxBytes: 200 * 1024, expectLen: 100 * 1024},
		{name: "exact limit", path: path, maxBytes: 100 * 1024, expectLen: 100 * 1024},
		{name: "over limit", path: path, maxBytes: 1024, expectErr: ErrTooLarge},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := ReadLimited(tc.path, tc.maxBytes)
			if tc.expectErr != nil {
				assert.True(t, errors.Is(err, tc.expectErr))
				return
			}
			require.NoError(t, err)
			assert.Len(t, data, tc.expectLen)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadLimited(filepath.Join(dir, "absent.mp3"), 0)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("directory", func(t *testing.T) {
		_, err := ReadLimited(dir, 0)
		assert.Error(t, err)
	})
}
