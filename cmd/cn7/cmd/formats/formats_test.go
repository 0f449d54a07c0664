package formats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatsCmd(t *testing.T) {
	out := &bytes.Buffer{}
	Cmd.SetOut(out)
	require.NoError(t, Cmd.RunE(Cmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 11)
	assert.Contains(t, out.String(), "audio/x-m4a")
	assert.Contains(t, out.String(), "video/webm")
}
