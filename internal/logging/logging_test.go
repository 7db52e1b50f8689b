package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lithoprof/internal/logging"
)

func TestSetup_TextInfo(t *testing.T) {
	var buf bytes.Buffer
	l, cleanup, err := logging.Setup(logging.Config{Writer: &buf})
	require.NoError(t, err)
	defer func() { require.NoError(t, cleanup()) }()

	l.Debug("hidden")
	l.Info("geotherm.solved", "samples", 3)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=geotherm.solved")
	assert.Contains(t, out, "samples=3")
	assert.NotContains(t, out, "source=")
}

func TestSetup_JSONDebug(t *testing.T) {
	var buf bytes.Buffer
	l, _, err := logging.Setup(logging.Config{Writer: &buf, JSON: true, Debug: true})
	require.NoError(t, err)

	l.Debug("geotherm.interface", "layer", "upper crust")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2) // logger.initialized + ours

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "upper crust", rec["layer"])
	assert.Contains(t, rec, "source")
	ts, ok := rec["time"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(ts, "Z"), "time %q is not UTC", ts)
}

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lithoprof.log")
	l, cleanup, err := logging.Setup(logging.Config{File: path})
	require.NoError(t, err)

	l.Info("terrane.breakup", "step", 12)
	require.NoError(t, cleanup())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "step=12")
}

func TestSetup_FileError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	l, cleanup, err := logging.Setup(logging.Config{File: filepath.Join(blocker, "x.log")})
	require.Error(t, err)
	require.NotNil(t, l)
	require.NoError(t, cleanup())
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { logging.Discard().Info("dropped") })
}
