package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lithoprof/lithosphere"
	"github.com/katalvlaran/lithoprof/terrane"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errb bytes.Buffer
	err = run(args, &out, &errb)

	return out.String(), errb.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

// --- geotherm ---

func TestGeotherm_Stdout(t *testing.T) {
	out, errOut, err := execute(t, "geotherm")
	require.NoError(t, err)

	rows := lines(out)
	require.Len(t, rows, 601)
	assert.Equal(t, "Depth (km),Temperature (K)", rows[0])
	assert.Equal(t, "0,273", rows[1])
	assert.True(t, strings.HasPrefix(rows[600], "600,"), rows[600])

	// interface summary goes to stderr while the table is on stdout
	assert.Contains(t, errOut, "Upper crust")
	assert.Contains(t, errOut, "633.000 K")
	assert.Contains(t, errOut, "1793.000 K")
}

func TestGeotherm_OutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geotherm.csv")
	out, _, err := execute(t, "geotherm", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "881.000 K")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "Depth (km),Temperature (K)\n0,273\n"))
}

func TestGeotherm_Config(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("surface_temperature: 300\nsamples: 3\n"), 0o600))

	out, _, err := execute(t, "geotherm", "-c", cfg)
	require.NoError(t, err)
	rows := lines(out)
	require.Len(t, rows, 4)
	assert.Equal(t, "0,300", rows[1])
	assert.True(t, strings.HasPrefix(rows[2], "300,"), rows[2])
}

func TestGeotherm_InvalidConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("layers:\n  - thickness_km: 0\n"), 0o600))

	_, _, err := execute(t, "geotherm", "--config", cfg)
	assert.ErrorIs(t, err, lithosphere.ErrInvalidConfiguration)

	_, _, err = execute(t, "geotherm", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGeotherm_DebugLogs(t *testing.T) {
	_, errOut, err := execute(t, "--debug", "geotherm", "--out", filepath.Join(t.TempDir(), "g.csv"))
	require.NoError(t, err)
	assert.Contains(t, errOut, "geotherm.interface")
	assert.Contains(t, errOut, "source=")
}

func TestLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "lithoprof.log")
	_, errOut, err := execute(t, "--log-file", logPath, "--json-logs", "geotherm", "--out", filepath.Join(dir, "g.csv"))
	require.NoError(t, err)
	assert.NotContains(t, errOut, "geotherm.solved")

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"geotherm.solved"`)
}

// --- envelope ---

func TestEnvelope_Reference(t *testing.T) {
	out, errOut, err := execute(t, "envelope")
	require.NoError(t, err)

	rows := lines(out)
	require.Len(t, rows, 601)
	assert.Equal(t, "Depth (km),Differential stress (MPa)", rows[0])
	assert.True(t, strings.HasPrefix(rows[1], "0,17.32"), rows[1])
	assert.Contains(t, errOut, "plastic -> dislocation")
}

func TestEnvelope_FromGeothermFile(t *testing.T) {
	dir := t.TempDir()
	gpath := filepath.Join(dir, "geotherm.csv")
	epath := filepath.Join(dir, "envelope.csv")

	_, _, err := execute(t, "geotherm", "-o", gpath)
	require.NoError(t, err)
	out, _, err := execute(t, "envelope", "-g", gpath, "-o", epath)
	require.NoError(t, err)
	assert.Contains(t, out, "plastic -> dislocation")

	b, err := os.ReadFile(epath)
	require.NoError(t, err)
	assert.Len(t, lines(string(b)), 601)
}

func TestEnvelope_WrongProfileUnit(t *testing.T) {
	gpath := filepath.Join(t.TempDir(), "stress.csv")
	require.NoError(t, os.WriteFile(gpath, []byte("Depth (km),Differential stress (MPa)\n0,1\n600,2\n"), 0o600))

	_, _, err := execute(t, "envelope", "--geotherm", gpath)
	assert.ErrorIs(t, err, lithosphere.ErrInvalidConfiguration)
}

// --- terrane ---

const riftTable = `step,x (km),z (km),astheno,crust,vx
1,0,0,0,1,0
1,1,0,0,1,0
1,2,0,0,1,0
1,3,0,0,1,0
2,0,0,0,1,-1
2,1,0,1,0,0
2,2,0,0,1,1
2,3,0,0,1,1
`

const stableTable = `step,x (km),z (km),astheno,crust
1,0,0,0,1
1,1,0,0,1
`

func TestTerrane_Resume(t *testing.T) {
	dir := t.TempDir()
	rift := filepath.Join(dir, "rift.csv")
	stable := filepath.Join(dir, "stable.csv")
	results := filepath.Join(dir, "results.csv")
	require.NoError(t, os.WriteFile(rift, []byte(riftTable), 0o600))
	require.NoError(t, os.WriteFile(stable, []byte(stableTable), 0o600))

	out, _, err := execute(t, "terrane", "-o", results, rift)
	require.NoError(t, err)
	assert.Contains(t, out, "rift: breakup at step 2, terrane 1.0 km")

	// rift.csv is gone, so it can only succeed if the model is skipped
	require.NoError(t, os.Remove(rift))
	out, _, err = execute(t, "terrane", "-o", results, "--resume", rift, stable)
	require.NoError(t, err)
	assert.Contains(t, out, "stable: no breakup")
	assert.NotContains(t, out, "rift:")

	f, err := os.Open(results)
	require.NoError(t, err)
	defer f.Close()
	got, err := terrane.ReadResults(f)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "rift", got[0].Model)
	assert.InDelta(t, 1000.0, got[0].Width, 1e-9)
	assert.Equal(t, 2, got[0].BreakupStep)
	assert.Equal(t, "stable", got[1].Model)
	assert.False(t, got[1].BrokenUp)
}

// TestTerrane_CheckpointsBeforeFailure keeps finished models in the results
// table when a later model fails, so a --resume run only redoes the rest.
func TestTerrane_CheckpointsBeforeFailure(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.csv")
	bad := filepath.Join(dir, "bad.csv")
	results := filepath.Join(dir, "results.csv")
	require.NoError(t, os.WriteFile(good, []byte(riftTable), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte("step,x (km),astheno,crust\n1,0,0,1\n"), 0o600))

	_, _, err := execute(t, "terrane", "-o", results, good, bad)
	require.ErrorIs(t, err, terrane.ErrMalformedTable)

	b, err := os.ReadFile(results)
	require.NoError(t, err)
	assert.Equal(t, "model,fragment width,breakup time\ngood,1000,2\n", string(b))

	require.NoError(t, os.WriteFile(bad, []byte(stableTable), 0o600))
	out, _, err := execute(t, "terrane", "-o", results, "--resume", good, bad)
	require.NoError(t, err)
	assert.NotContains(t, out, "good:")
	assert.Contains(t, out, "bad: no breakup")

	b, err = os.ReadFile(results)
	require.NoError(t, err)
	assert.Equal(t, "model,fragment width,breakup time\ngood,1000,2\nbad,0,0\n", string(b))
}

func TestTerrane_Errors(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, "terrane", "-o", filepath.Join(dir, "r.csv"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("step,x (km)\n1,0\n"), 0o600))
	_, _, err = execute(t, "terrane", "-o", filepath.Join(dir, "r.csv"), bad)
	assert.ErrorIs(t, err, terrane.ErrMalformedTable)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}
