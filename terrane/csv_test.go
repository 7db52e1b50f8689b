package terrane_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lithoprof/terrane"
)

// Two steps of a 3×2 field, listed out of order and with the depth row
// first, the way pandas writes a melted frame.
const snapshotTable = `z (km),x (km),step,astheno,crust,vx
# written by the post-processing export
0,0,7,0,1,1
0,2.5,7,1,0,0
0,5,7,0,1,-1
10,0,7,1,0,0
10,2.5,7,1,0,0
10,5,7,1,0,0
0,0,3,0,1,0
0,2.5,3,0,1,0
0,5,3,0,1,0
10,5,3,1,0,0
10,2.5,3,1,0,0
10,0,3,1,0,0
`

func TestReadSnapshots(t *testing.T) {
	snaps, err := terrane.ReadSnapshots(strings.NewReader(snapshotTable))
	require.NoError(t, err)
	require.Len(t, snaps, 2)

	first := snaps[0]
	assert.Equal(t, 3, first.Step)
	assert.Equal(t, []float64{0, 2500, 5000}, first.X)
	assert.Equal(t, [][]float64{{0, 0, 0}, {1, 1, 1}}, first.Asthenosphere)

	second := snaps[1]
	assert.Equal(t, 7, second.Step)
	assert.Equal(t, []float64{0, 1, 0}, second.Asthenosphere[0])
	assert.Equal(t, []float64{1, 0, 1}, second.Crust[0])
	assert.Equal(t, []float64{1, 0, -1}, second.Velocity[0])

	d := terrane.NewDetector(terrane.DefaultOptions(), nil)
	res, err := d.Analyze("csv", snaps)
	require.NoError(t, err)
	assert.Equal(t, 7, res.BreakupStep)
	assert.Zero(t, res.Width) // single-column fragments
	assert.Equal(t, 1, res.GapCells)
}

func TestReadSnapshots_WithoutVelocity(t *testing.T) {
	table := "step,x (km),z (km),astheno,crust\n1,0,0,0,1\n1,1,0,0,1\n"
	snaps, err := terrane.ReadSnapshots(strings.NewReader(table))
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Nil(t, snaps[0].Velocity)
	assert.Equal(t, []float64{0, 1000}, snaps[0].X)
}

// TestReadSnapshots_UnevenColumns keeps the real x positions of an
// adaptive mesh.
func TestReadSnapshots_UnevenColumns(t *testing.T) {
	var b strings.Builder
	b.WriteString("step,x (km),z (km),astheno,crust,vx\n")
	xs := []string{"0", "1", "3", "7", "15"}
	astheno := []string{"0", "1", "0", "0", "0"}
	crust := []string{"1", "0", "1", "1", "1"}
	vx := []string{"-1", "0", "1", "1", "1"}
	for i := range xs {
		b.WriteString("4," + xs[i] + ",0," + astheno[i] + "," + crust[i] + "," + vx[i] + "\n")
	}

	snaps, err := terrane.ReadSnapshots(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, []float64{0, 1000, 3000, 7000, 15000}, snaps[0].X)

	res, err := terrane.NewDetector(terrane.DefaultOptions(), nil).Analyze("uneven", snaps)
	require.NoError(t, err)
	assert.Equal(t, 4, res.BreakupStep)
	assert.InDelta(t, 12000.0, res.Width, 1e-9)
}

func TestReadSnapshots_Errors(t *testing.T) {
	cases := map[string]struct {
		table string
		want  error
	}{
		"Empty":         {"", terrane.ErrMalformedTable},
		"MissingColumn": {"step,x (km),z (km),crust\n1,0,0,1\n", terrane.ErrMalformedTable},
		"BadNumber":     {"step,x (km),z (km),astheno,crust\n1,0,0,abc,1\n1,1,0,0,1\n", terrane.ErrMalformedTable},
		"BadStep":       {"step,x (km),z (km),astheno,crust\n1.5,0,0,0,1\n", terrane.ErrMalformedTable},
		"ShortRow":      {"step,x (km),z (km),astheno,crust\n1,0,0,0\n", terrane.ErrMalformedTable},
		"MissingCell": {
			"step,x (km),z (km),astheno,crust\n1,0,0,0,1\n1,1,0,0,1\n1,0,5,0,1\n",
			terrane.ErrNonRectangular,
		},
		"DuplicateCell": {
			"step,x (km),z (km),astheno,crust\n1,0,0,0,1\n1,1,0,0,1\n1,1,0,0,1\n1,0,5,0,1\n",
			terrane.ErrNonRectangular,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := terrane.ReadSnapshots(strings.NewReader(tc.table))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestResults_RoundTrip(t *testing.T) {
	in := []terrane.Result{
		{Model: "wide_rift", Width: 125000, BreakupStep: 42, BrokenUp: true, GapCells: 3},
		{Model: "stable", GapCells: -1},
	}
	var buf bytes.Buffer
	require.NoError(t, terrane.WriteResults(&buf, in))
	assert.Equal(t, "model,fragment width,breakup time\nwide_rift,125000,42\nstable,0,0\n", buf.String())

	out, err := terrane.ReadResults(&buf)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "wide_rift", out[0].Model)
	assert.InDelta(t, 125000.0, out[0].Width, 1e-9)
	assert.Equal(t, 42, out[0].BreakupStep)
	assert.True(t, out[0].BrokenUp)
	assert.False(t, out[1].BrokenUp)
}

func TestReadResults_Errors(t *testing.T) {
	_, err := terrane.ReadResults(strings.NewReader(""))
	assert.ErrorIs(t, err, terrane.ErrMalformedTable)

	_, err = terrane.ReadResults(strings.NewReader("a,b,c\n"))
	assert.ErrorIs(t, err, terrane.ErrMalformedTable)

	_, err = terrane.ReadResults(strings.NewReader("model,fragment width,breakup time\nm,wide,1\n"))
	assert.ErrorIs(t, err, terrane.ErrMalformedTable)
}
