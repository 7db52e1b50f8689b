package terrane

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Column names of the snapshot table.
const (
	ColStep    = "step"
	ColX       = "x (km)"
	ColZ       = "z (km)"
	ColAstheno = "astheno"
	ColCrust   = "crust"
	ColVx      = "vx"
)

// resultsHeader is the header of the per-model results table.
var resultsHeader = []string{"model", "fragment width", "breakup time"}

type cell struct {
	x, z              float64
	astheno, crust, v float64
}

// ReadSnapshots parses a long-format snapshot table: one row per grid point
// and step, columns in any order, vx optional. Snapshots are returned in
// ascending step order with row 0 at the smallest z (the surface) and X set
// from the distinct x values, so unevenly spaced columns keep their positions.
//
// Errors: ErrMalformedTable for a missing column or unparsable number,
// ErrNonRectangular when a step does not fill a full x × z lattice.
func ReadSnapshots(r io.Reader) ([]Snapshot, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ReadSnapshots: header: %v: %w", err, ErrMalformedTable)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	for _, name := range []string{ColStep, ColX, ColZ, ColAstheno, ColCrust} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("ReadSnapshots: missing column %q: %w", name, ErrMalformedTable)
		}
	}
	vxCol, hasVx := col[ColVx]

	byStep := make(map[int][]cell)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadSnapshots: line %d: %v: %w", line, err, ErrMalformedTable)
		}
		num := func(name string, idx int) (float64, error) {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[idx]), 64)
			if err != nil {
				return 0, fmt.Errorf("ReadSnapshots: line %d %s: %v: %w", line, name, err, ErrMalformedTable)
			}
			return v, nil
		}
		step, err := strconv.Atoi(strings.TrimSpace(rec[col[ColStep]]))
		if err != nil {
			return nil, fmt.Errorf("ReadSnapshots: line %d step: %v: %w", line, err, ErrMalformedTable)
		}
		var c cell
		if c.x, err = num(ColX, col[ColX]); err != nil {
			return nil, err
		}
		if c.z, err = num(ColZ, col[ColZ]); err != nil {
			return nil, err
		}
		if c.astheno, err = num(ColAstheno, col[ColAstheno]); err != nil {
			return nil, err
		}
		if c.crust, err = num(ColCrust, col[ColCrust]); err != nil {
			return nil, err
		}
		if hasVx {
			if c.v, err = num(ColVx, vxCol); err != nil {
				return nil, err
			}
		}
		byStep[step] = append(byStep[step], c)
	}

	steps := make([]int, 0, len(byStep))
	for s := range byStep {
		steps = append(steps, s)
	}
	sort.Ints(steps)

	out := make([]Snapshot, 0, len(steps))
	for _, s := range steps {
		snap, err := latticeSnapshot(s, byStep[s], hasVx)
		if err != nil {
			return nil, fmt.Errorf("ReadSnapshots: step %d: %w", s, err)
		}
		out = append(out, snap)
	}

	return out, nil
}

// latticeSnapshot arranges the cells of one step on their x × z lattice.
func latticeSnapshot(step int, cells []cell, hasVx bool) (Snapshot, error) {
	xs, zs := uniqueSorted(cells, func(c cell) float64 { return c.x }), uniqueSorted(cells, func(c cell) float64 { return c.z })
	if len(xs)*len(zs) != len(cells) {
		return Snapshot{}, ErrNonRectangular
	}
	xi := indexOf(xs)
	zi := indexOf(zs)

	snap := Snapshot{
		Step:          step,
		X:             make([]float64, len(xs)),
		Asthenosphere: makeGrid(len(zs), len(xs)),
		Crust:         makeGrid(len(zs), len(xs)),
	}
	if hasVx {
		snap.Velocity = makeGrid(len(zs), len(xs))
	}
	for i, x := range xs {
		snap.X[i] = x * 1e3
	}
	filled := make([]bool, len(cells))
	for _, c := range cells {
		y, x := zi[c.z], xi[c.x]
		k := y*len(xs) + x
		if filled[k] {
			return Snapshot{}, ErrNonRectangular
		}
		filled[k] = true
		snap.Asthenosphere[y][x] = c.astheno
		snap.Crust[y][x] = c.crust
		if hasVx {
			snap.Velocity[y][x] = c.v
		}
	}

	return snap, nil
}

func uniqueSorted(cells []cell, key func(cell) float64) []float64 {
	seen := make(map[float64]struct{}, len(cells))
	var out []float64
	for _, c := range cells {
		k := key(c)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	sort.Float64s(out)

	return out
}

func indexOf(vals []float64) map[float64]int {
	m := make(map[float64]int, len(vals))
	for i, v := range vals {
		m[v] = i
	}

	return m
}

func makeGrid(h, w int) [][]float64 {
	g := make([][]float64, h)
	for y := range g {
		g[y] = make([]float64, w)
	}

	return g
}

// WriteResults writes one row per model: name, fragment width (m) and the
// breakup step. Models that never broke up report zeros.
func WriteResults(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resultsHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Model,
			strconv.FormatFloat(r.Width, 'g', -1, 64),
			strconv.Itoa(r.BreakupStep),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadResults parses a table written by WriteResults, so interrupted batch
// runs can skip models that were already processed.
func ReadResults(r io.Reader) ([]Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(resultsHeader)
	cr.TrimLeadingSpace = true

	recs, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadResults: %v: %w", err, ErrMalformedTable)
	}
	if len(recs) == 0 || recs[0][0] != resultsHeader[0] {
		return nil, fmt.Errorf("ReadResults: missing header: %w", ErrMalformedTable)
	}

	out := make([]Result, 0, len(recs)-1)
	for i, rec := range recs[1:] {
		width, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("ReadResults: row %d width: %v: %w", i+1, err, ErrMalformedTable)
		}
		step, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("ReadResults: row %d breakup time: %v: %w", i+1, err, ErrMalformedTable)
		}
		out = append(out, Result{
			Model:       rec[0],
			Width:       width,
			BreakupStep: int(step),
			BrokenUp:    step > 0,
			GapCells:    -1,
		})
	}

	return out, nil
}
