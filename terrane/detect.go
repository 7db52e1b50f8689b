package terrane

import (
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Snapshot is one output step of a model, gridded with row 0 at the surface.
// Column positions come from X (metres, strictly increasing) when set, and
// are otherwise Dx metres apart starting at 0. Velocity (horizontal, any unit
// with the right sign) is optional.
type Snapshot struct {
	Step          int
	Dx            float64
	X             []float64
	Asthenosphere [][]float64
	Crust         [][]float64
	Velocity      [][]float64
}

// ColumnX returns the horizontal position of column col in metres.
func (s Snapshot) ColumnX(col int) float64 {
	if s.X != nil {
		return s.X[col]
	}

	return float64(col) * s.Dx
}

// Fragment is one continental piece reaching the surface.
type Fragment struct {
	Component    int   // index in Grid.ConnectedComponents
	Columns      []int // sorted surface columns
	Left, Right  float64
	MeanVelocity float64
	HasVelocity  bool
}

// Width returns the distance in metres between the outermost surface cells.
func (f Fragment) Width() float64 {
	return f.Right - f.Left
}

// State is the breakup detection state threaded through a model's
// snapshots. The zero value means "not broken up yet".
type State struct {
	BrokenUp    bool
	BreakupStep int
	Width       float64 // m, terrane width at breakup
	GapCells    int     // rift gap between the two widest fragments, -1 if fewer than two
}

// Detector applies Options to successive snapshots.
type Detector struct {
	opts   Options
	logger *slog.Logger
}

// NewDetector returns a Detector. A nil logger discards diagnostics.
func NewDetector(opts Options, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Detector{opts: opts, logger: logger}
}

// Step advances state by one snapshot. Once broken up the state is
// returned unchanged; otherwise breakup is declared when any surface cell
// exceeds AsthenoThreshold, and the terrane width is measured on that
// snapshot.
func (d *Detector) Step(state State, snap Snapshot) (State, error) {
	if state.BrokenUp {
		return state, nil
	}
	if err := validateSnapshot(snap); err != nil {
		return state, fmt.Errorf("Step %d: %w", snap.Step, err)
	}
	if !d.exposed(snap) {
		d.logger.Debug("terrane.intact", "step", snap.Step)
		return state, nil
	}

	frags, grid, err := d.Fragments(snap)
	if err != nil {
		return state, fmt.Errorf("Step %d: %w", snap.Step, err)
	}

	next := State{BrokenUp: true, BreakupStep: snap.Step, Width: d.terraneWidth(snap, frags), GapCells: -1}
	if len(frags) >= 2 {
		a, b := widestTwo(frags)
		if _, cost, err := grid.Bridge(frags[a].Component, frags[b].Component); err == nil {
			next.GapCells = cost
		}
	}
	d.logger.Info("terrane.breakup",
		"step", snap.Step,
		"fragments", len(frags),
		"width_m", next.Width,
		"gap_cells", next.GapCells)

	return next, nil
}

// exposed reports whether asthenosphere reaches the surface row.
func (d *Detector) exposed(snap Snapshot) bool {
	for _, v := range snap.Asthenosphere[0] {
		if v > d.opts.AsthenoThreshold {
			return true
		}
	}

	return false
}

// Fragments groups the continental cells of snap into components and
// returns those that reach the surface, left to right.
func (d *Detector) Fragments(snap Snapshot) ([]Fragment, *Grid, error) {
	grid, err := NewGrid(snap.Crust, d.opts.CrustThreshold, d.opts.Conn)
	if err != nil {
		return nil, nil, err
	}

	var frags []Fragment
	for ci, comp := range grid.ConnectedComponents() {
		cols := grid.SurfaceColumns(comp)
		if len(cols) == 0 {
			continue
		}
		f := Fragment{
			Component: ci,
			Columns:   cols,
			Left:      snap.ColumnX(cols[0]),
			Right:     snap.ColumnX(cols[len(cols)-1]),
		}
		if snap.Velocity != nil {
			sum := 0.0
			for _, x := range cols {
				sum += snap.Velocity[0][x]
			}
			f.MeanVelocity = sum / float64(len(cols))
			f.HasVelocity = true
		}
		frags = append(frags, f)
	}
	// components are discovered in row-major order, so surface fragments
	// already come left to right

	return frags, grid, nil
}

// terraneWidth implements the selection rule documented on the package.
// With velocity, every surface crust cell moving in +x counts on its own,
// whatever fragment it belongs to; without, the narrowest fragment wins.
func (d *Detector) terraneWidth(snap Snapshot, frags []Fragment) float64 {
	if snap.Velocity != nil {
		lo, hi := math.Inf(1), math.Inf(-1)
		for x, c := range snap.Crust[0] {
			if c < d.opts.CrustThreshold || snap.Velocity[0][x] <= 0 {
				continue
			}
			lo = math.Min(lo, snap.ColumnX(x))
			hi = math.Max(hi, snap.ColumnX(x))
		}
		if hi < lo {
			return 0
		}

		return hi - lo
	}
	if len(frags) == 0 {
		return 0
	}

	w := frags[0].Width()
	for _, f := range frags[1:] {
		w = math.Min(w, f.Width())
	}

	return w
}

// widestTwo returns the indices of the two widest fragments, in input order.
func widestTwo(frags []Fragment) (int, int) {
	a, b := -1, -1
	for i, f := range frags {
		switch {
		case a < 0 || f.Width() > frags[a].Width():
			a, b = i, a
		case b < 0 || f.Width() > frags[b].Width():
			b = i
		}
	}
	if a > b {
		a, b = b, a
	}

	return a, b
}

func validateSnapshot(snap Snapshot) error {
	if len(snap.Asthenosphere) == 0 || len(snap.Asthenosphere[0]) == 0 {
		return ErrEmptyGrid
	}
	h, w := len(snap.Asthenosphere), len(snap.Asthenosphere[0])
	if err := validateSpacing(snap, w); err != nil {
		return err
	}
	fields := [][][]float64{snap.Asthenosphere, snap.Crust}
	if snap.Velocity != nil {
		fields = append(fields, snap.Velocity)
	}
	for _, f := range fields {
		if len(f) != h {
			return ErrNonRectangular
		}
		for _, row := range f {
			if len(row) != w {
				return ErrNonRectangular
			}
		}
	}

	return nil
}

// validateSpacing checks X when given, Dx otherwise.
func validateSpacing(snap Snapshot, w int) error {
	if snap.X == nil {
		if math.IsNaN(snap.Dx) || math.IsInf(snap.Dx, 0) || snap.Dx <= 0 {
			return ErrBadSpacing
		}
		return nil
	}
	if len(snap.X) != w {
		return ErrNonRectangular
	}
	for i, x := range snap.X {
		if math.IsNaN(x) || math.IsInf(x, 0) || (i > 0 && x <= snap.X[i-1]) {
			return ErrBadSpacing
		}
	}

	return nil
}

// Result is the outcome for one model.
type Result struct {
	Model       string
	Width       float64 // m; 0 when the model never broke up
	BreakupStep int     // 0 when the model never broke up
	BrokenUp    bool
	GapCells    int
}

// Analyze runs a fresh Detector state over snapshots in order.
func (d *Detector) Analyze(model string, snapshots []Snapshot) (Result, error) {
	var st State
	for _, s := range snapshots {
		var err error
		if st, err = d.Step(st, s); err != nil {
			return Result{}, fmt.Errorf("Analyze %s: %w", model, err)
		}
		if st.BrokenUp {
			break
		}
	}
	if !st.BrokenUp {
		d.logger.Info("terrane.no_breakup", "model", model, "snapshots", len(snapshots))
		return Result{Model: model, GapCells: -1}, nil
	}

	return Result{
		Model:       model,
		Width:       st.Width,
		BreakupStep: st.BreakupStep,
		BrokenUp:    true,
		GapCells:    st.GapCells,
	}, nil
}
