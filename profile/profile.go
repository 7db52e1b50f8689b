package profile

import (
	"fmt"
	"math"
	"sort"
)

// Profile is an immutable depth profile. Build it with New.
type Profile struct {
	quantity  Quantity
	depths    []float64
	values    []float64
	ascending bool
}

// New copies depths and values into a Profile.
//
// Errors: ErrEmptyProfile, ErrNaNInf, ErrNonMonotonicGrid.
// Complexity: O(n).
func New(q Quantity, depths, values []float64) (*Profile, error) {
	if len(depths) == 0 || len(depths) != len(values) {
		return nil, fmt.Errorf("New: %d depths, %d values: %w", len(depths), len(values), ErrEmptyProfile)
	}
	for i := range values {
		if !finite(values[i]) {
			return nil, fmt.Errorf("New: sample %d: %w", i, ErrNaNInf)
		}
	}
	ascending, err := ValidateGrid(depths)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	p := &Profile{
		quantity:  q,
		depths:    make([]float64, len(depths)),
		values:    make([]float64, len(values)),
		ascending: ascending,
	}
	copy(p.depths, depths)
	copy(p.values, values)

	return p, nil
}

// Quantity returns the value column description.
func (p *Profile) Quantity() Quantity { return p.quantity }

// Len returns the number of samples.
func (p *Profile) Len() int { return len(p.depths) }

// Depth returns the i-th depth in metres.
func (p *Profile) Depth(i int) float64 { return p.depths[i] }

// Value returns the i-th value.
func (p *Profile) Value(i int) float64 { return p.values[i] }

// Ascending reports whether depths increase with the sample index.
func (p *Profile) Ascending() bool { return p.ascending }

// Depths returns a copy of the depth grid.
func (p *Profile) Depths() []float64 {
	out := make([]float64, len(p.depths))
	copy(out, p.depths)

	return out
}

// Values returns a copy of the values.
func (p *Profile) Values() []float64 {
	out := make([]float64, len(p.values))
	copy(out, p.values)

	return out
}

// Range returns the shallowest and deepest covered depth.
func (p *Profile) Range() (lo, hi float64) {
	lo, hi = p.depths[0], p.depths[len(p.depths)-1]
	if !p.ascending {
		lo, hi = hi, lo
	}

	return lo, hi
}

// Covers reports whether depth lies within the covered range.
func (p *Profile) Covers(depth float64) bool {
	lo, hi := p.Range()

	return depth >= lo && depth <= hi
}

// At returns the value at depth, interpolating linearly between the two
// bracketing samples. Exact grid depths return the stored value unchanged.
//
// Errors: ErrProfileMismatch when depth is NaN or outside Range().
// Complexity: O(log n).
func (p *Profile) At(depth float64) (float64, error) {
	if math.IsNaN(depth) || !p.Covers(depth) {
		lo, hi := p.Range()
		return 0, fmt.Errorf("At: depth %g outside [%g, %g]: %w", depth, lo, hi, ErrProfileMismatch)
	}

	n := len(p.depths)
	// index of the first sample at or beyond depth in grid order
	i := sort.Search(n, func(k int) bool {
		if p.ascending {
			return p.depths[k] >= depth
		}
		return p.depths[k] <= depth
	})
	if p.depths[i] == depth || i == 0 {
		return p.values[i], nil
	}

	d0, d1 := p.depths[i-1], p.depths[i]
	v0, v1 := p.values[i-1], p.values[i]
	w := (depth - d0) / (d1 - d0)

	return v0 + w*(v1-v0), nil
}

// Scale returns a new profile with every value multiplied by factor and the
// given quantity, e.g. Pa → MPa with factor 1e-6.
func (p *Profile) Scale(q Quantity, factor float64) *Profile {
	out := &Profile{
		quantity:  q,
		depths:    p.Depths(),
		values:    make([]float64, len(p.values)),
		ascending: p.ascending,
	}
	for i, v := range p.values {
		out.values[i] = v * factor
	}

	return out
}

// ValidateGrid checks that depths is non-empty, finite and strictly
// monotone, and reports its direction. A single sample counts as ascending.
//
// Errors: ErrEmptyProfile, ErrNaNInf, ErrNonMonotonicGrid.
func ValidateGrid(depths []float64) (ascending bool, err error) {
	if len(depths) == 0 {
		return false, ErrEmptyProfile
	}
	for i, d := range depths {
		if !finite(d) {
			return false, fmt.Errorf("depth %d: %w", i, ErrNaNInf)
		}
	}
	ascending = true
	if len(depths) > 1 {
		ascending = depths[1] > depths[0]
		for i := 1; i < len(depths); i++ {
			if (depths[i] > depths[i-1]) != ascending || depths[i] == depths[i-1] {
				return false, fmt.Errorf("depth %d: %w", i, ErrNonMonotonicGrid)
			}
		}
	}

	return ascending, nil
}

// Linspace returns n evenly spaced depths from start to stop inclusive; the
// last element equals stop exactly.
//
// Errors: ErrBadGrid when n < 2, start == stop, or either bound is not finite.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 2 || start == stop || !finite(start) || !finite(stop) {
		return nil, fmt.Errorf("Linspace(%g, %g, %d): %w", start, stop, n, ErrBadGrid)
	}

	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := 0; i < n-1; i++ {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop

	return out, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
