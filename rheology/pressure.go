package rheology

import (
	"fmt"

	"github.com/katalvlaran/lithoprof/lithosphere"
)

// overburden holds the cumulative load ρ·h (kg·m⁻²) above the top of every
// layer, so pressure at any depth is one lookup plus one partial layer.
type overburden struct {
	stack *lithosphere.Stack
	load  [lithosphere.LayerCount]float64
}

func newOverburden(stack *lithosphere.Stack) overburden {
	ob := overburden{stack: stack}
	acc := 0.0
	for i := 0; i < lithosphere.LayerCount; i++ {
		ob.load[i] = acc
		l := stack.Layer(i)
		acc += l.Density * l.Thickness
	}

	return ob
}

// pressure returns g·(load above the containing layer + ρ_i·(depth − top_i)).
func (ob overburden) pressure(depth, gravity float64) (float64, int, error) {
	i, err := ob.stack.Locate(depth)
	if err != nil {
		return 0, 0, err
	}
	x := depth - ob.stack.Top(i)
	if x < 0 {
		x = 0
	}

	return gravity * (ob.load[i] + ob.stack.Layer(i).Density*x), i, nil
}

// LithostaticPressure returns the weight of the overlying column at depth,
// in Pa, with density held constant within each layer.
//
// Errors: ErrInvalidConfiguration for an invalid stack or gravity ≤ 0,
// ErrOutOfRangeDepth for a depth outside the column.
func LithostaticPressure(stack *lithosphere.Stack, depth, gravity float64) (float64, error) {
	if err := stack.Validate(); err != nil {
		return 0, fmt.Errorf("LithostaticPressure: %w", err)
	}
	if err := lithosphere.ValidatePositive("gravity", gravity); err != nil {
		return 0, fmt.Errorf("LithostaticPressure: %w", err)
	}
	p, _, err := newOverburden(stack).pressure(depth, gravity)
	if err != nil {
		return 0, fmt.Errorf("LithostaticPressure: %w", err)
	}

	return p, nil
}
