package lithosphere

import (
	"fmt"
	"sort"
)

// depthTol is the relative slack accepted at the model top and bottom so
// that grids produced by unit conversion (km → m) still land inside
// [0, Height()].
const depthTol = 1e-12

// Stack is an immutable, validated four-layer column. Build it with NewStack;
// the zero value is not usable.
type Stack struct {
	layers [LayerCount]Layer
	// bottoms[i] is the depth of the base of layer i; bottoms[LayerCount-1] == height.
	bottoms [LayerCount]float64
	height  float64
}

// NewStack validates exactly LayerCount layers (shallowest first) and builds
// the boundary table. Layers with an empty Name receive the conventional one.
//
// Errors: ErrInvalidConfiguration on a wrong layer count or any invalid
// constant; the message names the layer and field.
// Complexity: O(LayerCount).
func NewStack(layers ...Layer) (*Stack, error) {
	if len(layers) != LayerCount {
		return nil, validatorErrorf(fmt.Sprintf("NewStack: got %d layers, want %d", len(layers), LayerCount), ErrInvalidConfiguration)
	}

	s := &Stack{}
	depth := 0.0
	for i, l := range layers {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("NewStack: layer %d (%s): %w", i, LayerName(i), err)
		}
		if l.Name == "" {
			l.Name = LayerName(i)
		}
		depth += l.Thickness
		s.layers[i] = l
		s.bottoms[i] = depth
	}
	s.height = depth

	return s, nil
}

// Validate re-checks every layer. A Stack built by NewStack is always valid;
// this guards zero values and nil receivers handed to solvers.
func (s *Stack) Validate() error {
	if s == nil || s.height <= 0 {
		return validatorErrorf("Stack: nil or empty", ErrInvalidConfiguration)
	}
	for i, l := range s.layers {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("Stack: layer %d (%s): %w", i, l.Name, err)
		}
	}

	return nil
}

// Height returns the total model height (sum of thicknesses) in metres.
func (s *Stack) Height() float64 { return s.height }

// Len returns the number of layers (always LayerCount).
func (s *Stack) Len() int { return LayerCount }

// Layer returns a copy of layer i. It panics if i is out of range, like a
// slice index.
func (s *Stack) Layer(i int) Layer { return s.layers[i] }

// Layers returns a copy of all layers, shallowest first.
func (s *Stack) Layers() []Layer {
	out := make([]Layer, LayerCount)
	copy(out, s.layers[:])

	return out
}

// Top returns the depth of the top of layer i.
func (s *Stack) Top(i int) float64 {
	if i == 0 {
		return 0
	}

	return s.bottoms[i-1]
}

// Bottom returns the depth of the base of layer i.
func (s *Stack) Bottom(i int) float64 { return s.bottoms[i] }

// Locate returns the index of the layer containing depth.
// A depth exactly on an interface resolves to the shallower layer; depth 0
// resolves to the first layer.
//
// Errors: ErrOutOfRangeDepth if depth is NaN or outside [0, Height()].
// Complexity: O(log LayerCount).
func (s *Stack) Locate(depth float64) (int, error) {
	d, err := s.clamp(depth)
	if err != nil {
		return 0, err
	}

	// first layer whose base is at or below d
	i := sort.Search(LayerCount, func(k int) bool { return d <= s.bottoms[k] })
	if i == LayerCount {
		i = LayerCount - 1
	}

	return i, nil
}

// ValidateDepth reports ErrOutOfRangeDepth for depths outside [0, Height()].
func (s *Stack) ValidateDepth(depth float64) error {
	_, err := s.clamp(depth)

	return err
}

// clamp snaps depths within depthTol of either end onto the range and
// rejects everything else outside it.
func (s *Stack) clamp(depth float64) (float64, error) {
	if !IsFinite(depth) {
		return 0, validatorErrorf(fmt.Sprintf("depth=%g", depth), ErrOutOfRangeDepth)
	}
	slack := depthTol * s.height
	switch {
	case depth < -slack || depth > s.height+slack:
		return 0, validatorErrorf(fmt.Sprintf("depth=%g outside [0, %g]", depth, s.height), ErrOutOfRangeDepth)
	case depth < 0:
		return 0, nil
	case depth > s.height:
		return s.height, nil
	}

	return depth, nil
}
