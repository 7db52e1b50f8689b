package geotherm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lithoprof/lithosphere"
	"github.com/katalvlaran/lithoprof/profile"
)

// Sentinels shared with the lithosphere package so callers can match errors
// from either without importing both.
var (
	ErrInvalidConfiguration = lithosphere.ErrInvalidConfiguration
	ErrOutOfRangeDepth      = lithosphere.ErrOutOfRangeDepth
)

// segment is one row of the boundary table: the closed-form solution of a
// single layer anchored at its top.
type segment struct {
	top  float64 // depth of the layer top, m
	tTop float64 // temperature at the top, K
	qTop float64 // heat flux entering the top, W·m⁻²
	k    float64
	h    float64
}

// temperature evaluates the layer solution x metres below its top.
func (s segment) temperature(x float64) float64 {
	return s.tTop + (s.qTop/s.k)*x - (s.h*x*x)/(2*s.k)
}

// flux returns the conductive heat flux x metres below the layer top.
func (s segment) flux(x float64) float64 {
	return s.qTop - s.h*x
}

// Interface reports the state at the base of one layer.
type Interface struct {
	Layer       int
	Name        string
	Depth       float64 // m
	Temperature float64 // K
	HeatFlux    float64 // W·m⁻², flux leaving the layer base
}

// Solution is the piecewise-analytic geotherm of one stack and boundary
// condition. It is immutable and safe for concurrent use.
type Solution struct {
	stack    *lithosphere.Stack
	segments [lithosphere.LayerCount]segment
}

// NewSolution builds the boundary table for stack with the given surface
// temperature (K, > 0) and surface heat flux (W·m⁻²).
//
// Errors: ErrInvalidConfiguration.
// Complexity: O(layers).
func NewSolution(stack *lithosphere.Stack, surfaceTemperature, surfaceHeatFlux float64) (*Solution, error) {
	if err := stack.Validate(); err != nil {
		return nil, fmt.Errorf("NewSolution: %w", err)
	}
	if err := lithosphere.ValidatePositive("surface temperature", surfaceTemperature); err != nil {
		return nil, fmt.Errorf("NewSolution: %w", err)
	}
	if err := lithosphere.ValidateFinite("surface heat flux", surfaceHeatFlux); err != nil {
		return nil, fmt.Errorf("NewSolution: %w", err)
	}

	sol := &Solution{stack: stack}
	t, q := surfaceTemperature, surfaceHeatFlux
	for i := 0; i < lithosphere.LayerCount; i++ {
		l := stack.Layer(i)
		seg := segment{top: stack.Top(i), tTop: t, qTop: q, k: l.Conductivity, h: l.HeatProduction}
		sol.segments[i] = seg
		t = seg.temperature(l.Thickness)
		q = seg.flux(l.Thickness)
	}

	return sol, nil
}

// Stack returns the stack the solution was built for.
func (s *Solution) Stack() *lithosphere.Stack { return s.stack }

// Temperature returns the temperature in K at depth (m below the model top).
//
// Errors: ErrOutOfRangeDepth (also matching ErrInvalidConfiguration).
// Complexity: O(log layers).
func (s *Solution) Temperature(depth float64) (float64, error) {
	seg, x, err := s.at(depth)
	if err != nil {
		return 0, fmt.Errorf("Temperature: %w", err)
	}

	return seg.temperature(x), nil
}

// HeatFlux returns the conductive heat flux in W·m⁻² at depth.
func (s *Solution) HeatFlux(depth float64) (float64, error) {
	seg, x, err := s.at(depth)
	if err != nil {
		return 0, fmt.Errorf("HeatFlux: %w", err)
	}

	return seg.flux(x), nil
}

// Interfaces returns the temperature and heat flux at the base of every
// layer, shallowest first. The last entry is the model bottom.
func (s *Solution) Interfaces() []Interface {
	out := make([]Interface, lithosphere.LayerCount)
	for i, seg := range s.segments {
		l := s.stack.Layer(i)
		out[i] = Interface{
			Layer:       i,
			Name:        l.Name,
			Depth:       s.stack.Bottom(i),
			Temperature: seg.temperature(l.Thickness),
			HeatFlux:    seg.flux(l.Thickness),
		}
	}

	return out
}

// Profile evaluates the solution on depths. Every depth is checked before
// any value is computed, so an error never comes with a partial result.
//
// Errors: ErrOutOfRangeDepth, and the profile grid errors for an empty or
// non-monotone grid; all of them also match ErrInvalidConfiguration.
// Complexity: O(n·log layers).
func (s *Solution) Profile(depths []float64) (*profile.Profile, error) {
	if _, err := profile.ValidateGrid(depths); err != nil {
		return nil, fmt.Errorf("Profile: %w (%w)", err, ErrInvalidConfiguration)
	}
	for _, d := range depths {
		if err := s.stack.ValidateDepth(d); err != nil {
			return nil, fmt.Errorf("Profile: %w (%w)", err, ErrInvalidConfiguration)
		}
	}

	temps := make([]float64, len(depths))
	for i, d := range depths {
		t, err := s.Temperature(d)
		if err != nil {
			return nil, fmt.Errorf("Profile: %w", err)
		}
		temps[i] = t
	}

	return profile.New(profile.Temperature, depths, temps)
}

// at resolves depth to its segment and the distance below that segment's top.
func (s *Solution) at(depth float64) (segment, float64, error) {
	i, err := s.stack.Locate(depth)
	if err != nil {
		return segment{}, 0, fmt.Errorf("%w (%w)", err, ErrInvalidConfiguration)
	}
	seg := s.segments[i]
	x := depth - seg.top
	if x < 0 {
		// within the surface slack of Locate
		x = 0
	}

	return seg, x, nil
}

// Compute is the geotherm contract: temperature at each of depths for stack
// under the given top boundary condition.
//
// Errors: ErrInvalidConfiguration, ErrOutOfRangeDepth.
func Compute(stack *lithosphere.Stack, surfaceTemperature, surfaceHeatFlux float64, depths []float64, opts ...Option) (*profile.Profile, error) {
	all := make([]Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, WithSurfaceTemperature(surfaceTemperature), WithSurfaceHeatFlux(surfaceHeatFlux))

	return Solve(stack, depths, all...)
}

// Solve is Compute with the boundary condition taken from options
// (DefaultSurfaceTemperature and DefaultSurfaceHeatFlux unless overridden).
func Solve(stack *lithosphere.Stack, depths []float64, opts ...Option) (*profile.Profile, error) {
	o := gatherOptions(opts...)

	sol, err := NewSolution(stack, o.surfaceTemperature, o.surfaceHeatFlux)
	if err != nil {
		return nil, err
	}
	p, err := sol.Profile(depths)
	if err != nil {
		return nil, err
	}

	if o.logger.Enabled(context.Background(), slog.LevelDebug) {
		for _, in := range sol.Interfaces() {
			o.logger.Debug("geotherm.interface",
				"layer", in.Name,
				"depth_km", in.Depth/profile.MetresPerKilometre,
				"temperature_k", in.Temperature,
				"heat_flux", in.HeatFlux)
		}
	}
	o.logger.Info("geotherm.solved", "samples", p.Len(), "height_km", stack.Height()/profile.MetresPerKilometre)

	return p, nil
}
