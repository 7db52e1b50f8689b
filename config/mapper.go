package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lithoprof/geotherm"
	"github.com/katalvlaran/lithoprof/lithosphere"
	"github.com/katalvlaran/lithoprof/profile"
	"github.com/katalvlaran/lithoprof/rheology"
)

// DefaultSamples is the depth grid size used when a file sets none.
const DefaultSamples = 600

// Run is a validated model run.
type Run struct {
	Stack              *lithosphere.Stack
	SurfaceTemperature float64 // K
	SurfaceHeatFlux    float64 // W·m⁻²
	Gravity            float64 // m·s⁻²
	StrainRate         float64 // s⁻¹
	Samples            int
}

// Default returns the reference run.
func Default() Run {
	return Run{
		Stack:              lithosphere.Reference(),
		SurfaceTemperature: geotherm.DefaultSurfaceTemperature,
		SurfaceHeatFlux:    geotherm.DefaultSurfaceHeatFlux,
		Gravity:            rheology.DefaultGravity,
		StrainRate:         rheology.DefaultStrainRate,
		Samples:            DefaultSamples,
	}
}

// Depths returns Samples evenly spaced depths from the surface to the model
// bottom.
func (r Run) Depths() ([]float64, error) {
	return profile.Linspace(0, r.Stack.Height(), r.Samples)
}

// GeothermOptions returns the boundary condition as geotherm options.
func (r Run) GeothermOptions() []geotherm.Option {
	return []geotherm.Option{
		geotherm.WithSurfaceTemperature(r.SurfaceTemperature),
		geotherm.WithSurfaceHeatFlux(r.SurfaceHeatFlux),
	}
}

// RheologyOptions returns gravity and strain rate as rheology options.
func (r Run) RheologyOptions() []rheology.Option {
	return []rheology.Option{
		rheology.WithGravity(r.Gravity),
		rheology.WithStrainRate(r.StrainRate),
	}
}

// MapRun overlays dto on the reference run and validates the result.
//
// Errors: lithosphere.ErrInvalidConfiguration.
func MapRun(dto YAMLRun) (Run, error) {
	run := Default()
	setFloat(&run.SurfaceTemperature, dto.SurfaceTemperature)
	setFloat(&run.SurfaceHeatFlux, dto.SurfaceHeatFlux)
	setFloat(&run.Gravity, dto.Gravity)
	setFloat(&run.StrainRate, dto.StrainRate)
	if dto.Samples != nil {
		run.Samples = *dto.Samples
	}

	if err := lithosphere.ValidatePositive("surface_temperature", run.SurfaceTemperature); err != nil {
		return Run{}, err
	}
	if err := lithosphere.ValidateFinite("surface_heat_flux", run.SurfaceHeatFlux); err != nil {
		return Run{}, err
	}
	if err := lithosphere.ValidatePositive("gravity", run.Gravity); err != nil {
		return Run{}, err
	}
	if err := lithosphere.ValidatePositive("strain_rate", run.StrainRate); err != nil {
		return Run{}, err
	}
	if run.Samples < 2 {
		return Run{}, fmt.Errorf("samples=%d must be >= 2: %w", run.Samples, lithosphere.ErrInvalidConfiguration)
	}

	layers, err := mapLayers(dto)
	if err != nil {
		return Run{}, err
	}
	stack, err := lithosphere.NewStack(layers...)
	if err != nil {
		return Run{}, err
	}
	run.Stack = stack

	return run, nil
}

func mapLayers(dto YAMLRun) ([]lithosphere.Layer, error) {
	layers := lithosphere.ReferenceLayers()
	if len(dto.Layers) > len(layers) {
		return nil, fmt.Errorf("layers: got %d, want at most %d: %w",
			len(dto.Layers), lithosphere.LayerCount, lithosphere.ErrInvalidConfiguration)
	}

	for i := range layers {
		l := &layers[i]
		setFloat(&l.Rheology.GrainSize, dto.GrainSize)
		if i >= len(dto.Layers) {
			continue
		}
		y := dto.Layers[i]
		if y.Name != "" {
			l.Name = y.Name
		}
		if y.ThicknessKm != nil {
			l.Thickness = *y.ThicknessKm * profile.MetresPerKilometre
		}
		setFloat(&l.Conductivity, y.Conductivity)
		setFloat(&l.HeatProduction, y.HeatProduction)
		setFloat(&l.Density, y.Density)
		setFloat(&l.Rheology.Cohesion, y.Cohesion)
		if y.FrictionAngleDeg != nil {
			l.Rheology.FrictionAngle = *y.FrictionAngleDeg * math.Pi / 180
		}
		setFloat(&l.Rheology.GrainSize, y.GrainSize)
		if c := y.Dislocation; c != nil {
			setFloat(&l.Rheology.Dislocation.N, c.N)
			setFloat(&l.Rheology.Dislocation.A, c.A)
			setFloat(&l.Rheology.Dislocation.Q, c.Q)
			setFloat(&l.Rheology.Dislocation.V, c.V)
		}
		if c := y.Diffusion; c != nil {
			setFloat(&l.Rheology.Diffusion.A, c.A)
			setFloat(&l.Rheology.Diffusion.Q, c.Q)
			setFloat(&l.Rheology.Diffusion.V, c.V)
			setFloat(&l.Rheology.Diffusion.M, c.M)
		}
	}

	return layers, nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
