package geotherm

import (
	"io"
	"log/slog"
)

// Defaults for the top boundary condition of the reference continental model.
const (
	// DefaultSurfaceTemperature is the ground surface temperature, K.
	DefaultSurfaceTemperature = 273.0

	// DefaultSurfaceHeatFlux is the surface heat flux, W·m⁻².
	DefaultSurfaceHeatFlux = 0.055
)

// Option configures Solve.
type Option func(*Options)

// Options holds the resolved solver configuration.
type Options struct {
	surfaceTemperature float64
	surfaceHeatFlux    float64
	logger             *slog.Logger
}

// DefaultOptions returns the reference boundary condition and a logger that
// discards everything.
func DefaultOptions() Options {
	return Options{
		surfaceTemperature: DefaultSurfaceTemperature,
		surfaceHeatFlux:    DefaultSurfaceHeatFlux,
		logger:             slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSurfaceTemperature sets the surface temperature in K. Values ≤ 0 are
// rejected by the solver with ErrInvalidConfiguration.
func WithSurfaceTemperature(t float64) Option {
	return func(o *Options) { o.surfaceTemperature = t }
}

// WithSurfaceHeatFlux sets the surface heat flux in W·m⁻² (positive values
// flow outward).
func WithSurfaceHeatFlux(q float64) Option {
	return func(o *Options) { o.surfaceHeatFlux = q }
}

// WithLogger routes solver diagnostics to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
