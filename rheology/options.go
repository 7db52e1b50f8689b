package rheology

import (
	"io"
	"log/slog"
)

// Option configures Solve and Compute.
type Option func(*Options)

// Options holds the resolved envelope configuration.
type Options struct {
	gravity    float64
	strainRate float64
	depths     []float64
	logger     *slog.Logger
}

// DefaultOptions returns DefaultGravity, DefaultStrainRate, evaluation on the
// temperature profile's own grid, and a discarding logger.
func DefaultOptions() Options {
	return Options{
		gravity:    DefaultGravity,
		strainRate: DefaultStrainRate,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithGravity sets the gravitational acceleration in m·s⁻².
func WithGravity(g float64) Option {
	return func(o *Options) { o.gravity = g }
}

// WithStrainRate sets the reference strain rate in s⁻¹.
func WithStrainRate(rate float64) Option {
	return func(o *Options) { o.strainRate = rate }
}

// WithDepths evaluates the envelope on depths instead of the temperature
// profile's grid. Every depth must be covered by the temperature profile.
// The slice is copied.
func WithDepths(depths []float64) Option {
	cp := make([]float64, len(depths))
	copy(cp, depths)

	return func(o *Options) { o.depths = cp }
}

// WithLogger routes envelope diagnostics to l. A nil logger keeps the default.
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
