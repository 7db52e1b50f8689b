package rheology

import (
	"fmt"

	"github.com/katalvlaran/lithoprof/lithosphere"
	"github.com/katalvlaran/lithoprof/profile"
)

// Sentinels re-exported so callers can match every envelope error from this
// package.
var (
	ErrInvalidConfiguration = lithosphere.ErrInvalidConfiguration
	ErrOutOfRangeDepth      = lithosphere.ErrOutOfRangeDepth
	ErrProfileMismatch      = profile.ErrProfileMismatch
)

// Sample is the full envelope state at one depth.
type Sample struct {
	Depth       float64 // m
	Layer       int
	Pressure    float64 // Pa
	Temperature float64 // K
	// Components holds the strength of each mechanism in Pa, indexed by Mechanism.
	Components [3]float64
	Strength   float64 // Pa, minimum of Components
	Governing  Mechanism
}

// Transition marks a depth where the governing mechanism changes between
// two consecutive samples.
type Transition struct {
	Depth float64 // depth of the first sample governed by To, m
	From  Mechanism
	To    Mechanism
}

// Envelope is an immutable yield-strength envelope.
type Envelope struct {
	samples   []Sample
	strength  *profile.Profile
	ascending bool
}

// Len returns the number of samples.
func (e *Envelope) Len() int { return len(e.samples) }

// Sample returns the i-th sample.
func (e *Envelope) Sample(i int) Sample { return e.samples[i] }

// Depths returns a copy of the depth grid in metres.
func (e *Envelope) Depths() []float64 { return e.strength.Depths() }

// Strength returns a copy of the envelope values in Pa.
func (e *Envelope) Strength() []float64 { return e.strength.Values() }

// Pressure returns a copy of the lithostatic pressure in Pa.
func (e *Envelope) Pressure() []float64 {
	out := make([]float64, len(e.samples))
	for i, s := range e.samples {
		out[i] = s.Pressure
	}

	return out
}

// Component returns the strength of mechanism m at every depth, in Pa.
func (e *Envelope) Component(m Mechanism) []float64 {
	out := make([]float64, len(e.samples))
	for i, s := range e.samples {
		out[i] = s.Components[m]
	}

	return out
}

// Governing returns the weakest mechanism at every depth.
func (e *Envelope) Governing() []Mechanism {
	out := make([]Mechanism, len(e.samples))
	for i, s := range e.samples {
		out[i] = s.Governing
	}

	return out
}

// StrengthProfile returns the envelope as a profile in Pa.
func (e *Envelope) StrengthProfile() *profile.Profile { return e.strength }

// Profile returns the envelope in MPa, the unit of persisted tables.
func (e *Envelope) Profile() *profile.Profile {
	return e.strength.Scale(profile.DifferentialStressMPa, 1/PascalsPerMegapascal)
}

// Transitions lists every change of governing mechanism, in order of
// increasing depth regardless of grid direction. The first plastic→creep
// entry is the brittle–ductile transition.
func (e *Envelope) Transitions() []Transition {
	n := len(e.samples)
	at := func(k int) Sample {
		if e.ascending {
			return e.samples[k]
		}
		return e.samples[n-1-k]
	}

	var out []Transition
	for k := 1; k < n; k++ {
		prev, cur := at(k-1), at(k)
		if prev.Governing != cur.Governing {
			out = append(out, Transition{Depth: cur.Depth, From: prev.Governing, To: cur.Governing})
		}
	}

	return out
}

// Compute is the yield-envelope contract: the minimum of the plastic,
// dislocation and diffusion strengths at every depth of temperature (or of
// WithDepths), for the given gravity (m·s⁻²) and reference strain rate (s⁻¹).
//
// Errors: ErrInvalidConfiguration, ErrOutOfRangeDepth, ErrProfileMismatch.
// Complexity: O(n·log layers + n·log m) for n evaluated depths and m
// temperature samples.
func Compute(stack *lithosphere.Stack, temperature *profile.Profile, gravity, strainRate float64, opts ...Option) (*Envelope, error) {
	all := make([]Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, WithGravity(gravity), WithStrainRate(strainRate))

	return Solve(stack, temperature, all...)
}

// Solve is Compute with gravity and strain rate taken from options
// (DefaultGravity and DefaultStrainRate unless overridden).
func Solve(stack *lithosphere.Stack, temperature *profile.Profile, opts ...Option) (*Envelope, error) {
	o := gatherOptions(opts...)

	if err := validateInputs(stack, temperature, o); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	depths := o.depths
	if depths == nil {
		depths = temperature.Depths()
	}
	ascending, err := profile.ValidateGrid(depths)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w (%w)", err, ErrInvalidConfiguration)
	}

	// Pass 1: resolve layer, pressure and temperature everywhere and reject
	// anything invalid before evaluating a single mechanism.
	ob := newOverburden(stack)
	samples := make([]Sample, len(depths))
	for i, d := range depths {
		p, layer, err := ob.pressure(d, o.gravity)
		if err != nil {
			return nil, fmt.Errorf("Solve: %w", err)
		}
		t, err := temperature.At(d)
		if err != nil {
			return nil, fmt.Errorf("Solve: %w", err)
		}
		if err := lithosphere.ValidatePositive(fmt.Sprintf("temperature at depth %g", d), t); err != nil {
			return nil, fmt.Errorf("Solve: %w", err)
		}
		samples[i] = Sample{Depth: d, Layer: layer, Pressure: p, Temperature: t}
	}

	// Pass 2: evaluate the mechanisms.
	values := make([]float64, len(samples))
	var counts [3]int
	for i := range samples {
		s := &samples[i]
		s.Components = Strengths(stack.Layer(s.Layer).Rheology, o.strainRate, s.Pressure, s.Temperature)
		s.Strength, s.Governing = weakest(s.Components)
		values[i] = s.Strength
		counts[s.Governing]++
	}

	strength, err := profile.New(profile.DifferentialStress, depths, values)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	env := &Envelope{samples: samples, strength: strength, ascending: ascending}

	o.logger.Info("rheology.envelope",
		"samples", len(samples),
		"plastic", counts[Plastic],
		"dislocation", counts[DislocationCreep],
		"diffusion", counts[DiffusionCreep])
	for _, tr := range env.Transitions() {
		o.logger.Debug("rheology.transition",
			"depth_km", tr.Depth/profile.MetresPerKilometre,
			"from", tr.From.String(),
			"to", tr.To.String())
	}

	return env, nil
}

// validateInputs runs the scalar checks shared by every call.
func validateInputs(stack *lithosphere.Stack, temperature *profile.Profile, o Options) error {
	if err := stack.Validate(); err != nil {
		return err
	}
	if err := lithosphere.ValidatePositive("gravity", o.gravity); err != nil {
		return err
	}
	if err := lithosphere.ValidatePositive("strain rate", o.strainRate); err != nil {
		return err
	}
	if temperature == nil {
		return fmt.Errorf("temperature profile is nil: %w", ErrInvalidConfiguration)
	}
	if u := temperature.Quantity().Unit; u != "" && u != profile.Temperature.Unit {
		return fmt.Errorf("temperature profile unit %q, want %q: %w", u, profile.Temperature.Unit, ErrInvalidConfiguration)
	}

	return nil
}
