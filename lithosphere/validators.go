// SPDX-License-Identifier: MIT
// Package: lithosphere
//
// Purpose:
//  - Single source of truth for the physical-parameter checks shared by the
//    stack constructor and the solvers.
//  - Return ErrInvalidConfiguration wrapped with the failing field so the
//    caller sees which constant was rejected.

package lithosphere

import (
	"fmt"
	"math"
)

// validatorErrorf tags a sentinel with the validator and field that failed.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidatePositive ensures v is finite and strictly positive.
// Returns ErrInvalidConfiguration tagged with name otherwise.
func ValidatePositive(name string, v float64) error {
	if !IsFinite(v) || v <= 0 {
		return validatorErrorf(fmt.Sprintf("%s=%g must be > 0", name, v), ErrInvalidConfiguration)
	}

	return nil
}

// ValidateNonNegative ensures v is finite and ≥ 0.
func ValidateNonNegative(name string, v float64) error {
	if !IsFinite(v) || v < 0 {
		return validatorErrorf(fmt.Sprintf("%s=%g must be >= 0", name, v), ErrInvalidConfiguration)
	}

	return nil
}

// ValidateFinite ensures v is neither NaN nor ±Inf.
func ValidateFinite(name string, v float64) error {
	if !IsFinite(v) {
		return validatorErrorf(fmt.Sprintf("%s=%g must be finite", name, v), ErrInvalidConfiguration)
	}

	return nil
}

// Validate checks the dislocation creep constants: n, A and Q strictly
// positive, V non-negative.
func (c DislocationCreep) Validate() error {
	if err := ValidatePositive("dislocation n", c.N); err != nil {
		return err
	}
	if err := ValidatePositive("dislocation A", c.A); err != nil {
		return err
	}
	if err := ValidatePositive("dislocation Q", c.Q); err != nil {
		return err
	}

	return ValidateNonNegative("dislocation V", c.V)
}

// Validate checks the diffusion creep constants: A, Q and m strictly
// positive, V non-negative.
func (c DiffusionCreep) Validate() error {
	if err := ValidatePositive("diffusion A", c.A); err != nil {
		return err
	}
	if err := ValidatePositive("diffusion Q", c.Q); err != nil {
		return err
	}
	if err := ValidatePositive("diffusion m", c.M); err != nil {
		return err
	}

	return ValidateNonNegative("diffusion V", c.V)
}

// Validate checks the Coulomb parameters, grain size and both creep laws.
// The friction angle must lie in (0, π/2).
func (r Rheology) Validate() error {
	if err := ValidatePositive("cohesion", r.Cohesion); err != nil {
		return err
	}
	if err := ValidatePositive("friction angle", r.FrictionAngle); err != nil {
		return err
	}
	if r.FrictionAngle >= math.Pi/2 {
		return validatorErrorf(fmt.Sprintf("friction angle=%g must be < pi/2", r.FrictionAngle), ErrInvalidConfiguration)
	}
	if err := ValidatePositive("grain size", r.GrainSize); err != nil {
		return err
	}
	if err := r.Dislocation.Validate(); err != nil {
		return err
	}

	return r.Diffusion.Validate()
}

// Validate checks every physical constant of the layer.
// Heat production may be zero; everything else must be strictly positive.
func (l Layer) Validate() error {
	if err := ValidatePositive("thickness", l.Thickness); err != nil {
		return err
	}
	if err := ValidatePositive("conductivity", l.Conductivity); err != nil {
		return err
	}
	if err := ValidateNonNegative("heat production", l.HeatProduction); err != nil {
		return err
	}
	if err := ValidatePositive("density", l.Density); err != nil {
		return err
	}

	return l.Rheology.Validate()
}
