package rheology

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lithoprof/lithosphere"
)

// Mechanism identifies a deformation mechanism.
type Mechanism int

const (
	// Plastic is brittle/plastic Coulomb failure.
	Plastic Mechanism = iota
	// DislocationCreep is power-law dislocation creep.
	DislocationCreep
	// DiffusionCreep is grain-size sensitive diffusion creep.
	DiffusionCreep
)

// Mechanisms lists every mechanism in tie-breaking order.
var Mechanisms = []Mechanism{Plastic, DislocationCreep, DiffusionCreep}

// String returns a lower-case name.
func (m Mechanism) String() string {
	switch m {
	case Plastic:
		return "plastic"
	case DislocationCreep:
		return "dislocation"
	case DiffusionCreep:
		return "diffusion"
	}

	return fmt.Sprintf("mechanism(%d)", int(m))
}

// PlasticStrength returns the Coulomb yield stress C·cos φ + P·sin φ.
// It does not depend on temperature.
func PlasticStrength(r lithosphere.Rheology, pressure float64) float64 {
	return r.Cohesion*math.Cos(r.FrictionAngle) + pressure*math.Sin(r.FrictionAngle)
}

// DislocationStrength returns (ε̇/A)^(1/n)·exp((Q+PV)/(nRT)).
// The caller guarantees T > 0.
func DislocationStrength(c lithosphere.DislocationCreep, strainRate, pressure, temperature float64) float64 {
	return math.Pow(strainRate/c.A, 1/c.N) *
		math.Exp((c.Q+pressure*c.V)/(c.N*GasConstant*temperature))
}

// DiffusionStrength returns (ε̇/A)·exp((Q+PV)/(RT))·dᵐ.
// The caller guarantees T > 0.
func DiffusionStrength(c lithosphere.DiffusionCreep, grainSize, strainRate, pressure, temperature float64) float64 {
	return (strainRate / c.A) *
		math.Exp((c.Q+pressure*c.V)/(GasConstant*temperature)) *
		math.Pow(grainSize, c.M)
}

// Strengths evaluates all three mechanisms for one layer, indexed by
// Mechanism.
func Strengths(r lithosphere.Rheology, strainRate, pressure, temperature float64) [3]float64 {
	return [3]float64{
		Plastic:          PlasticStrength(r, pressure),
		DislocationCreep: DislocationStrength(r.Dislocation, strainRate, pressure, temperature),
		DiffusionCreep:   DiffusionStrength(r.Diffusion, r.GrainSize, strainRate, pressure, temperature),
	}
}

// weakest returns the minimum strength and its mechanism; ties go to the
// earlier mechanism in Mechanisms order.
func weakest(s [3]float64) (float64, Mechanism) {
	best, m := s[Plastic], Plastic
	for _, k := range Mechanisms[1:] {
		if s[k] < best {
			best, m = s[k], k
		}
	}

	return best, m
}
