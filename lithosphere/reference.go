package lithosphere

import "math"

// Reference values for the continental column used to initialise the
// rifting models.
const (
	// ReferenceGrainSize is the grain size shared by all layers, m.
	ReferenceGrainSize = 5e-3

	// ReferenceCohesion is the Coulomb cohesion shared by all layers, Pa.
	ReferenceCohesion = 20e6

	// ReferenceFrictionAngleDeg is the internal friction angle, degrees.
	ReferenceFrictionAngleDeg = 30.0
)

// ReferenceLayers returns the reference layers, shallowest first. The slice
// is freshly allocated so callers may tweak a copy before NewStack.
func ReferenceLayers() []Layer {
	phi := ReferenceFrictionAngleDeg * math.Pi / 180
	rheo := func(disl DislocationCreep, diff DiffusionCreep) Rheology {
		return Rheology{
			Cohesion:      ReferenceCohesion,
			FrictionAngle: phi,
			Dislocation:   disl,
			Diffusion:     diff,
			GrainSize:     ReferenceGrainSize,
		}
	}

	return []Layer{
		{
			Name:           LayerName(UpperCrust),
			Thickness:      20e3,
			Conductivity:   2.5,
			HeatProduction: 1.0e-6,
			Density:        2800,
			Rheology: rheo(
				DislocationCreep{N: 4, A: 8.57e-28, Q: 223e3, V: 0},
				DiffusionCreep{A: 5.97e-19, Q: 223e3, V: 0, M: 3},
			),
		},
		{
			Name:           LayerName(LowerCrust),
			Thickness:      20e3,
			Conductivity:   2.5,
			HeatProduction: 0.4e-6,
			Density:        2900,
			Rheology: rheo(
				DislocationCreep{N: 3, A: 7.13e-18, Q: 345e3, V: 0},
				DiffusionCreep{A: 2.99e-25, Q: 159e3, V: 0, M: 2},
			),
		},
		{
			Name:           LayerName(MantleLithosphere),
			Thickness:      80e3,
			Conductivity:   3.0,
			HeatProduction: 0.02e-6,
			Density:        3250,
			Rheology: rheo(
				DislocationCreep{N: 3.5, A: 6.52e-16, Q: 530e3, V: 18e-6},
				DiffusionCreep{A: 2.27e-15, Q: 375e3, V: 10e-6, M: 3},
			),
		},
		{
			Name:           LayerName(Asthenosphere),
			Thickness:      480e3,
			Conductivity:   57.15,
			HeatProduction: 0,
			Density:        3300,
			Rheology: rheo(
				DislocationCreep{N: 3.5, A: 5.33e-19, Q: 480e3, V: 11e-6},
				DiffusionCreep{A: 1.50e-18, Q: 335e3, V: 4e-6, M: 3},
			),
		},
	}
}

// Reference returns the reference continental stack (600 km total).
func Reference() *Stack {
	s, err := NewStack(ReferenceLayers()...)
	if err != nil {
		// the reference constants are fixed and valid
		panic(err)
	}

	return s
}
