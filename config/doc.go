// Package config loads a model run description from YAML: the four-layer
// stack plus the scalar parameters of both solvers.
//
// Every field is optional. Missing scalars take the reference values, and a
// layer entry only overrides the fields it sets on the reference layer at
// the same position, so a file may be as small as
//
//	surface_heat_flux: 0.06
//	layers:
//	  - thickness_km: 25
//
// Thicknesses are given in kilometres and friction angles in degrees; the
// mapper converts them to the SI units used by the solvers.
package config
