// Package rheology builds yield-strength envelopes: the minimum differential
// stress a lithospheric column sustains at each depth under three competing
// deformation mechanisms.
//
// Mechanisms (all stresses in Pa, SI units throughout):
//
//	plastic      σ = C·cos φ + P·sin φ                          (Coulomb)
//	dislocation  σ = (ε̇/A)^(1/n) · exp((Q + P·V) / (n·R·T))
//	diffusion    σ = (ε̇/A) · exp((Q + P·V) / (R·T)) · dᵐ
//
// P is the lithostatic pressure g·∫ρ dz with density piecewise constant per
// layer, T comes from a geotherm profile and ε̇ is one reference strain rate
// shared by every mechanism and layer. The envelope value is the weakest
// mechanism: σ_yield = min(σ_plastic, σ_dislocation, σ_diffusion).
//
// Usage:
//
//	temps, _ := geotherm.Solve(stack, depths)
//	env, err := rheology.Compute(stack, temps, rheology.DefaultGravity, rheology.DefaultStrainRate)
//	table := env.Profile() // MPa, ready for profile.WriteCSV
//
// Stresses are only converted to MPa by Envelope.Profile; the Arrhenius
// exponents are always evaluated in Pascals.
//
// Errors:
//
//   - ErrInvalidConfiguration: invalid stack, gravity or strain rate ≤ 0, a
//     temperature profile that is not in kelvin, or T ≤ 0 at any evaluated depth.
//   - ErrOutOfRangeDepth: an evaluated depth outside the column.
//   - ErrProfileMismatch: an evaluated depth the temperature profile does not
//     cover. Temperatures are interpolated inside the profile, never
//     extrapolated.
//
// Every check runs before the first sample is evaluated; a failed call
// returns no envelope.
package rheology
