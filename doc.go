// Package lithoprof computes one-dimensional thermal and mechanical
// profiles of a layered continental lithosphere.
//
// 🚀 What is lithoprof?
//
//	A small set of pure, deterministic solvers:
//		• lithosphere: the fixed four-layer Stack and its validated parameters
//		• geotherm:    steady-state conductive temperature with radiogenic heating
//		• rheology:    plastic, dislocation and diffusion strength; the weakest governs
//		• profile:     depth-indexed series and their CSV tables
//		• config:      YAML run files mapped onto the reference column
//		• terrane:     breakup detection and terrane width in rift model snapshots
//
// Depth is measured in metres from the model top, positive downward; CSV
// tables carry it in kilometres. Temperatures are in kelvin, stresses in
// pascals until a profile is written in MPa.
//
// Quick start:
//
//	depths, _ := profile.Linspace(0, lithosphere.Reference().Height(), 600)
//	temps, _ := geotherm.Solve(lithosphere.Reference(), depths)
//	env, _ := rheology.Solve(lithosphere.Reference(), temps)
//	_ = profile.WriteCSV(os.Stdout, env.Profile())
//
// The lithoprof command (cmd/lithoprof) wraps the same calls.
package lithoprof
