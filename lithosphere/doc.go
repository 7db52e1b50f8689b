// Package lithosphere describes the layered continental column that the
// geotherm and yield-envelope solvers operate on.
//
// What:
//
//   - Layer bundles the thermal, mechanical and rheological constants of one
//     stratum: thickness, thermal conductivity, radiogenic heat production,
//     density, Coulomb failure parameters and two creep laws.
//   - Stack is an immutable, validated sequence of exactly four layers,
//     shallowest first: upper crust, lower crust, mantle lithosphere,
//     asthenosphere.
//   - Stack keeps a small table of layer boundaries and resolves any depth to
//     its containing layer with a single lookup (Locate), so solvers never
//     carry per-layer conditional chains.
//
// Conventions:
//
//   - SI units everywhere (m, W·m⁻¹·K⁻¹, W·m⁻³, kg·m⁻³, Pa, J·mol⁻¹, m³·mol⁻¹).
//   - Depth is measured downward from the model top: 0 is the surface and
//     Height() is the model bottom.
//   - A depth lying exactly on an interface belongs to the shallower layer.
//
// Errors:
//
//   - ErrInvalidConfiguration: non-physical or malformed parameters.
//   - ErrOutOfRangeDepth: a depth outside [0, Height()].
//
// Reference() returns the continental column used to seed the rifting models
// (20 km upper crust, 20 km lower crust, 80 km mantle lithosphere, 480 km
// asthenosphere).
package lithosphere
