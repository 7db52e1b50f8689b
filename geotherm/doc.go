// Package geotherm computes the steady-state conductive temperature profile
// of a layered continental lithosphere.
//
// Model:
//
//	Within each layer i the 1D heat equation with constant conductivity k_i
//	and volumetric heat production H_i has the closed-form solution
//
//	    T(x) = T_i + (q_i / k_i)·x − H_i·x² / (2·k_i)
//
//	where x is the distance below the top of the layer, T_i the temperature
//	at that top and q_i the heat flux entering it. Walking the layers from
//	the surface down,
//
//	    q_0 = surface heat flux,   q_i = q_{i−1} − H_{i−1}·thickness_{i−1}
//	    T_0 = surface temperature, T_i = T_{i−1}(thickness_{i−1})
//
//	so temperature and heat flux are continuous at every interface by
//	construction. No numerical solve is involved.
//
// Conventions:
//
//   - Depth is measured downward from the model top, for every layer.
//   - Interfaces belong to the shallower layer (see lithosphere.Stack.Locate);
//     by continuity either choice yields the same temperature.
//
// Usage:
//
//	stack := lithosphere.Reference()
//	depths, _ := profile.Linspace(0, stack.Height(), 600)
//	temps, err := geotherm.Compute(stack, 273, 0.055, depths)
//
// Errors:
//
//   - ErrInvalidConfiguration: invalid stack, surface temperature ≤ 0 or a
//     non-finite heat flux.
//   - ErrOutOfRangeDepth: a requested depth outside [0, Height]. These errors
//     also match ErrInvalidConfiguration.
//
// Complexity: O(layers) to build a Solution, O(log layers) per depth.
package geotherm
