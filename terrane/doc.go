// Package terrane detects continental breakup in gridded simulation
// snapshots and measures the width of the detached continental fragment.
//
// What:
//
//   - Grid treats a rectangular [][]float64 field (row 0 at the surface) as a
//     graph of cells and finds connected components of cells whose value is
//     at or above a threshold, under 4- or 8-connectivity.
//   - Bridge finds the minimum number of sub-threshold cells separating two
//     components (0–1 BFS); between two continental margins this is the
//     width of the rift gap in cells.
//   - Detector walks a model's snapshots in order, threading an explicit
//     State: breakup happens at the first snapshot where asthenosphere
//     reaches the surface row; at that snapshot the fragment width is
//     measured and the state is frozen.
//
// Fragment width:
//
//	Surface crust cells are those with crust fraction ≥ CrustThreshold on
//	row 0. With a velocity field, the terrane is every surface crust cell
//	moving in +x (velocity > 0), taken cell by cell, and the width is the
//	distance between the outermost of them. Without one, surface crust is
//	grouped into fragments and the narrowest fragment is the terrane.
//	Distances use the column positions in Snapshot.X, so uneven meshes are
//	measured in their own coordinates.
//
// Input and output tables:
//
//	snapshots: step,x (km),z (km),astheno,crust[,vx]   (long format, z = depth)
//	results:   model,fragment width,breakup time       (width in m, time = step)
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed grids.
//   - ErrComponentIndex, ErrNoPath: invalid Bridge requests.
//   - ErrMalformedTable: unreadable CSV input.
//   - ErrBadSpacing: a non-positive Dx or non-increasing X.
package terrane
