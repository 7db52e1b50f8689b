// Package profile holds one-dimensional depth profiles and their CSV
// exchange format.
//
// A Profile is an immutable, strictly monotone sequence of (depth, value)
// samples tagged with the Quantity it carries (name and unit). Depths are in
// metres measured downward from the model top; the CSV tables report them in
// kilometres:
//
//	Depth (km),Temperature (K)
//	0,273
//	1.0016694490818031,294.0333...
//
// Profiles are produced by the geotherm and rheology solvers and consumed by
// plotting and post-processing tools, which only read them.
//
// Errors:
//
//   - ErrEmptyProfile: no samples, or depths and values differ in length.
//   - ErrNonMonotonicGrid: depths are not strictly ascending or descending.
//   - ErrNaNInf: a NaN or ±Inf depth or value.
//   - ErrProfileMismatch: a lookup outside the covered depth range.
//   - ErrMalformedTable: a CSV table that cannot be parsed.
package profile
