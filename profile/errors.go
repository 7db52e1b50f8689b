package profile

import "errors"

var (
	// ErrEmptyProfile indicates an empty profile or mismatched slice lengths.
	ErrEmptyProfile = errors.New("profile: empty profile or length mismatch")

	// ErrNonMonotonicGrid indicates depths that are not strictly monotone.
	ErrNonMonotonicGrid = errors.New("profile: depth grid is not strictly monotone")

	// ErrNaNInf indicates a NaN or ±Inf sample.
	ErrNaNInf = errors.New("profile: NaN or Inf encountered")

	// ErrProfileMismatch indicates a requested depth that the profile does not
	// cover. Profiles never extrapolate.
	ErrProfileMismatch = errors.New("profile: depth not covered by profile")

	// ErrMalformedTable indicates a CSV table with a bad header, row width or
	// number.
	ErrMalformedTable = errors.New("profile: malformed table")

	// ErrBadGrid indicates an invalid Linspace request.
	ErrBadGrid = errors.New("profile: invalid grid request")
)
