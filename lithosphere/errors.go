// SPDX-License-Identifier: MIT

package lithosphere

import "errors"

// Every message is prefixed with "lithosphere: ". Callers match with errors.Is;
// validators wrap these sentinels with the failing field for context.
var (
	// ErrInvalidConfiguration indicates a non-physical or malformed input:
	// a non-positive thickness, conductivity, density or creep constant, a
	// negative heat production or activation volume, a wrong layer count, or
	// a NaN/±Inf anywhere.
	ErrInvalidConfiguration = errors.New("lithosphere: invalid configuration")

	// ErrOutOfRangeDepth indicates a depth outside [0, Height()].
	ErrOutOfRangeDepth = errors.New("lithosphere: depth out of range")
)
