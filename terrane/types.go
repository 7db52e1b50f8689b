package terrane

import "errors"

// Sentinel errors for terrane operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("terrane: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths or fields of differing shapes.
	ErrNonRectangular = errors.New("terrane: all rows and fields must have the same shape")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("terrane: component index out of range")
	// ErrNoPath indicates no bridge exists between two components.
	ErrNoPath = errors.New("terrane: no path between specified components")
	// ErrMalformedTable indicates an unreadable snapshot or results table.
	ErrMalformedTable = errors.New("terrane: malformed table")
	// ErrBadSpacing indicates a non-positive Dx or column positions that are
	// not finite and strictly increasing.
	ErrBadSpacing = errors.New("terrane: column positions must be finite and strictly increasing")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options contains the detection thresholds.
type Options struct {
	// AsthenoThreshold is the asthenosphere fraction above which a surface
	// cell counts as exposed mantle.
	AsthenoThreshold float64
	// CrustThreshold is the minimum crust fraction of a continental cell.
	CrustThreshold float64
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns AsthenoThreshold=0.001, CrustThreshold=0.5, Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		AsthenoThreshold: 0.001,
		CrustThreshold:   0.5,
		Conn:             Conn4,
	}
}
