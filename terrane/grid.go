package terrane

import "sort"

// Grid treats a 2D field as a graph. It is immutable once built.
// Width and Height define dimensions; Values[y][x] holds the original input
// value, with y = 0 the surface row. Cells with value ≥ Threshold are "in".
type Grid struct {
	Width, Height   int
	Values          [][]float64
	Threshold       float64
	Conn            Connectivity
	neighborOffsets [][2]int
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]float64, threshold float64, conn Connectivity) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]float64, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]float64, w)
		copy(cells[y], values[y])
	}
	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return &Grid{
		Width:           w,
		Height:          h,
		Values:          cells,
		Threshold:       threshold,
		Conn:            conn,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// In reports whether cell (x,y) is at or above the threshold.
func (g *Grid) In(x, y int) bool {
	return g.Values[y][x] >= g.Threshold
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// ConnectedComponents finds all contiguous regions of in-cells.
// Each component is a slice of row-major cell indices in BFS order;
// components are ordered by their first cell in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]int

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.In(x, y) {
				continue
			}
			i0 := g.index(x, y)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := g.Coordinate(queue[qi])
				for _, d := range g.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !g.InBounds(vx, vy) || !g.In(vx, vy) {
						continue
					}
					vi := g.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// SurfaceColumns returns, for one component, the sorted distinct x of its
// cells on the surface row. Components that do not reach the surface yield nil.
func (g *Grid) SurfaceColumns(comp []int) []int {
	var cols []int
	for _, idx := range comp {
		if x, y := g.Coordinate(idx); y == 0 {
			cols = append(cols, x)
		}
	}
	sort.Ints(cols)

	return cols
}
