// Package grid holds the height map the cubes are stacked on.
package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidDim is returned by New when the requested dimension is not positive.
var ErrInvalidDim = errors.New("grid: dimension must be positive")

// BoundsError reports an access outside the grid. Accessors panic with it;
// it marks a bug in the caller, not a runtime condition to recover from.
type BoundsError struct {
	X, Y int
	Dim  int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("grid: cell (%d, %d) out of bounds for dimension %d", e.X, e.Y, e.Dim)
}

// Grid is a fixed square array of cells, each holding a stack height and a
// colour index. Values are stored row-major.
type Grid struct {
	dim     int
	heights []int
	colours []int
}

// New allocates a dim x dim grid with every height and colour set to 0.
func New(dim int) (*Grid, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDim, dim)
	}
	return &Grid{
		dim:     dim,
		heights: make([]int, dim*dim),
		colours: make([]int, dim*dim),
	}, nil
}

// Dim returns the number of cells along each side.
func (g *Grid) Dim() int { return g.dim }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.dim && y >= 0 && y < g.dim
}

// Reset sets every height to 0 and every colour to colour.
func (g *Grid) Reset(colour int) {
	for i := range g.heights {
		g.heights[i] = 0
		g.colours[i] = colour
	}
}

// Height returns the stack height at (x, y).
func (g *Grid) Height(x, y int) int { return g.heights[g.index(x, y)] }

// Colour returns the colour index at (x, y).
func (g *Grid) Colour(x, y int) int { return g.colours[g.index(x, y)] }

// SetHeight stores h at (x, y). The value is not range checked.
func (g *Grid) SetHeight(x, y, h int) { g.heights[g.index(x, y)] = h }

// SetColour stores c at (x, y). The value is not range checked.
func (g *Grid) SetColour(x, y, c int) { g.colours[g.index(x, y)] = c }

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(x, y, height, colour int)) {
	for y := 0; y < g.dim; y++ {
		for x := 0; x < g.dim; x++ {
			i := y*g.dim + x
			fn(x, y, g.heights[i], g.colours[i])
		}
	}
}

func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(&BoundsError{X: x, Y: y, Dim: g.dim})
	}
	return y*g.dim + x
}
