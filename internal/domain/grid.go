package domain

import (
	"errors"
	"fmt"
)

// MaxSize is the largest supported side length. Occupancy masks elsewhere
// pack one bit per value into a uint64, so N may not exceed 64.
const MaxSize = 64

var (
	// ErrNotSquare reports a side length that is not a perfect square.
	ErrNotSquare = errors.New("side length is not a perfect square")
	// ErrOutOfRange reports a coordinate outside [0,N). A caller hitting
	// this has a bug; the grid contract is documented in Get/Set.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrBadValue reports a cell value outside [0,N].
	ErrBadValue = errors.New("cell value out of range")
)

// Grid is a mutable N×N board subdivided into B×B blocks, B = √N.
// Cells hold values in [0,N], 0 meaning empty. The zero Grid is not
// usable; construct with NewGrid or FromRows.
//
// Solvers assume the grid they are handed does not already violate the
// row/column/block uniqueness constraints; behavior on a pre-violated
// grid is undefined. Collaborators can screen input with the validator
// package before solving.
type Grid struct {
	n     int
	box   int
	cells []uint8
}

// intSqrt returns √v when v is a perfect square.
func intSqrt(v int) (int, bool) {
	for i := 1; i*i <= v; i++ {
		if i*i == v {
			return i, true
		}
	}
	return 0, false
}

// NewGrid returns an empty n×n grid. n must be a perfect square in [1,MaxSize].
func NewGrid(n int) (*Grid, error) {
	if n < 1 || n > MaxSize {
		return nil, fmt.Errorf("side length %d: must be in [1,%d]", n, MaxSize)
	}
	b, ok := intSqrt(n)
	if !ok {
		return nil, fmt.Errorf("side length %d: %w", n, ErrNotSquare)
	}
	return &Grid{n: n, box: b, cells: make([]uint8, n*n)}, nil
}

// FromRows builds a grid from row-major values, validating dimensions
// and cell ranges.
func FromRows(rows [][]uint8) (*Grid, error) {
	g, err := NewGrid(len(rows))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != g.n {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(row), g.n)
		}
		for c, v := range row {
			if int(v) > g.n {
				return nil, fmt.Errorf("cell (%d,%d)=%d: %w", r, c, v, ErrBadValue)
			}
			g.cells[r*g.n+c] = v
		}
	}
	return g, nil
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.n }

// Box returns the block side length B = √N.
func (g *Grid) Box() int { return g.box }

// At reads a cell without bounds checking beyond the runtime's.
// Intended for the solver hot path; out-of-range coordinates panic.
func (g *Grid) At(r, c int) uint8 { return g.cells[r*g.n+c] }

// SetAt writes a cell without contract checks. See At.
func (g *Grid) SetAt(r, c int, v uint8) { g.cells[r*g.n+c] = v }

// Get reads a cell, reporting ErrOutOfRange for bad coordinates.
func (g *Grid) Get(r, c int) (uint8, error) {
	if r < 0 || r >= g.n || c < 0 || c >= g.n {
		return 0, fmt.Errorf("(%d,%d) on %d×%d grid: %w", r, c, g.n, g.n, ErrOutOfRange)
	}
	return g.cells[r*g.n+c], nil
}

// Set writes a cell, reporting ErrOutOfRange or ErrBadValue on contract
// violations.
func (g *Grid) Set(r, c int, v uint8) error {
	if r < 0 || r >= g.n || c < 0 || c >= g.n {
		return fmt.Errorf("(%d,%d) on %d×%d grid: %w", r, c, g.n, g.n, ErrOutOfRange)
	}
	if int(v) > g.n {
		return fmt.Errorf("value %d on %d×%d grid: %w", v, g.n, g.n, ErrBadValue)
	}
	g.cells[r*g.n+c] = v
	return nil
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{n: g.n, box: g.box, cells: make([]uint8, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// CountEmpty returns the number of cells still holding 0.
func (g *Grid) CountEmpty() int {
	n := 0
	for _, v := range g.cells {
		if v == 0 {
			n++
		}
	}
	return n
}

// Rows returns the cells as a freshly allocated [][]uint8.
func (g *Grid) Rows() [][]uint8 {
	out := make([][]uint8, g.n)
	for r := 0; r < g.n; r++ {
		out[r] = make([]uint8, g.n)
		copy(out[r], g.cells[r*g.n:(r+1)*g.n])
	}
	return out
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.n != o.n {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Footprint returns the size in bytes of the cell store.
func (g *Grid) Footprint() int { return len(g.cells) }
