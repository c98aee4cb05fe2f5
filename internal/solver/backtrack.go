// Package solver holds the exhaustive-search engines. The baseline
// BacktrackingSolver recomputes row/column/block scans on every
// candidate check; BitsetSolver keeps incremental occupancy masks
// instead. Both produce the same first-found solution for the default
// cell order, and both assume the grid they are handed does not already
// violate the uniqueness constraints.
package solver

import "svw.info/nsudoku/internal/domain"

// BacktrackingSolver is a straightforward recursive solver. Next picks
// the cell to branch on; the zero value is not usable, construct with
// NewBacktrackingSolver.
type BacktrackingSolver struct {
	Next CellSelector
}

func NewBacktrackingSolver() *BacktrackingSolver {
	return &BacktrackingSolver{Next: FirstEmpty}
}

// Allowed reports whether value v can be placed at (r,c) without
// duplicating v in the cell's row, column, or block. It scans all three
// scopes in full, O(N) per call, and does not check that (r,c) itself
// is empty.
func Allowed(g *domain.Grid, r, c int, v uint8) bool {
	n := g.Size()
	for i := 0; i < n; i++ {
		if g.At(r, i) == v || g.At(i, c) == v {
			return false
		}
	}
	b := g.Box()
	br, bc := r-r%b, c-c%b
	for dr := 0; dr < b; dr++ {
		for dc := 0; dc < b; dc++ {
			if g.At(br+dr, bc+dc) == v {
				return false
			}
		}
	}
	return true
}
