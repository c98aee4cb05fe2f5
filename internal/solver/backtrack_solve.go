package solver

import (
	"context"
	"time"

	"svw.info/nsudoku/internal/domain"
	"svw.info/nsudoku/internal/ports"
)

// Solve fills g in place by depth-first search: find the next empty
// cell, try candidates 1..N ascending, place, recurse, undo on failure.
// On Solved the grid holds the complete assignment; on Unsolvable or
// Aborted every cell the search touched is back to 0. Recursion depth
// is bounded by the number of empty cells (at most N²).
func (s *BacktrackingSolver) Solve(ctx context.Context, g *domain.Grid) (domain.Outcome, ports.Stats) {
	start := time.Now()
	n := g.Size()
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := s.Next(g)
		if !ok {
			return true
		}
		for v := uint8(1); int(v) <= n; v++ {
			nodes++
			if Allowed(g, r, c, v) {
				g.SetAt(r, c, v)
				if dfs() {
					return true
				}
				g.SetAt(r, c, 0)
			}
		}
		return false
	}
	out := domain.Solved
	if !dfs() {
		out = domain.Unsolvable
		if ctx.Err() != nil {
			out = domain.Aborted
		}
	}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}
}
