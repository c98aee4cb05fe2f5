package solver

import (
	"context"
	"time"

	"svw.info/nsudoku/internal/domain"
	"svw.info/nsudoku/internal/ports"
)

// Unique counts solutions up to 2 and reports whether exactly one
// exists. The search runs on a clone; the caller's grid is untouched.
func (s *BacktrackingSolver) Unique(ctx context.Context, g *domain.Grid) (bool, ports.Stats) {
	start := time.Now()
	work := g.Clone()
	n := work.Size()
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		r, c, ok := s.Next(work)
		if !ok {
			count++
			return count >= 2
		}
		for v := uint8(1); int(v) <= n; v++ {
			nodes++
			if Allowed(work, r, c, v) {
				work.SetAt(r, c, v)
				if dfs() {
					return true
				}
				work.SetAt(r, c, 0)
			}
		}
		return false
	}
	_ = dfs()
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}
}
