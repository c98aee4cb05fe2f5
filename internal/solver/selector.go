package solver

import "svw.info/nsudoku/internal/domain"

// CellSelector picks the next empty cell to branch on, returning false
// when the grid has no empty cell left. Selection order decides which
// of several acceptable solutions the search finds first, so a solver's
// output is reproducible only for a fixed selector.
type CellSelector func(g *domain.Grid) (r, c int, ok bool)

// FirstEmpty returns the first empty cell in row-major order. This is
// the default: simple, deterministic, no heuristics.
func FirstEmpty(g *domain.Grid) (int, int, bool) {
	n := g.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if g.At(r, c) == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// FewestCandidates returns the empty cell with the fewest admissible
// values (minimum remaining values), ties broken row-major. Costlier
// per node than FirstEmpty but prunes far earlier on large boards.
func FewestCandidates(g *domain.Grid) (int, int, bool) {
	n := g.Size()
	bestR, bestC, best := 0, 0, n+1
	found := false
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if g.At(r, c) != 0 {
				continue
			}
			count := 0
			for v := uint8(1); int(v) <= n; v++ {
				if Allowed(g, r, c, v) {
					count++
				}
			}
			if !found || count < best {
				found = true
				bestR, bestC, best = r, c, count
				if best == 0 {
					return bestR, bestC, true
				}
			}
		}
	}
	return bestR, bestC, found
}
