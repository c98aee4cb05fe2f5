package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/nsudoku/internal/domain"
	"svw.info/nsudoku/internal/ports"
	"svw.info/nsudoku/internal/solver"
)

// givensFraction is the share of N² cells left as clues per difficulty.
// Matches the classic 9×9 targets (40/34/28/24 of 81) at N=9.
func givensFraction(d domain.Difficulty) float64 {
	switch d {
	case domain.Easy:
		return 0.49
	case domain.Medium:
		return 0.42
	case domain.Hard:
		return 0.35
	default:
		return 0.30 // Expert
	}
}

// Generate creates an n×n puzzle with a unique solution using seed and
// target difficulty. Carving is time-boxed, so on large boards the
// result may hold more givens than the difficulty target.
func (g *UniqueGenerator) Generate(ctx context.Context, n int, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	// 1) full random solution
	full, err := domain.NewGrid(n)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	if !fillRandom(ctx, rng, full) {
		return nil, ports.Stats{Duration: time.Since(start)}, context.Canceled
	}
	// 2) carve out clues while preserving uniqueness
	puz := full.Clone()
	positions := rng.Perm(n * n)

	target := int(float64(n*n) * givensFraction(diff))
	deadline := start.Add(time.Duration(n) * 100 * time.Millisecond)
	nodes := 0

	for _, pos := range positions {
		if time.Now().After(deadline) {
			break
		}
		if n*n-puz.CountEmpty() <= target {
			break
		}
		r, c := pos/n, pos%n
		old := puz.At(r, c)
		if old == 0 {
			continue
		}
		puz.SetAt(r, c, 0)
		unique, st := g.Solver.Unique(ctx, puz)
		nodes += st.Nodes
		if !unique {
			puz.SetAt(r, c, old) // revert
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Size:       n,
		Difficulty: diff,
		Givens:     puz.Rows(),
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom solves an empty grid into a full valid solution by
// shuffling the candidate order at every cell.
func fillRandom(ctx context.Context, rng *rand.Rand, g *domain.Grid) bool {
	n := g.Size()
	nums := make([]uint8, n)
	for i := 0; i < n; i++ {
		nums[i] = uint8(i + 1)
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == n {
			return true
		}
		nr, nc := r, c+1
		if nc == n {
			nr, nc = r+1, 0
		}
		rng.Shuffle(n, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		order := make([]uint8, n)
		copy(order, nums)
		for _, v := range order {
			if solver.Allowed(g, r, c, v) {
				g.SetAt(r, c, v)
				if dfs(nr, nc) {
					return true
				}
				g.SetAt(r, c, 0)
			}
		}
		return false
	}
	return dfs(0, 0)
}
