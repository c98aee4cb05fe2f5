package usecase

import (
	"context"
	"errors"

	"svw.info/nsudoku/internal/domain"
	"svw.info/nsudoku/internal/ports"
)

// Service wires solver, generator, validator, hinter, and storage
// behind one facade for the CLI and the HTTP adapter.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solve fills g in place. Grids whose givens already collide are
// rejected up front so the engine never sees a pre-violated board.
func (u *Service) Solve(ctx context.Context, g *domain.Grid) (domain.Outcome, ports.Stats, error) {
	if u.Solver == nil {
		return domain.Unsolvable, ports.Stats{}, errNotConfigured
	}
	if u.Validator != nil {
		ok, conflicts, err := u.Validator.Validate(ctx, g)
		if err != nil {
			return domain.Unsolvable, ports.Stats{}, err
		}
		if !ok {
			return domain.Unsolvable, ports.Stats{}, &ConflictError{Conflicts: conflicts}
		}
	}
	out, st := u.Solver.Solve(ctx, g)
	return out, st, nil
}

// ConflictError reports givens that already violate the uniqueness
// constraints before any search.
type ConflictError struct {
	Conflicts []domain.CellCoord
}

func (e *ConflictError) Error() string { return "puzzle givens violate constraints" }

func (u *Service) Generate(ctx context.Context, n int, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, n, seed, d)
}

func (u *Service) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

func (u *Service) Hint(ctx context.Context, g *domain.Grid, max domain.StrategyTier) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g, max)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
