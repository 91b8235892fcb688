package usecase

import (
	"context"
	"errors"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, ports.Stats, error) {
	if u.Solver == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return u.Solver.CountSolutions(ctx, g, limit)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, g *domain.Grid) (domain.ValidationResult, error) {
	if u.Validator == nil {
		return domain.ValidationResult{}, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
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
