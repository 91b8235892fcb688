package ports

import (
	"context"
	"time"

	"svw.info/sudokulab/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver finds a completion of a grid and can count completions up to a cap.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, Stats, error)
	CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, Stats, error)
}

// Generator creates new puzzles deterministic in (seed, difficulty).
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator classifies grids and reports duplicates per unit.
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (domain.ValidationResult, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
