package solver

import (
	"context"
	"time"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
	"svw.info/sudokulab/internal/rules"
	"svw.info/sudokulab/internal/validator"
)

// Solve returns a completion of g, or *InvalidError if g already breaks the
// rules, or ErrUnsolvable if no completion exists. The input grid is never
// mutated; the search runs on a private copy with undo-on-backtrack.
func (s *BacktrackingSolver) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	if res := validator.Check(g); res.Status == domain.StatusInvalid {
		return nil, ports.Stats{Duration: time.Since(start)}, &InvalidError{Issues: res.Issues}
	}

	grid := *g
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := firstEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if rules.IsValidPlacement(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = domain.Empty
			}
		}
		return false
	}

	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	// The search only ever places rule-compliant digits, so the result must
	// validate as complete. Anything else is a solver bug.
	if validator.Check(&grid).Status != domain.StatusValidComplete {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, errInternal
	}
	out := grid
	return &out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
