package solver

import (
	"context"
	"time"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
	"svw.info/sudokulab/internal/rules"
)

// CountSolutions counts complete assignments of g, stopping once the count
// reaches limit. Search order matches Solve (row-major cells, ascending
// digits) but continues past each completion instead of returning it.
// The input is not pre-validated; the generator always passes grids it has
// already shown to be rule-compliant.
func (s *BacktrackingSolver) CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, ports.Stats, error) {
	start := time.Now()
	grid := *g
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= limit {
			return true // stop early
		}
		r, c, ok := firstEmpty(&grid)
		if !ok {
			count++
			return count >= limit
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
	_ = dfs()

	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return count, st, err
	}
	return count, st, nil
}
