package solver

import (
	"errors"
	"fmt"

	"svw.info/sudokulab/internal/domain"
)

var (
	// ErrUnsolvable means a rule-compliant grid has no completion.
	ErrUnsolvable = errors.New("puzzle has no solution")

	// errInternal means the search produced a grid that failed the final
	// validation pass. It indicates a bug in the solver, not bad input.
	errInternal = errors.New("internal: solver produced an invalid grid")
)

// InvalidError means the starting grid already violates row/column/box
// uniqueness. It carries the duplicate list in canonical order.
type InvalidError struct {
	Issues []domain.ValidationIssue
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("puzzle violates Sudoku constraints (%d duplicate(s))", len(e.Issues))
}

// BacktrackingSolver is a deterministic exhaustive-search solver: cells are
// visited in row-major order, candidates tried 1 through 9 ascending, and
// the first completion found wins. The same grid always solves to the same
// result, which the generator and tests rely on.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// firstEmpty returns the first empty cell in row-major order.
func firstEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == domain.Empty {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
