// Package rules is the single source of truth for Sudoku placement
// constraints: row, column, and 3x3 box uniqueness.
package rules

import "svw.info/sudokulab/internal/domain"

// IsValidPlacement reports whether writing v at (row, col) keeps the grid
// free of duplicates. The cell (row, col) itself is excluded from the scan,
// so the current value there (if any) never conflicts with itself.
// v must be a digit 1-9.
func IsValidPlacement(g *domain.Grid, row, col int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if i != col && g[row][i] == v {
			return false
		}
		if i != row && g[i][col] == v {
			return false
		}
	}
	br, bc := (row/3)*3, (col/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			r, c := br+dr, bc+dc
			if (r != row || c != col) && g[r][c] == v {
				return false
			}
		}
	}
	return true
}

// Row returns the 9 cells of row r.
func Row(g *domain.Grid, r int) [9]uint8 {
	return g[r]
}

// Column returns the 9 cells of column c.
func Column(g *domain.Grid, c int) [9]uint8 {
	var out [9]uint8
	for r := 0; r < 9; r++ {
		out[r] = g[r][c]
	}
	return out
}

// Box returns the 9 cells of box b in reading order. Box b covers rows
// 3*(b/3)..3*(b/3)+2 and columns 3*(b%3)..3*(b%3)+2.
func Box(g *domain.Grid, b int) [9]uint8 {
	var out [9]uint8
	br, bc := (b/3)*3, (b%3)*3
	for i := 0; i < 9; i++ {
		out[i] = g[br+i/3][bc+i%3]
	}
	return out
}
