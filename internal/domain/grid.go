package domain

import "fmt"

// Empty marks an unfilled cell.
const Empty uint8 = 0

// GridLen is the length of the string form of a grid.
const GridLen = 81

// Grid is a 9x9 Sudoku grid. Cells hold Empty or a digit 1-9.
// Grids are plain values; copying one yields an independent grid.
type Grid [9][9]uint8

// ParseGrid decodes the 81-character string form, row-major.
// '0' and '.' mean an empty cell.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	if len(s) != GridLen {
		return g, fmt.Errorf("grid string must be exactly %d characters, got %d", GridLen, len(s))
	}
	for i := 0; i < GridLen; i++ {
		ch := s[i]
		switch {
		case ch == '0' || ch == '.':
			// already Empty
		case ch >= '1' && ch <= '9':
			g[i/9][i%9] = ch - '0'
		default:
			return Grid{}, fmt.Errorf("invalid character %q at position %d", ch, i)
		}
	}
	return g, nil
}

// String encodes the grid in row-major 81-character form, '0' for empty.
func (g Grid) String() string {
	var b [GridLen]byte
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b[r*9+c] = '0' + g[r][c]
		}
	}
	return string(b[:])
}

// Clues counts the non-empty cells.
func (g *Grid) Clues() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != Empty {
				n++
			}
		}
	}
	return n
}
