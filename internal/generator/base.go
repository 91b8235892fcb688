package generator

import (
	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/rng"
)

// baseSolution is a fixed valid complete grid. Every generated solution is
// a permutation of it.
var baseSolution = domain.Grid{
	{1, 2, 3, 4, 5, 6, 7, 8, 9},
	{4, 5, 6, 7, 8, 9, 1, 2, 3},
	{7, 8, 9, 1, 2, 3, 4, 5, 6},
	{2, 3, 1, 5, 6, 4, 8, 9, 7},
	{5, 6, 4, 8, 9, 7, 2, 3, 1},
	{8, 9, 7, 2, 3, 1, 5, 6, 4},
	{3, 1, 2, 6, 4, 5, 9, 7, 8},
	{6, 4, 5, 9, 7, 8, 3, 1, 2},
	{9, 7, 8, 3, 1, 2, 6, 4, 5},
}

// solvedGrid derives a randomized complete grid from baseSolution through
// validity-preserving permutations: row order within each band, column
// order within each stack, the order of the bands, the order of the stacks,
// and finally a digit-relabeling bijection. Each step keeps band/stack/box
// membership intact, so no unit ever gains a duplicate.
func solvedGrid(r *rng.LCG) domain.Grid {
	g := baseSolution
	for band := 0; band < 3; band++ {
		g = permuteRows(g, band, shuffledTriple(r))
	}
	for stack := 0; stack < 3; stack++ {
		g = permuteColumns(g, stack, shuffledTriple(r))
	}
	g = permuteBands(g, shuffledTriple(r))
	g = permuteStacks(g, shuffledTriple(r))
	g = relabelDigits(g, r)
	return g
}

// shuffledTriple draws a permutation of {0,1,2}.
func shuffledTriple(r *rng.LCG) [3]int {
	p := [3]int{0, 1, 2}
	r.Shuffle(3, func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// permuteRows reorders the three rows of one band.
func permuteRows(g domain.Grid, band int, p [3]int) domain.Grid {
	out := g
	for i := 0; i < 3; i++ {
		out[band*3+i] = g[band*3+p[i]]
	}
	return out
}

// permuteColumns reorders the three columns of one stack.
func permuteColumns(g domain.Grid, stack int, p [3]int) domain.Grid {
	out := g
	for r := 0; r < 9; r++ {
		for i := 0; i < 3; i++ {
			out[r][stack*3+i] = g[r][stack*3+p[i]]
		}
	}
	return out
}

// permuteBands reorders the three row-bands.
func permuteBands(g domain.Grid, p [3]int) domain.Grid {
	var out domain.Grid
	for b := 0; b < 3; b++ {
		for i := 0; i < 3; i++ {
			out[b*3+i] = g[p[b]*3+i]
		}
	}
	return out
}

// permuteStacks reorders the three column-stacks.
func permuteStacks(g domain.Grid, p [3]int) domain.Grid {
	var out domain.Grid
	for r := 0; r < 9; r++ {
		for s := 0; s < 3; s++ {
			for i := 0; i < 3; i++ {
				out[r][s*3+i] = g[r][p[s]*3+i]
			}
		}
	}
	return out
}

// relabelDigits applies a random bijection of the digits 1-9.
func relabelDigits(g domain.Grid, r *rng.LCG) domain.Grid {
	labels := [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	r.Shuffle(9, func(i, j int) { labels[i], labels[j] = labels[j], labels[i] })
	var out domain.Grid
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			out[row][col] = labels[g[row][col]-1]
		}
	}
	return out
}
