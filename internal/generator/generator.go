package generator

import (
	"context"
	"fmt"
	"time"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
	"svw.info/sudokulab/internal/rng"
	"svw.info/sudokulab/internal/validator"
)

// Config fixes the clue target per difficulty tier. Every value must stay
// strictly between 17 (the known minimum clue count for a unique 9x9
// puzzle) and 81.
type Config struct {
	EasyClues   int
	MediumClues int
	HardClues   int
}

// DefaultConfig returns the stock clue targets.
func DefaultConfig() Config {
	return Config{EasyClues: 40, MediumClues: 32, HardClues: 26}
}

func (c Config) clues(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return c.EasyClues
	case domain.Hard:
		return c.HardClues
	default:
		return c.MediumClues
	}
}

// PermutationGenerator builds a solved grid by permuting a fixed base
// solution under a seeded LCG, then carves cells while the solver's
// counting oracle confirms the puzzle stays uniquely solvable. Identical
// (seed, difficulty) always yields an identical puzzle/solution pair.
type PermutationGenerator struct {
	Solver ports.Solver
	Config Config
}

// New wires a generator that uses the given solver for uniqueness checks.
func New(s ports.Solver, cfg Config) *PermutationGenerator {
	return &PermutationGenerator{Solver: s, Config: cfg}
}

// Generate implements ports.Generator.
func (g *PermutationGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	r := rng.New(seed)

	solution := solvedGrid(r)
	if res := validator.Check(&solution); res.Status != domain.StatusValidComplete {
		// The permutations preserve validity; reaching this line is a bug.
		panic(fmt.Sprintf("generator: permuted base solution is %v", res.Status))
	}

	positions := make([]int, domain.GridLen)
	for i := range positions {
		positions[i] = i
	}
	r.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	puzzle := solution
	budget := domain.GridLen - g.Config.clues(diff)
	nodes := 0
	for _, pos := range positions {
		if budget <= 0 {
			break
		}
		if ctx.Err() != nil {
			break
		}
		row, col := pos/9, pos%9
		old := puzzle[row][col]
		puzzle[row][col] = domain.Empty
		n, st, err := g.Solver.CountSolutions(ctx, &puzzle, 2)
		nodes += st.Nodes
		if err != nil || n != 1 {
			puzzle[row][col] = old // removal would lose uniqueness
			continue
		}
		budget--
	}
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}

	// Defense in depth: the carve loop only ever keeps uniquely solvable
	// states, so both checks must pass. A failure here is a generator bug.
	if res := validator.Check(&puzzle); res.Status == domain.StatusInvalid {
		panic(fmt.Sprintf("generator: carved puzzle is invalid: %v", res.Issues))
	}
	solved, st, err := g.Solver.Solve(ctx, &puzzle)
	nodes += st.Nodes
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctxErr
		}
		panic(fmt.Sprintf("generator: carved puzzle does not solve: %v", err))
	}
	if *solved != solution {
		panic("generator: carved puzzle no longer solves to its own solution")
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Givens:     puzzle,
		Solution:   solution,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
