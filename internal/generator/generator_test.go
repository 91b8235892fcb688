package generator

import (
	"context"
	"testing"
	"time"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/rng"
	"svw.info/sudokulab/internal/solver"
	"svw.info/sudokulab/internal/validator"
)

func newGen() *PermutationGenerator {
	return New(solver.NewBacktrackingSolver(), DefaultConfig())
}

func TestSolvedGridPermutationsStayValid(t *testing.T) {
	for _, seed := range []int64{0, 1, 42, -7, 1 << 40} {
		g := solvedGrid(rng.New(seed))
		if res := validator.Check(&g); res.Status != domain.StatusValidComplete {
			t.Fatalf("seed %d: permuted solution is %v (issues %v)", seed, res.Status, res.Issues)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := newGen()
	ctx := context.Background()
	a, _, err := g.Generate(ctx, 42, domain.Easy)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	b, _, err := g.Generate(ctx, 42, domain.Easy)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if a.Givens.String() != b.Givens.String() {
		t.Fatalf("puzzles differ for identical (seed, difficulty):\n%s\n%s", a.Givens, b.Givens)
	}
	if a.Solution.String() != b.Solution.String() {
		t.Fatal("solutions differ for identical (seed, difficulty)")
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	g := newGen()
	ctx := context.Background()
	a, _, err := g.Generate(ctx, 1, domain.Medium)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := g.Generate(ctx, 2, domain.Medium)
	if err != nil {
		t.Fatal(err)
	}
	if a.Givens.String() == b.Givens.String() {
		t.Fatal("different seeds produced identical puzzles")
	}
}

func TestGenerateAllDifficulties(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		name  string
		diff  domain.Difficulty
		clues int
		exact bool
	}{
		{"easy", domain.Easy, cfg.EasyClues, true},
		{"medium", domain.Medium, cfg.MediumClues, true},
		// Deep carves can run out of removable cells before the budget is
		// met, so the hard tier only guarantees a lower bound.
		{"hard", domain.Hard, cfg.HardClues, false},
	}
	g := newGen()
	s := solver.NewBacktrackingSolver()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			p, st, err := g.Generate(ctx, 12345, tc.diff)
			if err != nil {
				t.Fatalf("Generate(%s) failed: %v", tc.name, err)
			}
			t.Logf("generated in %v, nodes=%d, clues=%d", st.Duration, st.Nodes, p.Givens.Clues())

			clues := p.Givens.Clues()
			if tc.exact && clues != tc.clues {
				t.Fatalf("clues = %d, want exactly %d", clues, tc.clues)
			}
			if clues < tc.clues || clues > 81 {
				t.Fatalf("clues = %d, want >= %d", clues, tc.clues)
			}

			// solution must be a valid complete grid
			if res := validator.Check(&p.Solution); res.Status != domain.StatusValidComplete {
				t.Fatalf("solution is %v", res.Status)
			}
			// every clue must match the solution (clue subset invariant)
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if v := p.Givens[r][c]; v != domain.Empty && v != p.Solution[r][c] {
						t.Fatalf("clue (%d,%d)=%d disagrees with solution %d", r, c, v, p.Solution[r][c])
					}
				}
			}
			// puzzle must be uniquely solvable
			n, _, err := s.CountSolutions(ctx, &p.Givens, 2)
			if err != nil {
				t.Fatal(err)
			}
			if n != 1 {
				t.Fatalf("puzzle has %d solutions, want 1", n)
			}
			// and solve back to its own solution
			solved, _, err := s.Solve(ctx, &p.Givens)
			if err != nil {
				t.Fatalf("puzzle does not solve: %v", err)
			}
			if *solved != p.Solution {
				t.Fatal("puzzle solves to a different grid than its recorded solution")
			}
		})
	}
}

func TestGenerateAcceptsAnySeed(t *testing.T) {
	g := newGen()
	ctx := context.Background()
	for _, seed := range []int64{0, -1, -42, 1 << 50, -(1 << 50)} {
		p, _, err := g.Generate(ctx, seed, domain.Easy)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		q, _, err := g.Generate(ctx, seed, domain.Easy)
		if err != nil {
			t.Fatalf("seed %d (second call): %v", seed, err)
		}
		if p.Givens != q.Givens {
			t.Fatalf("seed %d not deterministic", seed)
		}
	}
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := newGen().Generate(ctx, 42, domain.Easy); err == nil {
		t.Fatal("expected an error from a canceled context")
	}
}

func TestConfigClues(t *testing.T) {
	cfg := Config{EasyClues: 50, MediumClues: 35, HardClues: 20}
	if cfg.clues(domain.Easy) != 50 || cfg.clues(domain.Medium) != 35 || cfg.clues(domain.Hard) != 20 {
		t.Fatal("clue lookup wired to the wrong tiers")
	}
}
