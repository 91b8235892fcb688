package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
addr: ":9090"
log_level: debug
solver: dlx
clues:
  easy: 45
  hard: 25
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.LogLevel != "debug" || cfg.Solver != "dlx" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Clues.Easy != 45 || cfg.Clues.Hard != 25 {
		t.Fatalf("clue overrides lost: %+v", cfg.Clues)
	}
	// medium untouched, keeps default
	if cfg.Clues.Medium != Default().Clues.Medium {
		t.Fatalf("medium default lost: %d", cfg.Clues.Medium)
	}
	// persist dir absent, keeps default
	if cfg.PersistDir != Default().PersistDir {
		t.Fatalf("persist default lost: %s", cfg.PersistDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := writeFile(t, "addr: [unterminated")
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestFinalizeRejectsBadClues(t *testing.T) {
	cases := []struct {
		name string
		n    int
	}{
		{"too few", 17},
		{"way too few", 5},
		{"full grid", 81},
		{"above full", 99},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Clues.Medium = tc.n
			if err := cfg.Finalize(); err == nil {
				t.Fatalf("clue target %d accepted", tc.n)
			}
		})
	}
}

func TestFinalizeRejectsUnknownSolver(t *testing.T) {
	cfg := Default()
	cfg.Solver = "quantum"
	if err := cfg.Finalize(); err == nil {
		t.Fatal("unknown solver accepted")
	}
}

func TestFinalizeDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize on zero config: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("zero config did not finalize to defaults: %+v", cfg)
	}
}
