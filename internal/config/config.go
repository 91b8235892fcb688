package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Clues holds the per-tier clue targets used by the generator.
type Clues struct {
	Easy   int `yaml:"easy"`
	Medium int `yaml:"medium"`
	Hard   int `yaml:"hard"`
}

type Config struct {
	Addr       string `yaml:"addr"`        // HTTP listen address
	PersistDir string `yaml:"persist_dir"` // puzzle save directory
	LogLevel   string `yaml:"log_level"`   // "debug", "info", "warn", "error"
	Solver     string `yaml:"solver"`      // "backtrack" (default) or "dlx"
	Clues      Clues  `yaml:"clues"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:       ":8080",
		PersistDir: "./data",
		LogLevel:   "info",
		Solver:     "backtrack",
		Clues:      Clues{Easy: 40, Medium: 32, Hard: 26},
	}
}

// Load reads a YAML config file on top of the defaults and finalizes it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Finalize fills absent fields with defaults and rejects out-of-range
// values. Clue targets must stay strictly between 17 and 81: 17 is the
// known minimum clue count for a uniquely solvable 9x9 puzzle.
func (c *Config) Finalize() error {
	def := Default()
	if c.Addr == "" {
		c.Addr = def.Addr
	}
	if c.PersistDir == "" {
		c.PersistDir = def.PersistDir
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Solver == "" {
		c.Solver = def.Solver
	}
	switch c.Solver {
	case "backtrack", "backtracking", "dlx":
	default:
		return fmt.Errorf("unknown solver %q", c.Solver)
	}
	if c.Clues.Easy == 0 {
		c.Clues.Easy = def.Clues.Easy
	}
	if c.Clues.Medium == 0 {
		c.Clues.Medium = def.Clues.Medium
	}
	if c.Clues.Hard == 0 {
		c.Clues.Hard = def.Clues.Hard
	}
	for _, n := range []int{c.Clues.Easy, c.Clues.Medium, c.Clues.Hard} {
		if n <= 17 || n >= 81 {
			return fmt.Errorf("clue target %d out of range (must be strictly between 17 and 81)", n)
		}
	}
	return nil
}
