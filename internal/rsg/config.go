package rsg

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pelletier/go-toml"
)

const (
	DefaultStart    = "<start>"
	DefaultCount    = 3
	DefaultMaxDepth = 64
)

// Config holds the settings for one generation run.
type Config struct {
	// GrammarPath is the grammar file to load. CLI-only, never read
	// from a config file.
	GrammarPath string `toml:"-"`

	Start    string `toml:"start"`     // nonterminal to expand
	Count    int    `toml:"count"`     // number of sentences to generate
	MaxDepth int    `toml:"max-depth"` // recursion bound per expansion
	Seed     int64  `toml:"seed"`      // 0 means time-seeded
	Tree     bool   `toml:"tree"`      // show derivation trees
	Coverage bool   `toml:"coverage"`  // report alternative coverage
	Verbose  bool   `toml:"verbose"`
}

// DefaultConfig returns a Config with the reference defaults.
func DefaultConfig() *Config {
	return &Config{
		Start:    DefaultStart,
		Count:    DefaultCount,
		MaxDepth: DefaultMaxDepth,
	}
}

// LoadConfig reads a TOML settings file over the defaults. Settings not
// present in the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(buff, config); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return config, nil
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	}
	if !IsNonterminal(c.Start) {
		return fmt.Errorf("start symbol %q is not a nonterminal", c.Start)
	}
	return nil
}

// NewRand returns the run's random source along with the seed it was
// built from: reproducible when Seed is nonzero, time-seeded otherwise.
// Returning the seed lets a caller report it so a run can be replayed.
func (c *Config) NewRand() (*rand.Rand, int64) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
