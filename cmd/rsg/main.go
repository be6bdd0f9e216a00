package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"rsg/internal/display"
	"rsg/internal/rsg"
)

var cli struct {
	Grammar string `arg:"" help:"Path to the grammar text file." type:"existingfile"`
	Config  string `help:"Optional TOML settings file." type:"existingfile"`

	// Pointer fields so an explicitly set flag can be told apart from
	// an unset one when overlaying the config file.
	Start    *string `help:"Nonterminal to expand (default <start>)."`
	Count    *int    `short:"n" help:"Number of sentences to generate (default 3)."`
	Seed     *int64  `help:"Random seed. 0 or unset seeds from the clock."`
	MaxDepth *int    `help:"Recursion bound per expansion (default 64)."`
	Tree     *bool   `help:"Show the derivation tree of each sentence."`
	Coverage *bool   `help:"Report which grammar alternatives the run exercised."`
	Verbose  *bool   `short:"v" help:"Report run settings, including the seed."`
}

const description = `rsg reads a context-free grammar from a text file and expands a start
nonterminal into randomly generated sentences. A grammar file is a series of
definition blocks:

  {
  <name>
  K
  token token ...     (K production lines; tokens starting with < are
  }                    references to other definitions)
`

func main() {
	kong.Parse(&cli, kong.Name("rsg"), kong.Description(description))
	os.Exit(run())
}

func run() int {
	config, err := buildConfig()
	if err != nil {
		display.Error("Config Error", err)
		return 1
	}

	f, err := os.Open(config.GrammarPath)
	if err != nil {
		display.Error("File Error", err)
		return 2
	}
	defer f.Close()

	grammar, err := rsg.ParseGrammar(f)
	if err != nil {
		display.Error("Grammar Error", err)
		return 3
	}
	display.Summary(config.GrammarPath, len(grammar))

	rng, seed := config.NewRand()
	if config.Verbose {
		display.Info("rsg", fmt.Sprintf("start %s, count %d, max depth %d, seed %d",
			config.Start, config.Count, config.MaxDepth, seed))
	}

	generator := rsg.NewGenerator(grammar, rng, config.MaxDepth)
	var coverage *rsg.Coverage
	if config.Coverage {
		coverage = rsg.NewCoverage(grammar)
		generator.TrackCoverage(coverage)
	}

	if config.Tree {
		trees, err := generator.GenerateTrees(config.Start, config.Count)
		if err != nil {
			display.Error("Generation Error", err)
			return 4
		}
		for i, tree := range trees {
			display.Sentence(rsg.Sentence{Version: i + 1, Tokens: tree.Leaves()})
			display.Tree(tree)
		}
	} else {
		sentences, err := generator.Generate(config.Start, config.Count)
		if err != nil {
			display.Error("Generation Error", err)
			return 4
		}
		for _, sentence := range sentences {
			display.Sentence(sentence)
		}
	}

	if coverage != nil {
		display.Coverage(coverage.Stats(), coverage.Uncovered())
	}
	return 0
}

// buildConfig overlays settings in order: defaults, then the TOML file
// if one was given, then any flag set on the command line.
func buildConfig() (*rsg.Config, error) {
	config := rsg.DefaultConfig()
	if cli.Config != "" {
		loaded, err := rsg.LoadConfig(cli.Config)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	config.GrammarPath = cli.Grammar

	if cli.Start != nil {
		config.Start = *cli.Start
	}
	if cli.Count != nil {
		config.Count = *cli.Count
	}
	if cli.Seed != nil {
		config.Seed = *cli.Seed
	}
	if cli.MaxDepth != nil {
		config.MaxDepth = *cli.MaxDepth
	}
	if cli.Tree != nil {
		config.Tree = *cli.Tree
	}
	if cli.Coverage != nil {
		config.Coverage = *cli.Coverage
	}
	if cli.Verbose != nil {
		config.Verbose = *cli.Verbose
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
