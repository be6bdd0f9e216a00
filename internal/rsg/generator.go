package rsg

// Sentence is one generated expansion, tagged with its 1-based version
// number for display.
type Sentence struct {
	Version int
	Tokens  []string
}

// Generator produces repeated independent expansions of a start
// nonterminal.
type Generator struct {
	grammar  Grammar
	expander *Expander
}

// NewGenerator creates a generator over grammar. rng supplies every
// random choice; maxDepth bounds each expansion.
func NewGenerator(grammar Grammar, rng Picker, maxDepth int) *Generator {
	return &Generator{
		grammar:  grammar,
		expander: NewExpander(grammar, rng, maxDepth),
	}
}

// TrackCoverage records every alternative choice of subsequent
// generations into c.
func (g *Generator) TrackCoverage(c *Coverage) {
	g.expander.TrackCoverage(c)
}

// Generate expands start count times. Every repetition is an
// independent draw: each one picks a fresh alternative of the start
// definition rather than replaying the first choice. Fails with
// UndefinedNonterminalError if start, or any nonterminal reached during
// expansion, has no definition.
func (g *Generator) Generate(start string, count int) ([]Sentence, error) {
	if _, err := g.grammar.Lookup(start); err != nil {
		return nil, err
	}

	sentences := make([]Sentence, 0, count)
	for i := 0; i < count; i++ {
		tokens, err := g.expander.Expand(Production{start})
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, Sentence{Version: i + 1, Tokens: tokens})
	}
	return sentences, nil
}

// GenerateTrees is Generate in derivation-tree form, for callers that
// want to show how each sentence was derived.
func (g *Generator) GenerateTrees(start string, count int) ([]*DerivationTree, error) {
	if _, err := g.grammar.Lookup(start); err != nil {
		return nil, err
	}

	trees := make([]*DerivationTree, 0, count)
	for i := 0; i < count; i++ {
		tree, err := g.expander.ExpandTree(start)
		if err != nil {
			return nil, err
		}
		trees = append(trees, tree)
	}
	return trees, nil
}
