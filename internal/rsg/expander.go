package rsg

// Picker is the source of randomness for alternative selection. It is
// threaded explicitly through every expansion call so a test can swap
// in a deterministic implementation. *math/rand.Rand satisfies it.
type Picker interface {
	// Intn returns a value in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// Expander recursively replaces nonterminal tokens with randomly chosen
// alternatives until only terminals remain. The grammar is read-only;
// the picker is the only state an expansion advances.
type Expander struct {
	grammar  Grammar
	rng      Picker
	maxDepth int
	coverage *Coverage
}

// NewExpander creates an expander over grammar. maxDepth bounds the
// nonterminal nesting of a single expansion; a cyclic grammar that
// never bottoms out fails with RecursionLimitError instead of
// exhausting the stack.
func NewExpander(grammar Grammar, rng Picker, maxDepth int) *Expander {
	return &Expander{grammar: grammar, rng: rng, maxDepth: maxDepth}
}

// TrackCoverage records every alternative choice into c. Tracking does
// not influence selection, which stays uniform.
func (e *Expander) TrackCoverage(c *Coverage) {
	e.coverage = c
}

// Expand walks the production's tokens in order, appending terminals
// verbatim and expanding nonterminals in place. The result contains
// only terminal tokens.
func (e *Expander) Expand(p Production) ([]string, error) {
	out := make([]string, 0, len(p))
	if err := e.expand(p, 0, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Expander) expand(p Production, depth int, out *[]string) error {
	if depth > e.maxDepth {
		return &RecursionLimitError{Limit: e.maxDepth}
	}

	for _, token := range p {
		if !IsNonterminal(token) {
			*out = append(*out, token)
			continue
		}

		def, err := e.grammar.Lookup(token)
		if err != nil {
			return err
		}
		chosen := e.choose(def)
		if err := e.expand(def.Alternatives[chosen], depth+1, out); err != nil {
			return err
		}
	}
	return nil
}

// ExpandTree expands a nonterminal into its full derivation tree. The
// tree's leaves, in order, are the flat expansion of the same run.
func (e *Expander) ExpandTree(name string) (*DerivationTree, error) {
	return e.expandTree(name, 0)
}

func (e *Expander) expandTree(symbol string, depth int) (*DerivationTree, error) {
	node := NewDerivationTree(symbol)
	if !IsNonterminal(symbol) {
		node.Value = symbol
		return node, nil
	}
	if depth > e.maxDepth {
		return nil, &RecursionLimitError{Limit: e.maxDepth}
	}

	def, err := e.grammar.Lookup(symbol)
	if err != nil {
		return nil, err
	}
	chosen := e.choose(def)
	node.Alternative = chosen

	for _, token := range def.Alternatives[chosen] {
		child, err := e.expandTree(token, depth+1)
		if err != nil {
			return nil, err
		}
		node.AddChild(child)
	}
	return node, nil
}

// choose picks an alternative index uniformly at random.
func (e *Expander) choose(def *Definition) int {
	i := e.rng.Intn(len(def.Alternatives))
	if e.coverage != nil {
		e.coverage.Record(def.Name, i)
	}
	return i
}
