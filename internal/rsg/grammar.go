package rsg

import "strings"

// IsNonterminal reports whether a token is a nonterminal reference.
// The grammar format has no escaping: a token beginning with '<' is a
// reference, anything else is a terminal.
func IsNonterminal(token string) bool {
	return strings.HasPrefix(token, "<")
}

// Production is one ordered alternative of a definition. Token order is
// preserved verbatim from the grammar text.
type Production []string

// String returns the production's tokens joined by single spaces.
func (p Production) String() string {
	return strings.Join(p, " ")
}

// Definition is a nonterminal's name together with its ordered list of
// alternative productions.
type Definition struct {
	Name         string
	Alternatives []Production
}

// Grammar maps nonterminal names to their definitions. It is built once
// by ParseGrammar and never mutated afterwards. The parser does not
// verify that every referenced nonterminal has an entry; a dangling
// reference surfaces as an UndefinedNonterminalError during expansion.
type Grammar map[string]*Definition

// Lookup returns the definition for a nonterminal name, or an
// UndefinedNonterminalError if the grammar has no entry for it.
func (g Grammar) Lookup(name string) (*Definition, error) {
	def, ok := g[name]
	if !ok {
		return nil, &UndefinedNonterminalError{Name: name}
	}
	return def, nil
}
