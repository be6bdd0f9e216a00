package rsg

import (
	"fmt"
	"strings"
)

// DerivationTree records one expansion as a tree. Nonterminal nodes
// carry the index of the alternative that was chosen for them; terminal
// nodes carry their token in Value and have no children.
type DerivationTree struct {
	Symbol      string
	Alternative int
	Children    []*DerivationTree
	Value       string
}

// NewDerivationTree creates a node for symbol with no children.
func NewDerivationTree(symbol string) *DerivationTree {
	return &DerivationTree{Symbol: symbol}
}

// AddChild appends a child node.
func (t *DerivationTree) AddChild(child *DerivationTree) {
	t.Children = append(t.Children, child)
}

// Leaves returns the terminal tokens of the tree in derivation order.
// A nonterminal expanded through an empty production contributes
// nothing.
func (t *DerivationTree) Leaves() []string {
	if len(t.Children) == 0 {
		if t.Value != "" {
			return []string{t.Value}
		}
		return nil
	}

	var leaves []string
	for _, child := range t.Children {
		leaves = append(leaves, child.Leaves()...)
	}
	return leaves
}

// Depth returns the maximum nonterminal nesting of the tree.
func (t *DerivationTree) Depth() int {
	if len(t.Children) == 0 {
		return 0
	}

	maxChildDepth := 0
	for _, child := range t.Children {
		if d := child.Depth(); d > maxChildDepth {
			maxChildDepth = d
		}
	}
	return maxChildDepth + 1
}

// String renders the tree in parenthesized form, terminals bare and
// each nonterminal grouped with its expansion.
func (t *DerivationTree) String() string {
	if len(t.Children) == 0 {
		if t.Value != "" {
			return t.Value
		}
		return t.Symbol
	}

	parts := make([]string, len(t.Children))
	for i, child := range t.Children {
		parts[i] = child.String()
	}
	return fmt.Sprintf("(%s %s)", t.Symbol, strings.Join(parts, " "))
}
