package rsg

import "fmt"

// FormatError reports grammar text that does not conform to the
// definition-block format. Line is 1-based within the input stream.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("grammar format error at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("grammar format error: %s", e.Reason)
}

// UndefinedNonterminalError reports a nonterminal reference with no
// definition in the grammar, encountered either as the start symbol or
// mid-expansion.
type UndefinedNonterminalError struct {
	Name string
}

func (e *UndefinedNonterminalError) Error() string {
	return fmt.Sprintf("nonterminal %s has no definition", e.Name)
}

// RecursionLimitError reports an expansion that exceeded the configured
// depth limit. The engine does not detect grammar cycles up front; this
// guard is what keeps a cyclic or adversarial grammar from running the
// stack out.
type RecursionLimitError struct {
	Limit int
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("expansion exceeded recursion limit of %d", e.Limit)
}
