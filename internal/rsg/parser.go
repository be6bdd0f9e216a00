package rsg

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseGrammar reads the line-oriented grammar format into a Grammar.
//
// A definition block looks like:
//
//	{
//	<name>
//	K
//	token token ...     (K production lines)
//	}
//
// Text between blocks is discarded up to the next '{'. Reaching end of
// input between blocks ends parsing cleanly; reaching it inside a block
// is a FormatError. A block that redefines an already-seen nonterminal
// silently replaces the earlier definition.
func ParseGrammar(r io.Reader) (Grammar, error) {
	p := &grammarParser{scanner: bufio.NewScanner(r)}
	grammar := make(Grammar)

	for {
		if !p.skipToBlockStart() {
			if err := p.scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading grammar: %w", err)
			}
			return grammar, nil
		}

		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		grammar[def.Name] = def
	}
}

type grammarParser struct {
	scanner *bufio.Scanner
	line    int
}

// next returns the next line of input, or false at end of input.
func (p *grammarParser) next() (string, bool) {
	if !p.scanner.Scan() {
		return "", false
	}
	p.line++
	return p.scanner.Text(), true
}

// nextContent returns the next line with non-whitespace content.
func (p *grammarParser) nextContent() (string, bool) {
	for {
		text, ok := p.next()
		if !ok {
			return "", false
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return trimmed, true
		}
	}
}

// skipToBlockStart discards input up to the next '{'. It reports false
// if end of input arrives first.
func (p *grammarParser) skipToBlockStart() bool {
	for {
		text, ok := p.next()
		if !ok {
			return false
		}
		if strings.Contains(text, "{") {
			return true
		}
	}
}

func (p *grammarParser) errorf(format string, args ...interface{}) error {
	return &FormatError{Line: p.line, Reason: fmt.Sprintf(format, args...)}
}

// parseDefinition parses one block, with the opening '{' already
// consumed.
func (p *grammarParser) parseDefinition() (*Definition, error) {
	name, ok := p.nextContent()
	if !ok {
		return nil, p.errorf("unexpected end of input: expected nonterminal name")
	}
	if !IsNonterminal(name) {
		return nil, p.errorf("expected nonterminal name, found %q", name)
	}

	countText, ok := p.nextContent()
	if !ok {
		return nil, p.errorf("unexpected end of input: expected production count for %s", name)
	}
	count, err := strconv.Atoi(countText)
	if err != nil {
		return nil, p.errorf("production count for %s is not an integer: %q", name, countText)
	}
	if count < 1 {
		return nil, p.errorf("production count for %s must be positive, got %d", name, count)
	}

	def := &Definition{Name: name, Alternatives: make([]Production, 0, count)}
	for i := 0; i < count; i++ {
		text, ok := p.next()
		if !ok {
			return nil, p.errorf("unexpected end of input: %s declares %d productions, found %d", name, count, i)
		}
		if strings.TrimSpace(text) == "}" {
			return nil, p.errorf("%s declares %d productions, found %d", name, count, i)
		}
		// An empty line counts as an empty production.
		def.Alternatives = append(def.Alternatives, Production(strings.Fields(text)))
	}

	closing, ok := p.nextContent()
	if !ok {
		return nil, p.errorf("unexpected end of input: missing closing } for %s", name)
	}
	if closing != "}" {
		return nil, p.errorf("expected closing } for %s, found %q", name, closing)
	}

	return def, nil
}
