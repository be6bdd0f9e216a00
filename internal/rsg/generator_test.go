package rsg

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCountAndVersions(t *testing.T) {
	grammar := mustParse(t, branchingGrammar)
	g := NewGenerator(grammar, rand.New(rand.NewSource(1)), DefaultMaxDepth)

	sentences, err := g.Generate("<start>", 5)
	require.NoError(t, err)
	require.Len(t, sentences, 5)

	for i, sentence := range sentences {
		require.Equal(t, i+1, sentence.Version)
		for _, token := range sentence.Tokens {
			require.False(t, IsNonterminal(token))
		}
	}
}

func TestGenerateDrawsFreshAlternativeEachVersion(t *testing.T) {
	text := "{\n<start>\n2\nfirst\nsecond\n}\n"
	grammar := mustParse(t, text)
	g := NewGenerator(grammar, &seqPicker{picks: []int{0, 1, 0}}, DefaultMaxDepth)

	sentences, err := g.Generate("<start>", 3)
	require.NoError(t, err)
	require.Equal(t, []string{"first"}, sentences[0].Tokens)
	require.Equal(t, []string{"second"}, sentences[1].Tokens)
	require.Equal(t, []string{"first"}, sentences[2].Tokens)
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	grammar := mustParse(t, branchingGrammar)

	run := func() []Sentence {
		g := NewGenerator(grammar, rand.New(rand.NewSource(99)), DefaultMaxDepth)
		sentences, err := g.Generate("<start>", 10)
		require.NoError(t, err)
		return sentences
	}

	require.Equal(t, run(), run())
}

func TestGenerateUndefinedStart(t *testing.T) {
	grammar := mustParse(t, animalGrammar)
	g := NewGenerator(grammar, zeroPicker{}, DefaultMaxDepth)

	_, err := g.Generate("<nope>", 3)
	var undefErr *UndefinedNonterminalError
	require.ErrorAs(t, err, &undefErr)
	require.Equal(t, "<nope>", undefErr.Name)
}

func TestGenerateTrees(t *testing.T) {
	grammar := mustParse(t, animalGrammar)
	g := NewGenerator(grammar, zeroPicker{}, DefaultMaxDepth)

	trees, err := g.GenerateTrees("<start>", 2)
	require.NoError(t, err)
	require.Len(t, trees, 2)
	for _, tree := range trees {
		require.Equal(t, []string{"The", "cat", "sat", "."}, tree.Leaves())
	}
}
