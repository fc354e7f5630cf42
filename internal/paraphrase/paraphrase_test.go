package paraphrase

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/textforge/textforge/internal/lexicon"
)

func testThesaurus() lexicon.Chain {
	return lexicon.Chain{
		lexicon.NewStatic(map[string][]string{
			"good": {"great"},
			"big":  {"large"},
		}),
		lexicon.Morphological{},
	}
}

func rng(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestRewrite_StrengthZeroLeavesTextAlone(t *testing.T) {
	p := New(testThesaurus())
	input := "This is a good day. A big one!"
	assert.Equal(t, input, p.Rewrite(input, 0, rng(1)))
}

func TestRewrite_StrengthOneReplacesKnownWords(t *testing.T) {
	p := New(testThesaurus())

	// Single sentence, so no reordering can kick in.
	got := p.Rewrite("A good plan.", 1, rng(1))
	assert.Equal(t, "A great plan.", got)
}

func TestRewrite_PreservesCapitalization(t *testing.T) {
	p := New(testThesaurus())

	got := p.Rewrite("Good stuff.", 1, rng(1))
	assert.Equal(t, "Great stuff.", got)
}

func TestRewrite_PreservesPunctuation(t *testing.T) {
	p := New(testThesaurus())

	got := p.Rewrite("good, big, good!", 1, rng(1))
	assert.Equal(t, "great, large, great!", got)
}

func TestRewrite_UnknownWordsUnchanged(t *testing.T) {
	p := New(testThesaurus())

	got := p.Rewrite("Quantum flux.", 1, rng(1))
	assert.Equal(t, "Quantum flux.", got)
}

func TestRewrite_MorphologicalFallback(t *testing.T) {
	p := New(testThesaurus())

	// "running" is unknown to the static map; the fallback strips "ing".
	got := p.Rewrite("running.", 1, rng(1))
	assert.Equal(t, "runn.", got)
}

func TestRewrite_DeterministicForFixedSeed(t *testing.T) {
	p := New(testThesaurus())
	input := "A good day. A big win. A good big thing."

	first := p.Rewrite(input, 0.7, rng(42))
	second := p.Rewrite(input, 0.7, rng(42))
	assert.Equal(t, first, second)
}

func TestRewrite_StrengthClamped(t *testing.T) {
	p := New(testThesaurus())

	// Out-of-range strengths behave like the nearest bound.
	assert.Equal(t, "good.", p.Rewrite("good.", -5, rng(1)))
	assert.Equal(t, "great.", p.Rewrite("good.", 5, rng(1)))
}
