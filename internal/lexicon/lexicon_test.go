package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatic(t *testing.T) {
	s := NewStatic(map[string][]string{
		"Quick": {"fast", "rapid"},
	})

	t.Run("headwords are lowercased on load", func(t *testing.T) {
		assert.Equal(t, []string{"fast", "rapid"}, s.Synonyms("quick"))
	})

	t.Run("unknown word yields nil", func(t *testing.T) {
		assert.Nil(t, s.Synonyms("slow"))
	})
}

func TestChain(t *testing.T) {
	first := NewStatic(map[string][]string{"word": {"from-first"}})
	second := NewStatic(map[string][]string{
		"word":  {"from-second"},
		"other": {"second-only"},
	})
	chain := Chain{first, second}

	t.Run("first non-empty result wins", func(t *testing.T) {
		assert.Equal(t, []string{"from-first"}, chain.Synonyms("word"))
	})

	t.Run("falls through to later sources", func(t *testing.T) {
		assert.Equal(t, []string{"second-only"}, chain.Synonyms("other"))
	})

	t.Run("unknown everywhere yields nil", func(t *testing.T) {
		assert.Nil(t, chain.Synonyms("missing"))
	})
}

func TestMorphological(t *testing.T) {
	m := Morphological{}

	assert.Equal(t, []string{"runn"}, m.Synonyms("running"))
	assert.Equal(t, []string{"summariz"}, m.Synonyms("summarizing"))
	assert.Nil(t, m.Synonyms("sing")) // too short to strip
	assert.Nil(t, m.Synonyms("word"))
}

func TestBuiltin(t *testing.T) {
	b := Builtin()

	assert.Contains(t, b.Synonyms("good"), "great")
	assert.Contains(t, b.Synonyms("start"), "begin")
	assert.Nil(t, b.Synonyms("zebra"))
}
