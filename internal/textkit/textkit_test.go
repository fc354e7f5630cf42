package textkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences(t *testing.T) {
	t.Run("splits on terminal punctuation", func(t *testing.T) {
		got := SplitSentences("Hello world. How are you? Fine!")
		assert.Equal(t, []string{"Hello world.", "How are you?", "Fine!"}, got)
	})

	t.Run("keeps stacked punctuation with the sentence", func(t *testing.T) {
		got := SplitSentences("What?! Next one.")
		assert.Equal(t, []string{"What?!", "Next one."}, got)
	})

	t.Run("single sentence without terminator", func(t *testing.T) {
		got := SplitSentences("no punctuation here")
		assert.Equal(t, []string{"no punctuation here"}, got)
	})

	t.Run("empty and whitespace input", func(t *testing.T) {
		assert.Nil(t, SplitSentences(""))
		assert.Nil(t, SplitSentences("   \n\t "))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		got := SplitSentences("  First.   Second.  ")
		assert.Equal(t, []string{"First.", "Second."}, got)
	})

	t.Run("splits across newlines", func(t *testing.T) {
		got := SplitSentences("First line.\nSecond line.")
		assert.Equal(t, []string{"First line.", "Second line."}, got)
	})
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"one", "two", "three3"}, Words("one, two... three3!"))
	assert.Empty(t, Words("!!!"))
}

func TestTokens(t *testing.T) {
	t.Run("reassembles to the original", func(t *testing.T) {
		input := "Hello, world! It's 42."
		assert.Equal(t, input, strings.Join(Tokens(input), ""))
	})

	t.Run("alternates word and non-word runs", func(t *testing.T) {
		tokens := Tokens("ab, cd")
		assert.Equal(t, []string{"ab", ", ", "cd"}, tokens)
		assert.True(t, IsWordToken(tokens[0]))
		assert.False(t, IsWordToken(tokens[1]))
		assert.True(t, IsWordToken(tokens[2]))
	})
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("which"))
	assert.False(t, IsStopword("cat"))
	assert.False(t, IsStopword("")) // empty string is not a stopword
}
