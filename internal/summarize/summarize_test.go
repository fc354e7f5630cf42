package summarize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_ShortInputs(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		result := Text("", DefaultOptions())
		assert.Empty(t, result.Sentences)
		assert.Equal(t, "", result.Summary())
	})

	t.Run("single sentence returned unchanged", func(t *testing.T) {
		result := Text("Just one sentence here.", DefaultOptions())
		assert.Equal(t, []string{"Just one sentence here."}, result.Sentences)
	})

	t.Run("input at minSentences returned unchanged", func(t *testing.T) {
		result := Text("First. Second. Third.", Options{Ratio: 0.3, MinSentences: 3})
		assert.Equal(t, []string{"First.", "Second.", "Third."}, result.Sentences)
	})
}

func TestText_SelectsHighFrequencySentences(t *testing.T) {
	// "climate" dominates the frequency table, so the sentences about
	// climate outrank the one-off filler sentence.
	text := "Climate change affects climate patterns worldwide. " +
		"Scientists study climate data every year. " +
		"My neighbor bought a lawnmower. " +
		"Climate models predict warmer climate decades ahead."

	result := Text(text, Options{Ratio: 0.5, MinSentences: 1})
	require.Len(t, result.Sentences, 2)
	for _, s := range result.Sentences {
		assert.Contains(t, strings.ToLower(s), "climate")
	}
}

func TestText_PreservesDocumentOrder(t *testing.T) {
	text := "Alpha systems run alpha tests. " +
		"Nothing notable here at all. " +
		"Alpha results confirm the alpha hypothesis."

	result := Text(text, Options{Ratio: 0.5, MinSentences: 1})
	require.Len(t, result.Sentences, 2)
	assert.Equal(t, "Alpha systems run alpha tests.", result.Sentences[0])
	assert.Equal(t, "Alpha results confirm the alpha hypothesis.", result.Sentences[1])
}

func TestText_RatioControlsLength(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 10; i++ {
		sb.WriteString("Sentence number with some words. ")
	}
	text := sb.String()

	t.Run("ratio 0.3 keeps ceil(10*0.3)=3", func(t *testing.T) {
		result := Text(text, Options{Ratio: 0.3, MinSentences: 1})
		assert.Len(t, result.Sentences, 3)
	})

	t.Run("ratio 1.0 keeps everything", func(t *testing.T) {
		result := Text(text, Options{Ratio: 1.0, MinSentences: 1})
		assert.Len(t, result.Sentences, 10)
	})

	t.Run("minSentences floors the result", func(t *testing.T) {
		result := Text(text, Options{Ratio: 0.1, MinSentences: 5})
		assert.Len(t, result.Sentences, 5)
	})
}

func TestText_InvalidOptionsFallBackToDefaults(t *testing.T) {
	text := "One. Two. Three. Four. Five. Six. Seven. Eight. Nine. Ten."

	result := Text(text, Options{Ratio: -1, MinSentences: 0})
	// Defaults: ratio 0.3 => ceil(10*0.3) = 3 sentences.
	assert.Len(t, result.Sentences, 3)
}

func TestText_StopwordOnlyText(t *testing.T) {
	// All words are stopwords, so every sentence scores zero; the
	// summarizer still returns the requested number of sentences.
	text := "It is the. They were that. We are this."
	result := Text(text, Options{Ratio: 0.3, MinSentences: 1})
	assert.Len(t, result.Sentences, 1)
}

func TestResult_Summary(t *testing.T) {
	r := Result{Sentences: []string{"One.", "Two."}}
	assert.Equal(t, "One. Two.", r.Summary())
}
