// Package summarize implements extractive summarization by word-frequency
// scoring.
package summarize

import (
	"math"
	"sort"
	"strings"

	"github.com/textforge/textforge/internal/textkit"
)

const (
	// DefaultRatio is the fraction of sentences kept when none is requested.
	DefaultRatio = 0.3
	// DefaultMinSentences is the minimum summary length in sentences.
	DefaultMinSentences = 1
)

// Options controls how much of the input survives summarization.
type Options struct {
	// Ratio is the target fraction of sentences to keep, in (0, 1].
	Ratio float64
	// MinSentences is the lower bound on kept sentences.
	MinSentences int
}

// DefaultOptions returns the service-wide summarization defaults.
func DefaultOptions() Options {
	return Options{Ratio: DefaultRatio, MinSentences: DefaultMinSentences}
}

// Result holds the selected sentences in original order.
type Result struct {
	Sentences []string
}

// Summary joins the selected sentences with single spaces.
func (r Result) Summary() string {
	return strings.Join(r.Sentences, " ")
}

// Text produces an extractive summary of text.
//
// Sentences are scored by the sum of the normalized frequencies of their
// non-stopword words, divided by the square root of the sentence word count
// so that very short sentences do not dominate. The top-scoring sentences are
// returned in their original order.
func Text(text string, opts Options) Result {
	if opts.Ratio <= 0 || opts.Ratio > 1 {
		opts.Ratio = DefaultRatio
	}
	if opts.MinSentences < 1 {
		opts.MinSentences = DefaultMinSentences
	}

	sentences := textkit.SplitSentences(text)
	if len(sentences) <= opts.MinSentences {
		return Result{Sentences: sentences}
	}

	freqs := wordFrequencies(text)

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, len(sentences))
	for i, s := range sentences {
		words := textkit.Words(strings.ToLower(s))
		var score float64
		for _, w := range words {
			score += freqs[w]
		}
		if len(words) > 0 {
			score /= math.Sqrt(float64(len(words)))
		}
		ranked[i] = scored{index: i, score: score}
	}

	k := int(math.Ceil(float64(len(sentences)) * opts.Ratio))
	if k < opts.MinSentences {
		k = opts.MinSentences
	}
	if k > len(sentences) {
		k = len(sentences)
	}

	// Rank by score, then restore document order for the chosen sentences.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	chosen := make([]int, k)
	for i := 0; i < k; i++ {
		chosen[i] = ranked[i].index
	}
	sort.Ints(chosen)

	out := make([]string, k)
	for i, idx := range chosen {
		out[i] = sentences[idx]
	}
	return Result{Sentences: out}
}

// wordFrequencies counts non-stopword words and normalizes the counts by the
// maximum count, yielding values in (0, 1].
func wordFrequencies(text string) map[string]float64 {
	counts := make(map[string]int)
	for _, w := range textkit.Words(strings.ToLower(text)) {
		if textkit.IsStopword(w) {
			continue
		}
		counts[w]++
	}

	freqs := make(map[string]float64, len(counts))
	if len(counts) == 0 {
		return freqs
	}
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	for w, c := range counts {
		freqs[w] = float64(c) / float64(max)
	}
	return freqs
}
