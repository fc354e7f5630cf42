// Package paraphrase rewrites text by sentence-level synonym substitution.
package paraphrase

import (
	"math/rand"
	"strings"
	"unicode"

	"github.com/textforge/textforge/internal/textkit"
)

// DefaultStrength is the replacement probability used when none is requested.
const DefaultStrength = 0.3

// reorderFactor scales strength into the probability of shuffling sentence
// order after substitution.
const reorderFactor = 0.2

// Thesaurus resolves a lowercased word to candidate synonyms. An empty slice
// means the word is unknown.
type Thesaurus interface {
	Synonyms(word string) []string
}

// Paraphraser rewrites text using a Thesaurus.
type Paraphraser struct {
	thesaurus Thesaurus
}

// New creates a Paraphraser backed by the given thesaurus.
func New(thesaurus Thesaurus) *Paraphraser {
	return &Paraphraser{thesaurus: thesaurus}
}

// Rewrite paraphrases text. strength in [0, 1] is the per-word replacement
// probability; rng drives all random decisions so results are reproducible
// for a fixed seed.
func (p *Paraphraser) Rewrite(text string, strength float64, rng *rand.Rand) string {
	if strength < 0 {
		strength = 0
	}
	if strength > 1 {
		strength = 1
	}

	sentences := textkit.SplitSentences(text)
	rewritten := make([]string, len(sentences))
	for i, s := range sentences {
		rewritten[i] = p.rewriteSentence(s, strength, rng)
	}

	// Occasionally reorder sentences for variety.
	if len(rewritten) > 1 && rng.Float64() < reorderFactor*strength {
		rng.Shuffle(len(rewritten), func(i, j int) {
			rewritten[i], rewritten[j] = rewritten[j], rewritten[i]
		})
	}
	return strings.Join(rewritten, " ")
}

func (p *Paraphraser) rewriteSentence(sentence string, strength float64, rng *rand.Rand) string {
	tokens := textkit.Tokens(sentence)
	var sb strings.Builder
	sb.Grow(len(sentence))
	for _, t := range tokens {
		if !textkit.IsWordToken(t) || rng.Float64() >= strength {
			sb.WriteString(t)
			continue
		}
		sb.WriteString(p.replacement(t, rng))
	}
	return sb.String()
}

// replacement picks a synonym for the word, preserving leading
// capitalization. Unknown words are returned unchanged.
func (p *Paraphraser) replacement(word string, rng *rand.Rand) string {
	candidates := p.thesaurus.Synonyms(strings.ToLower(word))
	if len(candidates) == 0 {
		return word
	}
	candidate := candidates[rng.Intn(len(candidates))]
	if isCapitalized(word) {
		candidate = capitalize(candidate)
	}
	return candidate
}

func isCapitalized(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

func capitalize(word string) string {
	for i, r := range word {
		return string(unicode.ToUpper(r)) + word[i+len(string(r)):]
	}
	return word
}
