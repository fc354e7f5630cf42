// Package lexicon provides the synonym dictionaries backing the paraphraser.
//
// Lookups are layered: a database-backed lexicon (when configured), a
// YAML-configured lexicon, the built-in fallback thesaurus, and finally a
// naive morphological fallback.
package lexicon

import "strings"

// Static is an in-memory thesaurus over a fixed synonym map. Keys must be
// lowercase.
type Static struct {
	entries map[string][]string
}

// NewStatic builds a Static thesaurus, lowercasing all headwords.
func NewStatic(entries map[string][]string) *Static {
	m := make(map[string][]string, len(entries))
	for word, syns := range entries {
		m[strings.ToLower(word)] = syns
	}
	return &Static{entries: m}
}

// Synonyms returns the synonyms for word, or nil when unknown.
func (s *Static) Synonyms(word string) []string {
	return s.entries[word]
}

// Source is any synonym provider that can participate in a Chain.
type Source interface {
	Synonyms(word string) []string
}

// Chain queries sources in order and returns the first non-empty result.
type Chain []Source

// Synonyms walks the chain until a source knows the word.
func (c Chain) Synonyms(word string) []string {
	for _, t := range c {
		if syns := t.Synonyms(word); len(syns) > 0 {
			return syns
		}
	}
	return nil
}

// Morphological is the last-resort fallback: it strips a trailing "ing" from
// longer words and otherwise knows nothing.
type Morphological struct{}

// Synonyms returns a single naive stem for "-ing" words, or nil.
func (Morphological) Synonyms(word string) []string {
	if strings.HasSuffix(word, "ing") && len(word) > 4 {
		return []string{word[:len(word)-3]}
	}
	return nil
}

// Builtin returns the built-in fallback thesaurus used when no richer
// dictionary is configured.
func Builtin() *Static {
	return NewStatic(map[string][]string{
		"good":      {"great", "nice", "excellent", "solid"},
		"bad":       {"poor", "subpar", "weak"},
		"important": {"crucial", "vital", "key"},
		"use":       {"utilize", "employ", "apply"},
		"help":      {"assist", "aid", "support"},
		"show":      {"display", "present", "reveal"},
		"change":    {"modify", "alter", "transform"},
		"make":      {"create", "produce", "build"},
		"need":      {"require", "necessitate"},
		"find":      {"discover", "locate"},
		"get":       {"obtain", "acquire"},
		"big":       {"large", "substantial", "considerable"},
		"small":     {"tiny", "compact", "minor"},
		"start":     {"begin", "commence", "initiate"},
	})
}
