// Package textkit provides the shared tokenization primitives used by the
// summarizer and paraphraser.
package textkit

import (
	"regexp"
	"strings"
)

// Pre-compiled regexes; tokenization runs on every request
var (
	sentenceBoundaryRe = regexp.MustCompile(`(?s)(?:[.!?])\s+`)
	wordRe             = regexp.MustCompile(`\w+`)
	tokenRe            = regexp.MustCompile(`\w+|\W+`)
)

// stopwords is the fixed English stopword set skipped during frequency scoring.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "is": {}, "in": {}, "it": {}, "of": {}, "to": {},
	"a": {}, "an": {}, "that": {}, "this": {}, "on": {}, "for": {}, "with": {},
	"as": {}, "are": {}, "was": {}, "were": {}, "by": {}, "be": {}, "or": {},
	"from": {}, "at": {}, "which": {}, "but": {}, "not": {}, "have": {},
	"has": {}, "had": {}, "they": {}, "you": {}, "we": {}, "he": {}, "she": {},
	"his": {}, "her": {},
}

// IsStopword reports whether the lowercased word is in the stopword set.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}

// SplitSentences splits text into sentences on whitespace following a
// terminal punctuation mark. Empty sentences are dropped.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	for _, loc := range sentenceBoundaryRe.FindAllStringIndex(text, -1) {
		// loc[0] is the punctuation mark; keep it with the sentence
		s := strings.TrimSpace(text[start : loc[0]+1])
		if s != "" {
			sentences = append(sentences, s)
		}
		start = loc[1]
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// Words extracts the word tokens (`\w+` runs) from text.
func Words(text string) []string {
	return wordRe.FindAllString(text, -1)
}

// Tokens splits text into alternating word and non-word runs, preserving
// punctuation and whitespace so the original text can be reassembled.
func Tokens(text string) []string {
	return tokenRe.FindAllString(text, -1)
}

// IsWordToken reports whether a token produced by Tokens is a word run.
func IsWordToken(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}
