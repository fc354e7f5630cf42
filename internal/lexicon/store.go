package lexicon

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/textforge/textforge/internal/storage"
)

// storeLookupTimeout bounds a single database lookup during paraphrasing.
const storeLookupTimeout = 2 * time.Second

// StoreSource adapts the database lexicon to a Source. Lookup failures are
// logged and treated as "word unknown" so paraphrasing degrades to the
// static dictionaries instead of failing a request.
type StoreSource struct {
	repo storage.LexiconRepository
}

// NewStoreSource wraps a LexiconRepository as a Source.
func NewStoreSource(repo storage.LexiconRepository) *StoreSource {
	return &StoreSource{repo: repo}
}

// Synonyms looks the word up in the database lexicon.
func (s *StoreSource) Synonyms(word string) []string {
	ctx, cancel := context.WithTimeout(context.Background(), storeLookupTimeout)
	defer cancel()

	syns, err := s.repo.GetSynonyms(ctx, strings.ToLower(word))
	if err != nil {
		slog.Warn("lexicon store lookup failed", "word", word, "error", err)
		return nil
	}
	return syns
}
