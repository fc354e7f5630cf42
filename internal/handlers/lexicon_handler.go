package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/textforge/textforge/internal/lexicon"
	"github.com/textforge/textforge/internal/models"
	"github.com/textforge/textforge/internal/storage"
)

// maxSynonymsPerWord bounds a lexicon entry.
const maxSynonymsPerWord = 50

// LexiconHandler serves synonym lookup and management.
type LexiconHandler struct {
	thesaurus lexicon.Chain
	repo      storage.LexiconRepository // nil when no database is configured
}

// NewLexiconHandler creates the handler. repo may be nil; lookups then cover
// only the static dictionaries and writes are rejected.
func NewLexiconHandler(thesaurus lexicon.Chain, repo storage.LexiconRepository) *LexiconHandler {
	return &LexiconHandler{thesaurus: thesaurus, repo: repo}
}

// GetSynonyms handles GET /api/v1/synonyms/{word}. The full lookup chain is
// consulted, so built-in and YAML entries are visible too.
func (h *LexiconHandler) GetSynonyms(w http.ResponseWriter, r *http.Request) {
	word, ok := h.wordParam(w, r)
	if !ok {
		return
	}

	syns := h.thesaurus.Synonyms(word)
	if syns == nil {
		syns = []string{}
	}
	RespondWithJSON(w, http.StatusOK, models.SynonymsResponse{
		OK:       true,
		Word:     word,
		Synonyms: syns,
	})
}

// UpsertSynonyms handles PUT /api/v1/synonyms/{word}.
func (h *LexiconHandler) UpsertSynonyms(w http.ResponseWriter, r *http.Request) {
	word, ok := h.wordParam(w, r)
	if !ok {
		return
	}
	if h.repo == nil {
		RespondWithError(w, http.StatusServiceUnavailable, "Lexicon storage is not configured.", nil)
		return
	}

	var req models.UpsertSynonymsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body.", err)
		return
	}

	cleaned := make([]string, 0, len(req.Synonyms))
	for _, s := range req.Synonyms {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" && s != word {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		RespondWithError(w, http.StatusBadRequest, "At least one synonym is required.", nil)
		return
	}
	if len(cleaned) > maxSynonymsPerWord {
		RespondWithError(w, http.StatusBadRequest, "Too many synonyms for one word.", nil)
		return
	}

	entry, err := h.repo.UpsertSynonyms(r.Context(), word, cleaned)
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to store synonyms.", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, models.SynonymsResponse{
		OK:       true,
		Word:     entry.Word,
		Synonyms: cleaned,
	})
}

// DeleteSynonyms handles DELETE /api/v1/synonyms/{word}.
func (h *LexiconHandler) DeleteSynonyms(w http.ResponseWriter, r *http.Request) {
	word, ok := h.wordParam(w, r)
	if !ok {
		return
	}
	if h.repo == nil {
		RespondWithError(w, http.StatusServiceUnavailable, "Lexicon storage is not configured.", nil)
		return
	}

	err := h.repo.DeleteSynonyms(r.Context(), word)
	if errors.Is(err, storage.ErrNotFound) {
		RespondWithError(w, http.StatusNotFound, "No custom entry for word.", nil)
		return
	}
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to delete synonyms.", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "word": word})
}

// wordParam extracts and validates the {word} URL parameter.
func (h *LexiconHandler) wordParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	word := strings.ToLower(strings.TrimSpace(chi.URLParam(r, "word")))
	if word == "" {
		RespondWithError(w, http.StatusBadRequest, "word must be provided", nil)
		return "", false
	}
	return word, true
}
