package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/textforge/textforge/internal/extract"
	"github.com/textforge/textforge/internal/lexicon"
	"github.com/textforge/textforge/internal/models"
	"github.com/textforge/textforge/internal/monitoring"
	"github.com/textforge/textforge/internal/paraphrase"
	"github.com/textforge/textforge/internal/storage"
	"github.com/textforge/textforge/internal/summarize"
	"github.com/textforge/textforge/internal/textkit"
)

// maxInputBytes caps the accepted request body.
const maxInputBytes = 1 << 20 // 1 MiB

// TextHandler serves the summarize and paraphrase endpoints.
type TextHandler struct {
	paraphraser *paraphrase.Paraphraser
	extractor   *extract.Extractor // nil when URL extraction is disabled
	jobs        storage.JobRepository
}

// NewTextHandler creates the handler. extractor and jobs may be nil when the
// corresponding features are disabled.
func NewTextHandler(thesaurus lexicon.Chain, extractor *extract.Extractor, jobs storage.JobRepository) *TextHandler {
	return &TextHandler{
		paraphraser: paraphrase.New(thesaurus),
		extractor:   extractor,
		jobs:        jobs,
	}
}

// Summarize handles POST /api/v1/summarize.
func (h *TextHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req models.SummarizeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxInputBytes)).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body.", err)
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	req.URL = strings.TrimSpace(req.URL)

	if req.Text == "" && req.URL == "" {
		RespondWithError(w, http.StatusBadRequest, "No text provided.", nil)
		return
	}
	if req.Text != "" && req.URL != "" {
		RespondWithError(w, http.StatusBadRequest, "Provide either text or url, not both.", nil)
		return
	}

	opts := summarize.DefaultOptions()
	if req.Ratio != nil {
		if *req.Ratio <= 0 || *req.Ratio > 1 {
			RespondWithError(w, http.StatusBadRequest, "ratio must be in (0, 1].", nil)
			return
		}
		opts.Ratio = *req.Ratio
	}
	if req.MinSentences != nil {
		if *req.MinSentences < 1 {
			RespondWithError(w, http.StatusBadRequest, "minSentences must be at least 1.", nil)
			return
		}
		opts.MinSentences = *req.MinSentences
	}

	start := time.Now()
	text := req.Text
	source := models.JobSourceText

	var respSource *models.SummarizeSource
	if req.URL != "" {
		if h.extractor == nil {
			RespondWithError(w, http.StatusServiceUnavailable, "URL extraction is disabled.", nil)
			return
		}
		article, err := h.extractor.Extract(r.Context(), req.URL)
		if err != nil {
			monitoring.RecordTextOperation(models.JobKindSummarize, "error", 0)
			RespondWithError(w, http.StatusBadGateway, "Failed to extract article.", err)
			return
		}
		text = article.Text
		source = models.JobSourceURL
		respSource = &models.SummarizeSource{URL: article.URL, Title: article.Title}
	}

	result := summarize.Text(text, opts)
	summary := result.Summary()

	monitoring.RecordTextOperation(models.JobKindSummarize, "success", len(textkit.SplitSentences(text)))
	h.recordJob(r.Context(), &models.Job{
		Kind:        models.JobKindSummarize,
		Source:      source,
		SourceURL:   optionalString(req.URL),
		InputChars:  len(text),
		OutputChars: len(summary),
		Parameters:  mustJSON(map[string]interface{}{"ratio": opts.Ratio, "minSentences": opts.MinSentences}),
		DurationMs:  time.Since(start).Milliseconds(),
	})

	RespondWithJSON(w, http.StatusOK, models.SummarizeResponse{
		OK:        true,
		Summary:   summary,
		Sentences: result.Sentences,
		Source:    respSource,
	})
}

// Paraphrase handles POST /api/v1/paraphrase.
func (h *TextHandler) Paraphrase(w http.ResponseWriter, r *http.Request) {
	var req models.ParaphraseRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxInputBytes)).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body.", err)
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		RespondWithError(w, http.StatusBadRequest, "No text provided.", nil)
		return
	}

	strength := paraphrase.DefaultStrength
	if req.Strength != nil {
		if *req.Strength < 0 || *req.Strength > 1 {
			RespondWithError(w, http.StatusBadRequest, "strength must be in [0, 1].", nil)
			return
		}
		strength = *req.Strength
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	start := time.Now()
	rewritten := h.paraphraser.Rewrite(req.Text, strength, rng)

	monitoring.RecordTextOperation(models.JobKindParaphrase, "success", len(textkit.SplitSentences(req.Text)))
	h.recordJob(r.Context(), &models.Job{
		Kind:        models.JobKindParaphrase,
		Source:      models.JobSourceText,
		InputChars:  len(req.Text),
		OutputChars: len(rewritten),
		Parameters:  mustJSON(map[string]interface{}{"strength": strength}),
		DurationMs:  time.Since(start).Milliseconds(),
	})

	RespondWithJSON(w, http.StatusOK, models.ParaphraseResponse{
		OK:         true,
		Paraphrase: rewritten,
	})
}

// recordJob persists the job best-effort; history must never fail a request.
func (h *TextHandler) recordJob(ctx context.Context, job *models.Job) {
	if h.jobs == nil {
		return
	}
	if _, err := h.jobs.CreateJob(ctx, job); err != nil {
		slog.Warn("Failed to record job", "kind", job.Kind, "error", err)
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func mustJSON(v interface{}) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return raw
}
