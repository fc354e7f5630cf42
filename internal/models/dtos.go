package models

// SummarizeRequest is the body of POST /api/v1/summarize. Exactly one of
// Text or URL must be set.
type SummarizeRequest struct {
	Text         string   `json:"text,omitempty"`
	URL          string   `json:"url,omitempty"`
	Ratio        *float64 `json:"ratio,omitempty"`
	MinSentences *int     `json:"minSentences,omitempty"`
}

// SummarizeSource describes where URL-sourced text came from.
type SummarizeSource struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// SummarizeResponse is the body of a successful summarize call.
type SummarizeResponse struct {
	OK        bool             `json:"ok"`
	Summary   string           `json:"summary"`
	Sentences []string         `json:"sentences"`
	Source    *SummarizeSource `json:"source,omitempty"`
}

// ParaphraseRequest is the body of POST /api/v1/paraphrase.
type ParaphraseRequest struct {
	Text     string   `json:"text"`
	Strength *float64 `json:"strength,omitempty"`
	// Seed makes the rewrite reproducible when set.
	Seed *int64 `json:"seed,omitempty"`
}

// ParaphraseResponse is the body of a successful paraphrase call.
type ParaphraseResponse struct {
	OK         bool   `json:"ok"`
	Paraphrase string `json:"paraphrase"`
}

// SynonymsResponse is the body of GET /api/v1/synonyms/{word}.
type SynonymsResponse struct {
	OK       bool     `json:"ok"`
	Word     string   `json:"word"`
	Synonyms []string `json:"synonyms"`
}

// UpsertSynonymsRequest is the body of PUT /api/v1/synonyms/{word}.
type UpsertSynonymsRequest struct {
	Synonyms []string `json:"synonyms"`
}

// JobsResponse is the body of GET /api/v1/jobs.
type JobsResponse struct {
	OK    bool  `json:"ok"`
	Jobs  []Job `json:"jobs"`
	Total int64 `json:"total"`
}

// ErrorResponse is the envelope for all error replies.
type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
