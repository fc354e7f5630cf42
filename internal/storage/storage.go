// Package storage provides the database-agnostic repositories for job
// history and the custom lexicon.
package storage

import (
	"context"

	"github.com/textforge/textforge/internal/models"
)

// JobFilters represents query filters for retrieving job history.
type JobFilters struct {
	Kind   *string
	Limit  int
	Offset int
}

// JobRepository records and queries summarize/paraphrase jobs.
type JobRepository interface {
	// CreateJob persists a new job record.
	CreateJob(ctx context.Context, job *models.Job) (*models.Job, error)

	// GetJobs retrieves job records with optional filtering, newest first.
	GetJobs(ctx context.Context, filters *JobFilters) ([]models.Job, int64, error)
}

// LexiconRepository manages the database-backed synonym lexicon.
type LexiconRepository interface {
	// GetSynonyms returns the synonyms for a lowercased headword, or nil
	// when no entry exists.
	GetSynonyms(ctx context.Context, word string) ([]string, error)

	// UpsertSynonyms creates or replaces the entry for a headword.
	UpsertSynonyms(ctx context.Context, word string, synonyms []string) (*models.SynonymEntry, error)

	// DeleteSynonyms removes the entry for a headword. Returns
	// ErrNotFound when no entry exists.
	DeleteSynonyms(ctx context.Context, word string) error
}
