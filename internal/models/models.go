// Package models defines the persisted entities and API data transfer types.
package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job kinds recorded in the history table.
const (
	JobKindSummarize  = "SUMMARIZE"
	JobKindParaphrase = "PARAPHRASE"
)

// Job input sources.
const (
	JobSourceText = "TEXT"
	JobSourceURL  = "URL"
)

// BaseModel contains common fields for all models.
// UpdatedAt is intentionally omitted; job records are immutable.
type BaseModel struct {
	CreatedAt time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// BeforeCreate GORM hook for BaseModel.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	b.CreatedAt = time.Now().UTC()
	return nil
}

// Job records one summarize or paraphrase request.
type Job struct {
	ID uuid.UUID `gorm:"primaryKey" json:"id"`

	Kind   string `gorm:"type:varchar(20);not null;index:idx_jobs_kind" json:"kind"`
	Source string `gorm:"type:varchar(10);not null" json:"source"`

	// SourceURL is set only for URL-sourced summarize jobs.
	SourceURL *string `gorm:"type:varchar(2048)" json:"sourceUrl,omitempty"`

	InputChars  int `gorm:"not null" json:"inputChars"`
	OutputChars int `gorm:"not null" json:"outputChars"`

	// Parameters holds the request parameters (ratio, strength, ...).
	Parameters json.RawMessage `gorm:"type:text" json:"parameters,omitempty"`

	DurationMs int64 `gorm:"not null" json:"durationMs"`

	BaseModel
}

// TableName sets the table name for the Job model.
func (Job) TableName() string {
	return "jobs"
}

// BeforeCreate hook to set default values.
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return j.BaseModel.BeforeCreate(tx)
}

// Validate checks the job against the database constraints.
func (j *Job) Validate() error {
	if j.Kind != JobKindSummarize && j.Kind != JobKindParaphrase {
		return fmt.Errorf("invalid kind: %s (must be %s or %s)", j.Kind, JobKindSummarize, JobKindParaphrase)
	}
	if j.Source != JobSourceText && j.Source != JobSourceURL {
		return fmt.Errorf("invalid source: %s (must be %s or %s)", j.Source, JobSourceText, JobSourceURL)
	}
	return nil
}

// SynonymEntry is a database-backed lexicon entry. Synonyms are stored as a
// JSON array so the schema stays portable across SQLite and PostgreSQL.
type SynonymEntry struct {
	// Word is the lowercased headword.
	Word     string          `gorm:"primaryKey;type:varchar(100)" json:"word"`
	Synonyms json.RawMessage `gorm:"type:text;not null" json:"synonyms"`

	BaseModel
}

// TableName sets the table name for the SynonymEntry model.
func (SynonymEntry) TableName() string {
	return "synonym_entries"
}

// SynonymList decodes the stored JSON array.
func (e *SynonymEntry) SynonymList() ([]string, error) {
	var syns []string
	if err := json.Unmarshal(e.Synonyms, &syns); err != nil {
		return nil, fmt.Errorf("decode synonyms for %q: %w", e.Word, err)
	}
	return syns, nil
}
