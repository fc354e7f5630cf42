package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/textforge/textforge/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// GormRepository implements JobRepository and LexiconRepository using GORM
// (works with SQLite or PostgreSQL).
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a repository and migrates the schema.
func NewGormRepository(db *gorm.DB) (*GormRepository, error) {
	if err := db.AutoMigrate(&models.Job{}, &models.SynonymEntry{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return &GormRepository{db: db}, nil
}

// CreateJob persists a new job record.
func (r *GormRepository) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// GetJobs retrieves job records with optional filtering, newest first.
func (r *GormRepository) GetJobs(ctx context.Context, filters *JobFilters) ([]models.Job, int64, error) {
	var jobs []models.Job
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Job{})
	if filters.Kind != nil && *filters.Kind != "" {
		query = query.Where("kind = ?", strings.ToUpper(*filters.Kind))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 100 // default
	}
	if limit > 1000 {
		limit = 1000 // max
	}

	if err := query.Order("created_at DESC").Limit(limit).Offset(filters.Offset).Find(&jobs).Error; err != nil {
		return nil, 0, fmt.Errorf("retrieve jobs: %w", err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, total, nil
}

// GetSynonyms returns the synonyms for a lowercased headword.
func (r *GormRepository) GetSynonyms(ctx context.Context, word string) ([]string, error) {
	var entry models.SynonymEntry
	err := r.db.WithContext(ctx).First(&entry, "word = ?", strings.ToLower(word)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get synonyms: %w", err)
	}
	return entry.SynonymList()
}

// UpsertSynonyms creates or replaces the entry for a headword.
func (r *GormRepository) UpsertSynonyms(ctx context.Context, word string, synonyms []string) (*models.SynonymEntry, error) {
	raw, err := json.Marshal(synonyms)
	if err != nil {
		return nil, fmt.Errorf("encode synonyms: %w", err)
	}
	entry := &models.SynonymEntry{
		Word:     strings.ToLower(word),
		Synonyms: raw,
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "word"}},
		DoUpdates: clause.AssignmentColumns([]string{"synonyms"}),
	}).Create(entry).Error
	if err != nil {
		return nil, fmt.Errorf("upsert synonyms: %w", err)
	}
	return entry, nil
}

// DeleteSynonyms removes the entry for a headword.
func (r *GormRepository) DeleteSynonyms(ctx context.Context, word string) error {
	result := r.db.WithContext(ctx).Delete(&models.SynonymEntry{}, "word = ?", strings.ToLower(word))
	if result.Error != nil {
		return fmt.Errorf("delete synonyms: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
