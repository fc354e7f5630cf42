package handlers

import (
	"net/http"
	"strconv"

	"github.com/textforge/textforge/internal/models"
	"github.com/textforge/textforge/internal/storage"
)

// JobsHandler serves the job history endpoint.
type JobsHandler struct {
	repo storage.JobRepository // nil when no database is configured
}

// NewJobsHandler creates the handler.
func NewJobsHandler(repo storage.JobRepository) *JobsHandler {
	return &JobsHandler{repo: repo}
}

// GetJobs handles GET /api/v1/jobs.
func (h *JobsHandler) GetJobs(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		RespondWithError(w, http.StatusServiceUnavailable, "Job history is not configured.", nil)
		return
	}

	filters := &storage.JobFilters{Limit: 100}
	if kind := r.URL.Query().Get("kind"); kind != "" {
		filters.Kind = &kind
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 1000 {
			filters.Limit = l
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			filters.Offset = o
		}
	}

	jobs, total, err := h.repo.GetJobs(r.Context(), filters)
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve jobs.", err)
		return
	}

	RespondWithJSON(w, http.StatusOK, models.JobsResponse{
		OK:    true,
		Jobs:  jobs,
		Total: total,
	})
}
