package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJobs(t *testing.T) {
	router := newTestRouter(t)

	t.Run("empty history", func(t *testing.T) {
		rr, resp := doJSON(t, router, http.MethodGet, "/api/v1/jobs", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, true, resp["ok"])
		assert.EqualValues(t, 0, resp["total"])
	})

	t.Run("operations are recorded", func(t *testing.T) {
		rr, _ := doJSON(t, router, http.MethodPost, "/api/v1/summarize", `{"text": "First. Second. Third. Fourth."}`)
		require.Equal(t, http.StatusOK, rr.Code)
		rr, _ = doJSON(t, router, http.MethodPost, "/api/v1/paraphrase", `{"text": "A good day.", "seed": 1}`)
		require.Equal(t, http.StatusOK, rr.Code)

		rr, resp := doJSON(t, router, http.MethodGet, "/api/v1/jobs", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.EqualValues(t, 2, resp["total"])

		jobs, ok := resp["jobs"].([]interface{})
		require.True(t, ok)
		require.Len(t, jobs, 2)
	})

	t.Run("kind filter applies", func(t *testing.T) {
		rr, resp := doJSON(t, router, http.MethodGet, "/api/v1/jobs?kind=PARAPHRASE", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.EqualValues(t, 1, resp["total"])
		jobs := resp["jobs"].([]interface{})
		require.Len(t, jobs, 1)
		job := jobs[0].(map[string]interface{})
		assert.Equal(t, "PARAPHRASE", job["kind"])
	})

	t.Run("unavailable without database", func(t *testing.T) {
		bare := newBareRouter(t)
		rr, _ := doJSON(t, bare, http.MethodGet, "/api/v1/jobs", "")
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}
