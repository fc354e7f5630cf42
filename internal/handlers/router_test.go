package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/textforge/textforge/internal/lexicon"
	"github.com/textforge/textforge/internal/storage"
)

// newTestRouter wires the router against an in-memory SQLite database and a
// small fixed thesaurus.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	repo, err := storage.NewGormRepository(db)
	require.NoError(t, err)

	thesaurus := lexicon.Chain{
		lexicon.NewStoreSource(repo),
		lexicon.Builtin(),
		lexicon.Morphological{},
	}

	return NewRouter(RouterOptions{
		Thesaurus: thesaurus,
		Jobs:      repo,
		Lexicon:   repo,
		DB:        db,
	})
}

// newBareRouter wires the router with no database and no extractor.
func newBareRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(RouterOptions{
		Thesaurus: lexicon.Chain{lexicon.Builtin(), lexicon.Morphological{}},
	})
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, jsonBody(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	decoded := map[string]interface{}{}
	if rr.Body.Len() > 0 && rr.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
	}
	return rr, decoded
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rr, body := doJSON(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "textforge", body["service"])
}

func TestHealthEndpoint_WithoutDatabase(t *testing.T) {
	router := newBareRouter(t)

	rr, body := doJSON(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.NotContains(t, body, "database")
}

func TestIndexPage(t *testing.T) {
	router := newBareRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "TextForge")
}

func TestMetricsEndpoint(t *testing.T) {
	router := newBareRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
