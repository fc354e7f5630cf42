package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"

	"github.com/textforge/textforge/internal/extract"
	"github.com/textforge/textforge/internal/lexicon"
	"github.com/textforge/textforge/internal/middleware"
	"github.com/textforge/textforge/internal/monitoring"
	"github.com/textforge/textforge/internal/storage"
	"github.com/textforge/textforge/web"
)

// RouterOptions carries the wired dependencies. DB, Jobs, Lexicon and
// Extractor may be nil when the corresponding feature is disabled.
type RouterOptions struct {
	Thesaurus lexicon.Chain
	Extractor *extract.Extractor
	Jobs      storage.JobRepository
	Lexicon   storage.LexiconRepository
	DB        *gorm.DB
}

// NewRouter builds the service router with the full middleware chain.
func NewRouter(opts RouterOptions) *chi.Mux {
	textHandler := NewTextHandler(opts.Thesaurus, opts.Extractor, opts.Jobs)
	lexiconHandler := NewLexiconHandler(opts.Thesaurus, opts.Lexicon)
	jobsHandler := NewJobsHandler(opts.Jobs)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORSMiddleware())
	r.Use(monitoring.HTTPMetricsMiddleware)

	r.Get("/", web.IndexHandler)
	r.Get("/health", healthHandler(opts.DB))
	r.Method(http.MethodGet, "/metrics", monitoring.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/summarize", textHandler.Summarize)
		r.Post("/paraphrase", textHandler.Paraphrase)

		r.Get("/synonyms/{word}", lexiconHandler.GetSynonyms)
		r.Put("/synonyms/{word}", lexiconHandler.UpsertSynonyms)
		r.Delete("/synonyms/{word}", lexiconHandler.DeleteSynonyms)

		r.Get("/jobs", jobsHandler.GetJobs)
	})

	return r
}

// healthHandler reports service and database health.
func healthHandler(db *gorm.DB) http.HandlerFunc {
	type dbHealth struct {
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	}
	type healthStatus struct {
		Status   string    `json:"status"`
		Service  string    `json:"service"`
		Database *dbHealth `json:"database,omitempty"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		status := healthStatus{
			Status:  "healthy",
			Service: "textforge",
		}

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
			defer cancel()

			status.Database = &dbHealth{Status: "healthy"}
			sqlDB, err := db.DB()
			if err != nil {
				status.Database = &dbHealth{Status: "unhealthy", Error: err.Error()}
				status.Status = "unhealthy"
			} else if err := sqlDB.PingContext(ctx); err != nil {
				status.Database = &dbHealth{Status: "unhealthy", Error: err.Error()}
				status.Status = "unhealthy"
			}
		}

		code := http.StatusOK
		if status.Status != "healthy" {
			code = http.StatusServiceUnavailable
		}
		RespondWithJSON(w, code, status)
	}
}
