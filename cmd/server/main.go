package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/textforge/textforge/internal/config"
	"github.com/textforge/textforge/internal/extract"
	"github.com/textforge/textforge/internal/handlers"
	"github.com/textforge/textforge/internal/lexicon"
	"github.com/textforge/textforge/internal/storage"
)

func main() {
	// Load .env file if it exists (optional - fails silently if not found)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting TextForge", "env", cfg.Env, "port", cfg.Port, "database", cfg.DatabaseBackend)

	// Optional database for job history and the custom lexicon.
	var db *gorm.DB
	var repo *storage.GormRepository
	if cfg.DatabaseBackend != config.DBNone {
		db, err = connectDB(cfg)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		repo, err = storage.NewGormRepository(db)
		if err != nil {
			slog.Error("Failed to initialize storage", "error", err)
			os.Exit(1)
		}
	}

	// lexRepo stays a nil interface when no database is configured.
	var lexRepo storage.LexiconRepository
	if repo != nil {
		lexRepo = repo
	}
	thesaurus := buildThesaurus(cfg, lexRepo)

	var extractor *extract.Extractor
	if cfg.ExtractionEnabled {
		fetcher := extract.NewFetcher(cfg.FetchTimeout, cfg.FetchUserAgent, cfg.FetchMaxBytes, cfg.FetchAllowPrivate)
		extractor = extract.NewExtractor(fetcher)
	}

	opts := handlers.RouterOptions{
		Thesaurus: thesaurus,
		Extractor: extractor,
		DB:        db,
	}
	if repo != nil {
		opts.Jobs = repo
		opts.Lexicon = repo
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handlers.NewRouter(opts),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("TextForge listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down TextForge...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}
	}

	slog.Info("TextForge exited")
}

// connectDB opens the configured database.
func connectDB(cfg config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	switch cfg.DatabaseBackend {
	case config.DBSQLite:
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		return db, nil
	case config.DBPostgres:
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown database backend: %s", cfg.DatabaseBackend)
	}
}

// buildThesaurus assembles the synonym lookup chain: database lexicon first,
// then the YAML lexicon, the built-in thesaurus, and the morphological
// fallback.
func buildThesaurus(cfg config.Config, repo storage.LexiconRepository) lexicon.Chain {
	var chain lexicon.Chain

	if repo != nil {
		chain = append(chain, lexicon.NewStoreSource(repo))
	}

	entries, err := config.LoadLexicon(cfg.LexiconPath)
	if err != nil {
		slog.Warn("Failed to load lexicon file, continuing without it", "path", cfg.LexiconPath, "error", err)
	} else if len(entries) > 0 {
		chain = append(chain, lexicon.NewStatic(entries))
	}

	chain = append(chain, lexicon.Builtin(), lexicon.Morphological{})
	return chain
}
