// Package app wires the storage, insight and session services from a Config.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/MrJamesThe3rd/paygrow/internal/config"
	"github.com/MrJamesThe3rd/paygrow/internal/database"
	"github.com/MrJamesThe3rd/paygrow/internal/insight"
	"github.com/MrJamesThe3rd/paygrow/internal/metrics"
	"github.com/MrJamesThe3rd/paygrow/internal/session"
	"github.com/MrJamesThe3rd/paygrow/internal/session/store"
)

const DriverMemory = "memory"

// OpenGateway returns the Gateway selected by DB_DRIVER and a func that
// releases it.
func OpenGateway(ctx context.Context, cfg *config.Config) (session.Gateway, func(), error) {
	var dsn string

	switch cfg.DB.Driver {
	case DriverMemory:
		return store.NewMemory(), func() {}, nil
	case database.DriverPostgres:
		dsn = cfg.ConnectionString()
	case database.DriverSQLite:
		dsn = cfg.DB.SQLitePath
	default:
		return nil, nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DB.Driver)
	}

	db, err := database.New(cfg.DB.Driver, dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}

	return store.New(db), closer(db), nil
}

func closer(db *sql.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}
}

// NewInsights serves suggestions from Gemini when an API key is configured.
func NewInsights(ctx context.Context, cfg *config.Config) (insight.Provider, error) {
	local := insight.NewLocal(nil)

	if cfg.Gemini.APIKey == "" {
		slog.Warn("GEMINI_API_KEY not set, investment and reward suggestions are unavailable")
		return insight.NewComposite(insight.Unavailable{Reason: "GEMINI_API_KEY not set"}, local), nil
	}

	gen, err := insight.NewGenAI(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	return insight.NewComposite(insight.NewGemini(gen), local), nil
}

func NewSessions(cfg *config.Config, gateway session.Gateway, insights insight.Provider, m *metrics.Collector) (*session.Service, error) {
	seedBalance, err := cfg.SeedBalance()
	if err != nil {
		return nil, fmt.Errorf("parsing seed balance: %w", err)
	}

	threshold, err := cfg.MultiplierThreshold()
	if err != nil {
		return nil, fmt.Errorf("parsing multiplier threshold: %w", err)
	}

	return session.NewService(gateway, insights, m, session.Settings{
		SeedName:            cfg.Seed.Name,
		SeedBalance:         seedBalance,
		MultiplierThreshold: threshold,
		InsightTimeout:      cfg.Insight.Timeout,
	}), nil
}
