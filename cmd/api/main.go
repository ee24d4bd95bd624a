package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/paygrow/internal/app"
	"github.com/MrJamesThe3rd/paygrow/internal/auth"
	"github.com/MrJamesThe3rd/paygrow/internal/config"
	paygrowHttp "github.com/MrJamesThe3rd/paygrow/internal/http"
	accountHandler "github.com/MrJamesThe3rd/paygrow/internal/http/account"
	authHandler "github.com/MrJamesThe3rd/paygrow/internal/http/auth"
	insightHandler "github.com/MrJamesThe3rd/paygrow/internal/http/insight"
	"github.com/MrJamesThe3rd/paygrow/internal/metrics"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	gateway, closeDB, err := app.OpenGateway(ctx, cfg)
	if err != nil {
		slog.Error("failed to open storage", "driver", cfg.DB.Driver, "error", err)
		os.Exit(1)
	}
	defer closeDB()

	insights, err := app.NewInsights(ctx, cfg)
	if err != nil {
		slog.Error("failed to create insight provider", "error", err)
		os.Exit(1)
	}

	collector := metrics.New()

	sessions, err := app.NewSessions(cfg, gateway, insights, collector)
	if err != nil {
		slog.Error("failed to create session service", "error", err)
		os.Exit(1)
	}

	issuer := auth.NewIssuer(cfg.Auth.Secret, cfg.Auth.TTL)

	var (
		authH    = authHandler.NewHandler(sessions, issuer)
		accountH = accountHandler.NewHandler(sessions)
		insightH = insightHandler.NewHandler(sessions)
	)

	router := paygrowHttp.New(authH, accountH, insightH, issuer, collector.Handler(), cfg.App.CORSOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	go func() {
		slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr, "driver", cfg.DB.Driver)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}
}
