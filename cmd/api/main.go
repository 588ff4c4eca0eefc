package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pgRepo "article-summarizer/internal/infra/adapter/persistence/postgres"
	"article-summarizer/internal/infra/db"
	"article-summarizer/internal/infra/fetcher"
	"article-summarizer/internal/summarizer"
	"article-summarizer/pkg/config"

	"article-summarizer/internal/usecase/analytics"
	"article-summarizer/internal/usecase/history"
	"article-summarizer/internal/usecase/summarize"

	hhttp "article-summarizer/internal/handler/http"
	"article-summarizer/internal/handler/http/requestid"
	hsummary "article-summarizer/internal/handler/http/summary"
	"article-summarizer/internal/observability/logging"
	"article-summarizer/internal/observability/tracing"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, database, version)

	runServer(logger, handler, version)
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires the use cases and returns the HTTP handler with all
// routes and middleware applied.
func setupServer(logger *slog.Logger, database *sql.DB, version string) http.Handler {
	summaryRepo := pgRepo.NewSummaryRepo(database)
	usageRepo := pgRepo.NewUsageRepo(database)

	fetchCfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load fetcher configuration", slog.Any("error", err))
		os.Exit(1)
	}
	articleFetcher := fetcher.NewReadabilityFetcher(fetchCfg)
	logger.Info("article fetcher initialized",
		slog.Duration("timeout", fetchCfg.Timeout),
		slog.Int64("max_body_size", fetchCfg.MaxBodySize),
		slog.Bool("deny_private_ips", fetchCfg.DenyPrivateIPs))

	sumSvc := summarize.NewService(articleFetcher, summaryRepo, summarizer.NewExtractive())
	histSvc := &history.Service{Repo: summaryRepo}
	anaSvc := &analytics.Service{Usage: usageRepo, Summaries: summaryRepo, Logger: logger}

	mux := setupRoutes(database, version, sumSvc, histSvc, anaSvc, logger)
	return applyMiddleware(logger, mux)
}

// setupRoutes registers all HTTP routes.
func setupRoutes(
	database *sql.DB,
	version string,
	sumSvc *summarize.Service,
	histSvc *history.Service,
	anaSvc *analytics.Service,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()
	hsummary.Register(mux, sumSvc, histSvc, anaSvc, logger)

	mux.Handle("GET    /healthz", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET    /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET    /live", &hhttp.LiveHandler{})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): Recover, Request ID, Tracing, Logging, Metrics,
// Rate Limit, CORS, Body Limit.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	rateLimit := config.GetEnvInt("RATE_LIMIT_PER_MINUTE", 60)
	limiter := hhttp.NewRateLimiter(rateLimit, 1*time.Minute)
	logger.Info("rate limiting initialized",
		slog.Int("limit", rateLimit),
		slog.Duration("window", 1*time.Minute))

	chain := handler
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB request bodies
	chain = hhttp.CORS(chain)
	chain = limiter.Limit(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = hhttp.Recover(logger)(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := ":" + config.GetEnvString("PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
