package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/surveyadmin/backend/internal/analytics"
	"github.com/surveyadmin/backend/internal/api"
	"github.com/surveyadmin/backend/internal/dashboard"
	"github.com/surveyadmin/backend/internal/infrastructure/config"
	"github.com/surveyadmin/backend/internal/logger"
	"github.com/surveyadmin/backend/internal/service"
	"github.com/surveyadmin/backend/internal/source"
	"github.com/surveyadmin/backend/internal/store"

	_ "github.com/surveyadmin/backend/docs" // swagger docs
)

// @title           Survey Admin API
// @version         1.0
// @description     Survey question builder, respondent answers and the admin analytics dashboard.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  AdminToken
// @in                          header
// @name                        X-Admin-Token

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Dependencies ────────────────────────────────────────────────
	db, err := openStore(ctx, cfg)
	if err != nil {
		lg.Fatal("failed to open database", zap.String("driver", cfg.DB.Driver), zap.Error(err))
	}
	defer db.Close()

	if cfg.SeedFile != "" {
		if err := seed(ctx, db, cfg.SeedFile, lg); err != nil {
			lg.Fatal("failed to seed database", zap.String("file", cfg.SeedFile), zap.Error(err))
		}
	}

	fetcher := newFetcher(cfg, db)
	engine := dashboard.NewEngine(fetcher, dashboard.Config{
		Analytics: analytics.Options{
			LeaderboardSize: cfg.Analytics.LeaderboardSize,
			RecentLimit:     cfg.Analytics.RecentLimit,
		},
		CreateURL:    "/questions",
		Workers:      cfg.Source.Workers,
		FetchTimeout: cfg.Source.UpstreamTimeout,
	}, lg)
	defer engine.Close()
	go engine.Run(ctx)

	// initial mount
	if _, err := engine.Trigger(ctx, source.Scope{Admin: true}, false); err != nil {
		lg.Warn("initial dashboard load not started", zap.Error(err))
	}

	questions := service.NewQuestionService(db, engine, lg)
	handler := api.NewHandler(db, questions, engine, lg)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → Scope → mux ──────────────
	chain := api.Logging(lg)(api.CORS(api.Scope(cfg.AdminToken)(mux)))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           chain,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// closed once Shutdown has drained in-flight handlers; engine.Close waits on it
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		lg.Info("shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	lg.Info("starting server",
		zap.String("address", cfg.ServerAddress),
		zap.String("db_driver", cfg.DB.Driver),
		zap.String("source", cfg.Source.Kind),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Fatal("server failed to start", zap.Error(err))
	}
	<-shutdownDone
	lg.Info("server stopped")
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		return store.NewPostgres(ctx, cfg.DB.URL, store.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
	case config.DriverSQLite:
		return store.NewSQLite(cfg.DB.Path)
	default:
		return nil, fmt.Errorf("unknown driver %q", cfg.DB.Driver)
	}
}

func newFetcher(cfg *config.Config, db store.Store) source.Fetcher {
	if cfg.Source.Kind == config.SourceUpstream {
		return source.NewUpstreamSource(cfg.Source.UpstreamURL, cfg.Source.UpstreamTimeout)
	}
	return source.NewStoreSource(db)
}

func seed(ctx context.Context, db store.Store, path string, lg *zap.Logger) error {
	questions, err := store.LoadSeed(path)
	if err != nil {
		return err
	}
	n, err := store.Seed(ctx, db, questions)
	if err != nil {
		return err
	}
	if n > 0 {
		lg.Info("database seeded", zap.Int("questions", n))
	}
	return nil
}
