package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wosa-backend/internal/adapter/postgres"
	catalogrepo "github.com/heartmarshall/wosa-backend/internal/adapter/postgres/catalog"
	filerepo "github.com/heartmarshall/wosa-backend/internal/adapter/postgres/file"
	idallocrepo "github.com/heartmarshall/wosa-backend/internal/adapter/postgres/idalloc"
	reportrepo "github.com/heartmarshall/wosa-backend/internal/adapter/postgres/report"
	topicrepo "github.com/heartmarshall/wosa-backend/internal/adapter/postgres/topic"
	userrepo "github.com/heartmarshall/wosa-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/wosa-backend/internal/config"
	"github.com/heartmarshall/wosa-backend/internal/service/catalog"
	"github.com/heartmarshall/wosa-backend/internal/service/idalloc"
	"github.com/heartmarshall/wosa-backend/internal/service/ingest"
	"github.com/heartmarshall/wosa-backend/internal/service/report"
	"github.com/heartmarshall/wosa-backend/internal/service/topic"
	"github.com/heartmarshall/wosa-backend/internal/service/user"
	"github.com/heartmarshall/wosa-backend/internal/transport/dataloader"
	"github.com/heartmarshall/wosa-backend/internal/transport/middleware"
	"github.com/heartmarshall/wosa-backend/internal/transport/rest"
)

// bodySlack is the headroom over upload.max_bytes allowed for any request
// body, covering multipart framing.
const bodySlack = 1 << 20

// Run is the application entry point. It loads configuration, connects to
// the database, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.Open(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	handler, cleanup := NewHandler(cfg, pool, logger)
	defer cleanup()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewHandler builds the full HTTP stack over pool. The returned cleanup
// stops background workers and must be called once the handler is no longer
// served.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func()) {
	txm := postgres.NewTxManager(pool)

	files := filerepo.New(pool)
	catalogRepo := catalogrepo.New(pool)
	topics := topicrepo.New(pool)
	reports := reportrepo.New(pool)
	ids := idallocrepo.New(pool)
	users := userrepo.New(pool)

	ingestSvc := ingest.NewService(logger, files, topics, txm)
	catalogSvc := catalog.NewService(logger, catalogRepo)
	topicSvc := topic.NewService(logger, topics, catalogRepo)
	reportSvc := report.NewService(logger, reports, txm, nil)
	idSvc := idalloc.NewService(logger, ids)
	userSvc := user.NewService(logger, users)

	cleanup := func() {}
	var uploadGuard middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit)
		uploadGuard = limiter.Limit()
		cleanup = limiter.Stop
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(pool, Version),
		Files:       rest.NewFileHandler(ingestSvc, cfg.Upload.MaxBytes, logger),
		Catalog:     rest.NewCatalogHandler(catalogSvc, logger),
		Topics:      rest.NewTopicHandler(topicSvc, logger),
		Reports:     rest.NewReportHandler(reportSvc, idSvc, logger),
		Users:       rest.NewUserHandler(userSvc, logger),
		Auth:        rest.NewAuthHandler(),
		UploadGuard: uploadGuard,
		Loaders:     dataloader.Middleware(&dataloader.Repos{Members: topics}),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.MaxBody(cfg.Upload.MaxBytes+bodySlack),
	)(mux)

	return handler, cleanup
}

// serve runs srv until ctx is done, then drains in-flight requests for at
// most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
		if cerr := srv.Close(); cerr != nil {
			return fmt.Errorf("close http server: %w", cerr)
		}
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
