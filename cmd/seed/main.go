// Command seed inserts the default application components and interface
// types. Existing names are left untouched.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/wosa-backend/internal/adapter/postgres"
	catalogrepo "github.com/heartmarshall/wosa-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/wosa-backend/internal/app"
	"github.com/heartmarshall/wosa-backend/internal/config"
	"github.com/heartmarshall/wosa-backend/internal/service/catalog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := catalog.NewService(logger, catalogrepo.New(pool))

	stats, err := app.SeedCatalog(ctx, svc, logger)
	if err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("seed completed",
		slog.Int("created", stats.Created),
		slog.Int("skipped", stats.Skipped),
	)
}
