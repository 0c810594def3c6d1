package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/haeyanglab/searep/internal/config"
	"github.com/haeyanglab/searep/internal/database"
	"github.com/haeyanglab/searep/internal/migrations"
	"github.com/haeyanglab/searep/internal/observability"
	"github.com/haeyanglab/searep/internal/refdata"
	"github.com/haeyanglab/searep/internal/report"
	"github.com/haeyanglab/searep/internal/server"
	"github.com/haeyanglab/searep/internal/store"
	"github.com/haeyanglab/searep/internal/weather"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Service wiring ---
	provider := refdata.NewProvider()
	reports := store.NewSQLite(db)

	clock := clockwork.NewRealClock()
	now := time.Now()
	rng := rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix())))
	sim := weather.NewSimulator(clock, rng)

	metrics := observability.NewMetrics()
	svc := report.NewService(logger, provider, reports, sim, clock, metrics)

	if err := server.SeedDemoReport(ctx, logger, reports, provider); err != nil {
		return fmt.Errorf("seeding demo report: %w", err)
	}

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, svc, db)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
