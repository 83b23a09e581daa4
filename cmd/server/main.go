/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the attendance engine server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags, load config file if given
  2. Initialize SQLite store
  3. Create API handler with dependencies
  4. Start the stale-session sweeper
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -config  YAML config path (optional; defaults apply without it)
  -db      SQLite database path override
           Use ":memory:" for an in-memory database
  -addr    Listen address override (e.g. ":3000")
  -seed    Load demo data into an empty database, then continue

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Stop the sweeper, close the database
  4. Exit

EXAMPLES:
  ./server -db="./data/attendance.db"
  ./server -config=config.yaml
  ./server -db=":memory:" -seed

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - config/config.go: Configuration loading
*/
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kintai/attendance-engine/api"
	"github.com/kintai/attendance-engine/config"
	"github.com/kintai/attendance-engine/engine"
	"github.com/kintai/attendance-engine/store/sqlite"
)

func main() {
	configPath := flag.String("config", "", "YAML config path")
	dbPath := flag.String("db", "", "SQLite database path override")
	addr := flag.String("addr", "", "listen address override")
	seed := flag.Bool("seed", false, "load demo data into an empty database")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *addr != "" {
		cfg.Server.ListenAddr = *addr
	}

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer store.Close()

	handler := api.NewHandler(store, logger).
		WithClassifier(cfg.Attendance.ClassifierConfig()).
		WithGrace(cfg.Attendance.GraceMinutes())

	if *seed {
		if err := api.Seed(context.Background(), store, engine.SystemClock()); err != nil {
			logger.Warn("seed skipped", zap.Error(err))
		} else {
			logger.Info("demo data loaded")
		}
	}

	sweeper := api.NewSweeper(handler, logger)
	sweeper.Interval = cfg.Sweeper.Interval
	sweeper.MaxOpen = cfg.Sweeper.MaxOpen
	sweeper.Enabled = cfg.Sweeper.Enabled
	sweeper.Start()
	defer sweeper.Stop()

	server := &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      api.NewRouter(handler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Server.ListenAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
