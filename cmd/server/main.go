package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/api"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/solve"
)

func main() {
	cfgPath := flag.String("config", "configs/gridpath.yaml", "Path to YAML config")
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// ── Load config ──────────────────────────────────────────────────────────
	loader, err := config.NewLoader(*cfgPath)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		slog.Info("no config file, using defaults", "path", *cfgPath)
		loader = config.NewStatic(config.Default())
	default:
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	cfg := loader.Config()
	if *addr != "" {
		cfg.Addr = *addr
	}

	// ── Working grid and runner ──────────────────────────────────────────────
	g, err := buildGrid(cfg)
	if err != nil {
		slog.Error("failed to build working grid", "err", err)
		os.Exit(1)
	}
	runner, err := solve.NewRunner(g)
	if err != nil {
		slog.Error("failed to create runner", "err", err)
		os.Exit(1)
	}
	slog.Info("working grid ready", "size", cfg.GridSize, "weights", cfg.Weights)

	// ── Hot-reload watcher ────────────────────────────────────────────────────
	loader.OnChange(func(newCfg *config.Config) {
		fresh, buildErr := buildGrid(newCfg)
		if buildErr != nil {
			slog.Warn("hot-reload skipped: grid build failed", "err", buildErr)
			return
		}
		if swapErr := runner.Swap(fresh); swapErr != nil {
			slog.Warn("hot-reload skipped: run in flight", "err", swapErr)
			return
		}
		slog.Info("working grid hot-reloaded", "size", newCfg.GridSize, "weights", newCfg.Weights)
	})
	stopWatch, watchErr := loader.Watch()
	if watchErr != nil {
		slog.Warn("config watcher unavailable (hot-reload disabled)", "err", watchErr)
	} else {
		defer stopWatch()
	}

	// ── HTTP server ───────────────────────────────────────────────────────────
	gin.SetMode(gin.ReleaseMode)
	handler := api.New(runner, loader, logger)
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSec) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr)
		if serveErr := srv.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			slog.Error("server error", "err", serveErr)
			os.Exit(1)
		}
	}()

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	runner.Cancel()
	shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutCancel()
	_ = srv.Shutdown(shutCtx)
	slog.Info("goodbye")
}

// buildGrid materializes the initial working grid from the config. Endpoints
// stay unset until the first request designates them.
func buildGrid(cfg *config.Config) (*grid.Grid, error) {
	var opts []grid.Option
	if cfg.Weights {
		opts = append(opts, grid.WithWeights())
	}

	return grid.New(cfg.GridSize, opts...)
}
