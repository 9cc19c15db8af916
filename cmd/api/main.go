package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"personal-kanban/internal/clock"
	"personal-kanban/internal/config"
	"personal-kanban/internal/document"
	"personal-kanban/internal/http"
	"personal-kanban/internal/service"
	"personal-kanban/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := storage.Open(storage.Options{
		Backend:  cfg.Storage,
		DBPath:   cfg.DBPath,
		RedisURL: cfg.RedisURL,
	})
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer func() {
		_ = kv.Close()
	}()
	slog.Info("Storage initialized", "backend", cfg.Storage, "key", cfg.StorageKey)

	boardService, err := service.NewBoardService(ctx, document.NewRepository(kv, cfg.StorageKey), service.Options{
		DefaultCategories: cfg.Board.DefaultCategories,
		HistoryLimit:      cfg.Board.HistoryLimit,
		NoticeTTL:         cfg.Board.NoticeTTL.Duration,
		Clock:             clock.System{},
	})
	if err != nil {
		log.Fatalf("Failed to load board: %v", err)
	}

	router := http.NewRouter(&http.Deps{
		BoardService: boardService,
		Store:        kv,
		Backend:      cfg.Storage,
	})

	addr := ":" + cfg.APIPort
	srv := &nethttp.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("API server shutdown failed", "error", err)
		}
	}()

	slog.Info("Starting API server", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		log.Fatalf("API server failed to start: %v", err)
	}
	slog.Info("API server stopped")
}
