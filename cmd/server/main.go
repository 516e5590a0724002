package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/schoolsite/internal/config"
	"github.com/dgallion1/schoolsite/internal/content"
	"github.com/dgallion1/schoolsite/internal/pages"
	"github.com/dgallion1/schoolsite/internal/web"
)

func main() {
	cfg := config.Load()

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Content source: a remote static host when configured, else the public dir.
	var fetcher content.Fetcher
	if cfg.ContentBaseURL != "" {
		hf := content.NewHTTPFetcher(cfg.ContentBaseURL, cfg.FetchTimeout)
		defer hf.Close()
		fetcher = hf
	} else {
		fetcher = content.NewDirFetcher(os.DirFS(cfg.PublicDir))
	}

	stats := content.NewFetchStats(cfg.StatsWindow)
	loader := content.NewLoader(fetcher, log, content.Options{
		Retries:       cfg.FetchRetries,
		MaxConcurrent: cfg.MaxConcurrentFetches,
		Stats:         stats,
	})
	builder := pages.NewBuilder(loader, log, pages.Config{PublicDir: cfg.PublicDir})

	srv, err := web.NewServer(builder, loader, stats, log, cfg)
	if err != nil {
		log.Error("create server", "error", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	idle := make(chan struct{})
	go func() {
		defer close(idle)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", "error", err)
		}
	}()

	log.Info("starting schoolsite",
		"port", cfg.Port,
		"public_dir", cfg.PublicDir,
		"content_base_url", cfg.ContentBaseURL,
	)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	<-idle
}
