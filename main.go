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

	_ "github.com/joho/godotenv/autoload"

	"github.com/gafarajao/portfolio/internal/config"
	"github.com/gafarajao/portfolio/internal/content"
	"github.com/gafarajao/portfolio/internal/dom"
	"github.com/gafarajao/portfolio/internal/mail"
	"github.com/gafarajao/portfolio/internal/store"
	"github.com/gafarajao/portfolio/internal/web"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := content.Validate(); err != nil {
		return fmt.Errorf("resume content: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()
	logger.Info("database opened", "path", cfg.DBPath)

	mailer := mail.New(cfg.SMTP)
	if !mailer.Configured() {
		logger.Warn("SMTP credentials not configured; contact messages will only be stored")
	}

	home, err := web.BuildHome(content.Resume(), dom.Viewport{
		Width:  cfg.ViewportWidth,
		Height: cfg.ViewportHeight,
	}, logger)
	if err != nil {
		return err
	}
	logger.Info("animation plan built", "steps", len(home.Plan.Steps))

	srv, err := web.New(cfg, home, st, mailer, logger)
	if err != nil {
		return err
	}
	router, err := srv.Router()
	if err != nil {
		return err
	}

	go srv.RunRetention(ctx)

	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	srv.Wait()

	return nil
}
