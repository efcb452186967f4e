package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/asifr/shikkhok/internal/auth"
	"github.com/asifr/shikkhok/internal/config"
	"github.com/asifr/shikkhok/internal/llm"
	"github.com/asifr/shikkhok/internal/logger"
	"github.com/asifr/shikkhok/internal/ocr"
	"github.com/asifr/shikkhok/internal/pipeline"
	"github.com/asifr/shikkhok/internal/server"
	"github.com/asifr/shikkhok/internal/solver"
	"github.com/asifr/shikkhok/internal/speech"
	"github.com/asifr/shikkhok/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	pool, err := store.NewPool(ctx, cfg.DB.URL, store.PoolConfig{
		MaxConns:        cfg.DB.MaxConnections,
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	provider, err := llm.NewProvider(ctx, cfg.LLM, log)
	if err != nil {
		return fmt.Errorf("init llm provider: %w", err)
	}

	transcriber, err := speech.New(cfg.Speech, log)
	if err != nil {
		return fmt.Errorf("init transcriber: %w", err)
	}

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("init token manager: %w", err)
	}

	pipe := pipeline.New(
		ocr.New(ctx, cfg.OCR, log),
		transcriber,
		solver.New(provider, cfg.Solver, log),
		log,
	)

	handler := server.NewHandler(
		pipe,
		store.NewUserRepository(pool),
		store.NewQuestionRepository(pool),
		tokens,
		pool,
		log,
	)
	srv := server.New(cfg.Addr, handler, log)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
