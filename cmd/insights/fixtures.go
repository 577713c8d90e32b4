package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/raleighinsights/console/internal/platform/fixtures"
)

func newFixturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures",
		Short: "Serve sample backend payloads for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("config load: %w", err)
			}

			logger, err := newLogger(cfg.LogLevel, false)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			gin.SetMode(gin.ReleaseMode)
			server := &http.Server{
				Addr:    ":" + cfg.FixturesPort,
				Handler: fixtures.NewRouter(),
			}

			errCh := make(chan error, 1)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()
			logger.Info("fixtures server listening", zap.String("port", cfg.FixturesPort))

			select {
			case err := <-errCh:
				return fmt.Errorf("fixtures server: %w", err)
			case <-ctx.Done():
			}
			stop()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Warn("fixtures shutdown", zap.Error(err))
			}
			logger.Info("fixtures server exited")
			return nil
		},
	}
}
