package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/raleighinsights/console/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "insights",
		Short:         "Terminal console for the city insights backend",
		Long:          "Fetches the insights backend's dashboard payloads and renders housing, economy, development and metro views in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newDashboardCmd(), newReportCmd(), newFixturesCmd())
	return root
}

// loadConfig reads .env files first so local overrides win over defaults.
func loadConfig() (config.Config, error) {
	_ = godotenv.Load(".env.local", ".env")
	return config.Load()
}

// newLogger builds a zap logger at the configured level. The dashboard
// writes to a file so log lines never tear the alternate screen; one-shot
// commands log to stderr.
func newLogger(level string, toFile bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if toFile {
		cfg.OutputPaths = []string{"insights.log"}
		cfg.ErrorOutputPaths = []string{"insights.log"}
	}
	return cfg.Build()
}
