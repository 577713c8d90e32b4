package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/raleighinsights/console/internal/platform/feed"
	"github.com/raleighinsights/console/internal/tui"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("config load: %w", err)
			}

			logger, err := newLogger(cfg.LogLevel, true)
			if err != nil {
				return err
			}
			defer logger.Sync()

			client := feed.New(feed.Config{
				BaseURL:    cfg.BaseURL,
				Timeout:    cfg.Timeout,
				MaxRetries: cfg.MaxRetries,
			})

			program := tea.NewProgram(tui.New(client, logger), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run dashboard: %w", err)
			}
			return nil
		},
	}
}
