package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/raleighinsights/console/internal/insight/business"
	"github.com/raleighinsights/console/internal/insight/compare"
	"github.com/raleighinsights/console/internal/insight/dashboard"
	"github.com/raleighinsights/console/internal/insight/economy"
	"github.com/raleighinsights/console/internal/insight/permits"
	"github.com/raleighinsights/console/internal/platform/feed"
)

func newReportCmd() *cobra.Command {
	var statusFlag string
	var unitsFlag bool
	var ringFlag string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a one-shot report of every dashboard",
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

			status, err := permits.ParseStatusFilter(statusFlag)
			if err != nil {
				return err
			}

			client := feed.New(feed.Config{
				BaseURL:    cfg.BaseURL,
				Timeout:    cfg.Timeout,
				MaxRetries: cfg.MaxRetries,
			})

			bundle, err := client.LoadAll(cmd.Context())
			if err != nil {
				return err
			}
			logger.Info("report data loaded", zap.Int("permits", len(bundle.Residential.Permits)))

			return printReport(bundle, status, unitsFlag, ringFlag)
		},
	}

	cmd.Flags().StringVar(&statusFlag, "status", "all", "status filter: all, approved or completed")
	cmd.Flags().BoolVar(&unitsFlag, "units", false, "report housing units instead of permit counts")
	cmd.Flags().StringVar(&ringFlag, "ring", "", "restrict ring-capable charts to one urban ring")
	return cmd
}

func printReport(bundle *feed.Bundle, status permits.StatusFilter, units bool, ring string) error {
	heading := color.New(color.FgHiWhite, color.Bold)
	subtle := color.New(color.FgHiBlack)
	accent := color.New(color.FgYellow)

	state := dashboard.NewState(permits.NormalizeAll(bundle.Residential.Permits))
	state.SetStatusFilter(status)

	mode := dashboard.ViewPermits
	if units {
		mode = dashboard.ViewUnits
	}
	for _, c := range dashboard.Charts {
		if err := state.SetViewMode(c.Name, mode); err != nil {
			return err
		}
		if ring != "" && c.SupportsRing {
			if err := state.SetRingFilter(c.Name, ring); err != nil {
				return err
			}
		}
	}

	sum := state.Summarize()
	heading.Println("Housing")
	fmt.Printf("  %d permits, %d units (status: %s)\n", sum.TotalPermits, sum.TotalUnits, status)
	fmt.Printf("  transit score avg %.1f, unit-weighted %.1f\n\n", sum.TransitSimpleAvg, sum.TransitWeightedAvg)

	inputs, err := state.ResolveAll()
	if err != nil {
		return err
	}
	for _, in := range inputs {
		chart, _ := dashboard.ChartByName(in.Chart)
		accent.Printf("  %s", chart.Title)
		if in.Ring != "" {
			subtle.Printf(" [ring: %s]", in.Ring)
		}
		fmt.Println()
		printSeries(in)
		fmt.Println()
	}

	heading.Println("Zip Summary")
	for i, row := range state.ZipTable(bundle.Demographics.ZipData) {
		if i >= 10 {
			break
		}
		fmt.Printf("  %-6s %-20s %-14s %4d permits %5d units  income %d\n",
			row.ZipCode, row.Name, row.UrbanRing, row.Permits, row.Units, row.MedianIncome)
	}
	fmt.Println()

	econ := economy.BuildOverview(bundle.Economy)
	heading.Println("Economy")
	fmt.Printf("  health %d/100, diversity %d/100\n", econ.HealthScore, econ.DiversityScore)
	for i, sector := range econ.Sectors {
		if i >= 5 {
			break
		}
		fmt.Printf("  %-24s %8d employees\n", sector.Name, sector.Employees)
	}
	fmt.Println()

	heading.Println("Commercial Development")
	fmt.Printf("  %d permits, $%.1fM invested\n", bundle.Business.TotalPermits, bundle.Business.TotalInvestment/1e6)
	for _, row := range business.TopCategories(bundle.Business, 5) {
		fmt.Printf("  %-14s %4d permits  $%7.1fM (%.1f%%)\n", row.Name, row.Count, row.Investment/1e6, row.Share)
	}
	fmt.Println()

	heading.Println("Metro Comparison")
	for _, row := range compare.BuildRows(bundle.Compare) {
		fmt.Printf("  %s (%s)", row.Name, row.Unit)
		if row.Leader != "" {
			subtle.Printf("  leader: %s", row.Leader)
		}
		fmt.Println()
	}
	return nil
}

func printSeries(in dashboard.ChartInput) {
	if in.Datasets != nil {
		for _, label := range in.Labels {
			var total int
			for _, vals := range in.Datasets {
				for i, l := range in.Labels {
					if l == label {
						total += vals[i]
					}
				}
			}
			fmt.Printf("    %-16s %d\n", label, total)
		}
		return
	}
	limit := len(in.Labels)
	if limit > 12 {
		limit = 12
	}
	for i := 0; i < limit; i++ {
		fmt.Printf("    %-16s %s %d\n", in.Labels[i], strings.Repeat("▪", scaled(in.Values, i)), in.Values[i])
	}
}

func scaled(values []int, i int) int {
	max := 0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return 0
	}
	n := values[i] * 24 / max
	if values[i] > 0 && n == 0 {
		n = 1
	}
	return n
}
