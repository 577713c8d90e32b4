// Package tui is the interactive console. All state transitions run
// synchronously inside Update on bubbletea's single event loop; the only
// background work is the initial parallel data load, which re-enters the
// loop as a single message.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/raleighinsights/console/internal/insight/business"
	"github.com/raleighinsights/console/internal/insight/compare"
	"github.com/raleighinsights/console/internal/insight/dashboard"
	"github.com/raleighinsights/console/internal/insight/economy"
	"github.com/raleighinsights/console/internal/insight/permits"
	"github.com/raleighinsights/console/internal/platform/feed"
)

// Loader abstracts the feed client for tests.
type Loader interface {
	LoadAll(ctx context.Context) (*feed.Bundle, error)
}

type phase int

const (
	phaseLoading phase = iota
	phaseFailed
	phaseReady
)

var tabTitles = []string{"Housing", "Zips", "Economy", "Development", "Metros"}

const (
	tabHousing = iota
	tabZips
	tabEconomy
	tabDevelopment
	tabMetros
)

type loadedMsg struct{ bundle *feed.Bundle }
type loadFailedMsg struct{ err error }

// Model is the bubbletea model for the console.
type Model struct {
	loader Loader
	logger *zap.Logger
	styles Styles

	phase   phase
	spinner spinner.Model
	loadErr error

	bundle   *feed.Bundle
	state    *dashboard.State
	econ     economy.Overview
	zipTable table.Model

	tab      int
	chartIdx int
	width    int
	height   int
}

// New builds the initial model; the data load starts from Init.
func New(loader Loader, logger *zap.Logger) Model {
	st := DefaultStyles()
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.Title
	return Model{
		loader:  loader,
		logger:  logger,
		styles:  st,
		spinner: sp,
	}
}

// Init kicks off the spinner and the parallel backend load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		bundle, err := m.loader.LoadAll(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{bundle: bundle}
	}
}

// Update handles every event on the single interaction thread.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.bundle = msg.bundle
		records := permits.NormalizeAll(msg.bundle.Residential.Permits)
		m.state = dashboard.NewState(records)
		m.econ = economy.BuildOverview(msg.bundle.Economy)
		m.zipTable = newZipTable(m.state, msg.bundle)
		m.phase = phaseReady
		m.logger.Info("dashboard data loaded",
			zap.Int("permits", len(records)),
			zap.Int("zips", len(msg.bundle.Demographics.ZipData)))
		return m, nil

	case loadFailedMsg:
		m.phase = phaseFailed
		m.loadErr = msg.err
		m.logger.Error("dashboard load failed", zap.Error(msg.err))
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	if m.phase != phaseReady {
		return m, nil
	}

	switch msg.String() {
	case "tab":
		m.tab = (m.tab + 1) % len(tabTitles)
	case "shift+tab":
		m.tab = (m.tab + len(tabTitles) - 1) % len(tabTitles)
	case "left", "h":
		if m.tab == tabHousing && m.chartIdx > 0 {
			m.chartIdx--
		}
	case "right", "l":
		if m.tab == tabHousing && m.chartIdx < len(dashboard.Charts)-1 {
			m.chartIdx++
		}
	case "s":
		m.state.CycleStatusFilter()
		m.zipTable = newZipTable(m.state, m.bundle)
	case "v":
		if m.tab == tabHousing {
			chart := dashboard.Charts[m.chartIdx].Name
			_ = m.state.SetViewMode(chart, m.state.ViewMode(chart).Toggle())
		}
	case "r":
		if m.tab == tabHousing {
			m.state.CycleRingFilter(dashboard.Charts[m.chartIdx].Name)
		}
	default:
		if m.tab == tabZips {
			var cmd tea.Cmd
			m.zipTable, cmd = m.zipTable.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View renders the console. A failed load replaces the loading view with
// the combined error and nothing else renders.
func (m Model) View() string {
	switch m.phase {
	case phaseLoading:
		return fmt.Sprintf("\n  %s Loading dashboard data...\n", m.spinner.View())
	case phaseFailed:
		return "\n  " + m.styles.Error.Render("Failed to load dashboard data") +
			"\n  " + m.loadErr.Error() + "\n\n  " + m.styles.Help.Render("q to quit") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")

	switch m.tab {
	case tabHousing:
		sb.WriteString(m.renderHousing())
	case tabZips:
		sb.WriteString(m.renderZips())
	case tabEconomy:
		sb.WriteString(m.renderEconomy())
	case tabDevelopment:
		sb.WriteString(m.renderDevelopment())
	case tabMetros:
		sb.WriteString(m.renderMetros())
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("tab: switch page · ←/→: chart · s: status filter · v: permits/units · r: ring filter · q: quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) renderTabs() string {
	parts := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if i == m.tab {
			parts[i] = m.styles.ActiveTab.Render(title)
		} else {
			parts[i] = m.styles.Tab.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderHousing() string {
	var sb strings.Builder

	sum := m.state.Summarize()
	sb.WriteString(m.styles.Summary.Render(fmt.Sprintf(
		"%d permits · %d units · transit avg %.1f (weighted %.1f)",
		sum.TotalPermits, sum.TotalUnits, sum.TransitSimpleAvg, sum.TransitWeightedAvg)))
	sb.WriteString("   ")
	sb.WriteString(m.styles.Filter.Render("status: " + string(m.state.StatusFilter())))
	sb.WriteString("\n\n")

	names := make([]string, len(dashboard.Charts))
	for i, c := range dashboard.Charts {
		if i == m.chartIdx {
			names[i] = m.styles.Selected.Render("[" + c.Title + "]")
		} else {
			names[i] = m.styles.ChartName.Render(c.Title)
		}
	}
	sb.WriteString(strings.Join(names, "  "))
	sb.WriteString("\n\n")

	chart := dashboard.Charts[m.chartIdx]
	in, err := m.state.Resolve(chart.Name)
	if err != nil {
		sb.WriteString(m.styles.Error.Render(err.Error()))
		return sb.String()
	}

	sb.WriteString(m.styles.Title.Render(chart.Title))
	sb.WriteString(m.styles.Filter.Render(fmt.Sprintf("  (%s", in.Mode)))
	if in.Ring != "" {
		sb.WriteString(m.styles.Filter.Render(", ring: " + in.Ring))
	}
	sb.WriteString(m.styles.Filter.Render(")"))
	sb.WriteString("\n")
	sb.WriteString(renderChart(in, m.styles))
	return sb.String()
}

func (m Model) renderZips() string {
	return m.styles.Title.Render("Permits by Zip × Demographics") + "\n" + m.zipTable.View() + "\n"
}

func (m Model) renderEconomy() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Economy Overview"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Summary.Render(fmt.Sprintf(
		"health score %d/100 · industry diversity %d/100", m.econ.HealthScore, m.econ.DiversityScore)))
	sb.WriteString("\n\n")

	for _, key := range []string{economy.KeyUnemployment, economy.KeyEmployment, economy.KeyIncome, economy.KeyApplications} {
		s, ok := m.econ.Indicators[key]
		if !ok || s.LatestValue == nil {
			continue
		}
		line := fmt.Sprintf("%-28s %12.1f %-12s", s.Name, *s.LatestValue, s.Unit)
		if s.YoYChange != nil {
			line += fmt.Sprintf("  %+.1f%% YoY", *s.YoYChange)
		}
		sb.WriteString(m.styles.BarLabel.Render(line))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Title.Render("Largest Sectors"))
	sb.WriteString("\n")
	for i, sector := range m.econ.Sectors {
		if i >= 6 {
			break
		}
		sb.WriteString(m.styles.BarLabel.Render(fmt.Sprintf(
			"%-24s %8d employees  %6d establishments", sector.Name, sector.Employees, sector.Establishments)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderDevelopment() string {
	p := m.bundle.Business
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Commercial Development"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Summary.Render(fmt.Sprintf(
		"%d permits · $%.1fM total investment · pipeline: %d in review, %d issued",
		p.TotalPermits, p.TotalInvestment/1e6, p.Pipeline.InReview, p.Pipeline.Issued)))
	sb.WriteString("\n\n")

	for _, row := range business.TopCategories(p, 8) {
		sb.WriteString(m.styles.BarLabel.Render(fmt.Sprintf(
			"%-14s %4d permits  $%7.1fM  %5.1f%%", row.Name, row.Count, row.Investment/1e6, row.Share)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Title.Render("By Year"))
	sb.WriteString("\n")
	for _, row := range business.YearlyRows(p) {
		sb.WriteString(m.styles.BarLabel.Render(fmt.Sprintf(
			"%s  %4d permits (%d new)  $%7.1fM", row.Year, row.Count, row.NewCount, row.Investment/1e6)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderMetros() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Metro Comparison"))
	sb.WriteString("\n\n")

	names := make(map[string]string, len(m.bundle.Compare.Metros))
	for _, metro := range m.bundle.Compare.Metros {
		names[metro.Key] = metro.Name
	}

	for _, row := range compare.BuildRows(m.bundle.Compare) {
		sb.WriteString(m.styles.Summary.Render(fmt.Sprintf("%s (%s)", row.Name, row.Unit)))
		sb.WriteString("\n")
		for _, metro := range m.bundle.Compare.Metros {
			v, ok := row.Values[metro.Key]
			if !ok || v.Latest == nil {
				continue
			}
			marker := "  "
			if metro.Key == row.Leader {
				marker = m.styles.Selected.Render("▸ ")
			}
			line := fmt.Sprintf("%-12s %12.1f", names[metro.Key], *v.Latest)
			if v.YoYChange != nil {
				line += fmt.Sprintf("  %+.1f%% YoY", *v.YoYChange)
			}
			sb.WriteString(marker + m.styles.BarLabel.Render(line))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func newZipTable(state *dashboard.State, bundle *feed.Bundle) table.Model {
	columns := []table.Column{
		{Title: "Zip", Width: 6},
		{Title: "Name", Width: 20},
		{Title: "Ring", Width: 14},
		{Title: "Permits", Width: 8},
		{Title: "Units", Width: 7},
		{Title: "Income", Width: 9},
		{Title: "Pop", Width: 8},
	}

	zipRows := state.ZipTable(bundle.Demographics.ZipData)
	rows := make([]table.Row, len(zipRows))
	for i, r := range zipRows {
		rows[i] = table.Row{
			r.ZipCode,
			r.Name,
			r.UrbanRing,
			fmt.Sprintf("%d", r.Permits),
			fmt.Sprintf("%d", r.Units),
			fmt.Sprintf("%d", r.MedianIncome),
			fmt.Sprintf("%d", r.Population),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(12),
		table.WithFocused(true),
	)
	return t
}
