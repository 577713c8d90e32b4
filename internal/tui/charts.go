package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/raleighinsights/console/internal/insight/dashboard"
)

const (
	maxBarWidth  = 40
	maxChartRows = 14
)

// renderChart turns a resolved ChartInput into horizontal bars. Grouped
// inputs render per-label totals with a type legend underneath. An empty
// input renders an explicit zero state instead of nothing.
func renderChart(in dashboard.ChartInput, st Styles) string {
	labels := in.Labels
	values := in.Values
	if in.Datasets != nil {
		values = groupedTotals(in)
	}

	if len(labels) == 0 || maxValue(values) == 0 {
		return st.ChartName.Render("no data for this view")
	}

	// Long series (weekly timeline) keep only the most recent rows.
	if len(labels) > maxChartRows {
		labels = labels[len(labels)-maxChartRows:]
		values = values[len(values)-maxChartRows:]
	}

	labelWidth := 0
	for _, l := range labels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	max := maxValue(values)
	var sb strings.Builder
	for i, label := range labels {
		barLen := 0
		if max > 0 {
			barLen = values[i] * maxBarWidth / max
		}
		if values[i] > 0 && barLen == 0 {
			barLen = 1
		}
		sb.WriteString(st.BarLabel.Render(fmt.Sprintf("%*s", labelWidth, label)))
		sb.WriteString(" ")
		sb.WriteString(st.Bar.Render(strings.Repeat("█", barLen)))
		sb.WriteString(fmt.Sprintf(" %d\n", values[i]))
	}

	if in.Datasets != nil {
		sb.WriteString(st.ChartName.Render("types: " + strings.Join(datasetNames(in), ", ")))
		sb.WriteString("\n")
	}
	return sb.String()
}

func groupedTotals(in dashboard.ChartInput) []int {
	totals := make([]int, len(in.Labels))
	for _, vals := range in.Datasets {
		for i, v := range vals {
			if i < len(totals) {
				totals[i] += v
			}
		}
	}
	return totals
}

func datasetNames(in dashboard.ChartInput) []string {
	names := make([]string, 0, len(in.Datasets))
	for name := range in.Datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func maxValue(values []int) int {
	max := 0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}
