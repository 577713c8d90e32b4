// Package compare shapes the metro comparison payload: a metric-by-metro
// matrix with leader detection and rebased trend series.
package compare

import (
	"github.com/raleighinsights/console/pkg/model"
)

// MetricOrder is the display order of comparison metrics.
var MetricOrder = []string{
	"unemployment",
	"employment",
	"real_gdp",
	"per_capita_income",
	"home_price_index",
}

// lowerIsBetter marks metrics where the smallest latest value leads.
var lowerIsBetter = map[string]bool{
	"unemployment": true,
}

// Row is one metric across every metro, with the leading metro resolved.
type Row struct {
	Metric string
	Name   string
	Unit   string
	Values map[string]model.MetroMetricValue
	Leader string // metro key, empty when no metro has a value
}

// BuildRows shapes the comparison matrix in canonical metric order.
// Metrics outside MetricOrder are ignored.
func BuildRows(p model.ComparePayload) []Row {
	rows := make([]Row, 0, len(MetricOrder))
	for _, metric := range MetricOrder {
		mc, ok := p.Comparison[metric]
		if !ok {
			continue
		}
		rows = append(rows, Row{
			Metric: metric,
			Name:   mc.Name,
			Unit:   mc.Unit,
			Values: mc.Values,
			Leader: Leader(mc, metric),
		})
	}
	return rows
}

// Leader picks the metro with the best latest value for the metric,
// honoring metric direction. Metros without a latest value do not compete.
func Leader(mc model.MetricComparison, metric string) string {
	var leader string
	var best float64
	lower := lowerIsBetter[metric]

	for key, v := range mc.Values {
		if v.Latest == nil {
			continue
		}
		val := *v.Latest
		better := leader == "" || (lower && val < best) || (!lower && val > best)
		// Deterministic tie-break on metro key.
		if !better && leader != "" && val == best && key < leader {
			better = true
		}
		if better {
			leader = key
			best = val
		}
	}
	return leader
}

// Rebase indexes a series to 100 at its first observation so metros of
// different absolute size compare by growth. A leading zero value makes
// rebasing meaningless; the series comes back empty.
func Rebase(obs []model.Observation) []model.Observation {
	if len(obs) == 0 || obs[0].Value == 0 {
		return nil
	}
	base := obs[0].Value
	out := make([]model.Observation, len(obs))
	for i, o := range obs {
		out[i] = model.Observation{Date: o.Date, Value: o.Value / base * 100}
	}
	return out
}

// RebaseTrends rebases every metro's trend series.
func RebaseTrends(trends map[string][]model.Observation) map[string][]model.Observation {
	out := make(map[string][]model.Observation, len(trends))
	for key, obs := range trends {
		if rebased := Rebase(obs); rebased != nil {
			out[key] = rebased
		}
	}
	return out
}
