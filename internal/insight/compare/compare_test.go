package compare

import (
	"testing"

	"github.com/raleighinsights/console/pkg/model"
)

func f64p(v float64) *float64 { return &v }

func TestBuildRowsCanonicalOrder(t *testing.T) {
	p := model.ComparePayload{
		Comparison: map[string]model.MetricComparison{
			"real_gdp":     {Name: "Real GDP", Unit: "millions $"},
			"unemployment": {Name: "Unemployment Rate", Unit: "%"},
			"made_up":      {Name: "Not a metric"},
		},
	}

	rows := BuildRows(p)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (unknown metric dropped)", len(rows))
	}
	if rows[0].Metric != "unemployment" || rows[1].Metric != "real_gdp" {
		t.Fatalf("rows out of order: %s, %s", rows[0].Metric, rows[1].Metric)
	}
}

func TestLeaderDirection(t *testing.T) {
	values := map[string]model.MetroMetricValue{
		"raleigh":   {Latest: f64p(3.2)},
		"austin":    {Latest: f64p(3.8)},
		"nashville": {Latest: nil},
	}
	mc := model.MetricComparison{Values: values}

	if got := Leader(mc, "unemployment"); got != "raleigh" {
		t.Errorf("unemployment leader = %q, want raleigh (lowest)", got)
	}
	if got := Leader(mc, "employment"); got != "austin" {
		t.Errorf("employment leader = %q, want austin (highest)", got)
	}
}

func TestLeaderTieBreaksOnKey(t *testing.T) {
	mc := model.MetricComparison{Values: map[string]model.MetroMetricValue{
		"denver": {Latest: f64p(5)},
		"austin": {Latest: f64p(5)},
	}}
	if got := Leader(mc, "employment"); got != "austin" {
		t.Errorf("leader = %q, want austin on key tie-break", got)
	}
}

func TestLeaderEmptyWhenNoValues(t *testing.T) {
	mc := model.MetricComparison{Values: map[string]model.MetroMetricValue{
		"raleigh": {Latest: nil},
	}}
	if got := Leader(mc, "employment"); got != "" {
		t.Errorf("leader = %q, want empty", got)
	}
}

func TestRebase(t *testing.T) {
	obs := []model.Observation{
		{Date: "2024-01-01", Value: 200},
		{Date: "2024-02-01", Value: 210},
		{Date: "2024-03-01", Value: 190},
	}
	out := Rebase(obs)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	if out[0].Value != 100 || out[1].Value != 105 || out[2].Value != 95 {
		t.Fatalf("rebased values = %v", out)
	}
	if obs[0].Value != 200 {
		t.Fatalf("input slice mutated")
	}
}

func TestRebaseDegenerateSeries(t *testing.T) {
	if out := Rebase(nil); out != nil {
		t.Errorf("empty series should rebase to nil, got %v", out)
	}
	zeroLead := []model.Observation{{Date: "2024-01-01", Value: 0}, {Date: "2024-02-01", Value: 5}}
	if out := Rebase(zeroLead); out != nil {
		t.Errorf("zero-base series should rebase to nil, got %v", out)
	}
}

func TestRebaseTrendsDropsDegenerates(t *testing.T) {
	trends := map[string][]model.Observation{
		"raleigh": {{Date: "2024-01-01", Value: 50}, {Date: "2024-02-01", Value: 55}},
		"austin":  {{Date: "2024-01-01", Value: 0}},
	}
	out := RebaseTrends(trends)
	if _, ok := out["austin"]; ok {
		t.Errorf("degenerate series should be dropped")
	}
	if got := out["raleigh"]; len(got) != 2 || got[1].Value != 110 {
		t.Errorf("raleigh trend = %v", got)
	}
}
