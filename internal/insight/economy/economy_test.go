package economy

import (
	"fmt"
	"testing"

	"github.com/raleighinsights/console/pkg/model"
)

func seriesOf(values ...float64) model.IndicatorSeries {
	obs := make([]model.Observation, len(values))
	for i, v := range values {
		obs[i] = model.Observation{Date: fmt.Sprintf("2025-%02d-01", i%12+1), Value: v}
	}
	return model.IndicatorSeries{Observations: obs}
}

func flatSeries(value float64, n int) model.IndicatorSeries {
	values := make([]float64, n)
	for i := range values {
		values[i] = value
	}
	return seriesOf(values...)
}

func TestSummarizeLatestAndYoY(t *testing.T) {
	values := []float64{100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110, 111, 112, 110}
	s := Summarize(seriesOf(values...))

	if s.LatestValue == nil || *s.LatestValue != 110 {
		t.Fatalf("latest = %v, want 110", s.LatestValue)
	}
	// 13 observations back is 101; (110-101)/101*100 rounds to 8.9.
	if s.YoYChange == nil || *s.YoYChange != 8.9 {
		t.Fatalf("yoy = %v, want 8.9", s.YoYChange)
	}
}

func TestSummarizeShortSeriesHasNoYoY(t *testing.T) {
	s := Summarize(seriesOf(100, 101, 102))
	if s.LatestValue == nil || *s.LatestValue != 102 {
		t.Fatalf("latest = %v, want 102", s.LatestValue)
	}
	if s.YoYChange != nil {
		t.Fatalf("yoy = %v, want nil for short series", *s.YoYChange)
	}
}

func TestSummarizeZeroBaseSkipsYoY(t *testing.T) {
	values := make([]float64, 14)
	values[1] = 0 // base observation
	values[13] = 50
	s := Summarize(seriesOf(values...))
	if s.YoYChange != nil {
		t.Fatalf("yoy = %v, want nil when base is zero", *s.YoYChange)
	}
}

func TestSummarizeKeepsBackendValues(t *testing.T) {
	latest := 7.5
	yoy := -1.2
	s := model.IndicatorSeries{
		LatestValue:  &latest,
		YoYChange:    &yoy,
		Observations: []model.Observation{{Date: "2025-06-01", Value: 9}},
	}
	out := Summarize(s)
	if *out.LatestValue != 7.5 || *out.YoYChange != -1.2 {
		t.Fatalf("backend-derived fields were overwritten: %+v", out)
	}
}

func TestHealthScoreNeutralBaseline(t *testing.T) {
	if got := HealthScore(nil); got != 50 {
		t.Fatalf("score with no indicators = %d, want 50", got)
	}

	// 5% unemployment is the neutral level, flat series have no growth.
	indicators := map[string]model.IndicatorSeries{
		KeyUnemployment: Summarize(flatSeries(5, 14)),
		KeyEmployment:   Summarize(flatSeries(1000, 14)),
	}
	if got := HealthScore(indicators); got != 50 {
		t.Fatalf("neutral score = %d, want 50", got)
	}
}

func TestHealthScoreClampsContributions(t *testing.T) {
	unemp := 0.1 // (5-0.1)*10 = 49, clamped to +20
	indicators := map[string]model.IndicatorSeries{
		KeyUnemployment: {LatestValue: &unemp},
	}
	if got := HealthScore(indicators); got != 70 {
		t.Fatalf("score = %d, want 70 with unemployment capped at +20", got)
	}

	bigGrowth := 400.0
	indicators[KeyEmployment] = model.IndicatorSeries{YoYChange: &bigGrowth}
	indicators[KeyIncome] = model.IndicatorSeries{YoYChange: &bigGrowth}
	indicators[KeyApplications] = model.IndicatorSeries{YoYChange: &bigGrowth}
	if got := HealthScore(indicators); got != 100 {
		t.Fatalf("score = %d, want 100 ceiling", got)
	}
}

func TestDiversityScore(t *testing.T) {
	// A single sector is maximal concentration: HHI 10000 scores 0.
	mono := map[string]model.IndustrySector{
		"tech": {Name: "Tech", Employees: 5000},
	}
	if got := DiversityScore(mono); got != 0 {
		t.Errorf("single-sector score = %d, want 0", got)
	}

	// Ten equal sectors: HHI 1000, the scale's top.
	even := make(map[string]model.IndustrySector, 10)
	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("sector-%d", i)
		even[name] = model.IndustrySector{Name: name, Employees: 100}
	}
	if got := DiversityScore(even); got != 100 {
		t.Errorf("even-sector score = %d, want 100", got)
	}

	if got := DiversityScore(nil); got != 50 {
		t.Errorf("no-data score = %d, want 50", got)
	}
}

func TestBuildOverviewSortsSectors(t *testing.T) {
	p := model.EconomyPayload{
		Indicators: map[string]model.IndicatorSeries{
			KeyUnemployment: seriesOf(4.2),
		},
		Industries: map[string]model.IndustrySector{
			"a": {Name: "Retail", Employees: 300},
			"b": {Name: "Health", Employees: 900},
			"c": {Name: "Construction", Employees: 300},
		},
	}

	o := BuildOverview(p)
	if len(o.Sectors) != 3 {
		t.Fatalf("sectors = %d, want 3", len(o.Sectors))
	}
	if o.Sectors[0].Name != "Health" {
		t.Errorf("largest sector first, got %s", o.Sectors[0].Name)
	}
	if o.Sectors[1].Name != "Construction" || o.Sectors[2].Name != "Retail" {
		t.Errorf("equal sectors must order by name: %s, %s", o.Sectors[1].Name, o.Sectors[2].Name)
	}
	if s := o.Indicators[KeyUnemployment]; s.LatestValue == nil || *s.LatestValue != 4.2 {
		t.Errorf("indicator not summarized: %+v", s)
	}
}
