// Package economy derives the economy dashboard's headline metrics from
// the indicator payload.
package economy

import (
	"math"
	"sort"

	"github.com/raleighinsights/console/pkg/model"
)

// Indicator keys the composite health score reads.
const (
	KeyUnemployment = "unemployment_rate"
	KeyEmployment   = "employment"
	KeyIncome       = "personal_income"
	KeyApplications = "business_applications"
)

// Summarize fills a series' derived fields when the backend sent raw
// observations only: latest value/date and year-over-year change against
// the observation twelve back, guarding a zero base.
func Summarize(s model.IndicatorSeries) model.IndicatorSeries {
	n := len(s.Observations)
	if n == 0 {
		return s
	}
	latest := s.Observations[n-1]
	if s.LatestValue == nil {
		v := latest.Value
		s.LatestValue = &v
		s.LatestDate = latest.Date
	}
	if s.YoYChange == nil && n > 12 {
		base := s.Observations[n-13].Value
		if base != 0 {
			change := round1((latest.Value - base) / base * 100)
			s.YoYChange = &change
		}
	}
	return s
}

// Overview is the shaped economy page model.
type Overview struct {
	HealthScore    int
	DiversityScore int
	Indicators     map[string]model.IndicatorSeries
	Sectors        []model.IndustrySector // employment-descending
	Totals         model.IndustryTotals
}

// BuildOverview summarizes every series and computes the derived scores.
func BuildOverview(p model.EconomyPayload) Overview {
	indicators := make(map[string]model.IndicatorSeries, len(p.Indicators))
	for key, s := range p.Indicators {
		indicators[key] = Summarize(s)
	}

	sectors := make([]model.IndustrySector, 0, len(p.Industries))
	for _, sector := range p.Industries {
		sectors = append(sectors, sector)
	}
	sort.Slice(sectors, func(i, j int) bool {
		if sectors[i].Employees != sectors[j].Employees {
			return sectors[i].Employees > sectors[j].Employees
		}
		return sectors[i].Name < sectors[j].Name
	})

	return Overview{
		HealthScore:    HealthScore(indicators),
		DiversityScore: DiversityScore(p.Industries),
		Indicators:     indicators,
		Sectors:        sectors,
		Totals:         p.Totals,
	}
}

// HealthScore is the composite 0-100 economic health score: a base of 50
// adjusted by unemployment level (5% neutral), employment growth, income
// growth and business formation, each contribution clamped to its band.
func HealthScore(indicators map[string]model.IndicatorSeries) int {
	score := 50.0

	if v := latest(indicators, KeyUnemployment); v != nil {
		score += clamp((5-*v)*10, -20, 20)
	}
	if v := yoy(indicators, KeyEmployment); v != nil {
		score += clamp(*v*5, -15, 15)
	}
	if v := yoy(indicators, KeyIncome); v != nil {
		score += clamp(*v*2, -10, 10)
	}
	if v := yoy(indicators, KeyApplications); v != nil {
		score += clamp(*v*0.5, -5, 5)
	}

	return int(clamp(math.Round(score), 0, 100))
}

// DiversityScore converts the employment Herfindahl-Hirschman index into a
// 0-100 diversity score (higher = more diverse). No employment data scores
// a neutral 50.
func DiversityScore(industries map[string]model.IndustrySector) int {
	var totalEmp int
	for _, s := range industries {
		totalEmp += s.Employees
	}
	if totalEmp == 0 {
		return 50
	}

	var hhi float64
	for _, s := range industries {
		share := float64(s.Employees) / float64(totalEmp) * 100
		hhi += share * share
	}

	return int(clamp(math.Round(100-(hhi-1000)/90), 0, 100))
}

func latest(indicators map[string]model.IndicatorSeries, key string) *float64 {
	return indicators[key].LatestValue
}

func yoy(indicators map[string]model.IndicatorSeries, key string) *float64 {
	return indicators[key].YoYChange
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
