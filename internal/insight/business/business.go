// Package business shapes the commercial development payload for display.
package business

import (
	"sort"

	"github.com/raleighinsights/console/pkg/model"
)

// CategoryRow is one use-category with its share of total investment.
type CategoryRow struct {
	Name       string
	Count      int
	Investment float64
	Share      float64 // percent of total investment, 0 when total is 0
}

// TopCategories returns up to n categories ordered by investment, largest
// first. n <= 0 returns all of them.
func TopCategories(p model.BusinessPayload, n int) []CategoryRow {
	rows := make([]CategoryRow, 0, len(p.ByCategory))
	for name, t := range p.ByCategory {
		row := CategoryRow{Name: name, Count: t.Count, Investment: t.Investment}
		if p.TotalInvestment > 0 {
			row.Share = t.Investment / p.TotalInvestment * 100
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Investment != rows[j].Investment {
			return rows[i].Investment > rows[j].Investment
		}
		return rows[i].Name < rows[j].Name
	})
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// YearRow is one year of commercial activity.
type YearRow struct {
	Year       string
	Count      int
	Investment float64
	NewCount   int
}

// YearlyRows orders the yearly tallies chronologically.
func YearlyRows(p model.BusinessPayload) []YearRow {
	rows := make([]YearRow, 0, len(p.Yearly))
	for year, t := range p.Yearly {
		rows = append(rows, YearRow{Year: year, Count: t.Count, Investment: t.Investment, NewCount: t.NewCount})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })
	return rows
}

// RingRows orders the per-ring tallies by investment descending.
func RingRows(p model.BusinessPayload) []CategoryRow {
	rows := make([]CategoryRow, 0, len(p.ByRing))
	for ring, t := range p.ByRing {
		row := CategoryRow{Name: ring, Count: t.Count, Investment: t.Investment}
		if p.TotalInvestment > 0 {
			row.Share = t.Investment / p.TotalInvestment * 100
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Investment != rows[j].Investment {
			return rows[i].Investment > rows[j].Investment
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}
