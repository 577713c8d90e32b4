package dashboard

import (
	"sort"

	"github.com/raleighinsights/console/pkg/model"
)

// ZipRow is one line of the zip summary table: the engine's tallies joined
// with the demographics payload for that zip.
type ZipRow struct {
	ZipCode      string
	Name         string
	UrbanRing    string
	Permits      int
	Units        int
	MedianIncome int
	Population   int
}

// Summary is the headline box above the charts.
type Summary struct {
	TotalPermits       int
	TotalUnits         int
	TransitSimpleAvg   float64
	TransitWeightedAvg float64
}

// Summarize reads the scalar totals out of the active snapshot.
func (s *State) Summarize() Summary {
	snap := s.snapshot
	return Summary{
		TotalPermits:       snap.TotalPermits,
		TotalUnits:         snap.TotalUnits,
		TransitSimpleAvg:   snap.TransitSimpleAvg,
		TransitWeightedAvg: snap.TransitWeightedAvg,
	}
}

// ZipTable joins the snapshot's zip tallies with demographics rows, sorted
// by permit count descending. Zips with permits but no demographics still
// appear; demographics-only zips appear with zero tallies.
func (s *State) ZipTable(demo []model.ZipDemographics) []ZipRow {
	byZip := make(map[string]model.ZipDemographics, len(demo))
	for _, d := range demo {
		byZip[d.ZipCode] = d
	}

	seen := make(map[string]bool, len(s.snapshot.Zip))
	rows := make([]ZipRow, 0, len(s.snapshot.Zip)+len(demo))
	for zip, tally := range s.snapshot.Zip {
		row := ZipRow{
			ZipCode:   zip,
			UrbanRing: "Unknown",
			Permits:   tally.Permits,
			Units:     tally.Units,
		}
		if d, ok := byZip[zip]; ok {
			row.Name = d.Name
			row.UrbanRing = d.UrbanRing
			row.MedianIncome = d.MedianIncome
			row.Population = d.Population
		}
		rows = append(rows, row)
		seen[zip] = true
	}
	for _, d := range demo {
		if seen[d.ZipCode] {
			continue
		}
		rows = append(rows, ZipRow{
			ZipCode:      d.ZipCode,
			Name:         d.Name,
			UrbanRing:    d.UrbanRing,
			MedianIncome: d.MedianIncome,
			Population:   d.Population,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Permits != rows[j].Permits {
			return rows[i].Permits > rows[j].Permits
		}
		return rows[i].ZipCode < rows[j].ZipCode
	})
	return rows
}
