package permits

import (
	"fmt"
	"math"
)

// Transit bucket labels, in display order.
const (
	TransitHigh   = "high"
	TransitMedium = "medium"
	TransitLow    = "low"
)

// TransitOrder is the fixed rendering order for transit buckets.
var TransitOrder = []string{TransitHigh, TransitMedium, TransitLow}

// Tally carries both measures of one aggregation cell: how many permits
// landed in it and how many housing units they represent.
type Tally struct {
	Permits int
	Units   int
}

// Dim is a single aggregation dimension keyed by bucket label.
type Dim map[string]Tally

func (d Dim) add(key string, units int) {
	t := d[key]
	t.Permits++
	t.Units += units
	d[key] = t
}

// Measure extracts one measure from a cell.
func (t Tally) Measure(units bool) int {
	if units {
		return t.Units
	}
	return t.Permits
}

// GroupedDim is a two-level dimension, e.g. year -> housing type.
type GroupedDim map[string]Dim

func (g GroupedDim) add(outer, inner string, units int) {
	d, ok := g[outer]
	if !ok {
		d = Dim{}
		g[outer] = d
	}
	d.add(inner, units)
}

// Snapshot is the fully-reduced view of one status-filtered record list.
// It is rebuilt whole on every status-filter change and read-only between
// rebuilds.
type Snapshot struct {
	HousingType Dim
	UrbanRing   Dim
	Zip         Dim
	Status      Dim
	Weekly      Dim
	Transit     Dim
	YearlyByType GroupedDim

	TotalPermits int
	TotalUnits   int

	// Averages over records that carry a transit score; 0 when none do.
	TransitSimpleAvg   float64
	TransitWeightedAvg float64
}

// Reduce runs the single-pass aggregation over records. Records with a
// malformed or missing issue date skip only the weekly tally; every other
// dimension still receives them.
func Reduce(records []Record) *Snapshot {
	snap := &Snapshot{
		HousingType:  Dim{},
		UrbanRing:    Dim{},
		Zip:          Dim{},
		Status:       Dim{},
		Weekly:       Dim{},
		Transit:      Dim{},
		YearlyByType: GroupedDim{},
	}

	var scoreSum, weightedSum float64
	var scoredPermits, scoredUnits int

	for _, r := range records {
		snap.TotalPermits++
		snap.TotalUnits += r.Units

		snap.HousingType.add(r.HousingType, r.Units)
		snap.UrbanRing.add(r.UrbanRing, r.Units)
		snap.Zip.add(r.ZipCode, r.Units)
		snap.Status.add(r.Status, r.Units)

		if r.IssueYear != 0 {
			snap.YearlyByType.add(fmt.Sprintf("%d", r.IssueYear), r.HousingType, r.Units)
		}
		if r.HasDate {
			snap.Weekly.add(weekKey(r), r.Units)
		}
		if r.HasTransit {
			snap.Transit.add(transitBucket(r.TransitScore), r.Units)
			scoreSum += r.TransitScore
			weightedSum += r.TransitScore * float64(r.Units)
			scoredPermits++
			scoredUnits += r.Units
		}
	}

	if scoredPermits > 0 {
		snap.TransitSimpleAvg = round1(scoreSum / float64(scoredPermits))
	}
	if scoredUnits > 0 {
		snap.TransitWeightedAvg = round1(weightedSum / float64(scoredUnits))
	}

	return snap
}

// RingAggregate is the on-demand reduction of one urban ring. Urban-ring
// and zip dimensions are meaningless under a ring restriction and are
// omitted. It is recomputed per request and never cached.
type RingAggregate struct {
	Ring string

	HousingType  Dim
	Status       Dim
	Weekly       Dim
	Transit      Dim
	YearlyByType GroupedDim

	TotalPermits int
	TotalUnits   int
}

// ReduceRing reduces only the records in the given ring. A ring absent
// from the data yields zero-valued tallies, not an error.
func ReduceRing(records []Record, ring string) *RingAggregate {
	agg := &RingAggregate{
		Ring:         ring,
		HousingType:  Dim{},
		Status:       Dim{},
		Weekly:       Dim{},
		Transit:      Dim{},
		YearlyByType: GroupedDim{},
	}

	for _, r := range records {
		if r.UrbanRing != ring {
			continue
		}
		agg.TotalPermits++
		agg.TotalUnits += r.Units

		agg.HousingType.add(r.HousingType, r.Units)
		agg.Status.add(r.Status, r.Units)

		if r.IssueYear != 0 {
			agg.YearlyByType.add(fmt.Sprintf("%d", r.IssueYear), r.HousingType, r.Units)
		}
		if r.HasDate {
			agg.Weekly.add(weekKey(r), r.Units)
		}
		if r.HasTransit {
			agg.Transit.add(transitBucket(r.TransitScore), r.Units)
		}
	}

	return agg
}

// weekKey labels a record's week as "<iso-year>-W<iso-week>". Both parts
// come from ISO-8601 week reckoning, so dates near a year boundary land in
// the week-year they belong to.
func weekKey(r Record) string {
	year, week := r.IssueDate.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func transitBucket(score float64) string {
	switch {
	case score >= 70:
		return TransitHigh
	case score >= 40:
		return TransitMedium
	default:
		return TransitLow
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
