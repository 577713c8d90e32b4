package permits

import (
	"testing"

	"github.com/raleighinsights/console/pkg/model"
)

func strp(s string) *string   { return &s }
func intp(i int) *int         { return &i }
func f64p(f float64) *float64 { return &f }

func rec(status, ht, ring string, units int, score *float64) Record {
	r := Record{Status: status, HousingType: ht, UrbanRing: ring, ZipCode: Unknown, Units: units}
	if score != nil {
		r.TransitScore = *score
		r.HasTransit = true
	}
	return r
}

func TestReduceDuplexScenario(t *testing.T) {
	records := NormalizeAll([]model.PermitRecord{
		{Units: intp(2), HousingType: strp("Duplex"), TransitScore: f64p(80)},
		{Units: nil, HousingType: strp("Duplex"), TransitScore: f64p(20)},
	})

	snap := Reduce(records)

	if got := snap.HousingType["Duplex"].Permits; got != 2 {
		t.Fatalf("Duplex permit count = %d, want 2", got)
	}
	if got := snap.HousingType["Duplex"].Units; got != 3 {
		t.Fatalf("Duplex unit sum = %d, want 3", got)
	}
	if got := snap.Transit[TransitHigh]; got.Permits != 1 || got.Units != 2 {
		t.Fatalf("high bucket = %+v, want 1 permit / 2 units", got)
	}
	if got := snap.Transit[TransitLow]; got.Permits != 1 || got.Units != 1 {
		t.Fatalf("low bucket = %+v, want 1 permit / 1 unit", got)
	}
	if snap.TransitSimpleAvg != 50.0 {
		t.Fatalf("simple average = %v, want 50.0", snap.TransitSimpleAvg)
	}
	if snap.TransitWeightedAvg != 60.0 {
		t.Fatalf("weighted average = %v, want 60.0", snap.TransitWeightedAvg)
	}
}

func TestReduceTotalsMatchDimensions(t *testing.T) {
	records := []Record{
		rec("Permit Issued", "Single Family", "Downtown", 1, f64p(88)),
		rec("Permit Finaled", "Multifamily", "Downtown", 120, f64p(95)),
		rec("In Review", "Townhome", "Outer Suburb", 1, nil),
		rec("Permit Issued", Unknown, Unknown, 2, f64p(12)),
	}

	snap := Reduce(records)

	var permitSum, unitSum int
	for _, tally := range snap.HousingType {
		permitSum += tally.Permits
		unitSum += tally.Units
	}
	if permitSum != snap.TotalPermits {
		t.Fatalf("housing-type permit sum %d != total %d", permitSum, snap.TotalPermits)
	}
	if unitSum != snap.TotalUnits {
		t.Fatalf("housing-type unit sum %d != total %d", unitSum, snap.TotalUnits)
	}

	permitSum, unitSum = 0, 0
	for _, tally := range snap.UrbanRing {
		permitSum += tally.Permits
		unitSum += tally.Units
	}
	if permitSum != snap.TotalPermits || unitSum != snap.TotalUnits {
		t.Fatalf("urban-ring sums %d/%d != totals %d/%d", permitSum, unitSum, snap.TotalPermits, snap.TotalUnits)
	}
}

func TestReduceIdempotent(t *testing.T) {
	records := NormalizeAll([]model.PermitRecord{
		{HousingType: strp("ADU")},
		{HousingType: strp("ADU"), Units: intp(1)},
	})

	first := Reduce(records)
	second := Reduce(records)

	if first.TotalUnits != 2 || second.TotalUnits != 2 {
		t.Fatalf("absent units must count as exactly 1: got %d then %d", first.TotalUnits, second.TotalUnits)
	}
}

func TestWeightedEqualsSimpleForEqualUnits(t *testing.T) {
	records := []Record{
		rec("Permit Issued", "Single Family", "Downtown", 3, f64p(90)),
		rec("Permit Issued", "Single Family", "Downtown", 3, f64p(30)),
		rec("Permit Issued", "Single Family", "Downtown", 3, f64p(60)),
	}

	snap := Reduce(records)
	if snap.TransitSimpleAvg != snap.TransitWeightedAvg {
		t.Fatalf("equal units should equalize averages: simple %v, weighted %v",
			snap.TransitSimpleAvg, snap.TransitWeightedAvg)
	}
}

func TestReduceNoTransitScores(t *testing.T) {
	snap := Reduce([]Record{rec("Permit Issued", "Townhome", "Downtown", 1, nil)})
	if snap.TransitSimpleAvg != 0 || snap.TransitWeightedAvg != 0 {
		t.Fatalf("averages should default to 0 without scores, got %v / %v",
			snap.TransitSimpleAvg, snap.TransitWeightedAvg)
	}
	if len(snap.Transit) != 0 {
		t.Fatalf("no record should reach the transit buckets, got %v", snap.Transit)
	}
}

func TestReduceMalformedDateSkipsWeeklyOnly(t *testing.T) {
	records := NormalizeAll([]model.PermitRecord{
		{HousingType: strp("Duplex"), IssueDate: strp("02/14/2023"), IssueYear: intp(2023)},
	})

	snap := Reduce(records)
	if len(snap.Weekly) != 0 {
		t.Fatalf("malformed date must not reach the weekly tally: %v", snap.Weekly)
	}
	if snap.HousingType["Duplex"].Permits != 1 {
		t.Fatalf("record must still count in other dimensions")
	}
	if snap.YearlyByType["2023"]["Duplex"].Permits != 1 {
		t.Fatalf("issue_year still feeds the yearly tally")
	}
}

func TestWeekKeyUsesISOWeekYear(t *testing.T) {
	// 2024-12-30 is a Monday belonging to ISO week 1 of 2025.
	records := NormalizeAll([]model.PermitRecord{
		{IssueDate: strp("2024-12-30")},
	})

	snap := Reduce(records)
	if _, ok := snap.Weekly["2025-W01"]; !ok {
		t.Fatalf("expected week key 2025-W01, got %v", snap.Weekly)
	}
}

func TestTransitBucketBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{70, TransitHigh},
		{69.9, TransitMedium},
		{40, TransitMedium},
		{39.9, TransitLow},
		{0, TransitLow},
	}
	for _, c := range cases {
		if got := transitBucket(c.score); got != c.want {
			t.Errorf("transitBucket(%v) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestReduceRingRestriction(t *testing.T) {
	records := []Record{
		rec("Permit Issued", "Multifamily", "Downtown", 80, f64p(92)),
		rec("Permit Issued", "Single Family", "Outer Suburb", 1, f64p(15)),
	}

	agg := ReduceRing(records, "Downtown")
	if agg.TotalPermits != 1 || agg.TotalUnits != 80 {
		t.Fatalf("ring totals = %d/%d, want 1/80", agg.TotalPermits, agg.TotalUnits)
	}
	if agg.HousingType["Single Family"].Permits != 0 {
		t.Fatalf("records outside the ring must be excluded")
	}
}

func TestReduceRingUnknownRingYieldsZeroes(t *testing.T) {
	records := []Record{rec("Permit Issued", "Duplex", "Downtown", 2, nil)}

	agg := ReduceRing(records, "Orbital Ring")
	if agg.TotalPermits != 0 || agg.TotalUnits != 0 {
		t.Fatalf("unknown ring should yield zero totals, got %d/%d", agg.TotalPermits, agg.TotalUnits)
	}
	if len(agg.HousingType) != 0 || len(agg.Weekly) != 0 {
		t.Fatalf("unknown ring should yield empty tallies")
	}
}
