package permits

import (
	"testing"

	"github.com/raleighinsights/console/pkg/model"
)

func TestNormalizeDefaults(t *testing.T) {
	r := Normalize(model.PermitRecord{Status: "Permit Issued"})

	if r.HousingType != Unknown || r.UrbanRing != Unknown || r.ZipCode != Unknown {
		t.Fatalf("missing categoricals should normalize to %q: %+v", Unknown, r)
	}
	if r.Units != 1 {
		t.Fatalf("missing units should default to 1, got %d", r.Units)
	}
	if r.HasDate || r.HasTransit {
		t.Fatalf("absent optionals must not read as present: %+v", r)
	}
}

func TestNormalizeNonPositiveUnits(t *testing.T) {
	zero := 0
	r := Normalize(model.PermitRecord{Units: &zero})
	if r.Units != 1 {
		t.Fatalf("non-positive units should default to 1, got %d", r.Units)
	}
}

func TestNormalizeDeriveYearFromDate(t *testing.T) {
	date := "2022-08-15"
	r := Normalize(model.PermitRecord{IssueDate: &date})
	if !r.HasDate {
		t.Fatalf("expected date to parse")
	}
	if r.IssueYear != 2022 {
		t.Fatalf("year should derive from the date when absent, got %d", r.IssueYear)
	}
}

func TestNormalizeMalformedDate(t *testing.T) {
	date := "15/08/2022"
	year := 2022
	r := Normalize(model.PermitRecord{IssueDate: &date, IssueYear: &year})
	if r.HasDate {
		t.Fatalf("malformed date must not parse")
	}
	if r.IssueYear != 2022 {
		t.Fatalf("explicit issue_year survives a malformed date, got %d", r.IssueYear)
	}
}

func TestNormalizeRFC3339Date(t *testing.T) {
	date := "2023-03-01T00:00:00Z"
	r := Normalize(model.PermitRecord{IssueDate: &date})
	if !r.HasDate || r.IssueDate.Year() != 2023 {
		t.Fatalf("RFC3339 timestamps should parse, got %+v", r)
	}
}
