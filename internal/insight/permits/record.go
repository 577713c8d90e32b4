package permits

import (
	"time"

	"github.com/raleighinsights/console/pkg/model"
)

// Unknown is the normalized bucket for absent categorical fields.
const Unknown = "Unknown"

// RingOrder is the canonical display order for urban rings.
var RingOrder = []string{"Downtown", "Near Downtown", "Inner Suburb", "Outer Suburb", Unknown}

// Record is a permit after ingestion-boundary normalization. All defaulting
// lives in Normalize so aggregation code never re-checks for missing fields:
// categorical absences become Unknown, absent units become exactly 1, and
// optional numerics carry an explicit presence flag (absent is not zero).
type Record struct {
	PermitNum   string
	Status      string
	HousingType string
	UrbanRing   string
	ZipCode     string
	Units       int

	IssueYear int // 0 when unknown
	IssueDate time.Time
	HasDate   bool

	TransitScore float64
	HasTransit   bool
}

// Normalize converts a wire-level permit into a Record with totals-safe
// defaults applied.
func Normalize(p model.PermitRecord) Record {
	r := Record{
		PermitNum:   p.PermitNum,
		Status:      p.Status,
		HousingType: stringOr(p.HousingType, Unknown),
		UrbanRing:   stringOr(p.UrbanRing, Unknown),
		ZipCode:     stringOr(p.ZipCode, Unknown),
		Units:       1,
	}

	if p.Units != nil && *p.Units > 0 {
		r.Units = *p.Units
	}

	if p.IssueDate != nil {
		if t, ok := parseDate(*p.IssueDate); ok {
			r.IssueDate = t
			r.HasDate = true
		}
	}
	if p.IssueYear != nil {
		r.IssueYear = *p.IssueYear
	} else if r.HasDate {
		r.IssueYear = r.IssueDate.Year()
	}

	if p.TransitScore != nil {
		r.TransitScore = *p.TransitScore
		r.HasTransit = true
	}

	return r
}

// NormalizeAll maps Normalize over a payload's permit list.
func NormalizeAll(permits []model.PermitRecord) []Record {
	records := make([]Record, len(permits))
	for i, p := range permits {
		records[i] = Normalize(p)
	}
	return records
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate accepts the backend's ISO-like date strings. A malformed date
// only costs the record its weekly-timeline membership, so failure is a
// bool, not an error.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func stringOr(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}
