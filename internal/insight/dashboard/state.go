package dashboard

import (
	"github.com/raleighinsights/console/internal/insight/permits"
)

// ViewMode selects the measure a chart renders.
type ViewMode string

const (
	ViewPermits ViewMode = "permits"
	ViewUnits   ViewMode = "units"
)

// Toggle flips between the two measures.
func (m ViewMode) Toggle() ViewMode {
	if m == ViewUnits {
		return ViewPermits
	}
	return ViewUnits
}

// State holds everything the dashboard derives its views from: the loaded
// record list, the global status filter with its cached snapshot, and the
// per-chart view-mode and ring-filter settings. All access happens on the
// single UI event thread; the only discipline required is that snapshot
// rebuilds swap in a fully-built replacement, which SetStatusFilter does.
type State struct {
	records  []permits.Record
	status   permits.StatusFilter
	filtered []permits.Record
	snapshot *permits.Snapshot

	viewModes   map[string]ViewMode
	ringFilters map[string]string
}

// NewState builds the initial state over the loaded records with the
// status filter open ("all") and every chart in permit-count mode.
func NewState(records []permits.Record) *State {
	s := &State{
		records:     records,
		viewModes:   make(map[string]ViewMode, len(Charts)),
		ringFilters: make(map[string]string, len(Charts)),
	}
	s.applyStatus(permits.StatusAll)
	return s
}

// SetStatusFilter rebuilds the filtered list and snapshot for the new
// filter. The rebuild happens off to the side and replaces both fields at
// once, so no reader ever sees a half-updated aggregate.
func (s *State) SetStatusFilter(f permits.StatusFilter) {
	if f == s.status && s.snapshot != nil {
		return
	}
	s.applyStatus(f)
}

func (s *State) applyStatus(f permits.StatusFilter) {
	filtered := f.Filter(s.records)
	snapshot := permits.Reduce(filtered)

	s.status = f
	s.filtered = filtered
	s.snapshot = snapshot
}

// CycleStatusFilter advances to the next status filter in toggle order.
func (s *State) CycleStatusFilter() {
	for i, f := range permits.StatusFilters {
		if f == s.status {
			s.SetStatusFilter(permits.StatusFilters[(i+1)%len(permits.StatusFilters)])
			return
		}
	}
	s.SetStatusFilter(permits.StatusAll)
}

// StatusFilter returns the active global filter.
func (s *State) StatusFilter() permits.StatusFilter { return s.status }

// Snapshot returns the cached global aggregate for the active filter.
func (s *State) Snapshot() *permits.Snapshot { return s.snapshot }

// Filtered returns the status-filtered record list ring recomputes run on.
func (s *State) Filtered() []permits.Record { return s.filtered }

// ViewMode returns the chart's measure, defaulting to permit counts.
func (s *State) ViewMode(chart string) ViewMode {
	if m, ok := s.viewModes[chart]; ok {
		return m
	}
	return ViewPermits
}

// SetViewMode switches one chart's measure; other charts are untouched.
func (s *State) SetViewMode(chart string, m ViewMode) error {
	if _, err := ChartByName(chart); err != nil {
		return err
	}
	s.viewModes[chart] = m
	return nil
}

// RingFilter returns the chart's ring restriction; empty means none.
func (s *State) RingFilter(chart string) string { return s.ringFilters[chart] }

// SetRingFilter restricts one chart to a single urban ring. An empty ring
// clears the restriction. Charts with geographic dimensions reject it.
func (s *State) SetRingFilter(chart, ring string) error {
	c, err := ChartByName(chart)
	if err != nil {
		return err
	}
	if ring == "" {
		delete(s.ringFilters, chart)
		return nil
	}
	if !c.SupportsRing {
		return errRingUnsupported(chart)
	}
	s.ringFilters[chart] = ring
	return nil
}

// CycleRingFilter steps a chart through no-filter and each known ring.
func (s *State) CycleRingFilter(chart string) {
	c, err := ChartByName(chart)
	if err != nil || !c.SupportsRing {
		return
	}
	cur := s.ringFilters[chart]
	if cur == "" {
		s.ringFilters[chart] = permits.RingOrder[0]
		return
	}
	for i, ring := range permits.RingOrder {
		if ring == cur {
			if i+1 < len(permits.RingOrder) {
				s.ringFilters[chart] = permits.RingOrder[i+1]
			} else {
				delete(s.ringFilters, chart)
			}
			return
		}
	}
	delete(s.ringFilters, chart)
}
