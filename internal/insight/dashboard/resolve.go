package dashboard

import (
	"fmt"
	"sort"

	"github.com/raleighinsights/console/internal/insight/permits"
)

// ChartInput is the resolved, render-ready shape for one chart: ordered
// labels plus either a single value series or, for grouped charts,
// per-housing-type datasets aligned with the labels.
type ChartInput struct {
	Chart string
	Mode  ViewMode
	Ring  string // the ring restriction that produced this input, if any

	Labels   []string
	Values   []int
	Datasets map[string][]int
}

// Total sums the resolved series; grouped inputs sum every dataset.
func (in ChartInput) Total() int {
	var total int
	for _, v := range in.Values {
		total += v
	}
	for _, vs := range in.Datasets {
		for _, v := range vs {
			total += v
		}
	}
	return total
}

func errRingUnsupported(chart string) error {
	return fmt.Errorf("chart %q does not support a ring filter", chart)
}

// Resolve produces the input for one chart under the current filter state.
// With no ring filter the cached global snapshot serves the chart; with one,
// a fresh ring-scoped reduction of the status-filtered records does. The
// ring breakdown chart always reads the global snapshot.
func (s *State) Resolve(chart string) (ChartInput, error) {
	c, err := ChartByName(chart)
	if err != nil {
		return ChartInput{}, err
	}

	in := ChartInput{Chart: chart, Mode: s.ViewMode(chart)}
	units := in.Mode == ViewUnits

	ring := s.RingFilter(chart)
	if ring != "" && c.SupportsRing {
		agg := permits.ReduceRing(s.filtered, ring)
		in.Ring = ring
		fillFromRing(&in, c, agg, units)
		return in, nil
	}

	fillFromSnapshot(&in, c, s.snapshot, units)
	return in, nil
}

// ResolveAll resolves every registered chart in display order.
func (s *State) ResolveAll() ([]ChartInput, error) {
	inputs := make([]ChartInput, 0, len(Charts))
	for _, c := range Charts {
		in, err := s.Resolve(c.Name)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func fillFromSnapshot(in *ChartInput, c Chart, snap *permits.Snapshot, units bool) {
	switch c.Name {
	case ChartHousingType:
		byValueDesc(in, snap.HousingType, units)
	case ChartUrbanRing:
		fixedOrder(in, snap.UrbanRing, permits.RingOrder, units, false)
	case ChartZip:
		byValueDesc(in, snap.Zip, units)
	case ChartStatus:
		byValueDesc(in, snap.Status, units)
	case ChartTimeline:
		byKeyAsc(in, snap.Weekly, units)
	case ChartTransit:
		fixedOrder(in, snap.Transit, permits.TransitOrder, units, true)
	case ChartYearly:
		grouped(in, snap.YearlyByType, units)
	}
}

func fillFromRing(in *ChartInput, c Chart, agg *permits.RingAggregate, units bool) {
	switch c.Name {
	case ChartHousingType:
		byValueDesc(in, agg.HousingType, units)
	case ChartStatus:
		byValueDesc(in, agg.Status, units)
	case ChartTimeline:
		byKeyAsc(in, agg.Weekly, units)
	case ChartTransit:
		fixedOrder(in, agg.Transit, permits.TransitOrder, units, true)
	case ChartYearly:
		grouped(in, agg.YearlyByType, units)
	}
}

// byValueDesc orders buckets largest-first, names breaking ties.
func byValueDesc(in *ChartInput, d permits.Dim, units bool) {
	labels := make([]string, 0, len(d))
	for k := range d {
		labels = append(labels, k)
	}
	sort.Slice(labels, func(i, j int) bool {
		vi, vj := d[labels[i]].Measure(units), d[labels[j]].Measure(units)
		if vi != vj {
			return vi > vj
		}
		return labels[i] < labels[j]
	})
	fill(in, d, labels, units)
}

func byKeyAsc(in *ChartInput, d permits.Dim, units bool) {
	labels := make([]string, 0, len(d))
	for k := range d {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	fill(in, d, labels, units)
}

// fixedOrder keeps a canonical label order. When keepEmpty is set absent
// buckets render as zeros (transit buckets always show all three bands);
// otherwise absent buckets are dropped (rings with no permits disappear).
func fixedOrder(in *ChartInput, d permits.Dim, order []string, units, keepEmpty bool) {
	labels := make([]string, 0, len(order))
	for _, k := range order {
		if _, ok := d[k]; ok || keepEmpty {
			labels = append(labels, k)
		}
	}
	fill(in, d, labels, units)
}

func fill(in *ChartInput, d permits.Dim, labels []string, units bool) {
	in.Labels = labels
	in.Values = make([]int, len(labels))
	for i, k := range labels {
		in.Values[i] = d[k].Measure(units)
	}
}

// grouped shapes a year-by-type dimension into aligned per-type datasets.
func grouped(in *ChartInput, g permits.GroupedDim, units bool) {
	years := make([]string, 0, len(g))
	typeSet := map[string]bool{}
	for year, d := range g {
		years = append(years, year)
		for ht := range d {
			typeSet[ht] = true
		}
	}
	sort.Strings(years)

	types := make([]string, 0, len(typeSet))
	for ht := range typeSet {
		types = append(types, ht)
	}
	sort.Strings(types)

	in.Labels = years
	in.Datasets = make(map[string][]int, len(types))
	for _, ht := range types {
		vals := make([]int, len(years))
		for i, year := range years {
			vals[i] = g[year][ht].Measure(units)
		}
		in.Datasets[ht] = vals
	}
}
