package dashboard

import "fmt"

// Chart names used across state, resolver and rendering.
const (
	ChartHousingType = "housing_type"
	ChartUrbanRing   = "urban_ring"
	ChartZip         = "zip"
	ChartYearly      = "yearly"
	ChartTimeline    = "timeline"
	ChartTransit     = "transit"
	ChartStatus      = "status"
)

// Chart describes one renderable chart and its filter capabilities.
type Chart struct {
	Name  string
	Title string

	// Grouped charts resolve to per-type datasets instead of one series.
	Grouped bool

	// SupportsRing is false for charts whose dimension is itself
	// geographic: restricting the ring breakdown to one ring is
	// meaningless, so those charts always read the global snapshot.
	SupportsRing bool
}

// Charts is the registry, in display order.
var Charts = []Chart{
	{Name: ChartHousingType, Title: "Housing Types", SupportsRing: true},
	{Name: ChartUrbanRing, Title: "Urban Rings"},
	{Name: ChartZip, Title: "Permits by Zip"},
	{Name: ChartYearly, Title: "Yearly by Type", Grouped: true, SupportsRing: true},
	{Name: ChartTimeline, Title: "Weekly Timeline", SupportsRing: true},
	{Name: ChartTransit, Title: "Transit Access", SupportsRing: true},
	{Name: ChartStatus, Title: "Permit Status", SupportsRing: true},
}

// ChartByName looks up a registry entry.
func ChartByName(name string) (Chart, error) {
	for _, c := range Charts {
		if c.Name == name {
			return c, nil
		}
	}
	return Chart{}, fmt.Errorf("unknown chart %q", name)
}
