package model

// PermitRecord mirrors one permit as returned by the housing API.
// Nullable wire fields stay pointers here; defaulting happens once at the
// ingestion boundary (see internal/insight/permits.Normalize).
type PermitRecord struct {
	PermitNum    string   `json:"permit_num,omitempty"`
	Status       string   `json:"status,omitempty"`
	Address      string   `json:"address,omitempty"`
	Description  string   `json:"description,omitempty"`
	HousingType  *string  `json:"housing_type"`
	Units        *int     `json:"units"`
	UrbanRing    *string  `json:"urban_ring"`
	ZipCode      *string  `json:"zip_code"`
	IssueYear    *int     `json:"issue_year"`
	IssueDate    *string  `json:"issue_date"`
	TransitScore *float64 `json:"transit_score"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
}

// UnfilteredTotals carries the backend's whole-dataset counters, shown
// alongside filtered views.
type UnfilteredTotals struct {
	TotalCount        int            `json:"total_count"`
	TotalUnits        int            `json:"total_units"`
	HousingTypeCounts map[string]int `json:"housing_type_counts,omitempty"`
	UrbanRingCounts   map[string]int `json:"urban_ring_counts,omitempty"`
	YearlyCounts      map[string]int `json:"yearly_counts,omitempty"`
}

// ResidentialPayload is the response of /housing/api/permits/residential.
type ResidentialPayload struct {
	Permits          []PermitRecord    `json:"permits"`
	TotalCount       int               `json:"total_count"`
	TotalUnits       int               `json:"total_units"`
	ZipCounts        map[string]int    `json:"zip_counts,omitempty"`
	UnfilteredTotals *UnfilteredTotals `json:"unfiltered_totals,omitempty"`
}

// Timeline is the backend's pre-built weekly series (first paint only;
// client-side aggregation takes over once records are loaded).
type Timeline struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// TransitDistribution buckets permits by transit score.
type TransitDistribution struct {
	High    int     `json:"high"`
	Medium  int     `json:"medium"`
	Low     int     `json:"low"`
	Average float64 `json:"average"`
}

// AnalyticsPayload is the response of /housing/api/analytics.
type AnalyticsPayload struct {
	Summary struct {
		TotalPermits int `json:"total_permits"`
		TotalUnits   int `json:"total_units"`
	} `json:"summary"`
	HousingTypeCounts   map[string]int            `json:"housing_type_counts"`
	UnitsByType         map[string]int            `json:"units_by_type"`
	UrbanRingCounts     map[string]int            `json:"urban_ring_counts"`
	YearlyByType        map[string]map[string]int `json:"yearly_by_type"`
	RingByType          map[string]map[string]int `json:"ring_by_type,omitempty"`
	TransitDistribution TransitDistribution       `json:"transit_distribution"`
	StatusCounts        map[string]int            `json:"status_counts"`
	Timeline            Timeline                  `json:"timeline"`
}

// RaceBreakdown holds census race percentages for one zip code.
type RaceBreakdown struct {
	White    float64 `json:"white"`
	Black    float64 `json:"black"`
	Hispanic float64 `json:"hispanic"`
	Asian    float64 `json:"asian"`
}

// ZipDemographics is one row of /housing/api/demographics.
type ZipDemographics struct {
	ZipCode      string        `json:"zip_code"`
	Name         string        `json:"name"`
	UrbanRing    string        `json:"urban_ring"`
	MedianIncome int           `json:"median_income"`
	Population   int           `json:"population"`
	Race         RaceBreakdown `json:"race"`
	PermitCount  int           `json:"permit_count"`
	Center       []float64     `json:"center"`
}

// DemographicsPayload is the response of /housing/api/demographics.
type DemographicsPayload struct {
	Source  string            `json:"source,omitempty"`
	ZipData []ZipDemographics `json:"zip_data"`
}

// Observation is a single dated value of an economic time series.
type Observation struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// IndicatorSeries is one FRED-style series with its derived summary fields.
type IndicatorSeries struct {
	Name         string        `json:"name"`
	Unit         string        `json:"unit"`
	Category     string        `json:"category,omitempty"`
	SeriesID     string        `json:"series_id,omitempty"`
	Observations []Observation `json:"observations"`
	LatestValue  *float64      `json:"latest_value,omitempty"`
	LatestDate   string        `json:"latest_date,omitempty"`
	YoYChange    *float64      `json:"yoy_change,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// IndustrySector is one Census CBP sector row.
type IndustrySector struct {
	Name           string `json:"name"`
	NAICS          string `json:"naics"`
	Establishments int    `json:"establishments"`
	Employees      int    `json:"employees"`
	Payroll        int    `json:"payroll"`
	AvgWage        int    `json:"avg_wage"`
}

// IndustryTotals aggregates all sectors.
type IndustryTotals struct {
	Establishments int `json:"establishments"`
	Employees      int `json:"employees"`
	Payroll        int `json:"payroll"`
}

// EconomyPayload is the response of /economy/api/overview.
type EconomyPayload struct {
	Indicators map[string]IndicatorSeries `json:"fred_data"`
	Industries map[string]IndustrySector  `json:"industries"`
	Totals     IndustryTotals             `json:"totals"`
}

// InvestmentTally pairs a permit count with its estimated investment.
type InvestmentTally struct {
	Count      int     `json:"count"`
	Investment float64 `json:"investment"`
}

// YearlyInvestment extends InvestmentTally with the new-construction slice.
type YearlyInvestment struct {
	Count      int     `json:"count"`
	Investment float64 `json:"investment"`
	NewCount   int     `json:"new_count"`
}

// PipelineSummary describes commercial permits not yet finaled.
type PipelineSummary struct {
	InReview            int     `json:"in_review"`
	Issued              int     `json:"issued"`
	ProjectedInvestment float64 `json:"projected_investment"`
	ProjectedSqft       float64 `json:"projected_sqft"`
}

// BusinessPayload is the response of /business/api/analytics.
type BusinessPayload struct {
	TotalPermits    int                         `json:"total_permits"`
	TotalInvestment float64                     `json:"total_investment"`
	ByCategory      map[string]InvestmentTally  `json:"by_category"`
	ByRing          map[string]InvestmentTally  `json:"by_ring,omitempty"`
	Yearly          map[string]YearlyInvestment `json:"yearly"`
	Pipeline        PipelineSummary             `json:"pipeline"`
}

// MetroMetricValue is one metro's latest reading for one metric.
type MetroMetricValue struct {
	Latest    *float64 `json:"latest"`
	YoYChange *float64 `json:"yoy_change"`
	Date      string   `json:"date,omitempty"`
}

// MetricComparison is one metric row across all metros.
type MetricComparison struct {
	Name   string                      `json:"name"`
	Unit   string                      `json:"unit"`
	Format string                      `json:"format,omitempty"`
	Values map[string]MetroMetricValue `json:"values"`
}

// MetroInfo identifies one metro in the comparison set.
type MetroInfo struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Color    string `json:"color,omitempty"`
}

// ComparePayload is the response of /compare/api/overview.
type ComparePayload struct {
	Metros     []MetroInfo                 `json:"metros"`
	Comparison map[string]MetricComparison `json:"comparison"`
	Trends     map[string][]Observation    `json:"trends,omitempty"`
}
