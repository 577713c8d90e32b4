package fixtures

import "github.com/raleighinsights/console/pkg/model"

func strp(s string) *string   { return &s }
func intp(i int) *int         { return &i }
func f64p(f float64) *float64 { return &f }

// SamplePermits is a small but shape-complete permit list: every housing
// type, all four rings, statuses across the lifecycle, one record with no
// units and one with a malformed date.
func SamplePermits() []model.PermitRecord {
	return []model.PermitRecord{
		{PermitNum: "BLD-2021-00144", Status: "Permit Issued", HousingType: strp("Single Family"), Units: intp(1), UrbanRing: strp("Outer Suburb"), ZipCode: strp("27613"), IssueYear: intp(2021), IssueDate: strp("2021-03-15"), TransitScore: f64p(22.5)},
		{PermitNum: "BLD-2021-00872", Status: "Permit Finaled", HousingType: strp("Townhome"), Units: intp(1), UrbanRing: strp("Inner Suburb"), ZipCode: strp("27609"), IssueYear: intp(2021), IssueDate: strp("2021-07-02"), TransitScore: f64p(48.0)},
		{PermitNum: "BLD-2022-00031", Status: "Permit Issued", HousingType: strp("Multifamily"), Units: intp(220), UrbanRing: strp("Downtown"), ZipCode: strp("27601"), IssueYear: intp(2022), IssueDate: strp("2022-01-10"), TransitScore: f64p(95.0)},
		{PermitNum: "BLD-2022-00388", Status: "In Review", HousingType: strp("Duplex"), Units: intp(2), UrbanRing: strp("Near Downtown"), ZipCode: strp("27604"), IssueYear: intp(2022), IssueDate: strp("2022-04-22"), TransitScore: f64p(71.3)},
		{PermitNum: "BLD-2022-01205", Status: "Permit Issued", HousingType: strp("ADU"), UrbanRing: strp("Near Downtown"), ZipCode: strp("27607"), IssueYear: intp(2022), IssueDate: strp("2022-09-30"), TransitScore: f64p(63.8)},
		{PermitNum: "BLD-2023-00077", Status: "Permit Finaled", HousingType: strp("Small Multifamily"), Units: intp(4), UrbanRing: strp("Near Downtown"), ZipCode: strp("27603"), IssueYear: intp(2023), IssueDate: strp("2023-02-14"), TransitScore: f64p(58.2)},
		{PermitNum: "BLD-2023-00419", Status: "Permit Issued", HousingType: strp("Single Family"), Units: intp(1), UrbanRing: strp("Outer Suburb"), ZipCode: strp("27614"), IssueYear: intp(2023), IssueDate: strp("2023-06-08")},
		{PermitNum: "BLD-2023-00933", Status: "Withdrawn", HousingType: strp("Townhome"), Units: intp(1), UrbanRing: strp("Inner Suburb"), ZipCode: strp("27616"), IssueYear: intp(2023), IssueDate: strp("2023-11-19"), TransitScore: f64p(31.0)},
		{PermitNum: "BLD-2024-00102", Status: "Permit Issued", HousingType: strp("Multifamily"), Units: intp(96), UrbanRing: strp("Downtown"), ZipCode: strp("27601"), IssueYear: intp(2024), IssueDate: strp("2024-01-04"), TransitScore: f64p(92.1)},
		{PermitNum: "BLD-2024-00517", Status: "Permit Issued - Revision", HousingType: strp("Duplex"), Units: intp(2), UrbanRing: strp("Inner Suburb"), ZipCode: strp("27610"), IssueYear: intp(2024), IssueDate: strp("2024-05-27"), TransitScore: f64p(44.6)},
		{PermitNum: "BLD-2024-01288", Status: "Permit Finaled", HousingType: strp("ADU"), Units: intp(1), UrbanRing: strp("Near Downtown"), ZipCode: strp("27605"), IssueYear: intp(2024), IssueDate: strp("2024-10-03"), TransitScore: f64p(77.9)},
		// No issue date and no housing type: exercises Unknown buckets and
		// weekly-tally exclusion.
		{PermitNum: "BLD-2025-00009", Status: "In Review", Units: intp(1), IssueYear: intp(2025), IssueDate: strp("not-a-date")},
	}
}

func sampleDemographics() model.DemographicsPayload {
	return model.DemographicsPayload{
		Source: "Census ACS 5-year (sample)",
		ZipData: []model.ZipDemographics{
			{ZipCode: "27601", Name: "Downtown", UrbanRing: "Downtown", MedianIncome: 62000, Population: 12500, Race: model.RaceBreakdown{White: 48.2, Black: 34.1, Hispanic: 9.5, Asian: 4.8}, Center: []float64{35.7796, -78.6382}},
			{ZipCode: "27603", Name: "South Raleigh", UrbanRing: "Near Downtown", MedianIncome: 58400, Population: 41200, Race: model.RaceBreakdown{White: 55.6, Black: 24.7, Hispanic: 14.0, Asian: 2.9}, Center: []float64{35.7350, -78.6650}},
			{ZipCode: "27604", Name: "Northeast Raleigh", UrbanRing: "Near Downtown", MedianIncome: 54100, Population: 38900, Race: model.RaceBreakdown{White: 47.3, Black: 29.8, Hispanic: 16.2, Asian: 3.1}, Center: []float64{35.8050, -78.5800}},
			{ZipCode: "27609", Name: "North Hills", UrbanRing: "Inner Suburb", MedianIncome: 78900, Population: 33800, Race: model.RaceBreakdown{White: 72.5, Black: 12.9, Hispanic: 8.3, Asian: 3.6}, Center: []float64{35.8400, -78.6300}},
			{ZipCode: "27613", Name: "Northwest Raleigh", UrbanRing: "Outer Suburb", MedianIncome: 96400, Population: 45100, Race: model.RaceBreakdown{White: 70.1, Black: 11.2, Hispanic: 7.9, Asian: 7.4}, Center: []float64{35.8900, -78.7500}},
		},
	}
}

func sampleEconomy() model.EconomyPayload {
	unemployment := []model.Observation{
		{Date: "2023-01-01", Value: 3.4}, {Date: "2023-04-01", Value: 3.2},
		{Date: "2023-07-01", Value: 3.3}, {Date: "2023-10-01", Value: 3.1},
		{Date: "2024-01-01", Value: 3.0}, {Date: "2024-04-01", Value: 3.2},
		{Date: "2024-07-01", Value: 3.3}, {Date: "2024-10-01", Value: 3.4},
	}
	employment := []model.Observation{
		{Date: "2023-01-01", Value: 702.1}, {Date: "2024-01-01", Value: 721.4},
		{Date: "2024-10-01", Value: 731.9},
	}
	return model.EconomyPayload{
		Indicators: map[string]model.IndicatorSeries{
			"unemployment_rate":     {Name: "Unemployment Rate", Unit: "%", Category: "labor", Observations: unemployment, LatestValue: f64p(3.4), LatestDate: "2024-10-01"},
			"employment":            {Name: "All Employees (Nonfarm)", Unit: "thousands", Category: "labor", Observations: employment, LatestValue: f64p(731.9), LatestDate: "2024-10-01", YoYChange: f64p(1.5)},
			"personal_income":       {Name: "Per Capita Personal Income", Unit: "$", Category: "growth", LatestValue: f64p(68750), LatestDate: "2023-01-01", YoYChange: f64p(3.8)},
			"business_applications": {Name: "Business Applications", Unit: "applications", Category: "investment", LatestValue: f64p(2140), LatestDate: "2024-10-01", YoYChange: f64p(5.2)},
		},
		Industries: map[string]model.IndustrySector{
			"54":    {Name: "Professional Services", NAICS: "54", Establishments: 6120, Employees: 74800, Payroll: 7980000, AvgWage: 106684},
			"62":    {Name: "Healthcare", NAICS: "62", Establishments: 3480, Employees: 68100, Payroll: 4190000, AvgWage: 61527},
			"44-45": {Name: "Retail Trade", NAICS: "44-45", Establishments: 3010, Employees: 55900, Payroll: 1890000, AvgWage: 33810},
			"72":    {Name: "Hospitality", NAICS: "72", Establishments: 2260, Employees: 52300, Payroll: 1260000, AvgWage: 24091},
			"23":    {Name: "Construction", NAICS: "23", Establishments: 2890, Employees: 38200, Payroll: 2450000, AvgWage: 64136},
		},
		Totals: model.IndustryTotals{Establishments: 26400, Employees: 486000, Payroll: 31200000},
	}
}

func sampleBusiness() model.BusinessPayload {
	return model.BusinessPayload{
		TotalPermits:    412,
		TotalInvestment: 2.41e9,
		ByCategory: map[string]model.InvestmentTally{
			"Office":      {Count: 58, Investment: 6.4e8},
			"Mixed Use":   {Count: 24, Investment: 5.9e8},
			"Industrial":  {Count: 47, Investment: 4.2e8},
			"Retail":      {Count: 96, Investment: 3.1e8},
			"Medical":     {Count: 31, Investment: 2.8e8},
			"Hospitality": {Count: 18, Investment: 1.7e8},
		},
		ByRing: map[string]model.InvestmentTally{
			"Downtown":      {Count: 74, Investment: 9.8e8},
			"Near Downtown": {Count: 102, Investment: 6.1e8},
			"Inner Suburb":  {Count: 148, Investment: 5.2e8},
			"Outer Suburb":  {Count: 88, Investment: 3.0e8},
		},
		Yearly: map[string]model.YearlyInvestment{
			"2021": {Count: 88, Investment: 4.1e8, NewCount: 61},
			"2022": {Count: 104, Investment: 6.6e8, NewCount: 72},
			"2023": {Count: 112, Investment: 7.2e8, NewCount: 80},
			"2024": {Count: 108, Investment: 6.2e8, NewCount: 75},
		},
		Pipeline: model.PipelineSummary{InReview: 46, Issued: 83, ProjectedInvestment: 1.1e9, ProjectedSqft: 5.4e6},
	}
}

func sampleCompare() model.ComparePayload {
	metros := []model.MetroInfo{
		{Key: "raleigh", Name: "Raleigh", FullName: "Raleigh-Cary, NC", Color: "#722F37"},
		{Key: "nashville", Name: "Nashville", FullName: "Nashville-Davidson, TN", Color: "#E9B44C"},
		{Key: "austin", Name: "Austin", FullName: "Austin-Round Rock, TX", Color: "#9DC183"},
		{Key: "charlotte", Name: "Charlotte", FullName: "Charlotte-Concord, NC-SC", Color: "#8ECAE6"},
		{Key: "denver", Name: "Denver", FullName: "Denver-Aurora, CO", Color: "#C3B1E1"},
	}
	return model.ComparePayload{
		Metros: metros,
		Comparison: map[string]model.MetricComparison{
			"unemployment": {
				Name: "Unemployment Rate", Unit: "%",
				Values: map[string]model.MetroMetricValue{
					"raleigh":   {Latest: f64p(3.4), YoYChange: f64p(0.2), Date: "2024-10-01"},
					"nashville": {Latest: f64p(3.1), YoYChange: f64p(0.1), Date: "2024-10-01"},
					"austin":    {Latest: f64p(3.6), YoYChange: f64p(0.3), Date: "2024-10-01"},
					"charlotte": {Latest: f64p(3.8), YoYChange: f64p(0.2), Date: "2024-10-01"},
					"denver":    {Latest: f64p(4.1), YoYChange: f64p(0.5), Date: "2024-10-01"},
				},
			},
			"per_capita_income": {
				Name: "Per Capita Income", Unit: "$",
				Values: map[string]model.MetroMetricValue{
					"raleigh":   {Latest: f64p(68750), YoYChange: f64p(3.8), Date: "2023-01-01"},
					"nashville": {Latest: f64p(71200), YoYChange: f64p(4.1), Date: "2023-01-01"},
					"austin":    {Latest: f64p(74900), YoYChange: f64p(2.9), Date: "2023-01-01"},
					"charlotte": {Latest: f64p(66300), YoYChange: f64p(3.5), Date: "2023-01-01"},
					"denver":    {Latest: f64p(82100), YoYChange: f64p(3.2), Date: "2023-01-01"},
				},
			},
		},
		Trends: map[string][]model.Observation{
			"raleigh":   {{Date: "2015-01-01", Value: 100}, {Date: "2020-01-01", Value: 121.4}, {Date: "2024-01-01", Value: 146.2}},
			"austin":    {{Date: "2015-01-01", Value: 100}, {Date: "2020-01-01", Value: 128.9}, {Date: "2024-01-01", Value: 158.7}},
			"charlotte": {{Date: "2015-01-01", Value: 100}, {Date: "2020-01-01", Value: 118.2}, {Date: "2024-01-01", Value: 139.5}},
		},
	}
}
