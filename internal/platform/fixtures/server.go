// Package fixtures replays sample backend payloads over HTTP. It stands in
// for the insights backend during local development and in client tests;
// it is tooling, not part of the product surface.
package fixtures

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raleighinsights/console/pkg/model"
)

// NewRouter wires the sample endpoints the way the real backend lays them
// out.
func NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	housing := router.Group("/housing/api")
	{
		housing.GET("/permits/residential", func(c *gin.Context) {
			c.JSON(http.StatusOK, sampleResidential())
		})
		housing.GET("/analytics", func(c *gin.Context) {
			c.JSON(http.StatusOK, sampleAnalytics())
		})
		housing.GET("/demographics", func(c *gin.Context) {
			c.JSON(http.StatusOK, sampleDemographics())
		})
	}

	router.GET("/economy/api/overview", func(c *gin.Context) {
		c.JSON(http.StatusOK, sampleEconomy())
	})
	router.GET("/business/api/analytics", func(c *gin.Context) {
		c.JSON(http.StatusOK, sampleBusiness())
	})
	router.GET("/compare/api/overview", func(c *gin.Context) {
		c.JSON(http.StatusOK, sampleCompare())
	})

	return router
}

func sampleResidential() model.ResidentialPayload {
	records := SamplePermits()

	totalUnits := 0
	zipCounts := map[string]int{}
	for _, p := range records {
		units := 1
		if p.Units != nil {
			units = *p.Units
		}
		totalUnits += units
		if p.ZipCode != nil {
			zipCounts[*p.ZipCode]++
		}
	}

	return model.ResidentialPayload{
		Permits:    records,
		TotalCount: len(records),
		TotalUnits: totalUnits,
		ZipCounts:  zipCounts,
		UnfilteredTotals: &model.UnfilteredTotals{
			TotalCount: len(records),
			TotalUnits: totalUnits,
		},
	}
}

func sampleAnalytics() model.AnalyticsPayload {
	records := SamplePermits()

	var out model.AnalyticsPayload
	out.HousingTypeCounts = map[string]int{}
	out.UnitsByType = map[string]int{}
	out.UrbanRingCounts = map[string]int{}
	out.StatusCounts = map[string]int{}

	for _, p := range records {
		units := 1
		if p.Units != nil {
			units = *p.Units
		}
		ht := "Unknown"
		if p.HousingType != nil {
			ht = *p.HousingType
		}
		ring := "Unknown"
		if p.UrbanRing != nil {
			ring = *p.UrbanRing
		}

		out.Summary.TotalPermits++
		out.Summary.TotalUnits += units
		out.HousingTypeCounts[ht]++
		out.UnitsByType[ht] += units
		out.UrbanRingCounts[ring]++
		out.StatusCounts[p.Status]++
	}

	return out
}
