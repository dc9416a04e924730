package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	physicaldomain "github.com/haneul-labs/haneul/internal/physical/domain"
)

func (s *Server) GetPhysicalAssessment(c *gin.Context) {
	var query struct {
		Scenario   string `form:"scenario"`
		Year       string `form:"year"`
		UseAPIData string `form:"use_api_data"`
		Session    string `form:"session"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	sc, err := parseScenarioParam(query.Scenario)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	year, err := parseOptionalInt(query.Year)
	if err != nil {
		AbortWithError(c, newValidationError("year", "invalid_year", "invalid year"))
		return
	}
	useAPIData, err := parseOptionalBool(query.UseAPIData)
	if err != nil {
		AbortWithError(c, newValidationError("use_api_data", "invalid_use_api_data", "invalid use_api_data"))
		return
	}
	facilities, err := s.resolveFacilities(c, query.Session)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	req := physicaldomain.Request{
		Scenario:   sc,
		Facilities: facilities,
	}
	if year != nil {
		req.Year = *year
	}
	if useAPIData != nil {
		req.UseAPIData = *useAPIData
	}

	start := time.Now()
	resp, err := s.physicalSvc.Assess(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.obsMetrics.RecordPhysicalReport(string(sc), resp.DataSource, time.Since(start))

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
