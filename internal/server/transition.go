package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type transitionQuery struct {
	Scenario string `form:"scenario"`
	Regime   string `form:"regime"`
	Session  string `form:"session"`
}

func (s *Server) GetTransitionAnalysis(c *gin.Context) {
	var query transitionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	sc, err := parseScenarioParam(query.Scenario)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	regime, err := parseRegimeParam(query.Regime)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	facilities, err := s.resolveFacilities(c, query.Session)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	start := time.Now()
	resp, err := s.transitionSvc.Analyse(c.Request.Context(), sc, regime, facilities)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.obsMetrics.RecordTransitionAnalysis(string(sc), string(regime), time.Since(start))

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetTransitionSummary(c *gin.Context) {
	var query transitionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	sc, err := parseScenarioParam(query.Scenario)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	regime, err := parseRegimeParam(query.Regime)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	facilities, err := s.resolveFacilities(c, query.Session)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.transitionSvc.Summary(c.Request.Context(), sc, regime, facilities)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetTransitionComparison(c *gin.Context) {
	var query transitionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	regime, err := parseRegimeParam(query.Regime)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	facilities, err := s.resolveFacilities(c, query.Session)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.transitionSvc.Compare(c.Request.Context(), regime, facilities)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
