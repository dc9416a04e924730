package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haneul-labs/haneul/internal/facility"
)

type createFacilitySetRequest struct {
	Facilities []facility.Facility `json:"facilities"`
}

type createFacilitySetResponse struct {
	SessionID  string `json:"session_id"`
	Facilities int    `json:"facilities"`
	ExpiresAt  string `json:"expires_at"`
}

// CreateFacilitySet stores an uploaded portfolio and returns a session id
// that the analysis endpoints accept in place of the sample portfolio.
func (s *Server) CreateFacilitySet(c *gin.Context) {
	var req createFacilitySetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	for i := range req.Facilities {
		if _, err := facility.ParseSector(string(req.Facilities[i].Sector)); err != nil {
			AbortWithError(c, newValidationError("facilities", "unknown_sector", "unknown sector"))
			return
		}
	}

	id, expires, err := s.sessionSvc.Create(c.Request.Context(), req.Facilities)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.obsMetrics.RecordFacilitySet()

	c.JSON(http.StatusOK, gin.H{"data": createFacilitySetResponse{
		SessionID:  id,
		Facilities: len(req.Facilities),
		ExpiresAt:  expires.UTC().Format(time.RFC3339),
	}})
}
