package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/haneul-labs/haneul/internal/scenario"
)

func (s *Server) ListScenarios(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": scenario.List()})
}

func (s *Server) GetScenarioByID(c *gin.Context) {
	id, err := scenario.ParseID(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	sc, ok := scenario.Get(id)
	if !ok {
		AbortWithError(c, ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sc})
}
