package server

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/haneul-labs/haneul/internal/carbon"
	"github.com/haneul-labs/haneul/internal/facility"
	"github.com/haneul-labs/haneul/internal/scenario"
)

// parseScenarioParam validates the scenario query parameter. An absent
// parameter selects the intermediate delayed_transition scenario; an unknown
// value is rejected at the boundary rather than silently defaulted.
func parseScenarioParam(value string) (scenario.ID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return scenario.DelayedTransition, nil
	}
	return scenario.ParseID(trimmed)
}

func parseRegimeParam(value string) (carbon.Regime, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return carbon.RegimeGlobal, nil
	}
	return carbon.ParseRegime(trimmed)
}

func parseOptionalBool(value string) (*bool, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseOptionalInt(value string) (*int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// resolveFacilities loads a stored facility set when a session id is present.
// An empty id means the built-in sample portfolio, selected by the engine.
func (s *Server) resolveFacilities(c *gin.Context, sessionID string) ([]facility.Facility, error) {
	trimmed := strings.TrimSpace(sessionID)
	if trimmed == "" {
		return nil, nil
	}
	return s.sessionSvc.Resolve(c.Request.Context(), trimmed)
}
