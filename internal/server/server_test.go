package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/haneul-labs/haneul/internal/clock"
	"github.com/haneul-labs/haneul/internal/config"
	"github.com/haneul-labs/haneul/internal/facility"
	"github.com/haneul-labs/haneul/internal/observability/metrics"
	physicalservice "github.com/haneul-labs/haneul/internal/physical/service"
	sessionservice "github.com/haneul-labs/haneul/internal/session/service"
	transitionservice "github.com/haneul-labs/haneul/internal/transition/service"
	weatherservice "github.com/haneul-labs/haneul/internal/weather/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	assumptions := config.DefaultAssumptions()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	assert.NoError(t, err)
	node, err := snowflake.NewNode(1)
	assert.NoError(t, err)

	cfg := config.Config{HTTPAddr: ":0", SessionTTL: time.Hour}

	sessions, err := sessionservice.NewService(sessionservice.ServiceParam{
		DB:    db,
		Log:   log,
		GenID: node,
		Clock: clock.NewSystemClock(),
		Cfg:   cfg,
	})
	assert.NoError(t, err)

	obsMetrics, err := metrics.New(metrics.NewRegistry())
	assert.NoError(t, err)

	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	return NewServer(ServerParams{
		Gin: engine,
		Cfg: cfg,
		TransitionSvc: transitionservice.NewService(transitionservice.ServiceParam{
			Log:         log,
			Assumptions: assumptions,
		}),
		PhysicalSvc: physicalservice.NewService(physicalservice.ServiceParam{
			Log:         log,
			Weather:     weatherservice.NoOpProvider{},
			Assumptions: assumptions,
		}),
		SessionSvc: sessions,
		ObsMetrics: obsMetrics,
	})
}

func doRequest(srv *Server, method, target string, body []byte) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	srv.Engine().ServeHTTP(recorder, req)
	return recorder
}

func TestListScenarios(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(srv, http.MethodGet, "/api/v1/scenarios", nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Data []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Data, 4)

	// Scenario payloads use snake_case keys like every other response.
	assert.Equal(t, "net_zero_2050", body.Data[0].ID)
	assert.Equal(t, "Net Zero 2050", body.Data[0].Name)
}

func TestGetScenario_UnknownIsBadRequest(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(srv, http.MethodGet, "/api/v1/scenarios/rcp85", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "validation_error")
}

func TestTransitionAnalysis_DefaultsToSamplePortfolio(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(srv, http.MethodGet, "/api/v1/transition/analysis?scenario=net_zero_2050&regime=kets", nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Data struct {
			Facilities []json.RawMessage `json:"facilities"`
			TotalNPV   float64           `json:"total_npv"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Data.Facilities, 10)
	assert.NotZero(t, body.Data.TotalNPV)
}

func TestTransitionAnalysis_UnknownScenarioRejectedAtBoundary(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(srv, http.MethodGet, "/api/v1/transition/analysis?scenario=rcp85", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestTransitionAnalysis_UnknownRegimeRejected(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(srv, http.MethodGet, "/api/v1/transition/analysis?regime=california", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestTransitionCompare(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(srv, http.MethodGet, "/api/v1/transition/compare", nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Data struct {
			Scenarios []json.RawMessage `json:"scenarios"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Data.Scenarios, 4)
}

func TestPhysicalAssessment(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(srv, http.MethodGet, "/api/v1/physical/assessment?scenario=current_policies&year=2040", nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Data struct {
			TotalFacilities int    `json:"total_facilities"`
			AssessmentYear  int    `json:"assessment_year"`
			DataSource      string `json:"data_source"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 10, body.Data.TotalFacilities)
	assert.Equal(t, 2040, body.Data.AssessmentYear)
	assert.Equal(t, "hardcoded_baselines", body.Data.DataSource)
}

func TestPhysicalAssessment_BadYear(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(srv, http.MethodGet, "/api/v1/physical/assessment?year=soon", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSessionLifecycle(t *testing.T) {
	srv := newTestServer(t)

	payload, err := json.Marshal(map[string]any{"facilities": facility.SamplePortfolio()[:3]})
	assert.NoError(t, err)

	created := doRequest(srv, http.MethodPost, "/api/v1/sessions", payload)
	assert.Equal(t, http.StatusOK, created.Code)

	var body struct {
		Data struct {
			SessionID  string `json:"session_id"`
			Facilities int    `json:"facilities"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(created.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Data.Facilities)
	assert.NotEmpty(t, body.Data.SessionID)

	resp := doRequest(srv, http.MethodGet, "/api/v1/transition/analysis?session="+body.Data.SessionID, nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	var analysis struct {
		Data struct {
			Facilities []json.RawMessage `json:"facilities"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &analysis))
	assert.Len(t, analysis.Data.Facilities, 3)
}

func TestSession_UnknownIDIsNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(srv, http.MethodGet, "/api/v1/transition/analysis?session=123456789012345678", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSession_EmptySetRejected(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(srv, http.MethodPost, "/api/v1/sessions", []byte(`{"facilities":[]}`))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSession_UnknownSectorRejected(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(srv, http.MethodPost, "/api/v1/sessions",
		[]byte(`{"facilities":[{"id":"F1","sector":"aviation"}]}`))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "unknown_sector")
}
