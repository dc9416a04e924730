package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haneul-labs/haneul/internal/config"
	"github.com/haneul-labs/haneul/internal/observability"
	obsmiddleware "github.com/haneul-labs/haneul/internal/observability/logger"
	obsmetrics "github.com/haneul-labs/haneul/internal/observability/metrics"
	physicaldomain "github.com/haneul-labs/haneul/internal/physical/domain"
	sessiondomain "github.com/haneul-labs/haneul/internal/session/domain"
	transitiondomain "github.com/haneul-labs/haneul/internal/transition/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, registry *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return r
}

func registerGin(obsCfg observability.Config, registry *prometheus.Registry) *gin.Engine {
	return NewEngine(obsCfg, registry)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	transitionSvc transitiondomain.Service
	physicalSvc   physicaldomain.Service
	sessionSvc    sessiondomain.Service
	obsMetrics    *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	TransitionSvc transitiondomain.Service
	PhysicalSvc   physicaldomain.Service
	SessionSvc    sessiondomain.Service
	ObsMetrics    *obsmetrics.Metrics `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		transitionSvc: p.TransitionSvc,
		physicalSvc:   p.PhysicalSvc,
		sessionSvc:    p.SessionSvc,
		obsMetrics:    p.ObsMetrics,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api/v1")

	// -------- Scenarios --------
	api.GET("/scenarios", s.ListScenarios)
	api.GET("/scenarios/:id", s.GetScenarioByID)

	// -------- Transition risk --------
	api.GET("/transition/analysis", s.GetTransitionAnalysis)
	api.GET("/transition/summary", s.GetTransitionSummary)
	api.GET("/transition/compare", s.GetTransitionComparison)

	// -------- Physical risk --------
	api.GET("/physical/assessment", s.GetPhysicalAssessment)

	// -------- Facility sets --------
	api.POST("/sessions", s.CreateFacilitySet)
}
