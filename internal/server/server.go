// Package server wires the NLU pipeline, analytics recorder and metrics
// behind the HTTP API.
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xeipuuv/gojsonschema"

	"hotel-voicebot/internal/analytics"
	"hotel-voicebot/internal/common/config"
	"hotel-voicebot/internal/common/logger"
	"hotel-voicebot/internal/common/observability"
	"hotel-voicebot/internal/nlu"
)

const processRequestSchema = `{
	"type": "object",
	"properties": {
		"message": {"type": "string", "minLength": 1}
	},
	"required": ["message"]
}`

type Server struct {
	cfg      *config.Config
	engine   *gin.Engine
	pipeline *nlu.Pipeline
	recorder *analytics.Recorder
	obs      *observability.Observability
	log      logger.Logger

	processSchema *gojsonschema.Schema
}

// New builds the router. The pipeline must already be trained; the server
// performs no initialization of its own beyond route setup.
func New(cfg *config.Config, pipeline *nlu.Pipeline, recorder *analytics.Recorder, obs *observability.Observability, log logger.Logger) (*Server, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(processRequestSchema))
	if err != nil {
		return nil, fmt.Errorf("compile process request schema: %w", err)
	}

	gin.SetMode(cfg.Server.GinMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		cfg:           cfg,
		engine:        engine,
		pipeline:      pipeline,
		recorder:      recorder,
		obs:           obs,
		log:           log.With(map[string]interface{}{"component": "http-server"}),
		processSchema: schema,
	}

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	engine.GET("/", s.handleIndex)
	engine.GET("/api/health", s.handleHealth)
	engine.POST("/api/process", s.handleProcess)
	engine.GET("/api/analytics", s.handleAnalytics)
	engine.GET("/api/history", s.handleHistory)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	engine.NoRoute(s.handleNotFound)

	return s, nil
}

// Router exposes the gin engine for tests and for embedding in http.Server.
func (s *Server) Router() *gin.Engine {
	return s.engine
}

// HTTPServer returns a configured http.Server listening on the configured
// address.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:    s.cfg.Server.Addr(),
		Handler: s.engine,
	}
}
