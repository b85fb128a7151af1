package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"

	stderrors "hotel-voicebot/internal/common/errors"
	"hotel-voicebot/internal/common/metrics"
	"hotel-voicebot/internal/models"
)

type processRequest struct {
	Message string `json:"message"`
}

type processResponse struct {
	Response     string          `json:"response"`
	Intent       models.Intent   `json:"intent"`
	Entities     models.Entities `json:"entities"`
	Confidence   float64         `json:"confidence"`
	ResponseTime int64           `json:"responseTime"`
}

func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Hotel Voice Bot API",
		"version": s.cfg.App.Version,
		"endpoints": gin.H{
			"process":   "POST /api/process",
			"analytics": "GET /api/analytics",
			"history":   "GET /api/history",
			"health":    "GET /api/health",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   s.cfg.App.Name,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleProcess(c *gin.Context) {
	metrics.RequestsInFlight.Inc()
	defer metrics.RequestsInFlight.Dec()

	body, err := c.GetRawData()
	if err != nil {
		s.rejectInvalidMessage(c, "failed to read request body")
		return
	}

	result, err := s.processSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil || !result.Valid() {
		s.rejectInvalidMessage(c, "message is required and must be a non-empty string")
		return
	}

	var req processRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.rejectInvalidMessage(c, "malformed JSON body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.rejectInvalidMessage(c, "message is required and must be a non-empty string")
		return
	}

	start := time.Now()
	res := s.pipeline.Process(req.Message)
	elapsed := time.Since(start)

	metrics.QueriesProcessed.WithLabelValues(string(res.Intent)).Inc()
	metrics.QueryDuration.WithLabelValues(string(res.Intent)).Observe(elapsed.Seconds())
	if s.obs != nil {
		s.obs.RecordQueryProcessed(c.Request.Context(), string(res.Intent))
		s.obs.RecordQueryDuration(c.Request.Context(), elapsed, string(res.Intent))
	}

	if s.recorder != nil {
		s.recorder.Record(c.Request.Context(), models.QueryRecord{
			Message:      req.Message,
			Intent:       res.Intent,
			Entities:     res.Entities,
			ResponseTime: elapsed.Milliseconds(),
			Success:      res.Intent != models.IntentDefault,
		})
	}

	s.log.Debug("processed message", map[string]interface{}{
		"intent":     res.Intent,
		"confidence": res.Confidence,
		"elapsed_ms": elapsed.Milliseconds(),
	})

	c.JSON(http.StatusOK, processResponse{
		Response:     res.Response,
		Intent:       res.Intent,
		Entities:     res.Entities,
		Confidence:   res.Confidence,
		ResponseTime: elapsed.Milliseconds(),
	})
}

func (s *Server) handleAnalytics(c *gin.Context) {
	if s.recorder == nil {
		c.JSON(http.StatusOK, models.AnalyticsSummary{
			SuccessRate:   100,
			CommonIntents: []models.IntentCount{},
			RecentQueries: []models.RecentQuery{},
		})
		return
	}
	c.JSON(http.StatusOK, s.recorder.Summary())
}

func (s *Server) handleHistory(c *gin.Context) {
	var records []models.QueryRecord
	if s.recorder != nil {
		records = s.recorder.History()
	}
	if records == nil {
		records = []models.QueryRecord{}
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) handleNotFound(c *gin.Context) {
	c.JSON(stderrors.HTTPStatus(stderrors.ErrCodeNotFound), gin.H{
		"error": "Endpoint not found",
		"code":  stderrors.ErrCodeNotFound,
		"availableEndpoints": []string{
			"GET /",
			"GET /api/health",
			"POST /api/process",
			"GET /api/analytics",
			"GET /api/history",
			"GET /metrics",
		},
	})
}

func (s *Server) rejectInvalidMessage(c *gin.Context, detail string) {
	stdErr := stderrors.NewInvalidMessageError(detail)
	metrics.QueriesFailed.WithLabelValues(string(stdErr.Code)).Inc()
	s.log.Warn("rejected process request", map[string]interface{}{
		"code":   stdErr.Code,
		"reason": stdErr.Details,
	})
	c.JSON(stderrors.HTTPStatus(stdErr.Code), gin.H{
		"error":   "Message is required and must be a string",
		"code":    stdErr.Code,
		"details": stdErr.Details,
	})
}
