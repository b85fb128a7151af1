// test/e2e/e2e_test.go
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-voicebot/internal/analytics"
	"hotel-voicebot/internal/common/config"
	"hotel-voicebot/internal/common/logger"
	"hotel-voicebot/internal/models"
	"hotel-voicebot/internal/nlu"
	"hotel-voicebot/internal/responder"
	"hotel-voicebot/internal/server"
	"hotel-voicebot/internal/store"
)

// buildService wires the full stack the way cmd/voicebot-server does, with
// miniredis standing in for the analytics mirror.
func buildService(t *testing.T) (*server.Server, *redis.Client, string) {
	t.Helper()

	cfg := config.Default()
	cfg.Server.GinMode = gin.TestMode

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logger.NewTestLogger(t)
	hotelStore := store.New()
	resp := responder.New(cfg.Hotel)

	pipeline, err := nlu.NewPipeline(hotelStore, resp, log, nlu.Options{
		KeywordThreshold: cfg.NLP.KeywordOverrideThreshold,
	})
	require.NoError(t, err)

	recorder := analytics.NewRecorder(log,
		analytics.WithRedis(client, cfg.Analytics.RedisKey),
		analytics.WithLimits(cfg.Analytics.RecentLimit, cfg.Analytics.TopIntents),
	)

	s, err := server.New(cfg, pipeline, recorder, nil, log)
	require.NoError(t, err)
	return s, client, cfg.Analytics.RedisKey
}

func process(t *testing.T, s *server.Server, message string) (int, models.PipelineResult) {
	t.Helper()

	payload, err := json.Marshal(map[string]string{"message": message})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/process", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	var body struct {
		Response   string          `json:"response"`
		Intent     models.Intent   `json:"intent"`
		Entities   models.Entities `json:"entities"`
		Confidence float64         `json:"confidence"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return w.Code, models.PipelineResult{
		Intent:     body.Intent,
		Entities:   body.Entities,
		Confidence: body.Confidence,
		Response:   body.Response,
	}
}

func TestGuestConversation(t *testing.T) {
	s, client, redisKey := buildService(t)

	steps := []struct {
		message        string
		expectedIntent models.Intent
		inResponse     string
	}{
		{"Hello", models.IntentGreeting, "Simplotel Grand Hotel"},
		{"Do you have rooms available", models.IntentAvailability, "Deluxe Room"},
		{"What are your room rates", models.IntentPricing, "Presidential Suite"},
		{"I want to book a room for 12/05/2025", models.IntentBooking, "To complete your booking"},
		{"Where is the hotel located", models.IntentLocation, "MG Road"},
	}

	for _, step := range steps {
		code, result := process(t, s, step.message)
		require.Equal(t, http.StatusOK, code, "message %q", step.message)
		assert.Equal(t, step.expectedIntent, result.Intent, "message %q", step.message)
		assert.Contains(t, result.Response, step.inResponse, "message %q", step.message)
	}

	// Every processed utterance was mirrored to Redis.
	count, err := client.LLen(context.Background(), redisKey).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(len(steps)), count)
}

func TestGibberishFallsToDefault(t *testing.T) {
	s, _, _ := buildService(t)

	code, result := process(t, s, "asdf qwerty")

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, models.IntentDefault, result.Intent)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Contains(t, result.Response, "asdf qwerty")
}

func TestAnalyticsReflectConversation(t *testing.T) {
	s, _, _ := buildService(t)

	process(t, s, "Hello")
	process(t, s, "book a room")
	process(t, s, "asdf qwerty")

	req := httptest.NewRequest(http.MethodGet, "/api/analytics", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var summary models.AnalyticsSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))

	assert.Equal(t, 3, summary.TotalQueries)
	assert.Equal(t, 67, summary.SuccessRate)
	require.NotEmpty(t, summary.RecentQueries)
	assert.Equal(t, models.IntentDefault, summary.RecentQueries[0].Intent)
}

func TestEntityExtractionOverTheWire(t *testing.T) {
	s, _, _ := buildService(t)

	code, result := process(t, s, "Book a room for 2 guests, email guest@example.com, phone 555-123-4567")

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, models.IntentBooking, result.Intent)
	assert.Equal(t, "guest@example.com", result.Entities.Email)
	assert.Equal(t, "555-123-4567", result.Entities.Phone)
	assert.Contains(t, result.Entities.Numbers, "2")
}
