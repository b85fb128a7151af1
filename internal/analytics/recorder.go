// Package analytics keeps the per-query log and aggregates it into the
// summary the dashboard reads. Memory is the source of truth; when a Redis
// client is attached, records are mirrored there best-effort so they
// survive restarts.
package analytics

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	stderrors "hotel-voicebot/internal/common/errors"
	"hotel-voicebot/internal/common/logger"
	"hotel-voicebot/internal/models"
)

type Recorder struct {
	mu      sync.RWMutex
	records []models.QueryRecord

	redis       *redis.Client
	redisKey    string
	recentLimit int
	topIntents  int
	log         logger.Logger
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithRedis attaches a Redis mirror. Records are RPUSHed as JSON under key.
func WithRedis(client *redis.Client, key string) Option {
	return func(r *Recorder) {
		r.redis = client
		r.redisKey = key
	}
}

// WithLimits overrides how many recent queries and top intents the summary
// reports.
func WithLimits(recent, top int) Option {
	return func(r *Recorder) {
		if recent > 0 {
			r.recentLimit = recent
		}
		if top > 0 {
			r.topIntents = top
		}
	}
}

func NewRecorder(log logger.Logger, opts ...Option) *Recorder {
	r := &Recorder{
		recentLimit: 10,
		topIntents:  5,
		log:         log.With(map[string]interface{}{"component": "analytics"}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record stores a query record, assigning an id and timestamp when missing.
// A failing Redis mirror is logged and swallowed: analytics must never fail
// a user request.
func (r *Recorder) Record(ctx context.Context, rec models.QueryRecord) models.QueryRecord {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()

	if r.redis != nil {
		payload, err := json.Marshal(rec)
		if err == nil {
			err = r.redis.RPush(ctx, r.redisKey, payload).Err()
		}
		if err != nil {
			sinkErr := stderrors.NewAnalyticsWriteFailedError(err)
			r.log.Warn("failed to mirror query record to redis", map[string]interface{}{
				"queryId":   rec.ID,
				"code":      sinkErr.Code,
				"retryable": sinkErr.Retryable,
				"error":     err.Error(),
			})
		}
	}

	return rec
}

// Summary aggregates the query log.
func (r *Recorder) Summary() models.AnalyticsSummary {
	r.mu.RLock()
	records := append([]models.QueryRecord(nil), r.records...)
	r.mu.RUnlock()

	if len(records) == 0 {
		return models.AnalyticsSummary{
			SuccessRate:   100,
			CommonIntents: []models.IntentCount{},
			RecentQueries: []models.RecentQuery{},
		}
	}

	total := len(records)
	var totalResponseTime int64
	successful := 0
	counts := make(map[models.Intent]int)

	for _, rec := range records {
		totalResponseTime += rec.ResponseTime
		if rec.Success {
			successful++
		}
		if rec.Intent != "" {
			counts[rec.Intent]++
		}
	}

	common := make([]models.IntentCount, 0, len(counts))
	for intent, count := range counts {
		common = append(common, models.IntentCount{Intent: intent, Count: count})
	}
	sort.Slice(common, func(i, j int) bool {
		if common[i].Count != common[j].Count {
			return common[i].Count > common[j].Count
		}
		return common[i].Intent < common[j].Intent
	})
	if len(common) > r.topIntents {
		common = common[:r.topIntents]
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	limit := r.recentLimit
	if limit > len(records) {
		limit = len(records)
	}
	recent := make([]models.RecentQuery, 0, limit)
	for _, rec := range records[:limit] {
		recent = append(recent, models.RecentQuery{
			Message:      rec.Message,
			Intent:       rec.Intent,
			ResponseTime: rec.ResponseTime,
			Timestamp:    rec.Timestamp,
		})
	}

	return models.AnalyticsSummary{
		TotalQueries:    total,
		AvgResponseTime: int64(math.Round(float64(totalResponseTime) / float64(total))),
		SuccessRate:     int(math.Round(float64(successful) * 100 / float64(total))),
		CommonIntents:   common,
		RecentQueries:   recent,
	}
}

// History returns all records, newest first.
func (r *Recorder) History() []models.QueryRecord {
	r.mu.RLock()
	records := append([]models.QueryRecord(nil), r.records...)
	r.mu.RUnlock()

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	return records
}

// Len reports how many records are held in memory.
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
