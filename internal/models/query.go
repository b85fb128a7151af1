// internal/models/query.go
package models

import "time"

// QueryRecord is one processed utterance as stored by the analytics recorder.
type QueryRecord struct {
	ID           string    `json:"id"`
	Message      string    `json:"message"`
	Intent       Intent    `json:"intent"`
	Entities     Entities  `json:"entities"`
	ResponseTime int64     `json:"responseTime"` // milliseconds
	Timestamp    time.Time `json:"timestamp"`
	Success      bool      `json:"success"`
}

// IntentCount pairs an intent with how often it was resolved.
type IntentCount struct {
	Intent Intent `json:"intent"`
	Count  int    `json:"count"`
}

// RecentQuery is the trimmed view of a record used in the analytics summary.
type RecentQuery struct {
	Message      string    `json:"message"`
	Intent       Intent    `json:"intent"`
	ResponseTime int64     `json:"responseTime"`
	Timestamp    time.Time `json:"timestamp"`
}

// AnalyticsSummary aggregates the query log.
type AnalyticsSummary struct {
	TotalQueries    int           `json:"totalQueries"`
	AvgResponseTime int64         `json:"avgResponseTime"`
	SuccessRate     int           `json:"successRate"`
	CommonIntents   []IntentCount `json:"commonIntents"`
	RecentQueries   []RecentQuery `json:"recentQueries"`
}
