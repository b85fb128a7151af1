// internal/nlu/classifier_test.go
package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-voicebot/internal/models"
)

func newTrainedClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(DefaultCorpus())
	require.NoError(t, err)
	return c
}

// ==========================
// Construction
// ==========================

func TestNewClassifier_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		corpus []TrainingExample
	}{
		{
			name:   "empty corpus",
			corpus: nil,
		},
		{
			name: "single label",
			corpus: []TrainingExample{
				{"I want to book a room", models.IntentBooking},
				{"Make a reservation", models.IntentBooking},
			},
		},
		{
			name: "example without tokens",
			corpus: []TrainingExample{
				{"I want to book a room", models.IntentBooking},
				{"!!!", models.IntentPricing},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClassifier(tt.corpus)
			assert.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func TestNewClassifier_DefaultCorpus(t *testing.T) {
	c := newTrainedClassifier(t)
	assert.Greater(t, c.Vocabulary(), 0)
}

// ==========================
// Classification
// ==========================

func TestClassifier_Classify(t *testing.T) {
	c := newTrainedClassifier(t)

	tests := []struct {
		text     string
		expected models.Intent
	}{
		{"make a reservation", models.IntentBooking},
		{"hello", models.IntentGreeting},
		{"cancellation policy", models.IntentCancellation},
		{"what amenities do you offer", models.IntentAmenities},
		{"i need assistance", models.IntentHelp},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			intent, score, ok := c.Classify(tt.text)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, intent)
			assert.Greater(t, score, 0.0)
		})
	}
}

func TestClassifier_Classify_NoVocabularyOverlap(t *testing.T) {
	c := newTrainedClassifier(t)

	intent, score, ok := c.Classify("asdf qwerty zxcv")

	assert.False(t, ok)
	assert.Equal(t, models.Intent(""), intent)
	assert.Equal(t, 0.0, score)
}

func TestClassifier_Classify_Deterministic(t *testing.T) {
	c := newTrainedClassifier(t)

	first, firstScore, _ := c.Classify("how much does a room cost")
	for i := 0; i < 5; i++ {
		intent, score, ok := c.Classify("how much does a room cost")
		assert.True(t, ok)
		assert.Equal(t, first, intent)
		assert.Equal(t, firstScore, score)
	}
}

// ==========================
// Ranking
// ==========================

func TestClassifier_Rank(t *testing.T) {
	c := newTrainedClassifier(t)

	preds := c.Rank("make a reservation")

	require.NotEmpty(t, preds)
	assert.Equal(t, models.IntentBooking, preds[0].Intent)
	for i := 1; i < len(preds); i++ {
		assert.GreaterOrEqual(t, preds[i-1].Score, preds[i].Score)
	}

	var sum float64
	for _, p := range preds {
		sum += p.Score
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestClassifier_Rank_NoSignal(t *testing.T) {
	c := newTrainedClassifier(t)

	preds := c.Rank("zzzzz qqqqq")

	require.NotEmpty(t, preds)
	for _, p := range preds {
		assert.Equal(t, 0.0, p.Score)
	}
}
