package nlu

import (
	"strings"

	"hotel-voicebot/internal/models"
)

// IntentRule maps one intent to its keyword/phrase set. Matching is
// case-insensitive substring containment over the whole normalized text.
type IntentRule struct {
	Intent   models.Intent
	Keywords []string
}

// DefaultRules returns the built-in rule table. Declaration order matters:
// when two intents tie on keyword score, the first-declared intent wins.
func DefaultRules() []IntentRule {
	return []IntentRule{
		{models.IntentBooking, []string{"book", "reserve", "reservation", "booking", "room", "check in", "checkin"}},
		{models.IntentAvailability, []string{"available", "availability", "vacant", "free", "rooms available"}},
		{models.IntentPricing, []string{"price", "cost", "rate", "rates", "charge", "how much", "pricing"}},
		{models.IntentAmenities, []string{"amenities", "facilities", "services", "features", "offer", "provide"}},
		{models.IntentCancellation, []string{"cancel", "cancellation", "refund", "policy"}},
		{models.IntentLocation, []string{"location", "address", "where", "directions", "nearby", "distance"}},
		{models.IntentCheckout, []string{"checkout", "check out", "leaving", "departure"}},
		{models.IntentGreeting, []string{"hello", "hi", "hey", "greetings", "good morning", "good evening"}},
		{models.IntentHelp, []string{"help", "assist", "support", "guidance"}},
		{models.IntentRoomTypes, []string{"deluxe room", "executive suite", "family room", "presidential suite"}},
	}
}

// KeywordScorer counts rule keywords appearing in an utterance. Built once
// at initialization; stateless afterwards.
type KeywordScorer struct {
	rules []IntentRule
}

// NewKeywordScorer validates and wraps a rule table. An empty table, an
// intent without keywords, or a blank keyword is a fatal construction error.
func NewKeywordScorer(rules []IntentRule) (*KeywordScorer, error) {
	if len(rules) == 0 {
		return nil, errEmptyRuleTable
	}
	for _, rule := range rules {
		if len(rule.Keywords) == 0 {
			return nil, malformedRule(rule.Intent, "no keywords")
		}
		for _, kw := range rule.Keywords {
			if strings.TrimSpace(kw) == "" {
				return nil, malformedRule(rule.Intent, "blank keyword")
			}
		}
	}
	return &KeywordScorer{rules: rules}, nil
}

// Score returns the intent with the strictly highest keyword count and that
// count. Each keyword contributes at most 1 no matter how often it repeats.
// Ties keep the first-declared intent. A zero score yields an empty intent.
func (s *KeywordScorer) Score(normalized string) (models.Intent, int) {
	var best models.Intent
	maxScore := 0

	for _, rule := range s.rules {
		score := 0
		for _, kw := range rule.Keywords {
			if strings.Contains(normalized, kw) {
				score++
			}
		}
		if score > maxScore {
			maxScore = score
			best = rule.Intent
		}
	}

	return best, maxScore
}

// Scores returns the per-intent keyword counts, mainly for diagnostics.
func (s *KeywordScorer) Scores(normalized string) map[models.Intent]int {
	out := make(map[models.Intent]int, len(s.rules))
	for _, rule := range s.rules {
		score := 0
		for _, kw := range rule.Keywords {
			if strings.Contains(normalized, kw) {
				score++
			}
		}
		out[rule.Intent] = score
	}
	return out
}
