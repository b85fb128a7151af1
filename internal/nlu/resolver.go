package nlu

import (
	"errors"
	"fmt"

	"hotel-voicebot/internal/models"
)

var errEmptyRuleTable = errors.New("intent rule table is empty")

func malformedRule(intent models.Intent, reason string) error {
	return fmt.Errorf("malformed rule for intent %q: %s", intent, reason)
}

// Resolver combines the classifier label and the keyword candidate into one
// final intent. The combination is a hard threshold gate, not a weighted
// sum: a keyword score at or above the threshold wins outright, otherwise
// the statistical label stands. With neither, keyword evidence of any
// strength is used before falling to the terminal default.
type Resolver struct {
	threshold int
}

func NewResolver(threshold int) *Resolver {
	if threshold < 1 {
		threshold = 2
	}
	return &Resolver{threshold: threshold}
}

func (r *Resolver) Resolve(classifierIntent models.Intent, classifierOK bool, keywordIntent models.Intent, keywordScore int) models.Intent {
	if keywordScore >= r.threshold && keywordIntent != "" {
		return keywordIntent
	}
	if classifierOK {
		return classifierIntent
	}
	if keywordScore >= 1 && keywordIntent != "" {
		return keywordIntent
	}
	return models.IntentDefault
}
