package nlu

import (
	"fmt"
	"sort"

	"github.com/jbrukh/bayesian"

	"hotel-voicebot/internal/models"
)

// Prediction is one (intent, score) pair in a classifier ranking.
type Prediction struct {
	Intent models.Intent
	Score  float64
}

// Classifier is a Naive Bayes text classifier trained exactly once, before
// any request is served. After construction it is immutable and safe for
// concurrent use without synchronization.
type Classifier struct {
	model   *bayesian.Classifier
	classes []bayesian.Class
	vocab   map[string]struct{}
}

// NewClassifier trains a classifier over the given corpus. An empty corpus,
// an example with no tokens, or fewer than two distinct labels is a fatal
// construction error: the process must not serve without a trained model.
func NewClassifier(corpus []TrainingExample) (*Classifier, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("training corpus is empty")
	}

	var classes []bayesian.Class
	seen := make(map[models.Intent]bool)
	for _, ex := range corpus {
		if !seen[ex.Label] {
			seen[ex.Label] = true
			classes = append(classes, bayesian.Class(ex.Label))
		}
	}
	if len(classes) < 2 {
		return nil, fmt.Errorf("training corpus needs at least two distinct labels, got %d", len(classes))
	}

	c := &Classifier{
		model:   bayesian.NewClassifier(classes...),
		classes: classes,
		vocab:   make(map[string]struct{}),
	}

	for _, ex := range corpus {
		tokens := Tokenize(ex.Text)
		if len(tokens) == 0 {
			return nil, fmt.Errorf("training example %q has no tokens", ex.Text)
		}
		c.model.Learn(tokens, bayesian.Class(ex.Label))
		for _, t := range tokens {
			c.vocab[t] = struct{}{}
		}
	}

	return c, nil
}

// Classify returns the most probable intent for the text, its probability,
// and whether the model had any signal at all. Text sharing no vocabulary
// with the corpus yields ok=false: the prior-driven argmax would be noise,
// not a judgement.
func (c *Classifier) Classify(text string) (models.Intent, float64, bool) {
	tokens := Tokenize(text)
	if !c.hasSignal(tokens) {
		return "", 0, false
	}

	scores, top, _ := c.model.ProbScores(tokens)
	return models.Intent(c.classes[top]), scores[top], true
}

// Rank returns every trained intent ordered by descending score. Ties keep
// class declaration order so the ranking is deterministic.
func (c *Classifier) Rank(text string) []Prediction {
	tokens := Tokenize(text)
	preds := make([]Prediction, len(c.classes))

	if !c.hasSignal(tokens) {
		for i, cl := range c.classes {
			preds[i] = Prediction{Intent: models.Intent(cl)}
		}
		return preds
	}

	scores, _, _ := c.model.ProbScores(tokens)
	for i, cl := range c.classes {
		preds[i] = Prediction{Intent: models.Intent(cl), Score: scores[i]}
	}
	sort.SliceStable(preds, func(i, j int) bool {
		return preds[i].Score > preds[j].Score
	})
	return preds
}

// Vocabulary reports how many distinct tokens the model was trained on.
func (c *Classifier) Vocabulary() int {
	return len(c.vocab)
}

func (c *Classifier) hasSignal(tokens []string) bool {
	for _, t := range tokens {
		if _, ok := c.vocab[t]; ok {
			return true
		}
	}
	return false
}
