package nlu

import (
	stderrors "hotel-voicebot/internal/common/errors"
	"hotel-voicebot/internal/common/logger"
	"hotel-voicebot/internal/models"
	"hotel-voicebot/internal/responder"
)

// SnapshotProvider supplies the point-in-time hotel data the synthesizer
// reads. The backing store may be concurrently mutated elsewhere; the
// pipeline never caches what it returns.
type SnapshotProvider interface {
	HotelInfo() models.HotelProfile
	Rooms() []models.Room
}

// Pipeline sequences normalization, entity extraction, keyword scoring,
// statistical classification, intent resolution and response synthesis for
// one utterance. All model state is built in NewPipeline and immutable
// afterwards, so Process is safe to call from any number of goroutines.
type Pipeline struct {
	extractor  *Extractor
	classifier *Classifier
	scorer     *KeywordScorer
	resolver   *Resolver
	responder  *responder.Responder
	data       SnapshotProvider
	log        logger.Logger
}

// Options overrides the built-in corpus, rule table and resolver threshold.
type Options struct {
	Corpus           []TrainingExample
	Rules            []IntentRule
	KeywordThreshold int
}

// NewPipeline trains the classifier and builds the rule tables. Any error
// here is fatal to startup: the service must not answer requests without a
// trained model.
func NewPipeline(data SnapshotProvider, resp *responder.Responder, log logger.Logger, opts Options) (*Pipeline, error) {
	corpus := opts.Corpus
	if corpus == nil {
		corpus = DefaultCorpus()
	}
	rules := opts.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	classifier, err := NewClassifier(corpus)
	if err != nil {
		return nil, stderrors.NewModelTrainingFailedError(err)
	}

	scorer, err := NewKeywordScorer(rules)
	if err != nil {
		return nil, stderrors.NewRuleTableMalformedError(err.Error())
	}

	p := &Pipeline{
		extractor:  NewExtractor(),
		classifier: classifier,
		scorer:     scorer,
		resolver:   NewResolver(opts.KeywordThreshold),
		responder:  resp,
		data:       data,
		log:        log.With(map[string]interface{}{"component": "nlu-pipeline"}),
	}

	p.log.Info("pipeline initialized", map[string]interface{}{
		"trainingExamples": len(corpus),
		"intentRules":      len(rules),
		"vocabulary":       classifier.Vocabulary(),
	})

	return p, nil
}

// Process runs the full pipeline over one utterance. It is pure with
// respect to the pipeline: identical input against an identical snapshot
// yields an identical result, and nothing about the call mutates shared
// state.
func (p *Pipeline) Process(utterance string) models.PipelineResult {
	normalized := Normalize(utterance)

	entities := p.extractor.Extract(utterance)
	keywordIntent, keywordScore := p.scorer.Score(normalized)
	classifierIntent, confidence, ok := p.classifier.Classify(normalized)

	intent := p.resolver.Resolve(classifierIntent, ok, keywordIntent, keywordScore)
	if !ok {
		confidence = 0
	}

	snap := models.DomainSnapshot{
		Hotel: p.data.HotelInfo(),
		Rooms: p.data.Rooms(),
	}
	response := p.responder.Respond(intent, snap, utterance)

	p.log.Debug("utterance processed", map[string]interface{}{
		"intent":       intent,
		"keywordScore": keywordScore,
		"confidence":   confidence,
		"tokens":       len(Tokenize(utterance)),
	})

	return models.PipelineResult{
		Intent:     intent,
		Entities:   entities,
		Confidence: confidence,
		Response:   response,
	}
}
