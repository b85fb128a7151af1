package nlu

import (
	"regexp"

	"hotel-voicebot/internal/models"
)

// Extractor pulls dates, numbers, emails and phone numbers out of free text.
// All patterns are compiled once at construction and reused across calls.
// Extraction runs against the original-case text so email and phone
// formatting survives, and it never fails: a non-matching rule simply
// leaves its entity empty.
type Extractor struct {
	date   *regexp.Regexp
	number *regexp.Regexp
	email  *regexp.Regexp
	phone  *regexp.Regexp
}

func NewExtractor() *Extractor {
	return &Extractor{
		date:   regexp.MustCompile(`(?i)(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})|(\d{1,2}\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{2,4})`),
		number: regexp.MustCompile(`\b\d+\b`),
		email:  regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`),
		phone:  regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?(\(?\d{3}\)?[-.\s]?)?\d{3}[-.\s]?\d{4}`),
	}
}

// Extract evaluates every rule independently. Numbers use a find-all scan
// with appearance order and duplicates preserved; the other rules take the
// first match only.
func (e *Extractor) Extract(text string) models.Entities {
	var entities models.Entities

	if m := e.date.FindString(text); m != "" {
		entities.Date = m
	}

	if all := e.number.FindAllString(text, -1); len(all) > 0 {
		entities.Numbers = all
	}

	if m := e.email.FindString(text); m != "" {
		entities.Email = m
	}

	if m := e.phone.FindString(text); m != "" {
		entities.Phone = m
	}

	return entities
}
