package nlu

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[a-z0-9]+(?:'[a-z]+)?`)

// Normalize lower-cases an utterance. Intent matching works on the whole
// lower-cased string, not a token set, so keyword phrases like "check in"
// can span token boundaries.
func Normalize(text string) string {
	return strings.ToLower(text)
}

// Tokenize splits an utterance into lower-cased word tokens on
// whitespace/punctuation boundaries.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}
