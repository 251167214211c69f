package censor

import (
	"regexp"

	"github.com/textscrub/textscrub/vocab"
)

// Classifier detects and masks vulgar vocabulary. Implementations return a
// string aligned rune for rune with their input, marking censored positions
// with '*'. vocab.Dictionary is the stock implementation.
type Classifier interface {
	Censor(string) string
}

// Censorer runs the redaction pipeline: pattern masking passes in canonical
// order, then the vocabulary classifier, then reconciliation of the two.
// A Censorer is stateless between calls and safe for concurrent use as long
// as its classifier is.
type Censorer struct {
	classifier Classifier
}

// New returns a Censorer backed by the given classifier. A nil classifier
// falls back to the process-wide vocab dictionary.
func New(classifier Classifier) *Censorer {
	if classifier == nil {
		classifier = vocab.Default()
	}
	return &Censorer{classifier: classifier}
}

// Censor applies the requested masking passes and the vulgarity classifier
// to req.Text. Kinds are deduplicated and run in canonical order (Link, IP,
// Email, Custom) no matter how the request lists them. Every matcher is
// resolved before the first pass runs, so a missing or invalid custom
// pattern aborts with the text untouched.
func (c *Censorer) Censor(req Request) (Result, error) {
	kinds := normalize(req.Kinds)

	matchers := make([]*regexp.Regexp, 0, len(kinds))
	for _, k := range kinds {
		re, err := matcherFor(k, req.Pattern)
		if err != nil {
			return Result{}, err
		}
		matchers = append(matchers, re)
	}

	buffer := req.Text
	for _, re := range matchers {
		buffer = mask(buffer, re)
	}

	censored := overlay(buffer, c.classifier.Censor(buffer))

	return Result{
		Original: req.Text,
		Censored: censored,
		Changed:  req.Text != censored,
	}, nil
}

// String censors text with the given built-in kinds, using the process-wide
// dictionary for vocabulary.
func String(text string, kinds ...Kind) (Result, error) {
	return New(nil).Censor(Request{Text: text, Kinds: kinds})
}

// StringPattern censors text like String and additionally runs pattern as a
// Custom pass.
func StringPattern(text, pattern string, kinds ...Kind) (Result, error) {
	ks := make([]Kind, 0, len(kinds)+1)
	ks = append(ks, kinds...)
	ks = append(ks, Custom)
	return New(nil).Censor(Request{Text: text, Kinds: ks, Pattern: pattern})
}
