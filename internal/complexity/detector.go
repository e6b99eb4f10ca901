/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/

// Package complexity scores how complex a natural-language request looks and
// recommends whether it should be delegated to a planning-oriented process.
//
// Scoring is purely lexical: keyword substrings, question marks, sentence
// count and list markers. There is no word-boundary awareness, so "plan"
// matches inside "planet".
package complexity

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	reasonSimpleTask   = "Simple implementation task detected"
	reasonNoIndicators = "No complexity indicators detected"

	triggerMultipleSentences = "multiple sentences"
	triggerStructuredList    = "structured list"

	moderateReasonTriggers = 3
	highReasonTriggers     = 5
)

var (
	sentenceDelimiters = regexp.MustCompile(`[.!?]+`)
	listMarker         = regexp.MustCompile(`\n[-*•]|\n\p{Nd}+\.`)
)

// Detector classifies prompts against a fixed keyword taxonomy.
// It holds no per-call state and is safe for concurrent use.
type Detector struct {
	taxonomy      []Category
	simplePhrases []string
}

// NewDetector returns a detector over the built-in taxonomy.
func NewDetector() *Detector {
	return &Detector{
		taxonomy:      defaultTaxonomy,
		simplePhrases: defaultSimplePhrases,
	}
}

var defaultDetector = NewDetector()

// Analyze classifies prompt with the built-in detector.
func Analyze(prompt string) Assessment {
	return defaultDetector.Analyze(prompt)
}

// Categories returns a copy of the taxonomy in scan order.
func (d *Detector) Categories() []Category {
	return copyCategories(d.taxonomy)
}

// SimplePhrases returns a copy of the phrases that force a non-delegating result.
func (d *Detector) SimplePhrases() []string {
	return append([]string(nil), d.simplePhrases...)
}

// scorer accumulates signals for a single Analyze call.
type scorer struct {
	score      int
	triggers   []string
	indicators []IndicatorMatch
}

func (s *scorer) add(points int, trigger string) {
	s.score += points
	s.triggers = append(s.triggers, trigger)
}

// Analyze scores prompt. Every string is valid input, including "".
func (d *Detector) Analyze(prompt string) Assessment {
	lower := strings.ToLower(prompt)

	for _, phrase := range d.simplePhrases {
		if strings.Contains(lower, phrase) {
			return Assessment{
				ShouldDelegate:  false,
				Confidence:      ConfidenceHigh,
				ComplexityScore: 0,
				Reason:          reasonSimpleTask,
			}
		}
	}

	s := &scorer{triggers: []string{}, indicators: []IndicatorMatch{}}

	// One point per (category, keyword) pair, however often it occurs.
	for _, cat := range d.taxonomy {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				s.add(1, kw)
				s.indicators = append(s.indicators, IndicatorMatch{Category: cat.Name, Keyword: kw})
			}
		}
	}

	if n := strings.Count(prompt, "?"); n > 0 {
		s.add(n, fmt.Sprintf("%d question(s)", n))
	}

	// Question marks are also sentence delimiters, so they count twice.
	if fragments := len(sentenceDelimiters.FindAllStringIndex(prompt, -1)) + 1; fragments > 3 {
		s.add(1, triggerMultipleSentences)
	}

	if listMarker.MatchString(prompt) {
		s.add(2, triggerStructuredList)
	}

	return Assessment{
		ShouldDelegate:  s.score >= DelegateThreshold,
		Confidence:      ConfidenceFor(s.score),
		ComplexityScore: s.score,
		Triggers:        s.triggers,
		IndicatorsFound: s.indicators,
		Reason:          reasonFor(s.score, s.triggers),
	}
}

func reasonFor(score int, triggers []string) string {
	switch {
	case score == 0:
		return reasonNoIndicators
	case score < DelegateThreshold:
		return fmt.Sprintf("Low complexity (%d indicators)", score)
	case score < HighConfidenceThreshold:
		return fmt.Sprintf("Moderate complexity (%d indicators): %s", score, joinFirst(triggers, moderateReasonTriggers))
	default:
		return fmt.Sprintf("High complexity (%d indicators): %s", score, joinFirst(triggers, highReasonTriggers))
	}
}

func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
