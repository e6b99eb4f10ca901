/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package complexity

import (
	"encoding/json"
	"fmt"
)

// Confidence is the coarse certainty attached to an assessment.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Score thresholds. Delegation and medium confidence share the same cut point.
const (
	DelegateThreshold       = 3
	HighConfidenceThreshold = 5
)

// ConfidenceFor maps a complexity score to its confidence band.
func ConfidenceFor(score int) Confidence {
	switch {
	case score >= HighConfidenceThreshold:
		return ConfidenceHigh
	case score >= DelegateThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// IndicatorMatch records one taxonomy keyword found in the prompt.
// It serializes as a two element array: ["category", "keyword"].
type IndicatorMatch struct {
	Category string
	Keyword  string
}

func (m IndicatorMatch) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{m.Category, m.Keyword})
}

func (m *IndicatorMatch) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("indicator match: %w", err)
	}
	m.Category, m.Keyword = pair[0], pair[1]
	return nil
}

// Assessment is the result of analyzing one prompt.
//
// A short-circuited assessment (simple task detected) has nil Triggers and
// IndicatorsFound and omits both from its JSON form. A scored assessment
// always carries both, possibly empty.
type Assessment struct {
	ShouldDelegate  bool             `json:"should_delegate"`
	Confidence      Confidence       `json:"confidence"`
	ComplexityScore int              `json:"complexity_score"`
	Triggers        []string         `json:"triggers"`
	IndicatorsFound []IndicatorMatch `json:"indicators_found"`
	Reason          string           `json:"reason"`
}

// ShortCircuited reports whether the simple-task rule produced this assessment.
func (a Assessment) ShortCircuited() bool {
	return a.Triggers == nil && a.IndicatorsFound == nil
}

// Advisory returns the one-line delegation hint, or "" when not delegating.
func (a Assessment) Advisory() string {
	if !a.ShouldDelegate {
		return ""
	}
	return fmt.Sprintf("Complex task detected (%d indicators). Consider delegating to Codex for planning/reasoning.", a.ComplexityScore)
}

type shortAssessmentJSON struct {
	ShouldDelegate  bool       `json:"should_delegate"`
	Confidence      Confidence `json:"confidence"`
	Reason          string     `json:"reason"`
	ComplexityScore int        `json:"complexity_score"`
}

type fullAssessmentJSON struct {
	ShouldDelegate  bool             `json:"should_delegate"`
	Confidence      Confidence       `json:"confidence"`
	ComplexityScore int              `json:"complexity_score"`
	Triggers        []string         `json:"triggers"`
	IndicatorsFound []IndicatorMatch `json:"indicators_found"`
	Reason          string           `json:"reason"`
}

func (a Assessment) MarshalJSON() ([]byte, error) {
	if a.ShortCircuited() {
		return json.Marshal(shortAssessmentJSON{
			ShouldDelegate:  a.ShouldDelegate,
			Confidence:      a.Confidence,
			Reason:          a.Reason,
			ComplexityScore: a.ComplexityScore,
		})
	}
	full := fullAssessmentJSON{
		ShouldDelegate:  a.ShouldDelegate,
		Confidence:      a.Confidence,
		ComplexityScore: a.ComplexityScore,
		Triggers:        a.Triggers,
		IndicatorsFound: a.IndicatorsFound,
		Reason:          a.Reason,
	}
	if full.Triggers == nil {
		full.Triggers = []string{}
	}
	if full.IndicatorsFound == nil {
		full.IndicatorsFound = []IndicatorMatch{}
	}
	return json.Marshal(full)
}
