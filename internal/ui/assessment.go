package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/complexity-hook/internal/complexity"
)

// ConfidenceStyle picks a colour for a confidence band.
func ConfidenceStyle(c complexity.Confidence) lipgloss.Style {
	switch c {
	case complexity.ConfidenceHigh:
		return StyleError
	case complexity.ConfidenceMedium:
		return StyleWarning
	default:
		return StyleSuccess
	}
}

// RenderAssessment formats an assessment for a terminal.
func RenderAssessment(a complexity.Assessment) string {
	var sb strings.Builder

	verdict := Icon("✓", StyleSuccess) + " " + StyleSuccess.Render("Handle directly")
	if a.ShouldDelegate {
		verdict = Icon("💡", StyleWarning) + " " + StyleWarning.Render("Consider delegating")
	}

	box := StyleVerdictBox
	if a.ShouldDelegate {
		box = box.BorderForeground(ColorWarning)
	}
	sb.WriteString(box.Render(fmt.Sprintf("%s  %s %s",
		verdict,
		StyleSubtle.Render("confidence"),
		ConfidenceStyle(a.Confidence).Render(string(a.Confidence)),
	)))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("%s %d\n", StyleTitle.Render("Score:"), a.ComplexityScore))
	sb.WriteString(fmt.Sprintf("%s %s\n", StyleTitle.Render("Reason:"), StyleText.Render(a.Reason)))

	if len(a.IndicatorsFound) > 0 {
		table := &Table{Headers: []string{"Category", "Keyword"}, Indent: "  "}
		for _, m := range a.IndicatorsFound {
			table.Rows = append(table.Rows, []string{m.Category, m.Keyword})
		}
		sb.WriteString(StyleHeader.Render("Indicators") + "\n")
		sb.WriteString(table.Render())
	}

	if extra := signalTriggers(a); len(extra) > 0 {
		sb.WriteString(StyleHeader.Render("Signals") + "\n")
		for _, t := range extra {
			sb.WriteString(fmt.Sprintf("  %s %s\n", StyleSubtle.Render("•"), t))
		}
	}

	return sb.String()
}

// signalTriggers returns the triggers that did not come from keyword matches.
// Keyword triggers always precede the others.
func signalTriggers(a complexity.Assessment) []string {
	if len(a.Triggers) <= len(a.IndicatorsFound) {
		return nil
	}
	return a.Triggers[len(a.IndicatorsFound):]
}
