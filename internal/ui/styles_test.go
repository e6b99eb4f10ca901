package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/complexity-hook/internal/complexity"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestStyles(t *testing.T) {
	// Force color profile for testing
	lipgloss.SetColorProfile(termenv.ANSI256)

	out := StyleSuccess.Render("Test")
	assert.Contains(t, out, "Test")
	assert.NotEqual(t, "Test", out, "Style should add ANSI codes when forced")
}

func TestIcon(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	out := Icon("X", StyleError)
	assert.Contains(t, out, "X")
	assert.NotEqual(t, "X", out)
}

func TestRenderAssessment(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := RenderAssessment(complexity.Analyze("Can you architect a plan for this? What about trade-offs?"))
	assert.Contains(t, out, "Consider delegating")
	assert.Contains(t, out, "medium")
	assert.Contains(t, out, "Score: 4")
	assert.Contains(t, out, "  planning    plan\n")
	assert.Contains(t, out, "  trade_offs  trade-off\n")
	assert.Contains(t, out, "2 question(s)")
}

func TestRenderAssessment_Simple(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := RenderAssessment(complexity.Analyze("fix typo in docs"))
	assert.Contains(t, out, "Handle directly")
	assert.Contains(t, out, "Simple implementation task detected")
	assert.NotContains(t, out, "Indicators")
	assert.NotContains(t, out, "Signals")
}

func TestConfidenceStyle(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	assert.Equal(t, StyleError.Render("x"), ConfidenceStyle(complexity.ConfidenceHigh).Render("x"))
	assert.Equal(t, StyleWarning.Render("x"), ConfidenceStyle(complexity.ConfidenceMedium).Render("x"))
	assert.Equal(t, StyleSuccess.Render("x"), ConfidenceStyle(complexity.ConfidenceLow).Render("x"))
}
