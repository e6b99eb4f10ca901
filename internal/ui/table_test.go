package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_ColumnWidths(t *testing.T) {
	table := &Table{
		Headers: []string{"Category", "Keyword"},
		Rows: [][]string{
			{"planning", "plan"},
			{"trade_offs", "pros and cons"},
		},
	}

	widths := table.ColumnWidths()

	assert.Equal(t, 10, widths[0]) // "trade_offs"
	assert.Equal(t, 13, widths[1]) // "pros and cons"
}

func TestTable_ColumnWidths_CountsCellsNotBytes(t *testing.T) {
	table := &Table{Headers: []string{"M"}, Rows: [][]string{{"•"}}}
	assert.Equal(t, 1, table.ColumnWidths()[0])
}

func TestTable_ColumnWidths_MaxWidth(t *testing.T) {
	table := &Table{
		Headers:  []string{"Category", "Keywords"},
		Rows:     [][]string{{"decision", "should we, which is better, compare, versus, vs, choose, decide"}},
		MaxWidth: 20,
	}

	widths := table.ColumnWidths()

	assert.Equal(t, 8, widths[0])
	assert.Equal(t, 20, widths[1])
}

func TestTable_Render(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	table := &Table{
		Headers:  []string{"Category", "Keywords"},
		Rows:     [][]string{{"planning", "plan, roadmap, strategy, phases"}, {"analysis"}},
		MaxWidth: 12,
		Indent:   "  ",
	}

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "  Category  Keywords", strings.TrimRight(lines[0], " "))
	assert.True(t, strings.HasPrefix(lines[1], "  ────────"))
	assert.Equal(t, "  planning  plan, roadm…", lines[2])
	assert.Equal(t, "  analysis", lines[3])
}

func TestTable_RenderEmpty(t *testing.T) {
	assert.Empty(t, (&Table{}).Render())
}
