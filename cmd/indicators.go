package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/josephgoksu/complexity-hook/internal/complexity"
	"github.com/josephgoksu/complexity-hook/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// IndicatorsDocument is the exported view of the keyword tables.
type IndicatorsDocument struct {
	Categories    []complexity.Category `json:"categories" yaml:"categories"`
	SimplePhrases []string              `json:"simple_phrases" yaml:"simple_phrases"`
}

var indicatorsCmd = &cobra.Command{
	Use:   "indicators",
	Short: "List the keyword categories and simple-task phrases",
	Long: `Prints the keyword taxonomy in scan order and the simple-task phrases that
force a "do not delegate" result. Matching is by lowercase substring.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		d := complexity.NewDetector()
		doc := IndicatorsDocument{
			Categories:    d.Categories(),
			SimplePhrases: d.SimplePhrases(),
		}
		return writeIndicators(cmd.OutOrStdout(), doc, format)
	},
}

func init() {
	rootCmd.AddCommand(indicatorsCmd)

	indicatorsCmd.Flags().String("format", "text", "output format: text, json or yaml")
}

func writeIndicators(w io.Writer, doc IndicatorsDocument, format string) error {
	switch format {
	case "json":
		return printJSON(w, doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "text":
		var sb strings.Builder
		table := &ui.Table{Headers: []string{"Category", "Keywords"}, Indent: "  "}
		for _, c := range doc.Categories {
			table.Rows = append(table.Rows, []string{c.Name, strings.Join(c.Keywords, ", ")})
		}
		sb.WriteString(ui.StyleHeader.Render("Complexity indicators") + "\n")
		sb.WriteString(table.Render())
		sb.WriteString(ui.StyleHeader.Render("Simple-task phrases") + "\n")
		for _, p := range doc.SimplePhrases {
			sb.WriteString(fmt.Sprintf("  %s %s\n", ui.StyleSubtle.Render("•"), p))
		}
		_, err := fmt.Fprint(w, sb.String())
		return err
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}
