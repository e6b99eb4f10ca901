package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/josephgoksu/complexity-hook/internal/complexity"
	"github.com/josephgoksu/complexity-hook/internal/logger"
	"github.com/josephgoksu/complexity-hook/internal/ui"
	"github.com/spf13/cobra"
)

var errNoPrompt = errors.New("no prompt given: pass text as arguments, --file, or pipe it on stdin")

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Score a prompt and show the delegation advice",
	Long: `Scores free text directly, without a hook envelope.

The text comes from the arguments (joined by spaces), from --file, or from
stdin when neither is given. Use --json for the same JSON the hook emits.`,
	Example: `  complexity-hook analyze "Should we compare both approaches?"
  complexity-hook analyze --file request.txt --json
  echo "fix typo in README" | complexity-hook analyze`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		asJSON, _ := cmd.Flags().GetBool("json")

		prompt := strings.Join(args, " ")
		if prompt == "" {
			var err error
			prompt, err = readAllFrom(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
		}
		if strings.TrimSpace(prompt) == "" {
			return errNoPrompt
		}

		logger.SetPrompt(prompt)
		assessment := complexity.NewDetector().Analyze(prompt)

		if asJSON {
			return printJSON(cmd.OutOrStdout(), assessment)
		}
		_, err := fmt.Fprint(cmd.OutOrStdout(), ui.RenderAssessment(assessment))
		return err
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("file", "f", "", "read the prompt from a file ('-' for stdin)")
	analyzeCmd.Flags().Bool("json", false, "output the assessment as JSON")
}
