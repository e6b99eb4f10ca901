/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/josephgoksu/complexity-hook/internal/complexity"
	"github.com/josephgoksu/complexity-hook/internal/hook"
	"github.com/josephgoksu/complexity-hook/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Hook commands for Claude Code integration",
	Long: `Commands designed to be called by Claude Code hooks.

Hook commands only advise. They always exit with status 0, even on malformed
input or internal errors, so they never block the calling workflow.

Example .claude/settings.json configuration:
{
  "hooks": {
    "UserPromptSubmit": [{
      "hooks": [{
        "type": "command",
        "command": "complexity-hook hook detect-complexity",
        "timeout": 5
      }]
    }]
  }
}`,
}

var hookDetectComplexityCmd = &cobra.Command{
	Use:   "detect-complexity",
	Short: "Score the prompt in a hook envelope and advise on delegation",
	Long: `Reads a JSON hook envelope from stdin (or --input), extracts the prompt text
and writes the complexity assessment as JSON to stderr. When the prompt looks
complex, a one-line advisory follows the JSON.

The prompt is looked up at the configured hook.message_paths, by default
"tool_input.message" and then "prompt". A missing or empty prompt is a no-op.`,
	// Stray arguments and flags are ignored so a misconfigured hook still exits 0.
	Args:               cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.HandlePanic(0)

		input, _ := cmd.Flags().GetString("input")
		runDetectComplexity(cmd.Context(), cmd.InOrStdin(), cmd.ErrOrStderr(), input)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hookCmd)
	hookCmd.AddCommand(hookDetectComplexityCmd)

	hookDetectComplexityCmd.Flags().StringP("input", "i", "", "read the envelope from a file instead of stdin")
	hookDetectComplexityCmd.SetFlagErrorFunc(hookFlagError)
}

// hookFlagError reports a bad flag value and swallows the error so the hook
// still exits 0. Unknown flags never get here; they are whitelisted.
func hookFlagError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Complexity detection error: %v\n", err)
	return nil
}

// runDetectComplexity is the never-failing hook body.
func runDetectComplexity(ctx context.Context, stdin io.Reader, stderr io.Writer, input string) hook.Outcome {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := loadAppConfig(stderr)
	log := newLogger(cfg, stderr)
	defer func() { _ = log.Close() }()

	if input == "" && isTerminal(stdin) {
		fmt.Fprintln(stderr, "detect-complexity expects a hook envelope on stdin; see 'complexity-hook hook --help'")
		return hook.Outcome{Skipped: true}
	}

	src, err := hook.ReadSource(appFs, input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Complexity detection error: %v\n", err)
		return hook.Outcome{Err: err}
	}
	defer func() { _ = src.Close() }()

	runner := &hook.Runner{
		Detector: complexity.NewDetector(),
		Paths:    cfg.Hook.MessagePaths,
		Stderr:   stderr,
		Logger:   log,
		Advisory: cfg.Hook.Advisory,
		OnPrompt: logger.SetPrompt,
	}
	return runner.Run(ctx, src)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
