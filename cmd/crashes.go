package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/josephgoksu/complexity-hook/internal/logger"
	"github.com/josephgoksu/complexity-hook/internal/ui"
	"github.com/spf13/cobra"
)

var crashesCmd = &cobra.Command{
	Use:   "crashes",
	Short: "List crash logs written by failed hook runs",
	Long: `Lists the crash logs recorded when a command panicked. The hook still exits 0
after a crash, so this is the place to find out that one happened.

Logs live under crash.dir (default ~/.complexity-hook/crash_logs).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		loadAppConfig(cmd.ErrOrStderr())

		logs, err := logger.ListCrashLogs()
		if err != nil {
			return fmt.Errorf("list crash logs: %w", err)
		}
		if asJSON {
			if logs == nil {
				logs = []string{}
			}
			return printJSON(cmd.OutOrStdout(), logs)
		}

		out := cmd.OutOrStdout()
		if len(logs) == 0 {
			fmt.Fprintf(out, "%s No crash logs\n", ui.Icon("✓", ui.StyleSuccess))
			return nil
		}
		fmt.Fprintf(out, "%s %s\n", ui.Icon("✗", ui.StyleError), ui.StyleHeader.Render(fmt.Sprintf("%d crash log(s)", len(logs))))
		for _, l := range logs {
			fmt.Fprintf(out, "  %s %s\n", ui.StyleSubtle.Render(filepath.Base(l)), l)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(crashesCmd)

	crashesCmd.Flags().Bool("json", false, "print the log paths as a JSON array")
}
