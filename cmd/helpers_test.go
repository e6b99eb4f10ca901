package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// executeCommand runs rootCmd with args in an isolated HOME and returns
// stdout, stderr and the command error.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	resetCommandFlags()
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		viper.Reset()
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// useMemFs swaps appFs for an in-memory filesystem for the duration of t.
func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	prev := appFs
	appFs = afero.NewMemMapFs()
	t.Cleanup(func() { appFs = prev })
	return appFs
}

// resetCommandFlags restores flag defaults; cobra keeps values between Execute calls.
func resetCommandFlags() {
	_ = analyzeCmd.Flags().Set("file", "")
	_ = analyzeCmd.Flags().Set("json", "false")
	_ = indicatorsCmd.Flags().Set("format", "text")
	_ = crashesCmd.Flags().Set("json", "false")
	_ = hookDetectComplexityCmd.Flags().Set("input", "")
	_ = rootCmd.PersistentFlags().Set("verbose", "false")
	_ = rootCmd.PersistentFlags().Set("config", "")
}
