package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// GetGlobalConfigDir returns the path to the global configuration directory (~/.complexity-hook).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ProjectDir), nil
}

// GetCrashLogDir returns the directory for crash logs.
// Resolution order (first match wins):
// 1. Explicit config via "crash.dir" (Viper/env/flag)
// 2. Global fallback: ~/.complexity-hook/crash_logs
// 3. ./.complexity-hook/crash_logs when the home directory is unknown
func GetCrashLogDir() string {
	if dir := viper.GetString("crash.dir"); dir != "" {
		return dir
	}
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return filepath.Join(ProjectDir, "crash_logs")
	}
	return filepath.Join(dir, "crash_logs")
}
