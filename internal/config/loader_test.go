package config

import (
	"path/filepath"
	"testing"

	"github.com/josephgoksu/complexity-hook/types"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withGlobalDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig := GetGlobalConfigDir
	GetGlobalConfigDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { GetGlobalConfigDir = orig })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	dir := withGlobalDir(t)
	SetDefaults()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, []string{"tool_input.message", "prompt"}, cfg.Hook.MessagePaths)
	assert.True(t, cfg.Hook.Advisory)
	assert.Equal(t, filepath.Join(dir, "crash_logs"), cfg.Crash.Dir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	withGlobalDir(t)
	t.Setenv("COMPLEXITY_HOOK_LOG_LEVEL", "debug")
	t.Setenv("COMPLEXITY_HOOK_HOOK_ADVISORY", "false")
	ConfigureEnv()
	SetDefaults()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Hook.Advisory)
}

func TestLoad_RelativeLogFileResolvesUnderGlobalDir(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	dir := withGlobalDir(t)
	SetDefaults()
	viper.Set("log.file", "hook.log")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "hook.log"), cfg.Log.File)
}

func TestLoad_InvalidLevel(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	withGlobalDir(t)
	SetDefaults()
	viper.Set("log.level", "chatty")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.AppConfig)
		wantErr bool
	}{
		{"defaults", func(*types.AppConfig) {}, false},
		{"no message paths", func(c *types.AppConfig) { c.Hook.MessagePaths = nil }, true},
		{"blank message path", func(c *types.AppConfig) { c.Hook.MessagePaths = []string{""} }, true},
		{"negative backups", func(c *types.AppConfig) { c.Log.MaxBackups = -1 }, true},
		{"error level", func(c *types.AppConfig) { c.Log.Level = "error" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(&cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetCrashLogDir_ExplicitConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set("crash.dir", "/var/tmp/crashes")

	assert.Equal(t, "/var/tmp/crashes", GetCrashLogDir())
}
