package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/josephgoksu/complexity-hook/types"
	"github.com/spf13/viper"
)

// validate is a single instance of Validate, it caches struct info
var validate = validator.New()

// ConfigureEnv makes Viper read COMPLEXITY_HOOK_* environment variables.
// Dots in keys map to underscores: log.level -> COMPLEXITY_HOOK_LOG_LEVEL.
func ConfigureEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// SetDefaults registers default values on the global Viper instance.
func SetDefaults() {
	viper.SetDefault("log.level", DefaultLogLevel)
	viper.SetDefault("log.file", "")
	viper.SetDefault("log.max_size_mb", DefaultLogMaxSizeMB)
	viper.SetDefault("log.max_backups", DefaultLogMaxBackups)
	viper.SetDefault("log.max_age_days", DefaultLogMaxAgeDays)
	viper.SetDefault("log.compress", false)

	viper.SetDefault("hook.message_paths", DefaultMessagePaths())
	viper.SetDefault("hook.advisory", true)

	viper.SetDefault("crash.dir", "")
}

// Defaults returns the configuration used when nothing else is available.
// The hook falls back to it when loading fails so it can still advise.
func Defaults() types.AppConfig {
	return types.AppConfig{
		Log: types.LogConfig{
			Level:      DefaultLogLevel,
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
			MaxAgeDays: DefaultLogMaxAgeDays,
		},
		Hook: types.HookConfig{
			MessagePaths: DefaultMessagePaths(),
			Advisory:     true,
		},
	}
}

// Load unmarshals the global Viper state into an AppConfig and validates it.
func Load() (types.AppConfig, error) {
	var cfg types.AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.AppConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Crash.Dir == "" {
		cfg.Crash.Dir = GetCrashLogDir()
	}
	if cfg.Log.File != "" && !filepath.IsAbs(cfg.Log.File) {
		if dir, err := GetGlobalConfigDir(); err == nil {
			cfg.Log.File = filepath.Join(dir, cfg.Log.File)
		}
	}
	if err := Validate(&cfg); err != nil {
		return types.AppConfig{}, err
	}
	return cfg, nil
}

// Validate performs struct validation on the AppConfig.
func Validate(cfg *types.AppConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
