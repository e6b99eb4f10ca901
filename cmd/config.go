package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/josephgoksu/complexity-hook/internal/config"
	"github.com/josephgoksu/complexity-hook/internal/logger"
	"github.com/josephgoksu/complexity-hook/types"
	"github.com/spf13/viper"
)

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// It's okay if .env file doesn't exist.
	_ = godotenv.Load()

	// Env handling must be set up before reading the config file.
	config.ConfigureEnv()
	config.SetDefaults()

	cfgFileFlag := viper.GetString("config")
	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		if info, err := os.Stat(config.ProjectDir); err == nil && info.IsDir() {
			viper.AddConfigPath(config.ProjectDir) // ./.complexity-hook/.complexity-hook.yaml
		}
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home) // $HOME/.complexity-hook.yaml
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(config.ConfigName)
	}

	// Config problems are reported but never fatal: the hook must keep advising.
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
		}
	} else if cfgFileFlag != "" || viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
	}
}

// loadAppConfig returns the validated config, or the defaults when it is invalid.
func loadAppConfig(stderr io.Writer) types.AppConfig {
	cfg, err := config.Load()
	if err != nil {
		LogError(stderr, "falling back to default config", err)
		cfg = config.Defaults()
		cfg.Crash.Dir = config.GetCrashLogDir()
	}
	cfg.Verbose = viper.GetBool("verbose")
	logger.SetCrashDir(cfg.Crash.Dir)
	return cfg
}

// newLogger builds the diagnostic logger, degrading to a no-op on failure.
func newLogger(cfg types.AppConfig, stderr io.Writer) *logger.Logger {
	l, err := logger.New(cfg.Log, cfg.Verbose, stderr)
	if err != nil {
		LogError(stderr, "file logging disabled", err)
		l, _ = logger.New(types.LogConfig{Level: cfg.Log.Level}, cfg.Verbose, stderr)
	}
	return l
}
