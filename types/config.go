/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool        `mapstructure:"verbose"`
	Config  string      `mapstructure:"config"`
	Log     LogConfig   `mapstructure:"log" validate:"required"`
	Hook    HookConfig  `mapstructure:"hook" validate:"required"`
	Crash   CrashConfig `mapstructure:"crash"`
}

// LogConfig controls structured diagnostic logging.
// File is empty by default, which disables file logging entirely.
type LogConfig struct {
	Level      string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"min=0,max=1024"`
	MaxBackups int    `mapstructure:"max_backups" validate:"min=0,max=100"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"min=0,max=365"`
	Compress   bool   `mapstructure:"compress"`
}

// HookConfig holds settings for the hook driver
type HookConfig struct {
	// MessagePaths are gjson paths tried in order to find the prompt text in the envelope
	MessagePaths []string `mapstructure:"message_paths" validate:"required,min=1,dive,required"`
	// Advisory toggles the one-line human-readable hint printed when delegating
	Advisory bool `mapstructure:"advisory"`
}

// CrashConfig holds crash log settings
type CrashConfig struct {
	Dir string `mapstructure:"dir"`
}
