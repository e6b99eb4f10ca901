// Package config provides centralized configuration for complexity-hook.
// All default values should be defined here to ensure a single source of truth.
package config

const (
	// ConfigName is the config file base name (.complexity-hook.yaml)
	ConfigName = ".complexity-hook"

	// EnvPrefix is the prefix for environment overrides, e.g. COMPLEXITY_HOOK_LOG_LEVEL
	EnvPrefix = "COMPLEXITY_HOOK"

	// ProjectDir is the per-project directory searched before $HOME
	ProjectDir = ".complexity-hook"
)

// Logging defaults
const (
	DefaultLogLevel      = "info"
	DefaultLogMaxSizeMB  = 5
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 14
)

// Envelope paths. The first matches the tool invocation envelope, the second
// the UserPromptSubmit envelope.
const (
	PathToolInputMessage = "tool_input.message"
	PathPrompt           = "prompt"
)

// DefaultMessagePaths returns the gjson paths searched for the prompt text.
func DefaultMessagePaths() []string {
	return []string{PathToolInputMessage, PathPrompt}
}
