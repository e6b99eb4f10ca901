package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

const (
	// MaxCrashLogs is the maximum number of crash logs to keep
	MaxCrashLogs = 10

	crashPrefix = "crash_"
	crashSuffix = ".log"
)

// CrashContext stores context for crash logging.
type CrashContext struct {
	mu       sync.RWMutex
	prompt   string
	command  string
	version  string
	crashDir string
}

// globalContext is the singleton crash context.
var globalContext = &CrashContext{}

// crashOutput receives the user-facing crash notice.
var crashOutput io.Writer = os.Stderr

// exit is swapped in tests.
var exit = os.Exit

// SetCrashDir sets the directory crash logs are written to.
func SetCrashDir(dir string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.crashDir = dir
}

// SetVersion sets the application version for crash logs.
func SetVersion(version string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.version = version
}

// SetCommand sets the current command being executed.
func SetCommand(cmd string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.command = cmd
}

// SetPrompt records the prompt under analysis for crash context.
func SetPrompt(prompt string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.prompt = truncateForLog(strings.TrimSpace(prompt), 2000)
}

func truncateForLog(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "... [truncated]"
}

// CrashLog represents a crash log entry.
type CrashLog struct {
	Timestamp  time.Time `json:"timestamp"`
	Version    string    `json:"version"`
	Command    string    `json:"command"`
	PanicValue string    `json:"panic_value"`
	StackTrace string    `json:"stack_trace"`
	Prompt     string    `json:"prompt,omitempty"`
	GoVersion  string    `json:"go_version"`
	OS         string    `json:"os"`
	Arch       string    `json:"arch"`
}

// HandlePanic is a deferred function that recovers from panics, logs them and
// exits with exitCode. The hook passes 0 so a crash never blocks the caller.
// Usage: defer logger.HandlePanic(0)
func HandlePanic(exitCode int) {
	if r := recover(); r != nil {
		reportPanic(r)
		exit(exitCode)
	}
}

// reportPanic writes the crash log and prints a short notice.
// It returns the crash log path, or "" if writing failed.
func reportPanic(r any) string {
	log := createCrashLog(r)
	path := getCrashLogPath(log.Timestamp)
	if err := writeCrashLog(log); err != nil {
		fmt.Fprintf(crashOutput, "[CRASH] Failed to write crash log: %v\n", err)
		fmt.Fprintf(crashOutput, "[CRASH] Panic: %v\n%s\n", r, log.StackTrace)
		return ""
	}
	fmt.Fprintf(crashOutput, "Complexity detection crashed; crash log saved to %s\n", path)
	return path
}

// createCrashLog creates a CrashLog from a panic value.
func createCrashLog(panicValue any) CrashLog {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	return CrashLog{
		Timestamp:  time.Now(),
		Version:    globalContext.version,
		Command:    globalContext.command,
		PanicValue: fmt.Sprintf("%v", panicValue),
		StackTrace: string(debug.Stack()),
		Prompt:     globalContext.prompt,
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
	}
}

// writeCrashLog writes a crash log to disk.
func writeCrashLog(log CrashLog) error {
	dir := getCrashLogDir()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create crash log dir: %w", err)
	}

	if err := cleanOldCrashLogs(dir); err != nil {
		// Non-fatal, continue with writing
		fmt.Fprintf(crashOutput, "[WARN] Failed to clean old crash logs: %v\n", err)
	}

	if err := os.WriteFile(getCrashLogPath(log.Timestamp), []byte(formatCrashLog(log)), 0644); err != nil {
		return fmt.Errorf("write crash log: %w", err)
	}
	return nil
}

func getCrashLogDir() string {
	globalContext.mu.RLock()
	dir := globalContext.crashDir
	globalContext.mu.RUnlock()

	if dir == "" {
		dir = filepath.Join(".complexity-hook", "crash_logs")
	}
	return dir
}

func getCrashLogPath(t time.Time) string {
	filename := crashPrefix + t.Format("20060102_150405.000") + crashSuffix
	return filepath.Join(getCrashLogDir(), filename)
}

// formatCrashLog formats a CrashLog as human-readable text.
func formatCrashLog(log CrashLog) string {
	var sb strings.Builder
	rule := strings.Repeat("=", 80) + "\n"
	thin := strings.Repeat("-", 80) + "\n"

	sb.WriteString(rule)
	sb.WriteString("COMPLEXITY-HOOK CRASH LOG\n")
	sb.WriteString(rule + "\n")

	sb.WriteString(fmt.Sprintf("Timestamp: %s\n", log.Timestamp.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Version:   %s\n", log.Version))
	sb.WriteString(fmt.Sprintf("Command:   %s\n", log.Command))
	sb.WriteString(fmt.Sprintf("Go:        %s\n", log.GoVersion))
	sb.WriteString(fmt.Sprintf("OS/Arch:   %s/%s\n", log.OS, log.Arch))

	sb.WriteString("\n" + thin + "PANIC VALUE\n" + thin)
	sb.WriteString(log.PanicValue + "\n")

	sb.WriteString("\n" + thin + "STACK TRACE\n" + thin)
	sb.WriteString(log.StackTrace)

	if log.Prompt != "" {
		sb.WriteString("\n" + thin + "PROMPT\n" + thin)
		sb.WriteString(log.Prompt + "\n")
	}

	sb.WriteString("\n" + rule + "END OF CRASH LOG\n" + rule)
	return sb.String()
}

// cleanOldCrashLogs removes old crash logs so at most MaxCrashLogs-1 remain
// before a new one is written.
func cleanOldCrashLogs(dir string) error {
	logs, err := listCrashLogs(dir)
	if err != nil {
		return err
	}
	if len(logs) < MaxCrashLogs {
		return nil
	}

	// os.ReadDir sorts by name and names embed the timestamp, so oldest come first.
	for _, path := range logs[:len(logs)-MaxCrashLogs+1] {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}

// ListCrashLogs returns all crash logs in the crash log directory, oldest first.
func ListCrashLogs() ([]string, error) {
	return listCrashLogs(getCrashLogDir())
}

func listCrashLogs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var logs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), crashPrefix) && strings.HasSuffix(e.Name(), crashSuffix) {
			logs = append(logs, filepath.Join(dir, e.Name()))
		}
	}
	return logs, nil
}
