package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func resetCrashContext(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	globalContext = &CrashContext{crashDir: dir}
	var buf bytes.Buffer
	crashOutput = &buf
	t.Cleanup(func() {
		globalContext = &CrashContext{}
		crashOutput = os.Stderr
		exit = os.Exit
	})
	return dir
}

func TestCrashHandler_SetContext(t *testing.T) {
	resetCrashContext(t)

	SetCrashDir("/tmp/test-complexity-hook")
	SetVersion("1.0.0-test")
	SetCommand("hook detect-complexity")
	SetPrompt("  plan the migration  ")

	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	if globalContext.crashDir != "/tmp/test-complexity-hook" {
		t.Errorf("Expected crashDir '/tmp/test-complexity-hook', got '%s'", globalContext.crashDir)
	}
	if globalContext.version != "1.0.0-test" {
		t.Errorf("Expected version '1.0.0-test', got '%s'", globalContext.version)
	}
	if globalContext.command != "hook detect-complexity" {
		t.Errorf("Expected command 'hook detect-complexity', got '%s'", globalContext.command)
	}
	if globalContext.prompt != "plan the migration" {
		t.Errorf("Expected trimmed prompt, got '%s'", globalContext.prompt)
	}
}

func TestCrashHandler_SetPrompt_Truncation(t *testing.T) {
	resetCrashContext(t)

	SetPrompt(strings.Repeat("a", 3000))

	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	if len(globalContext.prompt) > 2100 {
		t.Errorf("Expected prompt to be truncated, got length %d", len(globalContext.prompt))
	}
	if !strings.Contains(globalContext.prompt, "[truncated]") {
		t.Error("Expected truncated prompt to contain '[truncated]'")
	}
}

func TestCrashHandler_CreateCrashLog(t *testing.T) {
	resetCrashContext(t)
	SetVersion("1.0.0")
	SetCommand("analyze")
	SetPrompt("compare the approaches")

	log := createCrashLog("test panic")

	if log.PanicValue != "test panic" {
		t.Errorf("Expected PanicValue 'test panic', got '%s'", log.PanicValue)
	}
	if log.Version != "1.0.0" {
		t.Errorf("Expected Version '1.0.0', got '%s'", log.Version)
	}
	if log.Prompt != "compare the approaches" {
		t.Errorf("Expected Prompt, got '%s'", log.Prompt)
	}
	if log.StackTrace == "" {
		t.Error("Expected non-empty StackTrace")
	}
}

func TestCrashHandler_FormatCrashLog(t *testing.T) {
	log := CrashLog{
		Timestamp:  time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		Version:    "1.0.0",
		Command:    "hook detect-complexity",
		PanicValue: "nil pointer dereference",
		StackTrace: "goroutine 1 [running]:\nmain.main()\n",
		Prompt:     "plan it",
		GoVersion:  "go1.24",
		OS:         "linux",
		Arch:       "amd64",
	}

	out := formatCrashLog(log)
	for _, want := range []string{
		"COMPLEXITY-HOOK CRASH LOG",
		"Version:   1.0.0",
		"Command:   hook detect-complexity",
		"nil pointer dereference",
		"PROMPT",
		"plan it",
		"END OF CRASH LOG",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected crash log to contain %q", want)
		}
	}
}

func TestHandlePanic_ExitsWithGivenCode(t *testing.T) {
	dir := resetCrashContext(t)
	var gotCode = -1
	exit = func(code int) { gotCode = code }

	func() {
		defer HandlePanic(0)
		panic("boom")
	}()

	if gotCode != 0 {
		t.Errorf("Expected exit code 0, got %d", gotCode)
	}
	logs, err := listCrashLogs(dir)
	if err != nil {
		t.Fatalf("listCrashLogs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("Expected 1 crash log, got %d", len(logs))
	}
	content, err := os.ReadFile(logs[0])
	if err != nil {
		t.Fatalf("read crash log: %v", err)
	}
	if !strings.Contains(string(content), "boom") {
		t.Error("Expected crash log to contain panic value")
	}
}

func TestHandlePanic_NoPanicDoesNotExit(t *testing.T) {
	resetCrashContext(t)
	exited := false
	exit = func(int) { exited = true }

	func() {
		defer HandlePanic(0)
	}()

	if exited {
		t.Error("HandlePanic must not exit without a panic")
	}
}

func TestCleanOldCrashLogs(t *testing.T) {
	dir := resetCrashContext(t)

	for i := 0; i < MaxCrashLogs+3; i++ {
		name := fmt.Sprintf("crash_20250101_0000%02d.000.log", i)
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := cleanOldCrashLogs(dir); err != nil {
		t.Fatalf("cleanOldCrashLogs: %v", err)
	}

	logs, err := ListCrashLogs()
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != MaxCrashLogs-1 {
		t.Errorf("Expected %d logs to remain, got %d", MaxCrashLogs-1, len(logs))
	}
	if filepath.Base(logs[0]) != "crash_20250101_000004.000.log" {
		t.Errorf("Expected oldest logs removed first, first remaining is %s", filepath.Base(logs[0]))
	}
	if _, err := os.Stat(filepath.Join(dir, "other.txt")); err != nil {
		t.Error("Non crash files must be left alone")
	}
}
