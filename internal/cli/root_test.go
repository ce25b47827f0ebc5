package cli

import (
	"strings"
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	cmd := NewRootCmd("test")
	for _, name := range []string{"generate", "resolve", "metadata", "version"} {
		found, _, err := cmd.Find([]string{name})
		if err != nil || found.Name() != name {
			t.Fatalf("expected %q subcommand, got %v (err=%v)", name, found, err)
		}
	}
}

func TestRootCommandWithoutArgsPrintsHelp(t *testing.T) {
	out, _, err := executeRoot(t)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "robots.txt") || !strings.Contains(out, "generate") {
		t.Fatalf("expected help output, got: %s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := executeRoot(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "test" {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestVersionCommandDefaultsToDev(t *testing.T) {
	cmd := newVersionCmd("")
	buf := &strings.Builder{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "dev" {
		t.Fatalf("unexpected version output %q", buf.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "INFO", "warn", "warning", "error", ""} {
		if _, err := parseLogLevel(level); err != nil {
			t.Fatalf("parseLogLevel(%q) error = %v", level, err)
		}
	}
	if _, err := parseLogLevel("verbose"); err == nil {
		t.Fatalf("expected invalid level error")
	}
}

func TestInvalidLogLevelIsUsageError(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	_, _, err := executeRoot(t, "--log-level", "loud", "generate", "--public", dir, "--no-host", "--no-sitemap")
	if err == nil {
		t.Fatalf("expected log level error")
	}
	if got := ExitCode(err); got != exitUsage {
		t.Fatalf("ExitCode() = %d, want %d", got, exitUsage)
	}
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	_, _, err := executeRoot(t, "generate", "--no-such-flag")
	if got := ExitCode(err); got != exitUsage {
		t.Fatalf("ExitCode() = %d, want %d (err=%v)", got, exitUsage, err)
	}
}
