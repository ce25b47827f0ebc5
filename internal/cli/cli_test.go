package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd("test")
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// isolateEnv clears the environment signals a developer shell may carry.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GATSBY_ACTIVE_ENV", "")
	t.Setenv("NODE_ENV", "")
	t.Setenv("ROBOTSCTL_CONFIG", "")
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
