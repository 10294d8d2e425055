package main

import (
	"bytes"
	"strings"
	"testing"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, args []string, configPath string) cliResult {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	fullArgs := append([]string{}, args...)
	if configPath != "" {
		fullArgs = append(fullArgs, "--config", configPath)
	}
	cmd.SetArgs(fullArgs)

	err := cmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected output to contain %q, got:\n%s", substr, output)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected output to omit %q, got:\n%s", substr, output)
	}
}
