package config_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"blogsphere/internal/config"
)

func TestExitfExitsWithCode1(t *testing.T) {
	if os.Getenv("BLOGSPHERE_TEST_EXITF") == "1" {
		config.Exitf("fatal: %s", "store unavailable")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitfExitsWithCode1$")
	cmd.Env = append(os.Environ(), "BLOGSPHERE_TEST_EXITF=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "fatal: store unavailable") {
		t.Fatalf("expected output to contain the message, got %q", string(out))
	}
}
