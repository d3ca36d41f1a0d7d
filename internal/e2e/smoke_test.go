package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeProfilesFixture(home))

	stdout, stderr, err := runOB(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, stdout)

	_, stderr, err = runOB(t, binaryPath, home,
		"token", "set",
		"--name", "home",
		"--value", "s3cret",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runOB(t, binaryPath, home, "bot", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "helper (42)")
	assert.Contains(t, stdout, "friends: 3  groups: 2")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "ob-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ob")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build ob binary: %s", string(output))
	return binaryPath
}

func runOB(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeProfilesFixture(home string) error {
	configDir := filepath.Join(home, ".onebot")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	bots := `version = 1

[[bots]]
id = 42
nickname = "helper"
working_dir = "bots/42"
friends = 3
groups = 2
last_seen = "2026-02-14T11:00:00Z"
`

	return os.WriteFile(filepath.Join(configDir, "bots.toml"), []byte(bots), 0o600)
}
