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

const settings = `
[dde]
enabled = true

[dde.runtime]
kind = "inproc"

[FileAssociations.file.1]
extension = ".smoke"
name = "DDEHost.Smoke"
`

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(binaryPath), "ddehost.toml"), []byte(settings), 0o644))
	hive := filepath.Join(home, "classes.toml")

	stdout, stderr, err := runDDEHost(t, binaryPath, home, "--registry-file", hive, "assoc", "register")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "registered\t.smoke\tDDEHost.Smoke")

	data, err := os.ReadFile(hive)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ddeexec")
	assert.Contains(t, string(data), binaryPath)

	stdout, stderr, err = runDDEHost(t, binaryPath, home, "serve", "--loopback", "--send", "[open(smoke)]")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "execute\t[open(smoke)]")
	assert.Contains(t, stdout, "response\tack")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "ddehost-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ddehost")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build ddehost binary: %s", string(output))
	return binaryPath
}

func runDDEHost(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "DDEHOST_LOG_NOCOLOR=true")

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
