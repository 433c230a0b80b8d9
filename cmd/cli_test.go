package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsFixture = `
[dde]
enabled = true

[dde.server]
name = "Viewer"

[dde.runtime]
kind = "inproc"

[FileAssociations.file.1]
extension = ".foo"
name = "Viewer.Foo"
description = "Foo document"

[FileAssociations.file.2]
extension = ".bar"
name = "Viewer.Bar"
`

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestConfigInitWritesStarterOnce(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "config", "init")
	require.NoError(t, err)
	path := filepath.Join(home, ".ddehost", "ddehost.toml")
	assert.Contains(t, stdout, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "WinRun4J")

	_, _, err = executeCLI(t, home, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = executeCLI(t, home, "config", "init", "--force")
	require.NoError(t, err)
}

func TestAssocListPrintsConfiguredRecords(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeSettingsFixture(home, settingsFixture))

	stdout, _, err := executeCLI(t, home, "assoc", "list")
	require.NoError(t, err)
	assert.Equal(t, "1\t.foo\tViewer.Foo\tFoo document\n2\t.bar\tViewer.Bar\t\n", stdout)

	stdout, _, err = executeCLI(t, home, "assoc", "list", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, `"extension": ".bar"`)
}

func TestAssocListMissingNameFails(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeSettingsFixture(home, `
[FileAssociations.file.1]
extension = ".foo"
`))

	_, _, err := executeCLI(t, home, "assoc", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required association field")
}

func TestAssocRegisterStatusUnregister(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeSettingsFixture(home, settingsFixture))
	hive := filepath.Join(home, "hive.toml")

	stdout, _, err := executeCLI(t, home, "--registry-file", hive, "assoc", "register")
	require.NoError(t, err)
	assert.Equal(t, "registered\t.foo\tViewer.Foo\nregistered\t.bar\tViewer.Bar\n", stdout)

	stdout, _, err = executeCLI(t, home, "--registry-file", hive, "assoc", "status", "--json")
	require.NoError(t, err)
	var statuses []statusJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &statuses))
	require.Len(t, statuses, 2)
	for _, s := range statuses {
		assert.True(t, s.Current, s.Extension)
		assert.Equal(t, "Viewer", s.Application)
		assert.Equal(t, "system", s.Topic)
	}

	stdout, _, err = executeCLI(t, home, "--registry-file", hive, "assoc", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[registered]")
	assert.Contains(t, stdout, "registry: "+hive)

	stdout, _, err = executeCLI(t, home, "--registry-file", hive, "assoc", "unregister")
	require.NoError(t, err)
	assert.Equal(t, "unregistered\t.foo\tViewer.Foo\nunregistered\t.bar\tViewer.Bar\n", stdout)

	stdout, _, err = executeCLI(t, home, "--registry-file", hive, "assoc", "status", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(stdout), &statuses))
	for _, s := range statuses {
		assert.True(t, s.ExtensionKey, s.Extension)
		assert.False(t, s.ProgIDKey, s.Extension)
		assert.False(t, s.Current, s.Extension)
	}
}

func TestServeDisabledIsNoop(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeSettingsFixture(home, "[dde]\nenabled = false\n"))

	stdout, _, err := executeCLI(t, home, "serve", "--loopback")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dde disabled")
}

func TestServeLoopbackDeliversExecutes(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeSettingsFixture(home, settingsFixture))

	stdout, stderr, err := executeCLI(t, home,
		"serve", "--loopback",
		"--send", `[open("C:\docs\a.foo")]`,
		"--send", "",
	)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "execute\t[open(\"C:\\docs\\a.foo\")]\n")
	assert.Contains(t, stdout, "execute\t<null>\n")
	assert.Contains(t, stdout, "response\tack\n")
	assert.Contains(t, stderr, "Starting DDE server")
}

func TestServeSendRequiresLoopback(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "serve", "--send", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--send requires --loopback")
}

func TestServeReportsMissingCallbackClass(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeSettingsFixture(home, `
[dde]
enabled = true

[dde.runtime]
kind = "exec"
root = "`+filepath.ToSlash(home)+`"
`))

	_, _, err := executeCLI(t, home, "serve", "--loopback")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "callback class not found")
}

func TestUnknownRuntimeIsRejected(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeSettingsFixture(home, "[dde]\nenabled = true\n[dde.runtime]\nkind = \"jvm\"\n"))

	_, _, err := executeCLI(t, home, "serve", "--loopback")
	require.ErrorIs(t, err, errUnknownRuntime)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "--log-level", "loud", "assoc", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSettingsFixture(home, contents string) error {
	configDir := filepath.Join(home, ".ddehost")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, "ddehost.toml"), []byte(contents), 0o644)
}
