package toml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const launcherFixture = `
[dde]
enabled = true
class = "com.example.Opener"
topic = "open"

[dde.server]
name = "ExampleApp"

[FileAssociations.file.1]
extension = ".foo"
name = "Example.Foo"
description = "Foo document"

[FileAssociations.file.2]
extension = ".bar"
name = "Example.Bar"
`

func TestLoadResolvesSectionKeys(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ddehost.toml"), []byte(launcherFixture), 0o644))

	settings, err := Load(Options{SearchPaths: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ddehost.toml"), settings.File())

	assert.True(t, domain.DDEEnabled(settings))
	assert.Equal(t, "com.example.Opener", domain.CallbackClassName(settings))
	assert.Equal(t, domain.ServerIdentity{ServiceName: "ExampleApp", TopicName: "open"}, domain.IdentityFrom(settings))
	assert.Equal(t, domain.DefaultWindowClass, domain.WindowClassName(settings))

	ext, ok := settings.Lookup(domain.AssociationKey(1, "extension"))
	require.True(t, ok)
	assert.Equal(t, ".foo", ext)

	_, ok = settings.Lookup(domain.AssociationKey(2, "description"))
	assert.False(t, ok)
	_, ok = settings.Lookup(domain.AssociationKey(3, "extension"))
	assert.False(t, ok)
}

func TestLoadWithoutFileIsEmpty(t *testing.T) {
	settings, err := Load(Options{SearchPaths: []string{t.TempDir()}})
	require.NoError(t, err)
	assert.Empty(t, settings.File())
	assert.False(t, domain.DDEEnabled(settings))
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	_, err := Load(Options{File: filepath.Join(t.TempDir(), "missing.toml")})
	require.Error(t, err)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ddehost.toml"), []byte(launcherFixture), 0o644))
	t.Setenv("DDEHOST_DDE_TOPIC", "override")

	settings, err := Load(Options{SearchPaths: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, "override", domain.IdentityFrom(settings).TopicName)
}

func TestEnabledRequiresLiteralTrue(t *testing.T) {
	t.Parallel()

	assert.False(t, domain.DDEEnabled(FromMap(map[string]any{"dde.enabled": "yes"})))
	assert.False(t, domain.DDEEnabled(FromMap(map[string]any{"dde.enabled": false})))
	assert.True(t, domain.DDEEnabled(FromMap(map[string]any{"dde.enabled": "true"})))
}

func TestWriteStarterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "ddehost.toml")
	require.NoError(t, WriteStarter(path, false))

	settings, err := Load(Options{File: path})
	require.NoError(t, err)
	assert.True(t, domain.DDEEnabled(settings))
	assert.Equal(t, domain.DefaultServiceName, domain.IdentityFrom(settings).ServiceName)
	assert.Equal(t, domain.DefaultRuntime, domain.RuntimeKind(settings))
	assert.True(t, domain.ConnectFallThrough(settings))

	name, ok := settings.Lookup(domain.AssociationKey(1, "name"))
	require.True(t, ok)
	assert.Equal(t, "DDEHost.Sample", name)

	err = WriteStarter(path, false)
	require.ErrorIs(t, err, ErrFileExists)
	require.NoError(t, WriteStarter(path, true))
}
