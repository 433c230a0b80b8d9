package application

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tomlregistry "github.com/bnema/ddehost/internal/adapters/registry/toml"
	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/testutil/testlog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, settings domain.Settings) (*AssociationService, *tomlregistry.Store) {
	t.Helper()

	config := viper.New()
	config.Set("registry.path", filepath.Join(t.TempDir(), "classes.toml"))
	store, err := tomlregistry.NewStore(config)
	require.NoError(t, err)

	exe := func() (string, error) { return testExe, nil }
	return NewAssociationService(store, settings, exe, testlog.New(t)), store
}

func twoAssociations() domain.MapSettings {
	return domain.MapSettings{
		"dde.server.name":                     "Viewer",
		"FileAssociations:file.1.extension":   ".foo",
		"FileAssociations:file.1.name":        "Viewer.Foo",
		"FileAssociations:file.1.description": "Foo document",
		"FileAssociations:file.2.extension":   ".bar",
		"FileAssociations:file.2.name":        "Viewer.Bar",
	}
}

func defaultValue(t *testing.T, store *tomlregistry.Store, raw string) string {
	t.Helper()
	value, ok, err := store.DefaultValue(context.Background(), domain.ParseKeyPath(raw))
	require.NoError(t, err, raw)
	require.True(t, ok, raw)
	return value
}

func exists(t *testing.T, store *tomlregistry.Store, raw string) bool {
	t.Helper()
	ok, err := store.KeyExists(context.Background(), domain.ParseKeyPath(raw))
	require.NoError(t, err)
	return ok
}

func TestRegisterWritesClassesRoot(t *testing.T) {
	t.Parallel()

	service, store := newTestService(t, twoAssociations())

	report, err := service.Register(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 2)
	assert.Zero(t, report.Failed())

	assert.Equal(t, "Viewer.Foo", defaultValue(t, store, `.foo`))
	assert.Equal(t, "Foo document", defaultValue(t, store, `Viewer.Foo`))
	assert.Equal(t, testExe, defaultValue(t, store, `Viewer.Foo\DefaultIcon`))
	assert.Equal(t, testExe+` "%1"`, defaultValue(t, store, `Viewer.Foo\shell\Open\command`))
	assert.Equal(t, "%1", defaultValue(t, store, `Viewer.Foo\shell\Open\ddeexec`))
	assert.Equal(t, "Viewer", defaultValue(t, store, `Viewer.Foo\shell\Open\ddeexec\application`))
	assert.Equal(t, domain.DefaultTopicName, defaultValue(t, store, `Viewer.Foo\shell\Open\ddeexec\topic`))

	assert.True(t, exists(t, store, `Viewer.Bar`))
	_, ok, err := store.DefaultValue(context.Background(), domain.KeyPath{"Viewer.Bar"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegisterThenUnregisterLeavesExtensionKey(t *testing.T) {
	t.Parallel()

	service, store := newTestService(t, twoAssociations())
	ctx := context.Background()

	_, err := service.Register(ctx)
	require.NoError(t, err)

	report, err := service.Unregister(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Failed())

	assert.False(t, exists(t, store, `Viewer.Foo`))
	assert.False(t, exists(t, store, `Viewer.Foo\shell\Open\ddeexec`))
	assert.False(t, exists(t, store, `Viewer.Bar`))
	assert.Equal(t, "Viewer.Foo", defaultValue(t, store, `.foo`))
	assert.Equal(t, "Viewer.Bar", defaultValue(t, store, `.bar`))
}

func TestUnregisterAbsentProgIDIsNotAFailure(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(t, twoAssociations())

	report, err := service.Unregister(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 2)
	assert.Zero(t, report.Failed())
}

func TestRegisterStopsAtMissingName(t *testing.T) {
	t.Parallel()

	settings := twoAssociations()
	delete(settings, "FileAssociations:file.2.name")
	service, store := newTestService(t, settings)

	report, err := service.Register(context.Background())
	require.ErrorIs(t, err, domain.ErrMissingRequiredField)
	assert.Len(t, report.Outcomes, 1)
	assert.True(t, exists(t, store, `Viewer.Foo`))
	assert.False(t, exists(t, store, `.bar`))
}

func TestRegisterFailsWithoutExecutablePath(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(t, twoAssociations())
	service.executable = func() (string, error) { return "", errors.New("no module") }

	_, err := service.Register(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolve executable path")
}

func TestStatusTracksRegistration(t *testing.T) {
	t.Parallel()

	service, store := newTestService(t, twoAssociations())
	ctx := context.Background()
	identity := service.Identity()

	statuses, err := service.Status(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.False(t, statuses[0].ExtensionKey)
	assert.False(t, statuses[0].Current(identity))

	_, err = service.Register(ctx)
	require.NoError(t, err)

	statuses, err = service.Status(ctx)
	require.NoError(t, err)
	for _, s := range statuses {
		assert.True(t, s.Current(identity), s.Record.Extension)
	}

	require.NoError(t, store.SetDefaultValue(ctx, domain.ParseKeyPath(`Viewer.Bar\shell\Open\ddeexec\topic`), "other"))
	statuses, err = service.Status(ctx)
	require.NoError(t, err)
	assert.True(t, statuses[0].Current(identity))
	assert.False(t, statuses[1].Current(identity))
	assert.Equal(t, "other", statuses[1].Topic)
}

func TestListDoesNotTouchRegistry(t *testing.T) {
	t.Parallel()

	service, store := newTestService(t, twoAssociations())

	records, err := service.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Viewer.Bar", records[1].DisplayName)
	assert.False(t, exists(t, store, `.foo`))
}
