package dde

import (
	"testing"

	"github.com/bnema/ddehost/internal/adapters/loopback"
	"github.com/bnema/ddehost/internal/adapters/runtime/inproc"
	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/ports/mocks"
	"github.com/bnema/ddehost/internal/testutil/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartDisabledTouchesNothing(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "false", "TRUE", "1"} {
		settings := domain.MapSettings{}
		if value != "" {
			settings[domain.KeyDDEEnabled] = value
		}

		system := loopback.New()
		deps := Dependencies{
			DDEML:   mocks.NewMockDDEML(t),
			Windows: system,
			Runtime: mocks.NewMockRuntime(t),
		}

		host, err := Start(settings, deps, testlog.New(t))
		require.ErrorIs(t, err, domain.ErrDisabled, value)
		assert.Nil(t, host)
		assert.Empty(t, system.Services())
	}
}

func TestStartWithoutBindings(t *testing.T) {
	t.Parallel()

	_, err := Start(domain.MapSettings{domain.KeyDDEEnabled: "true"}, Dependencies{}, testlog.New(t))
	require.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
}

func TestStartUnresolvedCallbackSpawnsNothing(t *testing.T) {
	t.Parallel()

	rt := inproc.New()
	rt.Define(ClassPath(domain.DefaultCallbackClass), "execute", "()V", func(*string) error { return nil })

	deps := Dependencies{DDEML: mocks.NewMockDDEML(t), Windows: loopback.New(), Runtime: rt}

	_, err := Start(domain.MapSettings{domain.KeyDDEEnabled: "true"}, deps, testlog.New(t))
	require.ErrorIs(t, err, domain.ErrMethodNotFound)

	_, err = Start(domain.MapSettings{domain.KeyDDEEnabled: "true", domain.KeyDDEClass: "missing.Handler"}, deps, testlog.New(t))
	require.ErrorIs(t, err, domain.ErrClassNotFound)
}
