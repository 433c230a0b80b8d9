package dde

import (
	"errors"
	"testing"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/ports/mocks"
	"github.com/bnema/ddehost/internal/testutil/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClass string

func (c fakeClass) Path() string { return string(c) }

type fakeMethod string

func (m fakeMethod) Name() string      { return string(m) }
func (m fakeMethod) Signature() string { return domain.ExecuteSignature }

func TestClassPathTranslatesDots(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a/b/Handler", ClassPath("a.b.Handler"))
	assert.Equal(t, "Handler", ClassPath("Handler"))
	assert.Equal(t, "org/boris/winrun4j/DDE", ClassPath(domain.DefaultCallbackClass))
}

func TestResolveLooksUpSlashPath(t *testing.T) {
	t.Parallel()

	rt := mocks.NewMockRuntime(t)
	rt.EXPECT().FindClass("a/b/Handler").Return(fakeClass("a/b/Handler"), true).Once()
	rt.EXPECT().GetStaticMethod(fakeClass("a/b/Handler"), "execute", domain.ExecuteSignature).Return(fakeMethod("execute"), true).Once()

	bridge, err := Resolve(rt, domain.MapSettings{domain.KeyDDEClass: "a.b.Handler"}, testlog.New(t))
	require.NoError(t, err)
	assert.Equal(t, "a.b.Handler", bridge.Target().QualifiedClassName)
}

func TestResolveUsesDefaultClass(t *testing.T) {
	t.Parallel()

	rt := mocks.NewMockRuntime(t)
	rt.EXPECT().FindClass("org/boris/winrun4j/DDE").Return(nil, false).Once()

	_, err := Resolve(rt, domain.MapSettings{}, testlog.New(t))
	require.ErrorIs(t, err, domain.ErrClassNotFound)
	assert.NotErrorIs(t, err, domain.ErrMethodNotFound)
}

func TestResolveMissingMethod(t *testing.T) {
	t.Parallel()

	rt := mocks.NewMockRuntime(t)
	rt.EXPECT().FindClass("a/Handler").Return(fakeClass("a/Handler"), true).Once()
	rt.EXPECT().GetStaticMethod(fakeClass("a/Handler"), "execute", domain.ExecuteSignature).Return(nil, false).Once()

	_, err := Resolve(rt, domain.MapSettings{domain.KeyDDEClass: "a.Handler"}, testlog.New(t))
	require.ErrorIs(t, err, domain.ErrMethodNotFound)
	assert.NotErrorIs(t, err, domain.ErrClassNotFound)
}

func TestInvokeSwallowsRuntimeErrors(t *testing.T) {
	t.Parallel()

	rt := mocks.NewMockRuntime(t)
	rt.EXPECT().FindClass("a/Handler").Return(fakeClass("a/Handler"), true).Once()
	rt.EXPECT().GetStaticMethod(fakeClass("a/Handler"), "execute", domain.ExecuteSignature).Return(fakeMethod("execute"), true).Once()

	text := "open"
	rt.EXPECT().CallStatic(fakeMethod("execute"), &text).Return(errors.New("exception in callback")).Once()
	rt.EXPECT().CallStatic(fakeMethod("execute"), (*string)(nil)).Return(nil).Once()

	bridge, err := Resolve(rt, domain.MapSettings{domain.KeyDDEClass: "a.Handler"}, testlog.New(t))
	require.NoError(t, err)

	assert.NotPanics(t, func() { bridge.Invoke(&text) })
	bridge.Invoke(nil)
}
