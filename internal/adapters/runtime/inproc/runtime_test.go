package inproc

import (
	"errors"
	"testing"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type foreignMethod struct{}

func (foreignMethod) Name() string      { return "execute" }
func (foreignMethod) Signature() string { return domain.ExecuteSignature }

func TestRuntimeResolvesDefinedExecute(t *testing.T) {
	t.Parallel()

	var got []*string
	rt := New()
	rt.DefineExecute("a/b/Handler", func(arg *string) error {
		got = append(got, arg)
		return nil
	})

	cls, ok := rt.FindClass("a/b/Handler")
	require.True(t, ok)
	assert.Equal(t, "a/b/Handler", cls.Path())

	_, ok = rt.FindClass("a.b.Handler")
	assert.False(t, ok)

	method, ok := rt.GetStaticMethod(cls, domain.ExecuteMethodName, domain.ExecuteSignature)
	require.True(t, ok)
	assert.Equal(t, "execute", method.Name())

	_, ok = rt.GetStaticMethod(cls, domain.ExecuteMethodName, "()V")
	assert.False(t, ok)

	text := "open"
	require.NoError(t, rt.CallStatic(method, &text))
	require.NoError(t, rt.CallStatic(method, nil))
	require.Len(t, got, 2)
	assert.Equal(t, "open", *got[0])
	assert.Nil(t, got[1])
}

func TestRuntimeWrapsCallbackErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	rt := New()
	rt.DefineExecute("a/Handler", func(*string) error { return boom })

	cls, _ := rt.FindClass("a/Handler")
	method, _ := rt.GetStaticMethod(cls, domain.ExecuteMethodName, domain.ExecuteSignature)

	err := rt.CallStatic(method, nil)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "a/Handler.execute")

	require.ErrorIs(t, rt.CallStatic(foreignMethod{}, nil), ErrForeignMethod)
}
