package dde

import (
	"fmt"
	"strings"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/ports"
	"github.com/rs/zerolog"
)

// Bridge forwards execute strings to one resolved static method.
type Bridge struct {
	runtime ports.Runtime
	target  domain.CallbackTarget
	method  ports.Method
	logger  zerolog.Logger
}

var _ ports.Invoker = (*Bridge)(nil)

// ClassPath converts a dotted class name to the runtime's slash form.
func ClassPath(dotted string) string {
	return strings.ReplaceAll(dotted, ".", "/")
}

// Resolve finds the configured class (or the default) and its static
// execute(String) method.
func Resolve(rt ports.Runtime, settings domain.Settings, logger zerolog.Logger) (*Bridge, error) {
	target := domain.NewCallbackTarget(domain.CallbackClassName(settings))
	path := ClassPath(target.QualifiedClassName)

	class, ok := rt.FindClass(path)
	if !ok || class == nil {
		return nil, fmt.Errorf("find class %q: %w", path, domain.ErrClassNotFound)
	}

	method, ok := rt.GetStaticMethod(class, target.MethodName, target.Signature)
	if !ok || method == nil {
		return nil, fmt.Errorf("find static method %s%s on %q: %w", target.MethodName, target.Signature, path, domain.ErrMethodNotFound)
	}

	return &Bridge{runtime: rt, target: target, method: method, logger: logger}, nil
}

func (b *Bridge) Target() domain.CallbackTarget {
	return b.target
}

// Invoke calls the target synchronously. Failures inside the runtime are
// logged, never returned to the protocol layer.
func (b *Bridge) Invoke(text *string) {
	if err := b.runtime.CallStatic(b.method, text); err != nil {
		b.logger.Warn().
			Err(err).
			Str("class", b.target.QualifiedClassName).
			Str("method", b.target.MethodName).
			Msg("execute callback failed")
	}
}
