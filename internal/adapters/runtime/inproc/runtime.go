package inproc

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/ports"
)

var ErrForeignMethod = errors.New("method was not resolved by this runtime")

// StaticFunc is a Go implementation of a static void method taking one
// nullable string.
type StaticFunc func(arg *string) error

type Runtime struct {
	mu      sync.RWMutex
	classes map[string]*class
}

var _ ports.Runtime = (*Runtime)(nil)

func New() *Runtime {
	return &Runtime{classes: map[string]*class{}}
}

// Define registers fn as a static method on the class at path (slash form),
// creating the class when needed.
func (r *Runtime) Define(path, name, signature string, fn StaticFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.classes[path]
	if !ok {
		c = &class{path: path, methods: map[methodKey]*method{}}
		r.classes[path] = c
	}
	c.methods[methodKey{name: name, signature: signature}] = &method{
		class:     c,
		name:      name,
		signature: signature,
		fn:        fn,
	}
}

// DefineExecute registers fn as the class's static execute(String) method.
func (r *Runtime) DefineExecute(path string, fn StaticFunc) {
	r.Define(path, domain.ExecuteMethodName, domain.ExecuteSignature, fn)
}

func (r *Runtime) FindClass(path string) (ports.Class, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.classes[path]
	if !ok {
		return nil, false
	}
	return c, true
}

func (r *Runtime) GetStaticMethod(cls ports.Class, name string, signature string) (ports.Method, bool) {
	c, ok := cls.(*class)
	if !ok || c == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := c.methods[methodKey{name: name, signature: signature}]
	if !ok {
		return nil, false
	}
	return m, true
}

func (r *Runtime) CallStatic(m ports.Method, arg *string) error {
	resolved, ok := m.(*method)
	if !ok || resolved == nil {
		return ErrForeignMethod
	}
	if err := resolved.fn(arg); err != nil {
		return fmt.Errorf("%s.%s: %w", resolved.class.path, resolved.name, err)
	}
	return nil
}

type methodKey struct {
	name      string
	signature string
}

type class struct {
	path    string
	methods map[methodKey]*method
}

func (c *class) Path() string { return c.path }

type method struct {
	class     *class
	name      string
	signature string
	fn        StaticFunc
}

func (m *method) Name() string      { return m.name }
func (m *method) Signature() string { return m.signature }
