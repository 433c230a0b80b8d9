// Package loopback is an in-process protocol subsystem and window system.
// Client calls are queued onto the thread running the window loop and the
// registered handler answers them there, one message at a time.
package loopback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/ports"
)

var (
	ErrNoServer        = errors.New("no dde server registered for service")
	ErrClassExists     = errors.New("window class already registered")
	ErrUnknownClass    = errors.New("window class not registered")
	ErrUnknownHandle   = errors.New("unknown string handle")
	ErrUnknownInstance = errors.New("unknown dde instance")
)

const queueSize = 64

type Option func(*System)

// WithRegisterClassError makes RegisterClass fail with err.
func WithRegisterClassError(err error) Option {
	return func(s *System) {
		s.registerClassErr = err
	}
}

// WithInitCode makes Initialize fail with the given subsystem code.
func WithInitCode(code uint32) Option {
	return func(s *System) {
		s.initCode = code
	}
}

type System struct {
	mu sync.Mutex

	queue chan func()
	gone  chan struct{}

	registerClassErr error
	initCode         uint32

	classes    map[string]struct{}
	handler    ports.MessageHandler
	instance   ports.Instance
	nextHandle ports.StringHandle
	handles    map[ports.StringHandle]string
	services   map[ports.StringHandle]struct{}
	goneOnce   sync.Once
}

var (
	_ ports.DDEML        = (*System)(nil)
	_ ports.WindowSystem = (*System)(nil)
)

func New(opts ...Option) *System {
	s := &System{
		queue:    make(chan func(), queueSize),
		gone:     make(chan struct{}),
		classes:  map[string]struct{}{},
		handles:  map[ports.StringHandle]string{},
		services: map[ports.StringHandle]struct{}{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *System) RegisterClass(name string) error {
	if s.registerClassErr != nil {
		return s.registerClassErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.classes[name]; ok {
		return fmt.Errorf("%q: %w", name, ErrClassExists)
	}
	s.classes[name] = struct{}{}
	return nil
}

func (s *System) CreateWindow(className string, title string) (ports.Window, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.classes[className]; !ok {
		return nil, fmt.Errorf("%q: %w", className, ErrUnknownClass)
	}

	return &window{system: s, title: title, quit: make(chan struct{})}, nil
}

func (s *System) Initialize(handler ports.MessageHandler) (ports.Instance, error) {
	if s.initCode != 0 {
		return 0, &domain.InitError{Code: s.initCode}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.handler = handler
	s.instance = 1
	return s.instance, nil
}

func (s *System) CreateStringHandle(inst ports.Instance, value string) (ports.StringHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkInstance(inst); err != nil {
		return 0, err
	}
	s.nextHandle++
	s.handles[s.nextHandle] = value
	return s.nextHandle, nil
}

func (s *System) FreeStringHandle(inst ports.Instance, handle ports.StringHandle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkInstance(inst); err != nil {
		return err
	}
	if _, ok := s.handles[handle]; !ok {
		return ErrUnknownHandle
	}
	delete(s.handles, handle)
	delete(s.services, handle)
	return nil
}

func (s *System) NameService(inst ports.Instance, service ports.StringHandle, register bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkInstance(inst); err != nil {
		return err
	}
	if _, ok := s.handles[service]; !ok {
		return ErrUnknownHandle
	}
	if register {
		s.services[service] = struct{}{}
	} else {
		delete(s.services, service)
	}
	return nil
}

func (s *System) Uninitialize(inst ports.Instance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkInstance(inst); err != nil {
		return err
	}
	s.handler = nil
	s.instance = 0
	s.services = map[ports.StringHandle]struct{}{}
	s.goneOnce.Do(func() { close(s.gone) })
	return nil
}

func (s *System) checkInstance(inst ports.Instance) error {
	if inst == 0 || inst != s.instance {
		return ErrUnknownInstance
	}
	return nil
}

// Services lists the currently advertised service names.
func (s *System) Services() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.services))
	for h := range s.services {
		out = append(out, s.handles[h])
	}
	return out
}

// LiveHandles counts string handles not yet freed.
func (s *System) LiveHandles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

func (s *System) advertises(service string) bool {
	for h := range s.services {
		if strings.EqualFold(s.handles[h], service) {
			return true
		}
	}
	return false
}

// Dial connects to an advertised service. Unadvertised names are filtered
// before reaching the server, as DDEML does by default.
func (s *System) Dial(ctx context.Context, service, topic string) (*Conversation, error) {
	s.mu.Lock()
	ok := s.handler != nil && s.advertises(service)
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("connect %q: %w", service, ErrNoServer)
	}

	resp, err := s.Send(ctx, domain.Message{Kind: domain.MessageConnect, Service: service, Topic: topic})
	if err != nil {
		return nil, err
	}
	if resp != domain.ResponseAccept {
		return nil, fmt.Errorf("connect %q/%q refused", service, topic)
	}

	return &Conversation{system: s, service: service, topic: topic}, nil
}

// Send delivers a raw message to the handler on the loop thread and waits for
// its response.
func (s *System) Send(ctx context.Context, msg domain.Message) (domain.Response, error) {
	s.mu.Lock()
	handler := s.handler
	s.mu.Unlock()
	if handler == nil {
		return domain.ResponseNone, ErrNoServer
	}

	reply := make(chan domain.Response, 1)
	select {
	case s.queue <- func() { reply <- handler.OnProtocolMessage(msg) }:
	case <-s.gone:
		return domain.ResponseNone, ErrNoServer
	case <-ctx.Done():
		return domain.ResponseNone, ctx.Err()
	}

	select {
	case resp := <-reply:
		return resp, nil
	case <-s.gone:
		select {
		case resp := <-reply:
			return resp, nil
		default:
			return domain.ResponseNone, ErrNoServer
		}
	case <-ctx.Done():
		return domain.ResponseNone, ctx.Err()
	}
}

type Conversation struct {
	system  *System
	service string
	topic   string
}

func (c *Conversation) Execute(ctx context.Context, payload []byte) (domain.Response, error) {
	return c.system.Send(ctx, domain.Message{
		Kind:    domain.MessageExecute,
		Service: c.service,
		Topic:   c.topic,
		Data:    domain.BytesPayload(payload),
	})
}

type window struct {
	system   *System
	title    string
	quit     chan struct{}
	quitOnce sync.Once
}

func (w *window) Loop() error {
	for {
		select {
		case fn := <-w.system.queue:
			fn()
		case <-w.quit:
			return nil
		}
	}
}

func (w *window) Quit() error {
	w.quitOnce.Do(func() { close(w.quit) })
	return nil
}

func (w *window) Destroy() error {
	return w.Quit()
}
