package dde

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/ports"
	"github.com/rs/zerolog"
)

// Host runs the hidden window and its message loop on one locked OS thread.
// It is the only caller of the session's lifecycle methods.
type Host struct {
	windows     ports.WindowSystem
	session     *Session
	windowClass string
	logger      zerolog.Logger

	startOnce sync.Once
	started   atomic.Bool
	ready     chan struct{}
	done      chan struct{}

	// written by the loop goroutine before ready/done close
	window ports.Window
	err    error
}

func NewHost(windows ports.WindowSystem, session *Session, windowClass string, logger zerolog.Logger) *Host {
	if windowClass == "" {
		windowClass = domain.DefaultWindowClass
	}

	return &Host{
		windows:     windows,
		session:     session,
		windowClass: windowClass,
		logger:      logger,
		ready:       make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start spawns the loop goroutine. Later calls are no-ops and return false.
func (h *Host) Start() bool {
	started := false
	h.startOnce.Do(func() {
		started = true
		h.started.Store(true)
		go h.run()
	})
	return started
}

func (h *Host) run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(h.done)

	if err := h.windows.RegisterClass(h.windowClass); err != nil {
		h.err = fmt.Errorf("register window class %q: %w: %w", h.windowClass, domain.ErrWindowClassRegistration, err)
		h.logger.Error().Err(err).Str("class", h.windowClass).Msg("could not register dde window class")
		return
	}

	if err := h.session.Initialize(); err != nil {
		h.err = err
		return
	}
	defer h.session.Shutdown()

	h.session.RegisterService()

	window, err := h.windows.CreateWindow(h.windowClass, domain.DefaultWindowTitle)
	if err != nil {
		h.err = fmt.Errorf("create dde window: %w", err)
		h.logger.Error().Err(err).Msg("could not create dde window")
		return
	}
	defer func() {
		if err := window.Destroy(); err != nil {
			h.logger.Warn().Err(err).Msg("destroy dde window")
		}
	}()

	h.window = window
	close(h.ready)

	if err := window.Loop(); err != nil {
		h.err = fmt.Errorf("dde message loop: %w", err)
		h.logger.Error().Err(err).Msg("dde message loop ended")
	}
}

// Ready is closed once the service is registered and the window exists.
func (h *Host) Ready() <-chan struct{} {
	return h.ready
}

// Done is closed when the loop goroutine has exited and torn the session down.
func (h *Host) Done() <-chan struct{} {
	return h.done
}

// Err reports why the loop goroutine exited. Valid after Done is closed.
func (h *Host) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

func (h *Host) Session() *Session {
	return h.session
}

// Stop asks the loop to quit and waits for teardown on the loop thread.
func (h *Host) Stop(ctx context.Context) error {
	if !h.started.Load() {
		return nil
	}

	select {
	case <-h.ready:
		if err := h.window.Quit(); err != nil {
			return fmt.Errorf("post quit to dde window: %w", err)
		}
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
