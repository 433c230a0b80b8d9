package dde

import (
	"errors"
	"fmt"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateServiceRegistered
	StateShutDown
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateServiceRegistered:
		return "service_registered"
	case StateShutDown:
		return "shut_down"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type Stats struct {
	ConnectsAccepted int
	ConnectsRejected int
	Executes         int
}

// Session owns the server identity, the subsystem instance, both string
// handles and the execute buffer. Only the loop thread may call its methods
// after construction.
type Session struct {
	ddeml       ports.DDEML
	invoker     ports.Invoker
	settings    domain.Settings
	fallThrough bool
	logger      zerolog.Logger

	state    State
	identity domain.ServerIdentity
	instance ports.Instance
	service  ports.StringHandle
	topic    ports.StringHandle
	buffer   domain.ExecuteBuffer
	stats    Stats
}

var _ ports.MessageHandler = (*Session)(nil)

func NewSession(ddeml ports.DDEML, invoker ports.Invoker, settings domain.Settings, logger zerolog.Logger) *Session {
	return &Session{
		ddeml:       ddeml,
		invoker:     invoker,
		settings:    settings,
		fallThrough: domain.ConnectFallThrough(settings),
		logger:      logger,
	}
}

// Initialize starts the protocol subsystem with the session as its single
// callback entry point.
func (s *Session) Initialize() error {
	if s.state != StateUninitialized {
		return fmt.Errorf("initialize session in state %s: %w", s.state, domain.ErrDdeInit)
	}

	inst, err := s.ddeml.Initialize(s)
	if err != nil {
		s.logger.Error().Err(err).Msg("unable to initialize dde")
		return err
	}

	s.instance = inst
	s.state = StateInitialized
	return nil
}

// RegisterService derives the identity from settings and advertises it. A
// failed advertisement is logged and otherwise ignored.
func (s *Session) RegisterService() {
	if s.state != StateInitialized {
		s.logger.Warn().Stringer("state", s.state).Msg("register service skipped")
		return
	}

	s.identity = domain.IdentityFrom(s.settings)

	service, err := s.ddeml.CreateStringHandle(s.instance, s.identity.ServiceName)
	if err != nil {
		s.logger.Warn().Err(err).Str("service", s.identity.ServiceName).Msg("create service string handle")
	}
	topic, err := s.ddeml.CreateStringHandle(s.instance, s.identity.TopicName)
	if err != nil {
		s.logger.Warn().Err(err).Str("topic", s.identity.TopicName).Msg("create topic string handle")
	}
	s.service = service
	s.topic = topic

	if err := s.ddeml.NameService(s.instance, s.service, true); err != nil {
		s.logger.Warn().Err(err).Str("service", s.identity.ServiceName).Msg("name service registration reported failure")
	}

	s.state = StateServiceRegistered
	s.logger.Info().
		Str("service", s.identity.ServiceName).
		Str("topic", s.identity.TopicName).
		Bool("connect_fallthrough", s.fallThrough).
		Msg("dde service registered")
}

// Shutdown releases the string handles and uninitializes the subsystem. It is
// safe after a partial or failed initialization and on repeated calls.
func (s *Session) Shutdown() {
	if s.state == StateShutDown {
		return
	}

	var errs []error
	if s.service != 0 {
		errs = append(errs, s.ddeml.FreeStringHandle(s.instance, s.service))
		s.service = 0
	}
	if s.topic != 0 {
		errs = append(errs, s.ddeml.FreeStringHandle(s.instance, s.topic))
		s.topic = 0
	}
	if s.instance != 0 {
		errs = append(errs, s.ddeml.Uninitialize(s.instance))
		s.instance = 0
	}

	if err := errors.Join(errs...); err != nil {
		s.logger.Warn().Err(err).Msg("dde shutdown")
	}

	s.state = StateShutDown
	s.logger.Info().
		Int("connects_accepted", s.stats.ConnectsAccepted).
		Int("connects_rejected", s.stats.ConnectsRejected).
		Int("executes", s.stats.Executes).
		Msg("dde session shut down")
}

// OnProtocolMessage is the callback for every inbound message. A connect that
// does not match the identity continues into execute handling when
// fall-through is enabled; its reply is still a rejection.
func (s *Session) OnProtocolMessage(msg domain.Message) domain.Response {
	switch msg.Kind {
	case domain.MessageConnect:
		if s.identity.Matches(msg.Service, msg.Topic) {
			s.stats.ConnectsAccepted++
			s.logger.Debug().Str("service", msg.Service).Str("topic", msg.Topic).Msg("connect accepted")
			return domain.ResponseAccept
		}

		s.stats.ConnectsRejected++
		s.logger.Debug().Str("service", msg.Service).Str("topic", msg.Topic).Msg("connect rejected")
		if !s.fallThrough {
			return domain.ResponseNone
		}
		s.execute(msg)
		return domain.ResponseNone
	case domain.MessageExecute:
		s.execute(msg)
		return domain.ResponseAck
	default:
		return domain.ResponseNone
	}
}

func (s *Session) execute(msg domain.Message) {
	n := s.buffer.Fill(msg.Data)
	text := s.buffer.Text()
	s.stats.Executes++

	s.logger.Debug().
		Str("request_id", uuid.NewString()).
		Stringer("kind", msg.Kind).
		Int("bytes", n).
		Bool("has_value", text != nil).
		Msg("dispatching execute")

	if s.invoker != nil {
		s.invoker.Invoke(text)
	}
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Identity() domain.ServerIdentity {
	return s.identity
}

func (s *Session) Stats() Stats {
	return s.stats
}
