package dde

import (
	"fmt"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/logging"
	"github.com/bnema/ddehost/internal/ports"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	DDEML   ports.DDEML
	Windows ports.WindowSystem
	Runtime ports.Runtime
}

// Start brings the DDE feature up when dde.enabled is "true". Nothing is
// touched when it is disabled. Every failure is logged here and returned; the
// caller's process is never affected beyond the feature staying inert.
func Start(settings domain.Settings, deps Dependencies, logger zerolog.Logger) (*Host, error) {
	if !domain.DDEEnabled(settings) {
		logger.Debug().Msg("dde disabled")
		return nil, domain.ErrDisabled
	}

	if deps.DDEML == nil || deps.Windows == nil || deps.Runtime == nil {
		err := fmt.Errorf("start dde: incomplete bindings: %w", domain.ErrUnsupportedPlatform)
		logger.Error().Err(err).Msg("dde feature inactive")
		return nil, err
	}

	bridge, err := Resolve(deps.Runtime, settings, logging.Component(logger, "bridge"))
	if err != nil {
		logger.Error().Err(err).Msg("dde feature inactive")
		return nil, err
	}

	session := NewSession(deps.DDEML, bridge, settings, logging.Component(logger, "session"))
	host := NewHost(deps.Windows, session, domain.WindowClassName(settings), logging.Component(logger, "host"))
	host.Start()

	logger.Info().
		Str("class", bridge.Target().QualifiedClassName).
		Str("window_class", domain.WindowClassName(settings)).
		Msg("dde host started")

	return host, nil
}
