package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/ports"
	"github.com/rs/zerolog"
)

type Outcome struct {
	Record domain.AssociationRecord
	Err    error
}

type Report struct {
	Outcomes []Outcome
}

func (r Report) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// AssociationStatus is what the classes root currently holds for a record.
type AssociationStatus struct {
	Record         domain.AssociationRecord
	ExtensionKey   bool
	ExtensionValue string
	ProgIDKey      bool
	Application    string
	Topic          string
}

// Current reports whether the stored keys route the extension to identity.
func (s AssociationStatus) Current(identity domain.ServerIdentity) bool {
	return s.ExtensionKey &&
		s.ExtensionValue == s.Record.DisplayName &&
		s.ProgIDKey &&
		s.Application == identity.ServiceName &&
		s.Topic == identity.TopicName
}

type AssociationService struct {
	registry   ports.Registry
	reader     ports.RegistryReader
	settings   domain.Settings
	executable ports.ExecutablePath
	logger     zerolog.Logger
}

func NewAssociationService(store ports.RegistryStore, settings domain.Settings, executable ports.ExecutablePath, logger zerolog.Logger) *AssociationService {
	return &AssociationService{
		registry:   store,
		reader:     store,
		settings:   settings,
		executable: executable,
		logger:     logger,
	}
}

func (s *AssociationService) Identity() domain.ServerIdentity {
	return domain.IdentityFrom(s.settings)
}

// Register writes every configured association. Per-record failures are
// logged and kept in the report; only setup and enumeration errors are
// returned.
func (s *AssociationService) Register(ctx context.Context) (Report, error) {
	exe, err := s.executable()
	if err != nil {
		return Report{}, fmt.Errorf("resolve executable path: %w", err)
	}
	identity := s.Identity()

	var report Report
	_, err = EnumerateAssociations(s.settings, s.logger, func(record domain.AssociationRecord) {
		s.logger.Info().Str("extension", record.Extension).Str("name", record.DisplayName).Msg("registering")
		plan := RegistrationPlan(record, identity, exe)
		report.Outcomes = append(report.Outcomes, Outcome{
			Record: record,
			Err:    ApplyPlan(ctx, s.registry, record.Extension, plan, s.logger),
		})
	})
	return report, err
}

// Unregister removes each record's prog-id key with its subtree. Extension
// keys are left alone. An absent prog-id key is not a failure.
func (s *AssociationService) Unregister(ctx context.Context) (Report, error) {
	var report Report
	_, err := EnumerateAssociations(s.settings, s.logger, func(record domain.AssociationRecord) {
		report.Outcomes = append(report.Outcomes, Outcome{Record: record, Err: s.unregister(ctx, record)})
	})
	return report, err
}

func (s *AssociationService) unregister(ctx context.Context, record domain.AssociationRecord) error {
	progID := domain.KeyPath{record.DisplayName}
	err := s.registry.DeleteTree(ctx, progID)
	switch {
	case err == nil:
		s.logger.Info().Str("extension", record.Extension).Str("name", record.DisplayName).Msg("unregistered")
		return nil
	case errors.Is(err, domain.ErrKeyNotFound):
		s.logger.Info().Str("extension", record.Extension).Str("name", record.DisplayName).Msg("nothing to unregister")
		return nil
	default:
		err = fmt.Errorf("delete %s: %w: %w", progID, domain.ErrRegistryKey, err)
		s.logger.Error().Err(err).Str("extension", record.Extension).Msg("could not unregister")
		return err
	}
}

// List enumerates configured associations without touching the registry.
func (s *AssociationService) List() ([]domain.AssociationRecord, error) {
	var records []domain.AssociationRecord
	_, err := EnumerateAssociations(s.settings, s.logger, func(record domain.AssociationRecord) {
		records = append(records, record)
	})
	return records, err
}

func (s *AssociationService) Status(ctx context.Context) ([]AssociationStatus, error) {
	records, listErr := s.List()

	statuses := make([]AssociationStatus, 0, len(records))
	for _, record := range records {
		status, err := s.status(ctx, record)
		if err != nil {
			return statuses, err
		}
		statuses = append(statuses, status)
	}
	return statuses, listErr
}

func (s *AssociationService) status(ctx context.Context, record domain.AssociationRecord) (AssociationStatus, error) {
	status := AssociationStatus{Record: record}
	ddeexec := domain.KeyPath{record.DisplayName, keyShell, keyOpen, keyDDEExec}

	var err error
	if status.ExtensionKey, err = s.reader.KeyExists(ctx, domain.KeyPath{record.Extension}); err != nil {
		return status, fmt.Errorf("read extension key %s: %w", record.Extension, err)
	}
	if status.ExtensionKey {
		if status.ExtensionValue, err = s.defaultValue(ctx, domain.KeyPath{record.Extension}); err != nil {
			return status, err
		}
	}

	if status.ProgIDKey, err = s.reader.KeyExists(ctx, domain.KeyPath{record.DisplayName}); err != nil {
		return status, fmt.Errorf("read prog-id key %s: %w", record.DisplayName, err)
	}
	if !status.ProgIDKey {
		return status, nil
	}

	if status.Application, err = s.defaultValue(ctx, ddeexec.Child(keyApplication)); err != nil {
		return status, err
	}
	if status.Topic, err = s.defaultValue(ctx, ddeexec.Child(keyTopic)); err != nil {
		return status, err
	}
	return status, nil
}

func (s *AssociationService) defaultValue(ctx context.Context, path domain.KeyPath) (string, error) {
	value, _, err := s.reader.DefaultValue(ctx, path)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return value, nil
}
