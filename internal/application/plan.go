package application

import (
	"context"
	"fmt"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/ports"
	"github.com/rs/zerolog"
)

const (
	keyDefaultIcon = "DefaultIcon"
	keyShell       = "shell"
	keyOpen        = "Open"
	keyCommand     = "command"
	keyDDEExec     = "ddeexec"
	keyApplication = "application"
	keyTopic       = "topic"

	ddeExecCommand  = "%1"
	commandArgument = ` "%1"`
)

// RegistryWrite creates Path under the classes root and, when Value is set,
// stores it as the key's default value. Creating the key always halts the
// plan on failure; a failing value write on a SoftValue step is logged and
// the plan carries on.
type RegistryWrite struct {
	Step      int
	Name      string
	Path      domain.KeyPath
	Value     *string
	SoftValue bool
}

// RegistrationPlan lists the writes that associate record's extension with
// this executable's DDE execute path.
func RegistrationPlan(record domain.AssociationRecord, identity domain.ServerIdentity, exe string) []RegistryWrite {
	progID := domain.KeyPath{record.DisplayName}
	open := progID.Child(keyShell, keyOpen)
	ddeexec := open.Child(keyDDEExec)

	return []RegistryWrite{
		{Step: 1, Name: "extension", Path: domain.KeyPath{record.Extension}, Value: ptr(record.DisplayName)},
		{Step: 2, Name: "prog-id", Path: progID, Value: record.Description, SoftValue: true},
		{Step: 3, Name: "default icon", Path: progID.Child(keyDefaultIcon), Value: ptr(exe)},
		{Step: 4, Name: "open command", Path: open.Child(keyCommand), Value: ptr(exe + commandArgument)},
		{Step: 5, Name: "ddeexec", Path: ddeexec, Value: ptr(ddeExecCommand)},
		{Step: 6, Name: "ddeexec application", Path: ddeexec.Child(keyApplication), Value: ptr(identity.ServiceName)},
		{Step: 7, Name: "ddeexec topic", Path: ddeexec.Child(keyTopic), Value: ptr(identity.TopicName)},
	}
}

// StepError reports the write that halted a record.
type StepError struct {
	Extension string
	Write     RegistryWrite
	Err       error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("extension %s: step %d (%s) %s: %v", e.Extension, e.Write.Step, e.Write.Name, e.Write.Path, e.Err)
}

func (e *StepError) Unwrap() []error {
	return []error{domain.ErrRegistryKey, e.Err}
}

// ApplyPlan runs writes in order and stops at the first hard failure. Keys
// already written stay in place.
func ApplyPlan(ctx context.Context, registry ports.Registry, extension string, writes []RegistryWrite, logger zerolog.Logger) error {
	for _, w := range writes {
		soft, err := applyWrite(ctx, registry, w)
		if err == nil {
			continue
		}

		event := logger.Error()
		if soft {
			event = logger.Warn()
		}
		event.Err(err).
			Str("extension", extension).
			Int("step", w.Step).
			Str("key", w.Path.String()).
			Msgf("could not write %s key", w.Name)
		if soft {
			continue
		}
		return &StepError{Extension: extension, Write: w, Err: err}
	}
	return nil
}

// applyWrite reports whether a failure may be skipped.
func applyWrite(ctx context.Context, registry ports.Registry, w RegistryWrite) (bool, error) {
	if err := registry.CreateKey(ctx, w.Path); err != nil {
		return false, fmt.Errorf("create key: %w", err)
	}
	if w.Value == nil {
		return false, nil
	}
	if err := registry.SetDefaultValue(ctx, w.Path, *w.Value); err != nil {
		return w.SoftValue, fmt.Errorf("set default value: %w", err)
	}
	return false, nil
}

func ptr(s string) *string {
	return &s
}
