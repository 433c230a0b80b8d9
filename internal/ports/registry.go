package ports

import (
	"context"

	"github.com/bnema/ddehost/internal/domain"
)

// Registry mutates keys under the classes root. CreateKey creates missing
// ancestors and is idempotent.
type Registry interface {
	CreateKey(ctx context.Context, path domain.KeyPath) error
	SetDefaultValue(ctx context.Context, path domain.KeyPath, value string) error
	DeleteTree(ctx context.Context, path domain.KeyPath) error
}

type RegistryReader interface {
	KeyExists(ctx context.Context, path domain.KeyPath) (bool, error)
	DefaultValue(ctx context.Context, path domain.KeyPath) (string, bool, error)
}

type RegistryStore interface {
	Registry
	RegistryReader
}

// ExecutablePath resolves the full path of the running executable.
type ExecutablePath func() (string, error)
