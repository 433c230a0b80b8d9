//go:build windows

package windows

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/ports"
	"golang.org/x/sys/windows/registry"
)

// Store writes under HKEY_CLASSES_ROOT.
type Store struct {
	root registry.Key
}

var _ ports.RegistryStore = (*Store)(nil)

func NewStore() (*Store, error) {
	return &Store{root: registry.CLASSES_ROOT}, nil
}

func (s *Store) CreateKey(ctx context.Context, path domain.KeyPath) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	k, _, err := registry.CreateKey(s.root, path.String(), registry.WRITE)
	if err != nil {
		return fmt.Errorf("create key %q: %w", path.String(), err)
	}
	return k.Close()
}

func (s *Store) SetDefaultValue(ctx context.Context, path domain.KeyPath, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	k, err := registry.OpenKey(s.root, path.String(), registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open key %q: %w", path.String(), mapNotExist(err))
	}
	defer k.Close()

	if err := k.SetStringValue("", value); err != nil {
		return fmt.Errorf("set default value of %q: %w", path.String(), err)
	}
	return nil
}

// DeleteTree removes the key and every subkey, deepest first.
func (s *Store) DeleteTree(ctx context.Context, path domain.KeyPath) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	k, err := registry.OpenKey(s.root, path.String(), registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
	if err != nil {
		return fmt.Errorf("open key %q: %w", path.String(), mapNotExist(err))
	}
	children, err := k.ReadSubKeyNames(-1)
	_ = k.Close()
	if err != nil {
		return fmt.Errorf("enumerate subkeys of %q: %w", path.String(), err)
	}

	for _, child := range children {
		if err := s.DeleteTree(ctx, path.Child(child)); err != nil {
			return err
		}
	}

	if err := registry.DeleteKey(s.root, path.String()); err != nil {
		return fmt.Errorf("delete key %q: %w", path.String(), mapNotExist(err))
	}
	return nil
}

func (s *Store) KeyExists(ctx context.Context, path domain.KeyPath) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	k, err := registry.OpenKey(s.root, path.String(), registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("open key %q: %w", path.String(), err)
	}
	return true, k.Close()
}

func (s *Store) DefaultValue(ctx context.Context, path domain.KeyPath) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	k, err := registry.OpenKey(s.root, path.String(), registry.QUERY_VALUE)
	if err != nil {
		return "", false, fmt.Errorf("open key %q: %w", path.String(), mapNotExist(err))
	}
	defer k.Close()

	value, _, err := k.GetStringValue("")
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read default value of %q: %w", path.String(), err)
	}
	return value, true, nil
}

func mapNotExist(err error) error {
	if errors.Is(err, registry.ErrNotExist) {
		return errors.Join(domain.ErrKeyNotFound, err)
	}
	return err
}
