package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	hivePathKey     = "registry.path"
	hiveFileMode    = 0o600
	hiveDirMode     = 0o700
	hiveConfigDir   = ".ddehost"
	hiveConfigFile  = "classes.toml"
	tempFilePattern = ".classes-*.toml.tmp"
)

// Store keeps a classes-root key tree in a TOML file. Key names compare
// case-insensitively, as in the OS registry.
type Store struct {
	hivePath string
	mu       *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.RegistryStore = (*Store)(nil)

func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetDefault(hivePathKey, filepath.Join(homeDir, hiveConfigDir, hiveConfigFile))

	hivePath := cfg.GetString(hivePathKey)
	if hivePath == "" {
		return nil, errors.New("classes hive path is empty")
	}
	hivePath, err = normalizeHivePath(hivePath)
	if err != nil {
		return nil, err
	}

	return &Store{hivePath: hivePath, mu: lockForPath(hivePath)}, nil
}

func (s *Store) Path() string {
	return s.hivePath
}

func (s *Store) CreateKey(ctx context.Context, path domain.KeyPath) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(path) == 0 {
		return fmt.Errorf("create key: empty path: %w", domain.ErrRegistryKey)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}

	changed := false
	for depth := 1; depth <= len(path); depth++ {
		if indexOf(file.Keys, path[:depth]) >= 0 {
			continue
		}
		file.Keys = append(file.Keys, keySchema{Path: path[:depth].String()})
		changed = true
	}
	if !changed {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.writeSchema(file)
}

func (s *Store) SetDefaultValue(ctx context.Context, path domain.KeyPath, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}

	i := indexOf(file.Keys, path)
	if i < 0 {
		return fmt.Errorf("set default value of %q: %w", path.String(), domain.ErrKeyNotFound)
	}
	file.Keys[i].Default = &value

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.writeSchema(file)
}

func (s *Store) DeleteTree(ctx context.Context, path domain.KeyPath) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(path) == 0 {
		return fmt.Errorf("delete key: empty path: %w", domain.ErrRegistryKey)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}
	if indexOf(file.Keys, path) < 0 {
		return fmt.Errorf("delete key %q: %w", path.String(), domain.ErrKeyNotFound)
	}

	kept := file.Keys[:0]
	for _, key := range file.Keys {
		if domain.ParseKeyPath(key.Path).HasPrefixFold(path) {
			continue
		}
		kept = append(kept, key)
	}
	file.Keys = kept

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.writeSchema(file)
}

func (s *Store) KeyExists(ctx context.Context, path domain.KeyPath) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return false, err
	}

	return indexOf(file.Keys, path) >= 0, nil
}

func (s *Store) DefaultValue(ctx context.Context, path domain.KeyPath) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return "", false, err
	}

	i := indexOf(file.Keys, path)
	if i < 0 {
		return "", false, fmt.Errorf("read default value of %q: %w", path.String(), domain.ErrKeyNotFound)
	}
	if file.Keys[i].Default == nil {
		return "", false, nil
	}

	return *file.Keys[i].Default, true, nil
}

func indexOf(keys []keySchema, path domain.KeyPath) int {
	for i, key := range keys {
		if domain.ParseKeyPath(key.Path).EqualFold(path) {
			return i
		}
	}
	return -1
}

func (s *Store) readSchema() (hiveSchema, error) {
	data, err := os.ReadFile(s.hivePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return hiveSchema{}, nil
		}
		return hiveSchema{}, fmt.Errorf("read classes hive: %w", err)
	}

	var file hiveSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return hiveSchema{}, fmt.Errorf("decode classes hive: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return hiveSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeHivePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve classes hive path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (s *Store) writeSchema(file hiveSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.hivePath), hiveDirMode); err != nil {
		return fmt.Errorf("create classes hive directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode classes hive: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.hivePath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp classes hive: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp classes hive: %w", err)
	}

	if err := tempFile.Chmod(hiveFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp classes hive: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp classes hive: %w", err)
	}

	if err := os.Rename(tempName, s.hivePath); err != nil {
		return fmt.Errorf("replace classes hive: %w", err)
	}

	cleanup = false

	if err := os.Chmod(s.hivePath, hiveFileMode); err != nil {
		return fmt.Errorf("chmod classes hive: %w", err)
	}

	return nil
}
