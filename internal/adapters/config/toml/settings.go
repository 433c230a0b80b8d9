// Package toml loads the launcher settings file through viper and exposes it
// as the read-only key/value view the DDE feature and the registrar consume.
package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "DDEHOST"
	ConfigName = "ddehost"
	ConfigType = "toml"
	configDir  = ".ddehost"
)

type Options struct {
	// File is an explicit settings file. Search paths are ignored when set.
	File string
	// SearchPaths are tried in order for ddehost.toml. Empty means the
	// executable's directory, then $HOME/.ddehost.
	SearchPaths []string
}

// Settings resolves "Section:key" names to the viper path "section.key".
type Settings struct {
	v    *viper.Viper
	file string
}

var _ domain.Settings = (*Settings)(nil)

// Load reads the settings file. A missing file is not an error: the result
// is empty and the DDE feature stays disabled.
func Load(opts Options) (*Settings, error) {
	v := viper.New()
	v.SetConfigType(ConfigType)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", ":", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read settings %s: %w", opts.File, err)
		}
		return &Settings{v: v, file: v.ConfigFileUsed()}, nil
	}

	paths := opts.SearchPaths
	if len(paths) == 0 {
		paths = DefaultSearchPaths()
	}
	v.SetConfigName(ConfigName)
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return &Settings{v: v}, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	return &Settings{v: v, file: v.ConfigFileUsed()}, nil
}

// FromMap builds Settings without touching the filesystem.
func FromMap(values map[string]any) *Settings {
	v := viper.New()
	for key, value := range values {
		v.Set(viperKey(key), value)
	}
	return &Settings{v: v}
}

func DefaultSearchPaths() []string {
	var paths []string
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Dir(exe))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, configDir))
	}
	return paths
}

func (s *Settings) Lookup(key string) (string, bool) {
	k := viperKey(key)
	if !s.v.IsSet(k) {
		return "", false
	}
	return s.v.GetString(k), true
}

// File is the settings file that was read, or "" when none was found.
func (s *Settings) File() string {
	return s.file
}

// Viper exposes the underlying store so adapters can read their own keys
// (registry.path) from the same file.
func (s *Settings) Viper() *viper.Viper {
	return s.v
}

func viperKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, ":", "."))
}
