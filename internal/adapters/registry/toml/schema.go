package toml

import "fmt"

const currentSchemaVersion = 1

type hiveSchema struct {
	Version int         `toml:"version"`
	Keys    []keySchema `toml:"keys"`
}

func (s *hiveSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s hiveSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported classes hive schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type keySchema struct {
	Path    string  `toml:"path"`
	Default *string `toml:"default,omitempty"`
}
