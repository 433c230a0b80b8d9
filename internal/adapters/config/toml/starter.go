package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/ddehost/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

var ErrFileExists = errors.New("settings file already exists")

type starterFile struct {
	DDE              starterDDE              `toml:"dde"`
	Registry         starterRegistry         `toml:"registry"`
	FileAssociations starterFileAssociations `toml:"FileAssociations"`
}

type starterDDE struct {
	Enabled bool           `toml:"enabled" comment:"Only the literal true turns the DDE server on."`
	Class   string         `toml:"class" comment:"Dotted class holding the static execute(String) callback."`
	Topic   string         `toml:"topic"`
	Server  starterServer  `toml:"server"`
	Window  starterWindow  `toml:"window"`
	Connect starterConnect `toml:"connect"`
	Runtime starterRuntime `toml:"runtime"`
}

type starterServer struct {
	Name string `toml:"name"`
}

type starterWindow struct {
	Class string `toml:"class"`
}

type starterConnect struct {
	Fallthrough bool `toml:"fallthrough" comment:"A refused connect also runs the execute path, as the legacy launcher did."`
}

type starterRuntime struct {
	Kind string `toml:"kind" comment:"exec or inproc"`
	Root string `toml:"root,omitempty" comment:"Class tree root for the exec runtime. Defaults to the executable's directory."`
}

type starterRegistry struct {
	Path string `toml:"path,omitempty" comment:"File-backed classes root used off Windows."`
}

type starterFileAssociations struct {
	File map[string]starterAssociation `toml:"file"`
}

type starterAssociation struct {
	Extension   string `toml:"extension"`
	Name        string `toml:"name"`
	Description string `toml:"description,omitempty"`
}

// WriteStarter writes a settings file carrying the built-in defaults and one
// example association. An existing file is kept unless force is set.
func WriteStarter(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrFileExists)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat settings %s: %w", path, err)
		}
	}

	file := starterFile{
		DDE: starterDDE{
			Enabled: true,
			Class:   domain.DefaultCallbackClass,
			Topic:   domain.DefaultTopicName,
			Server:  starterServer{Name: domain.DefaultServiceName},
			Window:  starterWindow{Class: domain.DefaultWindowClass},
			Connect: starterConnect{Fallthrough: true},
			Runtime: starterRuntime{Kind: domain.DefaultRuntime},
		},
		FileAssociations: starterFileAssociations{
			File: map[string]starterAssociation{
				"1": {
					Extension:   ".sample",
					Name:        "DDEHost.Sample",
					Description: "Sample document",
				},
			},
		},
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode starter settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}
