package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	configtoml "github.com/bnema/ddehost/internal/adapters/config/toml"
	"github.com/bnema/ddehost/internal/adapters/ddeml"
	"github.com/bnema/ddehost/internal/adapters/loopback"
	statusadapter "github.com/bnema/ddehost/internal/adapters/render/status"
	registrytoml "github.com/bnema/ddehost/internal/adapters/registry/toml"
	registrywin "github.com/bnema/ddehost/internal/adapters/registry/windows"
	execruntime "github.com/bnema/ddehost/internal/adapters/runtime/exec"
	"github.com/bnema/ddehost/internal/adapters/runtime/inproc"
	"github.com/bnema/ddehost/internal/adapters/win32"
	"github.com/bnema/ddehost/internal/application"
	"github.com/bnema/ddehost/internal/dde"
	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/logging"
	"github.com/bnema/ddehost/internal/ports"
	"github.com/rs/zerolog"
)

const (
	registryPathKey  = "registry.path"
	classesRootLabel = `HKEY_CLASSES_ROOT`

	runtimeExec   = "exec"
	runtimeInproc = "inproc"
)

var errUnknownRuntime = errors.New("unknown dde runtime")

type app struct {
	settings       *configtoml.Settings
	logger         zerolog.Logger
	closeLog       func() error
	registry       ports.RegistryStore
	registrySource string
	associations   *application.AssociationService
	statusRenderer func([]application.AssociationStatus, statusadapter.RenderOptions) (string, error)
	executable     ports.ExecutablePath
}

func wireApp(opts *rootOptions, logOut io.Writer) (*app, error) {
	logCfg := logging.FromEnv(logging.ProfileRuntime)
	if opts.logLevel != "" {
		level, ok := logging.ParseLevel(opts.logLevel)
		if !ok {
			return nil, fmt.Errorf("invalid log level %q", opts.logLevel)
		}
		logCfg.Level = level
	}

	logger, closeLog, err := logging.New(logOut, logCfg)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	settings, err := configtoml.Load(configtoml.Options{File: opts.configFile})
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("wire settings: %w", err)
	}
	if opts.registryFile != "" {
		settings.Viper().Set(registryPathKey, opts.registryFile)
	}
	logger.Debug().Str("file", settings.File()).Msg("settings loaded")

	registry, source, err := wireRegistry(settings)
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	executable := ports.ExecutablePath(os.Executable)

	return &app{
		settings:       settings,
		logger:         logger,
		closeLog:       closeLog,
		registry:       registry,
		registrySource: source,
		associations:   application.NewAssociationService(registry, settings, executable, logging.Component(logger, "registrar")),
		statusRenderer: statusadapter.Render,
		executable:     executable,
	}, nil
}

// wireRegistry prefers the OS classes root unless a key tree file was asked
// for, and falls back to the file where there is no OS registry.
func wireRegistry(settings *configtoml.Settings) (ports.RegistryStore, string, error) {
	if !settings.Viper().IsSet(registryPathKey) {
		store, err := registrywin.NewStore()
		if err == nil {
			return store, classesRootLabel, nil
		}
		if !errors.Is(err, domain.ErrUnsupportedPlatform) {
			return nil, "", fmt.Errorf("wire classes root: %w", err)
		}
	}

	store, err := registrytoml.NewStore(settings.Viper())
	if err != nil {
		return nil, "", fmt.Errorf("wire registry file: %w", err)
	}
	return store, store.Path(), nil
}

// ddeDependencies binds the DDE feature to the OS, or to an in-process
// loopback subsystem that the caller can dial.
func (a *app) ddeDependencies(useLoopback bool, out io.Writer) (dde.Dependencies, *loopback.System, error) {
	rt, err := a.runtime(out)
	if err != nil {
		return dde.Dependencies{}, nil, err
	}

	if useLoopback {
		system := loopback.New()
		return dde.Dependencies{DDEML: system, Windows: system, Runtime: rt}, system, nil
	}

	binding, err := ddeml.New(logging.Component(a.logger, "ddeml"))
	if err != nil {
		return dde.Dependencies{}, nil, fmt.Errorf("wire ddeml: %w", err)
	}
	windows, err := win32.New()
	if err != nil {
		return dde.Dependencies{}, nil, fmt.Errorf("wire window system: %w", err)
	}

	return dde.Dependencies{DDEML: binding, Windows: windows, Runtime: rt}, nil, nil
}

func (a *app) runtime(out io.Writer) (ports.Runtime, error) {
	switch kind := domain.RuntimeKind(a.settings); kind {
	case runtimeExec:
		root := domain.RuntimeRoot(a.settings)
		if root == "" {
			exe, err := a.executable()
			if err != nil {
				return nil, fmt.Errorf("resolve executable path: %w", err)
			}
			root = filepath.Dir(exe)
		}
		return execruntime.New(root), nil
	case runtimeInproc:
		rt := inproc.New()
		rt.DefineExecute(dde.ClassPath(domain.CallbackClassName(a.settings)), echoExecute(out))
		return rt, nil
	default:
		return nil, fmt.Errorf("%w %q (want %s or %s)", errUnknownRuntime, kind, runtimeExec, runtimeInproc)
	}
}

// echoExecute prints each execute string, one per line.
func echoExecute(out io.Writer) inproc.StaticFunc {
	return func(arg *string) error {
		text := "<null>"
		if arg != nil {
			text = *arg
		}
		_, err := fmt.Fprintf(out, "execute\t%s\n", text)
		return err
	}
}

func (a *app) close() {
	if err := a.closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "close log file: %v\n", err)
	}
}
