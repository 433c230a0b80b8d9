//go:build !windows

package win32

import (
	"fmt"
	"runtime"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/ports"
)

type WindowSystem struct {
	ports.WindowSystem
}

func New() (*WindowSystem, error) {
	return nil, fmt.Errorf("win32 windows on %s: %w", runtime.GOOS, domain.ErrUnsupportedPlatform)
}
