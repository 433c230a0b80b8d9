//go:build !windows

package windows

import (
	"fmt"
	"runtime"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/ports"
)

type Store struct {
	ports.RegistryStore
}

func NewStore() (*Store, error) {
	return nil, fmt.Errorf("classes root on %s: %w", runtime.GOOS, domain.ErrUnsupportedPlatform)
}
