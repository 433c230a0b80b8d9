//go:build !windows

package ddeml

import (
	"fmt"
	"runtime"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/ports"
	"github.com/rs/zerolog"
)

type Binding struct {
	ports.DDEML
}

func New(_ zerolog.Logger) (*Binding, error) {
	return nil, fmt.Errorf("ddeml on %s: %w", runtime.GOOS, domain.ErrUnsupportedPlatform)
}
