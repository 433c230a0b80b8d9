package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDdeInit                 = errors.New("dde initialization failed")
	ErrClassNotFound           = errors.New("callback class not found")
	ErrMethodNotFound          = errors.New("callback method not found")
	ErrWindowClassRegistration = errors.New("window class registration failed")
	ErrRegistryKey             = errors.New("registry key operation failed")
	ErrMissingRequiredField    = errors.New("missing required association field")
	ErrKeyNotFound             = errors.New("registry key not found")
	ErrUnsupportedPlatform     = errors.New("unsupported platform")
	ErrDisabled                = errors.New("dde feature disabled")
)

// InitError carries the raw code reported by the protocol subsystem.
type InitError struct {
	Code uint32
}

func (e *InitError) Error() string {
	return fmt.Sprintf("%s: code %d", ErrDdeInit, e.Code)
}

func (e *InitError) Unwrap() error {
	return ErrDdeInit
}
