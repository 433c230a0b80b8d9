package domain

import (
	"fmt"
	"strings"
)

// Settings is the read-only key/value view of the launcher configuration.
type Settings interface {
	Lookup(key string) (string, bool)
}

const (
	KeyDDEEnabled         = "dde.enabled"
	KeyDDEClass           = "dde.class"
	KeyDDEWindowClass     = "dde.window.class"
	KeyDDEServerName      = "dde.server.name"
	KeyDDETopic           = "dde.topic"
	KeyDDEConnectFallThru = "dde.connect.fallthrough"
	KeyDDERuntime         = "dde.runtime.kind"
	KeyDDERuntimeRoot     = "dde.runtime.root"

	FileAssociationsSection = "FileAssociations"
)

const (
	DefaultServiceName   = "WinRun4J"
	DefaultTopicName     = "system"
	DefaultWindowClass   = "WinRun4J.DDEWndClass"
	DefaultWindowTitle   = "WinRun4J.DDEWindow"
	DefaultCallbackClass = "org.boris.winrun4j.DDE"
	DefaultRuntime       = "exec"
)

// MapSettings is an in-memory Settings keyed exactly as the launcher file.
type MapSettings map[string]string

func (m MapSettings) Lookup(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}

func lookupOr(s Settings, key, fallback string) string {
	if s == nil {
		return fallback
	}
	if value, ok := s.Lookup(key); ok {
		return value
	}
	return fallback
}

// DDEEnabled reports whether dde.enabled holds the literal "true".
func DDEEnabled(s Settings) bool {
	if s == nil {
		return false
	}
	value, ok := s.Lookup(KeyDDEEnabled)
	return ok && value == "true"
}

func IdentityFrom(s Settings) ServerIdentity {
	return ServerIdentity{
		ServiceName: lookupOr(s, KeyDDEServerName, DefaultServiceName),
		TopicName:   lookupOr(s, KeyDDETopic, DefaultTopicName),
	}
}

func WindowClassName(s Settings) string {
	return lookupOr(s, KeyDDEWindowClass, DefaultWindowClass)
}

func CallbackClassName(s Settings) string {
	return lookupOr(s, KeyDDEClass, DefaultCallbackClass)
}

// ConnectFallThrough is on unless dde.connect.fallthrough is exactly "false".
func ConnectFallThrough(s Settings) bool {
	return lookupOr(s, KeyDDEConnectFallThru, "true") != "false"
}

func RuntimeKind(s Settings) string {
	return strings.ToLower(strings.TrimSpace(lookupOr(s, KeyDDERuntime, DefaultRuntime)))
}

func RuntimeRoot(s Settings) string {
	return lookupOr(s, KeyDDERuntimeRoot, "")
}

// AssociationKey builds FileAssociations:file.<index>.<field>.
func AssociationKey(index int, field string) string {
	return fmt.Sprintf("%s:file.%d.%s", FileAssociationsSection, index, field)
}
