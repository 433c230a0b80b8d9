package domain

import "strings"

// AssociationRecord is one configured extension-to-handler mapping. It is a
// staging value only; the classes root is the durable store.
type AssociationRecord struct {
	Index       int
	Extension   string
	DisplayName string
	// Description is nil when the configuration omits it.
	Description *string
	Settings    Settings
}

func (r AssociationRecord) HasDescription() bool {
	return r.Description != nil
}

// KeyPath is a registry key path relative to the classes root.
type KeyPath []string

func (p KeyPath) String() string {
	return strings.Join(p, `\`)
}

func (p KeyPath) Child(names ...string) KeyPath {
	out := make(KeyPath, 0, len(p)+len(names))
	out = append(out, p...)
	return append(out, names...)
}

// ParseKeyPath splits a backslash separated path, dropping empty segments.
func ParseKeyPath(raw string) KeyPath {
	parts := strings.Split(raw, `\`)
	out := make(KeyPath, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// EqualFold compares two paths the way the registry does, ignoring case.
func (p KeyPath) EqualFold(other KeyPath) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !strings.EqualFold(p[i], other[i]) {
			return false
		}
	}
	return true
}

// HasPrefixFold reports whether prefix is an ancestor-or-self of p.
func (p KeyPath) HasPrefixFold(prefix KeyPath) bool {
	if len(prefix) > len(p) {
		return false
	}
	return p[:len(prefix)].EqualFold(prefix)
}
