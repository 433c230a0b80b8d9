package status

import (
	"fmt"

	"github.com/bnema/ddehost/internal/application"
	"github.com/bnema/ddehost/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Identity domain.ServerIdentity
	// Source names the registry being inspected, e.g. a hive file path.
	Source string
}

type state int

const (
	stateMissing state = iota
	statePartial
	stateRegistered
)

func classify(status application.AssociationStatus, identity domain.ServerIdentity) state {
	switch {
	case status.Current(identity):
		return stateRegistered
	case !status.ExtensionKey && !status.ProgIDKey:
		return stateMissing
	default:
		return statePartial
	}
}

func renderView(statuses []application.AssociationStatus, opts RenderOptions, s styles) string {
	header := fmt.Sprintf("service: %s  topic: %s  associations: %d",
		opts.Identity.ServiceName, opts.Identity.TopicName, len(statuses))
	lines := []string{
		s.title.Render("File associations"),
		s.header.Render(header),
	}
	if opts.Source != "" {
		lines = append(lines, s.header.Render("registry: "+opts.Source))
	}

	if len(statuses) == 0 {
		lines = append(lines, s.empty.Render("No file associations configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, status := range statuses {
		lines = append(lines, s.section.Render(renderAssociation(status, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAssociation(status application.AssociationStatus, opts RenderOptions, s styles) string {
	title := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.extension.Render(fmt.Sprintf("%s -> %s", status.Record.Extension, status.Record.DisplayName)),
		" ",
		stateLabel(classify(status, opts.Identity), s),
	)

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, detailLines(status, s)...)...)
}

func stateLabel(st state, s styles) string {
	switch st {
	case stateRegistered:
		return s.registered.Render("[registered]")
	case statePartial:
		return s.partial.Render("[partial]")
	default:
		return s.missing.Render("[missing]")
	}
}

func detailLines(status application.AssociationStatus, s styles) []string {
	lines := []string{
		field("extension key", presence(status.ExtensionKey, status.ExtensionValue), s),
		field("prog-id key", presence(status.ProgIDKey, ""), s),
	}
	if status.ProgIDKey {
		lines = append(lines, field("ddeexec", fmt.Sprintf("%s / %s", orNA(status.Application), orNA(status.Topic)), s))
	}
	if status.Record.Description != nil {
		lines = append(lines, field("description", *status.Record.Description, s))
	}
	return lines
}

func field(label, value string, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render("  "+label+":"), " ", s.detail.Render(value))
}

func presence(ok bool, value string) string {
	if !ok {
		return "absent"
	}
	if value == "" {
		return "present"
	}
	return fmt.Sprintf("present (%s)", value)
}

func orNA(v string) string {
	if v == "" {
		return "n/a"
	}
	return v
}
