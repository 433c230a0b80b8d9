package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	statusadapter "github.com/bnema/ddehost/internal/adapters/render/status"
	"github.com/bnema/ddehost/internal/application"
	"github.com/spf13/cobra"
)

func newAssocCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assoc",
		Short: "Manage file associations routed through DDE",
	}

	cmd.AddCommand(
		newAssocRegisterCmd(root),
		newAssocUnregisterCmd(root),
		newAssocListCmd(root),
		newAssocStatusCmd(root),
	)

	return cmd
}

func newAssocRegisterCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Write classes-root entries for every configured extension",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.close()

			report, err := app.associations.Register(cmd.Context())
			if writeErr := writeReport(cmd.OutOrStdout(), "registered", report); writeErr != nil {
				return writeErr
			}
			return reportError(report, err)
		},
	}
}

func newAssocUnregisterCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unregister",
		Short: "Remove the prog-id key of every configured extension",
		Long:  "unregister deletes each configured prog-id key and its subtree. Extension keys are left in place.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.close()

			report, err := app.associations.Unregister(cmd.Context())
			if writeErr := writeReport(cmd.OutOrStdout(), "unregistered", report); writeErr != nil {
				return writeErr
			}
			return reportError(report, err)
		},
	}
}

func newAssocListCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured associations without touching the registry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.close()

			records, listErr := app.associations.List()
			if asJSON {
				rows := make([]associationJSON, 0, len(records))
				for _, r := range records {
					rows = append(rows, associationJSON{Index: r.Index, Extension: r.Extension, Name: r.DisplayName, Description: r.Description})
				}
				if err := writeJSON(cmd.OutOrStdout(), rows); err != nil {
					return err
				}
				return listErr
			}

			for _, r := range records {
				description := ""
				if r.Description != nil {
					description = *r.Description
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", r.Index, r.Extension, r.DisplayName, description); err != nil {
					return err
				}
			}
			return listErr
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print associations as JSON")
	return cmd
}

func newAssocStatusCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show what the classes root holds for each configured extension",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.close()

			statuses, err := app.associations.Status(cmd.Context())
			if err != nil && len(statuses) == 0 {
				return fmt.Errorf("read association status: %w", err)
			}

			identity := app.associations.Identity()
			if asJSON {
				rows := make([]statusJSON, 0, len(statuses))
				for _, s := range statuses {
					rows = append(rows, statusJSON{
						Extension:    s.Record.Extension,
						Name:         s.Record.DisplayName,
						ExtensionKey: s.ExtensionKey,
						ProgIDKey:    s.ProgIDKey,
						Application:  s.Application,
						Topic:        s.Topic,
						Current:      s.Current(identity),
					})
				}
				if writeErr := writeJSON(cmd.OutOrStdout(), rows); writeErr != nil {
					return writeErr
				}
				return err
			}

			rendered, renderErr := app.statusRenderer(statuses, statusadapter.RenderOptions{
				Identity: identity,
				Source:   app.registrySource,
			})
			if renderErr != nil {
				return fmt.Errorf("render status: %w", renderErr)
			}
			if _, writeErr := fmt.Fprintln(cmd.OutOrStdout(), rendered); writeErr != nil {
				return writeErr
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print status as JSON")
	return cmd
}

type associationJSON struct {
	Index       int     `json:"index"`
	Extension   string  `json:"extension"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type statusJSON struct {
	Extension    string `json:"extension"`
	Name         string `json:"name"`
	ExtensionKey bool   `json:"extension_key"`
	ProgIDKey    bool   `json:"prog_id_key"`
	Application  string `json:"application,omitempty"`
	Topic        string `json:"topic,omitempty"`
	Current      bool   `json:"current"`
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeReport(out io.Writer, verb string, report application.Report) error {
	for _, o := range report.Outcomes {
		var err error
		if o.Err != nil {
			_, err = fmt.Fprintf(out, "failed\t%s\t%s\t%v\n", o.Record.Extension, o.Record.DisplayName, o.Err)
		} else {
			_, err = fmt.Fprintf(out, "%s\t%s\t%s\n", verb, o.Record.Extension, o.Record.DisplayName)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func reportError(report application.Report, err error) error {
	if err != nil {
		return err
	}
	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d associations failed", failed, len(report.Outcomes))
	}
	return nil
}
