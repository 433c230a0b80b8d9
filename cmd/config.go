package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	configtoml "github.com/bnema/ddehost/internal/adapters/config/toml"
	"github.com/spf13/cobra"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
	}

	cmd.AddCommand(newConfigInitCmd(root))
	return cmd
}

func newConfigInitCmd(root *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter settings file",
		Long:  "init writes the built-in defaults and one sample association to --config, or to ~/.ddehost/ddehost.toml.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := root.configFile
			if path == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("resolve home directory: %w", err)
				}
				path = filepath.Join(home, ".ddehost", configtoml.ConfigName+"."+configtoml.ConfigType)
			}

			if err := configtoml.WriteStarter(path, force); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
