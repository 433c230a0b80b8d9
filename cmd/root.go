package cmd

import "github.com/spf13/cobra"

type rootOptions struct {
	configFile   string
	registryFile string
	logLevel     string
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "ddehost",
		Short:         "DDE execute server and file association registrar",
		Long:          "ddehost advertises a DDE service so the shell can hand file-open requests to a running application, and manages the classes-root entries that route registered extensions to it.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "settings file (default: ddehost.toml next to the executable, then ~/.ddehost)")
	flags.StringVar(&opts.registryFile, "registry-file", "", "use a TOML key tree at this path instead of the OS classes root")
	flags.StringVar(&opts.logLevel, "log-level", "", "trace|debug|info|warn|error|disabled (overrides DDEHOST_LOG_LEVEL)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(opts),
		newAssocCmd(opts),
		newConfigCmd(opts),
	)

	return rootCmd
}
