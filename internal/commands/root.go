package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerkeep/assetlog/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
// Without a subcommand it runs the interactive menu.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "assetlog",
		Short:   "Interactive entry of bank, stock and realized P&L records into dated CSV files",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			return a.menu()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.dir, "dir", ".", "data directory holding lists and output")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default <dir>/"+configFileName+")")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newFlowCommand(opts, "bank", "Enter bank asset balances"))
	rootCmd.AddCommand(newFlowCommand(opts, "stock", "Enter stock holdings"))
	rootCmd.AddCommand(newFlowCommand(opts, "pnl", "Enter realized profit and loss"))
	rootCmd.AddCommand(newAllCommand(opts))

	return rootCmd
}
