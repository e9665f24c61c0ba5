package commands

import (
	"github.com/spf13/cobra"

	"github.com/ledgerkeep/assetlog/internal/model"
)

func newFlowCommand(opts *options, kind model.Kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(kind),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			return a.runFlow(kind)
		},
	}
}

func newAllCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Enter bank, stock and realized P&L records in turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			return a.runAll()
		},
	}
}

func (a *app) runAll() error {
	for _, kind := range model.Kinds {
		if err := a.runFlow(kind); err != nil {
			return err
		}
	}
	a.prompt.Printf("\n✅ all modules finished\n")
	return nil
}
