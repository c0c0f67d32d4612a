package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions are the persistent flags every catalog command shares.
type rootOptions struct {
	configDir string
	ephemeral bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "prodcat",
		Short:         "Manage a small product catalog",
		Long:          "prodcat keeps a product catalog in a durable slot and lets you list, add, edit and delete products from the terminal or an MCP client.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configDir, "config", ".", "Directory holding .prodcat.yaml")
	cmd.PersistentFlags().BoolVar(&opts.ephemeral, "ephemeral", false, "Keep the catalog in memory only; nothing is written")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newAddCmd(opts))
	cmd.AddCommand(newCreateCmd(opts))
	cmd.AddCommand(newUpdateCmd(opts))
	cmd.AddCommand(newDeleteCmd(opts))
	cmd.AddCommand(newResetCmd(opts))
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
