package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/prodcat/internal/adapters/outbound/tui"
)

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <code>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx := cmd.Context()
			if _, err := rt.catalog.Delete(ctx, args[0]).Wait(context.WithoutCancel(ctx)); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDeleted(args[0]))
			return nil
		},
	}
}
