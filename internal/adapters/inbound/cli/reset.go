package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newResetCmd(opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove the stored catalog",
		Long:  "Remove the catalog slot named in .prodcat.yaml. The next command finds nothing stored and seeds the default products again.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset removes every stored product; pass --yes to confirm")
			}

			rt, err := openStore(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := rt.store.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("resetting catalog: %w", err)
			}

			rt.logger.Info("catalog slot removed", zap.String("key", rt.store.Key()))
			fmt.Fprintf(cmd.OutOrStdout(), "Removed slot %q\n", rt.store.Key())
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm removing the stored catalog")

	return cmd
}
