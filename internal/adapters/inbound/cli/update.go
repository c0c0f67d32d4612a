package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/prodcat/internal/adapters/outbound/tui"
	"github.com/abdidvp/prodcat/internal/application"
)

func newUpdateCmd(opts *rootOptions) *cobra.Command {
	var fields productFlags

	cmd := &cobra.Command{
		Use:   "update <code>",
		Short: "Edit a product through the form workflow",
		Long:  "Open the product in an edit draft, change the fields given as flags and commit. Fields without a flag keep their current values; the code never changes.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			current, err := rt.catalog.Get(cmd.Context(), args[0]).Wait(cmd.Context())
			if err != nil {
				return err
			}

			form := application.NewFormController(rt.catalog, application.WithFormLogger(rt.logger))
			form.StartEdit(current)
			if err := form.SetDraft(fields.overlay(cmd, form.Draft())); err != nil {
				return err
			}

			saved, err := form.Commit(cmd.Context())
			if err != nil {
				return reportInvalid(cmd, err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSaved("updated", saved))
			return nil
		},
	}

	fields.bind(cmd, false)

	return cmd
}
