package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/prodcat/internal/adapters/outbound/tui"
	"github.com/abdidvp/prodcat/internal/application"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	var fields productFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Long:  "Add a product straight to the catalog. Without --code the next free P-code (P003, P004, ...) is assigned.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx := cmd.Context()
			saved, err := rt.catalog.Add(ctx, fields.product()).Wait(context.WithoutCancel(ctx))
			if err != nil {
				return reportInvalid(cmd, err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSaved("added", saved))
			return nil
		},
	}

	fields.bind(cmd, true)

	return cmd
}

func newCreateCmd(opts *rootOptions) *cobra.Command {
	var fields productFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product through the form workflow",
		Long:  "Start a new draft from the blank template, fill it from the flags and commit it. An invalid draft is rejected with its field errors and nothing is saved.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			form := application.NewFormController(rt.catalog, application.WithFormLogger(rt.logger))
			form.StartCreate()
			if err := form.SetDraft(fields.product()); err != nil {
				return err
			}

			saved, err := form.Commit(cmd.Context())
			if err != nil {
				return reportInvalid(cmd, err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSaved("created", saved))
			return nil
		},
	}

	fields.bind(cmd, true)
	_ = cmd.MarkFlagRequired("code")

	return cmd
}
