package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/prodcat/internal/adapters/outbound/tui"
	"github.com/abdidvp/prodcat/internal/application"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		jsonOutput bool
		where      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products in catalog order",
		Long:  "List every product in the order it was added. --where keeps only the products matching an expression over code, name, cost, price and value.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *application.ProductFilter
			if where != "" {
				var err error
				if filter, err = application.CompileFilter(where); err != nil {
					return err
				}
			}

			rt, err := openRuntime(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			products, err := rt.catalog.List(cmd.Context()).Wait(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing products: %w", err)
			}

			if filter != nil {
				if products, err = filter.Apply(products); err != nil {
					return err
				}
			}

			if jsonOutput {
				return renderJSON(cmd, products)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderProducts(products))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output products as JSON")
	cmd.Flags().StringVar(&where, "where", "", `Filter expression, e.g. 'price > 50 && name contains "Mon"'`)

	return cmd
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <code>",
		Short: "Show a single product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			p, err := rt.catalog.Get(cmd.Context(), args[0]).Wait(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, p)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderProduct(p))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the product as JSON")

	return cmd
}
