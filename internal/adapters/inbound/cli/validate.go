package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/prodcat/internal/adapters/outbound/tui"
	"github.com/abdidvp/prodcat/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		fields     productFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a candidate product against the field rules",
		Long:  "Validate a candidate product without opening the catalog. Exits non-zero when any field breaks a rule.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			errs := domain.Validate(fields.product())

			if jsonOutput {
				if err := renderJSON(cmd, validationReport{Valid: errs.Valid(), Errors: errs}); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderErrorSet(errs))
			}

			if !errs.Valid() {
				return &domain.ValidationError{Errors: errs}
			}
			return nil
		},
	}

	fields.bind(cmd, true)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON")

	return cmd
}

type validationReport struct {
	Valid  bool            `json:"valid"`
	Errors domain.ErrorSet `json:"errors,omitempty"`
}
