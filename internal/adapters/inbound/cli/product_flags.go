package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/prodcat/internal/adapters/outbound/tui"
	"github.com/abdidvp/prodcat/internal/domain"
)

// productFlags binds the editable product fields to command flags.
type productFlags struct {
	code  string
	name  string
	cost  float64
	price float64
	value float64
}

func (f *productFlags) bind(cmd *cobra.Command, withCode bool) {
	if withCode {
		cmd.Flags().StringVar(&f.code, "code", "", "Product code: a letter followed by digits (e.g. A001)")
	}
	cmd.Flags().StringVar(&f.name, "name", "", "Product name, at least 5 characters")
	cmd.Flags().Float64Var(&f.cost, "cost", 0, "Unit cost, greater than 0")
	cmd.Flags().Float64Var(&f.price, "price", 0, "Sale price, between 10 and 100")
	cmd.Flags().Float64Var(&f.value, "value", 0, "Stock value, 0 or greater")
}

func (f *productFlags) product() domain.Product {
	return domain.Product{Code: f.code, Name: f.name, Cost: f.cost, Price: f.price, Value: f.value}
}

// overlay copies only the flags the user set over base.
func (f *productFlags) overlay(cmd *cobra.Command, base domain.Product) domain.Product {
	flags := cmd.Flags()
	if flags.Changed("name") {
		base.Name = f.name
	}
	if flags.Changed("cost") {
		base.Cost = f.cost
	}
	if flags.Changed("price") {
		base.Price = f.price
	}
	if flags.Changed("value") {
		base.Value = f.value
	}
	return base
}

// reportInvalid renders field errors before handing err back to cobra.
func reportInvalid(cmd *cobra.Command, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderErrorSet(verr.Errors))
	}
	return err
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
