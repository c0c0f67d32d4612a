package application

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/abdidvp/prodcat/internal/domain"
)

// filterEnv exposes product fields to filter expressions under lowercase names.
type filterEnv struct {
	Code  string  `expr:"code"`
	Name  string  `expr:"name"`
	Cost  float64 `expr:"cost"`
	Price float64 `expr:"price"`
	Value float64 `expr:"value"`
}

// ProductFilter is a compiled boolean expression over product fields,
// e.g. `price > 50 && name contains "Monitor"`.
type ProductFilter struct {
	source  string
	program *vm.Program
}

// CompileFilter compiles expression once. It must evaluate to a bool.
func CompileFilter(expression string) (*ProductFilter, error) {
	if expression == "" {
		return nil, fmt.Errorf("filter expression must not be empty")
	}
	program, err := expr.Compile(expression, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", expression, err)
	}
	return &ProductFilter{source: expression, program: program}, nil
}

func (f *ProductFilter) String() string { return f.source }

// Match reports whether p satisfies the filter.
func (f *ProductFilter) Match(p domain.Product) (bool, error) {
	out, err := expr.Run(f.program, filterEnv{
		Code:  p.Code,
		Name:  p.Name,
		Cost:  p.Cost,
		Price: p.Price,
		Value: p.Value,
	})
	if err != nil {
		return false, fmt.Errorf("evaluating filter %q on %q: %w", f.source, p.Code, err)
	}
	matched, _ := out.(bool)
	return matched, nil
}

// Apply returns the products that match, in their original order.
func (f *ProductFilter) Apply(products []domain.Product) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		ok, err := f.Match(p)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, p)
		}
	}
	return out, nil
}
