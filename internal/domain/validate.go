package domain

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Rule identifies which field rule a value broke.
type Rule string

const (
	RuleMinLength         Rule = "MinLength"
	RuleMustBePositive    Rule = "MustBePositive"
	RuleOutOfRange        Rule = "OutOfRange"
	RuleInvalidFormat     Rule = "InvalidFormat"
	RuleMustBeNonNegative Rule = "MustBeNonNegative"
)

// Field names used as ErrorSet keys.
const (
	FieldCode  = "code"
	FieldName  = "name"
	FieldCost  = "cost"
	FieldPrice = "price"
	FieldValue = "value"
)

const (
	MinNameLength = 5
	MinPrice      = 10.0
	MaxPrice      = 100.0
)

var codePattern = regexp.MustCompile(`^[A-Za-z][0-9]+$`)

// FieldError is one broken rule on one field.
type FieldError struct {
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

// ErrorSet maps a field name to the rule it broke. An empty set means valid.
type ErrorSet map[string]FieldError

// Valid reports whether no rule was broken.
func (s ErrorSet) Valid() bool { return len(s) == 0 }

// Fields returns the failing field names in sorted order.
func (s ErrorSet) Fields() []string {
	fields := make([]string, 0, len(s))
	for f := range s {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Has reports whether field failed with the given rule.
func (s ErrorSet) Has(field string, rule Rule) bool {
	fe, ok := s[field]
	return ok && fe.Rule == rule
}

func (s ErrorSet) String() string {
	parts := make([]string, 0, len(s))
	for _, f := range s.Fields() {
		parts = append(parts, f+": "+s[f].Message)
	}
	return strings.Join(parts, "; ")
}

// Validate checks p against every field rule. All rules run; errors accumulate.
// It does not look at any collection, so uniqueness is not its concern.
func Validate(p Product) ErrorSet {
	errs := ErrorSet{}

	if utf8.RuneCountInString(p.Name) < MinNameLength {
		errs[FieldName] = FieldError{
			Rule:    RuleMinLength,
			Message: fmt.Sprintf("must be at least %d characters", MinNameLength),
		}
	}

	if !finite(p.Cost) || p.Cost <= 0 {
		errs[FieldCost] = FieldError{
			Rule:    RuleMustBePositive,
			Message: "must be greater than 0",
		}
	}

	if !finite(p.Price) || p.Price < MinPrice || p.Price > MaxPrice {
		errs[FieldPrice] = FieldError{
			Rule:    RuleOutOfRange,
			Message: fmt.Sprintf("must be between %g and %g", MinPrice, MaxPrice),
		}
	}

	if !codePattern.MatchString(p.Code) {
		errs[FieldCode] = FieldError{
			Rule:    RuleInvalidFormat,
			Message: "must be a letter followed by digits (e.g. A001)",
		}
	}

	if !finite(p.Value) || p.Value < 0 {
		errs[FieldValue] = FieldError{
			Rule:    RuleMustBeNonNegative,
			Message: "must be 0 or greater",
		}
	}

	return errs
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
