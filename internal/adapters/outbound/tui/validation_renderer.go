package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"

	"github.com/abdidvp/prodcat/internal/domain"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	ruleTagStyle       = lipgloss.NewStyle().Foreground(danger).Bold(true)
	fieldStyle         = lipgloss.NewStyle().Bold(true).Foreground(fg)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderErrorSet renders field errors, one line per field in field order.
// An empty set renders a single pass line.
func RenderErrorSet(errs domain.ErrorSet) string {
	var b strings.Builder

	if errs.Valid() {
		b.WriteString("  " + passStyle.Render("● valid") + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s %s\n",
		sectionHeaderStyle.Render("Invalid product"),
		dimStyle.Render(fmt.Sprintf("(%d)", len(errs))),
	)
	for _, field := range errs.Fields() {
		fe := errs[field]
		fmt.Fprintf(&b, "    %s %s %s  %s\n",
			failStyle.Render("●"),
			fieldStyle.Render(padRight(field, 6)),
			ruleTagStyle.Render(padRight(RuleLabel(fe.Rule), 20)),
			dimStyle.Render(fe.Message),
		)
	}

	b.WriteString("\n")
	b.WriteString("  " + hintStyle.Render("Fix the fields above and run the command again."))
	b.WriteString("\n")
	return b.String()
}

// RuleLabel turns a rule identifier into words: MustBePositive -> "must be positive".
func RuleLabel(rule domain.Rule) string {
	words := camelcase.Split(string(rule))
	return strings.ToLower(strings.Join(words, " "))
}
