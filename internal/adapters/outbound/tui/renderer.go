package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/prodcat/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	codeStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	columnStyle   = lipgloss.NewStyle().Bold(true).Foreground(dim)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

const (
	codeWidth   = 8
	nameWidth   = 24
	numberWidth = 10
)

// RenderProducts renders the catalog as a table, in collection order.
func RenderProducts(products []domain.Product) string {
	var b strings.Builder

	title := headerStyle.Render("prodcat")
	count := dimStyle.Render(fmt.Sprintf("%d products", len(products)))
	b.WriteString(boxStyle.Render(title + "  " + count))
	b.WriteString("\n\n")

	if len(products) == 0 {
		b.WriteString("  " + dimStyle.Render("No products.") + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s %s %s %s %s\n",
		columnStyle.Render(padRight("CODE", codeWidth)),
		columnStyle.Render(padRight("NAME", nameWidth)),
		columnStyle.Render(padLeft("COST", numberWidth)),
		columnStyle.Render(padLeft("PRICE", numberWidth)),
		columnStyle.Render(padLeft("VALUE", numberWidth)),
	)
	b.WriteString("  " + separatorLine + "\n")

	for _, p := range products {
		fmt.Fprintf(&b, "  %s %s %s %s %s\n",
			codeStyle.Render(padRight(p.Code, codeWidth)),
			titleStyle.Render(padRight(truncate(p.Name, nameWidth), nameWidth)),
			padLeft(formatAmount(p.Cost), numberWidth),
			padLeft(formatAmount(p.Price), numberWidth),
			padLeft(formatAmount(p.Value), numberWidth),
		)
	}
	return b.String()
}

// RenderProduct renders one product as a labelled card.
func RenderProduct(p domain.Product) string {
	lines := []string{
		codeStyle.Render(p.Code) + "  " + titleStyle.Render(p.Name),
		"",
		dimStyle.Render(padRight("cost", 7)) + formatAmount(p.Cost),
		dimStyle.Render(padRight("price", 7)) + formatAmount(p.Price),
		dimStyle.Render(padRight("value", 7)) + formatAmount(p.Value),
	}
	return boxStyle.Render(strings.Join(lines, "\n")) + "\n"
}

// RenderSaved renders a one-line confirmation of a committed product.
func RenderSaved(verb string, p domain.Product) string {
	return fmt.Sprintf("  %s %s %s  %s\n",
		passStyle.Render("✓"),
		verb,
		codeStyle.Render(p.Code),
		dimStyle.Render(p.Name),
	)
}

// RenderDeleted renders a one-line confirmation of a deletion.
func RenderDeleted(code string) string {
	return fmt.Sprintf("  %s deleted %s\n", warnStyle.Render("✓"), codeStyle.Render(code))
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func padLeft(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
