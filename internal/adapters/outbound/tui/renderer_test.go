package tui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdidvp/prodcat/internal/adapters/outbound/tui"
	"github.com/abdidvp/prodcat/internal/domain"
)

func TestRenderProducts_ContainsEveryProductInOrder(t *testing.T) {
	output := tui.RenderProducts(domain.SeedProducts())

	assert.Contains(t, output, "2 products")
	assert.Contains(t, output, "A001")
	assert.Contains(t, output, "B023")
	assert.Contains(t, output, "99.99")
	assert.Contains(t, output, "Teclado Mecánico")
	assert.Less(t, strings.Index(output, "A001"), strings.Index(output, "B023"))
}

func TestRenderProducts_Empty(t *testing.T) {
	output := tui.RenderProducts(nil)
	assert.Contains(t, output, "0 products")
	assert.Contains(t, output, "No products.")
}

func TestRenderProducts_TruncatesLongNames(t *testing.T) {
	output := tui.RenderProducts([]domain.Product{
		{Code: "L1", Name: strings.Repeat("x", 60), Cost: 1, Price: 10},
	})
	assert.Contains(t, output, "…")
	assert.NotContains(t, output, strings.Repeat("x", 60))
}

func TestRenderProduct(t *testing.T) {
	output := tui.RenderProduct(domain.Product{Code: "C7", Name: "Cable HDMI", Cost: 3, Price: 12.5, Value: 4})
	assert.Contains(t, output, "C7")
	assert.Contains(t, output, "Cable HDMI")
	assert.Contains(t, output, "12.50")
}

func TestRenderSavedAndDeleted(t *testing.T) {
	assert.Contains(t, tui.RenderSaved("added", domain.Product{Code: "P003", Name: "Widget1"}), "P003")
	assert.Contains(t, tui.RenderDeleted("B023"), "B023")
}
