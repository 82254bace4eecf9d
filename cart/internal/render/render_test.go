package render

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elanicia/storefront/cart/internal/domain"
	"github.com/elanicia/storefront/cart/internal/pricing"
)

func testRenderer() Renderer {
	return NewRenderer(pricing.NewEngine(decimal.NewFromInt(50)))
}

func TestBuildViewModelEmptyCart(t *testing.T) {
	vm := testRenderer().BuildViewModel(nil)

	assert.Empty(t, vm.Rows)
	assert.True(t, vm.ShowEmptyState)
	assert.False(t, vm.CheckoutEnabled)
	assert.Equal(t, 0, vm.Summary.TotalItems)
	assert.True(t, vm.Summary.Total.IsZero())
}

func TestBuildViewModelRows(t *testing.T) {
	items := []domain.LineItem{
		{
			ID:            "w1",
			Name:          "Royal Chronograph",
			Price:         "د.إ 85,999",
			Quantity:      2,
			Image:         "images/royal.jpg",
			Category:      "Chronograph",
			SelectedColor: "Rose Gold",
			OriginalPrice: decimal.NewFromInt(85999),
		},
		{
			ID:            "w2",
			Name:          "Plain Watch",
			Price:         "د.إ 1,000",
			Quantity:      1,
			OriginalPrice: decimal.NewFromInt(1000),
		},
	}

	vm := testRenderer().BuildViewModel(items)

	require.Len(t, vm.Rows, 2)
	assert.False(t, vm.ShowEmptyState)
	assert.True(t, vm.CheckoutEnabled)

	first := vm.Rows[0]
	assert.Equal(t, "w1", first.ID)
	assert.Equal(t, "Royal Chronograph", first.Name)
	assert.Equal(t, "images/royal.jpg", first.Image)
	assert.Equal(t, "Chronograph", first.Category)
	assert.Equal(t, int32(2), first.Quantity)
	assert.Equal(t, "د.إ 85,999", first.Price)
	assert.Equal(t, "د.إ 85,999", first.FormattedPrice)
	assert.Equal(t, "Rose Gold", first.ColorName)
	assert.Equal(t, "#E0BFB8", first.ColorHex)

	second := vm.Rows[1]
	assert.Equal(t, PlaceholderImage, second.Image)
	assert.Equal(t, DefaultCategory, second.Category)
	assert.Empty(t, second.ColorName)
	assert.Empty(t, second.ColorHex)
}

func TestBuildViewModelSummary(t *testing.T) {
	items := []domain.LineItem{
		{ID: "a", Name: "A", Price: "100", Quantity: 3},
		{ID: "b", Name: "B", Price: "50", Quantity: 1},
	}

	vm := testRenderer().BuildViewModel(items)

	assert.Equal(t, 4, vm.Summary.TotalItems)
	assert.True(t, decimal.NewFromInt(150).Equal(vm.Summary.Subtotal))
	assert.True(t, decimal.NewFromInt(200).Equal(vm.Summary.Total))
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		name     string
		color    string
		expected string
	}{
		{name: "given known color should return its hex", color: "Silver", expected: "#C0C0C0"},
		{name: "given gold should return its hex", color: "Gold", expected: "#FFD700"},
		{name: "given unknown color should return the default", color: "Chartreuse", expected: DefaultColorHex},
		{name: "given empty name should return the default", color: "", expected: DefaultColorHex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ColorHex(tt.color))
		})
	}
}
