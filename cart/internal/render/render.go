// Package render projects the cart and its pricing snapshot into a
// display-ready view model. It never mutates state; painting the model is the
// consuming UI's problem.
package render

import (
	"github.com/elanicia/storefront/cart/internal/domain"
	"github.com/elanicia/storefront/cart/internal/pricing"
	"github.com/elanicia/storefront/cart/pkg/money"
)

const (
	DefaultCategory  = "Watch"
	PlaceholderImage = "images/placeholder-watch.jpg"
	DefaultColorHex  = "#CCCCCC"
)

var colorHex = map[string]string{
	"Silver":    "#C0C0C0",
	"Gold":      "#FFD700",
	"Rose Gold": "#E0BFB8",
	"Black":     "#000000",
	"White":     "#FFFFFF",
	"Blue":      "#0000FF",
	"Red":       "#FF0000",
	"Green":     "#008000",
}

// ColorHex resolves a color name to its swatch hex, falling back to
// DefaultColorHex for unknown names.
func ColorHex(name string) string {
	if hex, ok := colorHex[name]; ok {
		return hex
	}
	return DefaultColorHex
}

// Row is one display line of the cart page.
type Row struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Image          string `json:"image"`
	Category       string `json:"category"`
	Quantity       int32  `json:"quantity"`
	Price          string `json:"price"`
	FormattedPrice string `json:"formattedPrice"`
	ColorName      string `json:"colorName,omitempty"`
	ColorHex       string `json:"colorHex,omitempty"`
}

// ViewModel is what the UI paints. An empty cart is not an error: it carries
// zero rows and the show-empty-state flag instead.
type ViewModel struct {
	Rows            []Row            `json:"rows"`
	Summary         pricing.Snapshot `json:"summary"`
	ShowEmptyState  bool             `json:"showEmptyState"`
	CheckoutEnabled bool             `json:"checkoutEnabled"`
}

type Renderer struct {
	engine pricing.Engine
}

func NewRenderer(engine pricing.Engine) Renderer {
	return Renderer{engine: engine}
}

// BuildViewModel derives rows and summary figures from the given items.
func (r Renderer) BuildViewModel(items []domain.LineItem) ViewModel {
	vm := ViewModel{
		Rows:            make([]Row, 0, len(items)),
		Summary:         r.engine.ComputeSnapshot(items),
		ShowEmptyState:  len(items) == 0,
		CheckoutEnabled: len(items) > 0,
	}
	for _, item := range items {
		row := Row{
			ID:             item.ID,
			Name:           item.Name,
			Image:          item.Image,
			Category:       item.Category,
			Quantity:       item.Quantity,
			Price:          item.Price,
			FormattedPrice: money.FormatAmount(item.OriginalPrice),
		}
		if row.Image == "" {
			row.Image = PlaceholderImage
		}
		if row.Category == "" {
			row.Category = DefaultCategory
		}
		if item.SelectedColor != "" {
			row.ColorName = item.SelectedColor
			row.ColorHex = ColorHex(item.SelectedColor)
		}
		vm.Rows = append(vm.Rows, row)
	}
	return vm
}
