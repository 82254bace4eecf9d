package domain

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/elanicia/storefront/cart/pkg/money"
	"github.com/elanicia/storefront/internal/log"
)

// LineItem is one SKU's presence in the cart. Price is the display string
// captured at add time and stays the only price source for the item;
// OriginalPrice caches the amount parsed from it.
type LineItem struct {
	ID            string          `json:"id"                      validate:"required"`
	Name          string          `json:"name"                    validate:"required"`
	Price         string          `json:"price"                   validate:"required"`
	Quantity      int32           `json:"quantity"                validate:"gte=1"`
	Image         string          `json:"image,omitempty"`
	Category      string          `json:"category,omitempty"`
	SelectedColor string          `json:"selectedColor,omitempty"`
	Manufacturer  string          `json:"manufacturer,omitempty"`
	Stock         int32           `json:"stock,omitempty"`
	Colors        []string        `json:"colors,omitempty"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
}

// Clone returns a copy that shares no mutable state with the receiver.
func (i LineItem) Clone() LineItem {
	clone := i
	if i.Colors != nil {
		clone.Colors = make([]string, len(i.Colors))
		copy(clone.Colors, i.Colors)
	}
	return clone
}

// Normalize cleans a sequence read from the storage boundary: items failing
// validation are dropped, duplicate ids are merged by summing quantities into
// the first occurrence, and a missing OriginalPrice is recomputed from Price.
// Malformed prices leave OriginalPrice at zero; pricing treats that as 0.
func Normalize(c context.Context, items []LineItem) []LineItem {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "domain Normalize").
		Logger()

	validate := validator.New(validator.WithRequiredStructEnabled())

	normalized := make([]LineItem, 0, len(items))
	index := map[string]int{}
	for _, item := range items {
		lg := logger.With().
			Str(log.KEY_ITEM_ID, item.ID).
			Int32(log.KEY_QUANTITY, item.Quantity).
			Logger()

		if err := validate.StructCtx(c, item); err != nil {
			lg.Warn().Err(err).Msg("dropping invalid line item from stored cart")
			continue
		}

		if pos, ok := index[item.ID]; ok {
			lg.Info().
				Int32("mergedQuantity", normalized[pos].Quantity+item.Quantity).
				Msg("merging duplicate line item")
			normalized[pos].Quantity += item.Quantity
			continue
		}

		if item.OriginalPrice.IsZero() {
			amount, err := money.ParseAmount(item.Price)
			if err != nil {
				lg.Warn().Err(err).Str(log.KEY_PRICE, item.Price).
					Msg("stored price is malformed, keeping amount 0")
			} else {
				item.OriginalPrice = amount
			}
		}

		index[item.ID] = len(normalized)
		normalized = append(normalized, item.Clone())
	}
	return normalized
}
