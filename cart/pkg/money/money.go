// Package money converts between display-currency strings and decimal amounts.
//
// Prices arrive as display strings such as "د.إ 85,999"; the numeric amount is
// recovered by stripping everything that is not a digit or a decimal point.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/elanicia/storefront/internal/errors"
)

// CurrencyGlyph prefixes every formatted amount.
const CurrencyGlyph = "د.إ"

var printer = message.NewPrinter(language.English)

// ParseAmount removes the currency glyph, strips every remaining rune that is
// not a digit or a decimal point and interprets the residue as a decimal
// number. An empty or non-numeric residue returns ErrMalformedPrice; callers
// decide the fallback policy.
//
// The glyph must go first: د.إ contains an ASCII dot, which the rune loop
// would otherwise keep as a decimal point.
func ParseAmount(display string) (decimal.Decimal, error) {
	var b strings.Builder
	for _, r := range strings.ReplaceAll(display, CurrencyGlyph, "") {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	residue := b.String()
	if residue == "" {
		return decimal.Zero, fmt.Errorf(
			"no numeric value in price %q: %w", display, errors.ErrMalformedPrice,
		)
	}
	d, err := decimal.NewFromString(residue)
	if err != nil {
		return decimal.Zero, fmt.Errorf(
			"price %q is not numeric: %w", display, errors.ErrMalformedPrice,
		)
	}
	return d, nil
}

// FormatAmount rounds to the nearest whole unit and renders it with en-US
// thousands grouping behind the currency glyph. Fractions are never displayed.
func FormatAmount(amount decimal.Decimal) string {
	return printer.Sprintf("%s %d", CurrencyGlyph, amount.Round(0).IntPart())
}
