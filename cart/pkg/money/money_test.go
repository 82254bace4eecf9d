package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elanicia/storefront/internal/errors"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		display  string
		expected decimal.Decimal
		wantErr  bool
	}{
		{
			name:     "given display price with glyph and grouping should return amount",
			display:  "د.إ 85,999",
			expected: decimal.NewFromInt(85999),
		},
		{
			name:     "given display price with single group should return amount",
			display:  "د.إ 1,000",
			expected: decimal.NewFromInt(1000),
		},
		{
			name:     "given bare digits should return amount",
			display:  "100",
			expected: decimal.NewFromInt(100),
		},
		{
			name:     "given fractional price should keep the fraction",
			display:  "د.إ 12.50",
			expected: decimal.NewFromFloat(12.5),
		},
		{
			name:    "given empty string should return error",
			display: "",
			wantErr: true,
		},
		{
			name:    "given glyph without an amount should return error",
			display: "د.إ",
			wantErr: true,
		},
		{
			name:    "given no digits should return error",
			display: "free",
			wantErr: true,
		},
		{
			name:    "given multiple decimal points should return error",
			display: "1.2.3",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := ParseAmount(tt.display)
			if tt.wantErr {
				require.ErrorIs(t, err, errors.ErrMalformedPrice)
				assert.True(t, actual.IsZero())
				return
			}
			require.NoError(t, err)
			assert.True(
				t,
				tt.expected.Equal(actual),
				"expected %s got %s",
				tt.expected,
				actual,
			)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{
			name:     "given whole amount should group thousands behind the glyph",
			amount:   decimal.NewFromInt(85999),
			expected: "د.إ 85,999",
		},
		{
			name:     "given fractional amount should round to whole units",
			amount:   decimal.NewFromFloat(1234.5),
			expected: "د.إ 1,235",
		},
		{
			name:     "given zero should render zero",
			amount:   decimal.Zero,
			expected: "د.إ 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAmount(tt.amount))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	parsed, err := ParseAmount("د.إ 85,999")
	require.NoError(t, err)

	recovered, err := ParseAmount(FormatAmount(parsed))
	require.NoError(t, err)
	assert.True(t, recovered.Equal(decimal.NewFromInt(85999)))
}
