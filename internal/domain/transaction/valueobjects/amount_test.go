package valueobjects

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsZeroDecimalCurrency(t *testing.T) {
	zero := []string{"BIF", "XAF", "XPF", "CLP", "KMF", "DJF", "GNF", "JPY", "MGA", "PYG", "RWF", "KRW", "VUV", "VND", "XOF"}
	for _, cur := range zero {
		assert.True(t, IsZeroDecimalCurrency(cur), cur)
	}

	assert.True(t, IsZeroDecimalCurrency("jpy"), "lookup is case insensitive")
	assert.False(t, IsZeroDecimalCurrency("EUR"))
	assert.False(t, IsZeroDecimalCurrency("USD"))
	assert.False(t, IsZeroDecimalCurrency(""))
}

func TestAmount_MinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		currency string
		want     int64
	}{
		{name: "eur cents", value: "19.99", currency: "EUR", want: 1999},
		{name: "eur whole", value: "150.00", currency: "EUR", want: 15000},
		{name: "eur sub cent truncated", value: "10.005", currency: "EUR", want: 1000},
		{name: "jpy whole units", value: "1500", currency: "JPY", want: 1500},
		{name: "jpy fraction truncated", value: "1500.90", currency: "JPY", want: 1500},
		{name: "krw whole units", value: "20000", currency: "KRW", want: 20000},
		{name: "zero", value: "0", currency: "EUR", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := NewAmountFromString(tt.value, tt.currency)
			require.NoError(t, err)
			assert.Equal(t, tt.want, amount.MinorUnits())
		})
	}
}

func TestNewAmount_DefaultsToEUR(t *testing.T) {
	amount := NewAmount(decimal.NewFromInt(10), "")
	assert.Equal(t, "EUR", amount.Currency())

	amount = NewAmount(decimal.NewFromInt(10), "jpy")
	assert.Equal(t, "JPY", amount.Currency())
}

func TestNewAmountFromString_Invalid(t *testing.T) {
	_, err := NewAmountFromString("nineteen", "EUR")
	assert.Error(t, err)
}

func TestAmount_EqualsWithinTolerance(t *testing.T) {
	amount, err := NewAmountFromString("150.00", "EUR")
	require.NoError(t, err)

	assert.True(t, amount.EqualsWithinTolerance(decimal.RequireFromString("150")))
	assert.True(t, amount.EqualsWithinTolerance(decimal.RequireFromString("150.001")))
	assert.False(t, amount.EqualsWithinTolerance(decimal.RequireFromString("150.01")))
	assert.False(t, amount.EqualsWithinTolerance(decimal.RequireFromString("149.99")))
}

func TestAmount_String(t *testing.T) {
	amount, err := NewAmountFromString("19.9", "eur")
	require.NoError(t, err)
	assert.Equal(t, "19.90 EUR", amount.String())
}
