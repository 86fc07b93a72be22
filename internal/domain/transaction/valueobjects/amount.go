package valueobjects

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// zeroDecimalCurrencies are the currencies the gateway treats as integer
// only, see https://stripe.com/docs/currencies#zero-decimal. The set
// encodes the gateway's own currency-precision rules and must not be
// edited independently of it.
var zeroDecimalCurrencies = map[string]struct{}{
	"BIF": {}, "XAF": {}, "XPF": {}, "CLP": {}, "KMF": {},
	"DJF": {}, "GNF": {}, "JPY": {}, "MGA": {}, "PYG": {},
	"RWF": {}, "KRW": {}, "VUV": {}, "VND": {}, "XOF": {},
}

// IsZeroDecimalCurrency reports whether the gateway expects whole units
// for the given ISO currency code.
func IsZeroDecimalCurrency(currency string) bool {
	_, ok := zeroDecimalCurrencies[strings.ToUpper(currency)]
	return ok
}

// Amount is a monetary amount in major units of its currency.
type Amount struct {
	value    decimal.Decimal
	currency string
}

func NewAmount(value decimal.Decimal, currency string) Amount {
	if currency == "" {
		currency = "EUR"
	}
	return Amount{
		value:    value,
		currency: strings.ToUpper(currency),
	}
}

func NewAmountFromString(value, currency string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return NewAmount(d, currency), nil
}

func (a Amount) Value() decimal.Decimal {
	return a.value
}

func (a Amount) Currency() string {
	return a.currency
}

func (a Amount) IsPositive() bool {
	return a.value.IsPositive()
}

// MinorUnits converts the amount to the gateway's minor-unit
// convention: zero-decimal currencies are sent as whole units, all
// others are multiplied by 100 and rounded to 2 decimal places before
// truncation to an integer.
func (a Amount) MinorUnits() int64 {
	if IsZeroDecimalCurrency(a.currency) {
		return a.value.IntPart()
	}
	return a.value.Mul(decimal.NewFromInt(100)).Round(2).IntPart()
}

// EqualsWithinTolerance compares against another amount with a
// tolerance of 2 decimal digits.
func (a Amount) EqualsWithinTolerance(other decimal.Decimal) bool {
	return a.value.Round(2).Equal(other.Round(2))
}

func (a Amount) Equals(other Amount) bool {
	return a.value.Equal(other.value) && a.currency == other.currency
}

func (a Amount) String() string {
	return fmt.Sprintf("%s %s", a.value.StringFixed(2), a.currency)
}
