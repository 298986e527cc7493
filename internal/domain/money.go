package domain

import (
	"github.com/shopspring/decimal"
)

// MaxPrice is the largest amount a numeric(10,2) price column holds.
var MaxPrice = MustMoney("99999999.99")

// Money is a fixed-point amount with two fractional digits.
type Money struct {
	decimal.Decimal
}

func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}

	return Money{d.Round(2)}, nil
}

func MustMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}

	return m
}

func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d.Round(2)}
}

func (m Money) String() string {
	return m.StringFixed(2)
}

// MarshalJSON renders the amount as a quoted string, e.g. "25.00".
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}

func (m Money) Equal(o Money) bool {
	return m.Decimal.Equal(o.Decimal)
}

// ValidPrice reports whether m fits a stored price: zero or more, at most MaxPrice.
func (m Money) ValidPrice() bool {
	return !m.IsNegative() && !m.GreaterThan(MaxPrice.Decimal)
}
