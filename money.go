package finch

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money formats a signed decimal amount as a currency string.
// The service is single-currency; everything is displayed in USD.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v}
	case float32:
		return Money{value: decimal.NewFromFloat32(v)}
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int32:
		return Money{value: decimal.NewFromInt32(v)}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	}
	panic("unreachable")
}

// currency returns the fixed display currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency we have to go through the Money constructor
	return *money.New(0, money.USD).Currency()
}

// String returns the fixed two-decimal currency string, e.g. "$5,000.00" or
// "-$200.00".
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// SignedString is like String but with an explicit sign; zero is "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) IsPositive() bool { return m.value.IsPositive() }
func (m Money) IsNegative() bool { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool {
	return m.value.Equal(n.value)
}

// Percent formats a server-computed rate, e.g. "12.50%".
type Percent decimal.Decimal

func (p Percent) String() string {
	return decimal.Decimal(p).StringFixed(2) + "%"
}

// SignedString returns the rate with an explicit sign; zero is "-".
func (p Percent) SignedString() string {
	d := decimal.Decimal(p)
	if d.IsZero() {
		return "-"
	}
	if d.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}

var _ fmt.Stringer = Money{}
var _ fmt.Stringer = Percent{}
