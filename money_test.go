package finch

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		name string
		in   Money
		want string
	}{
		{name: "zero", in: M(0), want: "$0.00"},
		{name: "thousands separator", in: M(5000.0), want: "$5,000.00"},
		{name: "negative", in: M(-200.0), want: "-$200.00"},
		{name: "cents kept", in: M(45.5), want: "$45.50"},
		{name: "rounds sub-cent", in: M(10.005), want: "$10.01"},
		{name: "million", in: M(1000000), want: "$1,000,000.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoneySignedString(t *testing.T) {
	testCases := []struct {
		name string
		in   Money
		want string
	}{
		{name: "zero is dash", in: M(0), want: "-"},
		{name: "positive gets plus", in: M(45.5), want: "+$45.50"},
		{name: "negative keeps minus", in: M(-1), want: "-$1.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.SignedString(); got != tc.want {
				t.Errorf("SignedString() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoneySigns(t *testing.T) {
	if !M(-0.01).IsNegative() {
		t.Errorf("-0.01 should be negative")
	}
	if M(0).IsNegative() || M(0).IsPositive() {
		t.Errorf("zero is neither negative nor positive")
	}
	if !M(decimal.NewFromInt(3)).Equal(M(3.0)) {
		t.Errorf("equal amounts from different constructors should compare equal")
	}
}

func TestPercentString(t *testing.T) {
	testCases := []struct {
		name string
		in   Percent
		want string
	}{
		{name: "fixed two decimals", in: Percent(decimal.NewFromFloat(12.5)), want: "12.50%"},
		{name: "zero", in: Percent(decimal.Zero), want: "0.00%"},
		{name: "negative", in: Percent(decimal.NewFromFloat(-3.333)), want: "-3.33%"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}
