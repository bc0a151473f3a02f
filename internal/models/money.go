package models

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency code is configured.
const DefaultCurrency = money.INR

// FormatAmount renders amount in the given ISO 4217 currency, e.g. "₹1,000.00".
// Unknown codes fall back to DefaultCurrency.
func FormatAmount(amount decimal.Decimal, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" || money.GetCurrency(code) == nil {
		code = DefaultCurrency
	}

	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, code).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}

// FormatSignedAmount prefixes the formatted amount with "+" for income and "-" for expenses.
func FormatSignedAmount(t Transaction, currency string) string {
	signed := t.SignedAmount()
	sign := "+"
	if signed.IsNegative() {
		sign = "-"
	}
	return sign + FormatAmount(signed.Abs(), currency)
}
