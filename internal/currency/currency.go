// Package currency converts base-currency amounts into the storefront's
// supported display currencies. Rates are fixed constants; nothing here
// fetches or refreshes them, and stored prices never change when the
// visitor switches currency.
package currency

import (
	"errors"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Code identifies a supported display currency.
type Code string

const (
	USD Code = "USD"
	EUR Code = "EUR"
	NGN Code = "NGN"
	XAF Code = "XAF"
	GHS Code = "GHS"
)

// ErrUnknownCurrency is returned by Parse for codes outside the supported set.
var ErrUnknownCurrency = errors.New("unknown currency")

// Info describes one supported currency.
type Info struct {
	Code   Code            `json:"code"`
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Rate   decimal.Decimal `json:"rate"` // target units per 1 unit of base currency
}

var currencies = map[Code]Info{
	USD: {Code: USD, Symbol: "$", Name: "US Dollar", Rate: decimal.NewFromInt(1)},
	EUR: {Code: EUR, Symbol: "€", Name: "Euro", Rate: decimal.RequireFromString("0.92")},
	NGN: {Code: NGN, Symbol: "₦", Name: "Nigerian Naira", Rate: decimal.NewFromInt(1550)},
	XAF: {Code: XAF, Symbol: "FCFA", Name: "Central African CFA Franc", Rate: decimal.NewFromInt(605)},
	GHS: {Code: GHS, Symbol: "₵", Name: "Ghanaian Cedi", Rate: decimal.RequireFromString("15.5")},
}

// listing order for the currency switcher
var codes = []Code{USD, EUR, NGN, XAF, GHS}

// List returns the supported currencies in switcher order.
func List() []Info {
	out := make([]Info, 0, len(codes))
	for _, c := range codes {
		out = append(out, currencies[c])
	}
	return out
}

// Lookup returns the Info for a code.
func Lookup(code Code) (Info, bool) {
	info, ok := currencies[code]
	return info, ok
}

// Parse normalizes a currency code from the API surface.
func Parse(s string) (Code, error) {
	code := Code(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := currencies[code]; !ok {
		return "", ErrUnknownCurrency
	}
	return code, nil
}

// Convert multiplies a base-currency amount by the fixed rate for code.
// Unknown codes convert at the base rate.
func Convert(amount decimal.Decimal, code Code) decimal.Decimal {
	info, ok := currencies[code]
	if !ok {
		return amount
	}
	return amount.Mul(info.Rate)
}

// Format renders a base-currency amount in the given display currency.
// NGN and XAF are treated as whole-unit currencies and rendered without
// decimals; everything else gets two. The XAF symbol trails the amount
// ("605,000 FCFA") while every other symbol is prefixed.
func Format(amount decimal.Decimal, code Code) string {
	info, ok := currencies[code]
	if !ok {
		info = currencies[USD]
		code = USD
	}

	converted, _ := Convert(amount, code).Float64()
	var rendered string
	if code == NGN || code == XAF {
		rendered = humanize.FormatFloat("#,###.", converted)
	} else {
		rendered = humanize.FormatFloat("#,###.##", converted)
	}

	if code == XAF {
		return rendered + " " + info.Symbol
	}
	return info.Symbol + rendered
}
