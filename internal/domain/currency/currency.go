// Package currency converts numeraire amounts into display strings for the
// visitor's currency, detected from browser timezone/locale hints.
package currency

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// Currency is one row of the static rate table. Rate converts from the
// numeraire (USD-equivalent) into this currency.

type Currency struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Rate   float64 `json:"rate"`
}

// DefaultCode is the numeraire itself, used when no detection rule matches
// or a format call names an unknown code.
const DefaultCode = "USD"

var currencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$", Rate: 1},
	{Code: "KES", Name: "Kenyan Shilling", Symbol: "KSh", Rate: 150},
	{Code: "EUR", Name: "Euro", Symbol: "€", Rate: 0.92},
	{Code: "GBP", Name: "British Pound", Symbol: "£", Rate: 0.79},
	{Code: "NGN", Name: "Nigerian Naira", Symbol: "₦", Rate: 1550},
	{Code: "ZAR", Name: "South African Rand", Symbol: "R", Rate: 18.5},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹", Rate: 83},
}

type detectionRule struct {
	pattern string
	code    string
}

// Detection scans these rules in order and the first match wins. Patterns
// can overlap (a locale may contain more than one country fragment), so the
// order below is part of the contract and must not be reshuffled.
var detectionRules = []detectionRule{
	{pattern: "nairobi", code: "KES"},
	{pattern: "-ke", code: "KES"},
	{pattern: "lagos", code: "NGN"},
	{pattern: "-ng", code: "NGN"},
	{pattern: "johannesburg", code: "ZAR"},
	{pattern: "-za", code: "ZAR"},
	{pattern: "london", code: "GBP"},
	{pattern: "-gb", code: "GBP"},
	{pattern: "berlin", code: "EUR"},
	{pattern: "paris", code: "EUR"},
	{pattern: "madrid", code: "EUR"},
	{pattern: "rome", code: "EUR"},
	{pattern: "-de", code: "EUR"},
	{pattern: "-fr", code: "EUR"},
	{pattern: "kolkata", code: "INR"},
	{pattern: "-in", code: "INR"},
}

// All returns the rate table in display order.
func All() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

// Find resolves a currency by code.
func Find(code string) (Currency, bool) {
	for _, c := range currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// Detect maps timezone/locale signals to a currency code. Each rule's
// pattern is matched as a case-insensitive substring of either signal;
// the first matching rule wins, falling back to DefaultCode.
func Detect(timezone, locale string) string {
	tz := strings.ToLower(timezone)
	loc := strings.ToLower(locale)
	for _, rule := range detectionRules {
		if strings.Contains(tz, rule.pattern) || strings.Contains(loc, rule.pattern) {
			return rule.code
		}
	}
	return DefaultCode
}

// Format converts a numeraire amount and renders it for display: symbol
// followed by the converted amount with grouped thousands, keeping the
// fractional part only when it is non-zero. Unknown codes fall back to the
// numeraire.
func Format(amount float64, code string) string {
	c, ok := Find(code)
	if !ok {
		c, _ = Find(DefaultCode)
	}
	return c.Symbol + humanize.Commaf(amount*c.Rate)
}
