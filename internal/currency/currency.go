// Package currency provides a fixed-rate currency conversion table.
package currency

import "log/slog"

// Converter converts amounts between currencies using a static table of
// rates relative to a single reference currency.
type Converter struct {
	rates   map[string]float64
	symbols map[string]string
	// Reference is the currency all table rates are expressed against.
	Reference string
}

// defaultRates maps currency code to its value in the reference unit (CNY).
// e.g. 1 USD = 7.25 CNY.
var defaultRates = map[string]float64{
	"CNY": 1.0,
	"USD": 7.25,
	"EUR": 7.85,
	"GBP": 9.20,
	"JPY": 0.048,
	"HKD": 0.93,
	"KRW": 0.0053,
	"TWD": 0.225,
	"SGD": 5.40,
	"AUD": 4.70,
	"CAD": 5.25,
	"THB": 0.20,
}

var defaultSymbols = map[string]string{
	"CNY": "¥",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "JP¥",
	"HKD": "HK$",
	"KRW": "₩",
	"TWD": "NT$",
	"SGD": "S$",
	"AUD": "A$",
	"CAD": "C$",
	"THB": "฿",
}

// NewConverter returns a converter backed by the built-in rate table.
func NewConverter() *Converter {
	return &Converter{
		rates:     defaultRates,
		symbols:   defaultSymbols,
		Reference: "CNY",
	}
}

// NewConverterWithRates returns a converter over a caller-supplied table.
// Rates are expressed as units of reference per unit of the keyed currency.
func NewConverterWithRates(reference string, rates map[string]float64) *Converter {
	return &Converter{
		rates:     rates,
		symbols:   defaultSymbols,
		Reference: reference,
	}
}

// Rate returns the rate-to-reference for a currency code. Unknown codes
// convert at parity rather than failing; a debug log makes the miss visible.
func (c *Converter) Rate(code string) float64 {
	rate, ok := c.rates[code]
	if !ok {
		slog.Debug("unknown currency code, converting at parity", "code", code)
		return 1.0
	}
	return rate
}

// Convert converts an amount from one currency to another through the
// reference unit.
func (c *Converter) Convert(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	return amount * c.Rate(from) / c.Rate(to)
}

// Symbol returns the display symbol for a currency code. Unknown codes
// display as the code itself.
func (c *Converter) Symbol(code string) string {
	if sym, ok := c.symbols[code]; ok {
		return sym
	}
	return code
}
