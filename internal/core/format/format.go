// Package format renders canonical numeric values as display strings.
// Pure functions, consumed at presentation time only.
package format

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The cadastre is francophone, so numbers are grouped the French way
// ("1 250 000").
var printer = message.NewPrinter(language.French)

// defaultCurrency is the CFA franc, used when a listing carries no or an
// unknown currency code.
var defaultCurrency = currency.MustParseISO("XOF")

// Price renders a nullable price with its currency unit.
func Price(amount *float64, code string) string {
	if amount == nil {
		return "Prix sur demande"
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = defaultCurrency
	}
	return printer.Sprintf("%.0f %v", *amount, unit)
}

// PricePerArea renders a nullable per-square-meter price.
func PricePerArea(amount *float64, code string) string {
	if amount == nil {
		return ""
	}
	return Price(amount, code) + "/m²"
}

// Area renders a nullable surface in square meters.
func Area(sqm *float64) string {
	if sqm == nil {
		return ""
	}
	return printer.Sprintf("%.0f m²", *sqm)
}
