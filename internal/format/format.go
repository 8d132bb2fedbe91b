// Package format holds presentation-layer formatting: locale-aware currency
// strings and the academic-year label. The balance engine and services only
// ever deal in decimals; formatting is applied at the edge, keyed per column.
package format

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency renders decimal amounts with the symbol and separators of a
// locale, e.g. 45 → "€ 45.00" for EUR.
type Currency struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewCurrency builds a formatter for the given BCP 47 locale and ISO 4217
// currency code.
func NewCurrency(locale, code string) (*Currency, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}
	return &Currency{
		unit:    unit,
		printer: message.NewPrinter(tag),
	}, nil
}

// Format renders an amount with the currency symbol.
func (c *Currency) Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return c.printer.Sprintf("%v", currency.Symbol(c.unit.Amount(f)))
}

// YearLabel renders an academic year as "2024-25". Zero yields "".
func YearLabel(yearStart int) string {
	if yearStart == 0 {
		return ""
	}
	return fmt.Sprintf("%d-%02d", yearStart, (yearStart+1)%100)
}
