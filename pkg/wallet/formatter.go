package wallet

import (
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts as localized currency strings for one fixed locale.
// Safe for concurrent use.
type Formatter struct {
	tag language.Tag
}

// NewFormatter returns a Formatter for tag.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{tag: tag}
}

// ParseFormatter builds a Formatter from a BCP 47 locale string such as "en-US".
func ParseFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	return NewFormatter(tag), nil
}

// Locale returns the formatter's language tag.
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

// Format renders amount in the currency identified by the ISO 4217 code. An
// unknown code falls back to plain number formatting followed by the code.
func (f *Formatter) Format(amount float64, currencyCode string) string {
	p := message.NewPrinter(f.tag)

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return p.Sprintf("%.2f %s", amount, currencyCode)
	}

	scale, _ := currency.Standard.Rounding(unit)
	return p.Sprint(currency.Symbol(unit.Amount(roundTo(amount, scale))))
}

func roundTo(amount float64, scale int) float64 {
	pow := math.Pow10(scale)
	return math.Round(amount*pow) / pow
}
