package compare

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Common locale/currency pairs.
const (
	DefaultLocale   = "en-US"
	DefaultCurrency = "USD"
	KPILocale       = "id-ID"
	KPICurrency     = "IDR"
)

// symbols maps ISO codes to the prefix printed before amounts. Text prefixes
// end in a no-break space, as browsers print them.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"IDR": "Rp\u00a0",
}

// CurrencyFormatter renders whole-unit currency amounts with locale grouping.
type CurrencyFormatter struct {
	printer *message.Printer
	code    string
	symbol  string
}

// NewCurrencyFormatter creates a formatter for a BCP 47 locale and an ISO 4217 code.
func NewCurrencyFormatter(locale, code string) (*CurrencyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}

	iso := unit.String()
	symbol, ok := symbols[iso]
	if !ok {
		symbol = iso + "\u00a0"
	}

	return &CurrencyFormatter{
		printer: message.NewPrinter(tag),
		code:    iso,
		symbol:  symbol,
	}, nil
}

// MustCurrencyFormatter is like NewCurrencyFormatter but panics on error.
// Intended for the package-level defaults.
func MustCurrencyFormatter(locale, code string) *CurrencyFormatter {
	f, err := NewCurrencyFormatter(locale, code)
	if err != nil {
		panic(err)
	}
	return f
}

// Code returns the ISO currency code.
func (f *CurrencyFormatter) Code() string {
	return f.code
}

// Format renders v rounded half away from zero to whole units, e.g. "$2,500",
// "-$75", "Rp 3.500.000". Non-finite values print as "$∞", "-$∞", "$NaN".
func (f *CurrencyFormatter) Format(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
	}

	switch {
	case math.IsNaN(v):
		return f.symbol + "NaN"
	case math.IsInf(v, 0):
		return sign + f.symbol + "∞"
	}

	amount := math.Round(math.Abs(v))
	if amount == 0 {
		sign = ""
	}
	return sign + f.symbol + f.printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
}

// Compact renders chart axis labels: millions as "$2M", thousands as "$75K",
// smaller values verbatim.
func (f *CurrencyFormatter) Compact(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return f.Format(v)
	case v >= 1_000_000:
		return f.symbol + Fixed(v/1_000_000, 0) + "M"
	case v >= 1_000:
		return f.symbol + Fixed(v/1_000, 0) + "K"
	default:
		return f.symbol + strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// Number renders v with locale grouping and at most maxDigits decimals.
func (f *CurrencyFormatter) Number(v float64, maxDigits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Fixed(v, 0)
	}
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(maxDigits)))
}
