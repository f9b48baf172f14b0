package rental

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount as a US dollar string with grouping,
// e.g. 1234.5 -> "$1,234.50".
func FormatCurrency(amount float64) string {
	return usd.Sprintf("$%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
