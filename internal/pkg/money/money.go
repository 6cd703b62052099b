package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale used for amounts shown to readers
var Locale = language.Vietnamese

// Format renders an integer amount with locale digit grouping, e.g. "10.000 VND"
func Format(amount int64, currency string) string {
	p := message.NewPrinter(Locale)
	if currency == "" {
		return p.Sprintf("%d", amount)
	}
	return p.Sprintf("%d %s", amount, currency)
}
