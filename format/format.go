package format

import (
	"fmt"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"strings"
)

// symbols for the currencies we know a symbol for; any other currency is rendered with its code
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"ILS": "₪",
	"INR": "₹",
	"KRW": "₩",
	"CAD": "CA$",
	"AUD": "A$",
	"BRL": "R$",
	"MXN": "MX$",
	"CHF": "CHF",
	"DKK": "kr",
	"NOK": "kr",
	"SEK": "kr",
	"RUB": "₽",
	"COP": "COL$",
}

// symbolAfter languages that write the currency symbol after the number, separated by a non-breaking space
var symbolAfter = map[string]bool{
	"de": true,
	"fr": true,
	"es": true,
	"it": true,
	"pt": true,
	"ru": true,
	"pl": true,
	"cs": true,
	"sv": true,
	"da": true,
	"nb": true,
	"fi": true,
}

// Formatter renders currency amounts with the number conventions of a locale
type Formatter struct{}

func New() *Formatter {
	return &Formatter{}
}

// Symbol the display symbol of a currency code, or the code itself
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code
}

// FormatCurrency renders value with two fraction digits. locale is a BCP 47 tag; POSIX style "de_DE" is accepted.
func (f *Formatter) FormatCurrency(value float64, code string, locale string) (string, error) {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("parsing locale [%v]: %w", locale, err)
	}

	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	number := message.NewPrinter(tag).Sprintf("%.2f", value)
	symbol := Symbol(code)

	base, _ := tag.Base()
	if symbolAfter[base.String()] {
		return sign + number + "\u00a0" + symbol, nil
	}
	if symbol == code {
		return sign + symbol + "\u00a0" + number, nil
	}
	return sign + symbol + number, nil
}
