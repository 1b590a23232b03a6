package predictor

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var pricePrinter = message.NewPrinter(language.English)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// FormatPrice renders a prediction as a user-facing currency string,
// eg. Prediction{450000, "USD"} becomes "$450,000.00". Unknown currency
// codes are kept as a prefix instead of a symbol.
func FormatPrice(p Prediction) string {
	amount := pricePrinter.Sprint(number.Decimal(
		p.Price,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
	code := strings.ToUpper(strings.TrimSpace(p.Currency))
	if symbol, ok := currencySymbols[code]; ok {
		return symbol + amount
	}
	return code + " " + amount
}
