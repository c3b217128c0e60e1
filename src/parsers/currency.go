package parsers

import (
	"strings"

	"github.com/shopspring/decimal"
)

// supportedCurrencies is the closed set of currency codes that may appear in
// comdirect documents. Every monetary pattern anchors on this set right
// before the numeric token, so an amount next to an unknown code never
// matches and surfaces as a missing field instead of a silent misread.
var supportedCurrencies = []string{
	"AED", "ARS", "AUD", "BDT", "BGN", "BRL", "CAD", "CHF", "CNY", "COP",
	"CZK", "DKK", "EGP", "EUR", "GBP", "GEL", "GHS", "HKD", "HUF", "IDR",
	"ILS", "INR", "JMD", "JPY", "KRW", "KWD", "KZT", "MAD", "MXN", "MYR",
	"NGN", "NOK", "NZD", "OMR", "PEN", "PHP", "PKR", "PLN", "RON", "RUB",
	"SAR", "SEK", "SGD", "THB", "TRY", "TWD", "UAH", "USD", "VND", "ZAR",
}

// currencyPattern is the alternation used inside every extraction regex.
var currencyPattern = "(" + strings.Join(supportedCurrencies, "|") + ")"

// IsSupportedCurrency reports whether code belongs to the closed currency set.
func IsSupportedCurrency(code string) bool {
	for _, c := range supportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

// ConvertAtRate expresses a foreign-currency amount in the account currency
// by dividing it by the document-stated exchange rate, rounded to two
// decimal places. A rate of 1 leaves the amount unchanged apart from
// rounding.
func ConvertAtRate(amount, rate decimal.Decimal) float64 {
	return amount.Div(rate).Round(2).InexactFloat64()
}
