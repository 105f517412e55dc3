// Package format provides display formatting for currency amounts and unit counts.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56"). Non-finite amounts render as "$0.00";
// formatting never fails. Display only: computation always runs on the raw
// numbers, never on formatted strings.
func Money(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	formatted := printer.Sprintf("%.2f", math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Units returns a unit count rounded to the nearest whole unit with
// thousands separators (e.g., "-1,234"). Non-finite counts render as "0".
func Units(count float64) string {
	if math.IsNaN(count) || math.IsInf(count, 0) {
		count = 0
	}
	return printer.Sprintf("%.0f", count)
}
