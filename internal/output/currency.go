package output

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders a whole-dollar amount with grouping, e.g. $580,530
// or -$6,368
func FormatCurrency(amount decimal.Decimal) string {
	whole := amount.Round(0)
	if whole.IsNegative() {
		return "-" + FormatCurrency(whole.Neg())
	}
	return printer.Sprintf("$%d", whole.IntPart())
}

// FormatPercentage renders a ratio such as 0.25 as 25.00%
func FormatPercentage(ratio decimal.Decimal) string {
	return ratio.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
