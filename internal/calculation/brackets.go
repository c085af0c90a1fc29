// Package calculation implements the federal and California return pipelines.
// Every calculator is a pure function of the input snapshot, the tax table for
// the year, and results computed earlier in the same pipeline run.
package calculation

import (
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
)

// ProgressiveTax applies a progressive rate schedule to amount. Brackets must
// partition [0, inf) in ascending order; taxconfig.Validate enforces that.
func ProgressiveTax(amount decimal.Decimal, brackets []taxconfig.Bracket) decimal.Decimal {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	var totalTax decimal.Decimal
	for _, bracket := range brackets {
		if amount.LessThanOrEqual(bracket.Min) {
			break
		}
		upper := amount
		if bracket.Bounded() {
			upper = decimal.Min(amount, *bracket.Max)
		}
		incomeInBracket := upper.Sub(bracket.Min)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(incomeInBracket.Mul(bracket.Rate))
		}
	}

	return totalTax
}

// LayeredTax is the tax on layer when it sits on top of base
func LayeredTax(base, layer decimal.Decimal, brackets []taxconfig.Bracket) decimal.Decimal {
	if layer.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return ProgressiveTax(base.Add(layer), brackets).Sub(ProgressiveTax(base, brackets))
}

// RoundCurrency rounds to whole dollars, halves away from zero
func RoundCurrency(x decimal.Decimal) decimal.Decimal {
	return x.Round(0)
}

// sumOf adds f(item) across items
func sumOf[T any](items []T, f func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(f(item))
	}
	return total
}

func positivePart(x decimal.Decimal) decimal.Decimal {
	return decimal.Max(x, decimal.Zero)
}
