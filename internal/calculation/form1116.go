package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeForeignTaxCredit is a single-basket Form 1116. Foreign source income
// is the ordinary dividends of statements that report foreign tax paid.
// The prior-year carryover is reported but not consumed.
func ComputeForeignTaxCredit(input *domain.TaxReturnInput, totalIncome, regularTax decimal.Decimal) domain.Form1116Result {
	var foreignTaxPaid, foreignSourceIncome decimal.Decimal
	for _, f := range input.Form1099DivInts {
		if !f.ForeignTaxPaid.IsPositive() {
			continue
		}
		foreignTaxPaid = foreignTaxPaid.Add(f.ForeignTaxPaid)
		foreignSourceIncome = foreignSourceIncome.Add(f.OrdinaryDividends)
	}

	limitation := decimal.Zero
	if totalIncome.IsPositive() {
		limitation = RoundCurrency(foreignSourceIncome.Div(totalIncome).Mul(regularTax))
	}

	paid := RoundCurrency(foreignTaxPaid)
	allowed := decimal.Min(paid, limitation)
	carryover := paid.Sub(allowed)
	prior := RoundCurrency(input.Carryovers.ForeignTaxCreditCarryover)

	return domain.Form1116Result{
		ForeignTaxPaid:      paid,
		ForeignSourceIncome: RoundCurrency(foreignSourceIncome),
		CreditLimitation:    limitation,
		CreditAllowed:       allowed,
		CreditCarryover:     carryover,
		PriorYearCarryover:  prior,
		TotalCarryforward:   carryover.Add(prior),
	}
}
