package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
)

// ComputeQBIDeduction computes the Form 8995-A deduction on section 199A
// dividends. The taxable income limit uses AGI less the larger of the
// standard and itemized deductions, i.e. taxable income before QBI.
func ComputeQBIDeduction(input *domain.TaxReturnInput, cfg taxconfig.FederalConfig, agi, itemized decimal.Decimal) domain.Form8995AResult {
	reitDividends := sumOf(input.Form1099DivInts, func(f domain.Form1099DivInt) decimal.Decimal {
		return f.Section199ADividends
	})

	tentative := RoundCurrency(reitDividends.Mul(cfg.QBIRate))
	proxyTaxable := positivePart(agi.Sub(decimal.Max(cfg.StandardDeduction, itemized)))
	limitation := RoundCurrency(proxyTaxable.Mul(cfg.QBIRate))

	return domain.Form8995AResult{
		QualifiedREITDividends:  RoundCurrency(reitDividends),
		TentativeDeduction:      tentative,
		TaxableIncomeBeforeQBI:  RoundCurrency(proxyTaxable),
		TaxableIncomeLimitation: limitation,
		QBIDeduction:            decimal.Min(tentative, limitation),
	}
}
