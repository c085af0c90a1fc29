package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
)

// ComputeCATax applies the California brackets to all taxable income, with no
// preferential capital gain rate, adds the Mental Health Services Tax and
// subtracts credits. The result is floored at 0.
func ComputeCATax(cfg taxconfig.CaliforniaConfig, taxableIncome decimal.Decimal, exemption domain.CAExemptionCreditResult) domain.CATaxComputationResult {
	regular := RoundCurrency(ProgressiveTax(taxableIncome, cfg.Brackets))

	mentalHealth := decimal.Zero
	if taxableIncome.GreaterThan(cfg.MentalHealthThreshold) {
		mentalHealth = RoundCurrency(taxableIncome.Sub(cfg.MentalHealthThreshold).Mul(cfg.MentalHealthRate))
	}

	total := regular.Add(mentalHealth)
	otherCredits := decimal.Zero
	credits := exemption.TotalCredit.Add(otherCredits)

	return domain.CATaxComputationResult{
		TaxableIncome:   RoundCurrency(taxableIncome),
		RegularTax:      regular,
		MentalHealthTax: mentalHealth,
		TotalTax:        total,
		ExemptionCredit: exemption.TotalCredit,
		OtherCredits:    otherCredits,
		TaxAfterCredits: positivePart(total.Sub(credits)),
	}
}
