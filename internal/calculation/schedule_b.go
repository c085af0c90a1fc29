package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
)

// ComputeScheduleB lists interest and ordinary dividend payers. Payers with a
// zero amount are omitted from the listing.
func ComputeScheduleB(input *domain.TaxReturnInput, cfg taxconfig.FederalConfig) domain.ScheduleBResult {
	result := domain.ScheduleBResult{
		InterestItems: []domain.PayerAmount{},
		DividendItems: []domain.PayerAmount{},
	}

	totalInterest := decimal.Zero
	totalDividends := decimal.Zero
	for _, f := range input.Form1099DivInts {
		if f.InterestIncome.IsPositive() {
			result.InterestItems = append(result.InterestItems, domain.PayerAmount{
				Payer:  f.Payer,
				Amount: RoundCurrency(f.InterestIncome),
			})
			totalInterest = totalInterest.Add(f.InterestIncome)
		}
		if f.OrdinaryDividends.IsPositive() {
			result.DividendItems = append(result.DividendItems, domain.PayerAmount{
				Payer:  f.Payer,
				Amount: RoundCurrency(f.OrdinaryDividends),
			})
			totalDividends = totalDividends.Add(f.OrdinaryDividends)
		}
	}

	result.TotalInterest = RoundCurrency(totalInterest)
	result.TotalOrdinaryDividends = RoundCurrency(totalDividends)
	result.RequiresPartIII = result.TotalInterest.GreaterThan(cfg.ScheduleBThreshold) ||
		result.TotalOrdinaryDividends.GreaterThan(cfg.ScheduleBThreshold)
	return result
}
