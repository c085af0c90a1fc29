package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeForm8606 applies the pro-rata rule to each spouse's Roth conversion.
// Spouses are computed independently; traditional, SEP and SIMPLE balances are
// pooled into the year-end value.
func ComputeForm8606(input *domain.TaxReturnInput) []domain.Form8606Result {
	results := make([]domain.Form8606Result, 0, len(input.BackdoorRoth))
	for _, br := range input.BackdoorRoth {
		results = append(results, computeForm8606(br, input.PriorBasisFor(br)))
	}
	return results
}

func computeForm8606(br domain.BackdoorRoth, priorBasis decimal.Decimal) domain.Form8606Result {
	one := decimal.NewFromInt(1)

	totalBasis := br.TraditionalIRAContribution.Add(priorBasis)
	yearEndValue := br.YearEndTraditionalIRABalance.
		Add(br.YearEndSEPIRABalance).
		Add(br.YearEndSIMPLEIRABalance)
	conversion := br.RothConversionAmount

	ratio := one
	denominator := yearEndValue.Add(conversion)
	if !denominator.IsZero() {
		ratio = decimal.Min(totalBasis.Div(denominator), one)
	}

	nontaxable := RoundCurrency(conversion.Mul(ratio))

	return domain.Form8606Result{
		Spouse:                  br.Spouse,
		CurrentYearContribution: RoundCurrency(br.TraditionalIRAContribution),
		PriorYearBasis:          RoundCurrency(priorBasis),
		TotalBasis:              RoundCurrency(totalBasis),
		YearEndIRAValue:         RoundCurrency(yearEndValue),
		ConversionAmount:        RoundCurrency(conversion),
		NontaxableRatio:         ratio,
		NontaxablePortion:       nontaxable,
		TaxableConversion:       RoundCurrency(conversion.Sub(nontaxable)),
		RemainingBasis:          RoundCurrency(totalBasis.Sub(nontaxable)),
		ProRataWarning:          br.YearEndSEPIRABalance.IsPositive() || br.YearEndSIMPLEIRABalance.IsPositive(),
	}
}
