package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
)

// ComputeCAExemptionCredit computes personal and dependent exemption credits.
// Above the threshold each exemption loses the phase-out amount for every
// increment of AGI, or fraction of one, over the threshold.
func ComputeCAExemptionCredit(input *domain.TaxReturnInput, cfg taxconfig.CaliforniaConfig, caAGI decimal.Decimal) domain.CAExemptionCreditResult {
	persons := int64(input.PersonCount())
	dependents := int64(len(input.Dependents))

	personal := cfg.PersonalExemptionCredit.Mul(decimal.NewFromInt(persons))
	dependent := cfg.DependentExemptionCredit.Mul(decimal.NewFromInt(dependents))
	beforePhaseout := personal.Add(dependent)

	var increments int64
	reduction := decimal.Zero
	if excess := caAGI.Sub(cfg.ExemptionPhaseoutThreshold); excess.IsPositive() {
		increments = excess.Div(cfg.ExemptionPhaseoutIncrement).Ceil().IntPart()
		reduction = cfg.ExemptionPhaseoutAmount.
			Mul(decimal.NewFromInt(increments)).
			Mul(decimal.NewFromInt(persons + dependents))
	}

	return domain.CAExemptionCreditResult{
		PersonalCredits:     RoundCurrency(personal),
		DependentCredits:    RoundCurrency(dependent),
		TotalBeforePhaseout: RoundCurrency(beforePhaseout),
		PhaseoutIncrements:  increments,
		PhaseoutReduction:   RoundCurrency(reduction),
		TotalCredit:         RoundCurrency(positivePart(beforePhaseout.Sub(reduction))),
	}
}
