package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
)

// ComputeIncome aggregates Form 1040 income lines and AGI
func ComputeIncome(input *domain.TaxReturnInput, cfg taxconfig.FederalConfig) domain.IncomeResult {
	wages := sumOf(input.W2s, func(w domain.W2) decimal.Decimal { return w.Wages })

	taxableInterest := sumOf(input.Form1099DivInts, func(f domain.Form1099DivInt) decimal.Decimal {
		return f.InterestIncome
	})
	taxExemptInterest := sumOf(input.Form1099DivInts, func(f domain.Form1099DivInt) decimal.Decimal {
		return f.TaxExemptInterest.Add(f.ExemptInterestDividends)
	})
	ordinaryDividends := sumOf(input.Form1099DivInts, func(f domain.Form1099DivInt) decimal.Decimal {
		return f.OrdinaryDividends
	})
	qualifiedDividends := sumOf(input.Form1099DivInts, func(f domain.Form1099DivInt) decimal.Decimal {
		return f.QualifiedDividends
	})

	_, netShortTerm, netLongTerm := netCapitalGains(input)
	loss := AllocateCapitalLoss(netShortTerm, netLongTerm, cfg.CapitalLossLimit)

	grossDistributions := sumOf(input.Form1099Rs, func(r domain.Form1099R) decimal.Decimal { return r.GrossDistribution })
	taxableDistributions := sumOf(input.Form1099Rs, func(r domain.Form1099R) decimal.Decimal { return r.TaxableAmount })

	otherIncome := sumOf(input.OtherIncome, func(o domain.OtherIncome) decimal.Decimal { return o.Amount })

	totalIncome := RoundCurrency(wages.
		Add(taxableInterest).
		Add(ordinaryDividends).
		Add(loss.Allowed).
		Add(taxableDistributions).
		Add(otherIncome))

	// Above-the-line adjustments are not modeled yet
	adjustments := decimal.Zero

	return domain.IncomeResult{
		Wages:                RoundCurrency(wages),
		TaxableInterest:      RoundCurrency(taxableInterest),
		TaxExemptInterest:    RoundCurrency(taxExemptInterest),
		OrdinaryDividends:    RoundCurrency(ordinaryDividends),
		QualifiedDividends:   RoundCurrency(qualifiedDividends),
		NetShortTermGainLoss: RoundCurrency(netShortTerm),
		NetLongTermGainLoss:  RoundCurrency(netLongTerm),
		NetCapitalGainLoss:   RoundCurrency(loss.Allowed),
		CapitalLossCarryover: domain.CapitalLossCarryover{
			ShortTerm: RoundCurrency(loss.Carryover.ShortTerm),
			LongTerm:  RoundCurrency(loss.Carryover.LongTerm),
		},
		RetirementDistributions:        RoundCurrency(grossDistributions),
		RetirementDistributionsTaxable: RoundCurrency(taxableDistributions),
		OtherIncome:                    RoundCurrency(otherIncome),
		TotalIncome:                    totalIncome,
		Adjustments:                    adjustments,
		AGI:                            totalIncome.Sub(adjustments),
	}
}
