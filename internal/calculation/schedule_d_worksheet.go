package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
)

// WorksheetInput carries the figures the Schedule D Tax Worksheet reads
type WorksheetInput struct {
	TaxableIncome      decimal.Decimal
	QualifiedDividends decimal.Decimal
	NetLongTermGain    decimal.Decimal
	Unrecaptured1250   decimal.Decimal
}

// ComputeScheduleDTaxWorksheet stacks qualified dividends and net long-term
// gain on top of ordinary income and taxes the stack at the capital gain
// rates. The result never exceeds tax on the full amount at ordinary rates.
func ComputeScheduleDTaxWorksheet(in WorksheetInput, cfg taxconfig.FederalConfig) domain.ScheduleDTaxWorksheetResult {
	netLTCG := positivePart(in.NetLongTermGain)
	taxable := positivePart(in.TaxableIncome)

	preferential := decimal.Min(in.QualifiedDividends.Add(netLTCG), taxable)
	ordinary := positivePart(taxable.Sub(preferential))
	ordinaryTax := RoundCurrency(ProgressiveTax(ordinary, cfg.OrdinaryBrackets))

	zeroBand, fifteenBand, twentyBand := cfg.CapitalGainBrackets[0], cfg.CapitalGainBrackets[1], cfg.CapitalGainBrackets[2]

	room0 := positivePart(zeroBand.Max.Sub(ordinary))
	at0 := decimal.Min(preferential, room0)
	remaining := preferential.Sub(at0)

	room15 := positivePart(fifteenBand.Max.Sub(ordinary.Add(at0)))
	at15 := decimal.Min(remaining, room15)
	at20 := remaining.Sub(at15)

	tax0 := RoundCurrency(at0.Mul(zeroBand.Rate))
	tax15 := RoundCurrency(at15.Mul(fifteenBand.Rate))
	tax20 := RoundCurrency(at20.Mul(twentyBand.Rate))

	// Unrecaptured section 1250 gain is capped at the gain taxed above 0% and
	// re-rated only while it fits in the 15% layer. Gain spilling into the 20%
	// layer is flagged, not corrected.
	gain1250 := decimal.Min(decimal.Min(positivePart(in.Unrecaptured1250), netLTCG), at15.Add(at20))
	surcharge := decimal.Zero
	unresolved := false
	if gain1250.IsPositive() {
		if gain1250.LessThanOrEqual(at15) {
			surcharge = RoundCurrency(gain1250.Mul(cfg.Unrecaptured1250Rate.Sub(fifteenBand.Rate)))
		} else {
			unresolved = at20.IsPositive()
		}
	}

	preferentialTax := tax0.Add(tax15).Add(tax20).Add(surcharge)
	totalTax := ordinaryTax.Add(preferentialTax)
	regularTax := RoundCurrency(ProgressiveTax(taxable, cfg.OrdinaryBrackets))

	return domain.ScheduleDTaxWorksheetResult{
		TaxableIncome:         RoundCurrency(taxable),
		QualifiedDividends:    RoundCurrency(in.QualifiedDividends),
		NetLTCG:               RoundCurrency(netLTCG),
		PreferentialIncome:    RoundCurrency(preferential),
		OrdinaryIncome:        RoundCurrency(ordinary),
		TaxOnOrdinaryIncome:   ordinaryTax,
		AmountAt0Percent:      RoundCurrency(at0),
		AmountAt15Percent:     RoundCurrency(at15),
		AmountAt20Percent:     RoundCurrency(at20),
		TaxAt0Percent:         tax0,
		TaxAt15Percent:        tax15,
		TaxAt20Percent:        tax20,
		Section1250Gain:       RoundCurrency(gain1250),
		Section1250Surcharge:  surcharge,
		Section1250Unresolved: unresolved,
		TotalPreferentialTax:  preferentialTax,
		TotalTax:              totalTax,
		RegularTax:            regularTax,
		FinalTax:              decimal.Min(totalTax, regularTax),
	}
}
