package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
)

// stateIncomeTaxPaid is every state income tax dollar paid during the year:
// withholding on W-2, 1099 and 1099-R statements plus California estimates
func stateIncomeTaxPaid(input *domain.TaxReturnInput) decimal.Decimal {
	w2 := sumOf(input.W2s, func(w domain.W2) decimal.Decimal { return w.StateWithheld })
	divInt := sumOf(input.Form1099DivInts, func(f domain.Form1099DivInt) decimal.Decimal { return f.StateWithheld })
	retirement := sumOf(input.Form1099Rs, func(r domain.Form1099R) decimal.Decimal { return r.StateWithheld })
	return w2.Add(divInt).Add(retirement).Add(input.EstimatedPayments.California.Total())
}

// ComputeScheduleA computes federal itemized deductions. The SALT cap is
// evaluated at agi on every call since it phases down with income.
func ComputeScheduleA(input *domain.TaxReturnInput, cfg taxconfig.FederalConfig, agi decimal.Decimal) domain.ScheduleAResult {
	stateIncomeTax := stateIncomeTaxPaid(input)
	propertyTax := sumOf(input.PropertyTaxPayments, func(p domain.PropertyTaxPayment) decimal.Decimal { return p.Amount })
	vlf := sumOf(input.VehicleRegistrations, func(v domain.VehicleRegistration) decimal.Decimal { return v.VLF })

	saltBeforeCap := stateIncomeTax.Add(propertyTax).Add(vlf)
	saltCap := cfg.SALTCap.Cap(agi)
	saltDeduction := decimal.Min(saltBeforeCap, saltCap)

	mortgageInterest := sumOf(input.Form1098s, func(f domain.Form1098) decimal.Decimal { return f.MortgageInterest })

	var cash, nonCash decimal.Decimal
	for _, donation := range input.CharitableDonations {
		if donation.Type == domain.DonationNonCash {
			nonCash = nonCash.Add(donation.Amount)
		} else {
			cash = cash.Add(donation.Amount)
		}
	}
	charitable := cash.Add(nonCash)

	totalItemized := RoundCurrency(saltDeduction.Add(mortgageInterest).Add(charitable))

	return domain.ScheduleAResult{
		MedicalExpenses:   decimal.Zero,
		StateIncomeTax:    RoundCurrency(stateIncomeTax),
		PropertyTax:       RoundCurrency(propertyTax),
		VehicleLicenseFee: RoundCurrency(vlf),
		SALTBeforeCap:     RoundCurrency(saltBeforeCap),
		SALTCap:           RoundCurrency(saltCap),
		SALTDeduction:     RoundCurrency(saltDeduction),
		MortgageInterest:  RoundCurrency(mortgageInterest),
		CharitableCash:    RoundCurrency(cash),
		CharitableNonCash: RoundCurrency(nonCash),
		TotalCharitable:   RoundCurrency(charitable),
		TotalItemized:     totalItemized,
		UsesItemized:      totalItemized.GreaterThan(cfg.StandardDeduction),
	}
}
