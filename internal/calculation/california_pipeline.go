package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
)

// ComputeCAPayments totals California withholding and estimated payments
func ComputeCAPayments(input *domain.TaxReturnInput) domain.CAPayments {
	w2 := sumOf(input.W2s, func(w domain.W2) decimal.Decimal { return w.StateWithheld })
	divInt := sumOf(input.Form1099DivInts, func(f domain.Form1099DivInt) decimal.Decimal { return f.StateWithheld })
	retirement := sumOf(input.Form1099Rs, func(r domain.Form1099R) decimal.Decimal { return r.StateWithheld })
	estimates := input.EstimatedPayments.California.Total()

	return domain.CAPayments{
		W2Withheld:        RoundCurrency(w2),
		Form1099Withheld:  RoundCurrency(divInt),
		Form1099RWithheld: RoundCurrency(retirement),
		EstimatedPayments: RoundCurrency(estimates),
		Total:             RoundCurrency(w2.Add(divInt).Add(retirement).Add(estimates)),
	}
}

// ComputeCaliforniaTax runs the Form 540 pipeline on top of the federal AGI
// and federal Schedule A produced by ComputeFederalTax.
func ComputeCaliforniaTax(input *domain.TaxReturnInput, cfg taxconfig.Configuration, federalAGI decimal.Decimal, scheduleA domain.ScheduleAResult) (*domain.CaliforniaTaxResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := checkConfiguration(input, cfg); err != nil {
		return nil, err
	}
	ca := cfg.California

	scheduleCA := ComputeScheduleCA(federalAGI)
	itemized := ComputeCAItemizedDeductions(input, ca, scheduleCA.CAAGI, scheduleA)

	method := domain.DeductionStandard
	deduction := RoundCurrency(ca.StandardDeduction)
	if itemized.UsesItemized {
		method = domain.DeductionItemized
		deduction = itemized.TotalCAItemized
	}
	taxableIncome := positivePart(scheduleCA.CAAGI.Sub(deduction))

	exemption := ComputeCAExemptionCredit(input, ca, scheduleCA.CAAGI)
	taxComputation := ComputeCATax(ca, taxableIncome, exemption)
	payments := ComputeCAPayments(input)

	return &domain.CaliforniaTaxResult{
		TaxYear:            input.TaxYear,
		ScheduleCA:         scheduleCA,
		ItemizedDeductions: itemized,
		StandardDeduction:  RoundCurrency(ca.StandardDeduction),
		DeductionUsed:      method,
		DeductionAmount:    deduction,
		TaxableIncome:      taxComputation.TaxableIncome,
		ExemptionCredit:    exemption,
		TaxComputation:     taxComputation,
		TotalTax:           taxComputation.TaxAfterCredits,
		Payments:           payments,
		TotalPayments:      payments.Total,
		BalanceDueOrRefund: taxComputation.TaxAfterCredits.Sub(payments.Total),
	}, nil
}
