package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
)

// checkConfiguration rejects a table that was not built for the return's
// year and filing status
func checkConfiguration(input *domain.TaxReturnInput, cfg taxconfig.Configuration) error {
	if cfg.Year != input.TaxYear || cfg.FilingStatus != input.FilingStatus {
		return domain.NewConfigurationMismatch("return is %d / %s but tax table is %d / %s",
			input.TaxYear, input.FilingStatus, cfg.Year, cfg.FilingStatus)
	}
	return nil
}

// ComputeFederalPayments totals withholding, estimates and the prior-year
// overpayment applied
func ComputeFederalPayments(input *domain.TaxReturnInput) domain.FederalPayments {
	w2 := sumOf(input.W2s, func(w domain.W2) decimal.Decimal { return w.FederalWithheld })
	divInt := sumOf(input.Form1099DivInts, func(f domain.Form1099DivInt) decimal.Decimal { return f.FederalWithheld })
	retirement := sumOf(input.Form1099Rs, func(r domain.Form1099R) decimal.Decimal { return r.FederalWithheld })
	estimates := input.EstimatedPayments.Federal.Total()
	overpayment := input.Carryovers.PriorYearOverpaymentApplied

	return domain.FederalPayments{
		W2Withheld:           RoundCurrency(w2),
		Form1099Withheld:     RoundCurrency(divInt),
		Form1099RWithheld:    RoundCurrency(retirement),
		EstimatedPayments:    RoundCurrency(estimates),
		PriorYearOverpayment: RoundCurrency(overpayment),
		Total:                RoundCurrency(w2.Add(divInt).Add(retirement).Add(estimates).Add(overpayment)),
	}
}

// ComputeFederalTax runs the federal pipeline. priorYearTax feeds only the
// underpayment penalty estimate and may be zero. The input is validated
// first; any failure aborts the run and is returned unchanged.
func ComputeFederalTax(input *domain.TaxReturnInput, cfg taxconfig.Configuration, priorYearTax decimal.Decimal) (*domain.FederalTaxResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := checkConfiguration(input, cfg); err != nil {
		return nil, err
	}
	if priorYearTax.IsNegative() {
		return nil, domain.NewRangeViolation("prior_year_tax", "must not be negative, got %s", priorYearTax.String())
	}
	fed := cfg.Federal

	income := ComputeIncome(input, fed)
	scheduleB := ComputeScheduleB(input, fed)
	scheduleD := ComputeScheduleD(input, fed)
	scheduleA := ComputeScheduleA(input, fed, income.AGI)
	qbi := ComputeQBIDeduction(input, fed, income.AGI, scheduleA.TotalItemized)
	deductions := ComputeDeductions(fed, income.AGI, scheduleA, qbi)

	var worksheet *domain.ScheduleDTaxWorksheetResult
	if scheduleD.UseScheduleDTaxWorksheet {
		ws := ComputeScheduleDTaxWorksheet(WorksheetInput{
			TaxableIncome:      deductions.TaxableIncome,
			QualifiedDividends: scheduleD.QualifiedDividends,
			NetLongTermGain:    scheduleD.NetLongTermGainLoss,
			Unrecaptured1250:   scheduleD.UnrecapturedSection1250Gain,
		}, fed)
		worksheet = &ws
	}
	taxComputation := ComputeRegularTax(fed, deductions, worksheet)

	form8606 := ComputeForm8606(input)
	form8959 := ComputeAdditionalMedicareTax(input, fed)
	form8960 := ComputeNIIT(fed, income)
	otherTaxes := form8959.AdditionalMedicareTax.Add(form8960.NIIT)
	totalBeforeCredits := taxComputation.Tax.Add(otherTaxes)

	form1116 := ComputeForeignTaxCredit(input, income.TotalIncome, taxComputation.Tax)
	dependentCredit := fed.OtherDependentCredit.Mul(decimal.NewFromInt(int64(len(input.Dependents))))
	totalCredits := form1116.CreditAllowed.Add(dependentCredit)
	totalTax := positivePart(totalBeforeCredits.Sub(totalCredits))

	payments := ComputeFederalPayments(input)
	form2210 := ComputeUnderpaymentPenalty(fed, totalTax, priorYearTax, payments.Total)

	return &domain.FederalTaxResult{
		TaxYear:               input.TaxYear,
		FilingStatus:          input.FilingStatus,
		Income:                income,
		ScheduleB:             scheduleB,
		ScheduleD:             scheduleD,
		ScheduleDTaxWorksheet: worksheet,
		ScheduleA:             scheduleA,
		Form8995A:             qbi,
		Deductions:            deductions,
		TaxComputation:        taxComputation,
		Form8606:              form8606,
		Form8959:              form8959,
		Form8960:              form8960,
		Form1116:              form1116,
		Form2210:              form2210,
		OtherTaxes:            otherTaxes,
		TotalTaxBeforeCredits: totalBeforeCredits,
		OtherDependentCredit:  RoundCurrency(dependentCredit),
		TotalCredits:          RoundCurrency(totalCredits),
		TotalTax:              RoundCurrency(totalTax),
		Payments:              payments,
		TotalPayments:         payments.Total,
		BalanceDueOrRefund:    RoundCurrency(totalTax).Sub(payments.Total),
	}, nil
}
