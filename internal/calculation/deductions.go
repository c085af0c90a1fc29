package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
)

// ComputeDeductions picks the larger of the standard and itemized deductions,
// subtracts it and the QBI deduction from AGI, and floors taxable income at 0.
// Ties go to the standard deduction.
func ComputeDeductions(cfg taxconfig.FederalConfig, agi decimal.Decimal, scheduleA domain.ScheduleAResult, qbi domain.Form8995AResult) domain.DeductionResult {
	method := domain.DeductionStandard
	amount := cfg.StandardDeduction
	if scheduleA.TotalItemized.GreaterThan(cfg.StandardDeduction) {
		method = domain.DeductionItemized
		amount = scheduleA.TotalItemized
	}

	total := amount.Add(qbi.QBIDeduction)

	return domain.DeductionResult{
		StandardDeduction: RoundCurrency(cfg.StandardDeduction),
		ItemizedDeduction: scheduleA.TotalItemized,
		DeductionUsed:     method,
		DeductionAmount:   RoundCurrency(amount),
		QBIDeduction:      qbi.QBIDeduction,
		TotalDeductions:   RoundCurrency(total),
		TaxableIncome:     RoundCurrency(positivePart(agi.Sub(total))),
	}
}
