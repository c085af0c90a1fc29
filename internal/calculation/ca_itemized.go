package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
)

// ComputeCAItemizedDeductions starts from federal Schedule A, adds back the
// SALT amount the federal cap removed, drops state income tax (never
// deductible on the state return), allows miscellaneous deductions over the
// AGI floor, and applies the high-income phase-out.
func ComputeCAItemizedDeductions(input *domain.TaxReturnInput, cfg taxconfig.CaliforniaConfig, caAGI decimal.Decimal, scheduleA domain.ScheduleAResult) domain.CAItemizedDeductionResult {
	capReversal := positivePart(scheduleA.SALTBeforeCap.Sub(scheduleA.SALTDeduction))
	stateIncomeTax := scheduleA.StateIncomeTax

	miscFloor := caAGI.Mul(cfg.MiscDeductionFloorRate)
	misc := positivePart(input.CAMiscDeductions.Sub(miscFloor))

	beforePhaseout := positivePart(scheduleA.TotalItemized.
		Add(capReversal).
		Sub(stateIncomeTax).
		Add(misc))

	reduction := decimal.Zero
	if caAGI.GreaterThan(cfg.ItemizedPhaseoutThreshold) {
		byIncome := caAGI.Sub(cfg.ItemizedPhaseoutThreshold).Mul(cfg.ItemizedPhaseoutRate)
		byCap := beforePhaseout.Mul(cfg.ItemizedPhaseoutCap)
		reduction = decimal.Min(byIncome, byCap)
	}
	reduction = RoundCurrency(reduction)
	total := RoundCurrency(beforePhaseout).Sub(reduction)

	return domain.CAItemizedDeductionResult{
		FederalItemized:        scheduleA.TotalItemized,
		SALTCapReversal:        RoundCurrency(capReversal),
		StateIncomeTaxRemoved:  RoundCurrency(stateIncomeTax),
		MiscDeductions:         RoundCurrency(misc),
		ItemizedBeforePhaseout: RoundCurrency(beforePhaseout),
		AGIPhaseoutReduction:   reduction,
		TotalCAItemized:        total,
		UsesItemized:           total.GreaterThan(cfg.StandardDeduction),
	}
}
