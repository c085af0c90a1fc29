package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
)

// ComputeUnderpaymentPenalty is a flat-rate estimate of the Form 2210
// penalty. Installment timing is not modeled.
func ComputeUnderpaymentPenalty(cfg taxconfig.FederalConfig, currentYearTax, priorYearTax, payments decimal.Decimal) domain.Form2210Result {
	currentYearRequired := RoundCurrency(currentYearTax.Mul(cfg.CurrentYearPaymentRate))
	priorYearRequired := RoundCurrency(priorYearTax.Mul(cfg.SafeHarborPriorYearRate))
	required := decimal.Min(currentYearRequired, priorYearRequired)

	underpayment := positivePart(required.Sub(payments))
	safeHarbor := payments.GreaterThanOrEqual(priorYearTax.Mul(cfg.SafeHarborPriorYearRate))

	penalty := decimal.Zero
	if !safeHarbor {
		penalty = RoundCurrency(underpayment.Mul(cfg.UnderpaymentPenaltyRate))
	}

	return domain.Form2210Result{
		RequiredAnnualPayment:   required,
		PriorYearTax:            RoundCurrency(priorYearTax),
		CurrentYearTax:          RoundCurrency(currentYearTax),
		TotalPaymentsAndCredits: RoundCurrency(payments),
		UnderpaymentAmount:      RoundCurrency(underpayment),
		PenaltyDue:              penalty,
		SafeHarborMet:           safeHarbor,
	}
}
