package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
)

// ComputeAdditionalMedicareTax computes Form 8959 on combined Medicare wages
func ComputeAdditionalMedicareTax(input *domain.TaxReturnInput, cfg taxconfig.FederalConfig) domain.Form8959Result {
	medicareWages := sumOf(input.W2s, func(w domain.W2) decimal.Decimal { return w.MedicareWages })
	medicareWithheld := sumOf(input.W2s, func(w domain.W2) decimal.Decimal { return w.MedicareTax })

	excess := positivePart(medicareWages.Sub(cfg.AdditionalMedicareThreshold))

	return domain.Form8959Result{
		TotalMedicareWages:    RoundCurrency(medicareWages),
		Threshold:             cfg.AdditionalMedicareThreshold,
		ExcessWages:           RoundCurrency(excess),
		AdditionalMedicareTax: RoundCurrency(excess.Mul(cfg.AdditionalMedicareRate)),
		MedicareWithheld:      RoundCurrency(medicareWithheld),
	}
}
