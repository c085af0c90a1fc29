package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeScheduleCA converts federal AGI to California AGI. No additions or
// subtractions are modeled yet, so CA AGI equals federal AGI.
func ComputeScheduleCA(federalAGI decimal.Decimal) domain.ScheduleCAResult {
	additions := decimal.Zero
	subtractions := decimal.Zero
	adjustments := additions.Sub(subtractions)

	return domain.ScheduleCAResult{
		FederalAGI:     RoundCurrency(federalAGI),
		CAAdditions:    additions,
		CASubtractions: subtractions,
		CAAdjustments:  adjustments,
		CAAGI:          RoundCurrency(federalAGI.Add(adjustments)),
	}
}
