package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
)

// ComputeRegularTax produces Form 1040 line 16. When the worksheet applies
// its final tax is used, otherwise the ordinary brackets.
func ComputeRegularTax(cfg taxconfig.FederalConfig, deductions domain.DeductionResult, worksheet *domain.ScheduleDTaxWorksheetResult) domain.TaxComputationResult {
	if worksheet != nil {
		return domain.TaxComputationResult{
			Method: domain.TaxMethodScheduleDWorksheet,
			Tax:    worksheet.FinalTax,
		}
	}
	return domain.TaxComputationResult{
		Method: domain.TaxMethodRegularBrackets,
		Tax:    RoundCurrency(ProgressiveTax(deductions.TaxableIncome, cfg.OrdinaryBrackets)),
	}
}
