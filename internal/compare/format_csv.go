package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Return",
		"Type",
		"Tax Year",
		"AGI",
		"Federal Taxable Income",
		"Federal Tax",
		"California Tax",
		"Combined Tax",
		"Federal Balance",
		"California Balance",
		"Effective Rate",
		"Combined Diff from Base",
		"Marginal Rate",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}
	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, kind string) []string {
	return []string{
		result.Name,
		kind,
		fmt.Sprintf("%d", result.TaxYear),
		result.AGI.StringFixed(0),
		result.FederalTaxableIncome.StringFixed(0),
		result.FederalTax.StringFixed(0),
		result.CaliforniaTax.StringFixed(0),
		result.CombinedTax.StringFixed(0),
		result.FederalBalance.StringFixed(0),
		result.CaliforniaBalance.StringFixed(0),
		result.EffectiveRate.StringFixed(4),
		result.CombinedDiffFromBase.StringFixed(0),
		result.MarginalRate.StringFixed(4),
	}
}
