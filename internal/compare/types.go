package compare

import (
	"fmt"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/output"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one computed return with its headline figures
type ComparisonResult struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Result      *domain.TaxReturnResult `json:"-"`

	TaxYear              int             `json:"taxYear"`
	AGI                  decimal.Decimal `json:"agi"`
	FederalTaxableIncome decimal.Decimal `json:"federalTaxableIncome"`
	FederalTax           decimal.Decimal `json:"federalTax"`
	CaliforniaTax        decimal.Decimal `json:"californiaTax"`
	CombinedTax          decimal.Decimal `json:"combinedTax"`
	FederalBalance       decimal.Decimal `json:"federalBalance"`
	CaliforniaBalance    decimal.Decimal `json:"californiaBalance"`
	EffectiveRate        decimal.Decimal `json:"effectiveRate"`

	// Comparison to base
	AGIDiffFromBase         decimal.Decimal `json:"agiDiffFromBase"`
	FederalTaxDiffFromBase  decimal.Decimal `json:"federalTaxDiffFromBase"`
	CaliforniaDiffFromBase  decimal.Decimal `json:"californiaDiffFromBase"`
	CombinedDiffFromBase    decimal.Decimal `json:"combinedDiffFromBase"`
	MarginalRate            decimal.Decimal `json:"marginalRate"`
	LineChanges             []LineDelta     `json:"lineChanges,omitempty"`
	PenaltyChangesFromBase  bool            `json:"penaltyChangesFromBase,omitempty"`
	DeductionMethodSwitched bool            `json:"deductionMethodSwitched,omitempty"`
}

// LineDelta is a report line whose amount differs from the base return
type LineDelta struct {
	Section     string          `json:"section"`
	Ref         string          `json:"ref"`
	Label       string          `json:"label"`
	Base        decimal.Decimal `json:"base"`
	Alternative decimal.Decimal `json:"alternative"`
	Change      decimal.Decimal `json:"change"`
}

// ComparisonSet is a base return and the alternatives computed from it
type ComparisonSet struct {
	BaseName           string             `json:"baseName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	InputPath          string             `json:"inputPath,omitempty"`
}

// MetricsCalculator extracts key metrics from computed returns
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics summarizes one computed return
func (mc *MetricsCalculator) CalculateMetrics(name string, results *domain.TaxReturnResult) ComparisonResult {
	f, c := results.Federal, results.California
	combined := f.TotalTax.Add(c.TotalTax)
	result := ComparisonResult{
		Name:                 name,
		Result:               results,
		TaxYear:              f.TaxYear,
		AGI:                  f.Income.AGI,
		FederalTaxableIncome: f.Deductions.TaxableIncome,
		FederalTax:           f.TotalTax,
		CaliforniaTax:        c.TotalTax,
		CombinedTax:          combined,
		FederalBalance:       f.BalanceDueOrRefund,
		CaliforniaBalance:    c.BalanceDueOrRefund,
	}
	if f.Income.AGI.IsPositive() {
		result.EffectiveRate = combined.Div(f.Income.AGI).Round(4)
	}
	return result
}

// CalculateComparison fills in the differences between an alternative and the base
func (mc *MetricsCalculator) CalculateComparison(alt, base ComparisonResult) ComparisonResult {
	alt.AGIDiffFromBase = alt.AGI.Sub(base.AGI)
	alt.FederalTaxDiffFromBase = alt.FederalTax.Sub(base.FederalTax)
	alt.CaliforniaDiffFromBase = alt.CaliforniaTax.Sub(base.CaliforniaTax)
	alt.CombinedDiffFromBase = alt.CombinedTax.Sub(base.CombinedTax)
	if !alt.AGIDiffFromBase.IsZero() {
		alt.MarginalRate = alt.CombinedDiffFromBase.Div(alt.AGIDiffFromBase).Round(4)
	}

	if alt.Result != nil && base.Result != nil {
		alt.LineChanges = lineDeltas(base.Result, alt.Result)
		alt.PenaltyChangesFromBase = !alt.Result.Federal.Form2210.PenaltyDue.Equal(base.Result.Federal.Form2210.PenaltyDue)
		alt.DeductionMethodSwitched = alt.Result.Federal.Deductions.DeductionUsed != base.Result.Federal.Deductions.DeductionUsed ||
			alt.Result.California.DeductionUsed != base.Result.California.DeductionUsed
	}
	return alt
}

// lineDeltas pairs report lines by section, ref and label
func lineDeltas(base, alt *domain.TaxReturnResult) []LineDelta {
	type key struct{ section, ref, label string }
	baseAmounts := make(map[key]decimal.Decimal)
	for _, line := range output.Lines(base) {
		baseAmounts[key{line.Section, line.Ref, line.Label}] = line.Amount
	}

	var out []LineDelta
	for _, line := range output.Lines(alt) {
		before := baseAmounts[key{line.Section, line.Ref, line.Label}]
		if before.Equal(line.Amount) {
			continue
		}
		out = append(out, LineDelta{
			Section:     line.Section,
			Ref:         line.Ref,
			Label:       line.Label,
			Base:        before,
			Alternative: line.Amount,
			Change:      line.Amount.Sub(before),
		})
	}
	return out
}

// GenerateRecommendations highlights the alternatives worth a closer look
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}
	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	lowest := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TaxYear != compSet.BaseResult.TaxYear {
			continue
		}
		if alt.CombinedTax.LessThan(lowest.CombinedTax) {
			lowest = alt
		}
	}
	if lowest != compSet.BaseResult {
		recommendations = append(recommendations,
			fmt.Sprintf("Lowest tax: %s saves %s in combined federal and California tax",
				lowest.Name, output.FormatCurrency(compSet.BaseResult.CombinedTax.Sub(lowest.CombinedTax))))
	}

	for _, alt := range compSet.AlternativeResults {
		if alt.DeductionMethodSwitched {
			recommendations = append(recommendations,
				fmt.Sprintf("%s changes the standard/itemized choice", alt.Name))
		}
		if alt.PenaltyChangesFromBase {
			recommendations = append(recommendations,
				fmt.Sprintf("%s changes the estimated underpayment penalty to %s",
					alt.Name, output.FormatCurrency(alt.Result.Federal.Form2210.PenaltyDue)))
		}
	}
	return recommendations
}
