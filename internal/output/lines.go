package output

import (
	"fmt"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
)

// Section names used by the line-oriented formatters
const (
	SectionFederal    = "Federal"
	SectionCalifornia = "California"
)

// ReportLine is one labelled amount of a return, keyed by its form line
type ReportLine struct {
	Section string          `json:"section"`
	Ref     string          `json:"ref"`
	Label   string          `json:"label"`
	Amount  decimal.Decimal `json:"amount"`
	Total   bool            `json:"total,omitempty"`
}

func balanceLine(section, ref string, balance decimal.Decimal) ReportLine {
	if balance.IsNegative() {
		return ReportLine{Section: section, Ref: ref, Label: "Refund", Amount: balance.Neg(), Total: true}
	}
	return ReportLine{Section: section, Ref: ref, Label: "Amount you owe", Amount: balance, Total: true}
}

func deductionLabel(method domain.DeductionMethod) string {
	if method == domain.DeductionItemized {
		return "Itemized deductions"
	}
	return "Standard deduction"
}

// FederalLines lists the Form 1040 lines of a federal result
func FederalLines(f *domain.FederalTaxResult) []ReportLine {
	withholding := f.Payments.W2Withheld.Add(f.Payments.Form1099Withheld).Add(f.Payments.Form1099RWithheld)
	estimates := f.Payments.EstimatedPayments.Add(f.Payments.PriorYearOverpayment)

	lines := []ReportLine{
		{Ref: "1z", Label: "Wages", Amount: f.Income.Wages},
		{Ref: "2a", Label: "Tax-exempt interest", Amount: f.Income.TaxExemptInterest},
		{Ref: "2b", Label: "Taxable interest", Amount: f.Income.TaxableInterest},
		{Ref: "3a", Label: "Qualified dividends", Amount: f.Income.QualifiedDividends},
		{Ref: "3b", Label: "Ordinary dividends", Amount: f.Income.OrdinaryDividends},
		{Ref: "4b", Label: "Taxable retirement distributions", Amount: f.Income.RetirementDistributionsTaxable},
		{Ref: "7", Label: "Capital gain or (loss)", Amount: f.Income.NetCapitalGainLoss},
		{Ref: "8", Label: "Other income", Amount: f.Income.OtherIncome},
		{Ref: "9", Label: "Total income", Amount: f.Income.TotalIncome, Total: true},
		{Ref: "10", Label: "Adjustments to income", Amount: f.Income.Adjustments},
		{Ref: "11", Label: "Adjusted gross income", Amount: f.Income.AGI, Total: true},
		{Ref: "12", Label: deductionLabel(f.Deductions.DeductionUsed), Amount: f.Deductions.DeductionAmount},
		{Ref: "13", Label: "Qualified business income deduction", Amount: f.Deductions.QBIDeduction},
		{Ref: "15", Label: "Taxable income", Amount: f.Deductions.TaxableIncome, Total: true},
		{Ref: "16", Label: "Tax", Amount: f.TaxComputation.Tax},
		{Ref: "S2.11", Label: "Additional Medicare Tax", Amount: f.Form8959.AdditionalMedicareTax},
		{Ref: "S2.12", Label: "Net investment income tax", Amount: f.Form8960.NIIT},
		{Ref: "21", Label: "Total credits", Amount: f.TotalCredits},
		{Ref: "24", Label: "Total tax", Amount: f.TotalTax, Total: true},
		{Ref: "25d", Label: "Federal income tax withheld", Amount: withholding},
		{Ref: "26", Label: "Estimated and applied payments", Amount: estimates},
		{Ref: "33", Label: "Total payments", Amount: f.TotalPayments, Total: true},
		balanceLine(SectionFederal, "37", f.BalanceDueOrRefund),
	}
	for i := range lines {
		lines[i].Section = SectionFederal
	}
	return lines
}

// CaliforniaLines lists the Form 540 lines of a California result
func CaliforniaLines(c *domain.CaliforniaTaxResult) []ReportLine {
	estimates := c.Payments.EstimatedPayments
	withholding := c.Payments.Total.Sub(estimates)

	lines := []ReportLine{
		{Ref: "13", Label: "Federal AGI", Amount: c.ScheduleCA.FederalAGI},
		{Ref: "14", Label: "California subtractions", Amount: c.ScheduleCA.CASubtractions},
		{Ref: "16", Label: "California additions", Amount: c.ScheduleCA.CAAdditions},
		{Ref: "17", Label: "California AGI", Amount: c.ScheduleCA.CAAGI, Total: true},
		{Ref: "18", Label: deductionLabel(c.DeductionUsed), Amount: c.DeductionAmount},
		{Ref: "19", Label: "Taxable income", Amount: c.TaxableIncome, Total: true},
		{Ref: "31", Label: "Tax", Amount: c.TaxComputation.RegularTax},
		{Ref: "32", Label: "Exemption credits", Amount: c.ExemptionCredit.TotalCredit},
		{Ref: "62", Label: "Behavioral health services tax", Amount: c.TaxComputation.MentalHealthTax},
		{Ref: "64", Label: "Total tax", Amount: c.TotalTax, Total: true},
		{Ref: "71", Label: "California income tax withheld", Amount: withholding},
		{Ref: "72", Label: "Estimated tax payments", Amount: estimates},
		{Ref: "77", Label: "Total payments", Amount: c.TotalPayments, Total: true},
		balanceLine(SectionCalifornia, "111", c.BalanceDueOrRefund),
	}
	for i := range lines {
		lines[i].Section = SectionCalifornia
	}
	return lines
}

// Lines returns the federal lines followed by the California lines
func Lines(results *domain.TaxReturnResult) []ReportLine {
	return append(FederalLines(results.Federal), CaliforniaLines(results.California)...)
}

// Warnings lists conditions a preparer should review by hand
func Warnings(results *domain.TaxReturnResult) []string {
	var out []string
	f := results.Federal
	if ws := f.ScheduleDTaxWorksheet; ws != nil && ws.Section1250Unresolved {
		out = append(out, fmt.Sprintf("Unrecaptured section 1250 gain of %s extends past the 15%% layer into the 20%% layer; the 25%% rate was not applied",
			FormatCurrency(ws.Section1250Gain)))
	}
	if f.ScheduleD.Use28PercentRateWorksheet {
		out = append(out, "Collectibles or section 1250 gain present; the 28% Rate Gain Worksheet is not computed")
	}
	for _, form := range f.Form8606 {
		if form.ProRataWarning {
			out = append(out, fmt.Sprintf("Form 8606 (%s): SEP or SIMPLE IRA balances make part of the conversion taxable", form.Spouse))
		}
	}
	if f.Form2210.PenaltyDue.IsPositive() {
		out = append(out, fmt.Sprintf("Estimated underpayment penalty of %s", FormatCurrency(f.Form2210.PenaltyDue)))
	}
	return out
}
