package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/output"
)

// renderTab returns the full (unscrolled) text of a tab
func (m Model) renderTab(tab Tab) string {
	if m.results == nil || m.results.Federal == nil || m.results.California == nil {
		return ""
	}
	switch tab {
	case TabSummary:
		return renderSummary(m.results)
	case TabFederal:
		return renderLines(output.FederalLines(m.results.Federal))
	case TabForms:
		return renderForms(m.results.Federal)
	case TabCalifornia:
		return renderCalifornia(m.results.California)
	}
	return ""
}

// metricCard renders a bordered label/value pair
func metricCard(label, value string, valueStyle lipgloss.Style) string {
	return CardStyle.Width(26).Render(
		MetricLabelStyle.Render(label) + "\n" + valueStyle.Render(value),
	)
}

func balanceCard(label string, balance decimal.Decimal) string {
	if balance.IsNegative() {
		return metricCard(label+" refund", output.FormatCurrency(balance.Neg()), RefundStyle)
	}
	return metricCard(label+" owed", output.FormatCurrency(balance), OwedStyle)
}

func renderSummary(results *domain.TaxReturnResult) string {
	f, c := results.Federal, results.California

	federal := lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("Federal AGI", output.FormatCurrency(f.Income.AGI), MetricValueStyle),
		metricCard("Federal total tax", output.FormatCurrency(f.TotalTax), MetricValueStyle),
		balanceCard("Federal", f.BalanceDueOrRefund),
	)
	california := lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("CA taxable income", output.FormatCurrency(c.TaxableIncome), MetricValueStyle),
		metricCard("CA total tax", output.FormatCurrency(c.TotalTax), MetricValueStyle),
		balanceCard("California", c.BalanceDueOrRefund),
	)

	var b strings.Builder
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, federal, california))
	b.WriteString("\n")
	if warnings := output.Warnings(results); len(warnings) > 0 {
		b.WriteString("\n" + SectionStyle.Render("Review") + "\n")
		for _, w := range warnings {
			b.WriteString(WarningStyle.Render("! "+w) + "\n")
		}
	}
	return b.String()
}

func renderLines(lines []output.ReportLine) string {
	var b strings.Builder
	for _, line := range lines {
		amount := AmountStyle
		if line.Total {
			amount = TotalStyle
		}
		b.WriteString(RefStyle.Render(line.Ref) + LabelStyle.Render(line.Label) + amount.Render(output.FormatCurrency(line.Amount)) + "\n")
	}
	return b.String()
}

// formSection renders one titled block of label/amount rows
func formSection(b *strings.Builder, title string, rows ...row) {
	b.WriteString(SectionStyle.Render(title) + "\n")
	for _, r := range rows {
		b.WriteString("  " + LabelStyle.Render(r.label) + AmountStyle.Render(r.value) + "\n")
	}
	b.WriteString("\n")
}

type row struct {
	label string
	value string
}

func money(label string, amount decimal.Decimal) row {
	return row{label: label, value: output.FormatCurrency(amount)}
}

func renderForms(f *domain.FederalTaxResult) string {
	var b strings.Builder

	sb := f.ScheduleB
	rows := make([]row, 0, len(sb.InterestItems)+len(sb.DividendItems)+2)
	for _, item := range sb.InterestItems {
		rows = append(rows, money("Interest: "+item.Payer, item.Amount))
	}
	rows = append(rows, money("Total interest", sb.TotalInterest))
	for _, item := range sb.DividendItems {
		rows = append(rows, money("Dividends: "+item.Payer, item.Amount))
	}
	rows = append(rows, money("Total ordinary dividends", sb.TotalOrdinaryDividends))
	formSection(&b, "Schedule B", rows...)

	sd := f.ScheduleD
	formSection(&b, "Schedule D",
		money("Short-term gain/loss", sd.NetShortTermGainLoss),
		money("Long-term gain/loss", sd.NetLongTermGainLoss),
		money("Net gain/loss", sd.NetGainLoss),
		money("Loss deduction", sd.CapitalLossDeduction),
		money("Carryover short-term", sd.CapitalLossCarryover.ShortTerm),
		money("Carryover long-term", sd.CapitalLossCarryover.LongTerm),
	)

	if ws := f.ScheduleDTaxWorksheet; ws != nil {
		formSection(&b, "Qualified dividends and capital gain tax",
			money("Preferential income", ws.PreferentialIncome),
			money("Ordinary income", ws.OrdinaryIncome),
			money("Taxed at 0%", ws.AmountAt0Percent),
			money("Taxed at 15%", ws.AmountAt15Percent),
			money("Taxed at 20%", ws.AmountAt20Percent),
			money("Section 1250 surcharge", ws.Section1250Surcharge),
			money("Regular tax for comparison", ws.RegularTax),
			money("Tax", ws.FinalTax),
		)
	}

	sa := f.ScheduleA
	formSection(&b, "Schedule A",
		money("SALT before cap", sa.SALTBeforeCap),
		money("SALT deduction", sa.SALTDeduction),
		money("Mortgage interest", sa.MortgageInterest),
		money("Charitable", sa.TotalCharitable),
		money("Total itemized", sa.TotalItemized),
	)

	for _, form := range f.Form8606 {
		formSection(&b, fmt.Sprintf("Form 8606 (%s)", form.Spouse),
			money("Total basis", form.TotalBasis),
			money("Conversion", form.ConversionAmount),
			row{"Nontaxable ratio", output.FormatPercentage(form.NontaxableRatio)},
			money("Taxable conversion", form.TaxableConversion),
			money("Basis carried forward", form.RemainingBasis),
		)
	}

	formSection(&b, "Form 8959",
		money("Medicare wages", f.Form8959.TotalMedicareWages),
		money("Additional Medicare Tax", f.Form8959.AdditionalMedicareTax),
	)
	formSection(&b, "Form 8960",
		money("Net investment income", f.Form8960.NetInvestmentIncome),
		money("MAGI over threshold", f.Form8960.MAGIExcess),
		money("NIIT", f.Form8960.NIIT),
	)
	formSection(&b, "Form 8995-A",
		money("Qualified REIT dividends", f.Form8995A.QualifiedREITDividends),
		money("QBI deduction", f.Form8995A.QBIDeduction),
	)
	if f.Form1116.ForeignTaxPaid.IsPositive() {
		formSection(&b, "Form 1116",
			money("Foreign tax paid", f.Form1116.ForeignTaxPaid),
			money("Limitation", f.Form1116.CreditLimitation),
			money("Credit allowed", f.Form1116.CreditAllowed),
			money("Carryforward", f.Form1116.TotalCarryforward),
		)
	}

	harbor := "not met"
	if f.Form2210.SafeHarborMet {
		harbor = "met"
	}
	formSection(&b, "Form 2210",
		money("Required annual payment", f.Form2210.RequiredAnnualPayment),
		money("Underpayment", f.Form2210.UnderpaymentAmount),
		row{"Safe harbor", harbor},
		money("Estimated penalty", f.Form2210.PenaltyDue),
	)
	return b.String()
}

func renderCalifornia(c *domain.CaliforniaTaxResult) string {
	var b strings.Builder
	b.WriteString(renderLines(output.CaliforniaLines(c)))
	b.WriteString("\n")

	it := c.ItemizedDeductions
	formSection(&b, "Itemized deduction adjustments",
		money("Federal itemized", it.FederalItemized),
		money("SALT cap added back", it.SALTCapReversal),
		money("State income tax removed", it.StateIncomeTaxRemoved),
		money("Miscellaneous over floor", it.MiscDeductions),
		money("Phase-out reduction", it.AGIPhaseoutReduction),
		money("California itemized", it.TotalCAItemized),
		money("Standard deduction", c.StandardDeduction),
	)
	ex := c.ExemptionCredit
	formSection(&b, "Exemption credits",
		money("Personal", ex.PersonalCredits),
		money("Dependent", ex.DependentCredits),
		row{"Phase-out increments", fmt.Sprintf("%d", ex.PhaseoutIncrements)},
		money("Reduction", ex.PhaseoutReduction),
		money("Credit", ex.TotalCredit),
	)
	return b.String()
}
