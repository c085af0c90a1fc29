package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/rptax/internal/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Padding(0, 1)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	refStyle     = lipgloss.NewStyle().Width(7).Foreground(lipgloss.Color("241"))
	labelStyle   = lipgloss.NewStyle().Width(38)
	amountStyle  = lipgloss.NewStyle().Width(14).Align(lipgloss.Right)
	totalStyle   = amountStyle.Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func renderLine(buf *bytes.Buffer, line ReportLine) {
	amount := amountStyle
	if line.Total {
		amount = totalStyle
	}
	fmt.Fprintln(buf, refStyle.Render(line.Ref)+labelStyle.Render(line.Label)+amount.Render(FormatCurrency(line.Amount)))
}

func renderSection(buf *bytes.Buffer, title string, lines []ReportLine) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, sectionStyle.Render(title))
	fmt.Fprintln(buf, mutedStyle.Render(strings.Repeat("─", 59)))
	for _, line := range lines {
		renderLine(buf, line)
	}
}

func renderTitle(buf *bytes.Buffer, results *domain.TaxReturnResult) {
	fmt.Fprintln(buf, titleStyle.Render(fmt.Sprintf("%d TAX RETURN (%s)", results.Federal.TaxYear, strings.ToUpper(string(results.Federal.FilingStatus)))))
}

// ConsoleFormatter renders the full line-by-line report with form details
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.TaxReturnResult) ([]byte, error) {
	var buf bytes.Buffer
	renderTitle(&buf, results)

	renderSection(&buf, "FEDERAL (Form 1040)", FederalLines(results.Federal))
	writeFederalDetail(&buf, results.Federal)
	renderSection(&buf, "CALIFORNIA (Form 540)", CaliforniaLines(results.California))
	writeCaliforniaDetail(&buf, results.California)

	if warnings := Warnings(results); len(warnings) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, sectionStyle.Render("REVIEW"))
		for _, w := range warnings {
			fmt.Fprintln(&buf, warnStyle.Render("! "+w))
		}
	}
	return buf.Bytes(), nil
}

func writeFederalDetail(buf *bytes.Buffer, f *domain.FederalTaxResult) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, sectionStyle.Render("Federal detail"))
	fmt.Fprintf(buf, "  Tax method:            %s\n", f.TaxComputation.Method)
	if ws := f.ScheduleDTaxWorksheet; ws != nil {
		fmt.Fprintf(buf, "  Preferential income:   %s (0%%: %s, 15%%: %s, 20%%: %s)\n",
			FormatCurrency(ws.PreferentialIncome), FormatCurrency(ws.AmountAt0Percent),
			FormatCurrency(ws.AmountAt15Percent), FormatCurrency(ws.AmountAt20Percent))
		fmt.Fprintf(buf, "  Ordinary income tax:   %s\n", FormatCurrency(ws.TaxOnOrdinaryIncome))
	}
	fmt.Fprintf(buf, "  SALT before cap:       %s (cap %s)\n", FormatCurrency(f.ScheduleA.SALTBeforeCap), FormatCurrency(f.ScheduleA.SALTCap))
	fmt.Fprintf(buf, "  Itemized total:        %s\n", FormatCurrency(f.ScheduleA.TotalItemized))
	fmt.Fprintf(buf, "  Net investment income: %s\n", FormatCurrency(f.Form8960.NetInvestmentIncome))
	if carry := f.ScheduleD.CapitalLossCarryover; carry.ShortTerm.IsNegative() || carry.LongTerm.IsNegative() {
		fmt.Fprintf(buf, "  Loss carryover:        %s short-term, %s long-term\n",
			FormatCurrency(carry.ShortTerm), FormatCurrency(carry.LongTerm))
	}
	for _, form := range f.Form8606 {
		fmt.Fprintf(buf, "  Form 8606 (%s): converted %s, taxable %s, nontaxable ratio %s, basis left %s\n",
			form.Spouse, FormatCurrency(form.ConversionAmount), FormatCurrency(form.TaxableConversion),
			FormatPercentage(form.NontaxableRatio), FormatCurrency(form.RemainingBasis))
	}
	if f.Form1116.ForeignTaxPaid.IsPositive() {
		fmt.Fprintf(buf, "  Foreign tax credit:    %s allowed, %s carried forward\n",
			FormatCurrency(f.Form1116.CreditAllowed), FormatCurrency(f.Form1116.TotalCarryforward))
	}
	if f.ScheduleB.RequiresPartIII {
		fmt.Fprintln(buf, "  Schedule B Part III must be completed")
	}
}

func writeCaliforniaDetail(buf *bytes.Buffer, c *domain.CaliforniaTaxResult) {
	it := c.ItemizedDeductions
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, sectionStyle.Render("California detail"))
	fmt.Fprintf(buf, "  Federal itemized:      %s\n", FormatCurrency(it.FederalItemized))
	fmt.Fprintf(buf, "  SALT cap added back:   %s\n", FormatCurrency(it.SALTCapReversal))
	fmt.Fprintf(buf, "  State tax removed:     %s\n", FormatCurrency(it.StateIncomeTaxRemoved))
	fmt.Fprintf(buf, "  Phase-out reduction:   %s\n", FormatCurrency(it.AGIPhaseoutReduction))
	fmt.Fprintf(buf, "  Standard deduction:    %s\n", FormatCurrency(c.StandardDeduction))
	fmt.Fprintf(buf, "  Exemption phase-out:   %d increments, %s\n",
		c.ExemptionCredit.PhaseoutIncrements, FormatCurrency(c.ExemptionCredit.PhaseoutReduction))
}

// SummaryFormatter prints only the bottom line of each return
type SummaryFormatter struct{}

func (s SummaryFormatter) Name() string { return "summary" }

func (s SummaryFormatter) Format(results *domain.TaxReturnResult) ([]byte, error) {
	var buf bytes.Buffer
	renderTitle(&buf, results)
	f, c := results.Federal, results.California

	renderSection(&buf, "SUMMARY", []ReportLine{
		{Ref: "1040", Label: "Federal AGI", Amount: f.Income.AGI},
		{Ref: "1040", Label: "Federal total tax", Amount: f.TotalTax},
		balanceLine(SectionFederal, "1040", f.BalanceDueOrRefund),
		{Ref: "540", Label: "California taxable income", Amount: c.TaxableIncome},
		{Ref: "540", Label: "California total tax", Amount: c.TotalTax},
		balanceLine(SectionCalifornia, "540", c.BalanceDueOrRefund),
	})
	return buf.Bytes(), nil
}
