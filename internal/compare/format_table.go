package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/rptax/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing returns
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("TAX WHAT-IF COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base: %s\n", compSet.BaseName))
	if compSet.InputPath != "" {
		sb.WriteString(fmt.Sprintf("Input: %s\n", compSet.InputPath))
	}
	sb.WriteString("\n")

	nameWidth := 20
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Return",
		numWidth, "AGI",
		numWidth, "Federal Tax",
		numWidth, "CA Tax",
		numWidth, "Combined"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s", alt.Name))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", alt.Description))
			}
			sb.WriteString(":\n")
			sb.WriteString(fmt.Sprintf("  Federal tax:      %s\n", tf.formatDelta(alt.FederalTaxDiffFromBase)))
			sb.WriteString(fmt.Sprintf("  California tax:   %s\n", tf.formatDelta(alt.CaliforniaDiffFromBase)))
			sb.WriteString(fmt.Sprintf("  Combined:         %s\n", tf.formatDelta(alt.CombinedDiffFromBase)))
			if !alt.MarginalRate.IsZero() {
				sb.WriteString(fmt.Sprintf("  Marginal rate:    %s\n", output.FormatPercentage(alt.MarginalRate)))
			}
			for _, line := range alt.LineChanges {
				sb.WriteString(fmt.Sprintf("    %-10s %-6s %-36s %s\n",
					line.Section, line.Ref, tf.truncate(line.Label, 36), tf.formatDelta(line.Change)))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single return row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.Name
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, output.FormatCurrency(result.AGI),
		numWidth, output.FormatCurrency(result.FederalTax),
		numWidth, output.FormatCurrency(result.CaliforniaTax),
		numWidth, output.FormatCurrency(result.CombinedTax))
}

// formatDelta prints a signed currency change
func (tf *TableFormatter) formatDelta(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+" + output.FormatCurrency(delta)
	}
	if delta.IsZero() {
		return "no change"
	}
	return output.FormatCurrency(delta)
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a single-line summary of combined tax changes
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s %s", compSet.BaseName, output.FormatCurrency(compSet.BaseResult.CombinedTax)))
	for _, alt := range compSet.AlternativeResults {
		sb.WriteString(fmt.Sprintf(" | %s: %s", alt.Name, tf.formatDelta(alt.CombinedDiffFromBase)))
	}
	return sb.String()
}
