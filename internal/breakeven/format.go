package breakeven

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rgehrsitz/rptax/internal/output"
)

// FormatResult renders a single solver result as text
func FormatResult(w io.Writer, result *OptimizationResult) error {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN SOLVER\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	fmt.Fprintf(&sb, "Lever: %s\n", leverLabel(result.Lever))
	fmt.Fprintf(&sb, "Goal:  %s\n\n", result.Goal)

	if !result.Success {
		fmt.Fprintf(&sb, "No solution: %s\n", result.ConvergenceInfo)
		_, err := io.WriteString(w, sb.String())
		return err
	}

	fmt.Fprintf(&sb, "%-28s %14s\n", "Amount", output.FormatCurrency(result.Amount))
	fmt.Fprintf(&sb, "%-28s %14s\n", "Combined tax (base)", output.FormatCurrency(result.BaseCombinedTax))
	fmt.Fprintf(&sb, "%-28s %14s\n", "Combined tax (solved)", output.FormatCurrency(result.CombinedTax))
	fmt.Fprintf(&sb, "%-28s %14s\n", "Change", output.FormatCurrency(result.TaxChange))
	fmt.Fprintf(&sb, "%-28s %14s\n", "Federal balance", output.FormatCurrency(result.FederalBalance))
	fmt.Fprintf(&sb, "%-28s %14s\n", "California balance", output.FormatCurrency(result.CaliforniaBalance))
	fmt.Fprintf(&sb, "%-28s %14s\n", "Safe harbor", yesNo(result.SafeHarborMet))
	fmt.Fprintf(&sb, "\n%s\n", result.ConvergenceInfo)

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatMultiResult renders every lever tried for a goal
func FormatMultiResult(w io.Writer, multi *MultiLeverResult) error {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN SOLVER\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	fmt.Fprintf(&sb, "Goal: %s\n\n", multi.Goal)

	fmt.Fprintf(&sb, "%-26s %14s %14s %14s\n", "Lever", "Amount", "Tax change", "Fed balance")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	for _, r := range multi.Results {
		amount := "not reached"
		if r.Success {
			amount = output.FormatCurrency(r.Amount)
		}
		fmt.Fprintf(&sb, "%-26s %14s %14s %14s\n", leverLabel(r.Lever), amount,
			output.FormatCurrency(r.TaxChange), output.FormatCurrency(r.FederalBalance))
	}

	if len(multi.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		for _, rec := range multi.Recommendations {
			sb.WriteString("- " + rec + "\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatJSON writes any solver output as indented JSON
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func yesNo(b bool) string {
	if b {
		return "met"
	}
	return "not met"
}
