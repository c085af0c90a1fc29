package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/output"
	"github.com/shopspring/decimal"
)

// leversForGoal lists the levers that can move a goal
func leversForGoal(goal OptimizationGoal) []Lever {
	switch goal {
	case GoalTaxBudget:
		return []Lever{LeverLongTermGain, LeverShortTermGain, LeverOtherIncome}
	case GoalTaxSavings:
		return []Lever{LeverCharitableCash}
	case GoalSafeHarbor, GoalZeroFederalBalance:
		return []Lever{LeverFederalEstimate}
	case GoalZeroCABalance:
		return []Lever{LeverCaliforniaEstimate}
	}
	return nil
}

// OptimizeAllLevers solves a goal with every lever that can move it
func (s *Solver) OptimizeAllLevers(ctx context.Context, base *domain.TaxReturnInput, goal OptimizationGoal, constraints Constraints, priorYearTax decimal.Decimal) (*MultiLeverResult, error) {
	levers := leversForGoal(goal)
	if len(levers) == 0 {
		return nil, &BreakEvenError{Operation: "optimize_all", Message: fmt.Sprintf("unsupported goal: %s", goal)}
	}

	multi := &MultiLeverResult{Goal: goal}
	for _, lever := range levers {
		result, err := s.Optimize(ctx, base, OptimizationRequest{
			Lever:        lever,
			Goal:         goal,
			Constraints:  constraints,
			PriorYearTax: priorYearTax,
		})
		if err != nil {
			return nil, &BreakEvenError{Operation: "optimize_all", Message: fmt.Sprintf("lever %s failed", lever), Cause: err}
		}
		multi.Results = append(multi.Results, *result)
	}

	multi.Best = bestResult(goal, multi.Results)
	multi.Recommendations = recommendations(multi)
	return multi, nil
}

// bestResult picks the largest amount for budget goals and the smallest otherwise
func bestResult(goal OptimizationGoal, results []OptimizationResult) *OptimizationResult {
	var best *OptimizationResult
	for i := range results {
		r := &results[i]
		if !r.Success {
			continue
		}
		switch {
		case best == nil:
			best = r
		case goal.searchesLargest() && r.Amount.GreaterThan(best.Amount):
			best = r
		case !goal.searchesLargest() && r.Amount.LessThan(best.Amount):
			best = r
		}
	}
	return best
}

func recommendations(m *MultiLeverResult) []string {
	if m.Best == nil {
		return []string{"No lever reaches the goal within the amount bounds"}
	}

	var recs []string
	switch m.Goal {
	case GoalTaxBudget:
		recs = append(recs, fmt.Sprintf("Up to %s of %s keeps the added tax at %s",
			output.FormatCurrency(m.Best.Amount), leverLabel(m.Best.Lever), output.FormatCurrency(m.Best.TaxChange)))
	case GoalTaxSavings:
		recs = append(recs, fmt.Sprintf("%s of %s saves %s",
			output.FormatCurrency(m.Best.Amount), leverLabel(m.Best.Lever), output.FormatCurrency(m.Best.TaxChange.Neg())))
	case GoalSafeHarbor:
		if m.Best.Amount.IsZero() {
			recs = append(recs, "Payments already meet the prior-year safe harbor")
		} else {
			recs = append(recs, fmt.Sprintf("An additional %s of %s meets the prior-year safe harbor",
				output.FormatCurrency(m.Best.Amount), leverLabel(m.Best.Lever)))
		}
	default:
		recs = append(recs, fmt.Sprintf("An additional %s of %s clears the balance due",
			output.FormatCurrency(m.Best.Amount), leverLabel(m.Best.Lever)))
	}
	return recs
}

func leverLabel(l Lever) string {
	switch l {
	case LeverLongTermGain:
		return "long-term gain"
	case LeverShortTermGain:
		return "short-term gain"
	case LeverOtherIncome:
		return "other income"
	case LeverCharitableCash:
		return "cash giving"
	case LeverFederalEstimate:
		return "federal estimated tax"
	case LeverCaliforniaEstimate:
		return "California estimated tax"
	}
	return string(l)
}
