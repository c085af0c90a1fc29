package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/rptax/internal/calculation"
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/transform"
	"github.com/shopspring/decimal"
)

// Solver finds the lever amount at which a goal is first (or last) met.
// Every goal is monotone in its lever, so a bisection over whole dollars
// converges.
type Solver struct {
	CalcEngine *calculation.Engine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.Engine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.Engine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// evaluation is one computed return at a lever amount
type evaluation struct {
	amount  decimal.Decimal
	results *domain.TaxReturnResult
}

func (e evaluation) combinedTax() decimal.Decimal {
	return e.results.Federal.TotalTax.Add(e.results.California.TotalTax)
}

// leverTransform maps a lever and amount onto a what-if transform
func leverTransform(lever Lever, amount decimal.Decimal) (transform.InputTransform, error) {
	switch lever {
	case LeverLongTermGain:
		return &transform.RealizeGain{Term: transform.TermLong, Amount: amount}, nil
	case LeverShortTermGain:
		return &transform.RealizeGain{Term: transform.TermShort, Amount: amount}, nil
	case LeverOtherIncome:
		return &transform.AddOtherIncome{Label: "break-even", Amount: amount}, nil
	case LeverCharitableCash:
		return &transform.AddCharitableCash{Amount: amount}, nil
	case LeverFederalEstimate:
		return &transform.AddEstimatedPayment{Jurisdiction: transform.JurisdictionFederal, Quarter: 4, Amount: amount}, nil
	case LeverCaliforniaEstimate:
		return &transform.AddEstimatedPayment{Jurisdiction: transform.JurisdictionCalifornia, Quarter: 4, Amount: amount}, nil
	}
	return nil, &BreakEvenError{Operation: "optimize", Message: fmt.Sprintf("unsupported lever: %s", lever)}
}

func (s *Solver) evaluate(ctx context.Context, base *domain.TaxReturnInput, req OptimizationRequest, amount decimal.Decimal) (evaluation, error) {
	t, err := leverTransform(req.Lever, amount)
	if err != nil {
		return evaluation{}, err
	}
	modified, err := transform.ApplyTransforms(base, []transform.InputTransform{t})
	if err != nil {
		return evaluation{}, err
	}
	results, err := s.CalcEngine.ComputeReturn(ctx, modified, req.PriorYearTax)
	if err != nil {
		return evaluation{}, err
	}
	return evaluation{amount: amount, results: results}, nil
}

// satisfied reports whether the goal holds at an evaluation
func satisfied(req OptimizationRequest, base, e evaluation) bool {
	switch req.Goal {
	case GoalTaxBudget:
		return e.combinedTax().Sub(base.combinedTax()).LessThanOrEqual(*req.Constraints.Target)
	case GoalTaxSavings:
		return base.combinedTax().Sub(e.combinedTax()).GreaterThanOrEqual(*req.Constraints.Target)
	case GoalSafeHarbor:
		return e.results.Federal.Form2210.SafeHarborMet
	case GoalZeroFederalBalance:
		return !e.results.Federal.BalanceDueOrRefund.IsPositive()
	case GoalZeroCABalance:
		return !e.results.California.BalanceDueOrRefund.IsPositive()
	}
	return false
}

// Optimize solves one lever for one goal against the base input
func (s *Solver) Optimize(ctx context.Context, base *domain.TaxReturnInput, req OptimizationRequest) (*OptimizationResult, error) {
	if base == nil {
		return nil, &BreakEvenError{Operation: "optimize", Message: "base input is required"}
	}
	if _, err := ParseGoal(string(req.Goal)); err != nil {
		return nil, &BreakEvenError{Operation: "optimize", Message: "unsupported goal", Cause: err}
	}
	if _, err := leverTransform(req.Lever, decimal.Zero); err != nil {
		return nil, err
	}
	if err := req.Constraints.Validate(req.Goal); err != nil {
		return nil, err
	}

	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	baseResults, err := s.CalcEngine.ComputeReturn(ctx, base, req.PriorYearTax)
	if err != nil {
		return nil, &BreakEvenError{Operation: "optimize", Message: "base return failed", Cause: err}
	}
	baseEval := evaluation{amount: decimal.Zero, results: baseResults}

	lo, err := s.evaluate(ctx, base, req, req.Constraints.MinAmount.Round(0))
	if err != nil {
		return nil, &BreakEvenError{Operation: "optimize", Message: "evaluation at min_amount failed", Cause: err}
	}
	hi, err := s.evaluate(ctx, base, req, req.Constraints.MaxAmount.Round(0))
	if err != nil {
		return nil, &BreakEvenError{Operation: "optimize", Message: "evaluation at max_amount failed", Cause: err}
	}

	result := &OptimizationResult{
		Request:         req,
		Lever:           req.Lever,
		Goal:            req.Goal,
		BaseCombinedTax: baseEval.combinedTax(),
	}

	largest := req.Goal.searchesLargest()
	loOK, hiOK := satisfied(req, baseEval, lo), satisfied(req, baseEval, hi)

	// The search keeps lo on the passing side for "largest" goals and hi on the
	// passing side for "smallest" goals.
	switch {
	case largest && !loOK, !largest && !hiOK:
		result.ConvergenceInfo = "goal cannot be met within the amount bounds"
		s.fill(result, baseEval, lo)
		return result, nil
	case largest && hiOK:
		result.Success = true
		result.ConvergenceInfo = "goal still met at max_amount"
		s.fill(result, baseEval, hi)
		return result, nil
	case !largest && loOK:
		result.Success = true
		result.ConvergenceInfo = "goal already met at min_amount"
		s.fill(result, baseEval, lo)
		return result, nil
	}

	two := decimal.NewFromInt(2)
	for hi.amount.Sub(lo.amount).GreaterThan(req.Tolerance) && result.Iterations < req.MaxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Iterations++

		mid, err := s.evaluate(ctx, base, req, lo.amount.Add(hi.amount).Div(two).Floor())
		if err != nil {
			return nil, &BreakEvenError{Operation: "optimize", Message: "evaluation failed", Cause: err}
		}
		if satisfied(req, baseEval, mid) == largest {
			lo = mid
		} else {
			hi = mid
		}
	}

	result.Success = true
	result.ConvergenceInfo = fmt.Sprintf("converged to within $%s after %d iterations", req.Tolerance.StringFixed(0), result.Iterations)
	if largest {
		s.fill(result, baseEval, lo)
	} else {
		s.fill(result, baseEval, hi)
	}
	return result, nil
}

func (s *Solver) fill(result *OptimizationResult, base, at evaluation) {
	result.Amount = at.amount
	result.CombinedTax = at.combinedTax()
	result.TaxChange = result.CombinedTax.Sub(base.combinedTax())
	result.FederalBalance = at.results.Federal.BalanceDueOrRefund
	result.CaliforniaBalance = at.results.California.BalanceDueOrRefund
	result.SafeHarborMet = at.results.Federal.Form2210.SafeHarborMet
}
