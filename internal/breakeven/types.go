package breakeven

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Lever is the single amount the solver is allowed to change
type Lever string

const (
	LeverLongTermGain       Lever = "long_term_gain"
	LeverShortTermGain      Lever = "short_term_gain"
	LeverOtherIncome        Lever = "other_income"
	LeverCharitableCash     Lever = "charitable_cash"
	LeverFederalEstimate    Lever = "federal_estimate"
	LeverCaliforniaEstimate Lever = "california_estimate"
)

// AllLevers lists the levers in display order
var AllLevers = []Lever{
	LeverLongTermGain,
	LeverShortTermGain,
	LeverOtherIncome,
	LeverCharitableCash,
	LeverFederalEstimate,
	LeverCaliforniaEstimate,
}

// OptimizationGoal defines what outcome to achieve
type OptimizationGoal string

const (
	GoalTaxBudget          OptimizationGoal = "tax_budget"           // Largest amount whose combined tax increase stays within Target
	GoalTaxSavings         OptimizationGoal = "tax_savings"          // Smallest amount that lowers combined tax by at least Target
	GoalSafeHarbor         OptimizationGoal = "safe_harbor"          // Smallest amount that meets the prior-year safe harbor
	GoalZeroFederalBalance OptimizationGoal = "zero_federal_balance" // Smallest amount that leaves nothing owed federally
	GoalZeroCABalance      OptimizationGoal = "zero_ca_balance"      // Smallest amount that leaves nothing owed to California
)

// searchesLargest reports whether the goal wants the largest passing amount
func (g OptimizationGoal) searchesLargest() bool {
	return g == GoalTaxBudget
}

// Constraints bound the lever amount
type Constraints struct {
	MinAmount decimal.Decimal  `json:"min_amount"`
	MaxAmount decimal.Decimal  `json:"max_amount"`
	Target    *decimal.Decimal `json:"target,omitempty"` // Budget or savings, in dollars
}

// DefaultConstraints searches from zero to one million dollars
func DefaultConstraints() Constraints {
	return Constraints{
		MinAmount: decimal.Zero,
		MaxAmount: decimal.NewFromInt(1_000_000),
	}
}

// Validate checks if constraints are internally consistent
func (c *Constraints) Validate(goal OptimizationGoal) error {
	if c.MinAmount.IsNegative() {
		return &BreakEvenError{Operation: "validate_constraints", Message: "min_amount cannot be negative"}
	}
	if c.MinAmount.GreaterThan(c.MaxAmount) {
		return &BreakEvenError{Operation: "validate_constraints", Message: "min_amount cannot be greater than max_amount"}
	}
	switch goal {
	case GoalTaxBudget:
		if c.Target == nil || c.Target.IsNegative() {
			return &BreakEvenError{Operation: "validate_constraints", Message: "tax_budget requires a non-negative target"}
		}
	case GoalTaxSavings:
		if c.Target == nil || !c.Target.IsPositive() {
			return &BreakEvenError{Operation: "validate_constraints", Message: "tax_savings requires a positive target"}
		}
	}
	return nil
}

// OptimizationRequest defines the parameters for a solver run
type OptimizationRequest struct {
	Lever         Lever
	Goal          OptimizationGoal
	Constraints   Constraints
	PriorYearTax  decimal.Decimal
	MaxIterations int
	Tolerance     decimal.Decimal // Dollars between the bracketing amounts at convergence
}

// OptimizationResult contains the results of a solver run
type OptimizationResult struct {
	Request         OptimizationRequest `json:"-"`
	Lever           Lever               `json:"lever"`
	Goal            OptimizationGoal    `json:"goal"`
	Success         bool                `json:"success"`
	Iterations      int                 `json:"iterations"`
	ConvergenceInfo string              `json:"convergence_info,omitempty"`

	Amount decimal.Decimal `json:"amount"`

	// Results at the solved amount
	BaseCombinedTax   decimal.Decimal `json:"base_combined_tax"`
	CombinedTax       decimal.Decimal `json:"combined_tax"`
	TaxChange         decimal.Decimal `json:"tax_change"`
	FederalBalance    decimal.Decimal `json:"federal_balance"`
	CaliforniaBalance decimal.Decimal `json:"california_balance"`
	SafeHarborMet     bool            `json:"safe_harbor_met"`
}

// MultiLeverResult contains one result per lever tried for a goal
type MultiLeverResult struct {
	Goal            OptimizationGoal     `json:"goal"`
	Results         []OptimizationResult `json:"results"`
	Best            *OptimizationResult  `json:"best,omitempty"`
	Recommendations []string             `json:"recommendations"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance     decimal.Decimal // Convergence tolerance
	MaxIterations int             // Maximum iterations
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromInt(1), // whole dollars
		MaxIterations: 64,
	}
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}

// ParseLever accepts a lever name as typed on the command line
func ParseLever(name string) (Lever, error) {
	for _, l := range AllLevers {
		if string(l) == name {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown lever %q", name)
}

// ParseGoal accepts a goal name as typed on the command line
func ParseGoal(name string) (OptimizationGoal, error) {
	switch g := OptimizationGoal(name); g {
	case GoalTaxBudget, GoalTaxSavings, GoalSafeHarbor, GoalZeroFederalBalance, GoalZeroCABalance:
		return g, nil
	}
	return "", fmt.Errorf("unknown goal %q", name)
}
