package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/rptax/internal/calculation"
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/transform"
	"github.com/shopspring/decimal"
)

// CompareEngine computes a base return alongside what-if alternatives
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	MetricsCalculator *MetricsCalculator
	TransformRegistry *transform.TransformRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TransformRegistry: transform.NewTransformRegistry(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseName     string          // Label for the unmodified return
	Templates    []string        // Built-in template names to apply
	Transforms   []string        // Transform chains, specs separated by ';'
	PriorYearTax decimal.Decimal // Feeds the underpayment estimate of every run
}

// Compare runs the base return and one alternative per template or transform chain
func (ce *CompareEngine) Compare(ctx context.Context, base *domain.TaxReturnInput, options CompareOptions) (*ComparisonSet, error) {
	if base == nil {
		return nil, domain.NewMalformedInput("", "input is required")
	}
	if options.BaseName == "" {
		options.BaseName = "as filed"
	}

	baseResults, err := ce.CalcEngine.ComputeReturn(ctx, base, options.PriorYearTax)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base return: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(options.BaseName, baseResults)

	templates := transform.CreateBuiltInTemplates(base)
	alternatives := make([]ComparisonResult, 0, len(options.Templates)+len(options.Transforms))

	run := func(name, description string, transforms []transform.InputTransform) error {
		modified, err := transform.ApplyTransforms(base, transforms)
		if err != nil {
			return err
		}
		results, err := ce.CalcEngine.ComputeReturn(ctx, modified, options.PriorYearTax)
		if err != nil {
			return fmt.Errorf("failed to calculate %s: %w", name, err)
		}
		alt := ce.MetricsCalculator.CalculateMetrics(name, results)
		alt.Description = description
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(alt, baseResult))
		return nil
	}

	for _, name := range options.Templates {
		tmpl, ok := templates.Get(name)
		if !ok {
			return nil, fmt.Errorf("template %s not found", name)
		}
		if err := run(tmpl.Name, tmpl.Description, tmpl.Transforms); err != nil {
			return nil, err
		}
	}

	for i, chain := range options.Transforms {
		transforms, err := ce.TransformRegistry.ParseTransformChain(chain)
		if err != nil {
			return nil, fmt.Errorf("transform %d: %w", i+1, err)
		}
		if err := run(fmt.Sprintf("what-if %d", i+1), transform.Describe(transforms), transforms); err != nil {
			return nil, err
		}
	}

	compSet := &ComparisonSet{
		BaseName:           options.BaseName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet, nil
}
