package calculation

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
)

// Logger is the printf-style logging surface the engine writes to
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// Engine resolves the tax table for a return and runs both pipelines.
// It holds no per-return state and is safe for concurrent use.
type Engine struct {
	Registry *taxconfig.Registry
	Logger   Logger
}

// NewEngine creates a new engine backed by registry
func NewEngine(registry *taxconfig.Registry) *Engine {
	return &Engine{
		Registry: registry,
		Logger:   NopLogger{},
	}
}

// NewDefaultEngine creates a new engine over the embedded tax tables
func NewDefaultEngine() (*Engine, error) {
	registry, err := taxconfig.NewDefaultRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load tax tables: %w", err)
	}
	return NewEngine(registry), nil
}

// SetLogger replaces the engine logger; nil restores the no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

func (e *Engine) lookup(input *domain.TaxReturnInput) (taxconfig.Configuration, error) {
	if e.Registry == nil {
		return taxconfig.Configuration{}, domain.NewConfigurationMismatch("no tax table registry configured")
	}
	return e.Registry.Lookup(input.TaxYear, input.FilingStatus)
}

// ComputeFederal looks up the table for the return and runs the federal pipeline
func (e *Engine) ComputeFederal(input *domain.TaxReturnInput, priorYearTax decimal.Decimal) (*domain.FederalTaxResult, error) {
	cfg, err := e.lookup(input)
	if err != nil {
		e.Logger.Warnf("federal: %v", err)
		return nil, err
	}
	e.Logger.Debugf("federal: using %d/%s tax table (schema %s)", cfg.Year, cfg.FilingStatus, cfg.SchemaVersion)

	result, err := ComputeFederalTax(input, cfg, priorYearTax)
	if err != nil {
		e.Logger.Warnf("federal: %v", err)
		return nil, err
	}
	e.Logger.Debugf("federal: AGI %s, taxable income %s, method %s",
		result.Income.AGI.String(), result.Deductions.TaxableIncome.String(), result.TaxComputation.Method)
	e.Logger.Debugf("federal: total tax %s, payments %s, balance %s",
		result.TotalTax.String(), result.TotalPayments.String(), result.BalanceDueOrRefund.String())
	if result.ScheduleDTaxWorksheet != nil && result.ScheduleDTaxWorksheet.Section1250Unresolved {
		e.Logger.Warnf("federal: unrecaptured section 1250 gain of %s extends past the 15%% layer into the 20%% layer and was not re-rated",
			result.ScheduleDTaxWorksheet.Section1250Gain.String())
	}
	for _, f := range result.Form8606 {
		if f.ProRataWarning {
			e.Logger.Warnf("federal: %s has SEP or SIMPLE IRA balances included in the pro-rata calculation", f.Spouse)
		}
	}
	return result, nil
}

// ComputeCalifornia looks up the table for the return and runs the California
// pipeline on the given federal figures
func (e *Engine) ComputeCalifornia(input *domain.TaxReturnInput, federalAGI decimal.Decimal, scheduleA domain.ScheduleAResult) (*domain.CaliforniaTaxResult, error) {
	cfg, err := e.lookup(input)
	if err != nil {
		e.Logger.Warnf("california: %v", err)
		return nil, err
	}

	result, err := ComputeCaliforniaTax(input, cfg, federalAGI, scheduleA)
	if err != nil {
		e.Logger.Warnf("california: %v", err)
		return nil, err
	}
	e.Logger.Debugf("california: taxable income %s, tax %s, balance %s",
		result.TaxableIncome.String(), result.TotalTax.String(), result.BalanceDueOrRefund.String())
	return result, nil
}

// ComputeReturn runs the federal pipeline and feeds its AGI and Schedule A
// into the California pipeline
func (e *Engine) ComputeReturn(ctx context.Context, input *domain.TaxReturnInput, priorYearTax decimal.Decimal) (*domain.TaxReturnResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.Logger.Infof("computing %d return (%s)", input.TaxYear, input.FilingStatus)

	federal, err := e.ComputeFederal(input, priorYearTax)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	california, err := e.ComputeCalifornia(input, federal.Income.AGI, federal.ScheduleA)
	if err != nil {
		return nil, err
	}

	return &domain.TaxReturnResult{Federal: federal, California: california}, nil
}
