package transform

import (
	"fmt"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
)

// WhatIfBroker names the synthetic 1099-B that carries realized gains
const WhatIfBroker = "what-if sales"

// Term selects the holding period of a realized gain
type Term string

const (
	TermShort Term = "short"
	TermLong  Term = "long"
)

// RealizeGain adds a signed gain or loss as an extra broker summary.
// A negative amount models harvesting a loss.
type RealizeGain struct {
	Term   Term
	Amount decimal.Decimal
}

func (rg *RealizeGain) Name() string {
	return "realize_gain"
}

func (rg *RealizeGain) Description() string {
	verb := "Realize"
	if rg.Amount.IsNegative() {
		verb = "Harvest"
	}
	return fmt.Sprintf("%s %s-term %s of $%s", verb, rg.Term, gainOrLoss(rg.Amount), rg.Amount.Abs().StringFixed(0))
}

func gainOrLoss(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "loss"
	}
	return "gain"
}

func (rg *RealizeGain) Validate(base *domain.TaxReturnInput) error {
	if base == nil {
		return NewTransformError(rg.Name(), "validate", "base input cannot be nil", nil)
	}
	if rg.Term != TermShort && rg.Term != TermLong {
		return NewTransformError(rg.Name(), "validate", fmt.Sprintf("term must be short or long, got %q", rg.Term), nil)
	}
	return nil
}

func (rg *RealizeGain) Apply(base *domain.TaxReturnInput) (*domain.TaxReturnInput, error) {
	summary := domain.BrokerSummary{Broker: WhatIfBroker}
	if rg.Term == TermShort {
		summary.ShortTermBasisReported = rg.Amount
	} else {
		summary.LongTermBasisReported = rg.Amount
	}
	return base.WithBrokerSummaries(append(base.Form1099Bs, summary)...), nil
}

// ScaleWages multiplies every wage box and its withholding by Factor
type ScaleWages struct {
	Factor decimal.Decimal
}

func (sw *ScaleWages) Name() string {
	return "scale_wages"
}

func (sw *ScaleWages) Description() string {
	return fmt.Sprintf("Scale wages by %s", sw.Factor.String())
}

func (sw *ScaleWages) Validate(base *domain.TaxReturnInput) error {
	if base == nil {
		return NewTransformError(sw.Name(), "validate", "base input cannot be nil", nil)
	}
	if sw.Factor.IsNegative() {
		return NewTransformError(sw.Name(), "validate", "factor cannot be negative", nil)
	}
	if len(base.W2s) == 0 {
		return NewTransformError(sw.Name(), "validate", "input has no W-2s", nil)
	}
	return nil
}

func (sw *ScaleWages) Apply(base *domain.TaxReturnInput) (*domain.TaxReturnInput, error) {
	scaled := make([]domain.W2, len(base.W2s))
	for i, w2 := range base.W2s {
		w2.Wages = w2.Wages.Mul(sw.Factor).Round(0)
		w2.FederalWithheld = w2.FederalWithheld.Mul(sw.Factor).Round(0)
		w2.SocialSecurityWages = w2.SocialSecurityWages.Mul(sw.Factor).Round(0)
		w2.MedicareWages = w2.MedicareWages.Mul(sw.Factor).Round(0)
		w2.StateWages = w2.StateWages.Mul(sw.Factor).Round(0)
		w2.StateWithheld = w2.StateWithheld.Mul(sw.Factor).Round(0)
		scaled[i] = w2
	}
	return base.WithW2s(scaled...), nil
}

// AddOtherIncome adds an ordinary income line
type AddOtherIncome struct {
	Label  string
	Amount decimal.Decimal
}

func (ao *AddOtherIncome) Name() string {
	return "add_other_income"
}

func (ao *AddOtherIncome) Description() string {
	return fmt.Sprintf("Add $%s of other income (%s)", ao.Amount.StringFixed(0), ao.label())
}

func (ao *AddOtherIncome) label() string {
	if ao.Label == "" {
		return "what-if"
	}
	return ao.Label
}

func (ao *AddOtherIncome) Validate(base *domain.TaxReturnInput) error {
	if base == nil {
		return NewTransformError(ao.Name(), "validate", "base input cannot be nil", nil)
	}
	return nil
}

func (ao *AddOtherIncome) Apply(base *domain.TaxReturnInput) (*domain.TaxReturnInput, error) {
	out := base.Clone()
	out.OtherIncome = append(out.OtherIncome, domain.OtherIncome{Description: ao.label(), Amount: ao.Amount})
	return out, nil
}
