package transform

import (
	"fmt"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
)

// Jurisdiction selects which estimated payments a transform touches
type Jurisdiction string

const (
	JurisdictionFederal    Jurisdiction = "federal"
	JurisdictionCalifornia Jurisdiction = "california"
)

// AddEstimatedPayment adds to one quarterly installment
type AddEstimatedPayment struct {
	Jurisdiction Jurisdiction
	Quarter      int // 1 through 4
	Amount       decimal.Decimal
}

func (ae *AddEstimatedPayment) Name() string {
	return "add_estimated_payment"
}

func (ae *AddEstimatedPayment) Description() string {
	return fmt.Sprintf("Pay $%s more %s estimated tax in Q%d", ae.Amount.StringFixed(0), ae.Jurisdiction, ae.Quarter)
}

func (ae *AddEstimatedPayment) Validate(base *domain.TaxReturnInput) error {
	if base == nil {
		return NewTransformError(ae.Name(), "validate", "base input cannot be nil", nil)
	}
	if ae.Jurisdiction != JurisdictionFederal && ae.Jurisdiction != JurisdictionCalifornia {
		return NewTransformError(ae.Name(), "validate", fmt.Sprintf("unknown jurisdiction %q", ae.Jurisdiction), nil)
	}
	if ae.Quarter < 1 || ae.Quarter > 4 {
		return NewTransformError(ae.Name(), "validate", fmt.Sprintf("quarter must be 1-4, got %d", ae.Quarter), nil)
	}
	if ae.Amount.IsNegative() {
		return NewTransformError(ae.Name(), "validate", "amount cannot be negative", nil)
	}
	return nil
}

func (ae *AddEstimatedPayment) Apply(base *domain.TaxReturnInput) (*domain.TaxReturnInput, error) {
	payments := base.EstimatedPayments
	quarters := &payments.Federal
	if ae.Jurisdiction == JurisdictionCalifornia {
		quarters = &payments.California
	}
	switch ae.Quarter {
	case 1:
		quarters.Q1 = quarters.Q1.Add(ae.Amount)
	case 2:
		quarters.Q2 = quarters.Q2.Add(ae.Amount)
	case 3:
		quarters.Q3 = quarters.Q3.Add(ae.Amount)
	default:
		quarters.Q4 = quarters.Q4.Add(ae.Amount)
	}
	return base.WithEstimatedPayments(payments), nil
}
