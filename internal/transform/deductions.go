package transform

import (
	"fmt"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
)

// AddCharitableCash adds a cash gift to a qualified organization
type AddCharitableCash struct {
	Recipient string
	Amount    decimal.Decimal
}

func (ac *AddCharitableCash) Name() string {
	return "add_charitable_cash"
}

func (ac *AddCharitableCash) Description() string {
	return fmt.Sprintf("Give $%s in cash to %s", ac.Amount.StringFixed(0), ac.recipient())
}

func (ac *AddCharitableCash) recipient() string {
	if ac.Recipient == "" {
		return "charity"
	}
	return ac.Recipient
}

func (ac *AddCharitableCash) Validate(base *domain.TaxReturnInput) error {
	if base == nil {
		return NewTransformError(ac.Name(), "validate", "base input cannot be nil", nil)
	}
	if ac.Amount.IsNegative() {
		return NewTransformError(ac.Name(), "validate", "amount cannot be negative", nil)
	}
	return nil
}

func (ac *AddCharitableCash) Apply(base *domain.TaxReturnInput) (*domain.TaxReturnInput, error) {
	out := base.Clone()
	out.CharitableDonations = append(out.CharitableDonations, domain.CharitableDonation{
		Recipient:              ac.recipient(),
		Amount:                 ac.Amount,
		Type:                   domain.DonationCash,
		AcknowledgmentReceived: true,
	})
	return out, nil
}

// AddPropertyTax adds a real property tax installment
type AddPropertyTax struct {
	Amount decimal.Decimal
}

func (ap *AddPropertyTax) Name() string {
	return "add_property_tax"
}

func (ap *AddPropertyTax) Description() string {
	return fmt.Sprintf("Pay $%s more property tax this year", ap.Amount.StringFixed(0))
}

func (ap *AddPropertyTax) Validate(base *domain.TaxReturnInput) error {
	if base == nil {
		return NewTransformError(ap.Name(), "validate", "base input cannot be nil", nil)
	}
	if ap.Amount.IsNegative() {
		return NewTransformError(ap.Name(), "validate", "amount cannot be negative", nil)
	}
	return nil
}

func (ap *AddPropertyTax) Apply(base *domain.TaxReturnInput) (*domain.TaxReturnInput, error) {
	out := base.Clone()
	out.PropertyTaxPayments = append(out.PropertyTaxPayments, domain.PropertyTaxPayment{
		Jurisdiction: "what-if",
		Amount:       ap.Amount,
	})
	return out, nil
}
