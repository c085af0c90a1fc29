package transform

import (
	"fmt"

	"github.com/rgehrsitz/rptax/internal/domain"
)

// ProjectYear re-files the same source data under another year's tables.
// Carryovers and estimates are kept as entered.
type ProjectYear struct {
	Year int
}

func (py *ProjectYear) Name() string {
	return "project_year"
}

func (py *ProjectYear) Description() string {
	return fmt.Sprintf("File the same figures as a %d return", py.Year)
}

func (py *ProjectYear) Validate(base *domain.TaxReturnInput) error {
	if base == nil {
		return NewTransformError(py.Name(), "validate", "base input cannot be nil", nil)
	}
	if py.Year <= 0 {
		return NewTransformError(py.Name(), "validate", fmt.Sprintf("invalid year %d", py.Year), nil)
	}
	return nil
}

func (py *ProjectYear) Apply(base *domain.TaxReturnInput) (*domain.TaxReturnInput, error) {
	out := base.Clone()
	out.TaxYear = py.Year
	return out, nil
}
