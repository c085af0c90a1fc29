package transform

import (
	"fmt"

	"github.com/rgehrsitz/rptax/internal/domain"
)

// InputTransform is a what-if adjustment to a return's source data.
// Transforms never modify their argument; Apply returns a derived input.
type InputTransform interface {
	// Apply returns a new input with the adjustment made
	Apply(base *domain.TaxReturnInput) (*domain.TaxReturnInput, error)

	// Name returns the registry identifier (e.g. "realize_gain")
	Name() string

	// Description returns a human-readable summary of the adjustment
	Description() string

	// Validate checks the parameters against the base input without applying
	Validate(base *domain.TaxReturnInput) error
}

// ApplyTransforms applies transforms in order, each receiving the output of
// the previous one. With no transforms the result is a clone of base.
func ApplyTransforms(base *domain.TaxReturnInput, transforms []InputTransform) (*domain.TaxReturnInput, error) {
	if base == nil {
		return nil, fmt.Errorf("base input cannot be nil")
	}
	if len(transforms) == 0 {
		return base.Clone(), nil
	}

	current := base
	for i, t := range transforms {
		if t == nil {
			return nil, fmt.Errorf("transform at index %d is nil", i)
		}
		if err := t.Validate(current); err != nil {
			return nil, fmt.Errorf("transform %s validation failed: %w", t.Name(), err)
		}
		next, err := t.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("transform %s failed: %w", t.Name(), err)
		}
		current = next
	}
	return current, nil
}

// Describe joins the descriptions of a transform chain
func Describe(transforms []InputTransform) string {
	desc := ""
	for i, t := range transforms {
		if i > 0 {
			desc += "; "
		}
		desc += t.Description()
	}
	return desc
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError
func NewTransformError(name, operation, reason string, err error) *TransformError {
	return &TransformError{
		TransformName: name,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
