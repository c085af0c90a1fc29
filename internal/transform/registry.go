package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TransformRegistry creates transforms from string parameters, as given on
// the command line or in an HTTP request.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (InputTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("realize_gain", createRealizeGain)
	registry.Register("scale_wages", createScaleWages)
	registry.Register("add_other_income", createAddOtherIncome)
	registry.Register("add_charitable_cash", createAddCharitableCash)
	registry.Register("add_property_tax", createAddPropertyTax)
	registry.Register("add_estimated_payment", createAddEstimatedPayment)
	registry.Register("project_year", createProjectYear)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (InputTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}
	return factory(params)
}

// List returns the names of all registered transforms, sorted.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "realize_gain:term=long,amount=20000"
func (r *TransformRegistry) ParseTransformSpec(spec string) (InputTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// ParseTransformChain parses specs separated by ';' into one ordered chain
func (r *TransformRegistry) ParseTransformChain(chain string) ([]InputTransform, error) {
	var out []InputTransform
	for _, spec := range strings.Split(chain, ";") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		t, err := r.ParseTransformSpec(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty transform chain")
	}
	return out, nil
}

func requireDecimal(name string, params map[string]string, key string) (decimal.Decimal, error) {
	raw, ok := params[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s requires '%s' parameter", name, key)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

// Factory functions for each transform

func createRealizeGain(params map[string]string) (InputTransform, error) {
	amount, err := requireDecimal("realize_gain", params, "amount")
	if err != nil {
		return nil, err
	}
	term := Term(params["term"])
	if term == "" {
		term = TermLong
	}
	return &RealizeGain{Term: term, Amount: amount}, nil
}

func createScaleWages(params map[string]string) (InputTransform, error) {
	factor, err := requireDecimal("scale_wages", params, "factor")
	if err != nil {
		return nil, err
	}
	return &ScaleWages{Factor: factor}, nil
}

func createAddOtherIncome(params map[string]string) (InputTransform, error) {
	amount, err := requireDecimal("add_other_income", params, "amount")
	if err != nil {
		return nil, err
	}
	return &AddOtherIncome{Label: params["description"], Amount: amount}, nil
}

func createAddCharitableCash(params map[string]string) (InputTransform, error) {
	amount, err := requireDecimal("add_charitable_cash", params, "amount")
	if err != nil {
		return nil, err
	}
	return &AddCharitableCash{Recipient: params["recipient"], Amount: amount}, nil
}

func createAddPropertyTax(params map[string]string) (InputTransform, error) {
	amount, err := requireDecimal("add_property_tax", params, "amount")
	if err != nil {
		return nil, err
	}
	return &AddPropertyTax{Amount: amount}, nil
}

func createAddEstimatedPayment(params map[string]string) (InputTransform, error) {
	amount, err := requireDecimal("add_estimated_payment", params, "amount")
	if err != nil {
		return nil, err
	}
	jurisdiction := Jurisdiction(params["jurisdiction"])
	if jurisdiction == "" {
		jurisdiction = JurisdictionFederal
	}
	quarter := 4
	if raw, ok := params["quarter"]; ok {
		quarter, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid quarter value: %w", err)
		}
	}
	return &AddEstimatedPayment{Jurisdiction: jurisdiction, Quarter: quarter, Amount: amount}, nil
}

func createProjectYear(params map[string]string) (InputTransform, error) {
	raw, ok := params["year"]
	if !ok {
		return nil, fmt.Errorf("project_year requires 'year' parameter")
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid year value: %w", err)
	}
	return &ProjectYear{Year: year}, nil
}
