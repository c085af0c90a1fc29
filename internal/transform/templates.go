package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in what-if templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []InputTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates the common planning moves for a return
func CreateBuiltInTemplates(base *domain.TaxReturnInput) *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "harvest_3k",
		Description: "Harvest a $3,000 short-term loss",
		Transforms: []InputTransform{
			&RealizeGain{Term: TermShort, Amount: decimal.NewFromInt(-3000)},
		},
	})
	registry.Register(Template{
		Name:        "give_10k",
		Description: "Give $10,000 more to charity in cash",
		Transforms: []InputTransform{
			&AddCharitableCash{Amount: decimal.NewFromInt(10000)},
		},
	})
	registry.Register(Template{
		Name:        "raise_5pct",
		Description: "Wages and withholding up 5%",
		Transforms: []InputTransform{
			&ScaleWages{Factor: decimal.New(105, -2)},
		},
	})
	if base != nil {
		next := base.TaxYear + 1
		registry.Register(Template{
			Name:        "next_year",
			Description: fmt.Sprintf("Same figures under %d tables", next),
			Transforms:  []InputTransform{&ProjectYear{Year: next}},
		})
	}

	return registry
}

// ApplyTemplate applies a template to a base input
func ApplyTemplate(base *domain.TaxReturnInput, template Template) (*domain.TaxReturnInput, error) {
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")
	for _, name := range registry.List() {
		t := registry.templates[name]
		sb.WriteString(fmt.Sprintf("  %-12s %s\n", t.Name, t.Description))
	}
	return sb.String()
}
