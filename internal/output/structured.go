package output

import (
	"encoding/json"

	"github.com/rgehrsitz/rptax/internal/domain"
	"gopkg.in/yaml.v3"
)

// JSONFormatter emits the full result tree as indented JSON
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.TaxReturnResult) ([]byte, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// YAMLFormatter emits the full result tree as YAML
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(results *domain.TaxReturnResult) ([]byte, error) {
	return yaml.Marshal(results)
}
