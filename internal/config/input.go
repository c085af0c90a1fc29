// Package config loads tax return input documents from disk.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rgehrsitz/rptax/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of an input document
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the document format from a file extension. Anything
// other than .json is read as YAML.
func FormatFromPath(filename string) Format {
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// InputParser handles parsing of tax return input files
type InputParser struct {
	// Strict rejects fields that do not map onto the input model
	Strict bool
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a return from a YAML or JSON file and validates it
func (ip *InputParser) LoadFromFile(filename string) (*domain.TaxReturnInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data, FormatFromPath(filename))
}

// Parse decodes a return and validates it
func (ip *InputParser) Parse(data []byte, format Format) (*domain.TaxReturnInput, error) {
	input, err := ip.decode(data, format)
	if err != nil {
		return nil, err
	}
	if err := ip.ValidateInput(input); err != nil {
		return nil, err
	}
	return input, nil
}

func (ip *InputParser) decode(data []byte, format Format) (*domain.TaxReturnInput, error) {
	var input domain.TaxReturnInput
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if ip.Strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(&input); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(ip.Strict)
		if err := dec.Decode(&input); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
	return &input, nil
}

// ValidateInput runs the domain checks. The returned error wraps the
// underlying *domain.TaxError so callers can still match its code.
func (ip *InputParser) ValidateInput(input *domain.TaxReturnInput) error {
	if input == nil {
		return domain.NewMalformedInput("", "input is empty")
	}
	if err := input.Validate(); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}
	return nil
}

// SaveToFile writes input in the format implied by the file extension
func (ip *InputParser) SaveToFile(filename string, input *domain.TaxReturnInput) error {
	var (
		data []byte
		err  error
	)
	if FormatFromPath(filename) == FormatJSON {
		data, err = json.MarshalIndent(input, "", "  ")
	} else {
		data, err = yaml.Marshal(input)
	}
	if err != nil {
		return fmt.Errorf("failed to encode input: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
