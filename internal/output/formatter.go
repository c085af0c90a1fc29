// Package output renders computed tax returns for people and for other
// programs.
package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rgehrsitz/rptax/internal/domain"
)

// Formatter turns a computed return into bytes in one presentation format
type Formatter interface {
	Name() string
	Format(results *domain.TaxReturnResult) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(results *domain.TaxReturnResult) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(results *domain.TaxReturnResult) ([]byte, error) {
	return f.F(results)
}

var registered = []Formatter{
	ConsoleFormatter{},
	SummaryFormatter{},
	JSONFormatter{},
	YAMLFormatter{},
	CSVFormatter{},
	HTMLFormatter{},
	PDFFormatter{},
}

var aliases = map[string]string{
	"text":    "console",
	"verbose": "console",
	"brief":   "summary",
	"yml":     "yaml",
}

// GetFormatterByName resolves a formatter name or alias; nil when unknown
func GetFormatterByName(name string) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	if target, ok := aliases[name]; ok {
		name = target
	}
	for _, f := range registered {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// AvailableFormatterNames lists the registered formatter names
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(registered))
	for _, f := range registered {
		names = append(names, f.Name())
	}
	return names
}

// AvailableFormatAliases lists the accepted aliases in sorted order
func AvailableFormatAliases() []string {
	out := make([]string, 0, len(aliases))
	for alias := range aliases {
		out = append(out, alias)
	}
	sort.Strings(out)
	return out
}

// Write formats results and copies them to w
func Write(w io.Writer, f Formatter, results *domain.TaxReturnResult) error {
	if results == nil || results.Federal == nil || results.California == nil {
		return fmt.Errorf("%s: incomplete results", f.Name())
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// WriteFormatted writes the report to a timestamped file in the working
// directory and returns its name
func WriteFormatted(f Formatter, results *domain.TaxReturnResult, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("tax_report_%s.%s", time.Now().Format("20060102_150405"), strings.TrimPrefix(ext, "."))
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
