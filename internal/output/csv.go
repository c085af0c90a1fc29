package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rgehrsitz/rptax/internal/domain"
)

// CSVFormatter writes one row per form line
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results *domain.TaxReturnResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Section", "Line", "Description", "Amount"}); err != nil {
		return nil, err
	}
	for _, line := range Lines(results) {
		if err := w.Write([]string{line.Section, line.Ref, line.Label, line.Amount.StringFixed(0)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
