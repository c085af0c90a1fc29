package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/rptax/internal/domain"
)

// HTMLFormatter produces a standalone HTML report
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
}).Parse(htmlTemplateSource))

type htmlSection struct {
	Title string
	Lines []ReportLine
}

func (h HTMLFormatter) Format(results *domain.TaxReturnResult) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.TaxReturnResult
		Sections []htmlSection
		Warnings []string
	}{
		TaxReturnResult: results,
		Sections: []htmlSection{
			{Title: "Federal (Form 1040)", Lines: FederalLines(results.Federal)},
			{Title: "California (Form 540)", Lines: CaliforniaLines(results.California)},
		},
		Warnings: Warnings(results),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
