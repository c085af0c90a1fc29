package output

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rgehrsitz/rptax/internal/calculation"
	"github.com/rgehrsitz/rptax/internal/config"
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func buildTestResults(t *testing.T) *domain.TaxReturnResult {
	t.Helper()
	input, err := config.NewInputParser().LoadFromFile("../../testdata/sample2024.yaml")
	require.NoError(t, err)
	engine, err := calculation.NewDefaultEngine()
	require.NoError(t, err)
	results, err := engine.ComputeReturn(context.Background(), input, decimal.Zero)
	require.NoError(t, err)
	return results
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(0), "$0"},
		{decimal.NewFromInt(999), "$999"},
		{decimal.NewFromInt(580530), "$580,530"},
		{decimal.NewFromInt(-6368), "-$6,368"},
		{decimal.RequireFromString("1234567.5"), "$1,234,568"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.in))
	}
	assert.Equal(t, "25.00%", FormatPercentage(decimal.RequireFromString("0.25")))
}

func TestFormatterFunc(t *testing.T) {
	called := false
	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(results *domain.TaxReturnResult) ([]byte, error) {
			called = true
			return []byte("test output"), nil
		},
	}

	out, err := formatter.Format(&domain.TaxReturnResult{})
	require.NoError(t, err)
	assert.True(t, called, "Should call the function")
	assert.Equal(t, "test output", string(out))
	assert.Equal(t, "test-formatter", formatter.Name())
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range AvailableFormatterNames() {
		f := GetFormatterByName(name)
		require.NotNil(t, f, name)
		assert.Equal(t, name, f.Name())
	}
	assert.Equal(t, "console", GetFormatterByName("verbose").Name())
	assert.Equal(t, "yaml", GetFormatterByName(" YML ").Name())
	assert.Nil(t, GetFormatterByName("docx"))
	assert.Contains(t, AvailableFormatAliases(), "brief")
}

func TestLines_Sample(t *testing.T) {
	results := buildTestResults(t)
	lines := Lines(results)

	byKey := map[string]ReportLine{}
	for _, l := range lines {
		byKey[l.Section+"/"+l.Ref] = l
	}
	assert.Equal(t, "580530", byKey["Federal/11"].Amount.String())
	assert.Equal(t, "Standard deduction", byKey["Federal/12"].Label)
	assert.Equal(t, "550761", byKey["Federal/15"].Amount.String())
	assert.Equal(t, "Amount you owe", byKey["Federal/37"].Label)
	assert.Equal(t, "49434", byKey["Federal/37"].Amount.String())
	assert.Equal(t, "Itemized deductions", byKey["California/18"].Label)
	assert.Equal(t, "16300", byKey["California/71"].Amount.String())
	assert.Equal(t, "26973", byKey["California/111"].Amount.String())
}

func TestBalanceLine_Refund(t *testing.T) {
	line := balanceLine(SectionFederal, "34", decimal.NewFromInt(-250))
	assert.Equal(t, "Refund", line.Label)
	assert.Equal(t, "250", line.Amount.String())
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestResults(t))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "2024 TAX RETURN (MFJ)")
	assert.Contains(t, content, "Adjusted gross income")
	assert.Contains(t, content, "$101,134")
	assert.Contains(t, content, "schedule_d_worksheet")
	assert.Contains(t, content, "Form 8606 (taxpayer)")
	assert.Contains(t, content, "$26,973")
	assert.NotContains(t, content, "REVIEW")
}

func TestConsoleFormatter_Warnings(t *testing.T) {
	results := buildTestResults(t)
	results.Federal.Form8606[0].ProRataWarning = true

	out, err := ConsoleFormatter{}.Format(results)
	require.NoError(t, err)
	assert.Contains(t, string(out), "REVIEW")
	assert.Contains(t, string(out), "SEP or SIMPLE")
}

func TestWarnings_Section1250(t *testing.T) {
	results := buildTestResults(t)
	const want = "Unrecaptured section 1250 gain of $150,000 extends past the 15% layer into the 20% layer; the 25% rate was not applied"
	assert.NotContains(t, Warnings(results), want)

	results.Federal.ScheduleDTaxWorksheet = &domain.ScheduleDTaxWorksheetResult{
		Section1250Gain:       decimal.NewFromInt(150000),
		Section1250Unresolved: true,
	}
	assert.Contains(t, Warnings(results), want)
}

func TestSummaryFormatter(t *testing.T) {
	out, err := SummaryFormatter{}.Format(buildTestResults(t))
	require.NoError(t, err)
	assert.Contains(t, string(out), "Federal total tax")
	assert.Contains(t, string(out), "$43,273")
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestResults(t))
	require.NoError(t, err)

	var decoded domain.TaxReturnResult
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "101134", decoded.Federal.TotalTax.String())
	assert.Contains(t, string(out), `"schedule_d_tax_worksheet"`)
}

func TestYAMLFormatter(t *testing.T) {
	out, err := YAMLFormatter{}.Format(buildTestResults(t))
	require.NoError(t, err)

	var decoded domain.TaxReturnResult
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "26973", decoded.California.BalanceDueOrRefund.String())
}

func TestCSVFormatter(t *testing.T) {
	results := buildTestResults(t)
	out, err := CSVFormatter{}.Format(results)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Section", "Line", "Description", "Amount"}, rows[0])
	assert.Len(t, rows, len(Lines(results))+1)
	assert.Equal(t, []string{"Federal", "11", "Adjusted gross income", "580530"}, rows[11])
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestResults(t))
	require.NoError(t, err)

	content := string(out)
	assert.True(t, strings.HasPrefix(content, "<!DOCTYPE html>"))
	assert.Contains(t, content, "<title>2024 Tax Return</title>")
	assert.Contains(t, content, "California (Form 540)")
	assert.Contains(t, content, "$49,434")
}

func TestPDFFormatter(t *testing.T) {
	stamp := func() time.Time { return time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC) }
	out, err := PDFFormatter{Now: stamp}.Format(buildTestResults(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 1000)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, SummaryFormatter{}, buildTestResults(t)))
	assert.Contains(t, buf.String(), "SUMMARY")

	err := Write(&buf, SummaryFormatter{}, &domain.TaxReturnResult{})
	assert.Error(t, err)

	failing := FormatterFunc{ID: "broken", F: func(*domain.TaxReturnResult) ([]byte, error) {
		return nil, fmt.Errorf("formatter error")
	}}
	err = Write(&buf, failing, buildTestResults(t))
	assert.ErrorContains(t, err, "broken: formatter error")
}

func TestWriteFormatted(t *testing.T) {
	t.Chdir(t.TempDir())

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(results *domain.TaxReturnResult) ([]byte, error) {
			return []byte("test output content"), nil
		},
	}
	filename, err := WriteFormatted(formatter, &domain.TaxReturnResult{}, ".txt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "tax_report_"))
	assert.True(t, strings.HasSuffix(filename, ".txt"))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "test output content", string(content))
}

func TestWriteFormatted_FormatterError(t *testing.T) {
	formatter := FormatterFunc{
		ID: "error-formatter",
		F: func(results *domain.TaxReturnResult) ([]byte, error) {
			return nil, fmt.Errorf("formatter error")
		},
	}
	filename, err := WriteFormatted(formatter, &domain.TaxReturnResult{}, "txt")
	assert.Error(t, err)
	assert.Empty(t, filename)
}
