package calculation

import (
	"os"
	"testing"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleReturn = "../../testdata/sample2024.yaml"

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// assertMoney compares decimals by value so 10000 and 10000.00 match
func assertMoney(t *testing.T, want int64, got decimal.Decimal, label string) {
	t.Helper()
	require.Truef(t, got.Equal(d(want)), "%s: want %d, got %s", label, want, got.String())
}

func loadSample(t *testing.T) *domain.TaxReturnInput {
	t.Helper()
	data, err := os.ReadFile(sampleReturn)
	require.NoError(t, err)
	var input domain.TaxReturnInput
	require.NoError(t, yaml.Unmarshal(data, &input))
	return &input
}

func table(t *testing.T, year int) taxconfig.Configuration {
	t.Helper()
	registry, err := taxconfig.NewDefaultRegistry()
	require.NoError(t, err)
	cfg, err := registry.Lookup(year, domain.FilingStatusMarriedFilingJointly)
	require.NoError(t, err)
	return cfg
}

// minimalReturn is a valid joint return with no documents
func minimalReturn(year int) *domain.TaxReturnInput {
	return &domain.TaxReturnInput{
		TaxYear:      year,
		FilingStatus: domain.FilingStatusMarriedFilingJointly,
		Taxpayer:     domain.Person{FirstName: "Pat", LastName: "Lee"},
		Spouse:       &domain.Person{FirstName: "Chris", LastName: "Lee"},
	}
}
