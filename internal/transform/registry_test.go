package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformRegistry_List(t *testing.T) {
	names := NewTransformRegistry().List()
	assert.Equal(t, []string{
		"add_charitable_cash",
		"add_estimated_payment",
		"add_other_income",
		"add_property_tax",
		"project_year",
		"realize_gain",
		"scale_wages",
	}, names)
}

func TestTransformRegistry_ParseTransformSpec(t *testing.T) {
	registry := NewTransformRegistry()

	tests := []struct {
		name    string
		spec    string
		want    InputTransform
		wantErr string
	}{
		{
			name: "realize gain defaults to long term",
			spec: "realize_gain:amount=20000",
			want: &RealizeGain{Term: TermLong, Amount: d(20000)},
		},
		{
			name: "harvest short-term loss",
			spec: "realize_gain: term=short , amount=-3000",
			want: &RealizeGain{Term: TermShort, Amount: d(-3000)},
		},
		{
			name: "estimated payment defaults",
			spec: "add_estimated_payment:amount=5000",
			want: &AddEstimatedPayment{Jurisdiction: JurisdictionFederal, Quarter: 4, Amount: d(5000)},
		},
		{
			name: "estimated payment explicit",
			spec: "add_estimated_payment:jurisdiction=california,quarter=1,amount=10",
			want: &AddEstimatedPayment{Jurisdiction: JurisdictionCalifornia, Quarter: 1, Amount: d(10)},
		},
		{
			name: "project year",
			spec: "project_year:year=2025",
			want: &ProjectYear{Year: 2025},
		},
		{name: "missing colon", spec: "project_year", wantErr: "expected 'name:params'"},
		{name: "unknown transform", spec: "retire_early:years=2", wantErr: "unknown transform"},
		{name: "bad pair", spec: "project_year:2025", wantErr: "expected 'key=value'"},
		{name: "missing amount", spec: "add_charitable_cash:recipient=Red Cross", wantErr: "requires 'amount'"},
		{name: "bad amount", spec: "add_property_tax:amount=lots", wantErr: "invalid amount value"},
		{name: "bad year", spec: "project_year:year=next", wantErr: "invalid year value"},
		{name: "bad quarter", spec: "add_estimated_payment:amount=1,quarter=last", wantErr: "invalid quarter value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registry.ParseTransformSpec(tt.spec)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransformRegistry_ParseTransformChain(t *testing.T) {
	registry := NewTransformRegistry()

	chain, err := registry.ParseTransformChain("realize_gain:amount=100; project_year:year=2025;")
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, "realize_gain", chain[0].Name())
	assert.Equal(t, "project_year", chain[1].Name())

	_, err = registry.ParseTransformChain(" ; ")
	assert.Error(t, err)

	_, err = registry.ParseTransformChain("realize_gain:amount=1;nope:x=1")
	assert.Error(t, err)
}

func TestTemplates(t *testing.T) {
	base := createTestInput()
	registry := CreateBuiltInTemplates(base)
	assert.Equal(t, []string{"give_10k", "harvest_3k", "next_year", "raise_5pct"}, registry.List())

	tmpl, ok := registry.Get("NEXT_YEAR")
	require.True(t, ok)
	result, err := ApplyTemplate(base, tmpl)
	require.NoError(t, err)
	assert.Equal(t, 2025, result.TaxYear)

	_, ok = registry.Get("retire_early")
	assert.False(t, ok)

	assert.NotContains(t, CreateBuiltInTemplates(nil).List(), "next_year")

	help := GetTemplateHelp(registry)
	assert.Contains(t, help, "harvest_3k")
	assert.Contains(t, help, "Same figures under 2025 tables")
	assert.Equal(t, "No templates registered", GetTemplateHelp(NewTemplateRegistry()))
}

func TestParseTemplateList(t *testing.T) {
	assert.Nil(t, ParseTemplateList(""))
	assert.Equal(t, []string{"give_10k", "next_year"}, ParseTemplateList(" give_10k, ,next_year "))
}
