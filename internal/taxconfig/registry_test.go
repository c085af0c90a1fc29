package taxconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestNewDefaultRegistry_LoadsEmbeddedTables(t *testing.T) {
	r, err := NewDefaultRegistry()
	require.NoError(t, err)

	assert.Equal(t, []int{2024, 2025}, r.Years())

	cfg2024, err := r.Lookup(2024, domain.FilingStatusMarriedFilingJointly)
	require.NoError(t, err)
	assert.True(t, cfg2024.Federal.StandardDeduction.Equal(decimal.NewFromInt(29200)))
	assert.Len(t, cfg2024.Federal.OrdinaryBrackets, 7)
	assert.Nil(t, cfg2024.Federal.OrdinaryBrackets[6].Max)
	assert.True(t, cfg2024.Federal.OrdinaryBrackets[3].Rate.Equal(decimal.RequireFromString("0.24")))
	assert.True(t, cfg2024.Federal.CapitalGainBrackets[1].Max.Equal(decimal.NewFromInt(583750)))
	assert.True(t, cfg2024.California.StandardDeduction.Equal(decimal.NewFromInt(11080)))
	assert.True(t, cfg2024.California.Brackets[5].Rate.Equal(decimal.RequireFromString("0.093")))

	cfg2025, err := r.Lookup(2025, domain.FilingStatusMarriedFilingJointly)
	require.NoError(t, err)
	assert.True(t, cfg2025.Federal.SALTCap.Base.Equal(decimal.NewFromInt(40000)))
	assert.True(t, cfg2025.Federal.SALTCap.PhaseoutRate.Equal(decimal.RequireFromString("0.30")))
}

func TestRegistry_LookupMissingIsConfigurationMismatch(t *testing.T) {
	r, err := NewDefaultRegistry()
	require.NoError(t, err)

	tests := []struct {
		name   string
		year   int
		status domain.FilingStatus
	}{
		{"unregistered year", 2019, domain.FilingStatusMarriedFilingJointly},
		{"unregistered status", 2024, domain.FilingStatusSingle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Lookup(tt.year, tt.status)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrConfigurationMismatch))
		})
	}
}

func TestRegistry_LookupReturnsCopy(t *testing.T) {
	r, err := NewDefaultRegistry()
	require.NoError(t, err)

	cfg, err := r.Lookup(2024, domain.FilingStatusMarriedFilingJointly)
	require.NoError(t, err)
	*cfg.Federal.OrdinaryBrackets[0].Max = decimal.NewFromInt(1)
	cfg.California.Brackets[0].Rate = decimal.NewFromInt(1)

	again, err := r.Lookup(2024, domain.FilingStatusMarriedFilingJointly)
	require.NoError(t, err)
	assert.True(t, again.Federal.OrdinaryBrackets[0].Max.Equal(decimal.NewFromInt(23200)))
	assert.True(t, again.California.Brackets[0].Rate.Equal(decimal.RequireFromString("0.01")))
}

func TestRegistry_RegisterAddsYearWithoutCodeChanges(t *testing.T) {
	r, err := NewDefaultRegistry()
	require.NoError(t, err)

	cfg, err := r.Lookup(2025, domain.FilingStatusMarriedFilingJointly)
	require.NoError(t, err)
	cfg.Year = 2026
	require.NoError(t, r.Register(cfg))

	assert.Equal(t, []int{2024, 2025, 2026}, r.Years())
	_, err = r.Lookup(2026, domain.FilingStatusMarriedFilingJointly)
	assert.NoError(t, err)
}

func TestValidateBrackets(t *testing.T) {
	rate := decimal.RequireFromString("0.1")
	tests := []struct {
		name     string
		brackets []Bracket
		wantErr  bool
	}{
		{
			name:     "contiguous",
			brackets: []Bracket{{Min: decimal.Zero, Max: ptr(100), Rate: rate}, {Min: decimal.NewFromInt(100), Rate: rate}},
		},
		{
			name:     "empty",
			brackets: nil,
			wantErr:  true,
		},
		{
			name:     "does not start at zero",
			brackets: []Bracket{{Min: decimal.NewFromInt(1), Rate: rate}},
			wantErr:  true,
		},
		{
			name:     "gap",
			brackets: []Bracket{{Min: decimal.Zero, Max: ptr(100), Rate: rate}, {Min: decimal.NewFromInt(101), Rate: rate}},
			wantErr:  true,
		},
		{
			name:     "bounded top",
			brackets: []Bracket{{Min: decimal.Zero, Max: ptr(100), Rate: rate}},
			wantErr:  true,
		},
		{
			name:     "unbounded middle",
			brackets: []Bracket{{Min: decimal.Zero, Rate: rate}, {Min: decimal.NewFromInt(100), Rate: rate}},
			wantErr:  true,
		},
		{
			name:     "rate above one",
			brackets: []Bracket{{Min: decimal.Zero, Rate: decimal.NewFromInt(2)}},
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBrackets("test", tt.brackets)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTable)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParse_RejectsUnsupportedSchema(t *testing.T) {
	_, err := Parse([]byte("schema_version: \"2.0.0\"\nyear: 2030\nfiling_status: mfj\n"))
	assert.ErrorIs(t, err, ErrInvalidTable)

	_, err = Parse([]byte("schema_version: \"not-a-version\"\n"))
	assert.Error(t, err)
}

func TestLoadFile_RegistersDocuments(t *testing.T) {
	data, err := embeddedTables.ReadFile("tables/2025.yaml")
	require.NoError(t, err)
	modified := []byte(string(data) + "\n")
	dir := t.TempDir()
	file := filepath.Join(dir, "extra.yaml")
	require.NoError(t, os.WriteFile(file, modified, 0o644))

	r := NewRegistry()
	require.NoError(t, r.LoadFile(file))
	assert.Equal(t, []int{2025}, r.Years())

	assert.Error(t, r.LoadFile(filepath.Join(dir, "missing.yaml")))
}

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"1.0.0", true},
		{SchemaVersion, true},
		{"1.9.0", false},
		{"0.9.0", false},
		{"2.0.0", false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			ok, err := IsCompatible(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestSALTCapRule_Cap(t *testing.T) {
	rule := SALTCapRule{
		Base:          decimal.NewFromInt(40000),
		PhaseoutStart: decimal.NewFromInt(500000),
		PhaseoutRate:  decimal.RequireFromString("0.30"),
		Floor:         decimal.NewFromInt(10000),
	}
	tests := []struct {
		agi  int64
		want int64
	}{
		{400000, 40000},
		{500000, 40000},
		{550000, 25000},
		{600000, 10000},
		{900000, 10000},
	}
	for _, tt := range tests {
		got := rule.Cap(decimal.NewFromInt(tt.agi))
		assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "agi %d: got %s", tt.agi, got)
	}

	flat := SALTCapRule{Base: decimal.NewFromInt(10000), Floor: decimal.NewFromInt(10000)}
	assert.True(t, flat.Cap(decimal.NewFromInt(2000000)).Equal(decimal.NewFromInt(10000)))
}
