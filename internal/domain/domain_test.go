package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func validInput() *TaxReturnInput {
	basis := d(7000)
	return &TaxReturnInput{
		TaxYear:      2024,
		FilingStatus: FilingStatusMarriedFilingJointly,
		Taxpayer:     Person{FirstName: "Alex", LastName: "Rivera"},
		Spouse:       &Person{FirstName: "Sam", LastName: "Rivera"},
		Dependents:   []Dependent{{FirstName: "Jo"}},
		W2s: []W2{
			{Employer: "Acme", Wages: d(100000), FederalWithheld: d(15000), MedicareWages: d(100000), StateWithheld: d(6000)},
		},
		Form1099DivInts: []Form1099DivInt{
			{Payer: "Fund", OrdinaryDividends: d(1000), QualifiedDividends: d(800)},
		},
		Form1099Bs: []BrokerSummary{
			{Broker: "Broker", Entries: []Form1099BEntry{{Description: "XYZ", Proceeds: d(500), CostBasis: d(700), GainLoss: d(-200), Box: Box8949A}}},
		},
		BackdoorRoth: []BackdoorRoth{
			{Spouse: SpouseTaxpayer, TraditionalIRAContribution: d(7000), RothConversionAmount: d(7000), PriorYearBasis: &basis},
		},
		Carryovers: PriorYearCarryovers{
			CapitalLoss:   CapitalLossCarryover{ShortTerm: d(-100), LongTerm: decimal.Zero},
			Form8606Basis: SpouseAmounts{Taxpayer: d(7000)},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(in *TaxReturnInput)
		wantErr   error
		wantField string
	}{
		{
			name:   "valid input",
			mutate: func(in *TaxReturnInput) {},
		},
		{
			name:      "missing tax year",
			mutate:    func(in *TaxReturnInput) { in.TaxYear = 0 },
			wantErr:   ErrMalformedInput,
			wantField: "tax_year",
		},
		{
			name:      "unknown filing status",
			mutate:    func(in *TaxReturnInput) { in.FilingStatus = "married" },
			wantErr:   ErrMalformedInput,
			wantField: "filing_status",
		},
		{
			name:      "joint return without spouse",
			mutate:    func(in *TaxReturnInput) { in.Spouse = nil; in.BackdoorRoth = nil },
			wantErr:   ErrMalformedInput,
			wantField: "spouse",
		},
		{
			name:      "negative wage",
			mutate:    func(in *TaxReturnInput) { in.W2s[0].Wages = d(-1) },
			wantErr:   ErrRangeViolation,
			wantField: "w2s[0].wages",
		},
		{
			name:      "negative withholding",
			mutate:    func(in *TaxReturnInput) { in.W2s[0].FederalWithheld = d(-5) },
			wantErr:   ErrRangeViolation,
			wantField: "w2s[0].federal_withheld",
		},
		{
			name:      "qualified dividends exceed ordinary",
			mutate:    func(in *TaxReturnInput) { in.Form1099DivInts[0].QualifiedDividends = d(1200) },
			wantErr:   ErrRangeViolation,
			wantField: "form_1099_div_ints[0].qualified_dividends",
		},
		{
			name:      "unknown 8949 box",
			mutate:    func(in *TaxReturnInput) { in.Form1099Bs[0].Entries[0].Box = "G" },
			wantErr:   ErrMalformedInput,
			wantField: "form_1099_bs[0].entries[0].box",
		},
		{
			name: "taxable retirement amount above gross",
			mutate: func(in *TaxReturnInput) {
				in.Form1099Rs = []Form1099R{{Payer: "IRA", GrossDistribution: d(100), TaxableAmount: d(200)}}
			},
			wantErr:   ErrRangeViolation,
			wantField: "form_1099_rs[0].taxable_amount",
		},
		{
			name:      "positive capital loss carryover",
			mutate:    func(in *TaxReturnInput) { in.Carryovers.CapitalLoss.LongTerm = d(500) },
			wantErr:   ErrMalformedInput,
			wantField: "carryovers.capital_loss.long_term",
		},
		{
			name: "prior basis disagrees with carryover",
			mutate: func(in *TaxReturnInput) {
				other := d(6500)
				in.BackdoorRoth[0].PriorYearBasis = &other
			},
			wantErr:   ErrMalformedInput,
			wantField: "backdoor_roth[0].prior_year_basis",
		},
		{
			name:      "unknown donation type",
			mutate:    func(in *TaxReturnInput) { in.CharitableDonations = []CharitableDonation{{Recipient: "X", Amount: d(10), Type: "stock"}} },
			wantErr:   ErrMalformedInput,
			wantField: "charitable_donations[0].type",
		},
		{
			name:      "negative estimated payment",
			mutate:    func(in *TaxReturnInput) { in.EstimatedPayments.California.Q2 = d(-1) },
			wantErr:   ErrRangeViolation,
			wantField: "estimated_payments.california.q2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)
			err := in.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
			var te *TaxError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, tt.wantField, te.Field)
		})
	}
}

func TestTaxError_IsMatchesOnlyItsSentinel(t *testing.T) {
	err := NewRangeViolation("w2s[0].wages", "must not be negative")

	assert.True(t, errors.Is(err, ErrRangeViolation))
	assert.False(t, errors.Is(err, ErrMalformedInput))
	assert.False(t, errors.Is(err, ErrConfigurationMismatch))
	assert.Equal(t, CodeRangeViolation, CodeOf(err))
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("plain")))
	assert.Contains(t, err.Error(), "RANGE_VIOLATION")
	assert.Contains(t, err.Error(), "w2s[0].wages")
}

func TestClone_IsIndependent(t *testing.T) {
	original := validInput()
	copied := original.Clone()

	copied.W2s[0].Wages = d(1)
	copied.Spouse.FirstName = "Changed"
	copied.Form1099Bs[0].Entries[0].Proceeds = d(1)
	*copied.BackdoorRoth[0].PriorYearBasis = d(1)

	assert.True(t, original.W2s[0].Wages.Equal(d(100000)))
	assert.Equal(t, "Sam", original.Spouse.FirstName)
	assert.True(t, original.Form1099Bs[0].Entries[0].Proceeds.Equal(d(500)))
	assert.True(t, original.BackdoorRoth[0].PriorYearBasis.Equal(d(7000)))
}

func TestWithHelpers_DoNotTouchReceiver(t *testing.T) {
	original := validInput()

	derived := original.
		WithW2s(W2{Employer: "New", Wages: d(5)}).
		WithEstimatedPayments(EstimatedPayments{Federal: QuarterlyPayments{Q3: d(5000)}}).
		WithCarryovers(PriorYearCarryovers{PriorYearOverpaymentApplied: d(10)})

	require.Len(t, original.W2s, 1)
	assert.Equal(t, "Acme", original.W2s[0].Employer)
	assert.True(t, original.EstimatedPayments.Federal.Total().IsZero())
	assert.True(t, original.Carryovers.PriorYearOverpaymentApplied.IsZero())

	assert.Equal(t, "New", derived.W2s[0].Employer)
	assert.True(t, derived.EstimatedPayments.Federal.Total().Equal(d(5000)))
	assert.True(t, derived.Carryovers.PriorYearOverpaymentApplied.Equal(d(10)))
}

func TestPriorBasisFor(t *testing.T) {
	in := validInput()
	assert.True(t, in.PriorBasisFor(in.BackdoorRoth[0]).Equal(d(7000)))

	in.BackdoorRoth[0].PriorYearBasis = nil
	in.Carryovers.Form8606Basis.Taxpayer = d(4000)
	assert.True(t, in.PriorBasisFor(in.BackdoorRoth[0]).Equal(d(4000)))
}

func TestForm8949Box(t *testing.T) {
	for _, b := range []Form8949Box{Box8949A, Box8949B, Box8949C} {
		assert.True(t, b.IsShortTerm(), string(b))
	}
	for _, b := range []Form8949Box{Box8949D, Box8949E, Box8949F} {
		assert.False(t, b.IsShortTerm(), string(b))
		assert.True(t, b.IsValid(), string(b))
	}
	assert.False(t, Form8949Box("Z").IsValid())
}

func TestPersonCount(t *testing.T) {
	in := validInput()
	assert.Equal(t, 2, in.PersonCount())
	in.FilingStatus = FilingStatusSingle
	assert.Equal(t, 1, in.PersonCount())
}
