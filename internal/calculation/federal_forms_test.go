package calculation

import (
	"testing"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeScheduleA_SALTCapFollowsAGI(t *testing.T) {
	input := minimalReturn(2025)
	input.PropertyTaxPayments = []domain.PropertyTaxPayment{{Jurisdiction: "County", Amount: d(45000)}}
	input.W2s = []domain.W2{{Employer: "Co", Wages: d(600000), StateWithheld: d(20000)}}

	fed := table(t, 2025).Federal
	tests := []struct {
		agi     int64
		wantCap int64
		wantDed int64
	}{
		{450000, 40000, 40000},
		{550000, 25000, 25000},
		{600000, 10000, 10000},
		{800000, 10000, 10000},
	}
	for _, tt := range tests {
		a := ComputeScheduleA(input, fed, d(tt.agi))
		assertMoney(t, 65000, a.SALTBeforeCap, "salt before cap")
		assertMoney(t, tt.wantCap, a.SALTCap, "salt cap")
		assertMoney(t, tt.wantDed, a.SALTDeduction, "salt deduction")
	}

	// 2024 is a flat cap
	flat := ComputeScheduleA(input, table(t, 2024).Federal, d(2000000))
	assertMoney(t, 10000, flat.SALTCap, "2024 cap")
}

func TestComputeScheduleA_Sample(t *testing.T) {
	a := ComputeScheduleA(loadSample(t), table(t, 2024).Federal, d(580530))

	assertMoney(t, 16300, a.StateIncomeTax, "state income tax")
	assertMoney(t, 26000, a.PropertyTax, "property tax")
	assertMoney(t, 480, a.VehicleLicenseFee, "vlf")
	assertMoney(t, 42780, a.SALTBeforeCap, "salt before cap")
	assertMoney(t, 10000, a.SALTDeduction, "salt deduction")
	assertMoney(t, 14500, a.MortgageInterest, "mortgage")
	assertMoney(t, 2200, a.CharitableCash, "cash gifts")
	assertMoney(t, 26700, a.TotalItemized, "total itemized")
	assert.False(t, a.UsesItemized)
}

func TestComputeScheduleA_StateIncomeTaxSources(t *testing.T) {
	input := minimalReturn(2024)
	input.W2s = []domain.W2{{Employer: "Co", Wages: d(200000), StateWithheld: d(9000)}}
	input.Form1099DivInts = []domain.Form1099DivInt{{Payer: "Brokerage", InterestIncome: d(5000), StateWithheld: d(250)}}
	input.Form1099Rs = []domain.Form1099R{{Payer: "Plan", GrossDistribution: d(20000), TaxableAmount: d(20000), StateWithheld: d(1000)}}
	input.EstimatedPayments.California = domain.QuarterlyPayments{Q1: d(500), Q4: d(500)}

	a := ComputeScheduleA(input, table(t, 2024).Federal, d(225000))
	// 9,000 W-2 + 250 1099-INT + 1,000 1099-R + 1,000 estimates
	assertMoney(t, 11250, a.StateIncomeTax, "state income tax")
	assertMoney(t, 11250, a.SALTBeforeCap, "salt before cap")
	assertMoney(t, 10000, a.SALTDeduction, "salt deduction")

	input.Form1099DivInts = nil
	input.Form1099Rs = nil
	a = ComputeScheduleA(input, table(t, 2024).Federal, d(225000))
	assertMoney(t, 10000, a.StateIncomeTax, "W-2 and estimates only")
}

func TestComputeDeductions(t *testing.T) {
	fed := table(t, 2024).Federal

	t.Run("standard wins", func(t *testing.T) {
		got := ComputeDeductions(fed, d(100000), domain.ScheduleAResult{TotalItemized: d(20000)}, domain.Form8995AResult{QBIDeduction: d(100)})
		assert.Equal(t, domain.DeductionStandard, got.DeductionUsed)
		assertMoney(t, 29200, got.DeductionAmount, "deduction")
		assertMoney(t, 70700, got.TaxableIncome, "taxable income")
	})

	t.Run("itemized wins", func(t *testing.T) {
		got := ComputeDeductions(fed, d(100000), domain.ScheduleAResult{TotalItemized: d(35000)}, domain.Form8995AResult{})
		assert.Equal(t, domain.DeductionItemized, got.DeductionUsed)
		assertMoney(t, 65000, got.TaxableIncome, "taxable income")
	})

	t.Run("taxable income floored at zero", func(t *testing.T) {
		got := ComputeDeductions(fed, d(12000), domain.ScheduleAResult{}, domain.Form8995AResult{})
		assertMoney(t, 0, got.TaxableIncome, "taxable income")
	})
}

func TestComputeQBIDeduction(t *testing.T) {
	fed := table(t, 2024).Federal

	got := ComputeQBIDeduction(loadSample(t), fed, d(580530), d(26700))
	assertMoney(t, 2845, got.QualifiedREITDividends, "reit dividends")
	assertMoney(t, 569, got.TentativeDeduction, "tentative")
	assertMoney(t, 551330, got.TaxableIncomeBeforeQBI, "proxy taxable income")
	assertMoney(t, 569, got.QBIDeduction, "deduction")

	input := minimalReturn(2024)
	input.Form1099DivInts = []domain.Form1099DivInt{{Payer: "REIT", OrdinaryDividends: d(50000), Section199ADividends: d(50000)}}
	limited := ComputeQBIDeduction(input, fed, d(31200), decimal.Zero)
	assertMoney(t, 10000, limited.TentativeDeduction, "tentative")
	assertMoney(t, 400, limited.TaxableIncomeLimitation, "limitation")
	assertMoney(t, 400, limited.QBIDeduction, "limited deduction")
}

func TestComputeForm8606(t *testing.T) {
	basis := func(v int64) *decimal.Decimal { x := d(v); return &x }

	tests := []struct {
		name          string
		record        domain.BackdoorRoth
		wantRatio     string
		wantTaxable   int64
		wantRemaining int64
		wantWarning   bool
	}{
		{
			name:          "clean backdoor",
			record:        domain.BackdoorRoth{Spouse: domain.SpouseTaxpayer, TraditionalIRAContribution: d(7000), RothConversionAmount: d(7000)},
			wantRatio:     "1",
			wantTaxable:   0,
			wantRemaining: 0,
		},
		{
			name:          "contribution above conversion with prior basis",
			record:        domain.BackdoorRoth{Spouse: domain.SpouseTaxpayer, TraditionalIRAContribution: d(7500), RothConversionAmount: d(7000), PriorYearBasis: basis(7000)},
			wantRatio:     "1",
			wantTaxable:   0,
			wantRemaining: 7500,
		},
		{
			name:          "pro-rata with pre-tax balance",
			record:        domain.BackdoorRoth{Spouse: domain.SpouseTaxpayer, TraditionalIRAContribution: d(7000), RothConversionAmount: d(7000), YearEndTraditionalIRABalance: d(63000)},
			wantRatio:     "0.1",
			wantTaxable:   6300,
			wantRemaining: 6300,
		},
		{
			name:          "SEP balance pooled and flagged",
			record:        domain.BackdoorRoth{Spouse: domain.SpouseSpouse, TraditionalIRAContribution: d(7000), RothConversionAmount: d(7000), YearEndSEPIRABalance: d(28000)},
			wantRatio:     "0.2",
			wantTaxable:   5600,
			wantRemaining: 5600,
			wantWarning:   true,
		},
		{
			name:          "nothing converted",
			record:        domain.BackdoorRoth{Spouse: domain.SpouseTaxpayer, TraditionalIRAContribution: d(7000)},
			wantRatio:     "1",
			wantTaxable:   0,
			wantRemaining: 7000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := minimalReturn(2024)
			input.BackdoorRoth = []domain.BackdoorRoth{tt.record}
			require.NoError(t, input.Validate())

			got := ComputeForm8606(input)
			require.Len(t, got, 1)
			assert.Equal(t, tt.record.Spouse, got[0].Spouse)
			assert.True(t, got[0].NontaxableRatio.Equal(dec(tt.wantRatio)), "ratio %s", got[0].NontaxableRatio)
			assertMoney(t, tt.wantTaxable, got[0].TaxableConversion, "taxable conversion")
			assertMoney(t, tt.wantRemaining, got[0].RemainingBasis, "remaining basis")
			assert.Equal(t, tt.wantWarning, got[0].ProRataWarning)
		})
	}
}

func TestComputeForm8606_ZeroBalancesNeverTaxable(t *testing.T) {
	for _, contribution := range []int64{7000, 7500, 8000} {
		for _, conversion := range []int64{0, 6500, 7000} {
			input := minimalReturn(2024)
			input.BackdoorRoth = []domain.BackdoorRoth{{
				Spouse:                     domain.SpouseTaxpayer,
				TraditionalIRAContribution: d(contribution),
				RothConversionAmount:       d(conversion),
			}}
			got := ComputeForm8606(input)[0]
			assert.True(t, got.TaxableConversion.IsZero())
			assert.False(t, got.ProRataWarning)
		}
	}
}

func TestComputeForm8606_UsesCarryoverBasis(t *testing.T) {
	input := minimalReturn(2024)
	input.Carryovers.Form8606Basis = domain.SpouseAmounts{Taxpayer: d(1000), Spouse: d(3000)}
	input.BackdoorRoth = []domain.BackdoorRoth{
		{Spouse: domain.SpouseTaxpayer, TraditionalIRAContribution: d(7000), RothConversionAmount: d(7000)},
		{Spouse: domain.SpouseSpouse, TraditionalIRAContribution: d(7000), RothConversionAmount: d(7000)},
	}

	got := ComputeForm8606(input)
	require.Len(t, got, 2)
	assertMoney(t, 8000, got[0].TotalBasis, "taxpayer basis")
	assertMoney(t, 10000, got[1].TotalBasis, "spouse basis")
	assertMoney(t, 3000, got[1].RemainingBasis, "spouse remaining")
}

func TestComputeAdditionalMedicareTax(t *testing.T) {
	fed := table(t, 2024).Federal

	input := minimalReturn(2024)
	input.W2s = []domain.W2{
		{Employer: "A", Wages: d(200000), MedicareWages: d(200000), MedicareTax: d(2900)},
		{Employer: "B", Wages: d(150000), MedicareWages: d(150000), MedicareTax: d(2175)},
	}
	got := ComputeAdditionalMedicareTax(input, fed)
	assertMoney(t, 350000, got.TotalMedicareWages, "medicare wages")
	assertMoney(t, 100000, got.ExcessWages, "excess")
	assertMoney(t, 900, got.AdditionalMedicareTax, "additional medicare tax")
	assertMoney(t, 5075, got.MedicareWithheld, "withheld")

	assertMoney(t, 0, ComputeAdditionalMedicareTax(loadSample(t), fed).AdditionalMedicareTax, "sample")
}

func TestComputeNIIT(t *testing.T) {
	fed := table(t, 2024).Federal

	tests := []struct {
		name   string
		income domain.IncomeResult
		want   int64
	}{
		{
			name: "limited by AGI excess",
			income: domain.IncomeResult{
				TaxableInterest: d(530), OrdinaryDividends: d(50000),
				NetShortTermGainLoss: d(18000), NetLongTermGainLoss: d(275000), AGI: d(580530),
			},
			want: 12560,
		},
		{
			name: "limited by investment income",
			income: domain.IncomeResult{
				TaxableInterest: d(10000), NetLongTermGainLoss: d(-3000), AGI: d(400000),
			},
			want: 380,
		},
		{
			name:   "below threshold",
			income: domain.IncomeResult{OrdinaryDividends: d(90000), AGI: d(240000)},
			want:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMoney(t, tt.want, ComputeNIIT(fed, tt.income).NIIT, "niit")
		})
	}
}

func TestComputeForeignTaxCredit(t *testing.T) {
	input := minimalReturn(2024)
	input.Form1099DivInts = []domain.Form1099DivInt{
		{Payer: "Intl Fund", OrdinaryDividends: d(20000), ForeignTaxPaid: d(900)},
		{Payer: "US Fund", OrdinaryDividends: d(30000)},
	}
	input.Carryovers.ForeignTaxCreditCarryover = d(150)

	got := ComputeForeignTaxCredit(input, d(200000), d(30000))
	assertMoney(t, 20000, got.ForeignSourceIncome, "foreign source income")
	assertMoney(t, 3000, got.CreditLimitation, "limitation")
	assertMoney(t, 900, got.CreditAllowed, "allowed")
	assertMoney(t, 0, got.CreditCarryover, "carryover")
	assertMoney(t, 150, got.TotalCarryforward, "total carryforward")

	limited := ComputeForeignTaxCredit(input, d(200000), d(5000))
	assertMoney(t, 500, limited.CreditAllowed, "limited allowed")
	assertMoney(t, 400, limited.CreditCarryover, "limited carryover")

	none := ComputeForeignTaxCredit(input, decimal.Zero, d(5000))
	assertMoney(t, 0, none.CreditAllowed, "no income")
}

func TestComputeUnderpaymentPenalty(t *testing.T) {
	fed := table(t, 2024).Federal

	t.Run("safe harbor met", func(t *testing.T) {
		got := ComputeUnderpaymentPenalty(fed, d(101134), d(40000), d(51700))
		assert.True(t, got.SafeHarborMet)
		assertMoney(t, 44000, got.RequiredAnnualPayment, "required")
		assertMoney(t, 0, got.PenaltyDue, "penalty")
	})

	t.Run("shortfall", func(t *testing.T) {
		got := ComputeUnderpaymentPenalty(fed, d(100000), d(80000), d(60000))
		assert.False(t, got.SafeHarborMet)
		assertMoney(t, 88000, got.RequiredAnnualPayment, "required")
		assertMoney(t, 28000, got.UnderpaymentAmount, "underpayment")
		assertMoney(t, 2240, got.PenaltyDue, "penalty")
	})
}

func TestComputeScheduleB(t *testing.T) {
	got := ComputeScheduleB(loadSample(t), table(t, 2024).Federal)

	require.Len(t, got.InterestItems, 2)
	assert.Equal(t, "Schwab Investments", got.InterestItems[0].Payer)
	assertMoney(t, 530, got.TotalInterest, "interest")
	require.Len(t, got.DividendItems, 3)
	assertMoney(t, 50000, got.TotalOrdinaryDividends, "dividends")
	assert.True(t, got.RequiresPartIII)

	small := minimalReturn(2024)
	small.Form1099DivInts = []domain.Form1099DivInt{{Payer: "Bank", InterestIncome: d(1500)}}
	assert.False(t, ComputeScheduleB(small, table(t, 2024).Federal).RequiresPartIII)
}
