package calculation

import (
	"testing"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeScheduleCA(t *testing.T) {
	got := ComputeScheduleCA(d(580530))
	assertMoney(t, 580530, got.FederalAGI, "federal agi")
	assertMoney(t, 0, got.CAAdditions, "additions")
	assertMoney(t, 0, got.CASubtractions, "subtractions")
	assertMoney(t, 580530, got.CAAGI, "ca agi")
}

func TestComputeCAItemizedDeductions_Sample(t *testing.T) {
	input := loadSample(t)
	cfg := table(t, 2024)
	scheduleA := ComputeScheduleA(input, cfg.Federal, d(580530))

	got := ComputeCAItemizedDeductions(input, cfg.California, d(580530), scheduleA)

	assertMoney(t, 26700, got.FederalItemized, "federal itemized")
	assertMoney(t, 32780, got.SALTCapReversal, "salt cap reversal")
	assertMoney(t, 16300, got.StateIncomeTaxRemoved, "state income tax removed")
	assertMoney(t, 43180, got.ItemizedBeforePhaseout, "before phase-out")
	assertMoney(t, 5449, got.AGIPhaseoutReduction, "phase-out")
	assertMoney(t, 37731, got.TotalCAItemized, "total")
	assert.True(t, got.UsesItemized)
}

func TestComputeCAItemizedDeductions_PhaseoutCappedAt80Percent(t *testing.T) {
	input := minimalReturn(2024)
	cfg := table(t, 2024).California
	scheduleA := domain.ScheduleAResult{TotalItemized: d(20000), SALTBeforeCap: d(10000), SALTDeduction: d(10000)}

	got := ComputeCAItemizedDeductions(input, cfg, d(5000000), scheduleA)
	assertMoney(t, 16000, got.AGIPhaseoutReduction, "reduction")
	assertMoney(t, 4000, got.TotalCAItemized, "total")
	assert.False(t, got.UsesItemized)
}

func TestComputeCAItemizedDeductions_MiscFloor(t *testing.T) {
	input := minimalReturn(2024)
	cfg := table(t, 2024).California

	input.CAMiscDeductions = d(5000)
	got := ComputeCAItemizedDeductions(input, cfg, d(200000), domain.ScheduleAResult{TotalItemized: d(30000)})
	assertMoney(t, 1000, got.MiscDeductions, "misc over 2% floor")
	assertMoney(t, 31000, got.TotalCAItemized, "total")

	input.CAMiscDeductions = d(3000)
	got = ComputeCAItemizedDeductions(input, cfg, d(200000), domain.ScheduleAResult{TotalItemized: d(30000)})
	assertMoney(t, 0, got.MiscDeductions, "misc under floor")
}

func TestComputeCAExemptionCredit(t *testing.T) {
	cfg := table(t, 2024).California
	input := minimalReturn(2024)
	input.Dependents = []domain.Dependent{{FirstName: "A"}, {FirstName: "B"}}
	threshold := int64(489719)

	tests := []struct {
		name           string
		agi            int64
		wantIncrements int64
		wantCredit     int64
	}{
		{"below threshold", 300000, 0, 1180},
		{"at threshold", threshold, 0, 1180},
		{"one full increment", threshold + 2500, 1, 1156},
		// a partial $2,500 counts as a full increment ("or fraction thereof");
		// floor division would miss the sample's $292 credit
		{"fraction starts another increment", threshold + 2501, 2, 1132},
		{"sample household", 580530, 37, 292},
		{"fully phased out", 800000, 125, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCAExemptionCredit(input, cfg, d(tt.agi))
			assertMoney(t, 288, got.PersonalCredits, "personal")
			assertMoney(t, 892, got.DependentCredits, "dependent")
			assert.Equal(t, tt.wantIncrements, got.PhaseoutIncrements)
			assertMoney(t, tt.wantCredit, got.TotalCredit, "credit")
		})
	}
}

func TestComputeCATax(t *testing.T) {
	cfg := table(t, 2024).California
	noCredit := domain.CAExemptionCreditResult{TotalCredit: decimal.Zero}

	t.Run("sample", func(t *testing.T) {
		got := ComputeCATax(cfg, d(542799), domain.CAExemptionCreditResult{TotalCredit: d(292)})
		assertMoney(t, 43565, got.RegularTax, "regular")
		assertMoney(t, 0, got.MentalHealthTax, "mental health")
		assertMoney(t, 43273, got.TaxAfterCredits, "after credits")
	})

	t.Run("surtax rounds away below a dollar", func(t *testing.T) {
		got := ComputeCATax(cfg, d(1000001), noCredit)
		assertMoney(t, 0, got.MentalHealthTax, "mental health")
	})

	t.Run("surtax above threshold", func(t *testing.T) {
		got := ComputeCATax(cfg, d(1100000), noCredit)
		assertMoney(t, 1000, got.MentalHealthTax, "mental health")
		assert.True(t, got.TotalTax.Equal(got.RegularTax.Add(d(1000))))
	})

	t.Run("credits never push tax below zero", func(t *testing.T) {
		got := ComputeCATax(cfg, d(5000), domain.CAExemptionCreditResult{TotalCredit: d(1180)})
		assertMoney(t, 50, got.RegularTax, "regular")
		assertMoney(t, 0, got.TaxAfterCredits, "after credits")
	})
}
