package calculation

import (
	"fmt"
	"testing"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateCapitalLoss(t *testing.T) {
	limit := d(3000)
	tests := []struct {
		name          string
		shortTerm     int64
		longTerm      int64
		wantAllowed   int64
		wantDeduction int64
		wantCarryST   int64
		wantCarryLT   int64
	}{
		{"net gain", 5000, 2000, 7000, 0, 0, 0},
		{"loss under limit", -2000, -500, -2500, 2500, 0, 0},
		{"loss exactly at limit", -3000, 0, -3000, 3000, 0, 0},
		{"short-term absorbs excess", -5000, -1000, -3000, 3000, -3000, 0},
		{"excess spills to long-term", -1000, -7000, -3000, 3000, -1000, -4000},
		{"short-term gain offsets", 4000, -10000, -3000, 3000, 0, -3000},
		{"long-term gain offsets", -10000, 4000, -3000, 3000, -3000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllocateCapitalLoss(d(tt.shortTerm), d(tt.longTerm), limit)
			assertMoney(t, tt.shortTerm+tt.longTerm, got.NetGainLoss, "net")
			assertMoney(t, tt.wantAllowed, got.Allowed, "allowed")
			assertMoney(t, tt.wantDeduction, got.Deduction, "deduction")
			assertMoney(t, tt.wantCarryST, got.Carryover.ShortTerm, "carryover short-term")
			assertMoney(t, tt.wantCarryLT, got.Carryover.LongTerm, "carryover long-term")
			assert.False(t, got.Carryover.ShortTerm.IsPositive())
			assert.False(t, got.Carryover.LongTerm.IsPositive())
		})
	}
}

func TestAllocateCapitalLoss_CarryoverEqualsExcess(t *testing.T) {
	limit := d(3000)
	for st := int64(-20000); st <= 20000; st += 2500 {
		for lt := int64(-20000); lt <= 20000; lt += 2500 {
			alloc := AllocateCapitalLoss(d(st), d(lt), limit)
			if st+lt >= -3000 {
				assert.True(t, alloc.Carryover.ShortTerm.Add(alloc.Carryover.LongTerm).IsZero())
				continue
			}
			assertMoney(t, 3000, alloc.Deduction, fmt.Sprintf("deduction st=%d lt=%d", st, lt))
			carried := alloc.Carryover.ShortTerm.Add(alloc.Carryover.LongTerm).Neg()
			assertMoney(t, -(st+lt)-3000, carried, fmt.Sprintf("carryover st=%d lt=%d", st, lt))
		}
	}
}

// Income aggregation and Schedule D both apply the loss limitation; they must
// agree for every combination of gains, losses and carryovers.
func TestCapitalLoss_IncomeAndScheduleDAgree(t *testing.T) {
	fed := table(t, 2024).Federal
	values := []int64{-25000, -4000, -1500, 0, 2000, 12000}
	carries := []int64{0, -800, -9000}

	for _, st := range values {
		for _, lt := range values {
			for _, carry := range carries {
				input := minimalReturn(2024)
				input.Form1099Bs = []domain.BrokerSummary{{
					Broker:                 "Broker",
					ShortTermBasisReported: d(st),
					LongTermBasisReported:  d(lt),
				}}
				input.Carryovers.CapitalLoss = domain.CapitalLossCarryover{ShortTerm: d(carry), LongTerm: d(carry / 2)}
				require.NoError(t, input.Validate())

				income := ComputeIncome(input, fed)
				scheduleD := ComputeScheduleD(input, fed)

				label := fmt.Sprintf("st=%d lt=%d carry=%d", st, lt, carry)
				assert.True(t, income.CapitalLossCarryover.ShortTerm.Equal(scheduleD.CapitalLossCarryover.ShortTerm), label)
				assert.True(t, income.CapitalLossCarryover.LongTerm.Equal(scheduleD.CapitalLossCarryover.LongTerm), label)
				assert.True(t, income.NetShortTermGainLoss.Equal(scheduleD.NetShortTermGainLoss), label)
				assert.True(t, income.NetLongTermGainLoss.Equal(scheduleD.NetLongTermGainLoss), label)
				if scheduleD.NetGainLoss.IsNegative() {
					assert.True(t, income.NetCapitalGainLoss.Equal(scheduleD.CapitalLossDeduction.Neg()), label)
				} else {
					assert.True(t, income.NetCapitalGainLoss.Equal(scheduleD.NetGainLoss), label)
				}
			}
		}
	}
}

func TestBucketCapitalGains(t *testing.T) {
	input := minimalReturn(2024)
	input.Form1099Bs = []domain.BrokerSummary{
		{
			Broker: "Itemized",
			Entries: []domain.Form1099BEntry{
				{Description: "AAA", Proceeds: d(1000), CostBasis: d(1500), GainLoss: d(-500), Box: domain.Box8949A},
				{Description: "BBB", Proceeds: d(9000), CostBasis: d(4000), GainLoss: d(5000), Box: domain.Box8949D},
				{Description: "CCC", Proceeds: d(800), CostBasis: d(1000), AdjustmentAmount: d(100), GainLoss: d(-100), Box: domain.Box8949B},
			},
			// ignored because entries are present
			ShortTermBasisReported: d(99999),
		},
		{Broker: "Aggregate", ShortTermBasisReported: d(300), LongTermNotOn1099B: d(-700)},
	}
	input.Crypto = &domain.CryptoData{ShortTermGainLoss: d(250), LongTermGainLoss: d(1250)}
	input.Form1099DivInts = []domain.Form1099DivInt{{Payer: "Fund", CapitalGainDistributions: d(400)}}

	gains := bucketCapitalGains(input)

	assertMoney(t, -500-100+300+250, gains.ShortTerm.GainLoss, "short-term")
	assertMoney(t, 1800, gains.ShortTerm.Proceeds, "short-term proceeds")
	assertMoney(t, 2500, gains.ShortTerm.CostBasis, "short-term basis")
	assertMoney(t, 100, gains.ShortTerm.Adjustments, "short-term adjustments")
	assertMoney(t, 5000-700+1250+400, gains.LongTerm.GainLoss, "long-term")
	assertMoney(t, 400, gains.CapitalGainDistributions, "distributions")

	// crypto lots take precedence over the crypto totals
	input.Crypto.Entries = []domain.Form1099BEntry{
		{Description: "BTC", Proceeds: d(2000), CostBasis: d(1000), GainLoss: d(1000), Box: domain.Box8949C},
	}
	gains = bucketCapitalGains(input)
	assertMoney(t, -500-100+300+1000, gains.ShortTerm.GainLoss, "short-term with crypto lots")
	assertMoney(t, 5000-700+400, gains.LongTerm.GainLoss, "long-term with crypto lots")
}
