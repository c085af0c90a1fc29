package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/taxconfig"
	"github.com/shopspring/decimal"
)

func roundBucket(b domain.GainBucket) domain.GainBucket {
	return domain.GainBucket{
		Proceeds:    RoundCurrency(b.Proceeds),
		CostBasis:   RoundCurrency(b.CostBasis),
		Adjustments: RoundCurrency(b.Adjustments),
		GainLoss:    RoundCurrency(b.GainLoss),
	}
}

// ComputeScheduleD totals Form 8949 activity, applies the capital loss
// limitation and decides whether the Schedule D Tax Worksheet applies.
func ComputeScheduleD(input *domain.TaxReturnInput, cfg taxconfig.FederalConfig) domain.ScheduleDResult {
	gains, netShortTerm, netLongTerm := netCapitalGains(input)
	loss := AllocateCapitalLoss(netShortTerm, netLongTerm, cfg.CapitalLossLimit)

	qualifiedDividends := sumOf(input.Form1099DivInts, func(f domain.Form1099DivInt) decimal.Decimal {
		return f.QualifiedDividends
	})
	unrecaptured1250 := sumOf(input.Form1099DivInts, func(f domain.Form1099DivInt) decimal.Decimal {
		return f.UnrecapturedSection1250Gain
	})
	collectibles := sumOf(input.Form1099DivInts, func(f domain.Form1099DivInt) decimal.Decimal {
		return f.CollectiblesGain
	})

	useWorksheet := (netLongTerm.IsPositive() && !loss.NetGainLoss.IsNegative()) || qualifiedDividends.IsPositive()

	return domain.ScheduleDResult{
		ShortTermTotals:      roundBucket(gains.ShortTerm),
		LongTermTotals:       roundBucket(gains.LongTerm),
		NetShortTermGainLoss: RoundCurrency(netShortTerm),
		NetLongTermGainLoss:  RoundCurrency(netLongTerm),
		NetGainLoss:          RoundCurrency(loss.NetGainLoss),
		CapitalLossDeduction: RoundCurrency(loss.Deduction),
		CapitalLossCarryover: domain.CapitalLossCarryover{
			ShortTerm: RoundCurrency(loss.Carryover.ShortTerm),
			LongTerm:  RoundCurrency(loss.Carryover.LongTerm),
		},
		QualifiedDividends:          RoundCurrency(qualifiedDividends),
		UnrecapturedSection1250Gain: RoundCurrency(unrecaptured1250),
		CollectiblesGain:            RoundCurrency(collectibles),
		UseScheduleDTaxWorksheet:    useWorksheet,
		Use28PercentRateWorksheet:   collectibles.IsPositive() || unrecaptured1250.IsPositive(),
	}
}
