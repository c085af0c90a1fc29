package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
)

// CapitalLossAllocation is the outcome of applying the annual capital loss
// limitation to a net short-term and net long-term position.
type CapitalLossAllocation struct {
	NetGainLoss decimal.Decimal // combined before the limitation
	Allowed     decimal.Decimal // amount that flows to total income
	Deduction   decimal.Decimal // positive magnitude of any allowed loss
	Carryover   domain.CapitalLossCarryover
}

// AllocateCapitalLoss limits a combined net loss to limit and carries the
// excess forward short-term first. Carryover figures are negative or zero.
func AllocateCapitalLoss(netShortTerm, netLongTerm, limit decimal.Decimal) CapitalLossAllocation {
	combined := netShortTerm.Add(netLongTerm)
	alloc := CapitalLossAllocation{
		NetGainLoss: combined,
		Allowed:     combined,
		Deduction:   decimal.Zero,
		Carryover:   domain.CapitalLossCarryover{ShortTerm: decimal.Zero, LongTerm: decimal.Zero},
	}
	if !combined.IsNegative() {
		return alloc
	}

	alloc.Allowed = decimal.Max(combined, limit.Neg())
	alloc.Deduction = alloc.Allowed.Neg()

	if combined.GreaterThanOrEqual(limit.Neg()) {
		return alloc
	}

	excess := combined.Abs().Sub(limit)
	shortTermCarry := decimal.Zero
	if netShortTerm.IsNegative() {
		shortTermCarry = decimal.Min(excess, netShortTerm.Abs())
	}
	alloc.Carryover.ShortTerm = shortTermCarry.Neg()
	alloc.Carryover.LongTerm = excess.Sub(shortTermCarry).Neg()
	return alloc
}

// capitalGains holds the per-holding-period buckets before carryovers
type capitalGains struct {
	ShortTerm                domain.GainBucket
	LongTerm                 domain.GainBucket
	CapitalGainDistributions decimal.Decimal
}

func (b *capitalGains) addEntry(e domain.Form1099BEntry) {
	bucket := &b.LongTerm
	if e.Box.IsShortTerm() {
		bucket = &b.ShortTerm
	}
	bucket.Proceeds = bucket.Proceeds.Add(e.Proceeds)
	bucket.CostBasis = bucket.CostBasis.Add(e.CostBasis)
	bucket.Adjustments = bucket.Adjustments.Add(e.AdjustmentAmount)
	bucket.GainLoss = bucket.GainLoss.Add(e.GainLoss)
}

// bucketCapitalGains sorts broker, crypto and fund distribution gains into
// short- and long-term buckets. Itemized lots take precedence over the
// aggregate totals a statement also carries.
func bucketCapitalGains(input *domain.TaxReturnInput) capitalGains {
	var gains capitalGains

	for _, broker := range input.Form1099Bs {
		if len(broker.Entries) > 0 {
			for _, e := range broker.Entries {
				gains.addEntry(e)
			}
			continue
		}
		gains.ShortTerm.GainLoss = gains.ShortTerm.GainLoss.Add(broker.ShortTermTotal())
		gains.LongTerm.GainLoss = gains.LongTerm.GainLoss.Add(broker.LongTermTotal())
	}

	if input.Crypto != nil {
		if len(input.Crypto.Entries) > 0 {
			for _, e := range input.Crypto.Entries {
				gains.addEntry(e)
			}
		} else {
			gains.ShortTerm.GainLoss = gains.ShortTerm.GainLoss.Add(input.Crypto.ShortTermGainLoss)
			gains.LongTerm.GainLoss = gains.LongTerm.GainLoss.Add(input.Crypto.LongTermGainLoss)
		}
	}

	gains.CapitalGainDistributions = sumOf(input.Form1099DivInts, func(f domain.Form1099DivInt) decimal.Decimal {
		return f.CapitalGainDistributions
	})
	gains.LongTerm.GainLoss = gains.LongTerm.GainLoss.Add(gains.CapitalGainDistributions)

	return gains
}

// netCapitalGains returns net short- and long-term figures including the
// prior-year carryovers
func netCapitalGains(input *domain.TaxReturnInput) (capitalGains, decimal.Decimal, decimal.Decimal) {
	gains := bucketCapitalGains(input)
	netShortTerm := gains.ShortTerm.GainLoss.Add(input.Carryovers.CapitalLoss.ShortTerm)
	netLongTerm := gains.LongTerm.GainLoss.Add(input.Carryovers.CapitalLoss.LongTerm)
	return gains, netShortTerm, netLongTerm
}
