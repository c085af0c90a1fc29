package domain

import (
	"slices"
)

// Clone returns a deep copy of the input. Callers that need a modified
// return derive one from a clone instead of editing a shared value.
func (in *TaxReturnInput) Clone() *TaxReturnInput {
	if in == nil {
		return nil
	}
	out := *in
	if in.Spouse != nil {
		spouse := *in.Spouse
		out.Spouse = &spouse
	}
	out.Dependents = slices.Clone(in.Dependents)
	out.W2s = make([]W2, len(in.W2s))
	for i, w2 := range in.W2s {
		w2.Box12 = slices.Clone(w2.Box12)
		out.W2s[i] = w2
	}
	out.Form1099DivInts = slices.Clone(in.Form1099DivInts)
	out.Form1099Bs = make([]BrokerSummary, len(in.Form1099Bs))
	for i, b := range in.Form1099Bs {
		b.Entries = slices.Clone(b.Entries)
		out.Form1099Bs[i] = b
	}
	out.Form1099Rs = slices.Clone(in.Form1099Rs)
	if in.Crypto != nil {
		crypto := *in.Crypto
		crypto.Entries = slices.Clone(in.Crypto.Entries)
		out.Crypto = &crypto
	}
	out.OtherIncome = slices.Clone(in.OtherIncome)
	out.Form1098s = slices.Clone(in.Form1098s)
	out.PropertyTaxPayments = slices.Clone(in.PropertyTaxPayments)
	out.CharitableDonations = slices.Clone(in.CharitableDonations)
	out.VehicleRegistrations = slices.Clone(in.VehicleRegistrations)
	out.BackdoorRoth = make([]BackdoorRoth, len(in.BackdoorRoth))
	for i, br := range in.BackdoorRoth {
		if br.PriorYearBasis != nil {
			basis := *br.PriorYearBasis
			br.PriorYearBasis = &basis
		}
		out.BackdoorRoth[i] = br
	}
	return &out
}

// WithW2s derives a new input with the wage statements replaced
func (in *TaxReturnInput) WithW2s(w2s ...W2) *TaxReturnInput {
	out := in.Clone()
	out.W2s = slices.Clone(w2s)
	return out
}

// WithForm1099DivInts derives a new input with the interest and dividend statements replaced
func (in *TaxReturnInput) WithForm1099DivInts(forms ...Form1099DivInt) *TaxReturnInput {
	out := in.Clone()
	out.Form1099DivInts = slices.Clone(forms)
	return out
}

// WithBrokerSummaries derives a new input with the 1099-B summaries replaced
func (in *TaxReturnInput) WithBrokerSummaries(brokers ...BrokerSummary) *TaxReturnInput {
	out := in.Clone()
	out.Form1099Bs = make([]BrokerSummary, len(brokers))
	for i, b := range brokers {
		b.Entries = slices.Clone(b.Entries)
		out.Form1099Bs[i] = b
	}
	return out
}

// WithBackdoorRoth derives a new input with the backdoor Roth records replaced
func (in *TaxReturnInput) WithBackdoorRoth(records ...BackdoorRoth) *TaxReturnInput {
	out := in.Clone()
	out.BackdoorRoth = slices.Clone(records)
	return out
}

// WithCarryovers derives a new input with the prior-year carryovers replaced
func (in *TaxReturnInput) WithCarryovers(c PriorYearCarryovers) *TaxReturnInput {
	out := in.Clone()
	out.Carryovers = c
	return out
}

// WithEstimatedPayments derives a new input with the estimated payments replaced
func (in *TaxReturnInput) WithEstimatedPayments(p EstimatedPayments) *TaxReturnInput {
	out := in.Clone()
	out.EstimatedPayments = p
	return out
}

// WithDependents derives a new input with the dependents replaced
func (in *TaxReturnInput) WithDependents(deps ...Dependent) *TaxReturnInput {
	out := in.Clone()
	out.Dependents = slices.Clone(deps)
	return out
}
