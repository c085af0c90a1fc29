package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type amountField struct {
	name  string
	value decimal.Decimal
}

func requireNonNegative(fields ...amountField) error {
	for _, f := range fields {
		if f.value.IsNegative() {
			return NewRangeViolation(f.name, "must not be negative, got %s", f.value.String())
		}
	}
	return nil
}

// Validate checks the input before any calculation runs. It returns the first
// problem found as a *TaxError and never adjusts the input.
func (in *TaxReturnInput) Validate() error {
	if in.TaxYear <= 0 {
		return NewMalformedInput("tax_year", "tax year is required")
	}
	if !in.FilingStatus.IsValid() {
		return NewMalformedInput("filing_status", "unknown filing status %q", in.FilingStatus)
	}
	if in.FilingStatus.IsJoint() && in.Spouse == nil {
		return NewMalformedInput("spouse", "spouse record is required for filing status %q", in.FilingStatus)
	}

	for i, w2 := range in.W2s {
		p := fmt.Sprintf("w2s[%d]", i)
		if err := requireNonNegative(
			amountField{p + ".wages", w2.Wages},
			amountField{p + ".federal_withheld", w2.FederalWithheld},
			amountField{p + ".social_security_wages", w2.SocialSecurityWages},
			amountField{p + ".social_security_tax", w2.SocialSecurityTax},
			amountField{p + ".medicare_wages", w2.MedicareWages},
			amountField{p + ".medicare_tax", w2.MedicareTax},
			amountField{p + ".state_wages", w2.StateWages},
			amountField{p + ".state_withheld", w2.StateWithheld},
			amountField{p + ".local_wages", w2.LocalWages},
			amountField{p + ".local_withheld", w2.LocalWithheld},
		); err != nil {
			return err
		}
	}

	for i, f := range in.Form1099DivInts {
		p := fmt.Sprintf("form_1099_div_ints[%d]", i)
		if err := requireNonNegative(
			amountField{p + ".interest_income", f.InterestIncome},
			amountField{p + ".early_withdrawal_penalty", f.EarlyWithdrawalPenalty},
			amountField{p + ".us_savings_bond_interest", f.USSavingsBondInterest},
			amountField{p + ".federal_withheld", f.FederalWithheld},
			amountField{p + ".tax_exempt_interest", f.TaxExemptInterest},
			amountField{p + ".private_activity_bond_interest", f.PrivateActivityBondInt},
			amountField{p + ".ordinary_dividends", f.OrdinaryDividends},
			amountField{p + ".qualified_dividends", f.QualifiedDividends},
			amountField{p + ".capital_gain_distributions", f.CapitalGainDistributions},
			amountField{p + ".unrecaptured_section_1250_gain", f.UnrecapturedSection1250Gain},
			amountField{p + ".section_1202_gain", f.Section1202Gain},
			amountField{p + ".collectibles_gain", f.CollectiblesGain},
			amountField{p + ".section_199a_dividends", f.Section199ADividends},
			amountField{p + ".foreign_tax_paid", f.ForeignTaxPaid},
			amountField{p + ".exempt_interest_dividends", f.ExemptInterestDividends},
			amountField{p + ".private_activity_bond_dividends", f.PrivateActivityBondDivs},
			amountField{p + ".state_withheld", f.StateWithheld},
		); err != nil {
			return err
		}
		if f.QualifiedDividends.GreaterThan(f.OrdinaryDividends) {
			return NewRangeViolation(p+".qualified_dividends", "qualified dividends %s exceed ordinary dividends %s",
				f.QualifiedDividends.String(), f.OrdinaryDividends.String())
		}
	}

	for i, b := range in.Form1099Bs {
		if err := validateEntries(fmt.Sprintf("form_1099_bs[%d]", i), b.Entries); err != nil {
			return err
		}
	}
	if in.Crypto != nil {
		if err := validateEntries("crypto", in.Crypto.Entries); err != nil {
			return err
		}
	}

	for i, r := range in.Form1099Rs {
		p := fmt.Sprintf("form_1099_rs[%d]", i)
		if err := requireNonNegative(
			amountField{p + ".gross_distribution", r.GrossDistribution},
			amountField{p + ".taxable_amount", r.TaxableAmount},
			amountField{p + ".capital_gain_amount", r.CapitalGainAmount},
			amountField{p + ".federal_withheld", r.FederalWithheld},
			amountField{p + ".state_withheld", r.StateWithheld},
			amountField{p + ".state_distribution", r.StateDistribution},
		); err != nil {
			return err
		}
		if r.TaxableAmount.GreaterThan(r.GrossDistribution) {
			return NewRangeViolation(p+".taxable_amount", "taxable amount %s exceeds gross distribution %s",
				r.TaxableAmount.String(), r.GrossDistribution.String())
		}
	}

	for i, o := range in.OtherIncome {
		if err := requireNonNegative(amountField{fmt.Sprintf("other_income[%d].amount", i), o.Amount}); err != nil {
			return err
		}
	}
	for i, m := range in.Form1098s {
		p := fmt.Sprintf("form_1098s[%d]", i)
		if err := requireNonNegative(
			amountField{p + ".mortgage_interest", m.MortgageInterest},
			amountField{p + ".outstanding_principal", m.OutstandingPrincipal},
			amountField{p + ".points_paid", m.PointsPaid},
		); err != nil {
			return err
		}
	}
	for i, pt := range in.PropertyTaxPayments {
		if err := requireNonNegative(amountField{fmt.Sprintf("property_tax_payments[%d].amount", i), pt.Amount}); err != nil {
			return err
		}
	}
	for i, d := range in.CharitableDonations {
		p := fmt.Sprintf("charitable_donations[%d]", i)
		if d.Type != DonationCash && d.Type != DonationNonCash {
			return NewMalformedInput(p+".type", "unknown donation type %q", d.Type)
		}
		if err := requireNonNegative(amountField{p + ".amount", d.Amount}); err != nil {
			return err
		}
	}
	for i, v := range in.VehicleRegistrations {
		p := fmt.Sprintf("vehicle_registrations[%d]", i)
		if err := requireNonNegative(amountField{p + ".vlf", v.VLF}, amountField{p + ".total_fee", v.TotalFee}); err != nil {
			return err
		}
	}

	if err := in.validateBackdoorRoth(); err != nil {
		return err
	}
	if err := in.validateCarryovers(); err != nil {
		return err
	}

	est := in.EstimatedPayments
	if err := requireNonNegative(
		amountField{"estimated_payments.federal.q1", est.Federal.Q1},
		amountField{"estimated_payments.federal.q2", est.Federal.Q2},
		amountField{"estimated_payments.federal.q3", est.Federal.Q3},
		amountField{"estimated_payments.federal.q4", est.Federal.Q4},
		amountField{"estimated_payments.california.q1", est.California.Q1},
		amountField{"estimated_payments.california.q2", est.California.Q2},
		amountField{"estimated_payments.california.q3", est.California.Q3},
		amountField{"estimated_payments.california.q4", est.California.Q4},
		amountField{"ca_misc_deductions", in.CAMiscDeductions},
	); err != nil {
		return err
	}
	return nil
}

func validateEntries(prefix string, entries []Form1099BEntry) error {
	for i, e := range entries {
		p := fmt.Sprintf("%s.entries[%d]", prefix, i)
		if !e.Box.IsValid() {
			return NewMalformedInput(p+".box", "unknown Form 8949 box %q", e.Box)
		}
		if err := requireNonNegative(
			amountField{p + ".proceeds", e.Proceeds},
			amountField{p + ".cost_basis", e.CostBasis},
			amountField{p + ".wash_sale_disallowed", e.WashSaleDisallowed},
		); err != nil {
			return err
		}
	}
	return nil
}

func (in *TaxReturnInput) validateBackdoorRoth() error {
	seen := make(map[SpouseDesignation]bool, len(in.BackdoorRoth))
	for i, br := range in.BackdoorRoth {
		p := fmt.Sprintf("backdoor_roth[%d]", i)
		if !br.Spouse.IsValid() {
			return NewMalformedInput(p+".spouse", "unknown spouse designation %q", br.Spouse)
		}
		if br.Spouse == SpouseSpouse && in.Spouse == nil {
			return NewMalformedInput(p+".spouse", "backdoor Roth record names a spouse but the return has none")
		}
		if seen[br.Spouse] {
			return NewMalformedInput(p+".spouse", "duplicate backdoor Roth record for %q", br.Spouse)
		}
		seen[br.Spouse] = true

		if err := requireNonNegative(
			amountField{p + ".traditional_ira_contribution", br.TraditionalIRAContribution},
			amountField{p + ".roth_conversion_amount", br.RothConversionAmount},
			amountField{p + ".year_end_traditional_ira_balance", br.YearEndTraditionalIRABalance},
			amountField{p + ".year_end_sep_ira_balance", br.YearEndSEPIRABalance},
			amountField{p + ".year_end_simple_ira_balance", br.YearEndSIMPLEIRABalance},
		); err != nil {
			return err
		}
		if br.PriorYearBasis != nil {
			if err := requireNonNegative(amountField{p + ".prior_year_basis", *br.PriorYearBasis}); err != nil {
				return err
			}
			carried := in.Carryovers.Form8606Basis.For(br.Spouse)
			if !carried.IsZero() && !carried.Equal(*br.PriorYearBasis) {
				return NewMalformedInput(p+".prior_year_basis", "prior year basis %s disagrees with carryover basis %s",
					br.PriorYearBasis.String(), carried.String())
			}
		}
	}
	return nil
}

func (in *TaxReturnInput) validateCarryovers() error {
	c := in.Carryovers
	if c.CapitalLoss.ShortTerm.IsPositive() {
		return NewMalformedInput("carryovers.capital_loss.short_term", "capital loss carryover must be zero or negative, got %s", c.CapitalLoss.ShortTerm.String())
	}
	if c.CapitalLoss.LongTerm.IsPositive() {
		return NewMalformedInput("carryovers.capital_loss.long_term", "capital loss carryover must be zero or negative, got %s", c.CapitalLoss.LongTerm.String())
	}
	return requireNonNegative(
		amountField{"carryovers.form_8606_basis.taxpayer", c.Form8606Basis.Taxpayer},
		amountField{"carryovers.form_8606_basis.spouse", c.Form8606Basis.Spouse},
		amountField{"carryovers.foreign_tax_credit_carryover", c.ForeignTaxCreditCarryover},
		amountField{"carryovers.charitable_carryover", c.CharitableCarryover},
		amountField{"carryovers.prior_year_overpayment_applied", c.PriorYearOverpaymentApplied},
	)
}

// PriorBasisFor returns the Form 8606 prior-year basis for a backdoor Roth
// record: the record's own figure when present, otherwise the carryover.
func (in *TaxReturnInput) PriorBasisFor(br BackdoorRoth) decimal.Decimal {
	if br.PriorYearBasis != nil {
		return *br.PriorYearBasis
	}
	return in.Carryovers.Form8606Basis.For(br.Spouse)
}
