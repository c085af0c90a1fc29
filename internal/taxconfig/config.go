// Package taxconfig holds the year and filing-status specific tax tables the
// calculation pipelines read. Tables are plain values; adding a tax year means
// registering another Configuration, never changing calculation code.
package taxconfig

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
)

// Bracket is one slice of a progressive rate schedule. Max is nil for the
// unbounded top bracket.
type Bracket struct {
	Min  decimal.Decimal  `yaml:"min" json:"min"`
	Max  *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate"`
}

// Bounded reports whether the bracket has an upper limit
func (b Bracket) Bounded() bool {
	return b.Max != nil
}

// SALTCapRule describes the state and local tax deduction cap. When
// PhaseoutRate is zero the cap is a flat Base.
type SALTCapRule struct {
	Base          decimal.Decimal `yaml:"base" json:"base"`
	PhaseoutStart decimal.Decimal `yaml:"phaseout_start" json:"phaseout_start"`
	PhaseoutRate  decimal.Decimal `yaml:"phaseout_rate" json:"phaseout_rate"`
	Floor         decimal.Decimal `yaml:"floor" json:"floor"`
}

// Cap evaluates the cap at the given AGI
func (r SALTCapRule) Cap(agi decimal.Decimal) decimal.Decimal {
	if r.PhaseoutRate.IsZero() || agi.LessThanOrEqual(r.PhaseoutStart) {
		return r.Base
	}
	reduced := r.Base.Sub(agi.Sub(r.PhaseoutStart).Mul(r.PhaseoutRate))
	return decimal.Max(reduced, r.Floor)
}

// FederalConfig holds federal brackets and statutory constants
type FederalConfig struct {
	OrdinaryBrackets    []Bracket       `yaml:"ordinary_brackets" json:"ordinary_brackets"`
	CapitalGainBrackets []Bracket       `yaml:"capital_gain_brackets" json:"capital_gain_brackets"`
	StandardDeduction   decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	SALTCap             SALTCapRule     `yaml:"salt_cap" json:"salt_cap"`
	CapitalLossLimit    decimal.Decimal `yaml:"capital_loss_limit" json:"capital_loss_limit"`
	QBIRate             decimal.Decimal `yaml:"qbi_rate" json:"qbi_rate"`

	NIITRate                    decimal.Decimal `yaml:"niit_rate" json:"niit_rate"`
	NIITThreshold               decimal.Decimal `yaml:"niit_threshold" json:"niit_threshold"`
	AdditionalMedicareRate      decimal.Decimal `yaml:"additional_medicare_rate" json:"additional_medicare_rate"`
	AdditionalMedicareThreshold decimal.Decimal `yaml:"additional_medicare_threshold" json:"additional_medicare_threshold"`
	Unrecaptured1250Rate        decimal.Decimal `yaml:"unrecaptured_1250_rate" json:"unrecaptured_1250_rate"`

	OtherDependentCredit decimal.Decimal `yaml:"other_dependent_credit" json:"other_dependent_credit"`
	ScheduleBThreshold   decimal.Decimal `yaml:"schedule_b_threshold" json:"schedule_b_threshold"`

	// Form 2210 estimate parameters
	SafeHarborPriorYearRate decimal.Decimal `yaml:"safe_harbor_prior_year_rate" json:"safe_harbor_prior_year_rate"`
	CurrentYearPaymentRate  decimal.Decimal `yaml:"current_year_payment_rate" json:"current_year_payment_rate"`
	UnderpaymentPenaltyRate decimal.Decimal `yaml:"underpayment_penalty_rate" json:"underpayment_penalty_rate"`
}

// CaliforniaConfig holds Form 540 brackets and constants
type CaliforniaConfig struct {
	Brackets          []Bracket       `yaml:"brackets" json:"brackets"`
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`

	PersonalExemptionCredit    decimal.Decimal `yaml:"personal_exemption_credit" json:"personal_exemption_credit"`
	DependentExemptionCredit   decimal.Decimal `yaml:"dependent_exemption_credit" json:"dependent_exemption_credit"`
	ExemptionPhaseoutThreshold decimal.Decimal `yaml:"exemption_phaseout_threshold" json:"exemption_phaseout_threshold"`
	ExemptionPhaseoutAmount    decimal.Decimal `yaml:"exemption_phaseout_amount" json:"exemption_phaseout_amount"`
	ExemptionPhaseoutIncrement decimal.Decimal `yaml:"exemption_phaseout_increment" json:"exemption_phaseout_increment"`

	ItemizedPhaseoutThreshold decimal.Decimal `yaml:"itemized_phaseout_threshold" json:"itemized_phaseout_threshold"`
	ItemizedPhaseoutRate      decimal.Decimal `yaml:"itemized_phaseout_rate" json:"itemized_phaseout_rate"`
	ItemizedPhaseoutCap       decimal.Decimal `yaml:"itemized_phaseout_cap" json:"itemized_phaseout_cap"`
	MiscDeductionFloorRate    decimal.Decimal `yaml:"misc_deduction_floor_rate" json:"misc_deduction_floor_rate"`

	MentalHealthThreshold decimal.Decimal `yaml:"mental_health_threshold" json:"mental_health_threshold"`
	MentalHealthRate      decimal.Decimal `yaml:"mental_health_rate" json:"mental_health_rate"`
}

// Configuration is the complete table set for one tax year and filing status
type Configuration struct {
	SchemaVersion string              `yaml:"schema_version" json:"schema_version"`
	Year          int                 `yaml:"year" json:"year"`
	FilingStatus  domain.FilingStatus `yaml:"filing_status" json:"filing_status"`
	Source        string              `yaml:"source,omitempty" json:"source,omitempty"`
	Federal       FederalConfig       `yaml:"federal" json:"federal"`
	California    CaliforniaConfig    `yaml:"california" json:"california"`
}

func cloneBrackets(in []Bracket) []Bracket {
	if in == nil {
		return nil
	}
	out := make([]Bracket, len(in))
	for i, b := range in {
		if b.Max != nil {
			m := *b.Max
			b.Max = &m
		}
		out[i] = b
	}
	return out
}

// Clone returns a deep copy so callers can never alter registered tables
func (c Configuration) Clone() Configuration {
	c.Federal.OrdinaryBrackets = cloneBrackets(c.Federal.OrdinaryBrackets)
	c.Federal.CapitalGainBrackets = cloneBrackets(c.Federal.CapitalGainBrackets)
	c.California.Brackets = cloneBrackets(c.California.Brackets)
	return c
}
