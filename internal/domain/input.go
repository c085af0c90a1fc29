package domain

import (
	"github.com/shopspring/decimal"
)

// FilingStatus identifies the household's filing status for the year
type FilingStatus string

const (
	FilingStatusSingle                    FilingStatus = "single"
	FilingStatusMarriedFilingJointly      FilingStatus = "mfj"
	FilingStatusMarriedFilingSeparately   FilingStatus = "mfs"
	FilingStatusHeadOfHousehold           FilingStatus = "hoh"
	FilingStatusQualifyingSurvivingSpouse FilingStatus = "qss"
)

// IsValid reports whether the status is one of the known filing statuses
func (fs FilingStatus) IsValid() bool {
	switch fs {
	case FilingStatusSingle, FilingStatusMarriedFilingJointly, FilingStatusMarriedFilingSeparately,
		FilingStatusHeadOfHousehold, FilingStatusQualifyingSurvivingSpouse:
		return true
	}
	return false
}

// IsJoint reports whether the status requires a spouse record
func (fs FilingStatus) IsJoint() bool {
	return fs == FilingStatusMarriedFilingJointly
}

// Person holds identity information for the taxpayer or spouse
type Person struct {
	FirstName   string `yaml:"first_name" json:"first_name"`
	LastName    string `yaml:"last_name" json:"last_name"`
	SSN         string `yaml:"ssn,omitempty" json:"ssn,omitempty"`
	DateOfBirth string `yaml:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	Occupation  string `yaml:"occupation,omitempty" json:"occupation,omitempty"`
}

// FullName returns the display name of the person
func (p Person) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	if p.FirstName == "" {
		return p.LastName
	}
	return p.FirstName + " " + p.LastName
}

// Dependent is a qualifying dependent claimed on the return
type Dependent struct {
	FirstName    string `yaml:"first_name" json:"first_name"`
	LastName     string `yaml:"last_name" json:"last_name"`
	SSN          string `yaml:"ssn,omitempty" json:"ssn,omitempty"`
	DateOfBirth  string `yaml:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	Relationship string `yaml:"relationship,omitempty" json:"relationship,omitempty"`
	MonthsLived  int    `yaml:"months_lived,omitempty" json:"months_lived,omitempty"`
	IsStudent    bool   `yaml:"is_student,omitempty" json:"is_student,omitempty"`
	IsDisabled   bool   `yaml:"is_disabled,omitempty" json:"is_disabled,omitempty"`
}

// Address is the household mailing address
type Address struct {
	Street string `yaml:"street,omitempty" json:"street,omitempty"`
	City   string `yaml:"city,omitempty" json:"city,omitempty"`
	State  string `yaml:"state,omitempty" json:"state,omitempty"`
	Zip    string `yaml:"zip,omitempty" json:"zip,omitempty"`
}

// W2Box12 is a single coded entry from W-2 box 12
type W2Box12 struct {
	Code   string          `yaml:"code" json:"code"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// W2 is a Wage and Tax Statement
type W2 struct {
	Employer            string          `yaml:"employer" json:"employer"`
	EIN                 string          `yaml:"ein,omitempty" json:"ein,omitempty"`
	Wages               decimal.Decimal `yaml:"wages" json:"wages"`                       // Box 1
	FederalWithheld     decimal.Decimal `yaml:"federal_withheld" json:"federal_withheld"` // Box 2
	SocialSecurityWages decimal.Decimal `yaml:"social_security_wages" json:"social_security_wages"`
	SocialSecurityTax   decimal.Decimal `yaml:"social_security_tax" json:"social_security_tax"`
	MedicareWages       decimal.Decimal `yaml:"medicare_wages" json:"medicare_wages"` // Box 5
	MedicareTax         decimal.Decimal `yaml:"medicare_tax" json:"medicare_tax"`     // Box 6
	StateWages          decimal.Decimal `yaml:"state_wages" json:"state_wages"`
	StateWithheld       decimal.Decimal `yaml:"state_withheld" json:"state_withheld"` // Box 17
	LocalWages          decimal.Decimal `yaml:"local_wages,omitempty" json:"local_wages,omitempty"`
	LocalWithheld       decimal.Decimal `yaml:"local_withheld,omitempty" json:"local_withheld,omitempty"`
	Box12               []W2Box12       `yaml:"box12,omitempty" json:"box12,omitempty"`
}

// Form1099DivInt combines the 1099-INT and 1099-DIV boxes a brokerage
// typically reports on one consolidated statement. Unset boxes are zero.
type Form1099DivInt struct {
	Payer         string `yaml:"payer" json:"payer"`
	AccountNumber string `yaml:"account_number,omitempty" json:"account_number,omitempty"`

	InterestIncome         decimal.Decimal `yaml:"interest_income,omitempty" json:"interest_income,omitempty"`                 // INT 1
	EarlyWithdrawalPenalty decimal.Decimal `yaml:"early_withdrawal_penalty,omitempty" json:"early_withdrawal_penalty,omitempty"` // INT 2
	USSavingsBondInterest  decimal.Decimal `yaml:"us_savings_bond_interest,omitempty" json:"us_savings_bond_interest,omitempty"` // INT 3
	FederalWithheld        decimal.Decimal `yaml:"federal_withheld,omitempty" json:"federal_withheld,omitempty"`                 // INT 4 / DIV 4
	TaxExemptInterest      decimal.Decimal `yaml:"tax_exempt_interest,omitempty" json:"tax_exempt_interest,omitempty"`           // INT 8
	PrivateActivityBondInt decimal.Decimal `yaml:"private_activity_bond_interest,omitempty" json:"private_activity_bond_interest,omitempty"`

	OrdinaryDividends           decimal.Decimal `yaml:"ordinary_dividends,omitempty" json:"ordinary_dividends,omitempty"`                       // DIV 1a
	QualifiedDividends          decimal.Decimal `yaml:"qualified_dividends,omitempty" json:"qualified_dividends,omitempty"`                     // DIV 1b
	CapitalGainDistributions    decimal.Decimal `yaml:"capital_gain_distributions,omitempty" json:"capital_gain_distributions,omitempty"`       // DIV 2a
	UnrecapturedSection1250Gain decimal.Decimal `yaml:"unrecaptured_section_1250_gain,omitempty" json:"unrecaptured_section_1250_gain,omitempty"` // DIV 2b
	Section1202Gain             decimal.Decimal `yaml:"section_1202_gain,omitempty" json:"section_1202_gain,omitempty"`                         // DIV 2c
	CollectiblesGain            decimal.Decimal `yaml:"collectibles_gain,omitempty" json:"collectibles_gain,omitempty"`                         // DIV 2d
	Section199ADividends        decimal.Decimal `yaml:"section_199a_dividends,omitempty" json:"section_199a_dividends,omitempty"`               // DIV 5
	ForeignTaxPaid              decimal.Decimal `yaml:"foreign_tax_paid,omitempty" json:"foreign_tax_paid,omitempty"`                           // DIV 7
	ForeignCountry              string          `yaml:"foreign_country,omitempty" json:"foreign_country,omitempty"`
	ExemptInterestDividends     decimal.Decimal `yaml:"exempt_interest_dividends,omitempty" json:"exempt_interest_dividends,omitempty"` // DIV 12
	PrivateActivityBondDivs     decimal.Decimal `yaml:"private_activity_bond_dividends,omitempty" json:"private_activity_bond_dividends,omitempty"`
	StateWithheld               decimal.Decimal `yaml:"state_withheld,omitempty" json:"state_withheld,omitempty"`
}

// Form8949Box is the IRS box code a lot is reported under
type Form8949Box string

const (
	Box8949A Form8949Box = "A"
	Box8949B Form8949Box = "B"
	Box8949C Form8949Box = "C"
	Box8949D Form8949Box = "D"
	Box8949E Form8949Box = "E"
	Box8949F Form8949Box = "F"
)

// IsValid reports whether the box is one of A through F
func (b Form8949Box) IsValid() bool {
	switch b {
	case Box8949A, Box8949B, Box8949C, Box8949D, Box8949E, Box8949F:
		return true
	}
	return false
}

// IsShortTerm reports whether the box holds short-term transactions
func (b Form8949Box) IsShortTerm() bool {
	return b == Box8949A || b == Box8949B || b == Box8949C
}

// Form1099BEntry is one itemized lot sale
type Form1099BEntry struct {
	Description        string          `yaml:"description" json:"description"`
	DateAcquired       string          `yaml:"date_acquired,omitempty" json:"date_acquired,omitempty"`
	DateSold           string          `yaml:"date_sold,omitempty" json:"date_sold,omitempty"`
	Proceeds           decimal.Decimal `yaml:"proceeds" json:"proceeds"`
	CostBasis          decimal.Decimal `yaml:"cost_basis" json:"cost_basis"`
	AdjustmentCode     string          `yaml:"adjustment_code,omitempty" json:"adjustment_code,omitempty"`
	AdjustmentAmount   decimal.Decimal `yaml:"adjustment_amount,omitempty" json:"adjustment_amount,omitempty"`
	WashSaleDisallowed decimal.Decimal `yaml:"wash_sale_disallowed,omitempty" json:"wash_sale_disallowed,omitempty"`
	GainLoss           decimal.Decimal `yaml:"gain_loss" json:"gain_loss"`
	Box                Form8949Box     `yaml:"box" json:"box"`
}

// BrokerSummary is a broker's 1099-B with optional lot detail. When Entries
// is empty the six signed box totals are used instead.
type BrokerSummary struct {
	Broker                    string           `yaml:"broker" json:"broker"`
	Entries                   []Form1099BEntry `yaml:"entries,omitempty" json:"entries,omitempty"`
	ShortTermBasisReported    decimal.Decimal  `yaml:"short_term_basis_reported" json:"short_term_basis_reported"`         // Box A
	ShortTermBasisNotReported decimal.Decimal  `yaml:"short_term_basis_not_reported" json:"short_term_basis_not_reported"` // Box B
	ShortTermNotOn1099B       decimal.Decimal  `yaml:"short_term_not_on_1099b" json:"short_term_not_on_1099b"`             // Box C
	LongTermBasisReported     decimal.Decimal  `yaml:"long_term_basis_reported" json:"long_term_basis_reported"`           // Box D
	LongTermBasisNotReported  decimal.Decimal  `yaml:"long_term_basis_not_reported" json:"long_term_basis_not_reported"`   // Box E
	LongTermNotOn1099B        decimal.Decimal  `yaml:"long_term_not_on_1099b" json:"long_term_not_on_1099b"`               // Box F
}

// ShortTermTotal sums the short-term aggregate boxes
func (b BrokerSummary) ShortTermTotal() decimal.Decimal {
	return b.ShortTermBasisReported.Add(b.ShortTermBasisNotReported).Add(b.ShortTermNotOn1099B)
}

// LongTermTotal sums the long-term aggregate boxes
func (b BrokerSummary) LongTermTotal() decimal.Decimal {
	return b.LongTermBasisReported.Add(b.LongTermBasisNotReported).Add(b.LongTermNotOn1099B)
}

// Form1099R is a retirement plan distribution statement
type Form1099R struct {
	Payer                      string          `yaml:"payer" json:"payer"`
	GrossDistribution          decimal.Decimal `yaml:"gross_distribution" json:"gross_distribution"` // Box 1
	TaxableAmount              decimal.Decimal `yaml:"taxable_amount" json:"taxable_amount"`         // Box 2a
	TaxableAmountNotDetermined bool            `yaml:"taxable_amount_not_determined,omitempty" json:"taxable_amount_not_determined,omitempty"`
	CapitalGainAmount          decimal.Decimal `yaml:"capital_gain_amount,omitempty" json:"capital_gain_amount,omitempty"`
	FederalWithheld            decimal.Decimal `yaml:"federal_withheld" json:"federal_withheld"` // Box 4
	DistributionCode           string          `yaml:"distribution_code" json:"distribution_code"`
	IRASEPSimple               bool            `yaml:"ira_sep_simple,omitempty" json:"ira_sep_simple,omitempty"`
	TotalDistribution          bool            `yaml:"total_distribution,omitempty" json:"total_distribution,omitempty"`
	StateWithheld              decimal.Decimal `yaml:"state_withheld,omitempty" json:"state_withheld,omitempty"`
	StateDistribution          decimal.Decimal `yaml:"state_distribution,omitempty" json:"state_distribution,omitempty"`
}

// CryptoData is an exported gains bundle. Entries take precedence over the totals.
type CryptoData struct {
	ShortTermGainLoss decimal.Decimal  `yaml:"short_term_gain_loss" json:"short_term_gain_loss"`
	LongTermGainLoss  decimal.Decimal  `yaml:"long_term_gain_loss" json:"long_term_gain_loss"`
	Entries           []Form1099BEntry `yaml:"entries,omitempty" json:"entries,omitempty"`
}

// OtherIncome is any income line not covered by a dedicated document type
type OtherIncome struct {
	Description string          `yaml:"description" json:"description"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	Form        string          `yaml:"form,omitempty" json:"form,omitempty"`
}

// Form1098 is a mortgage interest statement
type Form1098 struct {
	Lender                    string          `yaml:"lender" json:"lender"`
	MortgageInterest          decimal.Decimal `yaml:"mortgage_interest" json:"mortgage_interest"`
	OutstandingPrincipal      decimal.Decimal `yaml:"outstanding_principal,omitempty" json:"outstanding_principal,omitempty"`
	OriginationDate           string          `yaml:"origination_date,omitempty" json:"origination_date,omitempty"`
	RefundOfOverpaidInterest  decimal.Decimal `yaml:"refund_of_overpaid_interest,omitempty" json:"refund_of_overpaid_interest,omitempty"`
	MortgageInsurancePremiums decimal.Decimal `yaml:"mortgage_insurance_premiums,omitempty" json:"mortgage_insurance_premiums,omitempty"`
	PointsPaid                decimal.Decimal `yaml:"points_paid,omitempty" json:"points_paid,omitempty"`
	PropertyAddress           string          `yaml:"property_address,omitempty" json:"property_address,omitempty"`
}

// PropertyTaxPayment is a real property tax installment
type PropertyTaxPayment struct {
	Jurisdiction    string          `yaml:"jurisdiction" json:"jurisdiction"`
	PropertyAddress string          `yaml:"property_address,omitempty" json:"property_address,omitempty"`
	Amount          decimal.Decimal `yaml:"amount" json:"amount"`
	DatePaid        string          `yaml:"date_paid,omitempty" json:"date_paid,omitempty"`
}

// DonationType distinguishes cash from property gifts
type DonationType string

const (
	DonationCash    DonationType = "cash"
	DonationNonCash DonationType = "noncash"
)

// CharitableDonation is a single gift to a qualified organization
type CharitableDonation struct {
	Recipient              string          `yaml:"recipient" json:"recipient"`
	Amount                 decimal.Decimal `yaml:"amount" json:"amount"`
	Type                   DonationType    `yaml:"type" json:"type"`
	Date                   string          `yaml:"date,omitempty" json:"date,omitempty"`
	AcknowledgmentReceived bool            `yaml:"acknowledgment_received,omitempty" json:"acknowledgment_received,omitempty"`
}

// VehicleRegistration carries the deductible vehicle license fee portion of a registration
type VehicleRegistration struct {
	Description string          `yaml:"description" json:"description"`
	VLF         decimal.Decimal `yaml:"vlf" json:"vlf"`
	TotalFee    decimal.Decimal `yaml:"total_fee,omitempty" json:"total_fee,omitempty"`
}

// SpouseDesignation names which spouse a per-person record belongs to
type SpouseDesignation string

const (
	SpouseTaxpayer SpouseDesignation = "taxpayer"
	SpouseSpouse   SpouseDesignation = "spouse"
)

// IsValid reports whether the designation is taxpayer or spouse
func (s SpouseDesignation) IsValid() bool {
	return s == SpouseTaxpayer || s == SpouseSpouse
}

// BackdoorRoth holds one spouse's nondeductible contribution and conversion.
// PriorYearBasis is optional; when nil the Form 8606 basis carryover is used.
type BackdoorRoth struct {
	Spouse                       SpouseDesignation `yaml:"spouse" json:"spouse"`
	TraditionalIRAContribution   decimal.Decimal   `yaml:"traditional_ira_contribution" json:"traditional_ira_contribution"`
	RothConversionAmount         decimal.Decimal   `yaml:"roth_conversion_amount" json:"roth_conversion_amount"`
	PriorYearBasis               *decimal.Decimal  `yaml:"prior_year_basis,omitempty" json:"prior_year_basis,omitempty"`
	YearEndTraditionalIRABalance decimal.Decimal   `yaml:"year_end_traditional_ira_balance" json:"year_end_traditional_ira_balance"`
	YearEndSEPIRABalance         decimal.Decimal   `yaml:"year_end_sep_ira_balance" json:"year_end_sep_ira_balance"`
	YearEndSIMPLEIRABalance      decimal.Decimal   `yaml:"year_end_simple_ira_balance" json:"year_end_simple_ira_balance"`
}

// CapitalLossCarryover is stored pre-signed: losses are negative
type CapitalLossCarryover struct {
	ShortTerm decimal.Decimal `yaml:"short_term" json:"short_term"`
	LongTerm  decimal.Decimal `yaml:"long_term" json:"long_term"`
}

// SpouseAmounts holds a per-spouse figure
type SpouseAmounts struct {
	Taxpayer decimal.Decimal `yaml:"taxpayer" json:"taxpayer"`
	Spouse   decimal.Decimal `yaml:"spouse" json:"spouse"`
}

// For returns the figure for the given spouse
func (s SpouseAmounts) For(who SpouseDesignation) decimal.Decimal {
	if who == SpouseSpouse {
		return s.Spouse
	}
	return s.Taxpayer
}

// PriorYearCarryovers are the figures carried into this year from last year's return
type PriorYearCarryovers struct {
	CapitalLoss                 CapitalLossCarryover `yaml:"capital_loss" json:"capital_loss"`
	Form8606Basis               SpouseAmounts        `yaml:"form_8606_basis" json:"form_8606_basis"`
	ForeignTaxCreditCarryover   decimal.Decimal      `yaml:"foreign_tax_credit_carryover" json:"foreign_tax_credit_carryover"`
	CharitableCarryover         decimal.Decimal      `yaml:"charitable_carryover,omitempty" json:"charitable_carryover,omitempty"`
	PriorYearOverpaymentApplied decimal.Decimal      `yaml:"prior_year_overpayment_applied" json:"prior_year_overpayment_applied"`
}

// QuarterlyPayments are the four estimated tax installments
type QuarterlyPayments struct {
	Q1 decimal.Decimal `yaml:"q1" json:"q1"`
	Q2 decimal.Decimal `yaml:"q2" json:"q2"`
	Q3 decimal.Decimal `yaml:"q3" json:"q3"`
	Q4 decimal.Decimal `yaml:"q4" json:"q4"`
}

// Total sums the four installments
func (q QuarterlyPayments) Total() decimal.Decimal {
	return q.Q1.Add(q.Q2).Add(q.Q3).Add(q.Q4)
}

// EstimatedPayments holds the estimates paid to each jurisdiction
type EstimatedPayments struct {
	Federal    QuarterlyPayments `yaml:"federal" json:"federal"`
	California QuarterlyPayments `yaml:"california" json:"california"`
}

// TaxReturnInput is everything the pipelines read. It is treated as an
// immutable snapshot: calculators never modify it.
type TaxReturnInput struct {
	TaxYear      int          `yaml:"tax_year" json:"tax_year"`
	FilingStatus FilingStatus `yaml:"filing_status" json:"filing_status"`

	Taxpayer   Person      `yaml:"taxpayer" json:"taxpayer"`
	Spouse     *Person     `yaml:"spouse,omitempty" json:"spouse,omitempty"`
	Dependents []Dependent `yaml:"dependents,omitempty" json:"dependents,omitempty"`
	Address    Address     `yaml:"address,omitempty" json:"address,omitempty"`

	W2s             []W2             `yaml:"w2s,omitempty" json:"w2s,omitempty"`
	Form1099DivInts []Form1099DivInt `yaml:"form_1099_div_ints,omitempty" json:"form_1099_div_ints,omitempty"`
	Form1099Bs      []BrokerSummary  `yaml:"form_1099_bs,omitempty" json:"form_1099_bs,omitempty"`
	Form1099Rs      []Form1099R      `yaml:"form_1099_rs,omitempty" json:"form_1099_rs,omitempty"`
	Crypto          *CryptoData      `yaml:"crypto,omitempty" json:"crypto,omitempty"`
	OtherIncome     []OtherIncome    `yaml:"other_income,omitempty" json:"other_income,omitempty"`

	Form1098s            []Form1098            `yaml:"form_1098s,omitempty" json:"form_1098s,omitempty"`
	PropertyTaxPayments  []PropertyTaxPayment  `yaml:"property_tax_payments,omitempty" json:"property_tax_payments,omitempty"`
	CharitableDonations  []CharitableDonation  `yaml:"charitable_donations,omitempty" json:"charitable_donations,omitempty"`
	VehicleRegistrations []VehicleRegistration `yaml:"vehicle_registrations,omitempty" json:"vehicle_registrations,omitempty"`

	BackdoorRoth []BackdoorRoth `yaml:"backdoor_roth,omitempty" json:"backdoor_roth,omitempty"`

	Carryovers        PriorYearCarryovers `yaml:"carryovers" json:"carryovers"`
	EstimatedPayments EstimatedPayments   `yaml:"estimated_payments" json:"estimated_payments"`

	// CAMiscDeductions are 2%-floor miscellaneous deductions California still allows
	CAMiscDeductions decimal.Decimal `yaml:"ca_misc_deductions,omitempty" json:"ca_misc_deductions,omitempty"`
}

// PersonCount returns the number of filers on the return (not dependents)
func (in *TaxReturnInput) PersonCount() int {
	if in.FilingStatus.IsJoint() || in.FilingStatus == FilingStatusQualifyingSurvivingSpouse {
		return 2
	}
	return 1
}
