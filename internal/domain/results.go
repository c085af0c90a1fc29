package domain

import (
	"github.com/shopspring/decimal"
)

// Every monetary field below is rounded to whole dollars before it leaves the
// calculation package. Ratios and flags are not rounded.

// IncomeResult is Form 1040 lines 1 through 11
type IncomeResult struct {
	Wages                          decimal.Decimal      `json:"wages" yaml:"wages"`
	TaxableInterest                decimal.Decimal      `json:"taxable_interest" yaml:"taxable_interest"`
	TaxExemptInterest              decimal.Decimal      `json:"tax_exempt_interest" yaml:"tax_exempt_interest"`
	OrdinaryDividends              decimal.Decimal      `json:"ordinary_dividends" yaml:"ordinary_dividends"`
	QualifiedDividends             decimal.Decimal      `json:"qualified_dividends" yaml:"qualified_dividends"`
	NetShortTermGainLoss           decimal.Decimal      `json:"net_short_term_gain_loss" yaml:"net_short_term_gain_loss"`
	NetLongTermGainLoss            decimal.Decimal      `json:"net_long_term_gain_loss" yaml:"net_long_term_gain_loss"`
	NetCapitalGainLoss             decimal.Decimal      `json:"net_capital_gain_loss" yaml:"net_capital_gain_loss"`
	CapitalLossCarryover           CapitalLossCarryover `json:"capital_loss_carryover" yaml:"capital_loss_carryover"`
	RetirementDistributions        decimal.Decimal      `json:"retirement_distributions" yaml:"retirement_distributions"`
	RetirementDistributionsTaxable decimal.Decimal      `json:"retirement_distributions_taxable" yaml:"retirement_distributions_taxable"`
	OtherIncome                    decimal.Decimal      `json:"other_income" yaml:"other_income"`
	TotalIncome                    decimal.Decimal      `json:"total_income" yaml:"total_income"`
	Adjustments                    decimal.Decimal      `json:"adjustments" yaml:"adjustments"`
	AGI                            decimal.Decimal      `json:"agi" yaml:"agi"`
}

// PayerAmount is one listing row on Schedule B
type PayerAmount struct {
	Payer  string          `json:"payer" yaml:"payer"`
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
}

// ScheduleBResult lists interest and dividend payers
type ScheduleBResult struct {
	InterestItems          []PayerAmount   `json:"interest_items" yaml:"interest_items"`
	TotalInterest          decimal.Decimal `json:"total_interest" yaml:"total_interest"`
	DividendItems          []PayerAmount   `json:"dividend_items" yaml:"dividend_items"`
	TotalOrdinaryDividends decimal.Decimal `json:"total_ordinary_dividends" yaml:"total_ordinary_dividends"`
	RequiresPartIII        bool            `json:"requires_part_iii" yaml:"requires_part_iii"`
}

// GainBucket totals one holding-period column of Form 8949
type GainBucket struct {
	Proceeds    decimal.Decimal `json:"proceeds" yaml:"proceeds"`
	CostBasis   decimal.Decimal `json:"cost_basis" yaml:"cost_basis"`
	Adjustments decimal.Decimal `json:"adjustments" yaml:"adjustments"`
	GainLoss    decimal.Decimal `json:"gain_loss" yaml:"gain_loss"`
}

// ScheduleDResult summarizes capital gains and losses
type ScheduleDResult struct {
	ShortTermTotals             GainBucket           `json:"short_term_totals" yaml:"short_term_totals"`
	LongTermTotals              GainBucket           `json:"long_term_totals" yaml:"long_term_totals"`
	NetShortTermGainLoss        decimal.Decimal      `json:"net_short_term_gain_loss" yaml:"net_short_term_gain_loss"`
	NetLongTermGainLoss         decimal.Decimal      `json:"net_long_term_gain_loss" yaml:"net_long_term_gain_loss"`
	NetGainLoss                 decimal.Decimal      `json:"net_gain_loss" yaml:"net_gain_loss"`
	CapitalLossDeduction        decimal.Decimal      `json:"capital_loss_deduction" yaml:"capital_loss_deduction"`
	CapitalLossCarryover        CapitalLossCarryover `json:"capital_loss_carryover" yaml:"capital_loss_carryover"`
	QualifiedDividends          decimal.Decimal      `json:"qualified_dividends" yaml:"qualified_dividends"`
	UnrecapturedSection1250Gain decimal.Decimal      `json:"unrecaptured_section_1250_gain" yaml:"unrecaptured_section_1250_gain"`
	CollectiblesGain            decimal.Decimal      `json:"collectibles_gain" yaml:"collectibles_gain"`
	UseScheduleDTaxWorksheet    bool                 `json:"use_schedule_d_tax_worksheet" yaml:"use_schedule_d_tax_worksheet"`
	Use28PercentRateWorksheet   bool                 `json:"use_28_percent_rate_worksheet" yaml:"use_28_percent_rate_worksheet"`
}

// ScheduleDTaxWorksheetResult layers preferential income over ordinary income.
// Section1250Unresolved is set when unrecaptured section 1250 gain reaches
// into the 20% layer and the 25% rate was not applied.
type ScheduleDTaxWorksheetResult struct {
	TaxableIncome         decimal.Decimal `json:"taxable_income" yaml:"taxable_income"`
	QualifiedDividends    decimal.Decimal `json:"qualified_dividends" yaml:"qualified_dividends"`
	NetLTCG               decimal.Decimal `json:"net_ltcg" yaml:"net_ltcg"`
	PreferentialIncome    decimal.Decimal `json:"preferential_income" yaml:"preferential_income"`
	OrdinaryIncome        decimal.Decimal `json:"ordinary_income" yaml:"ordinary_income"`
	TaxOnOrdinaryIncome   decimal.Decimal `json:"tax_on_ordinary_income" yaml:"tax_on_ordinary_income"`
	AmountAt0Percent      decimal.Decimal `json:"amount_at_0_percent" yaml:"amount_at_0_percent"`
	AmountAt15Percent     decimal.Decimal `json:"amount_at_15_percent" yaml:"amount_at_15_percent"`
	AmountAt20Percent     decimal.Decimal `json:"amount_at_20_percent" yaml:"amount_at_20_percent"`
	TaxAt0Percent         decimal.Decimal `json:"tax_at_0_percent" yaml:"tax_at_0_percent"`
	TaxAt15Percent        decimal.Decimal `json:"tax_at_15_percent" yaml:"tax_at_15_percent"`
	TaxAt20Percent        decimal.Decimal `json:"tax_at_20_percent" yaml:"tax_at_20_percent"`
	Section1250Gain       decimal.Decimal `json:"section_1250_gain" yaml:"section_1250_gain"`
	Section1250Surcharge  decimal.Decimal `json:"section_1250_surcharge" yaml:"section_1250_surcharge"`
	Section1250Unresolved bool            `json:"section_1250_unresolved" yaml:"section_1250_unresolved"`
	TotalPreferentialTax  decimal.Decimal `json:"total_preferential_tax" yaml:"total_preferential_tax"`
	TotalTax              decimal.Decimal `json:"total_tax" yaml:"total_tax"`
	RegularTax            decimal.Decimal `json:"regular_tax" yaml:"regular_tax"`
	FinalTax              decimal.Decimal `json:"final_tax" yaml:"final_tax"`
}

// ScheduleAResult is the federal itemized deduction schedule
type ScheduleAResult struct {
	MedicalExpenses   decimal.Decimal `json:"medical_expenses" yaml:"medical_expenses"`
	StateIncomeTax    decimal.Decimal `json:"state_income_tax" yaml:"state_income_tax"`
	PropertyTax       decimal.Decimal `json:"property_tax" yaml:"property_tax"`
	VehicleLicenseFee decimal.Decimal `json:"vehicle_license_fee" yaml:"vehicle_license_fee"`
	SALTBeforeCap     decimal.Decimal `json:"salt_before_cap" yaml:"salt_before_cap"`
	SALTCap           decimal.Decimal `json:"salt_cap" yaml:"salt_cap"`
	SALTDeduction     decimal.Decimal `json:"salt_deduction" yaml:"salt_deduction"`
	MortgageInterest  decimal.Decimal `json:"mortgage_interest" yaml:"mortgage_interest"`
	CharitableCash    decimal.Decimal `json:"charitable_cash" yaml:"charitable_cash"`
	CharitableNonCash decimal.Decimal `json:"charitable_non_cash" yaml:"charitable_non_cash"`
	TotalCharitable   decimal.Decimal `json:"total_charitable" yaml:"total_charitable"`
	TotalItemized     decimal.Decimal `json:"total_itemized" yaml:"total_itemized"`
	UsesItemized      bool            `json:"uses_itemized" yaml:"uses_itemized"`
}

// DeductionMethod records which deduction was taken
type DeductionMethod string

const (
	DeductionStandard DeductionMethod = "standard"
	DeductionItemized DeductionMethod = "itemized"
)

// DeductionResult is the standard-vs-itemized choice plus QBI
type DeductionResult struct {
	StandardDeduction decimal.Decimal `json:"standard_deduction" yaml:"standard_deduction"`
	ItemizedDeduction decimal.Decimal `json:"itemized_deduction" yaml:"itemized_deduction"`
	DeductionUsed     DeductionMethod `json:"deduction_used" yaml:"deduction_used"`
	DeductionAmount   decimal.Decimal `json:"deduction_amount" yaml:"deduction_amount"`
	QBIDeduction      decimal.Decimal `json:"qbi_deduction" yaml:"qbi_deduction"`
	TotalDeductions   decimal.Decimal `json:"total_deductions" yaml:"total_deductions"`
	TaxableIncome     decimal.Decimal `json:"taxable_income" yaml:"taxable_income"`
}

// TaxMethod records how regular tax was computed
type TaxMethod string

const (
	TaxMethodScheduleDWorksheet TaxMethod = "schedule_d_worksheet"
	TaxMethodRegularBrackets    TaxMethod = "regular_brackets"
)

// TaxComputationResult is Form 1040 line 16
type TaxComputationResult struct {
	Method TaxMethod       `json:"method" yaml:"method"`
	Tax    decimal.Decimal `json:"tax" yaml:"tax"`
}

// Form8606Result is one spouse's nondeductible IRA / conversion computation
type Form8606Result struct {
	Spouse                  SpouseDesignation `json:"spouse" yaml:"spouse"`
	CurrentYearContribution decimal.Decimal   `json:"current_year_contribution" yaml:"current_year_contribution"`
	PriorYearBasis          decimal.Decimal   `json:"prior_year_basis" yaml:"prior_year_basis"`
	TotalBasis              decimal.Decimal   `json:"total_basis" yaml:"total_basis"`
	YearEndIRAValue         decimal.Decimal   `json:"year_end_ira_value" yaml:"year_end_ira_value"`
	ConversionAmount        decimal.Decimal   `json:"conversion_amount" yaml:"conversion_amount"`
	NontaxableRatio         decimal.Decimal   `json:"nontaxable_ratio" yaml:"nontaxable_ratio"`
	NontaxablePortion       decimal.Decimal   `json:"nontaxable_portion" yaml:"nontaxable_portion"`
	TaxableConversion       decimal.Decimal   `json:"taxable_conversion" yaml:"taxable_conversion"`
	RemainingBasis          decimal.Decimal   `json:"remaining_basis" yaml:"remaining_basis"`
	ProRataWarning          bool              `json:"pro_rata_warning" yaml:"pro_rata_warning"`
}

// Form8959Result is the Additional Medicare Tax
type Form8959Result struct {
	TotalMedicareWages    decimal.Decimal `json:"total_medicare_wages" yaml:"total_medicare_wages"`
	Threshold             decimal.Decimal `json:"threshold" yaml:"threshold"`
	ExcessWages           decimal.Decimal `json:"excess_wages" yaml:"excess_wages"`
	AdditionalMedicareTax decimal.Decimal `json:"additional_medicare_tax" yaml:"additional_medicare_tax"`
	MedicareWithheld      decimal.Decimal `json:"medicare_withheld" yaml:"medicare_withheld"`
}

// Form8960Result is the Net Investment Income Tax
type Form8960Result struct {
	NetInvestmentIncome decimal.Decimal `json:"net_investment_income" yaml:"net_investment_income"`
	MAGI                decimal.Decimal `json:"magi" yaml:"magi"`
	MAGIThreshold       decimal.Decimal `json:"magi_threshold" yaml:"magi_threshold"`
	MAGIExcess          decimal.Decimal `json:"magi_excess" yaml:"magi_excess"`
	NIITBase            decimal.Decimal `json:"niit_base" yaml:"niit_base"`
	NIIT                decimal.Decimal `json:"niit" yaml:"niit"`
}

// Form8995AResult is the QBI deduction from section 199A dividends
type Form8995AResult struct {
	QualifiedREITDividends  decimal.Decimal `json:"qualified_reit_dividends" yaml:"qualified_reit_dividends"`
	TentativeDeduction      decimal.Decimal `json:"tentative_deduction" yaml:"tentative_deduction"`
	TaxableIncomeBeforeQBI  decimal.Decimal `json:"taxable_income_before_qbi" yaml:"taxable_income_before_qbi"`
	TaxableIncomeLimitation decimal.Decimal `json:"taxable_income_limitation" yaml:"taxable_income_limitation"`
	QBIDeduction            decimal.Decimal `json:"qbi_deduction" yaml:"qbi_deduction"`
}

// Form1116Result is the simplified foreign tax credit
type Form1116Result struct {
	ForeignTaxPaid      decimal.Decimal `json:"foreign_tax_paid" yaml:"foreign_tax_paid"`
	ForeignSourceIncome decimal.Decimal `json:"foreign_source_income" yaml:"foreign_source_income"`
	CreditLimitation    decimal.Decimal `json:"credit_limitation" yaml:"credit_limitation"`
	CreditAllowed       decimal.Decimal `json:"credit_allowed" yaml:"credit_allowed"`
	CreditCarryover     decimal.Decimal `json:"credit_carryover" yaml:"credit_carryover"`
	PriorYearCarryover  decimal.Decimal `json:"prior_year_carryover" yaml:"prior_year_carryover"`
	TotalCarryforward   decimal.Decimal `json:"total_carryforward" yaml:"total_carryforward"`
}

// Form2210Result is the simplified underpayment penalty estimate
type Form2210Result struct {
	RequiredAnnualPayment   decimal.Decimal `json:"required_annual_payment" yaml:"required_annual_payment"`
	PriorYearTax            decimal.Decimal `json:"prior_year_tax" yaml:"prior_year_tax"`
	CurrentYearTax          decimal.Decimal `json:"current_year_tax" yaml:"current_year_tax"`
	TotalPaymentsAndCredits decimal.Decimal `json:"total_payments_and_credits" yaml:"total_payments_and_credits"`
	UnderpaymentAmount      decimal.Decimal `json:"underpayment_amount" yaml:"underpayment_amount"`
	PenaltyDue              decimal.Decimal `json:"penalty_due" yaml:"penalty_due"`
	SafeHarborMet           bool            `json:"safe_harbor_met" yaml:"safe_harbor_met"`
}

// FederalPayments breaks down Form 1040 lines 25 through 26
type FederalPayments struct {
	W2Withheld           decimal.Decimal `json:"w2_withheld" yaml:"w2_withheld"`
	Form1099Withheld     decimal.Decimal `json:"form_1099_withheld" yaml:"form_1099_withheld"`
	Form1099RWithheld    decimal.Decimal `json:"form_1099r_withheld" yaml:"form_1099r_withheld"`
	EstimatedPayments    decimal.Decimal `json:"estimated_payments" yaml:"estimated_payments"`
	PriorYearOverpayment decimal.Decimal `json:"prior_year_overpayment" yaml:"prior_year_overpayment"`
	Total                decimal.Decimal `json:"total" yaml:"total"`
}

// FederalTaxResult is the complete federal return
type FederalTaxResult struct {
	TaxYear      int          `json:"tax_year" yaml:"tax_year"`
	FilingStatus FilingStatus `json:"filing_status" yaml:"filing_status"`

	Income                IncomeResult                 `json:"income" yaml:"income"`
	ScheduleB             ScheduleBResult              `json:"schedule_b" yaml:"schedule_b"`
	ScheduleD             ScheduleDResult              `json:"schedule_d" yaml:"schedule_d"`
	ScheduleDTaxWorksheet *ScheduleDTaxWorksheetResult `json:"schedule_d_tax_worksheet,omitempty" yaml:"schedule_d_tax_worksheet,omitempty"`
	ScheduleA             ScheduleAResult              `json:"schedule_a" yaml:"schedule_a"`
	Form8995A             Form8995AResult              `json:"form_8995a" yaml:"form_8995a"`
	Deductions            DeductionResult              `json:"deductions" yaml:"deductions"`
	TaxComputation        TaxComputationResult         `json:"tax_computation" yaml:"tax_computation"`
	Form8606              []Form8606Result             `json:"form_8606" yaml:"form_8606"`
	Form8959              Form8959Result               `json:"form_8959" yaml:"form_8959"`
	Form8960              Form8960Result               `json:"form_8960" yaml:"form_8960"`
	Form1116              Form1116Result               `json:"form_1116" yaml:"form_1116"`
	Form2210              Form2210Result               `json:"form_2210" yaml:"form_2210"`

	OtherTaxes            decimal.Decimal `json:"other_taxes" yaml:"other_taxes"`
	TotalTaxBeforeCredits decimal.Decimal `json:"total_tax_before_credits" yaml:"total_tax_before_credits"`
	OtherDependentCredit  decimal.Decimal `json:"other_dependent_credit" yaml:"other_dependent_credit"`
	TotalCredits          decimal.Decimal `json:"total_credits" yaml:"total_credits"`
	TotalTax              decimal.Decimal `json:"total_tax" yaml:"total_tax"`
	Payments              FederalPayments `json:"payments" yaml:"payments"`
	TotalPayments         decimal.Decimal `json:"total_payments" yaml:"total_payments"`
	// BalanceDueOrRefund is positive when tax is owed and negative for a refund
	BalanceDueOrRefund decimal.Decimal `json:"balance_due_or_refund" yaml:"balance_due_or_refund"`
}

// ScheduleCAResult is the California AGI adjustment schedule
type ScheduleCAResult struct {
	FederalAGI     decimal.Decimal `json:"federal_agi" yaml:"federal_agi"`
	CAAdditions    decimal.Decimal `json:"ca_additions" yaml:"ca_additions"`
	CASubtractions decimal.Decimal `json:"ca_subtractions" yaml:"ca_subtractions"`
	CAAdjustments  decimal.Decimal `json:"ca_adjustments" yaml:"ca_adjustments"`
	CAAGI          decimal.Decimal `json:"ca_agi" yaml:"ca_agi"`
}

// CAItemizedDeductionResult converts federal Schedule A to California rules
type CAItemizedDeductionResult struct {
	FederalItemized        decimal.Decimal `json:"federal_itemized" yaml:"federal_itemized"`
	SALTCapReversal        decimal.Decimal `json:"salt_cap_reversal" yaml:"salt_cap_reversal"`
	StateIncomeTaxRemoved  decimal.Decimal `json:"state_income_tax_removed" yaml:"state_income_tax_removed"`
	MiscDeductions         decimal.Decimal `json:"misc_deductions" yaml:"misc_deductions"`
	ItemizedBeforePhaseout decimal.Decimal `json:"itemized_before_phaseout" yaml:"itemized_before_phaseout"`
	AGIPhaseoutReduction   decimal.Decimal `json:"agi_phaseout_reduction" yaml:"agi_phaseout_reduction"`
	TotalCAItemized        decimal.Decimal `json:"total_ca_itemized" yaml:"total_ca_itemized"`
	UsesItemized           bool            `json:"uses_itemized" yaml:"uses_itemized"`
}

// CAExemptionCreditResult is the personal and dependent exemption credit
type CAExemptionCreditResult struct {
	PersonalCredits     decimal.Decimal `json:"personal_credits" yaml:"personal_credits"`
	DependentCredits    decimal.Decimal `json:"dependent_credits" yaml:"dependent_credits"`
	TotalBeforePhaseout decimal.Decimal `json:"total_before_phaseout" yaml:"total_before_phaseout"`
	PhaseoutIncrements  int64           `json:"phaseout_increments" yaml:"phaseout_increments"`
	PhaseoutReduction   decimal.Decimal `json:"phaseout_reduction" yaml:"phaseout_reduction"`
	TotalCredit         decimal.Decimal `json:"total_credit" yaml:"total_credit"`
}

// CATaxComputationResult is Form 540 tax through credits
type CATaxComputationResult struct {
	TaxableIncome   decimal.Decimal `json:"taxable_income" yaml:"taxable_income"`
	RegularTax      decimal.Decimal `json:"regular_tax" yaml:"regular_tax"`
	MentalHealthTax decimal.Decimal `json:"mental_health_tax" yaml:"mental_health_tax"`
	TotalTax        decimal.Decimal `json:"total_tax" yaml:"total_tax"`
	ExemptionCredit decimal.Decimal `json:"exemption_credit" yaml:"exemption_credit"`
	OtherCredits    decimal.Decimal `json:"other_credits" yaml:"other_credits"`
	TaxAfterCredits decimal.Decimal `json:"tax_after_credits" yaml:"tax_after_credits"`
}

// CAPayments breaks down California withholding and estimates
type CAPayments struct {
	W2Withheld        decimal.Decimal `json:"w2_withheld" yaml:"w2_withheld"`
	Form1099Withheld  decimal.Decimal `json:"form_1099_withheld" yaml:"form_1099_withheld"`
	Form1099RWithheld decimal.Decimal `json:"form_1099r_withheld" yaml:"form_1099r_withheld"`
	EstimatedPayments decimal.Decimal `json:"estimated_payments" yaml:"estimated_payments"`
	Total             decimal.Decimal `json:"total" yaml:"total"`
}

// CaliforniaTaxResult is the complete Form 540
type CaliforniaTaxResult struct {
	TaxYear int `json:"tax_year" yaml:"tax_year"`

	ScheduleCA         ScheduleCAResult          `json:"schedule_ca" yaml:"schedule_ca"`
	ItemizedDeductions CAItemizedDeductionResult `json:"itemized_deductions" yaml:"itemized_deductions"`
	StandardDeduction  decimal.Decimal           `json:"standard_deduction" yaml:"standard_deduction"`
	DeductionUsed      DeductionMethod           `json:"deduction_used" yaml:"deduction_used"`
	DeductionAmount    decimal.Decimal           `json:"deduction_amount" yaml:"deduction_amount"`
	TaxableIncome      decimal.Decimal           `json:"taxable_income" yaml:"taxable_income"`
	ExemptionCredit    CAExemptionCreditResult   `json:"exemption_credit" yaml:"exemption_credit"`
	TaxComputation     CATaxComputationResult    `json:"tax_computation" yaml:"tax_computation"`

	TotalTax           decimal.Decimal `json:"total_tax" yaml:"total_tax"`
	Payments           CAPayments      `json:"payments" yaml:"payments"`
	TotalPayments      decimal.Decimal `json:"total_payments" yaml:"total_payments"`
	BalanceDueOrRefund decimal.Decimal `json:"balance_due_or_refund" yaml:"balance_due_or_refund"`
}

// TaxReturnResult pairs the federal and California returns
type TaxReturnResult struct {
	Federal    *FederalTaxResult    `json:"federal" yaml:"federal"`
	California *CaliforniaTaxResult `json:"california" yaml:"california"`
}
