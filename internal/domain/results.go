package domain

import (
	"github.com/shopspring/decimal"
)

// Regime identifies which bracket table and allowance rule applies.
type Regime string

const (
	RegimeLegacy Regime = "legacy"
	RegimeReform Regime = "reform"
)

// AdditionalDeductions holds the raw monthly pre-tax deduction inputs exactly as
// collected from the user. Each field is free-form text; empty or unparseable
// values normalize to zero.
type AdditionalDeductions struct {
	Pension   string `json:"pension" yaml:"pension"`
	NHF       string `json:"nhf" yaml:"nhf"`
	Insurance string `json:"insurance" yaml:"insurance"`
}

// NormalizedDeductions is the numeric monthly form of AdditionalDeductions.
type NormalizedDeductions struct {
	Pension   decimal.Decimal `json:"pension"`
	NHF       decimal.Decimal `json:"nhf"`
	Insurance decimal.Decimal `json:"insurance"`
}

// Total returns the combined monthly deduction amount.
func (nd NormalizedDeductions) Total() decimal.Decimal {
	return nd.Pension.Add(nd.NHF).Add(nd.Insurance)
}

// BracketBreakdown is one line of the per-bracket tax itemization. Range and
// Rate are display strings; only brackets that captured a nonzero taxable
// amount produce a line, including zero-rate brackets.
type BracketBreakdown struct {
	Range         string          `json:"range"`
	Rate          string          `json:"rate"`
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	Tax           decimal.Decimal `json:"tax"`
}

// CalculationResult is the per-regime output of the PAYE engine. All monetary
// and percentage fields are independently rounded to 2 decimal places.
//
// MonthlyPAYE and AnnualPAYE are each rounded from the un-rounded annual tax
// (annual directly, monthly after dividing by 12), so AnnualPAYE is not
// guaranteed to equal MonthlyPAYE*12 to the kobo. Callers must not "repair"
// one from the other.
type CalculationResult struct {
	MonthlyPAYE      decimal.Decimal    `json:"monthlyPAYE"`
	AnnualPAYE       decimal.Decimal    `json:"annualPAYE"`
	EffectiveTaxRate decimal.Decimal    `json:"effectiveTaxRate"`
	TaxableIncome    decimal.Decimal    `json:"taxableIncome"`
	TotalAllowances  decimal.Decimal    `json:"totalAllowances"`
	BracketBreakdown []BracketBreakdown `json:"bracketBreakdown"`
	NetMonthlyPay    decimal.Decimal    `json:"netMonthlyPay"`
	NetAnnualPay     decimal.Decimal    `json:"netAnnualPay"`
}

// Savings captures how much less tax the reform regime charges than legacy.
// Negative values mean the reform regime costs more.
type Savings struct {
	Monthly    decimal.Decimal `json:"monthly"`
	Annual     decimal.Decimal `json:"annual"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Results aggregates both regime calculations for one gross income figure.
type Results struct {
	Legacy       CalculationResult `json:"legacy"`
	Reform       CalculationResult `json:"reform"`
	Savings      Savings           `json:"savings"`
	MonthlyGross decimal.Decimal   `json:"monthlyGross"`
}
