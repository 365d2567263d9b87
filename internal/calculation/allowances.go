package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nairatools/payecompare/internal/domain"
)

// AllowanceCalculator computes total allowances and taxable income for a
// regime from annual gross income and annual additional deductions.
type AllowanceCalculator struct {
	ReliefFloor              decimal.Decimal
	ReliefRate               decimal.Decimal
	GrossIncomeAllowanceRate decimal.Decimal
}

// NewAllowanceCalculator creates an allowance calculator with the statutory
// defaults: relief of max(₦200,000, 1% of gross), legacy 20% gross allowance.
func NewAllowanceCalculator() *AllowanceCalculator {
	return &AllowanceCalculator{
		ReliefFloor:              decimal.NewFromInt(200000),
		ReliefRate:               decimal.NewFromFloat(0.01),
		GrossIncomeAllowanceRate: decimal.NewFromFloat(0.20),
	}
}

// NewAllowanceCalculatorWithRules creates an allowance calculator from
// regime-rules overrides, falling back to defaults for zero-valued fields.
func NewAllowanceCalculatorWithRules(rules domain.AllowanceRules) *AllowanceCalculator {
	ac := NewAllowanceCalculator()
	if !rules.ConsolidatedReliefFloor.IsZero() {
		ac.ReliefFloor = rules.ConsolidatedReliefFloor
	}
	if !rules.ConsolidatedReliefRate.IsZero() {
		ac.ReliefRate = rules.ConsolidatedReliefRate
	}
	if !rules.GrossIncomeAllowanceRate.IsZero() {
		ac.GrossIncomeAllowanceRate = rules.GrossIncomeAllowanceRate
	}
	return ac
}

// ConsolidatedRelief returns the consolidated relief allowance: the greater
// of the fixed floor or the relief rate applied to annual gross. Identical
// for both regimes.
func (ac *AllowanceCalculator) ConsolidatedRelief(annualGross decimal.Decimal) decimal.Decimal {
	return decimal.Max(ac.ReliefFloor, annualGross.Mul(ac.ReliefRate))
}

// Compute returns the total allowances and taxable income for one regime.
// The legacy regime adds a 20%-of-gross allowance on top of consolidated
// relief; the reform regime does not. Taxable income is floored at zero.
//
// The totalAllowances returned here is the sum of allowance components; the
// engine reports annualGross − taxableIncome instead, which only differs
// when the zero floor on taxable income engages.
func (ac *AllowanceCalculator) Compute(annualGross decimal.Decimal, regime domain.Regime, annualAdditionalDeductions decimal.Decimal) (totalAllowances, taxableIncome decimal.Decimal) {
	relief := ac.ConsolidatedRelief(annualGross)

	if regime == domain.RegimeReform {
		totalAllowances = relief.Add(annualAdditionalDeductions)
		taxableIncome = decimal.Max(decimal.Zero, annualGross.Sub(relief).Sub(annualAdditionalDeductions))
		return totalAllowances, taxableIncome
	}

	grossAllowance := annualGross.Mul(ac.GrossIncomeAllowanceRate)
	totalAllowances = relief.Add(grossAllowance).Add(annualAdditionalDeductions)
	taxableIncome = decimal.Max(decimal.Zero, annualGross.Sub(totalAllowances))
	return totalAllowances, taxableIncome
}
