package domain

import (
	"github.com/shopspring/decimal"
)

// Income periods accepted in scenario files.
const (
	PeriodMonthly = "monthly"
	PeriodAnnual  = "annual"
)

// GrossIncome is a salary figure plus the period it was quoted for. The
// calculation engine only ever sees monthly figures; annual amounts are
// divided by 12 before reaching it.
type GrossIncome struct {
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Period string          `yaml:"period" json:"period"`
}

// Monthly returns the amount normalized to a monthly figure.
func (g GrossIncome) Monthly() decimal.Decimal {
	if g.Period == PeriodAnnual {
		return g.Amount.Div(decimal.NewFromInt(12))
	}
	return g.Amount
}

// Scenario is one named salary situation to compare across regimes.
type Scenario struct {
	Name        string               `yaml:"name" json:"name"`
	GrossIncome GrossIncome          `yaml:"gross_income" json:"grossIncome"`
	Deductions  AdditionalDeductions `yaml:"deductions" json:"deductions"`
}

// Configuration is the root of a scenario input file.
type Configuration struct {
	Scenarios []Scenario `yaml:"scenarios"`
}
