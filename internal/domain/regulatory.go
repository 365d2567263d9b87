package domain

import (
	"github.com/shopspring/decimal"
)

// BracketRule is one bracket entry as it appears in a regime-rules file.
// Limit is the cumulative annual upper bound; a nil Limit marks the terminal
// unbounded bracket.
type BracketRule struct {
	Limit *decimal.Decimal `yaml:"limit,omitempty"`
	Rate  decimal.Decimal  `yaml:"rate"`
}

// AllowanceRules holds the allowance parameters shared by both regimes.
// Consolidated relief is the greater of the floor or the rate applied to
// annual gross. The gross income allowance rate applies to the legacy
// regime only.
type AllowanceRules struct {
	ConsolidatedReliefFloor  decimal.Decimal `yaml:"consolidated_relief_floor"`
	ConsolidatedReliefRate   decimal.Decimal `yaml:"consolidated_relief_rate"`
	GrossIncomeAllowanceRate decimal.Decimal `yaml:"gross_income_allowance_rate"`
}

// RegimeRules overrides the built-in bracket tables and allowance parameters,
// loaded from an optional YAML file. Either regime's bracket list may be
// omitted to keep the built-in table.
type RegimeRules struct {
	Allowances     AllowanceRules `yaml:"allowances"`
	LegacyBrackets []BracketRule  `yaml:"legacy_brackets"`
	ReformBrackets []BracketRule  `yaml:"reform_brackets"`
}
