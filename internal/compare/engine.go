package compare

import (
	"github.com/shopspring/decimal"

	"github.com/nairatools/payecompare/internal/calculation"
	"github.com/nairatools/payecompare/internal/domain"
)

// CompareEngine runs the PAYE engine under both regimes and derives savings
// metrics. Like the underlying engine it is stateless and deterministic:
// identical inputs always produce deep-equal Results.
type CompareEngine struct {
	PAYE *calculation.PAYEEngine
}

// NewCompareEngine creates a comparison engine on top of a PAYE engine.
func NewCompareEngine(engine *calculation.PAYEEngine) *CompareEngine {
	return &CompareEngine{PAYE: engine}
}

// Compare computes both regimes for one monthly gross figure and the same
// deductions, then the savings the reform regime yields over legacy.
// Savings percentage is zero whenever the reform regime saves nothing.
func (ce *CompareEngine) Compare(monthlyGross decimal.Decimal, deductions domain.AdditionalDeductions) domain.Results {
	legacy := ce.PAYE.ComputeRegime(monthlyGross, domain.RegimeLegacy, deductions)
	reform := ce.PAYE.ComputeRegime(monthlyGross, domain.RegimeReform, deductions)

	annualSavings := legacy.AnnualPAYE.Sub(reform.AnnualPAYE)
	percentage := decimal.Zero
	if annualSavings.GreaterThan(decimal.Zero) {
		percentage = annualSavings.Div(legacy.AnnualPAYE).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return domain.Results{
		Legacy: legacy,
		Reform: reform,
		Savings: domain.Savings{
			Monthly:    legacy.MonthlyPAYE.Sub(reform.MonthlyPAYE),
			Annual:     annualSavings,
			Percentage: percentage,
		},
		MonthlyGross: monthlyGross,
	}
}

// CompareScenarios runs Compare for every scenario in a configuration,
// preserving file order.
func (ce *CompareEngine) CompareScenarios(config *domain.Configuration) *ScenarioSet {
	set := &ScenarioSet{Scenarios: make([]ScenarioComparison, 0, len(config.Scenarios))}
	for _, scenario := range config.Scenarios {
		results := ce.Compare(scenario.GrossIncome.Monthly(), scenario.Deductions)
		set.Scenarios = append(set.Scenarios, ScenarioComparison{
			Name:    scenario.Name,
			Results: results,
		})
	}
	return set
}
