package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nairatools/payecompare/internal/domain"
)

var twelve = decimal.NewFromInt(12)

// PAYEEngine computes a single regime's PAYE result from a monthly gross
// salary and raw deduction inputs. It is pure and retains no state between
// calls; the bracket tables it holds are read-only, so one engine is safe
// for unrestricted concurrent use.
//
// monthlyGross is assumed already validated as a nonnegative finite number
// by the calling layer. Negative inputs are not re-checked here and
// propagate through the arithmetic.
type PAYEEngine struct {
	Legacy     []TaxBracket
	Reform     []TaxBracket
	Allowances *AllowanceCalculator

	Logger Logger
	Debug  bool
}

// NewPAYEEngine creates an engine with the built-in bracket tables and
// statutory allowance parameters.
func NewPAYEEngine() *PAYEEngine {
	return &PAYEEngine{
		Legacy:     LegacyBracketTable(),
		Reform:     ReformBracketTable(),
		Allowances: NewAllowanceCalculator(),
	}
}

// NewPAYEEngineWithRules creates an engine with bracket tables and allowance
// parameters overridden from a regime-rules file. Omitted bracket lists keep
// the built-in tables.
func NewPAYEEngineWithRules(rules domain.RegimeRules) (*PAYEEngine, error) {
	engine := NewPAYEEngine()
	engine.Allowances = NewAllowanceCalculatorWithRules(rules.Allowances)

	if len(rules.LegacyBrackets) > 0 {
		legacy, err := NewBracketTable(rules.LegacyBrackets)
		if err != nil {
			return nil, err
		}
		engine.Legacy = legacy
	}
	if len(rules.ReformBrackets) > 0 {
		reform, err := NewBracketTable(rules.ReformBrackets)
		if err != nil {
			return nil, err
		}
		engine.Reform = reform
	}

	return engine, nil
}

// SetLogger attaches a logger for debug tracing.
func (e *PAYEEngine) SetLogger(l Logger) {
	e.Logger = l
}

// Brackets returns the bracket table for a regime.
func (e *PAYEEngine) Brackets(regime domain.Regime) []TaxBracket {
	if regime == domain.RegimeReform {
		return e.Reform
	}
	return e.Legacy
}

// ComputeRegime runs the full pipeline for one regime: normalize deductions,
// compute allowances and taxable income, accumulate bracket tax, then derive
// monthly figures and net pay.
//
// Every output field is rounded to 2 decimal places independently, half away
// from zero. MonthlyPAYE comes from the unrounded annual tax divided by 12
// and AnnualPAYE from the same unrounded tax, so the two are not derived
// from each other; NetAnnualPay is the rounded NetMonthlyPay times 12. This
// rounding order is part of the output contract.
func (e *PAYEEngine) ComputeRegime(monthlyGross decimal.Decimal, regime domain.Regime, deductions domain.AdditionalDeductions) domain.CalculationResult {
	annualGross := monthlyGross.Mul(twelve)

	normalized := NormalizeDeductions(deductions)
	annualAdditional := normalized.Total().Mul(twelve)

	_, taxableIncome := e.Allowances.Compute(annualGross, regime, annualAdditional)
	tax, breakdown := AccumulateTax(taxableIncome, e.Brackets(regime))

	monthlyTax := tax.Div(twelve)
	effectiveRate := decimal.Zero
	if annualGross.GreaterThan(decimal.Zero) {
		effectiveRate = tax.Div(annualGross).Mul(decimal.NewFromInt(100))
	}
	netMonthly := monthlyGross.Sub(monthlyTax).Sub(normalized.Total())
	netMonthlyRounded := netMonthly.Round(2)

	for i := range breakdown {
		breakdown[i].TaxableAmount = breakdown[i].TaxableAmount.Round(2)
		breakdown[i].Tax = breakdown[i].Tax.Round(2)
	}

	if e.Debug && e.Logger != nil {
		e.Logger.Debugf("%s regime: annual gross %s, taxable %s, annual tax %s",
			regime, annualGross, taxableIncome, tax)
	}

	return domain.CalculationResult{
		MonthlyPAYE:      monthlyTax.Round(2),
		AnnualPAYE:       tax.Round(2),
		EffectiveTaxRate: effectiveRate.Round(2),
		TaxableIncome:    taxableIncome.Round(2),
		// Reported allowances are always gross minus taxable, keeping
		// totalAllowances + taxableIncome == annualGross in every call path.
		TotalAllowances:  annualGross.Sub(taxableIncome).Round(2),
		BracketBreakdown: breakdown,
		NetMonthlyPay:    netMonthlyRounded,
		NetAnnualPay:     netMonthlyRounded.Mul(twelve).Round(2),
	}
}
