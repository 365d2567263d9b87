package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nairatools/payecompare/internal/domain"
	"github.com/nairatools/payecompare/internal/output"
)

// AccumulateTax applies progressive marginal taxation: each bracket taxes
// only the slice of taxable income that falls inside it. Returns the total
// annual tax (unrounded) and one breakdown line per bracket that captured a
// nonzero amount. A zero-rate bracket with captured income still produces a
// line; brackets above the income are skipped entirely.
func AccumulateTax(taxableIncome decimal.Decimal, brackets []TaxBracket) (decimal.Decimal, []domain.BracketBreakdown) {
	tax := decimal.Zero
	breakdown := []domain.BracketBreakdown{}
	previousLimit := decimal.Zero

	for _, bracket := range brackets {
		if taxableIncome.LessThanOrEqual(previousLimit) {
			break
		}

		upper := taxableIncome
		if !bracket.Unbounded {
			upper = decimal.Min(taxableIncome, bracket.Limit)
		}
		amountInBracket := upper.Sub(previousLimit)
		taxInBracket := amountInBracket.Mul(bracket.Rate)

		if amountInBracket.GreaterThan(decimal.Zero) {
			breakdown = append(breakdown, domain.BracketBreakdown{
				Range:         rangeLabel(previousLimit, bracket),
				Rate:          rateLabel(bracket.Rate),
				TaxableAmount: amountInBracket,
				Tax:           taxInBracket,
			})
		}

		tax = tax.Add(taxInBracket)
		if bracket.Unbounded {
			break
		}
		previousLimit = bracket.Limit
		if taxableIncome.LessThanOrEqual(bracket.Limit) {
			break
		}
	}

	return tax, breakdown
}

// rangeLabel renders a bracket's bounds for display, e.g.
// "₦600,000 - ₦1,100,000" or "₦3,200,000 - Above".
func rangeLabel(previousLimit decimal.Decimal, bracket TaxBracket) string {
	upper := "Above"
	if !bracket.Unbounded {
		upper = output.FormatNaira(bracket.Limit)
	}
	return output.FormatNaira(previousLimit) + " - " + upper
}

// rateLabel renders a marginal rate as an integer percentage, e.g. "15%".
func rateLabel(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
}
