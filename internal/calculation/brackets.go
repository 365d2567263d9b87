package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nairatools/payecompare/internal/domain"
)

// TaxBracket represents one marginal rate band. Limit is the cumulative
// annual upper bound of the band; Unbounded marks the terminal band, whose
// Limit is ignored. An explicit sentinel is used rather than an infinite
// value so bracket arithmetic never touches IEEE infinity.
type TaxBracket struct {
	Limit     decimal.Decimal
	Rate      decimal.Decimal
	Unbounded bool
}

// LegacyBracketTable returns the pre-reform PAYE brackets (annual cumulative
// thresholds, Naira).
func LegacyBracketTable() []TaxBracket {
	return []TaxBracket{
		{Limit: decimal.NewFromInt(300000), Rate: decimal.NewFromFloat(0.07)},
		{Limit: decimal.NewFromInt(600000), Rate: decimal.NewFromFloat(0.11)},
		{Limit: decimal.NewFromInt(1100000), Rate: decimal.NewFromFloat(0.15)},
		{Limit: decimal.NewFromInt(1600000), Rate: decimal.NewFromFloat(0.19)},
		{Limit: decimal.NewFromInt(3200000), Rate: decimal.NewFromFloat(0.21)},
		{Rate: decimal.NewFromFloat(0.24), Unbounded: true},
	}
}

// ReformBracketTable returns the reform PAYE brackets. The first band is
// rate-free: income inside it still shows up in the breakdown with zero tax.
func ReformBracketTable() []TaxBracket {
	return []TaxBracket{
		{Limit: decimal.NewFromInt(800000), Rate: decimal.Zero},
		{Limit: decimal.NewFromInt(3000000), Rate: decimal.NewFromFloat(0.15)},
		{Limit: decimal.NewFromInt(12000000), Rate: decimal.NewFromFloat(0.18)},
		{Limit: decimal.NewFromInt(25000000), Rate: decimal.NewFromFloat(0.21)},
		{Limit: decimal.NewFromInt(50000000), Rate: decimal.NewFromFloat(0.23)},
		{Rate: decimal.NewFromFloat(0.25), Unbounded: true},
	}
}

// NewBracketTable builds a bracket table from regime-rules entries,
// enforcing the table invariants: strictly increasing positive limits, a
// single terminal unbounded entry, rates within [0, 1].
func NewBracketTable(rules []domain.BracketRule) ([]TaxBracket, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("bracket table must have at least one bracket")
	}

	brackets := make([]TaxBracket, 0, len(rules))
	prev := decimal.Zero
	for i, rule := range rules {
		if rule.Rate.LessThan(decimal.Zero) || rule.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return nil, fmt.Errorf("bracket %d: rate %s outside [0, 1]", i, rule.Rate)
		}

		last := i == len(rules)-1
		if rule.Limit == nil {
			if !last {
				return nil, fmt.Errorf("bracket %d: only the last bracket may omit its limit", i)
			}
			brackets = append(brackets, TaxBracket{Rate: rule.Rate, Unbounded: true})
			continue
		}
		if last {
			return nil, fmt.Errorf("last bracket must be unbounded (omit its limit)")
		}
		if rule.Limit.LessThanOrEqual(prev) {
			return nil, fmt.Errorf("bracket %d: limit %s must exceed previous limit %s", i, rule.Limit, prev)
		}
		brackets = append(brackets, TaxBracket{Limit: *rule.Limit, Rate: rule.Rate})
		prev = *rule.Limit
	}

	return brackets, nil
}
