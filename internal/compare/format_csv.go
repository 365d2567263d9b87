package compare

import (
	"encoding/csv"
	"strings"

	"github.com/nairatools/payecompare/internal/domain"
)

// CSVFormatter renders comparison results as CSV. Amounts are emitted as
// plain 2-decimal numbers, not display currency.
type CSVFormatter struct{}

// Format generates CSV for a single comparison as a one-row batch.
func (cf *CSVFormatter) Format(res *domain.Results) (string, error) {
	return cf.FormatScenarios(&ScenarioSet{Scenarios: []ScenarioComparison{{Name: "comparison", Results: *res}}})
}

// FormatScenarios generates CSV output for a scenario batch.
func (cf *CSVFormatter) FormatScenarios(set *ScenarioSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Monthly Gross",
		"Legacy Monthly PAYE",
		"Legacy Annual PAYE",
		"Legacy Effective Rate",
		"Legacy Net Monthly Pay",
		"Reform Monthly PAYE",
		"Reform Annual PAYE",
		"Reform Effective Rate",
		"Reform Net Monthly Pay",
		"Monthly Savings",
		"Annual Savings",
		"Savings %",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, sc := range set.Scenarios {
		if err := writer.Write(cf.formatRow(sc.Name, &sc.Results)); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(name string, res *domain.Results) []string {
	return []string{
		name,
		res.MonthlyGross.StringFixed(2),
		res.Legacy.MonthlyPAYE.StringFixed(2),
		res.Legacy.AnnualPAYE.StringFixed(2),
		res.Legacy.EffectiveTaxRate.StringFixed(2),
		res.Legacy.NetMonthlyPay.StringFixed(2),
		res.Reform.MonthlyPAYE.StringFixed(2),
		res.Reform.AnnualPAYE.StringFixed(2),
		res.Reform.EffectiveTaxRate.StringFixed(2),
		res.Reform.NetMonthlyPay.StringFixed(2),
		res.Savings.Monthly.StringFixed(2),
		res.Savings.Annual.StringFixed(2),
		res.Savings.Percentage.StringFixed(2),
	}
}
