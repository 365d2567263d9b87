package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nairatools/payecompare/internal/domain"
	"github.com/nairatools/payecompare/internal/output"
)

// TableFormatter renders comparison results as console tables.
type TableFormatter struct{}

// Format generates the full side-by-side report for a single comparison:
// headline figures per regime, both bracket breakdowns, and savings.
func (tf *TableFormatter) Format(res *domain.Results) string {
	var sb strings.Builder

	sb.WriteString("PAYE REGIME COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Monthly Gross Income: %s\n", output.FormatNaira2(res.MonthlyGross)))
	sb.WriteString("\n")

	labelWidth := 22
	numWidth := 18

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n", labelWidth, "", numWidth, "Legacy", numWidth, "Reform"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	rows := []struct {
		label  string
		legacy string
		reform string
	}{
		{"Monthly PAYE", output.FormatNaira2(res.Legacy.MonthlyPAYE), output.FormatNaira2(res.Reform.MonthlyPAYE)},
		{"Annual PAYE", output.FormatNaira2(res.Legacy.AnnualPAYE), output.FormatNaira2(res.Reform.AnnualPAYE)},
		{"Effective Tax Rate", output.FormatPercentage(res.Legacy.EffectiveTaxRate), output.FormatPercentage(res.Reform.EffectiveTaxRate)},
		{"Taxable Income", output.FormatNaira2(res.Legacy.TaxableIncome), output.FormatNaira2(res.Reform.TaxableIncome)},
		{"Total Allowances", output.FormatNaira2(res.Legacy.TotalAllowances), output.FormatNaira2(res.Reform.TotalAllowances)},
		{"Net Monthly Pay", output.FormatNaira2(res.Legacy.NetMonthlyPay), output.FormatNaira2(res.Reform.NetMonthlyPay)},
		{"Net Annual Pay", output.FormatNaira2(res.Legacy.NetAnnualPay), output.FormatNaira2(res.Reform.NetAnnualPay)},
	}
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n", labelWidth, row.label, numWidth, row.legacy, numWidth, row.reform))
	}
	sb.WriteString(strings.Repeat("=", 72) + "\n")

	sb.WriteString("\nLEGACY BRACKET BREAKDOWN\n")
	tf.writeBreakdown(&sb, res.Legacy.BracketBreakdown)
	sb.WriteString("\nREFORM BRACKET BREAKDOWN\n")
	tf.writeBreakdown(&sb, res.Reform.BracketBreakdown)

	sb.WriteString("\nSAVINGS UNDER REFORM\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(fmt.Sprintf("  Monthly:    %s%s\n", tf.deltaSymbol(res.Savings.Monthly), output.FormatNaira2(res.Savings.Monthly.Abs())))
	sb.WriteString(fmt.Sprintf("  Annual:     %s%s\n", tf.deltaSymbol(res.Savings.Annual), output.FormatNaira2(res.Savings.Annual.Abs())))
	sb.WriteString(fmt.Sprintf("  Percentage: %s\n", output.FormatPercentage(res.Savings.Percentage)))

	return sb.String()
}

// FormatScenarios generates a summary table for a batch of scenarios.
func (tf *TableFormatter) FormatScenarios(set *ScenarioSet) string {
	var sb strings.Builder

	sb.WriteString("PAYE SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 96) + "\n")

	nameWidth := 24
	numWidth := 16

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Monthly Gross",
		numWidth, "Legacy PAYE/mo",
		numWidth, "Reform PAYE/mo",
		numWidth, "Savings/mo"))
	sb.WriteString(strings.Repeat("-", 96) + "\n")

	for _, sc := range set.Scenarios {
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
			nameWidth, truncate(sc.Name, nameWidth),
			numWidth, output.FormatNaira2(sc.Results.MonthlyGross),
			numWidth, output.FormatNaira2(sc.Results.Legacy.MonthlyPAYE),
			numWidth, output.FormatNaira2(sc.Results.Reform.MonthlyPAYE),
			numWidth, output.FormatNaira2(sc.Results.Savings.Monthly)))
	}
	sb.WriteString(strings.Repeat("=", 96) + "\n")

	return sb.String()
}

func (tf *TableFormatter) writeBreakdown(sb *strings.Builder, breakdown []domain.BracketBreakdown) {
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	if len(breakdown) == 0 {
		sb.WriteString("  (no taxable income)\n")
		return
	}
	sb.WriteString(fmt.Sprintf("  %-28s %6s %18s %15s\n", "Range", "Rate", "Taxable Amount", "Tax"))
	for _, line := range breakdown {
		sb.WriteString(fmt.Sprintf("  %-28s %6s %18s %15s\n",
			line.Range, line.Rate,
			output.FormatNaira2(line.TaxableAmount),
			output.FormatNaira2(line.Tax)))
	}
}

func (tf *TableFormatter) deltaSymbol(d decimal.Decimal) string {
	if d.LessThan(decimal.Zero) {
		return "-"
	}
	return "+"
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
