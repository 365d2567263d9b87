package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/nairatools/payecompare/internal/domain"
	"github.com/nairatools/payecompare/internal/output"
)

// View renders the calculator: form on top, tabbed results below, status bar
// at the bottom.
func (m Model) View() string {
	sections := []string{
		m.renderTitleBar(),
		m.renderForm(),
	}

	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render("  "+m.errMsg))
	} else if m.results != nil {
		sections = append(sections, m.renderTabs(), m.renderActiveTab())
	} else {
		sections = append(sections, subtitleStyle.Render("Enter a gross income and press enter."))
	}

	sections = append(sections, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitleBar() string {
	title := titleStyle.Render("PAYE Compare - Legacy vs Reform")
	period := "monthly"
	if m.annual {
		period = "annual"
	}
	subtitle := subtitleStyle.Render("Gross income entered as: " + period)
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

func (m Model) renderForm() string {
	labels := []string{"Gross Income", "Pension /mo", "NHF /mo", "Insurance /mo"}
	rows := make([]string, 0, fieldCount)
	for i, input := range m.inputs {
		rows = append(rows, labelStyle.Render(labels[i])+" "+input.View())
	}
	return focusedPanelStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, int(tabCount))
	for t := TabSummary; t < tabCount; t++ {
		if t == m.activeTab {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderActiveTab() string {
	switch m.activeTab {
	case TabLegacy:
		return m.renderBreakdown(m.results.Legacy)
	case TabReform:
		return m.renderBreakdown(m.results.Reform)
	default:
		return m.renderSummary()
	}
}

func (m Model) renderSummary() string {
	res := m.results
	var sb strings.Builder

	writeMetric := func(label string, legacy, reform string) {
		sb.WriteString(fmt.Sprintf("%s %16s %16s\n", labelStyle.Render(label), legacy, reform))
	}

	sb.WriteString(fmt.Sprintf("%s %16s %16s\n", labelStyle.Render(""), valueStyle.Render("Legacy"), valueStyle.Render("Reform")))
	writeMetric("Monthly PAYE", output.FormatNaira2(res.Legacy.MonthlyPAYE), output.FormatNaira2(res.Reform.MonthlyPAYE))
	writeMetric("Annual PAYE", output.FormatNaira2(res.Legacy.AnnualPAYE), output.FormatNaira2(res.Reform.AnnualPAYE))
	writeMetric("Effective Rate", output.FormatPercentage(res.Legacy.EffectiveTaxRate), output.FormatPercentage(res.Reform.EffectiveTaxRate))
	writeMetric("Taxable Income", output.FormatNaira(res.Legacy.TaxableIncome), output.FormatNaira(res.Reform.TaxableIncome))
	writeMetric("Allowances", output.FormatNaira(res.Legacy.TotalAllowances), output.FormatNaira(res.Reform.TotalAllowances))
	writeMetric("Net Monthly Pay", output.FormatNaira2(res.Legacy.NetMonthlyPay), output.FormatNaira2(res.Reform.NetMonthlyPay))

	savings := fmt.Sprintf("Savings under reform: %s/mo  %s/yr  (%s)",
		output.FormatNaira2(res.Savings.Monthly),
		output.FormatNaira2(res.Savings.Annual),
		output.FormatPercentage(res.Savings.Percentage))
	style := savingsPositiveStyle
	if res.Savings.Annual.LessThan(decimal.Zero) {
		style = savingsNegativeStyle
	}
	sb.WriteString("\n" + style.Render(savings))

	return panelStyle.Render(sb.String())
}

func (m Model) renderBreakdown(res domain.CalculationResult) string {
	var sb strings.Builder
	if len(res.BracketBreakdown) == 0 {
		sb.WriteString("No taxable income - no tax due.")
		return panelStyle.Render(sb.String())
	}

	sb.WriteString(fmt.Sprintf("%-28s %6s %16s %14s\n", "Range", "Rate", "Taxable", "Tax"))
	for _, line := range res.BracketBreakdown {
		sb.WriteString(fmt.Sprintf("%-28s %6s %16s %14s\n",
			line.Range, line.Rate,
			output.FormatNaira2(line.TaxableAmount),
			output.FormatNaira2(line.Tax)))
	}
	sb.WriteString(fmt.Sprintf("\n%-28s %6s %16s %14s",
		"Total", "", "", output.FormatNaira2(res.AnnualPAYE)))

	return panelStyle.Render(sb.String())
}

func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("tab", "next field"),
		formatShortcut("enter", "calculate"),
		formatShortcut("ctrl+t", "switch tab"),
		formatShortcut("ctrl+a", "monthly/annual"),
		formatShortcut("esc", "quit"),
	}
	return statusBarStyle.Width(m.width).Render(strings.Join(shortcuts, "  "))
}

func formatShortcut(key, desc string) string {
	return statusKeyStyle.Render(key) + " " + desc
}
