package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nairatools/payecompare/internal/config"
	"github.com/nairatools/payecompare/internal/domain"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextField):
			return m.focusField((m.focused + 1) % fieldCount), nil

		case key.Matches(msg, m.keys.PrevField):
			return m.focusField((m.focused + fieldCount - 1) % fieldCount), nil

		case key.Matches(msg, m.keys.CycleTab):
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil

		case key.Matches(msg, m.keys.TogglePeriod):
			m.annual = !m.annual
			if m.results != nil {
				m.calculate()
			}
			return m, nil

		case key.Matches(msg, m.keys.Calculate):
			m.calculate()
			return m, nil
		}
	}

	// Everything else goes to the focused input.
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m Model) focusField(index int) Model {
	m.inputs[m.focused].Blur()
	m.focused = index
	m.inputs[m.focused].Focus()
	return m
}

// calculate validates the form and runs the comparison. Gross income
// validation lives here — the engine never re-checks it.
func (m *Model) calculate() {
	raw := strings.TrimSpace(m.inputs[fieldGross].Value())
	if raw == "" {
		m.errMsg = "enter a gross income figure"
		m.results = nil
		return
	}

	gross, err := config.ParseGrossIncome(raw)
	if err != nil {
		m.errMsg = err.Error()
		m.results = nil
		return
	}
	monthlyGross := gross
	if m.annual {
		monthlyGross = domain.GrossIncome{Amount: gross, Period: domain.PeriodAnnual}.Monthly()
	}

	deductions := domain.AdditionalDeductions{
		Pension:   m.inputs[fieldPension].Value(),
		NHF:       m.inputs[fieldNHF].Value(),
		Insurance: m.inputs[fieldInsurance].Value(),
	}

	results := m.engine.Compare(monthlyGross, deductions)
	m.results = &results
	m.errMsg = ""
}
