package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nairatools/payecompare/internal/calculation"
	"github.com/nairatools/payecompare/internal/compare"
	"github.com/nairatools/payecompare/internal/domain"
)

// Tab identifies which result panel is visible.
type Tab int

const (
	TabSummary Tab = iota
	TabLegacy
	TabReform
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabSummary:
		return "Summary"
	case TabLegacy:
		return "Legacy Breakdown"
	case TabReform:
		return "Reform Breakdown"
	}
	return "Unknown"
}

// Input field indices.
const (
	fieldGross = iota
	fieldPension
	fieldNHF
	fieldInsurance
	fieldCount
)

// KeyMap defines the keyboard shortcuts for the calculator.
type KeyMap struct {
	NextField    key.Binding
	PrevField    key.Binding
	Calculate    key.Binding
	CycleTab     key.Binding
	TogglePeriod key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the standard shortcuts.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Calculate:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "calculate")),
		CycleTab:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "switch tab")),
		TogglePeriod: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "monthly/annual")),
		Quit:         key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// Model is the interactive PAYE calculator state.
type Model struct {
	engine *compare.CompareEngine

	inputs  []textinput.Model
	focused int
	annual  bool

	activeTab Tab
	results   *domain.Results
	errMsg    string

	keys   KeyMap
	width  int
	height int
}

// NewModel creates the calculator model with an empty form.
func NewModel(engine *calculation.PAYEEngine) Model {
	inputs := make([]textinput.Model, fieldCount)
	placeholders := []string{"500000", "0", "0", "0"}
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = ""
		ti.CharLimit = 16
		ti.Width = 20
		inputs[i] = ti
	}
	inputs[fieldGross].Focus()

	return Model{
		engine:    compare.NewCompareEngine(engine),
		inputs:    inputs,
		activeTab: TabSummary,
		keys:      DefaultKeyMap(),
		width:     80,
		height:    24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
