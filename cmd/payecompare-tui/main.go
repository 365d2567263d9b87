package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nairatools/payecompare/internal/calculation"
	"github.com/nairatools/payecompare/internal/config"
	"github.com/nairatools/payecompare/internal/tui"
)

func main() {
	// Optional regime-rules override as the only argument
	engine := calculation.NewPAYEEngine()
	if len(os.Args) > 1 {
		parser := config.NewInputParser()
		rules, err := parser.LoadRegimeRules(os.Args[1])
		if err != nil {
			fmt.Printf("Error loading regime rules: %v\n", err)
			os.Exit(1)
		}
		engine, err = calculation.NewPAYEEngineWithRules(*rules)
		if err != nil {
			fmt.Printf("Error building engine: %v\n", err)
			os.Exit(1)
		}
	}

	model := tui.NewModel(engine)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
