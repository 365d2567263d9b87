package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/nairatools/payecompare/internal/calculation"
	"github.com/nairatools/payecompare/internal/domain"
)

// InputParser handles parsing of scenario and regime-rules files. This layer
// owns input validation: the calculation engine assumes gross income is
// already a nonnegative finite number by the time it is called.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates a scenario configuration, normalizing an
// omitted income period to monthly.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario is required")
	}

	for i := range config.Scenarios {
		if err := ip.validateScenario(i, &config.Scenarios[i]); err != nil {
			return err
		}
	}
	return nil
}

func (ip *InputParser) validateScenario(index int, scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario %d: name is required", index)
	}
	if scenario.GrossIncome.Amount.LessThan(decimal.Zero) {
		return fmt.Errorf("scenario %d (%s): gross income must not be negative, got %s",
			index, scenario.Name, scenario.GrossIncome.Amount)
	}

	switch scenario.GrossIncome.Period {
	case "":
		scenario.GrossIncome.Period = domain.PeriodMonthly
	case domain.PeriodMonthly, domain.PeriodAnnual:
	default:
		return fmt.Errorf("scenario %d (%s): period must be %q or %q, got %q",
			index, scenario.Name, domain.PeriodMonthly, domain.PeriodAnnual, scenario.GrossIncome.Period)
	}
	return nil
}

// LoadRegimeRules loads a regime-rules override file and checks that any
// supplied bracket tables satisfy the table invariants.
func (ip *InputParser) LoadRegimeRules(filename string) (*domain.RegimeRules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var rules domain.RegimeRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRegimeRules(&rules); err != nil {
		return nil, fmt.Errorf("regime rules validation failed: %w", err)
	}

	return &rules, nil
}

// ValidateRegimeRules validates a regime-rules override.
func (ip *InputParser) ValidateRegimeRules(rules *domain.RegimeRules) error {
	if rules.Allowances.ConsolidatedReliefFloor.LessThan(decimal.Zero) {
		return fmt.Errorf("consolidated relief floor must not be negative")
	}
	if rules.Allowances.ConsolidatedReliefRate.LessThan(decimal.Zero) {
		return fmt.Errorf("consolidated relief rate must not be negative")
	}
	if rules.Allowances.GrossIncomeAllowanceRate.LessThan(decimal.Zero) {
		return fmt.Errorf("gross income allowance rate must not be negative")
	}

	if len(rules.LegacyBrackets) > 0 {
		if _, err := calculation.NewBracketTable(rules.LegacyBrackets); err != nil {
			return fmt.Errorf("legacy brackets: %w", err)
		}
	}
	if len(rules.ReformBrackets) > 0 {
		if _, err := calculation.NewBracketTable(rules.ReformBrackets); err != nil {
			return fmt.Errorf("reform brackets: %w", err)
		}
	}
	return nil
}

// ParseGrossIncome parses a raw gross income figure from CLI or form input,
// rejecting non-numeric and negative values.
func ParseGrossIncome(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("gross income %q is not a number", raw)
	}
	if amount.LessThan(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("gross income must not be negative, got %s", amount)
	}
	return amount, nil
}
