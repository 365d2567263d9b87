package compare

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nairatools/payecompare/internal/domain"
)

func sampleResults(t *testing.T) domain.Results {
	t.Helper()
	return newEngine().Compare(decimal.NewFromInt(500000), domain.AdditionalDeductions{})
}

func TestTableFormatterSingle(t *testing.T) {
	results := sampleResults(t)
	out := (&TableFormatter{}).Format(&results)

	assert.Contains(t, out, "PAYE REGIME COMPARISON")
	assert.Contains(t, out, "Monthly PAYE")
	assert.Contains(t, out, "₦74,666.67")
	assert.Contains(t, out, "₦69,500.00")
	assert.Contains(t, out, "LEGACY BRACKET BREAKDOWN")
	assert.Contains(t, out, "₦3,200,000 - Above")
	assert.Contains(t, out, "SAVINGS UNDER REFORM")
	assert.Contains(t, out, "6.92%")
}

func TestTableFormatterScenarios(t *testing.T) {
	set := &ScenarioSet{Scenarios: []ScenarioComparison{
		{Name: "junior", Results: newEngine().Compare(decimal.NewFromInt(150000), domain.AdditionalDeductions{})},
		{Name: "senior", Results: sampleResults(t)},
	}}
	out := (&TableFormatter{}).FormatScenarios(set)

	assert.Contains(t, out, "PAYE SCENARIO COMPARISON")
	assert.Contains(t, out, "junior")
	assert.Contains(t, out, "senior")
}

func TestJSONFormatter(t *testing.T) {
	results := sampleResults(t)
	out, err := (&JSONFormatter{}).Format(&results)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded, "legacy")
	assert.Contains(t, decoded, "reform")
	assert.Contains(t, decoded, "savings")

	pretty, err := (&JSONFormatter{Pretty: true}).Format(&results)
	require.NoError(t, err)
	assert.Contains(t, pretty, "\n  ")
}

func TestCSVFormatterScenarios(t *testing.T) {
	set := &ScenarioSet{Scenarios: []ScenarioComparison{
		{Name: "only", Results: sampleResults(t)},
	}}
	out, err := (&CSVFormatter{}).FormatScenarios(set)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Scenario,Monthly Gross"))
	assert.Contains(t, lines[1], "only")
	assert.Contains(t, lines[1], "74666.67")
	assert.Contains(t, lines[1], "69500.00")
}
