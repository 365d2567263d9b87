package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nairatools/payecompare/internal/domain"
)

func TestConsolidatedRelief(t *testing.T) {
	ac := NewAllowanceCalculator()

	tests := []struct {
		name        string
		annualGross decimal.Decimal
		expected    decimal.Decimal
	}{
		{
			name:        "floor applies below 20M gross",
			annualGross: decimal.NewFromInt(6000000),
			expected:    decimal.NewFromInt(200000),
		},
		{
			name:        "one percent applies above 20M gross",
			annualGross: decimal.NewFromInt(30000000),
			expected:    decimal.NewFromInt(300000),
		},
		{
			name:        "floor applies at zero gross",
			annualGross: decimal.Zero,
			expected:    decimal.NewFromInt(200000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ac.ConsolidatedRelief(tt.annualGross)
			assert.True(t, got.Equal(tt.expected), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestComputeAllowancesLegacy(t *testing.T) {
	ac := NewAllowanceCalculator()

	// 6M gross: relief 200k + 20% gross 1.2M = 1.4M allowances
	total, taxable := ac.Compute(decimal.NewFromInt(6000000), domain.RegimeLegacy, decimal.Zero)
	assert.True(t, total.Equal(decimal.NewFromInt(1400000)), "expected 1400000, got %s", total)
	assert.True(t, taxable.Equal(decimal.NewFromInt(4600000)), "expected 4600000, got %s", taxable)

	// Additional deductions stack on top
	total, taxable = ac.Compute(decimal.NewFromInt(6000000), domain.RegimeLegacy, decimal.NewFromInt(690000))
	assert.True(t, total.Equal(decimal.NewFromInt(2090000)), "expected 2090000, got %s", total)
	assert.True(t, taxable.Equal(decimal.NewFromInt(3910000)), "expected 3910000, got %s", taxable)
}

func TestComputeAllowancesReform(t *testing.T) {
	ac := NewAllowanceCalculator()

	// Reform has no 20% gross allowance
	total, taxable := ac.Compute(decimal.NewFromInt(6000000), domain.RegimeReform, decimal.Zero)
	assert.True(t, total.Equal(decimal.NewFromInt(200000)), "expected 200000, got %s", total)
	assert.True(t, taxable.Equal(decimal.NewFromInt(5800000)), "expected 5800000, got %s", taxable)

	total, taxable = ac.Compute(decimal.NewFromInt(6000000), domain.RegimeReform, decimal.NewFromInt(690000))
	assert.True(t, total.Equal(decimal.NewFromInt(890000)), "expected 890000, got %s", total)
	assert.True(t, taxable.Equal(decimal.NewFromInt(5110000)), "expected 5110000, got %s", taxable)
}

func TestTaxableIncomeFlooredAtZero(t *testing.T) {
	ac := NewAllowanceCalculator()

	// 200k annual gross: allowances exceed gross in both regimes
	for _, regime := range []domain.Regime{domain.RegimeLegacy, domain.RegimeReform} {
		_, taxable := ac.Compute(decimal.NewFromInt(200000), regime, decimal.Zero)
		assert.True(t, taxable.Equal(decimal.Zero), "%s: expected 0, got %s", regime, taxable)
	}
}

func TestNewAllowanceCalculatorWithRules(t *testing.T) {
	rules := domain.AllowanceRules{
		ConsolidatedReliefFloor: decimal.NewFromInt(300000),
	}
	ac := NewAllowanceCalculatorWithRules(rules)

	assert.True(t, ac.ReliefFloor.Equal(decimal.NewFromInt(300000)))
	// Unset fields keep the statutory defaults
	assert.True(t, ac.ReliefRate.Equal(decimal.NewFromFloat(0.01)))
	assert.True(t, ac.GrossIncomeAllowanceRate.Equal(decimal.NewFromFloat(0.20)))
}
