package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatNaira(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{"zero", decimal.Zero, "₦0"},
		{"hundreds", decimal.NewFromInt(950), "₦950"},
		{"thousands", decimal.NewFromInt(1400000), "₦1,400,000"},
		{"millions", decimal.NewFromInt(12345678), "₦12,345,678"},
		{"rounds to whole", decimal.NewFromFloat(74666.67), "₦74,667"},
		{"negative", decimal.NewFromInt(-62000), "-₦62,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNaira(tt.amount))
		})
	}
}

func TestFormatNaira2(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{"whole amount", decimal.NewFromInt(69500), "₦69,500.00"},
		{"kobo kept", decimal.NewFromFloat(74666.67), "₦74,666.67"},
		{"small", decimal.NewFromFloat(0.5), "₦0.50"},
		{"negative", decimal.NewFromFloat(-5166.67), "-₦5,166.67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNaira2(tt.amount))
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "6.92%", FormatPercentage(decimal.NewFromFloat(6.92)))
	assert.Equal(t, "0.00%", FormatPercentage(decimal.Zero))
	assert.Equal(t, "13.90%", FormatPercentage(decimal.NewFromFloat(13.9)))
}
