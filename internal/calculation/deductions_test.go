package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nairatools/payecompare/internal/domain"
)

func TestNormalizeDeductions(t *testing.T) {
	tests := []struct {
		name     string
		input    domain.AdditionalDeductions
		expected domain.NormalizedDeductions
	}{
		{
			name:  "empty strings normalize to zero",
			input: domain.AdditionalDeductions{},
			expected: domain.NormalizedDeductions{
				Pension:   decimal.Zero,
				NHF:       decimal.Zero,
				Insurance: decimal.Zero,
			},
		},
		{
			name:  "numeric strings parse",
			input: domain.AdditionalDeductions{Pension: "40000", NHF: "12500", Insurance: "5000.50"},
			expected: domain.NormalizedDeductions{
				Pension:   decimal.NewFromInt(40000),
				NHF:       decimal.NewFromInt(12500),
				Insurance: decimal.NewFromFloat(5000.50),
			},
		},
		{
			name:  "garbage normalizes to zero",
			input: domain.AdditionalDeductions{Pension: "abc", NHF: "12,500", Insurance: "5000"},
			expected: domain.NormalizedDeductions{
				Pension:   decimal.Zero,
				NHF:       decimal.Zero,
				Insurance: decimal.NewFromInt(5000),
			},
		},
		{
			name:  "surrounding whitespace is tolerated",
			input: domain.AdditionalDeductions{Pension: "  40000 "},
			expected: domain.NormalizedDeductions{
				Pension:   decimal.NewFromInt(40000),
				NHF:       decimal.Zero,
				Insurance: decimal.Zero,
			},
		},
		{
			name:  "negative values pass through unclamped",
			input: domain.AdditionalDeductions{NHF: "-100"},
			expected: domain.NormalizedDeductions{
				Pension:   decimal.Zero,
				NHF:       decimal.NewFromInt(-100),
				Insurance: decimal.Zero,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDeductions(tt.input)
			assert.True(t, got.Pension.Equal(tt.expected.Pension), "pension: expected %s, got %s", tt.expected.Pension, got.Pension)
			assert.True(t, got.NHF.Equal(tt.expected.NHF), "nhf: expected %s, got %s", tt.expected.NHF, got.NHF)
			assert.True(t, got.Insurance.Equal(tt.expected.Insurance), "insurance: expected %s, got %s", tt.expected.Insurance, got.Insurance)
		})
	}
}

func TestNormalizedDeductionsTotal(t *testing.T) {
	nd := domain.NormalizedDeductions{
		Pension:   decimal.NewFromInt(40000),
		NHF:       decimal.NewFromInt(12500),
		Insurance: decimal.NewFromInt(5000),
	}
	assert.True(t, nd.Total().Equal(decimal.NewFromInt(57500)))
}
