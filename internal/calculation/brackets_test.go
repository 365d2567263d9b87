package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nairatools/payecompare/internal/domain"
)

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestBuiltInTablesAreWellFormed(t *testing.T) {
	for name, table := range map[string][]TaxBracket{
		"legacy": LegacyBracketTable(),
		"reform": ReformBracketTable(),
	} {
		require.NotEmpty(t, table, name)
		prev := decimal.Zero
		for i, b := range table {
			last := i == len(table)-1
			assert.Equal(t, last, b.Unbounded, "%s bracket %d: only the last bracket is unbounded", name, i)
			if !b.Unbounded {
				assert.True(t, b.Limit.GreaterThan(prev), "%s bracket %d: limits must increase", name, i)
				prev = b.Limit
			}
			assert.True(t, b.Rate.GreaterThanOrEqual(decimal.Zero) && b.Rate.LessThanOrEqual(decimal.NewFromInt(1)),
				"%s bracket %d: rate out of range", name, i)
		}
	}
}

func TestNewBracketTable(t *testing.T) {
	tests := []struct {
		name    string
		rules   []domain.BracketRule
		wantErr string
	}{
		{
			name: "valid table",
			rules: []domain.BracketRule{
				{Limit: decPtr(500000), Rate: decimal.NewFromFloat(0.10)},
				{Rate: decimal.NewFromFloat(0.20)},
			},
		},
		{
			name:    "empty table rejected",
			rules:   nil,
			wantErr: "at least one bracket",
		},
		{
			name: "bounded last bracket rejected",
			rules: []domain.BracketRule{
				{Limit: decPtr(500000), Rate: decimal.NewFromFloat(0.10)},
				{Limit: decPtr(900000), Rate: decimal.NewFromFloat(0.20)},
			},
			wantErr: "last bracket must be unbounded",
		},
		{
			name: "unbounded mid-table bracket rejected",
			rules: []domain.BracketRule{
				{Rate: decimal.NewFromFloat(0.10)},
				{Rate: decimal.NewFromFloat(0.20)},
			},
			wantErr: "only the last bracket may omit its limit",
		},
		{
			name: "non-increasing limits rejected",
			rules: []domain.BracketRule{
				{Limit: decPtr(500000), Rate: decimal.NewFromFloat(0.10)},
				{Limit: decPtr(500000), Rate: decimal.NewFromFloat(0.15)},
				{Rate: decimal.NewFromFloat(0.20)},
			},
			wantErr: "must exceed previous limit",
		},
		{
			name: "rate above one rejected",
			rules: []domain.BracketRule{
				{Limit: decPtr(500000), Rate: decimal.NewFromFloat(1.5)},
				{Rate: decimal.NewFromFloat(0.20)},
			},
			wantErr: "outside [0, 1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewBracketTable(tt.rules)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, table, len(tt.rules))
			assert.True(t, table[len(table)-1].Unbounded)
		})
	}
}
