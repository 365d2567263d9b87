package calculation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nairatools/payecompare/internal/domain"
)

// NormalizeDeductions converts the free-form monthly deduction inputs into
// numeric amounts. Empty or unparseable text yields exactly zero; this never
// fails. Values are taken as-is — callers collecting the input are expected
// to keep them nonnegative.
func NormalizeDeductions(d domain.AdditionalDeductions) domain.NormalizedDeductions {
	return domain.NormalizedDeductions{
		Pension:   parseAmount(d.Pension),
		NHF:       parseAmount(d.NHF),
		Insurance: parseAmount(d.Insurance),
	}
}

func parseAmount(s string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return v
}
