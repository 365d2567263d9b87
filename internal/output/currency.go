package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatNaira formats a decimal as Nigerian Naira for display: zero decimal
// places with thousands grouping, e.g. ₦1,400,000. Display only — engine
// rounding stays at 2 decimal places regardless of this format.
func FormatNaira(amount decimal.Decimal) string {
	s := amount.Round(0).StringFixed(0)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString("₦")
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

// FormatNaira2 formats a decimal as Naira with kobo (2 decimal places) and
// thousands grouping on the whole part, e.g. ₦74,666.67.
func FormatNaira2(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString("₦")
	for i, ch := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(ch)
	}
	sb.WriteByte('.')
	sb.WriteString(frac)
	return sb.String()
}

// FormatPercentage formats a decimal as a percentage with 2 decimal places.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
