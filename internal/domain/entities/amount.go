package entities

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Callers send either decimal reais (19.9) or integer centavos (1990).
// Anything above this threshold is assumed to already be centavos.
const centsUnitThreshold = 1000

var (
	ErrAmountRequired   = errors.New("amount is required")
	ErrAmountNotNumeric = errors.New("amount must be a number")
)

// ParseAmountValue coerces the caller-supplied amount into a number.
// JSON numbers and numeric strings are accepted; everything else is rejected.
func ParseAmountValue(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, ErrAmountRequired
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, ErrAmountRequired
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, ErrAmountNotNumeric
		}
		return f, nil
	default:
		return 0, ErrAmountNotNumeric
	}
}

// NormalizeAmountCents converts the ambiguous caller amount into centavos.
//
// The same rule applies to every gateway: values strictly greater than 1000
// are treated as centavos and rounded to the nearest integer; values up to
// 1000 are treated as decimal reais and truncated toward zero at the second
// decimal digit, so a fractional-cent artifact never inflates the charge.
// The rule is ambiguous around 1000 (R$ 1000,00 vs 1000 centavos); callers
// sending whole-real values above R$ 10,00 must send centavos.
func NormalizeAmountCents(value float64) int64 {
	if value > centsUnitThreshold {
		return int64(math.Round(value))
	}
	return truncateToCents(value)
}

// truncateToCents truncates on the decimal digits of the value's shortest
// representation, so 19.9 becomes 1990 rather than 1989 via float drift.
func truncateToCents(value float64) int64 {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	fracPart += "00"

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0
	}
	frac, err := strconv.ParseInt(fracPart[:2], 10, 64)
	if err != nil {
		return 0
	}

	cents := whole*100 + frac
	if neg {
		cents = -cents
	}
	return cents
}

// CentsFromDecimal converts a provider-reported decimal amount to centavos.
// Provider responses are unambiguous, so this rounds instead of truncating:
// 19.9 * 100 is 1989.99... in float64 and must come back as 1990.
func CentsFromDecimal(v float64) int64 {
	return int64(math.Round(v * 100))
}

// AmountDecimal converts centavos back to decimal reais.
func AmountDecimal(cents int64) float64 {
	return float64(cents) / 100
}

// FormatAmountBRL renders centavos with the decimal comma ("1990" -> "19,90").
func FormatAmountBRL(cents int64) string {
	return fmt.Sprintf("%d,%02d", cents/100, cents%100)
}
