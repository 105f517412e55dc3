// Package numeric provides coercion and rounding helpers for user-entered values.
package numeric

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/opsforge/decision-impact/pkg/constants"
)

// Coerce converts a raw field value into a finite float64, falling back when
// the value is unset, non-numeric, or non-finite. Fields arrive from the UI
// as JSON numbers, strings (possibly empty while the user is typing), or
// null; every one of those must resolve to a number before it reaches a
// formula. Coerce never fails.
func Coerce(raw interface{}, fallback float64) float64 {
	switch v := raw.(type) {
	case float64:
		return finiteOr(v, fallback)
	case float32:
		return finiteOr(float64(v), fallback)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		if parsed, err := strconv.ParseFloat(v.String(), 64); err == nil {
			return finiteOr(parsed, fallback)
		}
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return fallback
		}
		if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return finiteOr(parsed, fallback)
		}
	}
	return fallback
}

// CoerceFloat applies the finite-number rule to a value that is already a
// float64, replacing NaN and infinities with the fallback.
func CoerceFloat(value, fallback float64) float64 {
	return finiteOr(value, fallback)
}

func finiteOr(value, fallback float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fallback
	}
	return value
}

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
