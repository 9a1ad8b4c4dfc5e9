package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParseAmount converts a raw feed value into a decimal amount.
// Numeric input passes through unchanged, negatives included; filtering
// is the caller's job. Strings are stripped of the "R$" marker and
// parsed with separator disambiguation:
//
//	"1.234,56" -> 1234.56  (period thousands, comma decimal)
//	"1234,56"  -> 1234.56  (comma decimal)
//	"1234.56"  -> 1234.56  (parsed as-is)
//
// Anything unparseable, nil or empty yields 0.
//
// A period followed by exactly three digits ("1.250") is inherently
// ambiguous and parses as 1.25, matching the upstream feeds' historical
// interpretation.
func ParseAmount(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	}

	s := strings.TrimSpace(strings.ReplaceAll(fmt.Sprintf("%v", v), "R$", ""))
	if s == "" {
		return 0
	}
	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
