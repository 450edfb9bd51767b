package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// IsWholeNumber reports whether v is a finite, non-negative number without a
// fractional part. Strings are parsed in full after trimming surrounding space.
func IsWholeNumber(v any) bool {
	_, ok := wholeFloat(v)
	return ok
}

// WholeNumber applies the IsWholeNumber gate and returns the value as int64.
func WholeNumber(v any) (int64, bool) {
	f, ok := wholeFloat(v)
	if !ok || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func wholeFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		return wholeFloat(string(n))
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = x
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f < 0 || f != math.Trunc(f) {
		return 0, false
	}
	return f, true
}

// StripNonNumerics drops every non-digit from text and parses what is left.
// Text without digits yields no value rather than zero.
func StripNonNumerics(text string) (int64, bool) {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Monetize formats v as dollars with comma separators every three digits.
func Monetize(v float64, decimalPlaces int) string {
	return MonetizeGroups(v, decimalPlaces, 3)
}

// MonetizeGroups formats v as dollars, inserting a comma every groupSize integer
// digits. Negative decimalPlaces are treated as zero; groupSize <= 0 means 3.
func MonetizeGroups(v float64, decimalPlaces, groupSize int) string {
	if decimalPlaces < 0 {
		decimalPlaces = 0
	}
	if groupSize <= 0 {
		groupSize = 3
	}
	fixed := decimal.NewFromFloat(v).StringFixed(int32(decimalPlaces))
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, frac := fixed, ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, frac = fixed[:i], fixed[i:]
	}
	if sign != "" && strings.Trim(intPart+frac, "0.") == "" {
		sign = ""
	}
	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte('$')
	lead := len(intPart) % groupSize
	if lead == 0 {
		lead = groupSize
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += groupSize {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+groupSize])
	}
	b.WriteString(frac)
	return b.String()
}
