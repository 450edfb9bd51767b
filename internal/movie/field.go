package movie

import (
	"errors"
	"fmt"
	"strings"
)

// Field names a numeric record column that can be placed on a chart axis.
type Field string

const (
	FieldRank                 Field = "rank"
	FieldTotalGross           Field = "totalGross"
	FieldTotalGrossDoubleSqrt Field = "totalGrossDoubleSqrt"
	FieldMaxTheaters          Field = "maxTheaters"
	FieldMaxTheatersSqrt      Field = "maxTheatersSqrt"
	FieldSimplePressRating    Field = "simplePressRating"
)

// ErrUnknownField is returned by ParseField for names outside Fields.
var ErrUnknownField = errors.New("unknown field")

// Fields lists every plottable field.
func Fields() []Field {
	return []Field{
		FieldRank, FieldTotalGross, FieldTotalGrossDoubleSqrt,
		FieldMaxTheaters, FieldMaxTheatersSqrt, FieldSimplePressRating,
	}
}

// ParseField resolves a field name, ignoring case and the "simplePR" shorthand.
func ParseField(name string) (Field, error) {
	n := normalizeHeader(name)
	if n == "simplepr" {
		return FieldSimplePressRating, nil
	}
	for _, f := range Fields() {
		if normalizeHeader(string(f)) == n {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (use one of %s)", ErrUnknownField, name, fieldList())
}

func fieldList() string {
	names := make([]string, 0, len(Fields()))
	for _, f := range Fields() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// Label is a human-readable axis title.
func (f Field) Label() string {
	switch f {
	case FieldRank:
		return "Rank"
	case FieldTotalGross:
		return "Total Gross ($)"
	case FieldTotalGrossDoubleSqrt:
		return "Total Gross (double sqrt)"
	case FieldMaxTheaters:
		return "Max Theaters"
	case FieldMaxTheatersSqrt:
		return "Max Theaters (sqrt)"
	case FieldSimplePressRating:
		return "Press Rating"
	default:
		return string(f)
	}
}

// Value returns the field as float64, or false when it is absent.
func (r Record) Value(f Field) (float64, bool) {
	switch f {
	case FieldRank:
		v, ok := r.Rank()
		return float64(v), ok
	case FieldTotalGross:
		v, ok := r.TotalGross()
		return float64(v), ok
	case FieldTotalGrossDoubleSqrt:
		return r.TotalGrossDoubleSqrt()
	case FieldMaxTheaters:
		v, ok := r.MaxTheaters()
		return float64(v), ok
	case FieldMaxTheatersSqrt:
		v, ok := r.MaxTheatersSqrt()
		return float64(v), ok
	case FieldSimplePressRating:
		return r.SimplePressRating()
	default:
		return 0, false
	}
}
