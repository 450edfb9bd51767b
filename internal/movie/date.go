package movie

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical textual form of an opening date.
const DateLayout = "2006-01-02"

// NormalizeDate converts v into a canonical date. time.Time values are returned
// unchanged. Strings must look like M/D/YY; the two-digit year is read as
// 2000+YY, so years outside 2000-2099 cannot be expressed. Anything else is
// reported as absent.
func NormalizeDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case *time.Time:
		if d == nil {
			return time.Time{}, false
		}
		return *d, true
	case string:
		return parseShortDate(d)
	default:
		return time.Time{}, false
	}
}

func parseShortDate(s string) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	// "1/2/14 0:00" carries a time-of-day suffix on the year.
	yearPart := strings.Fields(parts[2])
	if len(yearPart) == 0 || len(yearPart[0]) > 2 {
		return time.Time{}, false
	}
	month, ok := atoiStrict(parts[0])
	if !ok || month < 1 || month > 12 {
		return time.Time{}, false
	}
	day, ok := atoiStrict(parts[1])
	if !ok || day < 1 {
		return time.Time{}, false
	}
	yy, ok := atoiStrict(yearPart[0])
	if !ok {
		return time.Time{}, false
	}
	t := time.Date(2000+yy, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func atoiStrict(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string { return t.Format(DateLayout) }
