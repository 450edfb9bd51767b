package movie

import (
	"encoding/json"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/KaramelBytes/boxoffice-cli/internal/utils"
)

// RawRow is one input row keyed by header name.
type RawRow map[string]string

// Get returns the first non-missing value among names. Header matching ignores
// case, spaces, underscores and dashes; when several headers normalize alike,
// the lexically smallest wins.
func (r RawRow) Get(names ...string) (string, bool) {
	for _, n := range names {
		if v, ok := r[n]; ok {
			return v, true
		}
	}
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, n := range names {
		nn := normalizeHeader(n)
		for _, k := range keys {
			if normalizeHeader(k) == nn {
				return r[k], true
			}
		}
	}
	return "", false
}

func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}

// Record is one movie row. It is immutable: every accessor reports whether the
// value is present.
type Record struct {
	rank          *int
	title         *string
	totalGross    *int64
	openingDate   *time.Time
	maxTheaters   *int
	pressRating   *float64
	grossDoubleSq *float64
}

// whole-dollar currency text such as "$12,345,678"
var currencyRe = regexp.MustCompile(`^\$?\s*\d{1,3}(,\d{3})*$`)

// BuildRecord maps a raw row into a Record. Malformed fields become absent.
func BuildRecord(row RawRow) Record {
	var r Record
	if v, ok := row.Get("rank"); ok {
		if n, ok := positiveInt(v); ok {
			r.rank = &n
		}
	}
	if v, ok := row.Get("title"); ok && strings.TrimSpace(v) != "" {
		t := v
		r.title = &t
	}
	if v, ok := row.Get("totalGross"); ok {
		if g, ok := parseGross(v); ok {
			r.totalGross = &g
			q := math.Sqrt(math.Sqrt(float64(g)))
			r.grossDoubleSq = &q
		}
	}
	if v, ok := row.Get("openingDate"); ok && strings.TrimSpace(v) != "" {
		if d, ok := NormalizeDate(v); ok {
			r.openingDate = &d
		}
	}
	if v, ok := row.Get("maxTheaters"); ok {
		if n, ok := positiveInt(v); ok {
			r.maxTheaters = &n
		}
	}
	if v, ok := row.Get("simplePressRating", "simplePR"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil && f != 0 && !math.IsNaN(f) && !math.IsInf(f, 0) {
			r.pressRating = &f
		}
	}
	return r
}

func parseGross(v string) (int64, bool) {
	if g, ok := utils.WholeNumber(v); ok {
		return g, true
	}
	if currencyRe.MatchString(strings.TrimSpace(v)) {
		return utils.StripNonNumerics(v)
	}
	return 0, false
}

// positiveInt treats zero like a missing value, as the source data does.
func positiveInt(v string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Rank is the chart position; zero or unparseable ranks are absent.
func (r Record) Rank() (int, bool) {
	if r.rank == nil {
		return 0, false
	}
	return *r.rank, true
}

// Title is the movie title, absent when blank.
func (r Record) Title() (string, bool) {
	if r.title == nil {
		return "", false
	}
	return *r.title, true
}

// TotalGross is the whole-dollar domestic gross.
func (r Record) TotalGross() (int64, bool) {
	if r.totalGross == nil {
		return 0, false
	}
	return *r.totalGross, true
}

// OpeningDate is the UTC opening day.
func (r Record) OpeningDate() (time.Time, bool) {
	if r.openingDate == nil {
		return time.Time{}, false
	}
	return *r.openingDate, true
}

// MaxTheaters is the widest theater count; zero is absent.
func (r Record) MaxTheaters() (int, bool) {
	if r.maxTheaters == nil {
		return 0, false
	}
	return *r.maxTheaters, true
}

// SimplePressRating is the press score; zero is absent.
func (r Record) SimplePressRating() (float64, bool) {
	if r.pressRating == nil {
		return 0, false
	}
	return *r.pressRating, true
}

// TotalGrossDoubleSqrt is the fourth root of the total gross, used to compress
// the heavy tail of box-office takings on a linear axis.
func (r Record) TotalGrossDoubleSqrt() (float64, bool) {
	if r.grossDoubleSq == nil {
		return 0, false
	}
	return *r.grossDoubleSq, true
}

// MaxTheatersSqrt mirrors MaxTheaters unchanged. The name is kept for chart
// configurations that refer to it; the value is not square-rooted.
func (r Record) MaxTheatersSqrt() (int, bool) { return r.MaxTheaters() }

// HasFinancialData reports whether the record carries a whole-number gross.
func (r Record) HasFinancialData() bool {
	g, ok := r.TotalGross()
	return ok && utils.IsWholeNumber(g)
}

type recordJSON struct {
	Rank                 *int     `json:"rank"`
	Title                *string  `json:"title"`
	TotalGross           *int64   `json:"totalGross"`
	OpeningDate          *string  `json:"openingDate"`
	MaxTheaters          *int     `json:"maxTheaters"`
	SimplePressRating    *float64 `json:"simplePressRating"`
	TotalGrossDoubleSqrt *float64 `json:"totalGrossDoubleSqrt"`
	MaxTheatersSqrt      *int     `json:"maxTheatersSqrt"`
}

// MarshalJSON encodes absent fields as null.
func (r Record) MarshalJSON() ([]byte, error) {
	out := recordJSON{
		Rank:                 r.rank,
		Title:                r.title,
		TotalGross:           r.totalGross,
		MaxTheaters:          r.maxTheaters,
		SimplePressRating:    r.pressRating,
		TotalGrossDoubleSqrt: r.grossDoubleSq,
		MaxTheatersSqrt:      r.maxTheaters,
	}
	if r.openingDate != nil {
		s := FormatDate(*r.openingDate)
		out.OpeningDate = &s
	}
	return json.Marshal(out)
}
