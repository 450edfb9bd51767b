package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/KaramelBytes/boxoffice-cli/internal/chart"
	"github.com/KaramelBytes/boxoffice-cli/internal/movie"
	"github.com/KaramelBytes/boxoffice-cli/internal/utils"
)

// Options controls the summary report.
type Options struct {
	// TopN is the number of highest grossing titles to list.
	TopN int
	// Outlier detection via robust Z-score (MAD); counts |z| > OutlierThreshold.
	Outliers         bool
	OutlierThreshold float64
}

// DefaultOptions returns reasonable defaults for a box-office summary.
func DefaultOptions() Options {
	return Options{TopN: 10, Outliers: true, OutlierThreshold: 3.5}
}

// Input is what a report is computed from.
type Input struct {
	Name string
	// Rows is the number of raw rows before filtering.
	Rows    int
	Filters []string
	// Kept is the filtered collection that was charted.
	Kept  *movie.Collection
	Chart *chart.Data
}

// Report is a markdown-friendly summary of a filtered box-office dataset.
type Report struct {
	Name          string
	Rows          int
	Kept          int
	WithFinancial int
	Filters       []string
	Metrics       []MetricSummary
	FirstOpening  time.Time
	LastOpening   time.Time
	Undated       int
	Trend         *TrendSummary
	Top           []TopGrosser
	Warnings      []string
}

// MetricSummary captures statistics for one numeric field.
type MetricSummary struct {
	Field   movie.Field
	Count   int
	Missing int
	Min     float64
	Max     float64
	Mean    float64
	Median  float64
	Std     float64
	// Outliers (robust Z via MAD)
	OutliersCount    int
	OutliersMaxAbsZ  float64
	OutlierThreshold float64
}

// TrendSummary describes the fitted line of the chart.
type TrendSummary struct {
	XField      movie.Field
	YField      movie.Field
	N           int
	Slope       float64
	Intercept   float64
	RSquared    float64
	Correlation float64
	Degenerate  bool
	From, To    chart.Point
}

// TopGrosser is one row of the top-grossing table.
type TopGrosser struct {
	Title   string
	Gross   int64
	Opening string
}

// Summarize computes a Report.
func Summarize(in Input, opt Options) *Report {
	recs := in.Kept.Records()
	rep := &Report{Name: in.Name, Rows: in.Rows, Kept: len(recs), Filters: in.Filters}

	for _, f := range []movie.Field{
		movie.FieldTotalGross, movie.FieldMaxTheaters, movie.FieldSimplePressRating, movie.FieldTotalGrossDoubleSqrt,
	} {
		rep.Metrics = append(rep.Metrics, summarizeField(recs, f, opt))
	}

	for _, r := range recs {
		if r.HasFinancialData() {
			rep.WithFinancial++
		}
		d, ok := r.OpeningDate()
		if !ok {
			rep.Undated++
			continue
		}
		if rep.FirstOpening.IsZero() || d.Before(rep.FirstOpening) {
			rep.FirstOpening = d
		}
		if d.After(rep.LastOpening) {
			rep.LastOpening = d
		}
	}

	if in.Chart != nil {
		rep.Trend = summarizeTrend(in.Chart)
	}
	rep.Top = topGrossers(recs, opt.TopN)

	if rep.Kept == 0 {
		rep.Warnings = append(rep.Warnings, "no records left after filtering; chart has empty axes")
	}
	if rep.Trend != nil && rep.Trend.Degenerate {
		rep.Warnings = append(rep.Warnings, "fewer than two distinct x values; trend is a flat line")
	}
	if rep.Undated > 0 {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("%d records without a readable opening date sort first", rep.Undated))
	}
	return rep
}

func summarizeField(recs []movie.Record, f movie.Field, opt Options) MetricSummary {
	s := MetricSummary{Field: f}
	vals := make([]float64, 0, len(recs))
	for _, r := range recs {
		v, ok := r.Value(f)
		if !ok {
			s.Missing++
			continue
		}
		vals = append(vals, v)
	}
	s.Count = len(vals)
	if s.Count == 0 {
		return s
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	s.Min, s.Max = sorted[0], sorted[len(sorted)-1]
	s.Median = stat.Quantile(0.5, stat.LinInterp, sorted, nil)
	if s.Count > 1 {
		s.Mean, s.Std = stat.MeanStdDev(vals, nil)
	} else {
		s.Mean = vals[0]
	}
	if opt.Outliers && s.Count >= 8 {
		thr := opt.OutlierThreshold
		if thr <= 0 {
			thr = 3.5
		}
		median, mad := medianMAD(sorted)
		if mad > 0 {
			for _, v := range vals {
				az := math.Abs(0.6745 * (v - median) / mad)
				if az > thr {
					s.OutliersCount++
				}
				if az > s.OutliersMaxAbsZ {
					s.OutliersMaxAbsZ = az
				}
			}
		}
		s.OutlierThreshold = thr
	}
	return s
}

func summarizeTrend(d *chart.Data) *TrendSummary {
	ts := &TrendSummary{
		XField:     d.XField,
		YField:     d.YField,
		N:          d.Trend.N,
		Slope:      d.Trend.Slope,
		Intercept:  d.Trend.Intercept,
		RSquared:   d.Trend.RSquared,
		Degenerate: d.Trend.Degenerate,
		From:       d.TrendEndpoints[0],
		To:         d.TrendEndpoints[1],
	}
	if !ts.Degenerate {
		xs, ys := d.XYs()
		if r := stat.Correlation(xs, ys, nil); !math.IsNaN(r) {
			ts.Correlation = r
		}
	}
	return ts
}

func topGrossers(recs []movie.Record, n int) []TopGrosser {
	var out []TopGrosser
	for _, r := range recs {
		g, ok := r.TotalGross()
		if !ok {
			continue
		}
		tg := TopGrosser{Gross: g}
		tg.Title, _ = r.Title()
		if d, ok := r.OpeningDate(); ok {
			tg.Opening = movie.FormatDate(d)
		}
		out = append(out, tg)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Gross > out[j].Gross })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// medianMAD computes median and MAD (median absolute deviation) of sorted values.
func medianMAD(sorted []float64) (median, mad float64) {
	if len(sorted) == 0 {
		return 0, 0
	}
	median = stat.Quantile(0.5, stat.LinInterp, sorted, nil)
	dev := make([]float64, len(sorted))
	for i, v := range sorted {
		dev[i] = math.Abs(v - median)
	}
	sort.Float64s(dev)
	mad = stat.Quantile(0.5, stat.LinInterp, dev, nil)
	return
}

// Markdown renders a compact report suitable for terminals or standalone docs.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d (kept %d)\n", r.Rows, r.Kept))
	b.WriteString(fmt.Sprintf("With financial data: %d\n", r.WithFinancial))
	if len(r.Filters) > 0 {
		b.WriteString(fmt.Sprintf("Filters: %s\n", strings.Join(r.Filters, " → ")))
	}
	if !r.FirstOpening.IsZero() {
		b.WriteString(fmt.Sprintf("Openings: %s to %s\n", movie.FormatDate(r.FirstOpening), movie.FormatDate(r.LastOpening)))
	}

	b.WriteString("\n[METRICS]\n")
	for _, m := range r.Metrics {
		b.WriteString(fmt.Sprintf("- %s: n=%d, missing %d", m.Field, m.Count, m.Missing))
		if m.Count > 0 {
			if m.Field == movie.FieldTotalGross {
				b.WriteString(fmt.Sprintf(" — min %s, max %s, mean %s, median %s",
					utils.Monetize(m.Min, 0), utils.Monetize(m.Max, 0), utils.Monetize(m.Mean, 0), utils.Monetize(m.Median, 0)))
			} else {
				b.WriteString(fmt.Sprintf(" — min %.4g, max %.4g, mean %.4g, median %.4g, std %.4g", m.Min, m.Max, m.Mean, m.Median, m.Std))
			}
			if m.OutlierThreshold > 0 {
				b.WriteString(fmt.Sprintf("; outliers: %d above |z|>%.1f", m.OutliersCount, m.OutlierThreshold))
				if m.OutliersMaxAbsZ > 0 {
					b.WriteString(fmt.Sprintf(" (max |z|≈%.2f)", m.OutliersMaxAbsZ))
				}
			}
		}
		b.WriteString("\n")
	}

	if t := r.Trend; t != nil {
		b.WriteString("\n[TREND]\n")
		b.WriteString(fmt.Sprintf("- %s ~ %s (n=%d)\n", t.YField, t.XField, t.N))
		if t.Degenerate {
			b.WriteString(fmt.Sprintf("- flat line at y=%.4g\n", t.Intercept))
		} else {
			b.WriteString(fmt.Sprintf("- y = %.4g + %.4g·x; R²=%.3f, r=%.3f\n", t.Intercept, t.Slope, t.RSquared, t.Correlation))
		}
		b.WriteString(fmt.Sprintf("- endpoints: (%.4g, %.4g) → (%.4g, %.4g)\n", t.From.X, t.From.Y, t.To.X, t.To.Y))
	}

	if len(r.Top) > 0 {
		b.WriteString("\n[TOP GROSSERS]\n")
		b.WriteString("| # | Title | Total Gross | Opening |\n")
		b.WriteString("| --- | --- | --- | --- |\n")
		for i, tg := range r.Top {
			b.WriteString(fmt.Sprintf("| %d | %s | %s | %s |\n", i+1, safeVal(tg.Title), utils.Monetize(float64(tg.Gross), 0), tg.Opening))
		}
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func safeVal(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(untitled)"
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}
