package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/phuslu/log"

	"github.com/KaramelBytes/boxoffice-cli/internal/analysis"
	"github.com/KaramelBytes/boxoffice-cli/internal/chart"
	"github.com/KaramelBytes/boxoffice-cli/internal/movie"
	"github.com/KaramelBytes/boxoffice-cli/internal/source"
	"github.com/KaramelBytes/boxoffice-cli/internal/utils"
)

// Options selects the filters and the plotted fields. Zero thresholds are not applied.
type Options struct {
	RequireFinancial bool
	MinTheaters      int
	MaxTheaters      int
	MinGross         int64
	SortDescending   bool
	XField           movie.Field
	YField           movie.Field
}

// DefaultOptions reproduces the stock chart: movies with financial data shown
// in at least 50 theaters, double-sqrt gross over theater count.
func DefaultOptions() Options {
	return Options{
		RequireFinancial: true,
		MinTheaters:      50,
		XField:           movie.FieldMaxTheatersSqrt,
		YField:           movie.FieldTotalGrossDoubleSqrt,
	}
}

// Result holds every stage of one run.
type Result struct {
	Dataset *source.Dataset
	All     *movie.Collection
	Kept    *movie.Collection
	Filters []string
	Chart   *chart.Data
}

// Run fetches location and processes it. Fetching is the only blocking step.
func Run(ctx context.Context, location string, fetch source.Options, opt Options) (*Result, error) {
	log.Info().Str("source", location).Msg("retrieving raw data")
	ds, err := source.Fetch(ctx, location, fetch)
	if err != nil {
		return nil, err
	}
	return Process(ds, opt), nil
}

// Process maps, filters, sorts and charts an already loaded dataset.
func Process(ds *source.Dataset, opt Options) *Result {
	res := &Result{Dataset: ds}

	log.Info().Int("rows", len(ds.Rows)).Msg("mapping raw data to movie records")
	res.All = movie.NewCollection(ds.Rows)

	log.Info().Msg("filtering and sorting records")
	kept := res.All
	step := func(name string, next *movie.Collection) {
		log.Debug().Str("filter", name).Int("before", kept.Len()).Int("after", next.Len()).Msg("filter applied")
		res.Filters = append(res.Filters, name)
		kept = next
	}
	if opt.RequireFinancial {
		step("has financial data", kept.FilterByHasFinancialData())
	}
	if opt.MinTheaters > 0 {
		step(fmt.Sprintf("theaters ≥ %d", opt.MinTheaters), kept.FilterByMinTheaters(opt.MinTheaters))
	}
	if opt.MaxTheaters > 0 {
		step(fmt.Sprintf("theaters ≤ %d", opt.MaxTheaters), kept.FilterByMaxTheaters(opt.MaxTheaters))
	}
	if opt.MinGross > 0 {
		step(fmt.Sprintf("gross ≥ %s", utils.Monetize(float64(opt.MinGross), 0)), kept.FilterByMinGross(opt.MinGross))
	}
	res.Kept = kept.SortByOpeningDate(opt.SortDescending)

	res.Chart = chart.Build(res.Kept.Records(), opt.XField, opt.YField)
	log.Info().
		Str("chart", res.Chart.ID).
		Int("kept", res.Kept.Len()).
		Int("points", len(res.Chart.Points)).
		Float64("slope", res.Chart.Trend.Slope).
		Float64("intercept", res.Chart.Trend.Intercept).
		Msg("chart data ready")
	return res
}

// Render draws the chart with r.
func (res *Result) Render(w io.Writer, r chart.Renderer, opt chart.RenderOptions) error {
	log.Info().Str("chart", res.Chart.ID).Str("format", opt.Format).Msg("drawing data chart")
	if err := r.Render(w, res.Chart, opt); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// Report summarizes the kept records and the trend.
func (res *Result) Report(opt analysis.Options) *analysis.Report {
	name := ""
	if res.Dataset != nil {
		name = res.Dataset.Name
	}
	return analysis.Summarize(analysis.Input{
		Name:    name,
		Rows:    res.All.Len(),
		Filters: res.Filters,
		Kept:    res.Kept,
		Chart:   res.Chart,
	}, opt)
}
