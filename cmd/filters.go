package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/boxoffice-cli/internal/movie"
	"github.com/KaramelBytes/boxoffice-cli/internal/pipeline"
)

// Filter flags shared by chart, list and summarize.
var (
	fltRequireFinancial bool
	fltMinTheaters      int
	fltMaxTheaters      int
	fltMinGross         int64
	fltDescending       bool
	fltSheet            string
	fltX                string
	fltY                string
)

func addFilterFlags(c *cobra.Command) {
	c.Flags().BoolVar(&fltRequireFinancial, "require-financial", true, "keep only records with a total gross (overrides config)")
	c.Flags().IntVar(&fltMinTheaters, "min-theaters", 0, "minimum max-theater count, 0 disables (overrides config)")
	c.Flags().IntVar(&fltMaxTheaters, "max-theaters", 0, "maximum max-theater count, 0 disables (overrides config)")
	c.Flags().Int64Var(&fltMinGross, "min-gross", 0, "minimum total gross in dollars, 0 disables (overrides config)")
	c.Flags().BoolVar(&fltDescending, "desc", false, "sort by opening date, newest first (overrides config)")
	c.Flags().StringVar(&fltSheet, "sheet", "", "sheet name for XLSX input (default first sheet)")
	c.Flags().StringVar(&fltX, "x", "", "field plotted on the x axis (overrides config)")
	c.Flags().StringVar(&fltY, "y", "", "field plotted on the y axis (overrides config)")
}

// sourceArg picks the positional source or the configured one.
func sourceArg(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if cfg != nil {
		return cfg.Source
	}
	return ""
}

// pipelineOptions merges configuration with the flags that were set on c.
func pipelineOptions(c *cobra.Command) (pipeline.Options, error) {
	opt := pipeline.DefaultOptions()
	xName, yName := string(opt.XField), string(opt.YField)
	if cfg != nil {
		opt.RequireFinancial = cfg.RequireFinancial
		opt.MinTheaters = cfg.MinTheaters
		opt.MaxTheaters = cfg.MaxTheaters
		opt.MinGross = cfg.MinGross
		opt.SortDescending = cfg.SortDescending
		if cfg.XField != "" {
			xName = cfg.XField
		}
		if cfg.YField != "" {
			yName = cfg.YField
		}
	}
	f := c.Flags()
	if f.Changed("require-financial") {
		opt.RequireFinancial = fltRequireFinancial
	}
	if f.Changed("min-theaters") {
		opt.MinTheaters = fltMinTheaters
	}
	if f.Changed("max-theaters") {
		opt.MaxTheaters = fltMaxTheaters
	}
	if f.Changed("min-gross") {
		opt.MinGross = fltMinGross
	}
	if f.Changed("desc") {
		opt.SortDescending = fltDescending
	}
	if f.Changed("x") {
		xName = fltX
	}
	if f.Changed("y") {
		yName = fltY
	}
	var err error
	if opt.XField, err = movie.ParseField(xName); err != nil {
		return opt, err
	}
	if opt.YField, err = movie.ParseField(yName); err != nil {
		return opt, err
	}
	return opt, nil
}

func sheetName() string {
	if fltSheet != "" {
		return fltSheet
	}
	if cfg != nil {
		return cfg.Sheet
	}
	return ""
}
