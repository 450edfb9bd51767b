package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/boxoffice-cli/internal/chart"
	"github.com/KaramelBytes/boxoffice-cli/internal/pipeline"
	"github.com/KaramelBytes/boxoffice-cli/internal/utils"
)

var (
	chartOutput   string
	chartRenderer string
	chartTitle    string
	chartWidth    int
	chartHeight   int
	chartLabels   bool
	chartJSONPath string
	chartDryRun   bool
)

var chartCmd = &cobra.Command{
	Use:   "chart [source]",
	Short: "Render a scatter chart with a trend line",
	Long: `Fetch a box-office table, filter and sort it, fit a least-squares line and
render a scatter chart. The format follows the output extension (svg, png, pdf).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := sourceArg(args)
		if src == "" {
			return fmt.Errorf("no source given and none configured")
		}
		opt, err := pipelineOptions(cmd)
		if err != nil {
			return err
		}

		ro := chart.DefaultRenderOptions()
		name := chart.RendererGonum
		output := chartOutput
		if cfg != nil {
			if cfg.Renderer != "" {
				name = cfg.Renderer
			}
			if output == "" {
				output = cfg.Output
			}
			if cfg.Width > 0 {
				ro.Width = cfg.Width
			}
			if cfg.Height > 0 {
				ro.Height = cfg.Height
			}
			ro.Title = cfg.Title
			ro.Labels = cfg.Labels
		}
		f := cmd.Flags()
		if f.Changed("renderer") {
			name = chartRenderer
		}
		if f.Changed("title") {
			ro.Title = chartTitle
		}
		if f.Changed("width") {
			ro.Width = chartWidth
		}
		if f.Changed("height") {
			ro.Height = chartHeight
		}
		if f.Changed("labels") {
			ro.Labels = chartLabels
		}
		if ro.Width <= 0 || ro.Height <= 0 {
			return fmt.Errorf("invalid size %dx%d", ro.Width, ro.Height)
		}
		if output == "" {
			output = "chart.svg"
		}
		ro.XLabel = opt.XField.Label()
		ro.YLabel = opt.YField.Label()
		if format := chart.FormatFromPath(output); format != "" {
			ro.Format = format
		}

		// Validate before fetching anything.
		r, err := chart.GetRenderer(name)
		if err != nil {
			return err
		}
		if err := chart.CheckFormat(r, ro.Format); err != nil {
			return fmt.Errorf("%s renderer: %w", name, err)
		}

		res, err := pipeline.Run(cmd.Context(), src, fetchOptions(sheetName()), opt)
		if err != nil {
			return err
		}

		if chartJSONPath != "" {
			b, err := utils.PrettyJSON(res.Chart)
			if err != nil {
				return fmt.Errorf("encode chart data: %w", err)
			}
			if err := utils.SafeWriteFile(chartJSONPath, b); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote chart data to %s\n", chartJSONPath)
		}
		if chartDryRun {
			fmt.Printf("[DRY-RUN] %d of %d records would be plotted; y = %.4g + %.4g·x\n",
				len(res.Chart.Points), res.All.Len(), res.Chart.Trend.Intercept, res.Chart.Trend.Slope)
			return nil
		}

		var buf bytes.Buffer
		if err := res.Render(&buf, r, ro); err != nil {
			return err
		}
		if err := utils.SafeWriteFile(output, buf.Bytes()); err != nil {
			return err
		}
		if res.Kept.Len() == 0 {
			fmt.Fprintln(os.Stderr, "⚠ Warning: no records passed the filters; chart has empty axes")
		}
		fmt.Printf("✓ Wrote %s chart of %d movies to %s\n", ro.Format, len(res.Chart.Points), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)
	addFilterFlags(chartCmd)
	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", "", "output file; extension picks svg/png/pdf (overrides config)")
	chartCmd.Flags().StringVar(&chartRenderer, "renderer", "", fmt.Sprintf("chart renderer: %s (overrides config)", strings.Join(chart.RendererNames(), "|")))
	chartCmd.Flags().StringVar(&chartTitle, "title", "", "chart title (overrides config)")
	chartCmd.Flags().IntVar(&chartWidth, "width", 0, "chart width in points (overrides config)")
	chartCmd.Flags().IntVar(&chartHeight, "height", 0, "chart height in points (overrides config)")
	chartCmd.Flags().BoolVar(&chartLabels, "labels", true, "draw movie titles next to points (overrides config)")
	chartCmd.Flags().StringVar(&chartJSONPath, "json", "", "also write the chart data as JSON to this path")
	chartCmd.Flags().BoolVar(&chartDryRun, "dry-run", false, "fetch and fit without rendering")
}
