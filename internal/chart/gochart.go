package chart

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// goChartRenderer draws with github.com/wcharczuk/go-chart.
type goChartRenderer struct{}

func (goChartRenderer) Formats() []string { return []string{"svg", "png"} }

func (g goChartRenderer) Render(w io.Writer, d *Data, opt RenderOptions) error {
	if err := CheckFormat(g, opt.Format); err != nil {
		return err
	}
	var series []gochart.Series
	if len(d.Points) > 0 {
		xs, ys := d.XYs()
		series = append(series, gochart.ContinuousSeries{
			Name: "movies",
			Style: gochart.Style{
				StrokeWidth: gochart.Disabled,
				DotWidth:    opt.DotRadius,
				DotColor:    drawing.Color{R: dotColor.R, G: dotColor.G, B: dotColor.B, A: dotColor.A},
			},
			XValues: xs,
			YValues: ys,
		})
		if opt.Labels {
			ann := gochart.AnnotationSeries{Name: "titles"}
			for _, p := range d.Points {
				if p.Label == "" {
					continue
				}
				ann.Annotations = append(ann.Annotations, gochart.Value2{XValue: p.X, YValue: p.Y, Label: p.Label})
			}
			if len(ann.Annotations) > 0 {
				series = append(series, ann)
			}
		}
	}
	series = append(series, gochart.ContinuousSeries{
		Name: "trend",
		Style: gochart.Style{
			StrokeWidth: 2,
			StrokeColor: drawing.Color{R: trendColor.R, G: trendColor.G, B: trendColor.B, A: trendColor.A},
		},
		XValues: []float64{d.TrendEndpoints[0].X, d.TrendEndpoints[1].X},
		YValues: []float64{d.TrendEndpoints[0].Y, d.TrendEndpoints[1].Y},
	})

	c := gochart.Chart{
		Title:  opt.Title,
		Width:  opt.Width,
		Height: opt.Height,
		XAxis: gochart.XAxis{
			Name:  opt.XLabel,
			Range: &gochart.ContinuousRange{Min: d.XDomain.Min, Max: axisMax(d.XDomain)},
		},
		YAxis: gochart.YAxis{
			Name:  opt.YLabel,
			Range: &gochart.ContinuousRange{Min: d.YDomain.Min, Max: axisMax(d.YDomain)},
		},
		Series: series,
	}
	provider := gochart.SVG
	if opt.Format == "png" {
		provider = gochart.PNG
	}
	if err := c.Render(provider, w); err != nil {
		return fmt.Errorf("render %s: %w", opt.Format, err)
	}
	return nil
}
