package chart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	dotColor   = color.RGBA{R: 0x73, G: 0x86, B: 0xb2, A: 0xff}
	trendColor = color.RGBA{R: 0xff, G: 0x99, B: 0x33, A: 0xff}
)

// gonumRenderer draws with gonum.org/v1/plot.
type gonumRenderer struct{}

func (gonumRenderer) Formats() []string { return []string{"svg", "png", "pdf"} }

func (g gonumRenderer) Render(w io.Writer, d *Data, opt RenderOptions) error {
	if err := CheckFormat(g, opt.Format); err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = opt.Title
	p.X.Label.Text = opt.XLabel
	p.Y.Label.Text = opt.YLabel
	p.Add(plotter.NewGrid())

	if len(d.Points) > 0 {
		pts := make(plotter.XYs, len(d.Points))
		labels := make([]string, len(d.Points))
		for i, pt := range d.Points {
			pts[i].X, pts[i].Y = pt.X, pt.Y
			labels[i] = pt.Label
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("scatter: %w", err)
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Color = dotColor
		sc.GlyphStyle.Radius = vg.Points(opt.DotRadius)
		p.Add(sc)

		if opt.Labels {
			lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
			if err != nil {
				return fmt.Errorf("labels: %w", err)
			}
			p.Add(lbl)
		}
	}

	trend, err := plotter.NewLine(plotter.XYs{
		{X: d.TrendEndpoints[0].X, Y: d.TrendEndpoints[0].Y},
		{X: d.TrendEndpoints[1].X, Y: d.TrendEndpoints[1].Y},
	})
	if err != nil {
		return fmt.Errorf("trend line: %w", err)
	}
	trend.LineStyle.Color = trendColor
	trend.LineStyle.Width = vg.Points(2)
	p.Add(trend)

	// Add widens the axes to fit the data; pin them back to the domains.
	p.X.Min, p.X.Max = d.XDomain.Min, axisMax(d.XDomain)
	p.Y.Min, p.Y.Max = d.YDomain.Min, axisMax(d.YDomain)

	wt, err := p.WriterTo(vg.Points(float64(opt.Width)), vg.Points(float64(opt.Height)), opt.Format)
	if err != nil {
		return fmt.Errorf("prepare %s: %w", opt.Format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", opt.Format, err)
	}
	return nil
}
