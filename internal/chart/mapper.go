package chart

import (
	"github.com/google/uuid"

	"github.com/KaramelBytes/boxoffice-cli/internal/movie"
	"github.com/KaramelBytes/boxoffice-cli/internal/regression"
)

// Point is a plotted record in domain units.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// Domain is a closed axis interval in domain units.
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Data is everything a renderer needs: points, axis domains and the trend line,
// all in domain units.
type Data struct {
	ID             string          `json:"id"`
	XField         movie.Field     `json:"xField"`
	YField         movie.Field     `json:"yField"`
	Points         []Point         `json:"points"`
	XDomain        Domain          `json:"xDomain"`
	YDomain        Domain          `json:"yDomain"`
	Trend          regression.Line `json:"trend"`
	TrendEndpoints [2]Point        `json:"trendEndpoints"`
}

// Build maps records onto xField/yField. Records missing either value are not
// plotted. Both domains start at 0 and end at the largest plotted value, and
// the trend line is fitted on exactly the plotted points.
func Build(records []movie.Record, xField, yField movie.Field) *Data {
	d := &Data{
		ID:     uuid.NewString(),
		XField: xField,
		YField: yField,
		Points: make([]Point, 0, len(records)),
	}
	xy := make([]regression.XY, 0, len(records))
	for _, r := range records {
		x, okx := r.Value(xField)
		y, oky := r.Value(yField)
		if !okx || !oky {
			continue
		}
		label, _ := r.Title()
		d.Points = append(d.Points, Point{X: x, Y: y, Label: label})
		xy = append(xy, regression.XY{X: x, Y: y})
		if x > d.XDomain.Max {
			d.XDomain.Max = x
		}
		if y > d.YDomain.Max {
			d.YDomain.Max = y
		}
	}
	d.Trend = regression.Fit(xy)
	for i, x := range []float64{d.XDomain.Min, d.XDomain.Max} {
		d.TrendEndpoints[i] = Point{X: x, Y: d.Trend.Predict(x)}
	}
	return d
}

// XYs returns the plotted coordinates without labels.
func (d *Data) XYs() ([]float64, []float64) {
	xs := make([]float64, len(d.Points))
	ys := make([]float64, len(d.Points))
	for i, p := range d.Points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}
