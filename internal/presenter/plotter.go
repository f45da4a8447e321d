package presenter

import (
	"image/color"

	"github.com/ekinderinn/data-generator/internal/sampler"
	"github.com/ekinderinn/data-generator/pkg/heatmapplotter"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// WindowLo and WindowHi bound both axes. Means lie in [-1,1] and spreads
	// in [0.1,1], so the bulk of every mode fits.
	WindowLo = -3.0
	WindowHi = 3.0

	// MarkerSize is the side of the square drawn at each mode center.
	MarkerSize = 0.1
)

var classColors = [2]color.RGBA{
	{B: 255, A: 255},
	{R: 255, A: 255},
}

// PlotOptions controls the scatter plot.
type PlotOptions struct {
	PointRadius vg.Length
}

// DefaultPlotOptions matches the look of the original viewer.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{PointRadius: vg.Points(1.8)}
}

// PlotSamples draws both classes as scatter points and each mode center as a
// translucent square in its class color.
func PlotSamples(set *sampler.SampleSet, opts PlotOptions) (*plot.Plot, error) {
	l, err := buildLayers(set, opts)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = "Generated Data Samples"
	p.X.Label.Text = "X-axis"
	p.Y.Label.Text = "Y-axis"
	p.Legend.Top = true

	p.Add(l.plotters()...)
	for _, label := range sampler.Labels {
		p.Legend.Add(className(label), l.scatters[label])
	}
	for _, label := range sampler.Labels {
		if n := len(l.markers[label]); n > 0 {
			p.Legend.Add(className(label)+" Mode", l.markers[label][n-1])
		}
	}

	p.X.Min, p.X.Max = WindowLo, WindowHi
	p.Y.Min, p.Y.Max = WindowLo, WindowHi

	return p, nil
}

// layers holds the plotters of one sample set per class.
type layers struct {
	scatters [2]*plotter.Scatter
	markers  [2][]*plotter.Polygon
}

func buildLayers(set *sampler.SampleSet, opts PlotOptions) (layers, error) {
	var l layers
	for _, label := range sampler.Labels {
		xs, ys := set.Partition(label)

		s, err := plotter.NewScatter(visiblePoints(xs, ys))
		if err != nil {
			return l, errors.Wrapf(err, "scatter for class %d", label)
		}
		s.GlyphStyle.Color = classColors[label]
		s.GlyphStyle.Radius = opts.PointRadius
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		l.scatters[label] = s

		for _, c := range set.Centers(label) {
			sq, err := centerMarker(c)
			if err != nil {
				return l, errors.Wrapf(err, "marker for class %d", label)
			}
			l.markers[label] = append(l.markers[label], sq)
		}
	}
	return l, nil
}

// plotters returns the layers in drawing order: both scatters first, then
// every marker, so no class hides a mode center.
func (l layers) plotters() []plot.Plotter {
	var res []plot.Plotter
	for _, s := range l.scatters {
		res = append(res, s)
	}
	for _, ms := range l.markers {
		for _, m := range ms {
			res = append(res, m)
		}
	}
	return res
}

// SavePlot writes p to filename; the format follows the file extension.
func SavePlot(p *plot.Plot, filename string, w, h vg.Length) error {
	c, err := heatmapplotter.NewCanvas(filename, w, h)
	if err != nil {
		return err
	}
	p.Draw(draw.New(c))
	return heatmapplotter.WriteCanvas(c, filename)
}

func centerMarker(c sampler.ModeCenter) (*plotter.Polygon, error) {
	half := MarkerSize / 2
	sq, err := plotter.NewPolygon(plotter.XYs{
		{X: c.MuX - half, Y: c.MuY - half},
		{X: c.MuX + half, Y: c.MuY - half},
		{X: c.MuX + half, Y: c.MuY + half},
		{X: c.MuX - half, Y: c.MuY + half},
	})
	if err != nil {
		return nil, err
	}
	fill := classColors[c.Label]
	sq.Color = color.NRGBA{R: fill.R, G: fill.G, B: fill.B, A: 128}
	sq.LineStyle.Width = 0
	return sq, nil
}

// visiblePoints drops points outside the display window.
func visiblePoints(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if xs[i] < WindowLo || xs[i] > WindowHi || ys[i] < WindowLo || ys[i] > WindowHi {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return pts
}

func className(label int) string {
	if label == 0 {
		return "Class 0"
	}
	return "Class 1"
}
