package heatmapplotter

import (
	"fmt"

	"github.com/ekinderinn/data-generator/pkg/convolve"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Window is the square region [Lo, Hi)² covered by a density grid.
type Window struct {
	Lo, Hi float64
}

// MakeDensityPlot renders a normalized density grid (see convolve.Histogram2D)
// as a heat map with a palette legend on the right.
func MakeDensityPlot(data *mat.Dense, win Window, title, filename string, w, h vg.Length) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X-axis"
	p.Y.Label.Text = "Y-axis"

	pal := palette.Heat(10, 1)
	heatmap := plotter.NewHeatMap(matrixToGrid(data, win), pal)
	heatmap.Min = 0
	heatmap.Max = 1

	p.Add(heatmap)

	// Create a legend.
	l := plot.NewLegend()
	thumbs := plotter.PaletteThumbnailers(pal)
	nthumbs := len(thumbs)
	for i := nthumbs - 1; i >= 0; i-- {
		val := (heatmap.Max - heatmap.Min) / float64(nthumbs-1) * float64(i)
		l.Add(fmt.Sprintf("%.1f", val), thumbs[i])
	}

	p.X.Padding = 0
	p.Y.Padding = 0
	p.X.Min, p.X.Max = win.Lo, win.Hi
	p.Y.Min, p.Y.Max = win.Lo, win.Hi

	img, err := NewCanvas(filename, w, h)
	if err != nil {
		return err
	}
	dc := draw.New(img)

	l.Top = true
	// Calculate the width of the legend.
	r := l.Rectangle(dc)
	legendWidth := r.Max.X - r.Min.X
	l.YOffs = -p.Title.TextStyle.FontExtents().Height // Adjust the legend down a little.

	l.Draw(dc)
	dc = draw.Crop(dc, 0, -legendWidth-vg.Millimeter, 0, 0) // Make space for the legend.
	p.Draw(dc)

	return WriteCanvas(img, filename)
}

func matrixToGrid(matrix *mat.Dense, win Window) plotter.GridXYZ {
	rows, cols := matrix.Dims()
	return grid{
		Matrix: matrix,
		xs:     convolve.CellCenters(cols, win.Lo, win.Hi),
		ys:     convolve.CellCenters(rows, win.Lo, win.Hi),
	}
}

type grid struct {
	Matrix *mat.Dense
	xs, ys []float64
}

func (g grid) Dims() (c, r int)   { return len(g.xs), len(g.ys) }
func (g grid) Z(c, r int) float64 { return g.Matrix.At(r, c) }
func (g grid) X(c int) float64    { return g.xs[c] }
func (g grid) Y(r int) float64    { return g.ys[r] }
