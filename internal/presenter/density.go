package presenter

import (
	"github.com/ekinderinn/data-generator/internal/sampler"
	"github.com/ekinderinn/data-generator/pkg/convolve"
	"github.com/ekinderinn/data-generator/pkg/heatmapplotter"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/vg"
)

// DensityOptions controls the density heat map.
type DensityOptions struct {
	Bins        int
	Smooth      bool
	SmoothSigma float64
	SmoothSize  int
}

// DensityGrid bins all points of set over the display window and optionally
// smooths the counts with a Gaussian kernel. The result is scaled to max 1.
func DensityGrid(set *sampler.SampleSet, opts DensityOptions) *mat.Dense {
	grid := convolve.Histogram2D(set.X, set.Y, opts.Bins, WindowLo, WindowHi)
	if opts.Smooth {
		gs := convolve.NewGaussianKernel(opts.SmoothSigma, opts.SmoothSigma, opts.SmoothSize)
		grid = gs.Convolve(grid)
		convolve.Normalize(grid)
	}
	return grid
}

// GenerateHeatmap writes the density heat map of set to outputPath.
func GenerateHeatmap(outputPath string, set *sampler.SampleSet, opts DensityOptions, w, h vg.Length) error {
	grid := DensityGrid(set, opts)
	win := heatmapplotter.Window{Lo: WindowLo, Hi: WindowHi}
	return heatmapplotter.MakeDensityPlot(grid, win, "Sample Density", outputPath, w, h)
}
