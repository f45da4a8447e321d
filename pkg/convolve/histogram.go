package convolve

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Histogram2D counts points on a bins×bins grid covering [lo, hi)² and
// scales the counts so the fullest cell is 1. Row r holds y values, column c
// holds x values. Points outside the window are dropped.
func Histogram2D(xs, ys []float64, bins int, lo, hi float64) *mat.Dense {
	if bins < 1 {
		bins = 1
	}
	grid := mat.NewDense(bins, bins, nil)
	step := (hi - lo) / float64(bins)

	for i := range xs {
		if xs[i] < lo || xs[i] >= hi || ys[i] < lo || ys[i] >= hi {
			continue
		}
		c := int((xs[i] - lo) / step)
		r := int((ys[i] - lo) / step)
		// guard float rounding at the upper edge
		c = min(c, bins-1)
		r = min(r, bins-1)
		grid.Set(r, c, grid.At(r, c)+1)
	}

	Normalize(grid)
	return grid
}

// Normalize scales m in place so its maximum is 1. A zero matrix is left as is.
func Normalize(m *mat.Dense) {
	maxV := floats.Max(m.RawMatrix().Data)
	if maxV > 0 {
		m.Scale(1/maxV, m)
	}
}

// CellCenters returns the centers of the bins cells covering [lo, hi).
func CellCenters(bins int, lo, hi float64) []float64 {
	step := (hi - lo) / float64(bins)
	res := make([]float64, bins)
	for i := range res {
		res[i] = lo + step*(float64(i)+0.5)
	}
	return res
}
