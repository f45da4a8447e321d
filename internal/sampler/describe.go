package sampler

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ModeStats compares the parameters drawn for a mode with the empirical
// moments of the points it produced.
type ModeStats struct {
	Mode   int
	Center ModeCenter
	MeanX  float64
	MeanY  float64
	StdX   float64
	StdY   float64
	MinX   float64
	MaxX   float64
	MinY   float64
	MaxY   float64
}

// Describe returns one ModeStats per mode, in generation order.
// Standard deviations are zero for single-sample modes. A set whose points do
// not split into runs per mode center yields nil.
func Describe(s *SampleSet) []ModeStats {
	per := s.SamplesPerMode()
	if per == 0 || len(s.X) != per*len(s.ModeCenters) || len(s.Y) != len(s.X) {
		return nil
	}
	res := make([]ModeStats, 0, len(s.ModeCenters))
	for m, c := range s.ModeCenters {
		xs := s.X[m*per : (m+1)*per]
		ys := s.Y[m*per : (m+1)*per]

		ms := ModeStats{
			Mode:   m,
			Center: c,
			MeanX:  stat.Mean(xs, nil),
			MeanY:  stat.Mean(ys, nil),
			MinX:   floats.Min(xs),
			MaxX:   floats.Max(xs),
			MinY:   floats.Min(ys),
			MaxY:   floats.Max(ys),
		}
		if per > 1 {
			ms.StdX = stat.StdDev(xs, nil)
			ms.StdY = stat.StdDev(ys, nil)
		}
		res = append(res, ms)
	}
	return res
}
