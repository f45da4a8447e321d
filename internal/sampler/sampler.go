package sampler

import (
	"math/rand/v2"

	"github.com/ekinderinn/data-generator/pkg/randomnormal"
	"github.com/pkg/errors"
)

// Parameter ranges of a mode.
const (
	CenterLow  = -1.0
	CenterHigh = 1.0
	SigmaLow   = 0.1
	SigmaHigh  = 1.0
)

// Labels in generation order.
var Labels = [2]int{0, 1}

// ModeCenter is the mean of one Gaussian mode and the class it belongs to.
// SigmaX and SigmaY are the per-axis spreads drawn with it.
type ModeCenter struct {
	MuX    float64 `json:"mu_x"`
	MuY    float64 `json:"mu_y"`
	SigmaX float64 `json:"sigma_x"`
	SigmaY float64 `json:"sigma_y"`
	Label  int     `json:"label"`
}

// SampleSet holds the generated points. Points are grouped by (label, mode):
// all label 0 modes first, then label 1, each mode contributing a
// contiguous run of NumSamples entries.
type SampleSet struct {
	X           []float64    `json:"x"`
	Y           []float64    `json:"y"`
	Label       []int        `json:"label"`
	ModeCenters []ModeCenter `json:"mode_centers"`

	samplesPerMode int
}

// Generate draws a SampleSet for a validated request.
func Generate(src rand.Source, req Request) (*SampleSet, error) {
	if !req.Valid() {
		return nil, errors.New("sampler: request was not validated")
	}

	total := req.Total()
	set := &SampleSet{
		X:              make([]float64, 0, total),
		Y:              make([]float64, 0, total),
		Label:          make([]int, 0, total),
		ModeCenters:    make([]ModeCenter, 0, 2*req.NumModes()),
		samplesPerMode: req.NumSamples(),
	}

	var centers, sigmas randomnormal.Generator
	centers = randomnormal.NewUniformRandGenerator(src, CenterLow, CenterHigh)
	sigmas = randomnormal.NewUniformRandGenerator(src, SigmaLow, SigmaHigh)

	for _, label := range Labels {
		for range req.NumModes() {
			mu := centers.RandN(2)
			sigma := sigmas.RandN(2)

			// x and y are independent: no covariance between axes
			xGen := randomnormal.NewNormalRandGenerator(src, mu[0], sigma[0])
			yGen := randomnormal.NewNormalRandGenerator(src, mu[1], sigma[1])

			set.X = append(set.X, xGen.RandN(req.NumSamples())...)
			set.Y = append(set.Y, yGen.RandN(req.NumSamples())...)
			for range req.NumSamples() {
				set.Label = append(set.Label, label)
			}

			set.ModeCenters = append(set.ModeCenters, ModeCenter{
				MuX:    xGen.Mean(),
				MuY:    yGen.Mean(),
				SigmaX: xGen.StdDev(),
				SigmaY: yGen.StdDev(),
				Label:  label,
			})
		}
	}

	return set, nil
}

// GenerateN validates the counts and generates in one step.
func GenerateN(src rand.Source, numModes, numSamples int) (*SampleSet, error) {
	req, err := NewRequest(numModes, numSamples)
	if err != nil {
		return nil, err
	}
	return Generate(src, req)
}

// Len returns the number of points.
func (s *SampleSet) Len() int { return len(s.X) }

// SamplesPerMode returns the run length of each mode in X, Y and Label.
// Sets not built by Generate, e.g. decoded from JSON, derive it from the
// number of mode centers; it is 0 when there are none.
func (s *SampleSet) SamplesPerMode() int {
	if s.samplesPerMode > 0 {
		return s.samplesPerMode
	}
	if len(s.ModeCenters) == 0 {
		return 0
	}
	return len(s.X) / len(s.ModeCenters)
}

// ModeOf returns the index into ModeCenters of the mode that produced point i.
// Without mode information every point belongs to mode 0.
func (s *SampleSet) ModeOf(i int) int {
	per := s.SamplesPerMode()
	if per == 0 {
		return 0
	}
	return i / per
}

// Partition returns the coordinates of all points with the given label.
func (s *SampleSet) Partition(label int) (xs, ys []float64) {
	for i, l := range s.Label {
		if l == label {
			xs = append(xs, s.X[i])
			ys = append(ys, s.Y[i])
		}
	}
	return xs, ys
}

// Centers returns the mode centers of one class.
func (s *SampleSet) Centers(label int) []ModeCenter {
	var res []ModeCenter
	for _, c := range s.ModeCenters {
		if c.Label == label {
			res = append(res, c)
		}
	}
	return res
}
