package randomnormal

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// NewSource returns a PCG source seeded from the runtime's entropy, so two
// processes never share a stream.
func NewSource() rand.Source {
	return rand.NewPCG(rand.Uint64(), rand.Uint64())
}

// NewSeededSource returns a reproducible source.
func NewSeededSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// Generator draws float64 values from a one-dimensional distribution.
type Generator interface {
	Rand() float64
	RandN(n int) []float64
}

// NormalRandGenerator draws from N(mu, sigma) without truncation.
type NormalRandGenerator struct {
	dist distuv.Normal
}

// NewNormalRandGenerator creates a normal generator over src.
func NewNormalRandGenerator(src rand.Source, mu, sigma float64) *NormalRandGenerator {
	if sigma <= 0 {
		panic("sigma must be positive")
	}
	return &NormalRandGenerator{
		dist: distuv.Normal{
			Mu:    mu,
			Sigma: sigma,
			Src:   src,
		},
	}
}

func (g *NormalRandGenerator) Rand() float64 {
	return g.dist.Rand()
}

// RandN draws n values.
func (g *NormalRandGenerator) RandN(n int) []float64 {
	return randN(g, n)
}

func (g *NormalRandGenerator) Mean() float64 {
	return g.dist.Mu
}

func (g *NormalRandGenerator) StdDev() float64 {
	return g.dist.Sigma
}

// UniformRandGenerator draws from U[min, max).
type UniformRandGenerator struct {
	dist distuv.Uniform
}

func NewUniformRandGenerator(src rand.Source, min, max float64) *UniformRandGenerator {
	if min >= max {
		panic("min must be less than max")
	}
	return &UniformRandGenerator{
		dist: distuv.Uniform{
			Min: min,
			Max: max,
			Src: src,
		},
	}
}

func (g *UniformRandGenerator) Rand() float64 {
	return g.dist.Rand()
}

func (g *UniformRandGenerator) RandN(n int) []float64 {
	return randN(g, n)
}

func randN(g Generator, n int) []float64 {
	result := make([]float64, n)
	for i := range n {
		result[i] = g.Rand()
	}
	return result
}
