package convolve

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

type ConvolveKernel struct {
	kernel *mat.Dense
}

// NewGaussianKernel builds a normalized size×size Gaussian kernel. sigmaR and
// sigmaC are measured in cells along rows and columns.
func NewGaussianKernel(sigmaR, sigmaC float64, size int) *ConvolveKernel {
	if size < 1 {
		size = 1
	}
	if size%2 == 0 {
		size++
	}
	kernel := mat.NewDense(size, size, nil)
	sum := 0.0

	// kernel center
	center := float64(size-1) / 2.0

	for i := range size {
		for j := range size {
			r := float64(i) - center
			c := float64(j) - center
			value := math.Exp(-(r*r/(2*sigmaR*sigmaR) + c*c/(2*sigmaC*sigmaC)))
			kernel.Set(i, j, value)
			sum += value
		}
	}

	kernel.Scale(1/sum, kernel)

	return &ConvolveKernel{kernel}
}

// Size returns the kernel side length.
func (ck *ConvolveKernel) Size() int {
	r, _ := ck.kernel.Dims()
	return r
}

// padMatrix surrounds input with padding rows and columns of zeros.
func padMatrix(input *mat.Dense, padding int) *mat.Dense {
	rows, cols := input.Dims()
	padded := mat.NewDense(rows+2*padding, cols+2*padding, nil)
	padded.Slice(padding, padding+rows, padding, padding+cols).(*mat.Dense).Copy(input)
	return padded
}

// Convolve returns a matrix of the same size as input, zero padded at the edges.
func (ck *ConvolveKernel) Convolve(input *mat.Dense) *mat.Dense {
	inputRows, inputCols := input.Dims()
	kernelRows, kernelCols := ck.kernel.Dims()

	padding := kernelRows / 2
	paddedInput := padMatrix(input, padding)

	output := mat.NewDense(inputRows, inputCols, nil)

	for i := range inputRows {
		for j := range inputCols {
			sum := 0.0
			for ki := range kernelRows {
				for kj := range kernelCols {
					sum += paddedInput.At(i+ki, j+kj) * ck.kernel.At(ki, kj)
				}
			}
			output.Set(i, j, sum)
		}
	}

	return output
}
