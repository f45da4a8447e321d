package config

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/ekinderinn/data-generator/pkg/randomnormal"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gonum.org/v1/plot/vg"
)

// Config holds the options of one run. Modes and Samples stay as raw text
// until sampler.ParseRequest validates them.
type Config struct {
	Modes   string
	Samples string
	Seed    uint64
	Verbose bool

	Output string
	Format string

	PlotFile string

	Width, Height float64
	PointSize     float64

	Density     string
	Bins        int
	Smooth      bool
	SmoothSigma float64
	SmoothSize  int
}

// BindRequest registers the flags every command shares.
func (cfg *Config) BindRequest(fs *pflag.FlagSet) {
	fs.StringVarP(&cfg.Modes, "modes", "m", "", "number of modes per class (1-10)")
	fs.StringVarP(&cfg.Samples, "samples", "n", "", "number of samples per mode (1-100)")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "random seed, 0 picks a fresh one every run")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "human readable debug logging")
}

// BindExport registers the flags of the generate command.
func (cfg *Config) BindExport(fs *pflag.FlagSet) {
	fs.StringVarP(&cfg.Output, "output", "o", "-", "output file, - for stdout")
	fs.StringVarP(&cfg.Format, "format", "f", "csv", "output format: csv, json or centers")
}

// BindPlot registers the flags of the plot command.
func (cfg *Config) BindPlot(fs *pflag.FlagSet) {
	fs.StringVarP(&cfg.PlotFile, "output", "o", "samples.pdf", "plot file (.pdf, .png or .svg)")
	fs.Float64Var(&cfg.Width, "width", 5, "plot width in inches")
	fs.Float64Var(&cfg.Height, "height", 5, "plot height in inches")
	fs.Float64Var(&cfg.PointSize, "point-size", 1.8, "scatter point radius in points")
	fs.StringVar(&cfg.Density, "density", "", "also write a density heat map to this file")
	fs.IntVar(&cfg.Bins, "bins", 60, "density grid cells per axis")
	fs.BoolVar(&cfg.Smooth, "smooth", false, "smooth the density grid with a gaussian kernel")
	fs.Float64Var(&cfg.SmoothSigma, "smooth-sigma", 1.5, "smoothing kernel sigma in cells")
	fs.IntVar(&cfg.SmoothSize, "smooth-size", 7, "smoothing kernel size in cells")
}

// Validate checks options that do not belong to the generation request.
func (cfg *Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.Errorf("plot size must be positive, got %gx%g", cfg.Width, cfg.Height)
	}
	if cfg.PointSize <= 0 {
		return errors.Errorf("point size must be positive, got %g", cfg.PointSize)
	}
	if cfg.Bins < 1 {
		return errors.Errorf("bins must be at least 1, got %d", cfg.Bins)
	}
	if cfg.Smooth && (cfg.SmoothSigma <= 0 || cfg.SmoothSize < 1) {
		return errors.Errorf("smoothing needs a positive sigma and size")
	}
	return nil
}

// Source returns the random source for the run.
func (cfg *Config) Source() rand.Source {
	if cfg.Seed == 0 {
		return randomnormal.NewSource()
	}
	return randomnormal.NewSeededSource(cfg.Seed)
}

func (cfg *Config) PlotWidth() vg.Length  { return vg.Length(cfg.Width) * vg.Inch }
func (cfg *Config) PlotHeight() vg.Length { return vg.Length(cfg.Height) * vg.Inch }

func (cfg *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "modes=%q samples=%q seed=%d", cfg.Modes, cfg.Samples, cfg.Seed)
	if cfg.Output != "" {
		fmt.Fprintf(&b, " output=%s", cfg.Output)
	}
	if cfg.PlotFile != "" {
		fmt.Fprintf(&b, " plot=%s", cfg.PlotFile)
	}
	if cfg.Format != "" {
		fmt.Fprintf(&b, " format=%s", cfg.Format)
	}
	if cfg.Density != "" {
		fmt.Fprintf(&b, " density=%s bins=%d smooth=%t", cfg.Density, cfg.Bins, cfg.Smooth)
	}
	return b.String()
}
