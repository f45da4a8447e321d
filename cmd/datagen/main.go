package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ekinderinn/data-generator/internal/config"
	"github.com/ekinderinn/data-generator/internal/presenter"
	"github.com/ekinderinn/data-generator/internal/sampler"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

// errInput marks failures already reported to the user.
var errInput = errors.New("input error")

type app struct {
	cfg    config.Config
	stdout io.Writer
	stderr io.Writer
	log    *zap.Logger
}

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "datagen",
		Short:         "generate labeled 2D point clouds from random gaussian mixtures",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = newLogger(a.cfg.Verbose)
		},
	}
	a.cfg.BindRequest(root.PersistentFlags())

	generate := &cobra.Command{
		Use:   "generate",
		Short: "write the samples as csv or json",
		Args:  cobra.NoArgs,
		RunE:  a.runGenerate,
	}
	a.cfg.BindExport(generate.Flags())

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "draw the samples and mode centers",
		Args:  cobra.NoArgs,
		RunE:  a.runPlot,
	}
	a.cfg.BindPlot(plotCmd.Flags())

	stats := &cobra.Command{
		Use:   "stats",
		Short: "print drawn and empirical parameters of every mode",
		Args:  cobra.NoArgs,
		RunE:  a.runStats,
	}

	root.AddCommand(generate, plotCmd, stats)
	return root
}

// sample validates the request and generates. Validation failures are
// reported once on stderr and returned as errInput.
func (a *app) sample() (*sampler.SampleSet, error) {
	defer a.log.Sync()

	a.log.Debug("run configuration", zap.Stringer("config", &a.cfg))

	req, err := sampler.ParseRequest(a.cfg.Modes, a.cfg.Samples)
	if err != nil {
		var valErr sampler.ValidationError
		if errors.As(err, &valErr) {
			fmt.Fprintf(a.stderr, "Input Error: %s\n", valErr.Error())
			return nil, errInput
		}
		return nil, err
	}

	set, err := sampler.Generate(a.cfg.Source(), req)
	if err != nil {
		return nil, err
	}
	a.log.Debug("generated samples",
		zap.Int("modes", req.NumModes()),
		zap.Int("samples", req.NumSamples()),
		zap.Int("points", set.Len()),
	)
	return set, nil
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	var write func(io.Writer, *sampler.SampleSet) error
	switch a.cfg.Format {
	case "csv":
		write = presenter.WriteCSV
	case "json":
		write = presenter.WriteJSON
	case "centers":
		write = presenter.WriteCentersCSV
	default:
		fmt.Fprintf(a.stderr, "Input Error: unknown format %q, use csv, json or centers\n", a.cfg.Format)
		return errInput
	}

	set, err := a.sample()
	if err != nil {
		return a.fail(err)
	}

	if a.cfg.Output == "" || a.cfg.Output == "-" {
		return a.fail(write(a.stdout, set))
	}
	if err := presenter.SaveSamples(a.cfg.Output, set, write); err != nil {
		return a.fail(err)
	}
	a.log.Info("samples saved", zap.String("path", a.cfg.Output), zap.Int("points", set.Len()))
	return nil
}

func (a *app) runPlot(cmd *cobra.Command, args []string) error {
	if err := a.cfg.Validate(); err != nil {
		fmt.Fprintf(a.stderr, "Input Error: %s\n", err)
		return errInput
	}

	set, err := a.sample()
	if err != nil {
		return a.fail(err)
	}

	opts := presenter.DefaultPlotOptions()
	opts.PointRadius = vg.Points(a.cfg.PointSize)
	p, err := presenter.PlotSamples(set, opts)
	if err != nil {
		return a.fail(err)
	}
	if err := presenter.SavePlot(p, a.cfg.PlotFile, a.cfg.PlotWidth(), a.cfg.PlotHeight()); err != nil {
		return a.fail(err)
	}
	a.log.Info("plot saved", zap.String("path", a.cfg.PlotFile))

	if a.cfg.Density == "" {
		return nil
	}
	dopts := presenter.DensityOptions{
		Bins:        a.cfg.Bins,
		Smooth:      a.cfg.Smooth,
		SmoothSigma: a.cfg.SmoothSigma,
		SmoothSize:  a.cfg.SmoothSize,
	}
	if err := presenter.GenerateHeatmap(a.cfg.Density, set, dopts, a.cfg.PlotWidth(), a.cfg.PlotHeight()); err != nil {
		return a.fail(err)
	}
	a.log.Info("density map saved", zap.String("path", a.cfg.Density))
	return nil
}

func (a *app) runStats(cmd *cobra.Command, args []string) error {
	set, err := a.sample()
	if err != nil {
		return a.fail(err)
	}
	return a.fail(presenter.WriteStats(a.stdout, sampler.Describe(set)))
}

// fail logs unexpected errors. Input errors were already shown to the user.
func (a *app) fail(err error) error {
	if err == nil || errors.Is(err, errInput) {
		return err
	}
	a.log.Error("datagen failed", zap.Error(err))
	a.log.Sync()
	return err
}
