package presenter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ekinderinn/data-generator/internal/sampler"
)

// WriteStats prints drawn and empirical parameters of every mode as a table.
func WriteStats(w io.Writer, stats []sampler.ModeStats) error {
	tabw := tabwriter.NewWriter(w, 8, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tabw, "mode\tlabel\tmu_x\tmu_y\tsigma_x\tsigma_y\tmean_x\tmean_y\tstd_x\tstd_y\t")
	for _, s := range stats {
		fmt.Fprintf(tabw, "%d\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t\n",
			s.Mode, s.Center.Label,
			s.Center.MuX, s.Center.MuY, s.Center.SigmaX, s.Center.SigmaY,
			s.MeanX, s.MeanY, s.StdX, s.StdY)
	}
	return tabw.Flush()
}
