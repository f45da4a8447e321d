package presenter

import (
	"encoding/json"
	"io"
	"os"

	"github.com/ekinderinn/data-generator/internal/sampler"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

type sampleRow struct {
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	Label int     `csv:"label"`
	Mode  int     `csv:"mode"`
}

type centerRow struct {
	Mode   int     `csv:"mode"`
	Label  int     `csv:"label"`
	MuX    float64 `csv:"mu_x"`
	MuY    float64 `csv:"mu_y"`
	SigmaX float64 `csv:"sigma_x"`
	SigmaY float64 `csv:"sigma_y"`
}

// WriteCSV writes one row per point with a header x,y,label,mode.
func WriteCSV(w io.Writer, set *sampler.SampleSet) error {
	rows := make([]*sampleRow, set.Len())
	for i := range rows {
		rows[i] = &sampleRow{
			X:     set.X[i],
			Y:     set.Y[i],
			Label: set.Label[i],
			Mode:  set.ModeOf(i),
		}
	}
	return errors.Wrap(gocsv.Marshal(rows, w), "write samples csv")
}

// WriteCentersCSV writes one row per mode with its drawn parameters.
func WriteCentersCSV(w io.Writer, set *sampler.SampleSet) error {
	rows := make([]*centerRow, len(set.ModeCenters))
	for i, c := range set.ModeCenters {
		rows[i] = &centerRow{
			Mode:   i,
			Label:  c.Label,
			MuX:    c.MuX,
			MuY:    c.MuY,
			SigmaX: c.SigmaX,
			SigmaY: c.SigmaY,
		}
	}
	return errors.Wrap(gocsv.Marshal(rows, w), "write centers csv")
}

// WriteJSON writes the whole sample set as one JSON object.
func WriteJSON(w io.Writer, set *sampler.SampleSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(set), "write samples json")
}

// SaveSamples writes set to filename using write. An empty filename or "-"
// means stdout.
func SaveSamples(filename string, set *sampler.SampleSet, write func(io.Writer, *sampler.SampleSet) error) error {
	if filename == "" || filename == "-" {
		return write(os.Stdout, set)
	}

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer file.Close()

	if err := write(file, set); err != nil {
		return err
	}
	return file.Close()
}
