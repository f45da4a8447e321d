package heatmapplotter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// NewCanvas creates a canvas for the format named by the file extension of
// filename: .pdf, .png or .svg.
func NewCanvas(filename string, w, h vg.Length) (vg.CanvasWriterTo, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".pdf":
		return vgpdf.New(w, h), nil
	case ".png":
		return vgimg.PngCanvas{Canvas: vgimg.New(w, h)}, nil
	case ".svg":
		return vgsvg.New(w, h), nil
	default:
		return nil, errors.Errorf("unsupported plot format %q", ext)
	}
}

// WriteCanvas writes a drawn canvas to filename.
func WriteCanvas(c vg.CanvasWriterTo, filename string) error {
	w, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create plot file")
	}
	defer w.Close()

	if _, err = c.WriteTo(w); err != nil {
		return errors.Wrapf(err, "write %s", filename)
	}
	return w.Close()
}
