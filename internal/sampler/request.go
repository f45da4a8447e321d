package sampler

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	MinModes   = 1
	MaxModes   = 10
	MinSamples = 1
	MaxSamples = 100

	fieldModes   = "number of modes"
	fieldSamples = "number of samples"
)

// Request is a validated generation request. The zero value is not valid;
// use NewRequest or ParseRequest.
type Request struct {
	numModes   int
	numSamples int
}

// NewRequest checks both counts against their bounds. Modes are checked first.
func NewRequest(numModes, numSamples int) (Request, error) {
	if numModes < MinModes || numModes > MaxModes {
		return Request{}, &RangeError{Name: fieldModes, Value: numModes, Min: MinModes, Max: MaxModes}
	}
	if numSamples < MinSamples || numSamples > MaxSamples {
		return Request{}, &RangeError{Name: fieldSamples, Value: numSamples, Min: MinSamples, Max: MaxSamples}
	}
	return Request{numModes: numModes, numSamples: numSamples}, nil
}

// ParseRequest builds a request from the raw text of both inputs.
// Surrounding whitespace is ignored.
func ParseRequest(modesText, samplesText string) (Request, error) {
	numModes, err := parseCount(fieldModes, modesText)
	if err != nil {
		return Request{}, err
	}
	numSamples, err := parseCount(fieldSamples, samplesText)
	if err != nil {
		return Request{}, err
	}
	return NewRequest(numModes, numSamples)
}

func parseCount(name, text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &ParseError{
			Name:  name,
			Input: text,
			Err:   errors.Wrapf(err, "parse %s", name),
		}
	}
	return n, nil
}

func (r Request) NumModes() int   { return r.numModes }
func (r Request) NumSamples() int { return r.numSamples }

// Total is the number of points a request produces: two classes, each with
// NumModes modes of NumSamples points.
func (r Request) Total() int { return 2 * r.numModes * r.numSamples }

// Valid reports whether r was produced by NewRequest or ParseRequest.
func (r Request) Valid() bool { return r.numModes >= MinModes && r.numSamples >= MinSamples }
