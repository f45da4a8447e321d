package sampler

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestBounds(t *testing.T) {
	tests := []struct {
		name       string
		modes      int
		samples    int
		wantField  string
		wantBelow  bool
		wantReject bool
	}{
		{"minimum", 1, 1, "", false, false},
		{"maximum", 10, 100, "", false, false},
		{"zero modes", 0, 5, fieldModes, true, true},
		{"eleven modes", 11, 5, fieldModes, false, true},
		{"zero samples", 5, 0, fieldSamples, true, true},
		{"too many samples", 5, 101, fieldSamples, false, true},
		{"both invalid reports modes", 0, 0, fieldModes, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewRequest(tt.modes, tt.samples)
			if !tt.wantReject {
				require.NoError(t, err)
				assert.Equal(t, tt.modes, req.NumModes())
				assert.Equal(t, tt.samples, req.NumSamples())
				assert.True(t, req.Valid())
				return
			}

			var rangeErr *RangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, tt.wantField, rangeErr.Field())
			assert.Equal(t, tt.wantBelow, rangeErr.Below())
			assert.False(t, req.Valid())

			var parseErr *ParseError
			assert.False(t, errors.As(err, &parseErr))
		})
	}
}

func TestRangeErrorMessages(t *testing.T) {
	tests := []struct {
		modes, samples int
		want           string
	}{
		{11, 1, "Please enter a number of modes between 1 and 10 (11 is above the maximum)."},
		{0, 1, "Please enter a number of modes between 1 and 10 (0 is below the minimum)."},
		{1, 0, "Please enter a number of samples between 1 and 100 (0 is below the minimum)."},
		{1, 101, "Please enter a number of samples between 1 and 100 (101 is above the maximum)."},
	}

	for _, tt := range tests {
		_, err := NewRequest(tt.modes, tt.samples)
		require.Error(t, err)
		assert.Equal(t, tt.want, err.Error())
	}
}

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest(" 3 ", "25\n")
	require.NoError(t, err)
	assert.Equal(t, 3, req.NumModes())
	assert.Equal(t, 25, req.NumSamples())
	assert.Equal(t, 150, req.Total())
}

func TestParseRequestRejectsNonNumeric(t *testing.T) {
	tests := []struct {
		name      string
		modes     string
		samples   string
		wantField string
	}{
		{"empty modes", "", "10", fieldModes},
		{"letters in samples", "2", "abc", fieldSamples},
		{"decimal", "2.5", "10", fieldModes},
		{"overflow", "99999999999999999999999", "10", fieldModes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequest(tt.modes, tt.samples)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.wantField, parseErr.Field())

			var numErr *strconv.NumError
			assert.ErrorAs(t, err, &numErr)

			var valErr ValidationError
			assert.ErrorAs(t, err, &valErr)

			var rangeErr *RangeError
			assert.False(t, errors.As(err, &rangeErr))
		})
	}
}

func TestParseRequestRangeAfterParse(t *testing.T) {
	_, err := ParseRequest("0", "10")

	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 0, rangeErr.Value)

	var valErr ValidationError
	assert.ErrorAs(t, err, &valErr)
}
