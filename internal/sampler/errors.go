package sampler

import (
	"fmt"
)

// ValidationError is returned when a request cannot be built from user input.
// Both *ParseError and *RangeError implement it.
type ValidationError interface {
	error
	Field() string
}

// ParseError reports input text that is not a whole number.
type ParseError struct {
	Name  string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Please enter a whole number for the %s (got %q).", e.Name, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Field() string { return e.Name }

// RangeError reports a number outside its allowed bounds.
type RangeError struct {
	Name     string
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	bound := "above the maximum"
	if e.Below() {
		bound = "below the minimum"
	}
	return fmt.Sprintf("Please enter a %s between %d and %d (%d is %s).", e.Name, e.Min, e.Max, e.Value, bound)
}

func (e *RangeError) Field() string { return e.Name }

// Below reports whether the lower bound was violated.
func (e *RangeError) Below() bool { return e.Value < e.Min }
