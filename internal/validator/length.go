// Package validator checks user-entered password lengths before generation.
package validator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultMinLength = 4
	DefaultMaxLength = 16
)

// ErrInvalidLength matches every *LengthError.
var ErrInvalidLength = errors.New("invalid length")

// Reason identifies which length constraint failed.
type Reason int

const (
	Required Reason = iota + 1
	NotNumeric
	TooShort
	TooLong
)

// LengthError is returned when a candidate length is rejected. Message is
// suitable for showing next to the length field.
type LengthError struct {
	Reason  Reason
	Message string
}

func (e *LengthError) Error() string {
	return e.Message
}

func (e *LengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// Validator enforces an inclusive [Min, Max] length range.
type Validator struct {
	Min int
	Max int
}

// Default returns a Validator accepting lengths 4 through 16.
func Default() Validator {
	return Validator{Min: DefaultMinLength, Max: DefaultMaxLength}
}

// New returns a Validator for [min, max], or an error if the range is empty
// or starts below zero.
func New(min, max int) (Validator, error) {
	if min < 0 || max < min {
		return Validator{}, fmt.Errorf("invalid length range [%d, %d]", min, max)
	}
	return Validator{Min: min, Max: max}, nil
}

// ValidateLength parses text as entered in the length field and checks it
// against the bounds. The messages always cite the bound being enforced.
func (v Validator) ValidateLength(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, &LengthError{Reason: Required, Message: "Length is required"}
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, &LengthError{Reason: NotNumeric, Message: "Length must be a whole number"}
	}

	return n, v.Check(n)
}

// Check validates an already-parsed length.
func (v Validator) Check(n int) error {
	if n < v.Min {
		return &LengthError{Reason: TooShort, Message: fmt.Sprintf("Should be minimum of %d characters", v.Min)}
	}
	if n > v.Max {
		return &LengthError{Reason: TooLong, Message: fmt.Sprintf("Should be a maximum of %d characters", v.Max)}
	}
	return nil
}
