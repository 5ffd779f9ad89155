// ABOUTME: Error taxonomy shared by the structure algorithms
// ABOUTME: Sentinels carry user-facing hints; callers match them with errors.Is

package ds

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors. Every failing operation wraps exactly one of these and
// leaves its input untouched.
var (
	ErrCapacityExceeded = errors.WithHint(
		errors.New("capacity exceeded"),
		"remove an element before adding another")
	ErrEmpty = errors.WithHint(
		errors.New("structure is empty"),
		"add a value first")
	ErrNotFound = errors.WithHint(
		errors.New("value not found"),
		"check the value and try again")
	ErrDuplicateValue = errors.WithHint(
		errors.New("duplicate value"),
		"a binary search tree holds each value once")
	ErrInvalidInput = errors.WithHint(
		errors.New("invalid input"),
		"enter a whole number such as 42")
)

// ParseValue parses a user-supplied integer. Surrounding whitespace is
// ignored; anything else that is not a base-10 integer is ErrInvalidInput.
func ParseValue(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.Wrap(ErrInvalidInput, "missing value")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidInput, "%q is not a number", s)
	}
	return v, nil
}

// Code returns a short stable identifier for the taxonomy member err
// belongs to, or "" when err is not one of them.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, ErrEmpty):
		return "empty"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrDuplicateValue):
		return "duplicate_value"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return ""
	}
}

// Hint returns the user-facing hint attached to err, if any.
func Hint(err error) string {
	return errors.FlattenHints(err)
}
