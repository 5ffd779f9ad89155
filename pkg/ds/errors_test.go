// ABOUTME: Tests for value parsing and the error taxonomy codes and hints
// ABOUTME: Wrapped sentinels must keep both their identity and their hint

package ds

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"42", 42, false},
		{"  7 ", 7, false},
		{"-3", -3, false},
		{"", 0, true},
		{"   ", 0, true},
		{"abc", 0, true},
		{"4.5", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseValue(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCode(t *testing.T) {
	t.Parallel()

	tests := map[string]error{
		"capacity_exceeded": errors.Wrap(ErrCapacityExceeded, "push 9"),
		"empty":             ErrEmpty,
		"not_found":         errors.Wrapf(ErrNotFound, "search %d", 4),
		"duplicate_value":   errors.Wrap(ErrDuplicateValue, "insert 50"),
		"invalid_input":     errors.Wrap(ErrInvalidInput, "add"),
		"":                  errors.New("unrelated"),
	}
	for want, err := range tests {
		assert.Equal(t, want, Code(err), "error %v", err)
	}
	assert.Empty(t, Code(nil))
}

func TestHint_SurvivesWrapping(t *testing.T) {
	t.Parallel()

	err := errors.Wrapf(ErrCapacityExceeded, "append %d", 13)
	assert.Equal(t, "remove an element before adding another", Hint(err))
	assert.Empty(t, Hint(errors.New("plain")))
}
