package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loicseguin/velolog/internal/domain"
)

// TestParseDuration_acceptedGrammars verifies every accepted duration form
// and its fractional-hour value.
func TestParseDuration_acceptedGrammars(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.5", 1.5},
		{"2", 2.0},
		{"0", 0.0},
		{"1:30", 1.5},
		{"1h30", 1.5},
		{"1:", 1.0},
		{"1h", 1.0},
		{"0:45", 0.75},
		{"2h15", 2.25},
		{"  1.5  ", 1.5},
		{"1.5:30", 2.0}, // fractional hours with minutes
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := domain.ParseDuration(tc.in)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

// TestParseDuration_rejectsOtherContent verifies that anything outside the
// accepted grammars fails with ErrInvalidDuration.
func TestParseDuration_rejectsOtherContent(t *testing.T) {
	cases := []string{
		"",
		"abc",
		"1:30:00", // multiple separators
		"1h30h15",
		":30", // empty hours
		"h30",
		"1:xx",
		"one:30",
		"1,5", // locale-invariant: comma is not a decimal point
	}

	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			_, err := domain.ParseDuration(in)
			assert.ErrorIs(t, err, domain.ErrInvalidDuration)
		})
	}
}
