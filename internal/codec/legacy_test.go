package codec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loicseguin/velolog/internal/codec"
	"github.com/loicseguin/velolog/internal/domain"
)

// ---- DecodeAny chain -------------------------------------------------------

// TestDecodeAny_currentFormatFirst verifies the current grammar wins even for
// lines a legacy grammar could also accept.
func TestDecodeAny_currentFormatFirst(t *testing.T) {
	got, err := codec.New(0).DecodeAny("2024-01-01 10:00:00,20,1,loop,")
	require.NoError(t, err)
	assert.Equal(t, ride("2024-01-01 10:00:00", 20, 1, "loop", ""), got)
}

// TestDecodeAny_pipe5 verifies the "|||"-delimited legacy format with its
// DD-MM-YYYY HH:MM:SS timestamp.
func TestDecodeAny_pipe5(t *testing.T) {
	got, err := codec.New(0).DecodeAny("23-06-2012 15:32:12|||12|||0.6|||Around the house, twice|||http://www.mymap.com/1")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2012, 6, 23, 15, 32, 12, 0, time.UTC), got.Timestamp)
	assert.Equal(t, 12.0, got.Distance)
	assert.Equal(t, 0.6, got.Duration)
	assert.Equal(t, "Around the house, twice", got.Comment)
	assert.Equal(t, "http://www.mymap.com/1", got.URL)
}

// TestDecodeAny_whitespace4 verifies the whitespace-delimited legacy format:
// the comment greedily consumes the remaining tokens and there is no url.
func TestDecodeAny_whitespace4(t *testing.T) {
	cases := []struct {
		name string
		line string
		ts   time.Time
	}{
		{
			"month-name timestamp",
			"23/Jun/2012-15:32:12 12 0.6 Around the house",
			time.Date(2012, 6, 23, 15, 32, 12, 0, time.UTC),
		},
		{
			"numeric timestamp",
			"23/06/2012-15:32:12 12 0.6 Around the house",
			time.Date(2012, 6, 23, 15, 32, 12, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := codec.New(0).DecodeAny(tc.line)
			require.NoError(t, err)

			assert.Equal(t, tc.ts, got.Timestamp)
			assert.Equal(t, 12.0, got.Distance)
			assert.Equal(t, 0.6, got.Duration)
			assert.Equal(t, "Around the house", got.Comment)
			assert.Empty(t, got.URL)
		})
	}
}

// TestDecodeAny_whitespace4_noComment verifies a legacy line without a
// comment still decodes.
func TestDecodeAny_whitespace4_noComment(t *testing.T) {
	got, err := codec.New(0).DecodeAny("23/Jun/2012-15:32:12 12 0.6")
	require.NoError(t, err)
	assert.Empty(t, got.Comment)
}

// TestDecodeAny_unknownFormat verifies the chain fails with
// ErrMalformedRecord when no grammar matches.
func TestDecodeAny_unknownFormat(t *testing.T) {
	cases := []string{
		"not a ride at all",
		"23-06-2012 15:32:12|||12|||0.6",      // pipe5 with too few fields
		"2012/06/23 15:32:12,12,0.6,loop,",    // unknown timestamp pattern
		"23/Jun/2012-15:32:12 twelve 0.6 x",   // bad distance
	}

	for _, line := range cases {
		t.Run(line, func(t *testing.T) {
			_, err := codec.New(0).DecodeAny(line)
			assert.ErrorIs(t, err, domain.ErrMalformedRecord)
		})
	}
}
