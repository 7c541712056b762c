package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loicseguin/velolog/internal/domain"
	"github.com/loicseguin/velolog/internal/stats"
)

// ---- Summarize -------------------------------------------------------------

func TestSummarize(t *testing.T) {
	rides := []domain.Ride{
		{Distance: 30, Duration: 1.5},
		{Distance: 10, Duration: 0.5},
	}

	s, err := stats.Summarize(rides)

	require.NoError(t, err)
	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 40.0, s.TotalDistance, 1e-9)
	assert.InDelta(t, 2.0, s.TotalDuration, 1e-9)
	assert.InDelta(t, 20.0, s.MeanDistance, 1e-9)
	assert.InDelta(t, 1.0, s.MeanDuration, 1e-9)
	assert.InDelta(t, 20.0, s.AverageSpeed, 1e-9)
}

// TestSummarize_emptySet verifies the defined empty-set result: a typed
// error, not a divide-by-zero crash and not zero means.
func TestSummarize_emptySet(t *testing.T) {
	_, err := stats.Summarize(nil)
	assert.ErrorIs(t, err, domain.ErrEmptySet)
}

// TestSummarize_zeroTotalDuration verifies the NaN sentinel when every ride
// has zero duration.
func TestSummarize_zeroTotalDuration(t *testing.T) {
	s, err := stats.Summarize([]domain.Ride{{Distance: 12, Duration: 0}})

	require.NoError(t, err)
	assert.InDelta(t, 12.0, s.MeanDistance, 1e-9)
	assert.True(t, math.IsNaN(s.AverageSpeed))
}

// ---- CumulativeDistance ----------------------------------------------------

// TestCumulativeDistance verifies the running prefix sum in input order.
func TestCumulativeDistance(t *testing.T) {
	rides := []domain.Ride{
		{Distance: 12},
		{Distance: 75},
		{Distance: 24},
	}

	series := stats.CumulativeDistance(rides)

	require.Len(t, series, 3)
	assert.InDelta(t, 12.0, series[0], 1e-9)
	assert.InDelta(t, 87.0, series[1], 1e-9)
	assert.InDelta(t, 111.0, series[2], 1e-9)
}

func TestCumulativeDistance_empty(t *testing.T) {
	assert.Empty(t, stats.CumulativeDistance(nil))
}
