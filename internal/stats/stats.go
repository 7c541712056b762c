// Package stats computes aggregate and per-record derived metrics over a
// ride subset. Computations are pure; the caller decides which rides are in
// scope (typically a year-filtered load).
package stats

import (
	"fmt"
	"math"

	"github.com/loicseguin/velolog/internal/domain"
)

// Summary holds the aggregate metrics for a set of rides.
//
// AverageSpeed is NaN when the total duration is zero; it is an explicit
// sentinel, never a silent zero. Callers that serialize a Summary must map
// NaN themselves (JSON has no NaN).
type Summary struct {
	Count         int     `json:"count"`
	TotalDistance float64 `json:"total_distance"` // km
	TotalDuration float64 `json:"total_duration"` // h
	MeanDistance  float64 `json:"mean_distance"`  // km
	MeanDuration  float64 `json:"mean_duration"`  // h
	AverageSpeed  float64 `json:"average_speed"`  // km/h, NaN when TotalDuration is 0
}

// Summarize computes the aggregate metrics for the given rides.
// An empty set fails with domain.ErrEmptySet rather than returning zero
// means: "no data for this scope" must stay distinguishable from a ride of
// zero length.
func Summarize(rides []domain.Ride) (Summary, error) {
	if len(rides) == 0 {
		return Summary{}, fmt.Errorf("stats.Summarize: %w", domain.ErrEmptySet)
	}

	s := Summary{Count: len(rides)}
	for _, ride := range rides {
		s.TotalDistance += ride.Distance
		s.TotalDuration += ride.Duration
	}
	s.MeanDistance = s.TotalDistance / float64(s.Count)
	s.MeanDuration = s.TotalDuration / float64(s.Count)
	if s.TotalDuration == 0 {
		s.AverageSpeed = math.NaN()
	} else {
		s.AverageSpeed = s.TotalDistance / s.TotalDuration
	}
	return s, nil
}

// CumulativeDistance returns the running prefix sum of ride distances in the
// order received. The result has the same length as the input; the first
// element equals the first ride's distance. An empty input yields an empty
// series, not an error.
func CumulativeDistance(rides []domain.Ride) []float64 {
	series := make([]float64, len(rides))
	sum := 0.0
	for i, ride := range rides {
		sum += ride.Distance
		series[i] = sum
	}
	return series
}
