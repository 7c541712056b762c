package handler

import (
	"math"
	"net/http"

	"github.com/loicseguin/velolog/internal/stats"
)

// statsResponse is the JSON form of a stats.Summary. AverageSpeed is null
// when the total duration is zero (the NaN sentinel has no JSON form).
type statsResponse struct {
	Count         int      `json:"count"`
	TotalDistance float64  `json:"total_distance"`
	TotalDuration float64  `json:"total_duration"`
	MeanDistance  float64  `json:"mean_distance"`
	MeanDuration  float64  `json:"mean_duration"`
	AverageSpeed  *float64 `json:"average_speed"`
}

// GetStats handles GET /stats.
// The year scope works like GET /rides; an empty scope is a 404 "no_data"
// rather than a summary of zeros.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	summary, err := s.rides.Stats(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryToResponse(summary))
}

// GetSeries handles GET /series.
// It returns the cumulative-distance series of the scoped rides in store
// order, the data behind the distance graph. An empty scope yields an
// empty series, not an error.
func (s *Server) GetSeries(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	series, err := s.rides.Series(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if series == nil {
		series = []float64{}
	}
	writeJSON(w, http.StatusOK, map[string][]float64{"cumulative_distance": series})
}

// summaryToResponse converts the NaN average-speed sentinel to null.
func summaryToResponse(summary stats.Summary) statsResponse {
	resp := statsResponse{
		Count:         summary.Count,
		TotalDistance: summary.TotalDistance,
		TotalDuration: summary.TotalDuration,
		MeanDistance:  summary.MeanDistance,
		MeanDuration:  summary.MeanDuration,
	}
	if !math.IsNaN(summary.AverageSpeed) {
		resp.AverageSpeed = &summary.AverageSpeed
	}
	return resp
}
