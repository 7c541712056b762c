package handler_test

import (
	"context"
	"math"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loicseguin/velolog/internal/domain"
	"github.com/loicseguin/velolog/internal/stats"
)

// ---- GET /stats ------------------------------------------------------------

func TestGetStats_200(t *testing.T) {
	h := newHTTPHandler(&mockRideServicer{
		stats: func(context.Context, domain.YearFilter) (stats.Summary, error) {
			return stats.Summary{
				Count:         2,
				TotalDistance: 50,
				TotalDuration: 2.5,
				MeanDistance:  25,
				MeanDuration:  1.25,
				AverageSpeed:  20,
			}, nil
		},
	})

	rec := doJSON(t, h, http.MethodGet, "/stats?year=2024", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.EqualValues(t, 2, body["count"])
	assert.EqualValues(t, 50, body["total_distance"])
	assert.EqualValues(t, 20, body["average_speed"])
}

func TestGetStats_zeroDuration_nullAverageSpeed(t *testing.T) {
	h := newHTTPHandler(&mockRideServicer{
		stats: func(context.Context, domain.YearFilter) (stats.Summary, error) {
			return stats.Summary{Count: 1, TotalDistance: 10, AverageSpeed: math.NaN()}, nil
		},
	})

	rec := doJSON(t, h, http.MethodGet, "/stats", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	speed, present := body["average_speed"]
	assert.True(t, present)
	assert.Nil(t, speed)
}

func TestGetStats_emptyScope_404(t *testing.T) {
	h := newHTTPHandler(&mockRideServicer{
		stats: func(context.Context, domain.YearFilter) (stats.Summary, error) {
			return stats.Summary{}, domain.ErrEmptySet
		},
	})

	rec := doJSON(t, h, http.MethodGet, "/stats?year=1999", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[map[string]map[string]string](t, rec)
	assert.Equal(t, "no_data", body["error"]["code"])
}

// ---- GET /series -----------------------------------------------------------

func TestGetSeries_200(t *testing.T) {
	h := newHTTPHandler(&mockRideServicer{
		series: func(context.Context, domain.YearFilter) ([]float64, error) {
			return []float64{20, 35, 60}, nil
		},
	})

	rec := doJSON(t, h, http.MethodGet, "/series?year=all", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string][]float64](t, rec)
	assert.Equal(t, []float64{20, 35, 60}, body["cumulative_distance"])
}

// TestGetSeries_emptyScope verifies the graph endpoint yields an empty array,
// not null and not an error.
func TestGetSeries_emptyScope(t *testing.T) {
	h := newHTTPHandler(&mockRideServicer{
		series: func(context.Context, domain.YearFilter) ([]float64, error) {
			return nil, nil
		},
	})

	rec := doJSON(t, h, http.MethodGet, "/series?year=1999", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cumulative_distance": []}`, rec.Body.String())
}

// ---- GET /export -----------------------------------------------------------

func TestGetExport_csv(t *testing.T) {
	h := newHTTPHandler(&mockRideServicer{
		load: func(_ context.Context, f domain.YearFilter) ([]domain.Ride, error) {
			assert.True(t, f.All())
			return []domain.Ride{rideFixture()}, nil
		},
	})

	rec := doJSON(t, h, http.MethodGet, "/export?format=csv", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "rides.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,timestamp,distance,duration,speed,comment,url", lines[0])
	assert.Equal(t, "1,2024-01-01 10:00:00,20,1,20,loop,", lines[1])
}

func TestGetExport_json(t *testing.T) {
	h := newHTTPHandler(&mockRideServicer{
		load: func(context.Context, domain.YearFilter) ([]domain.Ride, error) {
			return []domain.Ride{rideFixture()}, nil
		},
	})

	rec := doJSON(t, h, http.MethodGet, "/export", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[[]map[string]any](t, rec)
	require.Len(t, body, 1)
	assert.EqualValues(t, 1, body[0]["id"])
}

func TestGetExport_yearScoped(t *testing.T) {
	h := newHTTPHandler(&mockRideServicer{
		load: func(_ context.Context, f domain.YearFilter) ([]domain.Ride, error) {
			assert.False(t, f.All())
			assert.Equal(t, []int{2023}, f.List())
			return nil, nil
		},
	})

	rec := doJSON(t, h, http.MethodGet, "/export?year=2023", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
