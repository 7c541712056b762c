package handler

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/loicseguin/velolog/internal/domain"
)

// rideRequest is the JSON body for POST /rides and PUT /rides/{id}.
// Duration is a string accepted in any of the duration grammars ("1.5",
// "1:30", "1h30", "1h"), so interactive clients can pass user input through
// unchanged. Timestamp uses the store layout and is optional on create.
type rideRequest struct {
	Timestamp string  `json:"timestamp,omitempty"`
	Distance  float64 `json:"distance"`
	Duration  string  `json:"duration"`
	Comment   string  `json:"comment,omitempty"`
	URL       string  `json:"url,omitempty"`
}

// rideResponse is the JSON representation of a ride. Speed is null for
// zero-duration rides; NaN is not representable in JSON.
type rideResponse struct {
	ID        int      `json:"id"`
	Timestamp string   `json:"timestamp"`
	Distance  float64  `json:"distance"`
	Duration  float64  `json:"duration"`
	Speed     *float64 `json:"speed"`
	Comment   string   `json:"comment"`
	URL       string   `json:"url"`
}

// ListRides handles GET /rides.
// Supports repeated ?year= query parameters or ?year=all; the default scope
// is the current calendar year.
func (s *Server) ListRides(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	rides, err := s.rides.Load(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	data := make([]rideResponse, len(rides))
	for i, ride := range rides {
		data[i] = rideToResponse(ride)
	}
	writeJSON(w, http.StatusOK, data)
}

// CreateRide handles POST /rides.
func (s *Server) CreateRide(w http.ResponseWriter, r *http.Request) {
	input, err := decodeRideRequest(r, false)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	created, err := s.rides.Add(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rideToResponse(created))
}

// UpdateRide handles PUT /rides/{id}.
func (s *Server) UpdateRide(w http.ResponseWriter, r *http.Request) {
	id, ok := rideID(w, r)
	if !ok {
		return
	}
	input, err := decodeRideRequest(r, true)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	updated, err := s.rides.Update(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rideToResponse(updated))
}

// DeleteRide handles DELETE /rides/{id}.
// Deleting a ride shifts the ids of all later rides; clients must re-list
// before issuing further id-based requests.
func (s *Server) DeleteRide(w http.ResponseWriter, r *http.Request) {
	id, ok := rideID(w, r)
	if !ok {
		return
	}
	if err := s.rides.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetRideURL handles GET /rides/{id}/url.
func (s *Server) GetRideURL(w http.ResponseWriter, r *http.Request) {
	id, ok := rideID(w, r)
	if !ok {
		return
	}
	url, err := s.rides.ViewURL(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// Migrate handles POST /migrate: it upgrades the store file to the current
// encoding. Idempotent.
func (s *Server) Migrate(w http.ResponseWriter, r *http.Request) {
	if err := s.rides.Migrate(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "migrated"})
}

// ---- helpers ---------------------------------------------------------------

// rideID extracts and validates the {id} path parameter, writing a 422 and
// returning ok=false when it is not an integer.
func rideID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "ride id must be an integer")
		return 0, false
	}
	return id, true
}

// decodeRideRequest parses and validates a ride body. When requireTimestamp
// is false (create), a missing timestamp stays zero and the service fills in
// the current time.
func decodeRideRequest(r *http.Request, requireTimestamp bool) (domain.Ride, error) {
	var req rideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return domain.Ride{}, errors.New("invalid JSON body")
	}

	duration, err := domain.ParseDuration(req.Duration)
	if err != nil {
		return domain.Ride{}, err
	}

	var ts time.Time
	if req.Timestamp != "" {
		ts, err = time.Parse(domain.TimestampLayout, req.Timestamp)
		if err != nil {
			return domain.Ride{}, errors.New("timestamp must match " + domain.TimestampLayout)
		}
	} else if requireTimestamp {
		return domain.Ride{}, errors.New("timestamp is required")
	}

	return domain.Ride{
		Timestamp: ts,
		Distance:  req.Distance,
		Duration:  duration,
		Comment:   req.Comment,
		URL:       req.URL,
	}, nil
}

// rideToResponse maps a domain ride to its JSON form, converting the NaN
// speed sentinel to null.
func rideToResponse(ride domain.Ride) rideResponse {
	resp := rideResponse{
		ID:        ride.ID,
		Timestamp: ride.Timestamp.Format(domain.TimestampLayout),
		Distance:  ride.Distance,
		Duration:  ride.Duration,
		Comment:   ride.Comment,
		URL:       ride.URL,
	}
	if speed := ride.Speed(); !math.IsNaN(speed) {
		resp.Speed = &speed
	}
	return resp
}

// filterFromQuery builds the year filter from ?year= parameters.
// "all" selects every year; no parameter selects the current year.
func filterFromQuery(r *http.Request) (domain.YearFilter, error) {
	values := r.URL.Query()["year"]
	if len(values) == 0 {
		return domain.CurrentYear(), nil
	}

	var years []int
	for _, v := range values {
		if v == "all" {
			return domain.AllYears(), nil
		}
		y, err := strconv.Atoi(v)
		if err != nil {
			return domain.YearFilter{}, errors.New("year must be an integer or \"all\"")
		}
		years = append(years, y)
	}
	return domain.Years(years...), nil
}
