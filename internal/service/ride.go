// Package service contains the business logic for the velolog core.
// Services validate inputs, enforce business rules, and orchestrate store
// calls. No file I/O lives here; services depend on the store interface,
// not the file implementation.
package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/loicseguin/velolog/internal/domain"
	"github.com/loicseguin/velolog/internal/stats"
	"github.com/loicseguin/velolog/internal/store"
)

// RideService implements the collaborator-facing operations over a RideStore.
type RideService struct {
	store store.RideStore
}

// NewRideService constructs a RideService backed by the provided store.
func NewRideService(s store.RideStore) *RideService {
	return &RideService{store: s}
}

// Load returns the rides passing the year filter, ids assigned over the
// full unfiltered store.
func (s *RideService) Load(ctx context.Context, filter domain.YearFilter) ([]domain.Ride, error) {
	rides, err := s.store.Load(filter)
	if err != nil {
		return nil, fmt.Errorf("service.RideService.Load: %w", err)
	}
	return rides, nil
}

// Add validates and appends a new ride, returning it with the ordinal id it
// will carry on the next load. The input's ID is ignored; a zero Timestamp
// defaults to the current time.
func (s *RideService) Add(ctx context.Context, input domain.Ride) (domain.Ride, error) {
	if err := validate(input.Distance, input.Duration); err != nil {
		return domain.Ride{}, fmt.Errorf("service.RideService.Add: %w", err)
	}

	ts := input.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	// The store is the id authority; the appended ride's ordinal is the
	// current unfiltered record count.
	all, err := s.store.Load(domain.AllYears())
	if err != nil {
		return domain.Ride{}, fmt.Errorf("service.RideService.Add: %w", err)
	}

	ride := domain.Ride{
		ID: len(all),
		// The persisted format carries whole seconds only.
		Timestamp: ts.Truncate(time.Second),
		Distance:  input.Distance,
		Duration:  input.Duration,
		Comment:   input.Comment,
		URL:       input.URL,
	}
	if err := s.store.Append(ride); err != nil {
		return domain.Ride{}, fmt.Errorf("service.RideService.Add: %w", err)
	}
	return ride, nil
}

// Update replaces every field except the id of an existing ride and rewrites
// the store. There are no partial updates, matching the edit surface of the
// original tool.
func (s *RideService) Update(ctx context.Context, id int, input domain.Ride) (domain.Ride, error) {
	if err := validate(input.Distance, input.Duration); err != nil {
		return domain.Ride{}, fmt.Errorf("service.RideService.Update: %w", err)
	}
	if input.Timestamp.IsZero() {
		return domain.Ride{}, fmt.Errorf("service.RideService.Update: %w: timestamp is required", domain.ErrValidation)
	}

	all, err := s.store.Load(domain.AllYears())
	if err != nil {
		return domain.Ride{}, fmt.Errorf("service.RideService.Update: %w", err)
	}
	if id < 0 || id >= len(all) {
		return domain.Ride{}, fmt.Errorf("service.RideService.Update: ride %d: %w", id, domain.ErrNotFound)
	}

	all[id].Timestamp = input.Timestamp.Truncate(time.Second)
	all[id].Distance = input.Distance
	all[id].Duration = input.Duration
	all[id].Comment = input.Comment
	all[id].URL = input.URL

	if err := s.store.Rewrite(all); err != nil {
		return domain.Ride{}, fmt.Errorf("service.RideService.Update: %w", err)
	}
	return all[id], nil
}

// Delete removes a ride by id and rewrites the store. Every later ride's id
// shifts down by one on the next load; callers must re-load before issuing
// further id-based operations.
func (s *RideService) Delete(ctx context.Context, id int) error {
	all, err := s.store.Load(domain.AllYears())
	if err != nil {
		return fmt.Errorf("service.RideService.Delete: %w", err)
	}
	if id < 0 || id >= len(all) {
		return fmt.Errorf("service.RideService.Delete: ride %d: %w", id, domain.ErrNotFound)
	}

	remaining := append(all[:id:id], all[id+1:]...)
	if err := s.store.Rewrite(remaining); err != nil {
		return fmt.Errorf("service.RideService.Delete: %w", err)
	}
	return nil
}

// ViewURL returns the URL of the ride with the given id.
func (s *RideService) ViewURL(ctx context.Context, id int) (string, error) {
	all, err := s.store.Load(domain.AllYears())
	if err != nil {
		return "", fmt.Errorf("service.RideService.ViewURL: %w", err)
	}
	if id < 0 || id >= len(all) {
		return "", fmt.Errorf("service.RideService.ViewURL: ride %d: %w", id, domain.ErrNotFound)
	}
	if all[id].URL == "" {
		return "", fmt.Errorf("service.RideService.ViewURL: ride %d: %w", id, domain.ErrNoURL)
	}
	return all[id].URL, nil
}

// Stats summarizes the rides passing the year filter.
func (s *RideService) Stats(ctx context.Context, filter domain.YearFilter) (stats.Summary, error) {
	rides, err := s.store.Load(filter)
	if err != nil {
		return stats.Summary{}, fmt.Errorf("service.RideService.Stats: %w", err)
	}
	return stats.Summarize(rides)
}

// Series returns the cumulative-distance series over the rides passing the
// year filter, in store order.
func (s *RideService) Series(ctx context.Context, filter domain.YearFilter) ([]float64, error) {
	rides, err := s.store.Load(filter)
	if err != nil {
		return nil, fmt.Errorf("service.RideService.Series: %w", err)
	}
	return stats.CumulativeDistance(rides), nil
}

// Migrate upgrades the store file to the current encoding.
func (s *RideService) Migrate(ctx context.Context) error {
	if err := s.store.Migrate(); err != nil {
		return fmt.Errorf("service.RideService.Migrate: %w", err)
	}
	return nil
}

// validate enforces the numeric business rules shared by Add and Update.
// ParseFloat and the duration parser accept "nan" and "inf" spellings, so
// finiteness is checked here rather than at every parse site.
func validate(distance, duration float64) error {
	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return fmt.Errorf("%w: distance must be a finite number", domain.ErrValidation)
	}
	if distance < 0 {
		return fmt.Errorf("%w: distance must be non-negative", domain.ErrValidation)
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) {
		return fmt.Errorf("%w: duration must be a finite number", domain.ErrValidation)
	}
	if duration < 0 {
		return fmt.Errorf("%w: duration must be non-negative", domain.ErrValidation)
	}
	return nil
}
