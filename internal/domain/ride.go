// Package domain contains the core data types for the velolog ride log.
// This package has zero external dependencies and is imported by every other
// internal package (codec, store, stats, service, handler).
package domain

import (
	"math"
	"time"
)

// TimestampLayout is the fixed-width timestamp format used by the current
// on-disk encoding and by every user-facing surface that displays a full
// timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// Ride represents one logged activity.
//
// ID is the ordinal position of the record within the store at load time,
// counted over the full unfiltered file. It is NOT a persisted stable key:
// it is recomputed on every load, so deleting a record shifts the ids of all
// later records. Downstream tooling depends on this numbering, so it must
// not be "fixed" by persisting ids.
type Ride struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Distance  float64   `json:"distance"` // kilometers, non-negative
	Duration  float64   `json:"duration"` // hours, may be zero
	Comment   string    `json:"comment,omitempty"`
	URL       string    `json:"url,omitempty"` // empty string means no URL
}

// Speed returns the average speed of the ride in km/h.
// A zero-duration ride yields NaN rather than a division fault; callers that
// serialize to JSON must map NaN to null themselves.
func (r Ride) Speed() float64 {
	if r.Duration == 0 {
		return math.NaN()
	}
	return r.Distance / r.Duration
}
