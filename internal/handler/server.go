// Package handler implements the HTTP handlers for the velolog API.
// All handlers are methods on Server. Methods are split into resource files
// (ride.go, stats.go, export.go) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/loicseguin/velolog/internal/domain"
	"github.com/loicseguin/velolog/internal/stats"
)

// RideServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the file store or service layer.
type RideServicer interface {
	Load(ctx context.Context, filter domain.YearFilter) ([]domain.Ride, error)
	Add(ctx context.Context, input domain.Ride) (domain.Ride, error)
	Update(ctx context.Context, id int, input domain.Ride) (domain.Ride, error)
	Delete(ctx context.Context, id int) error
	ViewURL(ctx context.Context, id int) (string, error)
	Stats(ctx context.Context, filter domain.YearFilter) (stats.Summary, error)
	Series(ctx context.Context, filter domain.YearFilter) ([]float64, error)
	Migrate(ctx context.Context) error
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	rides RideServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(rides RideServicer) *Server {
	return &Server{rides: rides}
}

// Routes returns the chi router with every API endpoint registered.
// Middleware is the caller's concern; main.go wires it around this router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Route("/rides", func(r chi.Router) {
		r.Get("/", s.ListRides)
		r.Post("/", s.CreateRide)
		r.Put("/{id}", s.UpdateRide)
		r.Delete("/{id}", s.DeleteRide)
		r.Get("/{id}/url", s.GetRideURL)
	})
	r.Get("/stats", s.GetStats)
	r.Get("/series", s.GetSeries)
	r.Get("/export", s.GetExport)
	r.Post("/migrate", s.Migrate)
	return r
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
