// Package handler: export.go implements GET /export.
// Returns every ride in the requested year scope as a flat table.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"math"
	"net/http"
	"strconv"

	"github.com/loicseguin/velolog/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV
// export. Unlike the store file, the export carries the derived speed column
// for spreadsheet use.
var csvHeaders = []string{"id", "timestamp", "distance", "duration", "speed", "comment", "url"}

// GetExport handles GET /export.
// Year scoping works like GET /rides but defaults to all years: an export is
// a backup surface, not a per-season view.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	filter := domain.AllYears()
	if len(r.URL.Query()["year"]) > 0 {
		var err error
		filter, err = filterFromQuery(r)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
			return
		}
	}

	rides, err := s.rides.Load(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSVExport(w, rides)
		return
	}

	data := make([]rideResponse, len(rides))
	for i, ride := range rides {
		data[i] = rideToResponse(ride)
	}
	writeJSON(w, http.StatusOK, data)
}

// writeCSVExport encodes the rides as CSV with a header row.
// Zero-duration speeds are encoded as the empty string.
func writeCSVExport(w http.ResponseWriter, rides []domain.Ride) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, ride := range rides {
		speed := ""
		if v := ride.Speed(); !math.IsNaN(v) {
			speed = strconv.FormatFloat(v, 'g', -1, 64)
		}
		//nolint:errcheck
		cw.Write([]string{
			strconv.Itoa(ride.ID),
			ride.Timestamp.Format(domain.TimestampLayout),
			strconv.FormatFloat(ride.Distance, 'g', -1, 64),
			strconv.FormatFloat(ride.Duration, 'g', -1, 64),
			speed,
			ride.Comment,
			ride.URL,
		})
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="rides.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
