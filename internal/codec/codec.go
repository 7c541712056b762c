// Package codec serializes rides to the line-oriented textual store format
// and parses them back. Each ride is one line of delimiter-separated fields
// in the order timestamp, distance, duration, comment, url. Fields containing
// the delimiter or a quote character are minimally quoted with double quotes,
// embedded quotes doubled, so decode(encode(ride)) reproduces every field
// exactly.
//
// The package also understands the historical store encodings (see legacy.go)
// so that Store.Migrate can upgrade old files to the current format.
package codec

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/loicseguin/velolog/internal/domain"
)

// DefaultDelimiter is the field delimiter of the current store format.
const DefaultDelimiter = ','

// Codec encodes and decodes rides under the current store format with a
// configurable single-character delimiter.
type Codec struct {
	delim rune
}

// New returns a Codec using the given field delimiter.
// A zero delimiter falls back to DefaultDelimiter.
func New(delim rune) Codec {
	if delim == 0 {
		delim = DefaultDelimiter
	}
	return Codec{delim: delim}
}

// Encode serializes one ride as a single line, including the trailing
// newline. The ride's ID is not persisted; it is re-derived from file
// position on load.
func (c Codec) Encode(ride domain.Ride) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = c.delim
	if err := w.Write(record(ride)); err != nil {
		return nil, fmt.Errorf("codec.Codec.Encode: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("codec.Codec.Encode: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeAll serializes the full ride sequence, one line per ride, in the
// order given.
func (c Codec) EncodeAll(rides []domain.Ride) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = c.delim
	for _, ride := range rides {
		if err := w.Write(record(ride)); err != nil {
			return nil, fmt.Errorf("codec.Codec.EncodeAll: ride %d: %w", ride.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("codec.Codec.EncodeAll: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeAll parses the full store content and assigns each ride its
// zero-based position as ID. Any malformed record fails the whole decode
// with an error wrapping domain.ErrMalformedRecord; there is no best-effort
// partial result.
func (c Codec) DecodeAll(data []byte) ([]domain.Ride, error) {
	// csv.Reader silently skips blank lines; a blank line in the store is a
	// damaged record and must fail the load instead.
	if n := blankLine(data); n >= 0 {
		return nil, fmt.Errorf("codec.Codec.DecodeAll: line %d: blank line: %w",
			n, domain.ErrMalformedRecord)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = c.delim
	r.FieldsPerRecord = 5

	var rides []domain.Ride
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rides, nil
		}
		if err != nil {
			return nil, fmt.Errorf("codec.Codec.DecodeAll: record %d: %v: %w",
				len(rides), err, domain.ErrMalformedRecord)
		}
		ride, err := fromFields(fields)
		if err != nil {
			return nil, fmt.Errorf("codec.Codec.DecodeAll: record %d: %w", len(rides), err)
		}
		ride.ID = len(rides)
		rides = append(rides, ride)
	}
}

// DecodeLine parses a single line under the current format. The returned
// ride has ID 0; bulk loads use DecodeAll, which assigns positions.
func (c Codec) DecodeLine(line string) (domain.Ride, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = c.delim
	r.FieldsPerRecord = 5

	fields, err := r.Read()
	if err != nil {
		return domain.Ride{}, fmt.Errorf("codec.Codec.DecodeLine: %v: %w", err, domain.ErrMalformedRecord)
	}
	// A second record means the "line" held more than one ride.
	if _, err := r.Read(); !errors.Is(err, io.EOF) {
		return domain.Ride{}, fmt.Errorf("codec.Codec.DecodeLine: trailing data: %w", domain.ErrMalformedRecord)
	}
	return fromFields(fields)
}

// record flattens a ride into its five persisted fields.
func record(ride domain.Ride) []string {
	return []string{
		ride.Timestamp.Format(domain.TimestampLayout),
		formatNumber(ride.Distance),
		formatNumber(ride.Duration),
		ride.Comment,
		ride.URL,
	}
}

// fromFields builds a ride from five decoded fields, validating the
// timestamp and numeric fields.
func fromFields(fields []string) (domain.Ride, error) {
	ts, err := time.Parse(domain.TimestampLayout, fields[0])
	if err != nil {
		return domain.Ride{}, fmt.Errorf("timestamp %q: %w", fields[0], domain.ErrMalformedRecord)
	}
	distance, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return domain.Ride{}, fmt.Errorf("distance %q: %w", fields[1], domain.ErrMalformedRecord)
	}
	duration, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return domain.Ride{}, fmt.Errorf("duration %q: %w", fields[2], domain.ErrMalformedRecord)
	}
	return domain.Ride{
		Timestamp: ts,
		Distance:  distance,
		Duration:  duration,
		Comment:   fields[3],
		URL:       fields[4],
	}, nil
}

// formatNumber renders a distance or duration in its shortest decimal form
// that round-trips through ParseFloat.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// blankLine returns the zero-based number of the first blank line outside
// any quoted field, or -1. A newline inside a quoted field belongs to that
// field, and the newline terminating the last record is not a blank line.
func blankLine(data []byte) int {
	inQuotes := false
	line, lineStart := 0, 0
	for i, b := range data {
		switch b {
		case '"':
			inQuotes = !inQuotes
		case '\n':
			if inQuotes {
				continue
			}
			if len(bytes.TrimSpace(data[lineStart:i])) == 0 && i != len(data)-1 {
				return line
			}
			line++
			lineStart = i + 1
		}
	}
	return -1
}
