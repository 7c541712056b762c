package codec

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/loicseguin/velolog/internal/domain"
)

// Historical store encodings, newest first:
//
//	pipe5       five fields delimited by "|||", timestamp "DD-MM-YYYY HH:MM:SS"
//	whitespace4 four whitespace-delimited columns (timestamp distance duration
//	            comment...), the comment greedily consuming the remaining
//	            tokens, no url; timestamp "DD/Mon/YYYY-HH:MM:SS" or
//	            "DD/MM/YYYY-HH:MM:SS" (space-free, so it stays one token)
//
// Migration always normalizes to the current format.

const (
	pipeDelimiter   = "|||"
	pipeLayout      = "02-01-2006 15:04:05"
	wsMonthLayout   = "02/Jan/2006-15:04:05"
	wsNumericLayout = "02/01/2006-15:04:05"
)

// DecodeAny parses one line under the current format, then under each legacy
// grammar in newest-first order. It fails with domain.ErrMalformedRecord
// only when every grammar rejects the line.
func (c Codec) DecodeAny(line string) (domain.Ride, error) {
	if ride, err := c.DecodeLine(line); err == nil {
		return ride, nil
	}
	if ride, err := decodePipe5(line); err == nil {
		return ride, nil
	}
	if ride, err := decodeWhitespace4(line); err == nil {
		return ride, nil
	}
	return domain.Ride{}, fmt.Errorf("codec.Codec.DecodeAny: no known format matches %q: %w",
		line, domain.ErrMalformedRecord)
}

// decodePipe5 parses the "|||"-delimited 5-column legacy format.
func decodePipe5(line string) (domain.Ride, error) {
	fields := strings.Split(line, pipeDelimiter)
	if len(fields) != 5 {
		return domain.Ride{}, fmt.Errorf("pipe5: %d fields: %w", len(fields), domain.ErrMalformedRecord)
	}
	ts, err := time.Parse(pipeLayout, fields[0])
	if err != nil {
		return domain.Ride{}, fmt.Errorf("pipe5: timestamp %q: %w", fields[0], domain.ErrMalformedRecord)
	}
	distance, duration, err := parseNumbers(fields[1], fields[2])
	if err != nil {
		return domain.Ride{}, fmt.Errorf("pipe5: %w", err)
	}
	return domain.Ride{
		Timestamp: ts,
		Distance:  distance,
		Duration:  duration,
		Comment:   fields[3],
		URL:       fields[4],
	}, nil
}

// decodeWhitespace4 parses the whitespace-delimited 4-column legacy format.
// The comment is everything after the duration, rejoined with single spaces;
// the original format predates the url field, so URL is always empty.
func decodeWhitespace4(line string) (domain.Ride, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return domain.Ride{}, fmt.Errorf("whitespace4: %d fields: %w", len(fields), domain.ErrMalformedRecord)
	}
	ts, err := time.Parse(wsMonthLayout, fields[0])
	if err != nil {
		ts, err = time.Parse(wsNumericLayout, fields[0])
	}
	if err != nil {
		return domain.Ride{}, fmt.Errorf("whitespace4: timestamp %q: %w", fields[0], domain.ErrMalformedRecord)
	}
	distance, duration, err := parseNumbers(fields[1], fields[2])
	if err != nil {
		return domain.Ride{}, fmt.Errorf("whitespace4: %w", err)
	}
	return domain.Ride{
		Timestamp: ts,
		Distance:  distance,
		Duration:  duration,
		Comment:   strings.Join(fields[3:], " "),
	}, nil
}

// parseNumbers validates the distance and duration columns shared by every
// legacy grammar.
func parseNumbers(distanceField, durationField string) (float64, float64, error) {
	distance, err := strconv.ParseFloat(distanceField, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("distance %q: %w", distanceField, domain.ErrMalformedRecord)
	}
	duration, err := strconv.ParseFloat(durationField, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("duration %q: %w", durationField, domain.ErrMalformedRecord)
	}
	return distance, duration, nil
}
