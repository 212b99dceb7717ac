// Package dateconv converts dates between common formats.
package dateconv

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Conversions holds one instant rendered in every supported format.
type Conversions struct {
	RFC3339       string
	RFC2822       string
	ISO8601       string
	UnixTimestamp string
	HumanReadable string
	ShortDate     string
	TimeOnly      string
}

// Layouts accepted for textual inputs, tried in order.
var inputLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05-07:00",
	"02/01/2006 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// Parse interprets the input as a Unix timestamp or one of the supported
// textual layouts, always in UTC.
func Parse(input string) (time.Time, error) {
	if ts, err := strconv.ParseInt(input, 10, 64); err == nil {
		if ts < math.MinInt32 || ts > math.MaxInt32 {
			return time.Time{}, fmt.Errorf("timestamp %d out of supported range", ts)
		}
		return time.Unix(ts, 0).UTC(), nil
	}
	for _, layout := range inputLayouts {
		parsed, err := time.Parse(layout, input)
		if err != nil {
			continue
		}
		parsed = parsed.UTC()
		if year := parsed.Year(); year < 1 || year > 9999 {
			return time.Time{}, fmt.Errorf("year %d out of supported range (1-9999)", year)
		}
		return parsed, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date-time format %q", input)
}

// Convert parses the input and renders it in all supported formats.
func Convert(input string) (Conversions, error) {
	t, err := Parse(input)
	if err != nil {
		return Conversions{}, err
	}
	return Conversions{
		RFC3339:       t.Format(time.RFC3339),
		RFC2822:       t.Format("Mon, 02 Jan 2006 15:04:05 -0700"),
		ISO8601:       t.Format("2006-01-02T15:04:05-07:00"),
		UnixTimestamp: strconv.FormatInt(t.Unix(), 10),
		HumanReadable: t.Format("Monday, January 02, 2006, 03:04:05 PM"),
		ShortDate:     t.Format("02/01/2006"),
		TimeOnly:      t.Format("15:04:05"),
	}, nil
}
