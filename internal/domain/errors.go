package domain

import "errors"

// Sentinel errors for the failure classes a report cycle can hit. Callers
// classify with errors.Is; adapters wrap these with request detail.
var (
	// ErrNoData indicates the AirNow API returned an empty result set for
	// the queried zip code.
	ErrNoData = errors.New("no air quality data available")

	// ErrUnknownTimeZone indicates an observation reported a timezone
	// abbreviation outside the known 14-code table.
	ErrUnknownTimeZone = errors.New("unknown timezone code")

	// ErrMalformedResponse indicates a response record that cannot be mapped:
	// an unparsable date, an hour outside 0-23, a category number outside
	// 1-6, or an unrecognized pollutant label.
	ErrMalformedResponse = errors.New("malformed air quality response")
)
