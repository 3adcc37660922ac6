package domain

import (
	"fmt"
	"time"
)

// timezoneOffsets maps the U.S. timezone abbreviations AirNow uses to fixed
// whole-hour UTC offsets. Standard and daylight variants are separate entries,
// so resolving never does DST math.
var timezoneOffsets = map[string]int{
	"HST":  -10,
	"HDT":  -9,
	"AKST": -9,
	"AKDT": -8,
	"PST":  -8,
	"PDT":  -7,
	"MST":  -7,
	"MDT":  -6,
	"CST":  -6,
	"CDT":  -5,
	"EST":  -5,
	"EDT":  -4,
	"AST":  -4,
	"ADT":  -3,
}

// ResolveTimeZone returns a fixed-offset location named after the AirNow
// timezone abbreviation. Codes outside the 14-entry table fail with
// ErrUnknownTimeZone.
func ResolveTimeZone(code string) (*time.Location, error) {
	offset, ok := timezoneOffsets[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimeZone, code)
	}
	return time.FixedZone(code, offset*60*60), nil
}
