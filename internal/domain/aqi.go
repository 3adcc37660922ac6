package domain

import (
	"fmt"
	"time"
)

// Severity is the EPA AQI category tier, 1 (good) through 6 (hazardous).
type Severity int

const (
	SeverityGood Severity = iota + 1
	SeverityModerate
	SeverityUnhealthyForSensitiveGroups
	SeverityUnhealthy
	SeverityVeryUnhealthy
	SeverityHazardous
)

// ParseSeverity converts an AirNow category number into a Severity.
// Numbers outside 1-6 are rejected.
func ParseSeverity(number int) (Severity, error) {
	if number < int(SeverityGood) || number > int(SeverityHazardous) {
		return 0, fmt.Errorf("%w: category number %d outside severity range 1-6", ErrMalformedResponse, number)
	}
	return Severity(number), nil
}

func (s Severity) String() string {
	switch s {
	case SeverityGood:
		return "good"
	case SeverityModerate:
		return "moderate"
	case SeverityUnhealthyForSensitiveGroups:
		return "unhealthy_for_sensitive_groups"
	case SeverityUnhealthy:
		return "unhealthy"
	case SeverityVeryUnhealthy:
		return "very_unhealthy"
	case SeverityHazardous:
		return "hazardous"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Metric is one pollutant's reading: the display label as AirNow sends it
// (e.g. "PM2.5"), the AQI value, and its severity tier. IsActionDay is nil on
// observation metrics; forecast metrics always carry it.
type Metric struct {
	Name        string
	AQI         int
	Severity    Severity
	IsActionDay *bool
}

// MetricSet holds the five pollutant slots. A slot is nil when the upstream
// response had no record for that pollutant.
type MetricSet struct {
	CO   *Metric
	NO2  *Metric
	O3   *Metric
	PM25 *Metric
	PM10 *Metric
}

// All returns the slots in fixed order CO, NO2, O3, PM2.5, PM10, nil slots
// included. This order is the render order.
func (m *MetricSet) All() []*Metric {
	return []*Metric{m.CO, m.NO2, m.O3, m.PM25, m.PM10}
}

// set assigns a metric to the slot for an AirNow pollutant label. Later
// assignments to the same slot overwrite earlier ones. Unrecognized labels
// are rejected rather than silently dropped.
func (m *MetricSet) set(label string, metric Metric) error {
	switch label {
	case "CO":
		m.CO = &metric
	case "NO2":
		m.NO2 = &metric
	case "O3":
		m.O3 = &metric
	case "PM2.5":
		m.PM25 = &metric
	case "PM10":
		m.PM10 = &metric
	default:
		return fmt.Errorf("%w: unrecognized pollutant label %q", ErrMalformedResponse, label)
	}
	return nil
}

// Observation is the current-conditions snapshot for one reporting area.
type Observation struct {
	DateObserved  time.Time // calendar date, midnight UTC
	HourObserved  int
	LocalTimeZone string // AirNow abbreviation, e.g. "PST"
	ReportingArea string
	StateCode     string
	Latitude      float64
	Longitude     float64

	// ObservedAt is DateObserved+HourObserved in the zone resolved from
	// LocalTimeZone.
	ObservedAt time.Time

	Metrics MetricSet
}

// Forecast is the predicted conditions for one reporting area on one date.
// One AirNow forecast response can yield several of these, one per distinct
// forecast date.
type Forecast struct {
	DateIssued    time.Time
	DateForecast  time.Time
	ReportingArea string
	StateCode     string
	Latitude      float64
	Longitude     float64

	// Discussion is supplemental narrative text. The mapper never populates
	// it from this API's records.
	Discussion string

	Metrics MetricSet
}
