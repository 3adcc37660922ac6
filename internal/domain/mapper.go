package domain

import (
	"fmt"
	"strings"
	"time"
)

// BuildObservation maps a current-conditions response into an Observation.
// Header fields come from the first record; every record in one observation
// response describes the same place and time, differing only in pollutant.
// An empty input fails with ErrNoData.
func BuildObservation(records []Record) (Observation, error) {
	if len(records) == 0 {
		return Observation{}, ErrNoData
	}

	first := records[0]
	dateObserved, err := parseDate(first.DateObserved)
	if err != nil {
		return Observation{}, fmt.Errorf("parse DateObserved: %w", err)
	}
	if first.HourObserved < 0 || first.HourObserved > 23 {
		return Observation{}, fmt.Errorf("%w: hour observed %d outside range 0-23", ErrMalformedResponse, first.HourObserved)
	}
	zone, err := ResolveTimeZone(first.LocalTimeZone)
	if err != nil {
		return Observation{}, err
	}

	obs := Observation{
		DateObserved:  dateObserved,
		HourObserved:  first.HourObserved,
		LocalTimeZone: first.LocalTimeZone,
		ReportingArea: first.ReportingArea,
		StateCode:     first.StateCode,
		Latitude:      first.Latitude,
		Longitude:     first.Longitude,
		ObservedAt: time.Date(
			dateObserved.Year(), dateObserved.Month(), dateObserved.Day(),
			first.HourObserved, 0, 0, 0, zone,
		),
	}

	for _, rec := range records {
		metric, err := newMetric(rec, false)
		if err != nil {
			return Observation{}, err
		}
		if err := obs.Metrics.set(rec.ParameterName, metric); err != nil {
			return Observation{}, err
		}
	}

	return obs, nil
}

// BuildForecasts maps a forecast response into one Forecast per distinct
// forecast date. Records are grouped by their raw DateForecast value and
// groups are emitted in first-seen order, never sorted. Header fields come
// from each group's first record. An empty input fails with ErrNoData.
func BuildForecasts(records []Record) ([]Forecast, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	var order []string
	groups := make(map[string][]Record)
	for _, rec := range records {
		if _, seen := groups[rec.DateForecast]; !seen {
			order = append(order, rec.DateForecast)
		}
		groups[rec.DateForecast] = append(groups[rec.DateForecast], rec)
	}

	forecasts := make([]Forecast, 0, len(order))
	for _, key := range order {
		group := groups[key]
		first := group[0]

		dateIssued, err := parseDate(first.DateIssue)
		if err != nil {
			return nil, fmt.Errorf("parse DateIssue: %w", err)
		}
		dateForecast, err := parseDate(first.DateForecast)
		if err != nil {
			return nil, fmt.Errorf("parse DateForecast: %w", err)
		}

		forecast := Forecast{
			DateIssued:    dateIssued,
			DateForecast:  dateForecast,
			ReportingArea: first.ReportingArea,
			StateCode:     first.StateCode,
			Latitude:      first.Latitude,
			Longitude:     first.Longitude,
		}

		for _, rec := range group {
			metric, err := newMetric(rec, true)
			if err != nil {
				return nil, err
			}
			if err := forecast.Metrics.set(rec.ParameterName, metric); err != nil {
				return nil, err
			}
		}

		forecasts = append(forecasts, forecast)
	}

	return forecasts, nil
}

// newMetric builds one pollutant metric from a record. Forecast records carry
// the ActionDay flag; observation records leave it nil.
func newMetric(rec Record, forecast bool) (Metric, error) {
	severity, err := ParseSeverity(rec.Category.Number)
	if err != nil {
		return Metric{}, fmt.Errorf("pollutant %s: %w", rec.ParameterName, err)
	}

	metric := Metric{
		Name:     rec.ParameterName,
		AQI:      rec.AQI,
		Severity: severity,
	}
	if forecast {
		actionDay := rec.ActionDay
		metric.IsActionDay = &actionDay
	}
	return metric, nil
}

// parseDate parses a strict ISO calendar date after trimming the trailing
// whitespace AirNow sometimes pads dates with.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimRight(s, " \t\r\n"))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrMalformedResponse, s)
	}
	return t, nil
}
