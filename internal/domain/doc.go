// Package domain models AirNow air quality data.
//
// # Data Source
//
// Readings come from the EPA AirNow API (https://docs.airnowapi.org/), queried
// by U.S. zip code. Both endpoints (current observation, forecast) return a
// JSON array of flat records, one record per pollutant per reporting area.
// A "reporting area" is the named region AirNow publishes readings for, e.g.
// "San Francisco"; every record in one response repeats the same header fields
// (dates, area, coordinates) and differs only in its pollutant columns.
//
// # AirNow Data Conventions
//
// Pollutant labels ("ParameterName" column):
//
//	CO, NO2, O3, PM2.5, PM10
//	The set is closed. "PM2.5" is the only label unsafe as an identifier, so
//	it maps to the PM25 metric slot; the display name keeps the dot. Records
//	carrying any other label are rejected as malformed.
//
// AQI categories ("Category.Number" column):
//
//	1 good | 2 moderate | 3 unhealthy for sensitive groups
//	4 unhealthy | 5 very unhealthy | 6 hazardous
//	Values outside 1-6 are rejected. These are the EPA's published category
//	tiers; the number, not the category name string, is authoritative.
//
// Timezones ("LocalTimeZone" column, observations only):
//
//	AirNow reports local time as a U.S. timezone abbreviation, not an IANA
//	name. The 14 known codes map to fixed whole-hour UTC offsets (HST -10
//	through ADT -3); standard/daylight variants are distinct codes, so no DST
//	arithmetic happens here. See [ResolveTimeZone].
//
// Dates:
//
//	ISO calendar dates ("2024-08-07"), occasionally padded with trailing
//	whitespace upstream. Trailing whitespace is trimmed before parsing;
//	anything else non-ISO is rejected. Observations carry a separate
//	"HourObserved" (0-23) in the reporting area's local timezone.
//
// Forecasts:
//
//	One forecast request may cover several days. Records are grouped by their
//	raw "DateForecast" value, first-seen order, one [Forecast] per date.
//	Forecast records add an "ActionDay" flag (public air quality advisory);
//	observation records do not carry it.
package domain
