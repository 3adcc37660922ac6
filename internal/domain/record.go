package domain

// Record is one element of an AirNow response array, field names as the API
// sends them. Observation responses fill DateObserved/HourObserved/
// LocalTimeZone; forecast responses fill DateIssue/DateForecast/ActionDay.
// The remaining fields appear in both.
type Record struct {
	DateObserved  string   `json:"DateObserved"`
	HourObserved  int      `json:"HourObserved"`
	LocalTimeZone string   `json:"LocalTimeZone"`
	DateIssue     string   `json:"DateIssue"`
	DateForecast  string   `json:"DateForecast"`
	ReportingArea string   `json:"ReportingArea"`
	StateCode     string   `json:"StateCode"`
	Latitude      float64  `json:"Latitude"`
	Longitude     float64  `json:"Longitude"`
	ParameterName string   `json:"ParameterName"`
	AQI           int      `json:"AQI"`
	Category      Category `json:"Category"`
	ActionDay     bool     `json:"ActionDay"`
}

// Category is the nested AQI category object. Number is authoritative; Name
// is display text the mapper ignores.
type Category struct {
	Number int    `json:"Number"`
	Name   string `json:"Name"`
}
