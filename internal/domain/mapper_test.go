package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// obsRecord builds a current-conditions record with the shared San Francisco
// header AirNow repeats on every element of one response.
func obsRecord(param string, aqi, category int) Record {
	return Record{
		DateObserved:  "2024-08-07",
		HourObserved:  8,
		LocalTimeZone: "PDT",
		ReportingArea: "San Francisco",
		StateCode:     "CA",
		Latitude:      37.75,
		Longitude:     -122.43,
		ParameterName: param,
		AQI:           aqi,
		Category:      Category{Number: category, Name: "Good"},
	}
}

func forecastRecord(date, param string, aqi, category int, actionDay bool) Record {
	return Record{
		DateIssue:     "2024-08-06",
		DateForecast:  date,
		ReportingArea: "San Francisco",
		StateCode:     "CA",
		Latitude:      37.75,
		Longitude:     -122.43,
		ParameterName: param,
		AQI:           aqi,
		Category:      Category{Number: category, Name: "Good"},
		ActionDay:     actionDay,
	}
}

func countMetrics(set MetricSet) int {
	n := 0
	for _, m := range set.All() {
		if m != nil {
			n++
		}
	}
	return n
}

func TestBuildObservation(t *testing.T) {
	t.Run("five pollutants fill all five slots", func(t *testing.T) {
		records := []Record{
			obsRecord("CO", 4, 1),
			obsRecord("NO2", 12, 1),
			obsRecord("O3", 42, 1),
			obsRecord("PM2.5", 61, 2),
			obsRecord("PM10", 18, 1),
		}

		obs, err := BuildObservation(records)
		require.NoError(t, err)

		assert.Equal(t, "San Francisco", obs.ReportingArea)
		assert.Equal(t, "CA", obs.StateCode)
		assert.Equal(t, 37.75, obs.Latitude)
		assert.Equal(t, -122.43, obs.Longitude)
		assert.Equal(t, 8, obs.HourObserved)
		assert.Equal(t, "PDT", obs.LocalTimeZone)
		assert.Equal(t, time.Date(2024, 8, 7, 0, 0, 0, 0, time.UTC), obs.DateObserved)

		assert.Equal(t, 5, countMetrics(obs.Metrics))
		require.NotNil(t, obs.Metrics.PM25, "PM2.5 label lands in the PM25 slot")
		assert.Equal(t, "PM2.5", obs.Metrics.PM25.Name, "display name keeps the dot")
		assert.Equal(t, 61, obs.Metrics.PM25.AQI)
		assert.Equal(t, SeverityModerate, obs.Metrics.PM25.Severity)
		assert.Nil(t, obs.Metrics.PM25.IsActionDay, "observations carry no action day flag")
	})

	t.Run("observed_at combines date, hour, and zone", func(t *testing.T) {
		obs, err := BuildObservation([]Record{obsRecord("O3", 42, 1)})
		require.NoError(t, err)

		want := time.Date(2024, 8, 7, 8, 0, 0, 0, time.FixedZone("PDT", -7*60*60))
		assert.True(t, obs.ObservedAt.Equal(want), "got %s", obs.ObservedAt)

		name, offset := obs.ObservedAt.Zone()
		assert.Equal(t, "PDT", name)
		assert.Equal(t, -7*60*60, offset)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := BuildObservation(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("duplicate pollutant keeps the last record", func(t *testing.T) {
		first := obsRecord("O3", 40, 1)
		second := obsRecord("O3", 55, 2)

		obs, err := BuildObservation([]Record{first, second})
		require.NoError(t, err)

		require.NotNil(t, obs.Metrics.O3)
		assert.Equal(t, 55, obs.Metrics.O3.AQI)
		assert.Equal(t, SeverityModerate, obs.Metrics.O3.Severity)
	})

	t.Run("header comes from the first record", func(t *testing.T) {
		second := obsRecord("PM10", 18, 1)
		second.ReportingArea = "Oakland"
		second.HourObserved = 9

		obs, err := BuildObservation([]Record{obsRecord("O3", 42, 1), second})
		require.NoError(t, err)

		assert.Equal(t, "San Francisco", obs.ReportingArea)
		assert.Equal(t, 8, obs.HourObserved)
	})

	t.Run("unknown pollutant label", func(t *testing.T) {
		_, err := BuildObservation([]Record{obsRecord("SO2", 12, 1)})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedResponse)
		assert.Contains(t, err.Error(), `"SO2"`)
	})

	t.Run("category number 7 fails the severity range", func(t *testing.T) {
		_, err := BuildObservation([]Record{obsRecord("O3", 42, 7)})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedResponse)
		assert.Contains(t, err.Error(), "severity range 1-6")
	})

	t.Run("unknown timezone code", func(t *testing.T) {
		rec := obsRecord("O3", 42, 1)
		rec.LocalTimeZone = "XST"

		_, err := BuildObservation([]Record{rec})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownTimeZone)
		assert.Contains(t, err.Error(), "XST")
	})

	t.Run("hour outside 0-23", func(t *testing.T) {
		rec := obsRecord("O3", 42, 1)
		rec.HourObserved = 24

		_, err := BuildObservation([]Record{rec})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedResponse)
		assert.Contains(t, err.Error(), "0-23")
	})

	t.Run("trailing whitespace trimmed from dates", func(t *testing.T) {
		rec := obsRecord("O3", 42, 1)
		rec.DateObserved = "2024-08-07 "

		obs, err := BuildObservation([]Record{rec})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 8, 7, 0, 0, 0, 0, time.UTC), obs.DateObserved)
	})

	t.Run("non-ISO date rejected", func(t *testing.T) {
		rec := obsRecord("O3", 42, 1)
		rec.DateObserved = "08/07/2024"

		_, err := BuildObservation([]Record{rec})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedResponse)
		assert.Contains(t, err.Error(), "08/07/2024")
	})
}

func TestBuildForecasts(t *testing.T) {
	t.Run("groups by date in first-seen order", func(t *testing.T) {
		// Interleaved: three records for day A, two for day B.
		records := []Record{
			forecastRecord("2024-08-07", "O3", 42, 1, false),
			forecastRecord("2024-08-08", "O3", 51, 2, false),
			forecastRecord("2024-08-07", "PM2.5", 61, 2, true),
			forecastRecord("2024-08-08", "PM2.5", 44, 1, false),
			forecastRecord("2024-08-07", "PM10", 18, 1, false),
		}

		forecasts, err := BuildForecasts(records)
		require.NoError(t, err)
		require.Len(t, forecasts, 2)

		dayA, dayB := forecasts[0], forecasts[1]
		assert.Equal(t, time.Date(2024, 8, 7, 0, 0, 0, 0, time.UTC), dayA.DateForecast)
		assert.Equal(t, time.Date(2024, 8, 8, 0, 0, 0, 0, time.UTC), dayB.DateForecast)

		assert.Equal(t, 3, countMetrics(dayA.Metrics))
		require.NotNil(t, dayA.Metrics.O3)
		assert.Equal(t, 42, dayA.Metrics.O3.AQI)
		require.NotNil(t, dayA.Metrics.PM25)
		assert.Equal(t, 61, dayA.Metrics.PM25.AQI)
		require.NotNil(t, dayA.Metrics.PM10)

		assert.Equal(t, 2, countMetrics(dayB.Metrics))
		require.NotNil(t, dayB.Metrics.O3)
		assert.Equal(t, 51, dayB.Metrics.O3.AQI)
		require.NotNil(t, dayB.Metrics.PM25)
		assert.Equal(t, 44, dayB.Metrics.PM25.AQI)
		assert.Nil(t, dayB.Metrics.PM10, "day B has no PM10 record")
	})

	t.Run("single date", func(t *testing.T) {
		forecasts, err := BuildForecasts([]Record{forecastRecord("2024-08-07", "O3", 42, 1, false)})
		require.NoError(t, err)
		require.Len(t, forecasts, 1)

		f := forecasts[0]
		assert.Equal(t, time.Date(2024, 8, 6, 0, 0, 0, 0, time.UTC), f.DateIssued)
		assert.Equal(t, "San Francisco", f.ReportingArea)
		assert.Equal(t, "CA", f.StateCode)
		assert.Empty(t, f.Discussion, "mapper never fills discussion")
	})

	t.Run("action day flag carried on forecast metrics", func(t *testing.T) {
		forecasts, err := BuildForecasts([]Record{forecastRecord("2024-08-07", "PM2.5", 105, 3, true)})
		require.NoError(t, err)
		require.Len(t, forecasts, 1)

		m := forecasts[0].Metrics.PM25
		require.NotNil(t, m)
		require.NotNil(t, m.IsActionDay)
		assert.True(t, *m.IsActionDay)
		assert.Equal(t, SeverityUnhealthyForSensitiveGroups, m.Severity)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := BuildForecasts(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("severity error names the pollutant", func(t *testing.T) {
		_, err := BuildForecasts([]Record{forecastRecord("2024-08-07", "O3", 42, 0, false)})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedResponse)
		assert.Contains(t, err.Error(), "O3")
	})

	t.Run("unparsable forecast date", func(t *testing.T) {
		_, err := BuildForecasts([]Record{forecastRecord("tomorrow", "O3", 42, 1, false)})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedResponse)
		assert.Contains(t, err.Error(), "tomorrow")
	})

	t.Run("duplicate pollutant within one date keeps the last record", func(t *testing.T) {
		records := []Record{
			forecastRecord("2024-08-07", "O3", 40, 1, false),
			forecastRecord("2024-08-07", "O3", 58, 2, true),
		}

		forecasts, err := BuildForecasts(records)
		require.NoError(t, err)
		require.Len(t, forecasts, 1)
		require.NotNil(t, forecasts[0].Metrics.O3)
		assert.Equal(t, 58, forecasts[0].Metrics.O3.AQI)
	})
}
