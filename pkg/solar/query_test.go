package solar_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"sunpeak.xyz/solar-telemetry-service/pkg/common"
	"sunpeak.xyz/solar-telemetry-service/pkg/models"
	"sunpeak.xyz/solar-telemetry-service/pkg/solar"
	_ "sunpeak.xyz/solar-telemetry-service/pkg/testing"
)

func TestParseResolution(t *testing.T) {
	cases := []struct {
		raw      string
		expected solar.Resolution
		wantErr  bool
	}{
		{raw: "", expected: solar.ResolutionRaw},
		{raw: "raw", expected: solar.ResolutionRaw},
		{raw: "5min", expected: solar.Resolution5Min},
		{raw: "hour", expected: solar.ResolutionHour},
		{raw: "day", expected: solar.ResolutionDay},
		{raw: "month", expected: solar.ResolutionMonth},
		{raw: "fortnight", wantErr: true},
		{raw: "5MIN", wantErr: true},
	}

	for _, tc := range cases {
		got, err := solar.ParseResolution(tc.raw)
		if tc.wantErr {
			assert.ErrorIs(t, err, solar.ErrInvalidResolution, tc.raw)
			continue
		}
		assert.NoError(t, err, tc.raw)
		assert.Equal(t, tc.expected, got, tc.raw)
	}
}

func TestBucketTime(t *testing.T) {
	sample := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	assert.Equal(t, sample, solar.BucketTime(sample, solar.ResolutionRaw))
	assert.Equal(t,
		time.Date(2026, 3, 14, 9, 25, 0, 0, time.UTC),
		solar.BucketTime(sample, solar.Resolution5Min))
	assert.Equal(t,
		time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		solar.BucketTime(sample, solar.ResolutionHour))
	assert.Equal(t,
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		solar.BucketTime(sample, solar.ResolutionDay))
	assert.Equal(t,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		solar.BucketTime(sample, solar.ResolutionMonth))
}

func TestBucketRowsMean(t *testing.T) {
	deviceID := uuid.NewString()
	base := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	rows := []models.Telemetry{
		{DeviceID: deviceID, ParameterKey: "power", Time: base, Value: 1},
		{DeviceID: deviceID, ParameterKey: "power", Time: base.Add(2 * time.Minute), Value: 2},
		{DeviceID: deviceID, ParameterKey: "power", Time: base.Add(4 * time.Minute), Value: 3},
		{DeviceID: deviceID, ParameterKey: "power", Time: base.Add(6 * time.Minute), Value: 10},
	}

	points := solar.BucketRows(rows, solar.Resolution5Min)
	assert.Len(t, points, 2)

	// Samples at 00:00, 00:02, 00:04 all land in the 00:00 bucket and average.
	assert.Equal(t, base, points[0].Time)
	assert.Equal(t, 2.0, points[0].Values["power"])
	assert.Equal(t, base.Add(5*time.Minute), points[1].Time)
	assert.Equal(t, 10.0, points[1].Values["power"])
}

func TestBucketRowsMultiParameter(t *testing.T) {
	deviceID := uuid.NewString()
	base := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	rows := []models.Telemetry{
		{DeviceID: deviceID, ParameterKey: "power", Time: base.Add(time.Minute), Value: 5},
		{DeviceID: deviceID, ParameterKey: "voltage", Time: base.Add(2 * time.Minute), Value: 231},
		{DeviceID: deviceID, ParameterKey: "voltage", Time: base.Add(3 * time.Minute), Value: 233},
	}

	points := solar.BucketRows(rows, solar.Resolution5Min)
	assert.Len(t, points, 1)
	assert.Equal(t, 5.0, points[0].Values["power"])
	assert.Equal(t, 232.0, points[0].Values["voltage"])
}

func TestBucketRowsRawKeepsSubSecondSamples(t *testing.T) {
	deviceID := uuid.NewString()
	base := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	// Two samples inside the same second must stay distinct raw points,
	// not collapse into one averaged record.
	rows := []models.Telemetry{
		{DeviceID: deviceID, ParameterKey: "power", Time: base, Value: 10},
		{DeviceID: deviceID, ParameterKey: "power", Time: base.Add(500 * time.Millisecond), Value: 20},
	}

	points := solar.BucketRows(rows, solar.ResolutionRaw)
	assert.Len(t, points, 2)
	assert.Equal(t, base, points[0].Time)
	assert.Equal(t, 10.0, points[0].Values["power"])
	assert.Equal(t, base.Add(500*time.Millisecond), points[1].Time)
	assert.Equal(t, 20.0, points[1].Values["power"])
}

func TestDataPointMarshalJSON(t *testing.T) {
	point := solar.DataPoint{
		Time:   time.Date(2026, 3, 14, 9, 25, 0, 0, time.UTC),
		Values: map[string]float64{"power": 42.5},
	}

	raw, err := json.Marshal(point)
	assert.NoError(t, err)

	var out map[string]any
	assert.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "2026-03-14T09:25:00Z", out["time"])
	assert.Equal(t, 42.5, out["power"])
}

func TestDataPointMarshalJSONFractionalSecond(t *testing.T) {
	point := solar.DataPoint{
		Time:   time.Date(2026, 3, 14, 9, 25, 0, 500_000_000, time.UTC),
		Values: map[string]float64{"power": 42.5},
	}

	raw, err := json.Marshal(point)
	assert.NoError(t, err)

	// Fractional timestamps survive serialization instead of truncating.
	var out map[string]any
	assert.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "2026-03-14T09:25:00.5Z", out["time"])
}

func TestQueryTelemetry(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, solarObj, _, _, _ := GetMockSolarWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, deviceID := SeedSiteAndDevice(t, solarObj, 100)

	base := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	for i, v := range []float64{1, 2, 3} {
		assert.NoError(t, solarObj.Telemetry.IngestReadings(
			deviceID,
			base.Add(time.Duration(2*i)*time.Minute),
			map[string]float64{"power": v, "temperature": 40 + v},
		))
	}

	points, err := solarObj.Query.QueryTelemetry(
		deviceID, base, base.AddDate(0, 0, 1), solar.Resolution5Min, []string{"power"})
	assert.NoError(t, err)
	assert.Len(t, points, 1)
	assert.Equal(t, 2.0, points[0].Values["power"])

	// Parameter filter excluded temperature entirely.
	_, hasTemperature := points[0].Values["temperature"]
	assert.False(t, hasTemperature)
}

func TestQueryTelemetryWindowIsHalfOpen(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, solarObj, _, _, _ := GetMockSolarWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, deviceID := SeedSiteAndDevice(t, solarObj, 100)

	start := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	assert.NoError(t, solarObj.Telemetry.IngestReadings(deviceID, start, map[string]float64{"power": 1}))
	assert.NoError(t, solarObj.Telemetry.IngestReadings(deviceID, end, map[string]float64{"power": 2}))

	points, err := solarObj.Query.QueryTelemetry(deviceID, start, end, solar.ResolutionRaw, nil)
	assert.NoError(t, err)

	// The sample exactly at end is excluded.
	assert.Len(t, points, 1)
	assert.Equal(t, 1.0, points[0].Values["power"])
}

func TestQueryTelemetryUnknownDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, solarObj, _, _, _ := GetMockSolarWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	now := time.Now().UTC()
	_, err := solarObj.Query.QueryTelemetry(uuid.NewString(), now.Add(-time.Hour), now, solar.ResolutionRaw, nil)
	assert.ErrorIs(t, err, solar.ErrDeviceNotFound)
}
