package solar_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sunpeak.xyz/solar-telemetry-service/pkg/common"
	"sunpeak.xyz/solar-telemetry-service/pkg/models"
	"sunpeak.xyz/solar-telemetry-service/pkg/solar"
	_ "sunpeak.xyz/solar-telemetry-service/pkg/testing"
)

func TestIngestReadings(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, solarObj, _, _, _ := GetMockSolarWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, deviceID := SeedSiteAndDevice(t, solarObj, 100)

	ts := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	err := solarObj.Telemetry.IngestReadings(deviceID, ts, map[string]float64{
		"power":       42.5,
		"temperature": 51.0,
	})
	assert.NoError(t, err)

	var rows []models.Telemetry
	err = solarObj.Db.Conn.Where("device_id = ?", deviceID).Find(&rows).Error
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	// Ingestion flips the device online and stamps last_seen from the message.
	var device models.Device
	err = solarObj.Db.Conn.First(&device, "id = ?", deviceID).Error
	assert.NoError(t, err)
	assert.Equal(t, models.DeviceStatusOnline, device.Status)
	assert.NotNil(t, device.LastSeen)
	assert.Equal(t, ts, device.LastSeen.UTC())
}

func TestIngestReadingsIdempotent(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, solarObj, _, _, _ := GetMockSolarWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, deviceID := SeedSiteAndDevice(t, solarObj, 100)

	ts := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	readings := map[string]float64{"power": 42.5}

	// Same message delivered twice, as an at-least-once broker would.
	assert.NoError(t, solarObj.Telemetry.IngestReadings(deviceID, ts, readings))
	assert.NoError(t, solarObj.Telemetry.IngestReadings(deviceID, ts, readings))

	var count int64
	err := solarObj.Db.Conn.Model(&models.Telemetry{}).
		Where("device_id = ?", deviceID).
		Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestIngestReadingsEmitsEventAfterWrite(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, solarObj, _, _, mockIEvents := GetMockSolarWithMemorySqliteDialector(t, false, false, true)
	defer ctrl.Finish()

	_, deviceID := SeedSiteAndDevice(t, solarObj, 100)

	ts := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)

	mockIEvents.EXPECT().
		PublishDevice(deviceID, solar.EventTelemetryUpdate, gomock.Any()).
		Do(func(_ string, _ string, payload any) {
			update, ok := payload.(solar.TelemetryUpdate)
			assert.True(t, ok)
			assert.Equal(t, deviceID, update.DeviceID)
			assert.Equal(t, 42.5, update.Data["power"])

			// The event must be observable only after the rows are durable.
			var count int64
			err := solarObj.Db.Conn.Model(&models.Telemetry{}).
				Where("device_id = ?", deviceID).
				Count(&count).Error
			assert.NoError(t, err)
			assert.Equal(t, int64(1), count)
		})

	err := solarObj.Telemetry.IngestReadings(deviceID, ts, map[string]float64{"power": 42.5})
	assert.NoError(t, err)
}

func TestIngestReadingsEmptyBatch(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, solarObj, _, _, mockIEvents := GetMockSolarWithMemorySqliteDialector(t, false, false, true)
	defer ctrl.Finish()

	_, deviceID := SeedSiteAndDevice(t, solarObj, 100)

	// No readings means no rows and no event.
	mockIEvents.EXPECT().PublishDevice(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := solarObj.Telemetry.IngestReadings(deviceID, time.Now().UTC(), map[string]float64{})
	assert.NoError(t, err)
}

func TestGetLatestReadings(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, solarObj, _, _, _ := GetMockSolarWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, deviceID := SeedSiteAndDevice(t, solarObj, 100)

	now := time.Now().UTC().Truncate(time.Second)
	assert.NoError(t, solarObj.Telemetry.IngestReadings(deviceID, now.Add(-10*time.Minute), map[string]float64{
		"power":   10,
		"voltage": 230,
	}))
	assert.NoError(t, solarObj.Telemetry.IngestReadings(deviceID, now.Add(-5*time.Minute), map[string]float64{
		"power": 20,
	}))

	readings, err := solarObj.Telemetry.GetLatestReadings(deviceID)
	assert.NoError(t, err)

	// Latest power wins, older voltage still present.
	assert.Equal(t, 20.0, readings["power"].Value)
	assert.Equal(t, 230.0, readings["voltage"].Value)
}

func TestGetLatestReadingsStaleFallback(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, solarObj, _, _, _ := GetMockSolarWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, deviceID := SeedSiteAndDevice(t, solarObj, 100)

	// Only samples older than the recency window exist.
	stale := time.Now().UTC().Add(-3 * time.Hour)
	assert.NoError(t, solarObj.Telemetry.IngestReadings(deviceID, stale, map[string]float64{"power": 7}))

	readings, err := solarObj.Telemetry.GetLatestReadings(deviceID)
	assert.NoError(t, err)
	assert.Equal(t, 7.0, readings["power"].Value)
}

func TestGetLatestReadingsUnknownDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, solarObj, _, _, _ := GetMockSolarWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, err := solarObj.Telemetry.GetLatestReadings(uuid.NewString())
	assert.ErrorIs(t, err, solar.ErrDeviceNotFound)
}
