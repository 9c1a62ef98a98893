package solar

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"sunpeak.xyz/solar-telemetry-service/pkg/common"
	"sunpeak.xyz/solar-telemetry-service/pkg/models"
)

// TelemetryUpdate is the payload of a telemetry_update realtime event.
type TelemetryUpdate struct {
	DeviceID string             `json:"deviceId"`
	Time     string             `json:"time"`
	Data     map[string]float64 `json:"data"`
}

// recencyWindow is how far back GetLatestReadings looks before falling back
// to the absolute-latest sample per parameter.
const recencyWindow = time.Hour

type LatestReading struct {
	Value float64   `json:"value"`
	Time  time.Time `json:"time"`
}

// ingestReadings persists one telemetry message. The batched insert is a
// no-op on primary-key conflict, so at-least-once broker delivery never
// duplicates rows. The store write completes before the realtime event is
// emitted.
func (s *Solar) ingestReadings(deviceID string, timestamp time.Time, readings map[string]float64) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSolarCore,
		zap.String(common.LoggerFieldSolarCategory, common.LoggerCategorySolarTelemetry),
	)

	if len(readings) == 0 {
		return nil
	}

	timestamp = timestamp.UTC()

	rows := make([]models.Telemetry, 0, len(readings))
	for key, value := range readings {
		rows = append(rows, models.Telemetry{
			DeviceID:     deviceID,
			ParameterKey: key,
			Time:         timestamp,
			Value:        value,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	if err := s.Db.Conn.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error; err != nil {
		return err
	}

	// The only automatic path that flips a device back online.
	if err := s.Db.Conn.WithContext(ctx).
		Model(&models.Device{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{
			"status":    models.DeviceStatusOnline,
			"last_seen": timestamp,
		}).Error; err != nil {
		return err
	}

	logger.Info("Stored telemetry batch",
		zap.String("device_id", deviceID),
		zap.Time("timestamp", timestamp),
		zap.Int("readings", len(rows)))

	s.publishDevice(deviceID, EventTelemetryUpdate, TelemetryUpdate{
		DeviceID: deviceID,
		Time:     timestamp.Format(time.RFC3339),
		Data:     readings,
	})

	return nil
}

func (s *Solar) getLatestReadings(deviceID string) (map[string]LatestReading, error) {
	if _, err := s.getDevice(deviceID); err != nil {
		return nil, err
	}

	var rows []models.Telemetry
	err := s.Db.Conn.
		Where("device_id = ? AND time >= ?", deviceID, time.Now().UTC().Add(-recencyWindow)).
		Order("time desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		// Nothing recent; fall back to the latest sample per parameter
		// regardless of age.
		err = s.Db.Conn.
			Where("device_id = ?", deviceID).
			Order("time desc").
			Limit(1000).
			Find(&rows).Error
		if err != nil {
			return nil, err
		}
	}

	readings := make(map[string]LatestReading)
	for _, row := range rows {
		if _, seen := readings[row.ParameterKey]; seen {
			continue
		}
		readings[row.ParameterKey] = LatestReading{Value: row.Value, Time: row.Time}
	}

	return readings, nil
}

type ITelemetryImpl struct {
	solar *Solar
}

func (it *ITelemetryImpl) IngestReadings(deviceID string, timestamp time.Time, readings map[string]float64) error {
	return it.solar.ingestReadings(deviceID, timestamp, readings)
}

func (it *ITelemetryImpl) GetLatestReadings(deviceID string) (map[string]LatestReading, error) {
	return it.solar.getLatestReadings(deviceID)
}

func (s *Solar) GetITelemetry() ITelemetry {
	return &ITelemetryImpl{solar: s}
}
