package solar

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"sunpeak.xyz/solar-telemetry-service/pkg/common"
	"sunpeak.xyz/solar-telemetry-service/pkg/models"
)

// DeviceStatusEvent is the payload of a device_status realtime event.
type DeviceStatusEvent struct {
	DeviceID string              `json:"deviceId"`
	Status   models.DeviceStatus `json:"status"`
}

// NormalizeStatus maps a status payload string onto the device status enum,
// case-insensitively.
func NormalizeStatus(raw string) (models.DeviceStatus, bool) {
	switch models.DeviceStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case models.DeviceStatusOnline:
		return models.DeviceStatusOnline, true
	case models.DeviceStatusOffline:
		return models.DeviceStatusOffline, true
	case models.DeviceStatusWarning:
		return models.DeviceStatusWarning, true
	case models.DeviceStatusCritical:
		return models.DeviceStatusCritical, true
	default:
		return "", false
	}
}

func (s *Solar) getDevice(deviceID string) (*models.Device, error) {
	var device models.Device
	err := s.Db.Conn.First(&device, "id = ?", deviceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDeviceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &device, nil
}

// updateStatus writes (status, last_seen) for the device and broadcasts a
// device_status event. Last write wins; updates are stamped by arrival time.
func (s *Solar) updateStatus(deviceID string, status models.DeviceStatus, seenAt time.Time) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSolarCore,
		zap.String(common.LoggerFieldSolarCategory, common.LoggerCategorySolarDevice),
	)

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	res := s.Db.Conn.WithContext(ctx).
		Model(&models.Device{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{
			"status":    status,
			"last_seen": seenAt.UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDeviceNotFound
	}

	logger.Info("Updated device status",
		zap.String("device_id", deviceID),
		zap.String("status", string(status)))

	s.broadcast(EventDeviceStatus, DeviceStatusEvent{DeviceID: deviceID, Status: status})

	return nil
}

type IDeviceImpl struct {
	solar *Solar
}

func (id *IDeviceImpl) GetDevice(deviceID string) (*models.Device, error) {
	return id.solar.getDevice(deviceID)
}

func (id *IDeviceImpl) UpdateStatus(deviceID string, status models.DeviceStatus, seenAt time.Time) error {
	return id.solar.updateStatus(deviceID, status, seenAt)
}

func (s *Solar) GetIDevice() IDevice {
	return &IDeviceImpl{solar: s}
}
