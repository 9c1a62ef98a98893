package solar

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"sunpeak.xyz/solar-telemetry-service/pkg/common"
	"sunpeak.xyz/solar-telemetry-service/pkg/models"
)

// evaluateReadings runs every reading of one message through the threshold
// rule table and opens an Alert per breached parameter. A new alert is
// created on every breach; there is no suppression window across messages.
func (s *Solar) evaluateReadings(deviceID string, readings map[string]float64) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSolarCore,
		zap.String(common.LoggerFieldSolarCategory, common.LoggerCategorySolarAlert),
	)

	table := s.ruleTable()

	var device *models.Device

	for key, value := range readings {
		level, message, breached := table.Evaluate(key, value)
		if !breached {
			continue
		}

		if device == nil {
			var err error
			device, err = s.getDevice(deviceID)
			if err != nil {
				// Alerts must reference a device and its owning site.
				logger.Warn("Threshold breached for unknown device, alert dropped",
					zap.String("device_id", deviceID),
					zap.String("parameter", key))
				return err
			}
		}

		alert := models.Alert{
			ID:        uuid.NewString(),
			DeviceID:  deviceID,
			SiteID:    device.SiteID,
			Level:     level,
			Message:   message,
			Status:    models.AlertStatusOpen,
			CreatedAt: time.Now().UTC(),
		}

		logger.Info("Alert found", zap.Reflect("alert", alert))

		if err := s.Db.Conn.Create(&alert).Error; err != nil {
			return err
		}

		logger.Info("Alert saved", zap.Reflect("alert", alert))

		s.broadcast(EventAlertNew, alert)
	}

	return nil
}

type AlertFilter struct {
	Level    string
	Status   string
	SiteID   string
	DeviceID string
	Start    *time.Time
	End      *time.Time
	Page     int
	Limit    int
}

func (s *Solar) listAlerts(filter AlertFilter) ([]models.Alert, int64, error) {
	q := s.Db.Conn.Model(&models.Alert{})

	if filter.Level != "" {
		q = q.Where("level = ?", filter.Level)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.SiteID != "" {
		q = q.Where("site_id = ?", filter.SiteID)
	}
	if filter.DeviceID != "" {
		q = q.Where("device_id = ?", filter.DeviceID)
	}
	if filter.Start != nil && filter.End != nil {
		q = q.Where("created_at >= ? AND created_at < ?", *filter.Start, *filter.End)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	var alerts []models.Alert
	err := q.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&alerts).Error
	return alerts, total, err
}

func (s *Solar) getAlert(alertID string) (*models.Alert, error) {
	var alert models.Alert
	err := s.Db.Conn.First(&alert, "id = ?", alertID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAlertNotFound
	}
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

// acknowledgeAlert moves an OPEN alert to ACKNOWLEDGED, recording who did it.
// The state machine is strictly forward: anything past OPEN is rejected.
func (s *Solar) acknowledgeAlert(alertID string, operator string) (*models.Alert, error) {
	alert, err := s.getAlert(alertID)
	if err != nil {
		return nil, err
	}

	if alert.Status != models.AlertStatusOpen {
		return nil, ErrAlertTransition
	}

	now := time.Now().UTC()
	alert.Status = models.AlertStatusAcknowledged
	alert.AcknowledgedBy = operator
	alert.AcknowledgedAt = &now

	if err := s.Db.Conn.Save(alert).Error; err != nil {
		return nil, err
	}

	s.broadcast(EventAlertUpdate, *alert)

	return alert, nil
}

// resolveAlert moves an alert to the terminal RESOLVED state from OPEN or
// ACKNOWLEDGED.
func (s *Solar) resolveAlert(alertID string, comment string) (*models.Alert, error) {
	alert, err := s.getAlert(alertID)
	if err != nil {
		return nil, err
	}

	if alert.Status == models.AlertStatusResolved {
		return nil, ErrAlertTransition
	}

	alert.Status = models.AlertStatusResolved
	if comment != "" {
		alert.Comment = comment
	}

	if err := s.Db.Conn.Save(alert).Error; err != nil {
		return nil, err
	}

	s.broadcast(EventAlertUpdate, *alert)

	return alert, nil
}

func (s *Solar) commentAlert(alertID string, comment string) (*models.Alert, error) {
	alert, err := s.getAlert(alertID)
	if err != nil {
		return nil, err
	}

	alert.Comment = comment

	if err := s.Db.Conn.Save(alert).Error; err != nil {
		return nil, err
	}

	s.broadcast(EventAlertUpdate, *alert)

	return alert, nil
}

type IAlertImpl struct {
	solar *Solar
}

func (ia *IAlertImpl) EvaluateReadings(deviceID string, readings map[string]float64) error {
	return ia.solar.evaluateReadings(deviceID, readings)
}

func (ia *IAlertImpl) ListAlerts(filter AlertFilter) ([]models.Alert, int64, error) {
	return ia.solar.listAlerts(filter)
}

func (ia *IAlertImpl) GetAlert(alertID string) (*models.Alert, error) {
	return ia.solar.getAlert(alertID)
}

func (ia *IAlertImpl) AcknowledgeAlert(alertID string, operator string) (*models.Alert, error) {
	return ia.solar.acknowledgeAlert(alertID, operator)
}

func (ia *IAlertImpl) ResolveAlert(alertID string, comment string) (*models.Alert, error) {
	return ia.solar.resolveAlert(alertID, comment)
}

func (ia *IAlertImpl) CommentAlert(alertID string, comment string) (*models.Alert, error) {
	return ia.solar.commentAlert(alertID, comment)
}

func (s *Solar) GetIAlert() IAlert {
	return &IAlertImpl{solar: s}
}
