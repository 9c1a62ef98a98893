package solar

import (
	"errors"
	"time"

	"sunpeak.xyz/solar-telemetry-service/pkg/db"
	"sunpeak.xyz/solar-telemetry-service/pkg/models"
	"sunpeak.xyz/solar-telemetry-service/pkg/rules"
)

//go:generate mockgen -source=solar.go -destination=mocks/mock_solar.go -package=mocks

// Realtime event names pushed through the fan-out hub. telemetry_update is
// scoped to the device channel; the rest are broadcast.
const (
	EventTelemetryUpdate string = "telemetry_update"
	EventDeviceStatus    string = "device_status"
	EventAlertNew        string = "alert_new"
	EventAlertUpdate     string = "alert_update"
)

var (
	ErrInvalidResolution = errors.New("invalid resolution")
	ErrInvalidTimeRange  = errors.New("invalid time range")
	ErrDeviceNotFound    = errors.New("device not found")
	ErrSiteNotFound      = errors.New("site not found")
	ErrAlertNotFound     = errors.New("alert not found")
	ErrAlertTransition   = errors.New("alert status cannot move backward")
)

// storageTimeout bounds individual ingestion-path store operations. A timed
// out write is a write failure: logged and dropped, never retried in-process.
const storageTimeout = 5 * time.Second

type ITelemetry interface {
	IngestReadings(deviceID string, timestamp time.Time, readings map[string]float64) error
	GetLatestReadings(deviceID string) (map[string]LatestReading, error)
}

type IAlert interface {
	EvaluateReadings(deviceID string, readings map[string]float64) error
	ListAlerts(filter AlertFilter) ([]models.Alert, int64, error)
	GetAlert(alertID string) (*models.Alert, error)
	AcknowledgeAlert(alertID string, operator string) (*models.Alert, error)
	ResolveAlert(alertID string, comment string) (*models.Alert, error)
	CommentAlert(alertID string, comment string) (*models.Alert, error)
}

type IDevice interface {
	GetDevice(deviceID string) (*models.Device, error)
	UpdateStatus(deviceID string, status models.DeviceStatus, seenAt time.Time) error
}

type IQuery interface {
	QueryTelemetry(deviceID string, start, end time.Time, resolution Resolution, parameters []string) ([]DataPoint, error)
}

type IAnalytics interface {
	CompareSites(timeRange TimeRange, reference time.Time) (*Comparison, error)
}

type IDashboard interface {
	GetSummary() (*Summary, error)
	GetPlantStatus() (*PlantStatus, error)
	GetAlarmSummary() (*AlarmSummary, error)
}

// IEvents is the realtime fan-out contract. Implementations must never block
// the caller; slow or absent subscribers are a delivery problem, not an
// ingestion problem.
type IEvents interface {
	PublishDevice(deviceID string, event string, payload any)
	Broadcast(event string, payload any)
}

type Solar struct {
	Db     db.DB
	Rules  *rules.Table
	Events IEvents

	Telemetry ITelemetry
	Alert     IAlert
	Device    IDevice
	Query     IQuery
	Analytics IAnalytics
	Dashboard IDashboard
}

type ServiceOpts struct {
	Telemetry ITelemetry
	Alert     IAlert
	Device    IDevice
	Query     IQuery
	Analytics IAnalytics
	Dashboard IDashboard
	Events    IEvents
}

func (s *Solar) WithServices(opts ServiceOpts) *Solar {
	if opts.Telemetry != nil {
		s.Telemetry = opts.Telemetry
	}
	if opts.Alert != nil {
		s.Alert = opts.Alert
	}
	if opts.Device != nil {
		s.Device = opts.Device
	}
	if opts.Query != nil {
		s.Query = opts.Query
	}
	if opts.Analytics != nil {
		s.Analytics = opts.Analytics
	}
	if opts.Dashboard != nil {
		s.Dashboard = opts.Dashboard
	}
	if opts.Events != nil {
		s.Events = opts.Events
	}
	return s
}

func (s *Solar) ruleTable() *rules.Table {
	if s.Rules == nil {
		s.Rules = rules.Default()
	}
	return s.Rules
}

func (s *Solar) publishDevice(deviceID string, event string, payload any) {
	if s.Events == nil {
		return
	}
	s.Events.PublishDevice(deviceID, event, payload)
}

func (s *Solar) broadcast(event string, payload any) {
	if s.Events == nil {
		return
	}
	s.Events.Broadcast(event, payload)
}
