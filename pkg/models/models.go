package models

import "time"

type DeviceType string

const (
	DeviceTypeInverter DeviceType = "INVERTER"
	DeviceTypeMeter    DeviceType = "METER"
	DeviceTypeSensor   DeviceType = "SENSOR"
)

type DeviceStatus string

const (
	DeviceStatusOnline   DeviceStatus = "ONLINE"
	DeviceStatusOffline  DeviceStatus = "OFFLINE"
	DeviceStatusWarning  DeviceStatus = "WARNING"
	DeviceStatusCritical DeviceStatus = "CRITICAL"
)

type AlertLevel string

const (
	AlertLevelCritical AlertLevel = "CRITICAL"
	AlertLevelMajor    AlertLevel = "MAJOR"
	AlertLevelMinor    AlertLevel = "MINOR"
	AlertLevelWarning  AlertLevel = "WARNING"
)

type AlertStatus string

const (
	AlertStatusOpen         AlertStatus = "OPEN"
	AlertStatusAcknowledged AlertStatus = "ACKNOWLEDGED"
	AlertStatusResolved     AlertStatus = "RESOLVED"
)

// Telemetry is one reading sample. The composite primary key makes
// re-delivered messages a no-op on insert.
type Telemetry struct {
	DeviceID     string    `gorm:"primaryKey;index" json:"deviceId"`
	ParameterKey string    `gorm:"primaryKey" json:"parameterKey"`
	Time         time.Time `gorm:"primaryKey" json:"time"`
	Value        float64   `json:"value"`
}

func (Telemetry) TableName() string {
	return "telemetry"
}

type Site struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	CapacityKwp float64   `json:"capacityKwp"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`

	Devices []Device `gorm:"foreignKey:SiteID;references:ID" json:"devices,omitempty"`
	Alerts  []Alert  `gorm:"foreignKey:SiteID;references:ID" json:"alerts,omitempty"`
}

type Device struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	SiteID    string         `gorm:"index" json:"siteId"`
	Name      string         `json:"name"`
	Type      DeviceType     `gorm:"type:varchar(20)" json:"type"`
	Protocol  Protocol       `gorm:"type:varchar(20)" json:"protocol"`
	Config    ProtocolConfig `gorm:"serializer:json" json:"config"`
	Status    DeviceStatus   `gorm:"type:varchar(20);default:OFFLINE" json:"status"`
	LastSeen  *time.Time     `json:"lastSeen"`
	CreatedAt time.Time      `json:"createdAt"`

	Telemetry []Telemetry `gorm:"foreignKey:DeviceID;references:ID" json:"-"`
	Alerts    []Alert     `gorm:"foreignKey:DeviceID;references:ID" json:"alerts,omitempty"`
}

type Alert struct {
	ID             string      `gorm:"primaryKey" json:"id"`
	DeviceID       string      `gorm:"index" json:"deviceId"`
	SiteID         string      `gorm:"index" json:"siteId"`
	Level          AlertLevel  `gorm:"type:varchar(20);check:level IN ('CRITICAL','MAJOR','MINOR','WARNING')" json:"level"`
	Message        string      `json:"message"`
	Status         AlertStatus `gorm:"type:varchar(20);default:OPEN" json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
	AcknowledgedBy string      `json:"acknowledgedBy,omitempty"`
	AcknowledgedAt *time.Time  `json:"acknowledgedAt,omitempty"`
	Comment        string      `json:"comment,omitempty"`
}
