package solar

import (
	"math"
	"time"

	"sunpeak.xyz/solar-telemetry-service/pkg/models"
)

// Dashboard parameter keys published by the inverter fleet.
const (
	paramPvPower     = "pv_power"
	paramEnergyToday = "energy_today"
	paramEnergyTotal = "energy_total"
)

type Summary struct {
	CurrentPower  float64 `json:"currentPower"`
	YieldToday    float64 `json:"yieldToday"`
	TotalYield    float64 `json:"totalYield"`
	TotalPlants   int     `json:"totalPlants"`
	OnlinePlants  int     `json:"onlinePlants"`
	TotalDevices  int     `json:"totalDevices"`
	OnlineDevices int64   `json:"onlineDevices"`
	TotalAlarms   int64   `json:"totalAlarms"`
}

type PlantStatus struct {
	Normal  int `json:"normal"`
	Warning int `json:"warning"`
	Offline int `json:"offline"`
}

type AlarmSummary struct {
	Critical int64 `json:"critical"`
	Major    int64 `json:"major"`
	Minor    int64 `json:"minor"`
	Warning  int64 `json:"warning"`
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// latestPerDeviceSum sums the most recent value of one parameter per device,
// looking no further back than since.
func (s *Solar) latestPerDeviceSum(parameter string, since time.Time) (float64, error) {
	var rows []models.Telemetry
	err := s.Db.Conn.
		Where("parameter_key = ? AND time >= ?", parameter, since).
		Order("time desc").
		Find(&rows).Error
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool)
	sum := 0.0
	for _, row := range rows {
		if seen[row.DeviceID] {
			continue
		}
		seen[row.DeviceID] = true
		sum += row.Value
	}
	return sum, nil
}

func (s *Solar) getSummary() (*Summary, error) {
	var sites []models.Site
	if err := s.Db.Conn.Preload("Devices").Find(&sites).Error; err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	currentPower, err := s.latestPerDeviceSum(paramPvPower, now.Add(-5*time.Minute))
	if err != nil {
		return nil, err
	}

	yieldToday, err := s.latestPerDeviceSum(paramEnergyToday, midnight)
	if err != nil {
		return nil, err
	}

	totalYield, err := s.latestPerDeviceSum(paramEnergyTotal, now.Add(-5*time.Minute))
	if err != nil {
		return nil, err
	}

	var onlineDevices int64
	if err := s.Db.Conn.Model(&models.Device{}).
		Where("status = ?", models.DeviceStatusOnline).
		Count(&onlineDevices).Error; err != nil {
		return nil, err
	}

	var openAlerts int64
	if err := s.Db.Conn.Model(&models.Alert{}).
		Where("status = ?", models.AlertStatusOpen).
		Count(&openAlerts).Error; err != nil {
		return nil, err
	}

	summary := &Summary{
		CurrentPower:  round1(currentPower),
		YieldToday:    round1(yieldToday),
		TotalYield:    round1(totalYield),
		TotalPlants:   len(sites),
		OnlineDevices: onlineDevices,
		TotalAlarms:   openAlerts,
	}
	for _, site := range sites {
		summary.TotalDevices += len(site.Devices)
		for _, device := range site.Devices {
			if device.Status == models.DeviceStatusOnline {
				summary.OnlinePlants++
				break
			}
		}
	}

	return summary, nil
}

func (s *Solar) getPlantStatus() (*PlantStatus, error) {
	var sites []models.Site
	if err := s.Db.Conn.Preload("Devices").Find(&sites).Error; err != nil {
		return nil, err
	}

	status := &PlantStatus{}
	for _, site := range sites {
		var openAlerts int64
		err := s.Db.Conn.Model(&models.Alert{}).
			Where("site_id = ? AND status = ?", site.ID, models.AlertStatusOpen).
			Count(&openAlerts).Error
		if err != nil {
			return nil, err
		}

		allOffline := len(site.Devices) > 0
		hasWarning := false
		for _, device := range site.Devices {
			if device.Status != models.DeviceStatusOffline {
				allOffline = false
			}
			if device.Status == models.DeviceStatusWarning || device.Status == models.DeviceStatusCritical {
				hasWarning = true
			}
		}

		switch {
		case allOffline:
			status.Offline++
		case hasWarning || openAlerts > 0:
			status.Warning++
		default:
			status.Normal++
		}
	}

	return status, nil
}

func (s *Solar) getAlarmSummary() (*AlarmSummary, error) {
	type levelCount struct {
		Level models.AlertLevel
		Count int64
	}

	var counts []levelCount
	err := s.Db.Conn.Model(&models.Alert{}).
		Select("level, count(*) as count").
		Where("status = ?", models.AlertStatusOpen).
		Group("level").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	summary := &AlarmSummary{}
	for _, c := range counts {
		switch c.Level {
		case models.AlertLevelCritical:
			summary.Critical = c.Count
		case models.AlertLevelMajor:
			summary.Major = c.Count
		case models.AlertLevelMinor:
			summary.Minor = c.Count
		case models.AlertLevelWarning:
			summary.Warning = c.Count
		}
	}

	return summary, nil
}

type IDashboardImpl struct {
	solar *Solar
}

func (id *IDashboardImpl) GetSummary() (*Summary, error) {
	return id.solar.getSummary()
}

func (id *IDashboardImpl) GetPlantStatus() (*PlantStatus, error) {
	return id.solar.getPlantStatus()
}

func (id *IDashboardImpl) GetAlarmSummary() (*AlarmSummary, error) {
	return id.solar.getAlarmSummary()
}

func (s *Solar) GetIDashboard() IDashboard {
	return &IDashboardImpl{solar: s}
}
