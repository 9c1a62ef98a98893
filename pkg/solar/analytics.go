package solar

import (
	"math"
	"time"

	"go.uber.org/zap"
	"sunpeak.xyz/solar-telemetry-service/pkg/common"
	"sunpeak.xyz/solar-telemetry-service/pkg/models"
)

type TimeRange string

const (
	TimeRangeDay   TimeRange = "day"
	TimeRangeMonth TimeRange = "month"
	TimeRangeYear  TimeRange = "year"
)

func ParseTimeRange(raw string) (TimeRange, error) {
	switch TimeRange(raw) {
	case "":
		return TimeRangeDay, nil
	case TimeRangeDay, TimeRangeMonth, TimeRangeYear:
		return TimeRange(raw), nil
	default:
		return "", ErrInvalidTimeRange
	}
}

// ResolveWindow computes the [start, end) window for a time range around a
// reference date, in UTC.
func ResolveWindow(timeRange TimeRange, reference time.Time) (time.Time, time.Time) {
	reference = reference.UTC()
	switch timeRange {
	case TimeRangeMonth:
		start := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	case TimeRangeYear:
		start := time.Date(reference.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0)
	default:
		start := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 0, 1)
	}
}

// Daylight hours assumed for availability: hour-of-day in [6, 18), i.e. a
// fixed 12-hour day.
const (
	daylightStartHour = 6
	daylightEndHour   = 18
	sunHoursPerDay    = 12
)

type SiteComparison struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CapacityKwp     float64 `json:"capacityKwp"`
	Production      float64 `json:"production"`
	SpecificYield   float64 `json:"specificYield"`
	CriticalAlerts  int64   `json:"criticalAlerts"`
	DowntimeHours   float64 `json:"downtimeHours"`
	Availability    float64 `json:"availability"`
	ProductionShare float64 `json:"productionShare"`
}

type Comparison struct {
	TimeRange TimeRange        `json:"timeRange"`
	Date      time.Time        `json:"date"`
	Sites     []SiteComparison `json:"sites"`
}

// compareSites computes per-site production, critical alerts, downtime,
// availability and production share over the resolved window. Sites without
// devices are excluded entirely.
func (s *Solar) compareSites(timeRange TimeRange, reference time.Time) (*Comparison, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSolarCore,
		zap.String(common.LoggerFieldSolarCategory, common.LoggerCategorySolarAnalytics),
	)

	start, end := ResolveWindow(timeRange, reference)

	var sites []models.Site
	if err := s.Db.Conn.Preload("Devices").Find(&sites).Error; err != nil {
		return nil, err
	}

	results := make([]SiteComparison, 0, len(sites))
	totalProduction := 0.0

	for _, site := range sites {
		if len(site.Devices) == 0 {
			continue
		}

		deviceIDs := common.Mapper(site.Devices, func(d models.Device) string { return d.ID })

		var rows []models.Telemetry
		err := s.Db.Conn.
			Where("device_id IN ? AND parameter_key = ? AND time >= ? AND time < ?",
				deviceIDs, "power", start, end).
			Find(&rows).Error
		if err != nil {
			return nil, err
		}

		// Power (kW) averaged per hourly bucket across the site's devices,
		// integrated over 1-hour buckets, gives kWh per bucket.
		hourly := BucketRows(rows, ResolutionHour)
		production := common.Reducer(hourly, func(sum float64, p DataPoint) float64 {
			return sum + p.Values["power"]
		}, 0.0)
		totalProduction += production

		var criticalAlerts int64
		err = s.Db.Conn.Model(&models.Alert{}).
			Where("site_id = ? AND level = ? AND created_at >= ? AND created_at < ?",
				site.ID, models.AlertLevelCritical, start, end).
			Count(&criticalAlerts).Error
		if err != nil {
			return nil, err
		}

		downtimeHours := estimateDowntimeHours(rows)

		days := int(math.Ceil(end.Sub(start).Hours() / 24))
		if days < 1 {
			days = 1
		}
		sunHours := float64(days * sunHoursPerDay)

		availability := 0.0
		if sunHours > 0 {
			availability = common.Clamp((sunHours-downtimeHours)/sunHours*100, 0, 100)
		}

		specificYield := 0.0
		if site.CapacityKwp > 0 {
			specificYield = production / site.CapacityKwp
		}

		results = append(results, SiteComparison{
			ID:             site.ID,
			Name:           site.Name,
			CapacityKwp:    site.CapacityKwp,
			Production:     production,
			SpecificYield:  specificYield,
			CriticalAlerts: criticalAlerts,
			DowntimeHours:  downtimeHours,
			Availability:   availability,
		})
	}

	for i := range results {
		if totalProduction > 0 {
			results[i].ProductionShare = results[i].Production / totalProduction * 100
		}
	}

	logger.Info("Computed site comparison",
		zap.String("time_range", string(timeRange)),
		zap.Time("window_start", start),
		zap.Int("sites", len(results)))

	return &Comparison{TimeRange: timeRange, Date: start, Sites: results}, nil
}

// estimateDowntimeHours counts 5-minute buckets during daylight hours where
// the site-average power is exactly zero. Only buckets that actually have
// samples count; silence is not downtime here, it is missing data.
func estimateDowntimeHours(rows []models.Telemetry) float64 {
	daylight := make([]models.Telemetry, 0, len(rows))
	for _, row := range rows {
		hour := row.Time.UTC().Hour()
		if hour >= daylightStartHour && hour < daylightEndHour {
			daylight = append(daylight, row)
		}
	}

	downBuckets := 0
	for _, point := range BucketRows(daylight, Resolution5Min) {
		if point.Values["power"] == 0 {
			downBuckets++
		}
	}

	return float64(downBuckets) * 5 / 60
}

type IAnalyticsImpl struct {
	solar *Solar
}

func (ia *IAnalyticsImpl) CompareSites(timeRange TimeRange, reference time.Time) (*Comparison, error) {
	return ia.solar.compareSites(timeRange, reference)
}

func (s *Solar) GetIAnalytics() IAnalytics {
	return &IAnalyticsImpl{solar: s}
}
