package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"sunpeak.xyz/solar-telemetry-service/pkg/solar"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func (rs *RestfulServer) GetTelemetry(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	resolution, err := solar.ParseResolution(c.Query("interval"))
	if err != nil {
		respondError(c, err)
		return
	}

	start := time.Now().UTC().Add(-24 * time.Hour)
	if raw := c.Query("start_date"); raw != "" {
		if start, err = parseDate(raw); err != nil {
			badRequest(c, "invalid start_date")
			return
		}
	}

	end := time.Now().UTC()
	if raw := c.Query("end_date"); raw != "" {
		if end, err = parseDate(raw); err != nil {
			badRequest(c, "invalid end_date")
			return
		}
	}

	var parameters []string
	if raw := c.Query("parameters"); raw != "" {
		parameters = strings.Split(raw, ",")
	}

	data, err := rs.Solar.Query.QueryTelemetry(deviceID, start, end, resolution, parameters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deviceId":  deviceID,
		"startDate": start.UTC().Format(time.RFC3339),
		"endDate":   end.UTC().Format(time.RFC3339),
		"interval":  resolution,
		"data":      data,
	})
}

func (rs *RestfulServer) GetLatestReadings(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	readings, err := rs.Solar.Telemetry.GetLatestReadings(deviceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deviceId": deviceID, "readings": readings})
}

func (rs *RestfulServer) ListAlerts(c *gin.Context) {
	filter := solar.AlertFilter{
		Level:    c.Query("level"),
		Status:   c.Query("status"),
		SiteID:   c.Query("site_id"),
		DeviceID: c.Query("device_id"),
	}

	if raw := c.Query("start_date"); raw != "" {
		start, err := parseDate(raw)
		if err != nil {
			badRequest(c, "invalid start_date")
			return
		}
		filter.Start = &start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := parseDate(raw)
		if err != nil {
			badRequest(c, "invalid end_date")
			return
		}
		filter.End = &end
	}

	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	alerts, total, err := rs.Solar.Alert.ListAlerts(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	totalPages := total / int64(filter.Limit)
	if total%int64(filter.Limit) != 0 {
		totalPages++
	}

	c.JSON(http.StatusOK, gin.H{
		"data": alerts,
		"pagination": gin.H{
			"page":       filter.Page,
			"limit":      filter.Limit,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}

func (rs *RestfulServer) GetAlert(c *gin.Context) {
	alert, err := rs.Solar.Alert.GetAlert(c.Param("alert_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

func (rs *RestfulServer) AcknowledgeAlert(c *gin.Context) {
	operator := c.GetHeader("X-Operator")
	if operator == "" {
		badRequest(c, "X-Operator header is required")
		return
	}

	alert, err := rs.Solar.Alert.AcknowledgeAlert(c.Param("alert_id"), operator)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

type ResolveRequest struct {
	Comment string `json:"comment"`
}

var resolveRequestSchema = z.Struct(z.Shape{
	"Comment": z.String(),
})

func (rs *RestfulServer) ResolveAlert(c *gin.Context) {
	var req ResolveRequest
	if c.Request.ContentLength > 0 {
		if err := resolveRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err})
			return
		}
	}

	alert, err := rs.Solar.Alert.ResolveAlert(c.Param("alert_id"), req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

type CommentRequest struct {
	Comment string `json:"comment"`
}

var commentRequestSchema = z.Struct(z.Shape{
	"Comment": z.String().Required(),
})

func (rs *RestfulServer) CommentAlert(c *gin.Context) {
	var req CommentRequest
	if err := commentRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	alert, err := rs.Solar.Alert.CommentAlert(c.Param("alert_id"), req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

func (rs *RestfulServer) GetComparison(c *gin.Context) {
	timeRange, err := solar.ParseTimeRange(c.Query("time_range"))
	if err != nil {
		respondError(c, err)
		return
	}

	reference := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		if reference, err = parseDate(raw); err != nil {
			badRequest(c, "invalid date")
			return
		}
	}

	comparison, err := rs.Solar.Analytics.CompareSites(timeRange, reference)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comparison)
}

func (rs *RestfulServer) GetSummary(c *gin.Context) {
	summary, err := rs.Solar.Dashboard.GetSummary()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (rs *RestfulServer) GetPlantStatus(c *gin.Context) {
	status, err := rs.Solar.Dashboard.GetPlantStatus()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (rs *RestfulServer) GetAlarmSummary(c *gin.Context) {
	summary, err := rs.Solar.Dashboard.GetAlarmSummary()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
