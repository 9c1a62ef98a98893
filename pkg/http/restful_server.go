package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"sunpeak.xyz/solar-telemetry-service/pkg/realtime"
	"sunpeak.xyz/solar-telemetry-service/pkg/solar"
)

type RestfulServer struct {
	Server           *gin.Engine
	Solar            *solar.Solar
	Hub              *realtime.Hub
	RateLimiterStore *solar.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/ws", rs.ServeWS)

	devices := rs.Server.Group("/devices/:device_id")
	{
		devices.GET("/telemetry", rs.GetTelemetry)
		devices.GET("/realtime", rs.GetLatestReadings)
		devices.POST("/limiter", rs.PostLimiter)
	}

	alerts := rs.Server.Group("/alerts")
	{
		alerts.GET("", rs.ListAlerts)
		alerts.GET("/:alert_id", rs.GetAlert)
		alerts.PUT("/:alert_id/acknowledge", rs.AcknowledgeAlert)
		alerts.PUT("/:alert_id/resolve", rs.ResolveAlert)
		alerts.PUT("/:alert_id/comment", rs.CommentAlert)
	}

	rs.Server.GET("/analytics/compare", rs.GetComparison)

	dashboard := rs.Server.Group("/dashboard")
	{
		dashboard.GET("/summary", rs.GetSummary)
		dashboard.GET("/plant-status", rs.GetPlantStatus)
		dashboard.GET("/alarm-summary", rs.GetAlarmSummary)
	}
}

func (rs *RestfulServer) ServeWS(c *gin.Context) {
	if rs.Hub == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	rs.Hub.ServeWS(c.Writer, c.Request)
}

// respondError maps core sentinel errors onto machine-readable codes.
// Validation and not-found conditions are distinct; everything else is a
// storage failure surfaced to the caller.
func respondError(c *gin.Context, err error) {
	var status int
	var code string

	switch {
	case errors.Is(err, solar.ErrInvalidResolution),
		errors.Is(err, solar.ErrInvalidTimeRange):
		status, code = http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, solar.ErrDeviceNotFound):
		status, code = http.StatusNotFound, "DEVICE_NOT_FOUND"
	case errors.Is(err, solar.ErrSiteNotFound):
		status, code = http.StatusNotFound, "SITE_NOT_FOUND"
	case errors.Is(err, solar.ErrAlertNotFound):
		status, code = http.StatusNotFound, "ALERT_NOT_FOUND"
	case errors.Is(err, solar.ErrAlertTransition):
		status, code = http.StatusConflict, "ALERT_TRANSITION"
	default:
		status, code = http.StatusInternalServerError, "INTERNAL_ERROR"
	}

	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": err.Error()}})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "VALIDATION_ERROR", "message": message}})
}
