// The mocks package imports pkg/solar for the service interface types, so
// every test file that touches mocks lives in the external solar_test
// package. In-package test files must stay mock-free.
package solar_test

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"sunpeak.xyz/solar-telemetry-service/pkg/db"
	"sunpeak.xyz/solar-telemetry-service/pkg/models"
	"sunpeak.xyz/solar-telemetry-service/pkg/solar"
	"sunpeak.xyz/solar-telemetry-service/pkg/solar/mocks"
)

func GetMockSolarWithMemorySqliteDialector(t *testing.T, useMockITelemetry, useMockIAlert, useMockIEvents bool) (
	*gomock.Controller,
	*solar.Solar,
	*mocks.MockITelemetry,
	*mocks.MockIAlert,
	*mocks.MockIEvents,
) {
	ctrl := gomock.NewController(t)

	mockITelemetry := mocks.NewMockITelemetry(ctrl)
	mockIAlert := mocks.NewMockIAlert(ctrl)
	mockIEvents := mocks.NewMockIEvents(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	solarInstance := (&solar.Solar{Db: *dbInstance})

	telemetryService := solarInstance.GetITelemetry()
	if useMockITelemetry {
		telemetryService = mockITelemetry
	}

	alertService := solarInstance.GetIAlert()
	if useMockIAlert {
		alertService = mockIAlert
	}

	solarInstance.WithServices(solar.ServiceOpts{
		Telemetry: telemetryService,
		Alert:     alertService,
		Device:    solarInstance.GetIDevice(),
		Query:     solarInstance.GetIQuery(),
		Analytics: solarInstance.GetIAnalytics(),
		Dashboard: solarInstance.GetIDashboard(),
	})

	if useMockIEvents {
		solarInstance.Events = mockIEvents
	}

	return ctrl, solarInstance, mockITelemetry, mockIAlert, mockIEvents
}

// SeedSiteAndDevice creates one site with one inverter and returns their IDs.
func SeedSiteAndDevice(t *testing.T, s *solar.Solar, capacityKwp float64) (string, string) {
	t.Helper()

	siteID := uuid.NewString()
	site := models.Site{
		ID:          siteID,
		Name:        "Site " + siteID[:8],
		CapacityKwp: capacityKwp,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Db.Conn.Create(&site).Error; err != nil {
		t.Fatalf("seed site: %v", err)
	}

	deviceID := uuid.NewString()
	device := models.Device{
		ID:       deviceID,
		SiteID:   siteID,
		Name:     "INV-" + deviceID[:8],
		Type:     models.DeviceTypeInverter,
		Protocol: models.ProtocolModbusTCP,
		Status:   models.DeviceStatusOffline,
	}
	if err := s.Db.Conn.Create(&device).Error; err != nil {
		t.Fatalf("seed device: %v", err)
	}

	return siteID, deviceID
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
