package solar_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sunpeak.xyz/solar-telemetry-service/pkg/common"
	"sunpeak.xyz/solar-telemetry-service/pkg/models"
	"sunpeak.xyz/solar-telemetry-service/pkg/solar"
	_ "sunpeak.xyz/solar-telemetry-service/pkg/testing"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw      string
		expected models.DeviceStatus
		ok       bool
	}{
		{raw: "online", expected: models.DeviceStatusOnline, ok: true},
		{raw: "ONLINE", expected: models.DeviceStatusOnline, ok: true},
		{raw: " offline ", expected: models.DeviceStatusOffline, ok: true},
		{raw: "Warning", expected: models.DeviceStatusWarning, ok: true},
		{raw: "critical", expected: models.DeviceStatusCritical, ok: true},
		{raw: "rebooting", ok: false},
		{raw: "", ok: false},
	}

	for _, tc := range cases {
		got, ok := solar.NormalizeStatus(tc.raw)
		assert.Equal(t, tc.ok, ok, tc.raw)
		if tc.ok {
			assert.Equal(t, tc.expected, got, tc.raw)
		}
	}
}

func TestUpdateStatus(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, solarObj, _, _, _ := GetMockSolarWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, deviceID := SeedSiteAndDevice(t, solarObj, 100)

	seenAt := time.Now().UTC().Truncate(time.Second)
	err := solarObj.Device.UpdateStatus(deviceID, models.DeviceStatusWarning, seenAt)
	assert.NoError(t, err)

	device, err := solarObj.Device.GetDevice(deviceID)
	assert.NoError(t, err)
	assert.Equal(t, models.DeviceStatusWarning, device.Status)
	assert.NotNil(t, device.LastSeen)
	assert.Equal(t, seenAt, device.LastSeen.UTC())
}

func TestUpdateStatusBroadcasts(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, solarObj, _, _, mockIEvents := GetMockSolarWithMemorySqliteDialector(t, false, false, true)
	defer ctrl.Finish()

	_, deviceID := SeedSiteAndDevice(t, solarObj, 100)

	mockIEvents.EXPECT().
		Broadcast(solar.EventDeviceStatus, gomock.Any()).
		Do(func(_ string, payload any) {
			event, ok := payload.(solar.DeviceStatusEvent)
			assert.True(t, ok)
			assert.Equal(t, deviceID, event.DeviceID)
			assert.Equal(t, models.DeviceStatusOffline, event.Status)
		})

	err := solarObj.Device.UpdateStatus(deviceID, models.DeviceStatusOffline, time.Now().UTC())
	assert.NoError(t, err)
}

func TestUpdateStatusUnknownDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, solarObj, _, _, _ := GetMockSolarWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	err := solarObj.Device.UpdateStatus(uuid.NewString(), models.DeviceStatusOnline, time.Now().UTC())
	assert.ErrorIs(t, err, solar.ErrDeviceNotFound)
}
