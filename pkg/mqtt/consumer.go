package mqtt

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"sunpeak.xyz/solar-telemetry-service/pkg/common"
	"sunpeak.xyz/solar-telemetry-service/pkg/solar"
)

// TelemetryPayload is the body published on <ns>/<device_id>/data.
type TelemetryPayload struct {
	Timestamp string             `json:"timestamp"`
	Readings  map[string]float64 `json:"readings"`
}

// StatusPayload is the body published on <ns>/<device_id>/status.
type StatusPayload struct {
	Status string `json:"status"`
}

const (
	classData   = "data"
	classStatus = "status"

	// The channel decouples the transport callback from processing; the
	// broker remains the real buffer beyond this.
	queueSize   = 1024
	workerCount = 8

	disconnectQuiesceMs = 250
)

type inbound struct {
	topic   string
	payload []byte
}

// Consumer subscribes to the per-device telemetry and status topics and
// feeds decoded messages into the core. Malformed input is dropped with a
// warning; nothing on this path is process-fatal.
type Consumer struct {
	logger    *zap.Logger
	solar     *solar.Solar
	namespace string
	brokerURL string

	client   paho.Client
	messages chan inbound
	quit     chan struct{}
	wg       sync.WaitGroup
}

func NewConsumer(brokerURL, namespace string, s *solar.Solar) *Consumer {
	return &Consumer{
		logger:    common.GetLoggerWith(common.LoggerNameMqttConsumer),
		solar:     s,
		namespace: namespace,
		brokerURL: brokerURL,
		messages:  make(chan inbound, queueSize),
		quit:      make(chan struct{}),
	}
}

// Start connects to the broker and begins consuming. Reconnection with
// backoff and re-subscription on reconnect are delegated to the paho client
// via AutoReconnect and the OnConnect handler.
func (c *Consumer) Start() error {
	for range workerCount {
		c.wg.Add(1)
		go c.worker()
	}

	opts := paho.NewClientOptions().
		AddBroker(c.brokerURL).
		SetClientID(fmt.Sprintf("solar-consumer-%s", uuid.NewString()[:8])).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetOrderMatters(false)

	opts.SetOnConnectHandler(func(client paho.Client) {
		c.logger.Info("Connected to MQTT broker", zap.String("broker", c.brokerURL))
		for _, filter := range []string{
			fmt.Sprintf("%s/+/%s", c.namespace, classData),
			fmt.Sprintf("%s/+/%s", c.namespace, classStatus),
		} {
			if token := client.Subscribe(filter, 1, c.onMessage); token.Wait() && token.Error() != nil {
				c.logger.Error("Failed to subscribe", zap.String("filter", filter), zap.Error(token.Error()))
			} else {
				c.logger.Info("Subscribed", zap.String("filter", filter))
			}
		}
	})

	opts.SetConnectionLostHandler(func(client paho.Client, err error) {
		c.logger.Warn("MQTT connection lost", zap.Error(err))
	})

	c.client = paho.NewClient(opts)
	if token := c.client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	return nil
}

func (c *Consumer) Stop() {
	if c.client != nil && c.client.IsConnected() {
		c.client.Disconnect(disconnectQuiesceMs)
	}
	close(c.quit)
	c.wg.Wait()
	c.logger.Info("MQTT consumer stopped")
}

// onMessage runs on the paho callback goroutine; it only enqueues so the
// transport is never blocked by business logic.
func (c *Consumer) onMessage(_ paho.Client, msg paho.Message) {
	select {
	case c.messages <- inbound{topic: msg.Topic(), payload: msg.Payload()}:
	case <-c.quit:
	}
}

func (c *Consumer) worker() {
	defer c.wg.Done()
	for {
		select {
		case msg := <-c.messages:
			c.handleMessage(msg)
		case <-c.quit:
			return
		}
	}
}

func (c *Consumer) handleMessage(msg inbound) {
	parts := strings.Split(msg.topic, "/")
	if len(parts) < 3 {
		c.logger.Warn("Dropping message with malformed topic", zap.String("topic", msg.topic))
		return
	}

	deviceID := parts[1]
	class := parts[2]

	switch class {
	case classData:
		c.handleTelemetry(deviceID, msg)
	case classStatus:
		c.handleStatus(deviceID, msg)
	default:
		c.logger.Warn("Dropping message with unknown class",
			zap.String("topic", msg.topic), zap.String("class", class))
	}
}

func (c *Consumer) handleTelemetry(deviceID string, msg inbound) {
	var payload TelemetryPayload
	if err := json.Unmarshal(msg.payload, &payload); err != nil {
		c.logger.Warn("Dropping malformed telemetry payload",
			zap.String("topic", msg.topic), zap.Error(err))
		return
	}

	timestamp, err := time.Parse(time.RFC3339, payload.Timestamp)
	if err != nil {
		c.logger.Warn("Dropping telemetry with invalid timestamp",
			zap.String("topic", msg.topic), zap.String("timestamp", payload.Timestamp))
		return
	}

	if err := c.solar.Telemetry.IngestReadings(deviceID, timestamp, payload.Readings); err != nil {
		// At-least-once redelivery by the broker is the only retry; here the
		// message is dropped.
		c.logger.Error("Failed to store telemetry, message dropped",
			zap.String("device_id", deviceID), zap.Error(err))
		return
	}

	if err := c.solar.Alert.EvaluateReadings(deviceID, payload.Readings); err != nil {
		c.logger.Error("Threshold evaluation failed",
			zap.String("device_id", deviceID), zap.Error(err))
	}
}

func (c *Consumer) handleStatus(deviceID string, msg inbound) {
	var payload StatusPayload
	if err := json.Unmarshal(msg.payload, &payload); err != nil {
		c.logger.Warn("Dropping malformed status payload",
			zap.String("topic", msg.topic), zap.Error(err))
		return
	}

	status, ok := solar.NormalizeStatus(payload.Status)
	if !ok {
		c.logger.Warn("Dropping unknown device status",
			zap.String("device_id", deviceID), zap.String("status", payload.Status))
		return
	}

	if err := c.solar.Device.UpdateStatus(deviceID, status, time.Now()); err != nil {
		c.logger.Error("Failed to update device status, message dropped",
			zap.String("device_id", deviceID), zap.Error(err))
	}
}
