package realtime

import (
	"encoding/json"

	"go.uber.org/zap"
	"sunpeak.xyz/solar-telemetry-service/pkg/common"
)

// Message is the wire envelope for every event pushed to clients.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type envelope struct {
	deviceID string // empty means broadcast to every client
	data     []byte
}

type subscription struct {
	client   *Client
	deviceID string
}

// Hub maintains the set of connected clients and their per-device
// subscriptions. One goroutine owns the registry; publishers hand events
// over a buffered channel and never block behind slow subscribers.
type Hub struct {
	logger *zap.Logger

	register    chan *Client
	unregister  chan *Client
	subscribe   chan subscription
	unsubscribe chan subscription
	events      chan envelope
	done        chan struct{}

	clients map[*Client]map[string]struct{}
}

func NewHub() *Hub {
	return &Hub{
		logger:      common.GetLoggerWith(common.LoggerNameRealtimeHub),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		subscribe:   make(chan subscription),
		unsubscribe: make(chan subscription),
		events:      make(chan envelope, 256),
		done:        make(chan struct{}),
		clients:     make(map[*Client]map[string]struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = make(map[string]struct{})
			h.logger.Info("Client registered", zap.String("remote", client.remoteAddr()))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info("Client unregistered", zap.String("remote", client.remoteAddr()))
			}

		case sub := <-h.subscribe:
			if devices, ok := h.clients[sub.client]; ok {
				devices[sub.deviceID] = struct{}{}
			}

		case sub := <-h.unsubscribe:
			if devices, ok := h.clients[sub.client]; ok {
				delete(devices, sub.deviceID)
			}

		case env := <-h.events:
			for client, devices := range h.clients {
				if env.deviceID != "" {
					if _, subscribed := devices[env.deviceID]; !subscribed {
						continue
					}
				}
				select {
				case client.send <- env.data:
				default:
					// Slow client: drop it rather than block delivery.
					h.logger.Warn("Client send buffer full, dropping client",
						zap.String("remote", client.remoteAddr()))
					close(client.send)
					delete(h.clients, client)
				}
			}

		case <-h.done:
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

func (h *Hub) emit(deviceID string, event string, payload any) {
	data, err := json.Marshal(Message{Type: event, Payload: payload})
	if err != nil {
		h.logger.Error("Failed to encode realtime event",
			zap.String("event", event), zap.Error(err))
		return
	}

	select {
	case h.events <- envelope{deviceID: deviceID, data: data}:
	default:
		// Best-effort delivery: a backed-up hub drops rather than blocks
		// the ingestion path.
		h.logger.Warn("Event queue full, dropping event", zap.String("event", event))
	}
}

// PublishDevice delivers an event only to clients subscribed to the device's
// channel.
func (h *Hub) PublishDevice(deviceID string, event string, payload any) {
	h.emit(deviceID, event, payload)
}

// Broadcast delivers an event to every connected client regardless of
// subscriptions.
func (h *Hub) Broadcast(event string, payload any) {
	h.emit("", event, payload)
}
