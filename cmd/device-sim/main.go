package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

type telemetryPayload struct {
	Timestamp string             `json:"timestamp"`
	Readings  map[string]float64 `json:"readings"`
}

type statusPayload struct {
	Status string `json:"status"`
}

func main() {
	brokerAddr := flag.String("broker", "tcp://localhost:1883", "MQTT broker address, e.g. tcp://localhost:1883")
	namespace := flag.String("namespace", "solar", "Topic namespace")
	deviceID := flag.String("device-id", "sim-inverter-1", "Device identifier")
	interval := flag.Duration("interval", 5*time.Second, "Interval between published readings")
	basePower := flag.Float64("base-power", 4.2, "Baseline power output in kW")
	baseTemperature := flag.Float64("base-temperature", 45, "Baseline inverter temperature")
	baseVoltage := flag.Float64("base-voltage", 230, "Baseline grid voltage")

	flag.Parse()

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	clientID := fmt.Sprintf("%s-simulator-%d", *deviceID, time.Now().UnixNano())
	opts := paho.NewClientOptions().AddBroker(*brokerAddr).SetClientID(clientID)
	opts = opts.SetOrderMatters(false)

	client := paho.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("failed to connect to broker: %v", token.Error())
	}
	log.Printf("connected to MQTT broker %s as %s", *brokerAddr, clientID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	jitter := func(base, spread float64) float64 {
		return base + (rnd.Float64()*2-1)*spread
	}

	publishTelemetry := func() {
		payload := telemetryPayload{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Readings: map[string]float64{
				"power":       jitter(*basePower, 0.5),
				"pv_power":    jitter(*basePower, 0.5),
				"temperature": jitter(*baseTemperature, 5),
				"voltage":     jitter(*baseVoltage, 4),
			},
		}

		data, err := json.Marshal(payload)
		if err != nil {
			log.Printf("failed to encode payload: %v", err)
			return
		}

		topic := fmt.Sprintf("%s/%s/data", *namespace, *deviceID)
		token := client.Publish(topic, 1, false, data)
		token.Wait()
		if err := token.Error(); err != nil {
			log.Printf("publish error: %v", err)
			return
		}
		log.Printf("published %s power=%.2f", topic, payload.Readings["power"])
	}

	publishStatus := func(status string) {
		data, _ := json.Marshal(statusPayload{Status: status})
		topic := fmt.Sprintf("%s/%s/status", *namespace, *deviceID)
		token := client.Publish(topic, 1, false, data)
		token.Wait()
		if err := token.Error(); err != nil {
			log.Printf("status publish error: %v", err)
		}
	}

	publishStatus("online")
	publishTelemetry()

	for {
		select {
		case <-ctx.Done():
			log.Print("received shutdown signal, disconnecting")
			publishStatus("offline")
			client.Disconnect(250)
			return
		case <-ticker.C:
			publishTelemetry()
		}
	}
}
