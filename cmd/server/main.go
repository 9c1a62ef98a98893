package main

import (
	"context"
	"errors"
	"log"
	nethttp "net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"sunpeak.xyz/solar-telemetry-service/pkg/common"
	"sunpeak.xyz/solar-telemetry-service/pkg/db"
	solarHttp "sunpeak.xyz/solar-telemetry-service/pkg/http"
	"sunpeak.xyz/solar-telemetry-service/pkg/mqtt"
	"sunpeak.xyz/solar-telemetry-service/pkg/realtime"
	"sunpeak.xyz/solar-telemetry-service/pkg/rules"
	"sunpeak.xyz/solar-telemetry-service/pkg/solar"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	solarDbType := os.Getenv(common.EnvKeySolarDBType)
	switch solarDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown SOLAR_DB_TYPE: " + solarDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeySolarHttpHostPort))
	brokerURL := strings.TrimSpace(os.Getenv(common.EnvKeySolarMqttBrokerURL))
	namespace := strings.TrimSpace(os.Getenv(common.EnvKeySolarMqttNamespace))
	if namespace == "" {
		namespace = "solar"
	}

	rulesPath := strings.TrimSpace(os.Getenv(common.EnvKeySolarRulesPath))
	if rulesPath == "" {
		rulesPath = "rules.yaml"
	}

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeySolarDefaultRate), 64); err != nil {
		log.Fatal("Invalid SOLAR_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeySolarDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid SOLAR_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	ruleTable, err := rules.Load(rulesPath)
	if err != nil {
		log.Fatal("Failed to load threshold rules: ", err)
	}

	hub := realtime.NewHub()
	go hub.Run()

	solarCore := solar.Solar{
		Db:     *dbInstance,
		Rules:  ruleTable,
		Events: hub,
	}
	solarCore.WithServices(solar.ServiceOpts{
		Telemetry: solarCore.GetITelemetry(),
		Alert:     solarCore.GetIAlert(),
		Device:    solarCore.GetIDevice(),
		Query:     solarCore.GetIQuery(),
		Analytics: solarCore.GetIAnalytics(),
		Dashboard: solarCore.GetIDashboard(),
	})

	var consumer *mqtt.Consumer
	if brokerURL != "" {
		consumer = mqtt.NewConsumer(brokerURL, namespace, &solarCore)
		logger.Info("Starting MQTT consumer",
			zap.String("broker", brokerURL), zap.String("namespace", namespace))
		if err := consumer.Start(); err != nil {
			log.Fatal("Failed to start MQTT consumer: ", err)
		}
	} else {
		logger.Warn("SOLAR_MQTT_BROKER_URL not set, ingestion disabled")
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &solarHttp.RestfulServer{
		Server:           gin.Default(),
		Solar:            &solarCore,
		Hub:              hub,
		RateLimiterStore: solar.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	srv := &nethttp.Server{
		Addr:    httpHostPort,
		Handler: rs.Server,
	}

	go func() {
		logger.Info("Starting HTTP server on: " + httpHostPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("http server failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	if consumer != nil {
		consumer.Stop()
	}

	// Drain HTTP (including websocket upgrades in flight) before the hub
	// goes away so no connection is left waiting on a dead registry.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	hub.Stop()

	logger.Info("Shutdown complete")
}
