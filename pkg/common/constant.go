package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeySolarDBType string = "SOLAR_DB_TYPE"
	EnvKeySolarDbPath string = "SOLAR_DB_PATH"

	EnvKeySolarHttpHostPort string = "SOLAR_HTTP_HOST_PORT"

	EnvKeySolarMqttBrokerURL string = "SOLAR_MQTT_BROKER_URL"
	EnvKeySolarMqttNamespace string = "SOLAR_MQTT_NAMESPACE"

	EnvKeySolarRulesPath string = "SOLAR_RULES_PATH"

	EnvKeySolarDefaultRate  string = "SOLAR_DEFAULT_RATE"
	EnvKeySolarDefaultBurst string = "SOLAR_DEFAULT_BURST"

	LoggerNameSolarCore     string = "solar_core"
	LoggerNameMqttConsumer  string = "mqtt_consumer"
	LoggerNameRealtimeHub   string = "realtime_hub"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldSolarCategory      string = "category"
	LoggerCategorySolarTelemetry  string = "telemetry"
	LoggerCategorySolarAlert      string = "alert"
	LoggerCategorySolarDevice     string = "device"
	LoggerCategorySolarQuery      string = "query"
	LoggerCategorySolarAnalytics  string = "analytics"
	LoggerCategorySolarRuleConfig string = "rule_config"
)
