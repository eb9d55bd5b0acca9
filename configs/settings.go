package configs

import (
	"errors"
	"strings"
	"time"

	"weather-api/pkg/msg"
	"weather-api/pkg/resource"
)

type WeatherStackConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type TelemetryConfig struct {
	OTLPEndpoint string
}

// Settings is the typed view of the loaded properties. It is not modified after startup.
type Settings struct {
	ApplicationName string
	Environment     string
	LogLevel        string
	Port            string
	ContextPath     string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	StoreReportCron string
	WeatherStack    WeatherStackConfig
	Telemetry       TelemetryConfig
}

// LoadSettings builds Settings from the properties currently loaded in pkg/resource.
func LoadSettings() *Settings {
	return &Settings{
		ApplicationName: resource.GetString("app.name"),
		Environment:     resource.GetString("app.environment"),
		LogLevel:        resource.GetString("app.log-level"),
		Port:            resource.GetString("app.server.port"),
		ContextPath:     strings.TrimRight(resource.GetString("app.server.context-path"), "/"),
		ShutdownTimeout: resource.GetDuration("app.server.shutdown-timeout"),
		AllowedOrigins:  splitOrigins(resource.GetString("app.server.allowed-origins")),
		StoreReportCron: resource.GetString("app.store.report.cron"),
		WeatherStack: WeatherStackConfig{
			APIKey:  resource.GetString("app.weatherstack.api-key"),
			BaseURL: resource.GetString("app.weatherstack.base-url"),
			Timeout: resource.GetDuration("app.weatherstack.timeout"),
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: resource.GetString("app.telemetry.otlp-endpoint"),
		},
	}
}

// Validate fails when a setting required to serve requests is missing.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.WeatherStack.APIKey) == "" {
		return errors.New(msg.GetMessage("app.error.missing-api-key"))
	}
	return nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
