package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// WeatherGateway defines the interface for calls to the current weather provider
type WeatherGateway interface {
	// GetCurrentWeather fetches current conditions for a free-text location.
	// The payload is returned undecoded. Failures are *WeatherAPIError when the provider
	// rejected the lookup and *WeatherTransportError for everything else.
	GetCurrentWeather(ctx context.Context, location string) (json.RawMessage, error)
}

// WeatherAPIError means the provider answered but reported a failure.
type WeatherAPIError struct {
	StatusCode int
	Info       string
}

func (e *WeatherAPIError) Error() string {
	return e.Info
}

// WeatherTransportError means the provider could not be reached or its answer could not be read.
type WeatherTransportError struct {
	Err error
}

func (e *WeatherTransportError) Error() string {
	return fmt.Sprintf("weather transport: %v", e.Err)
}

func (e *WeatherTransportError) Unwrap() error {
	return e.Err
}
