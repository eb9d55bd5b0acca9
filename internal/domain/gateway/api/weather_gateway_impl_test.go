package api

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "weather-api/configs"
	"weather-api/pkg/http"
)

func newTestGateway(t *testing.T, handler nethttp.HandlerFunc) WeatherGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewWeatherGateway(server.URL+"/current", "secret-key", http.ClientOptions{})
}

func writeJSON(w nethttp.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestGetCurrentWeatherReturnsPayload(t *testing.T) {
	var gotPath, gotKey, gotQuery string
	gateway := newTestGateway(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("access_key")
		gotQuery = r.URL.Query().Get("query")
		writeJSON(w, nethttp.StatusOK, `{"current":{"temperature":10}}`)
	})

	payload, err := gateway.GetCurrentWeather(context.Background(), "São Paulo")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(payload) != `{"current":{"temperature":10}}` {
		t.Fatalf("payload not passed through: %s", payload)
	}
	if gotPath != "/current" || gotKey != "secret-key" || gotQuery != "São Paulo" {
		t.Fatalf("unexpected upstream request path=%q key=%q query=%q", gotPath, gotKey, gotQuery)
	}
}

func TestGetCurrentWeatherClassifiesFailures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantAPI    bool
		wantInfo   string
		wantStatus int
	}{
		{
			name:       "error object with 200",
			status:     nethttp.StatusOK,
			body:       `{"success":false,"error":{"code":615,"type":"request_failed","info":"Your API request failed."}}`,
			wantAPI:    true,
			wantInfo:   "Your API request failed.",
			wantStatus: nethttp.StatusOK,
		},
		{
			name:       "error object without info",
			status:     nethttp.StatusOK,
			body:       `{"error":{"code":101}}`,
			wantAPI:    true,
			wantInfo:   "Weather API request failed",
			wantStatus: nethttp.StatusOK,
		},
		{
			name:       "error key that is not an object",
			status:     nethttp.StatusOK,
			body:       `{"error":"nope"}`,
			wantAPI:    true,
			wantInfo:   "Weather API request failed",
			wantStatus: nethttp.StatusOK,
		},
		{
			name:       "non success status with json body",
			status:     nethttp.StatusUnauthorized,
			body:       `{"error":{"info":"invalid access key"}}`,
			wantAPI:    true,
			wantInfo:   "invalid access key",
			wantStatus: nethttp.StatusUnauthorized,
		},
		{
			name:       "non success status without error key",
			status:     nethttp.StatusServiceUnavailable,
			body:       `{}`,
			wantAPI:    true,
			wantInfo:   "Weather API request failed",
			wantStatus: nethttp.StatusServiceUnavailable,
		},
		{
			name:   "success status with non json body",
			status: nethttp.StatusOK,
			body:   `<html>maintenance</html>`,
		},
		{
			name:   "error status with non json body",
			status: nethttp.StatusBadGateway,
			body:   `bad gateway`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := newTestGateway(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			payload, err := gateway.GetCurrentWeather(context.Background(), "Paris")

			if payload != nil {
				t.Fatalf("expected no payload, got %s", payload)
			}
			var apiErr *WeatherAPIError
			var transportErr *WeatherTransportError
			if tt.wantAPI {
				if !errors.As(err, &apiErr) {
					t.Fatalf("expected *WeatherAPIError, got %v", err)
				}
				if apiErr.Info != tt.wantInfo {
					t.Fatalf("expected info %q, got %q", tt.wantInfo, apiErr.Info)
				}
				if apiErr.StatusCode != tt.wantStatus {
					t.Fatalf("expected status %d, got %d", tt.wantStatus, apiErr.StatusCode)
				}
				return
			}
			if !errors.As(err, &transportErr) {
				t.Fatalf("expected *WeatherTransportError, got %v", err)
			}
		})
	}
}

func TestGetCurrentWeatherTransportErrorHidesAccessKey(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
	baseURL := server.URL
	server.Close()

	gateway := NewWeatherGateway(baseURL, "secret-key", http.ClientOptions{})
	_, err := gateway.GetCurrentWeather(context.Background(), "Paris")

	var transportErr *WeatherTransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *WeatherTransportError, got %v", err)
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Fatalf("transport error leaks the access key: %v", err)
	}
}

func TestGetCurrentWeatherFollowsRedirects(t *testing.T) {
	gateway := newTestGateway(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path == "/current" {
			nethttp.Redirect(w, r, "/v2/current?"+r.URL.RawQuery, nethttp.StatusMovedPermanently)
			return
		}
		if r.URL.Query().Get("access_key") != "secret-key" {
			writeJSON(w, nethttp.StatusUnauthorized, `{"error":{"info":"missing key"}}`)
			return
		}
		writeJSON(w, nethttp.StatusOK, `{"current":{"temperature":10}}`)
	})

	payload, err := gateway.GetCurrentWeather(context.Background(), "Paris")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(payload) != `{"current":{"temperature":10}}` {
		t.Fatalf("payload not passed through: %s", payload)
	}
}
