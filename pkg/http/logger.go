package http

import (
	"net/url"
	"strings"

	"go.uber.org/zap"

	"weather-api/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called when the request failed or the server answered with an error status
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string, string) {}

func (noopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {}

func (noopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}

type zapHTTPLogger struct {
	redactParams []string
}

// NewZapHTTPLogger returns an HTTPLogger writing through pkg/log.
// Values of the query parameters named in redactParams are masked in every logged URL,
// response body and error.
func NewZapHTTPLogger(redactParams ...string) HTTPLogger {
	return &zapHTTPLogger{redactParams: redactParams}
}

func (l *zapHTTPLogger) LogRequest(method, rawURL string, _ map[string]string, _ string) {
	log.Debug("outbound request",
		zap.String("method", method),
		zap.String("url", l.redact(rawURL)),
	)
}

func (l *zapHTTPLogger) LogResponseSuccess(method, rawURL string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	log.Info("outbound request completed",
		zap.String("method", method),
		zap.String("url", l.redact(rawURL)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	)
}

func (l *zapHTTPLogger) LogResponseError(method, rawURL string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("outbound request failed",
		zap.String("method", method),
		zap.String("url", l.redact(rawURL)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", RedactValues(responseBody, rawURL, l.redactParams...)),
		zap.String("error", redactError(err, rawURL, l.redactParams)),
	)
}

func redactError(err error, rawURL string, params []string) string {
	if err == nil {
		return ""
	}
	return RedactValues(err.Error(), rawURL, params...)
}

func (l *zapHTTPLogger) redact(rawURL string) string {
	return RedactQuery(rawURL, l.redactParams...)
}

// RedactQuery masks the values of the named query parameters in rawURL.
func RedactQuery(rawURL string, params ...string) string {
	if len(params) == 0 {
		return rawURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	changed := false
	for _, param := range params {
		if query.Has(param) {
			query.Set(param, "REDACTED")
			changed = true
		}
	}
	if !changed {
		return rawURL
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// RedactValues masks every occurrence in text of the values the named query parameters
// carry in rawURL, raw or query-escaped.
func RedactValues(text, rawURL string, params ...string) string {
	if len(params) == 0 || text == "" {
		return text
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return text
	}
	query := parsed.Query()
	for _, param := range params {
		for _, value := range query[param] {
			if value == "" {
				continue
			}
			text = strings.ReplaceAll(text, value, "REDACTED")
			text = strings.ReplaceAll(text, url.QueryEscape(value), "REDACTED")
		}
	}
	return text
}
