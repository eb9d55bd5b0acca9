package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"weather-api/internal/domain/model/external"
	"weather-api/pkg/http"
	"weather-api/pkg/msg"
)

const accessKeyParam = "access_key"

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client.
// baseUrl is the full current-weather endpoint, e.g. http://api.weatherstack.com/current.
func NewWeatherGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	if clientOptions.Logger == nil {
		clientOptions.Logger = http.NewZapHTTPLogger(accessKeyParam)
	}
	clientOptions.FollowRedirect = true

	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		apiKey:     apiKey,
	}
}

func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, location string) (json.RawMessage, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithQueryParams(map[string]string{
			accessKeyParam: w.apiKey,
			"query":        location,
		}).
		WithSuccessResp(&json.RawMessage{}).
		WithErrorResp(&json.RawMessage{}).
		Execute()

	if err != nil {
		var statusErr *http.StatusError
		if errors.As(err, &statusErr) {
			var body json.RawMessage
			if errResp != nil {
				body = *errResp.(*json.RawMessage)
			}
			return nil, &WeatherAPIError{StatusCode: status, Info: errorInfo(body)}
		}
		return nil, &WeatherTransportError{Err: stripURL(err)}
	}

	payload := *successResp.(*json.RawMessage)
	if hasErrorKey(payload) {
		return nil, &WeatherAPIError{StatusCode: status, Info: errorInfo(payload)}
	}

	return payload, nil
}

// hasErrorKey reports whether payload is a JSON object carrying an "error" member
func hasErrorKey(payload json.RawMessage) bool {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return false
	}
	_, ok := envelope["error"]
	return ok
}

// errorInfo extracts error.info from a provider answer, falling back to a generic message
func errorInfo(payload json.RawMessage) string {
	fallback := msg.GetMessage("weather.error.api-failed")

	var envelope external.WeatherStackErrorResponse
	if err := json.Unmarshal(payload, &envelope); err != nil || len(envelope.Error) == 0 {
		return fallback
	}

	var detail external.WeatherStackErrorDetail
	if err := json.Unmarshal(envelope.Error, &detail); err != nil || len(detail.Info) == 0 {
		return fallback
	}

	var info string
	if bytes.Equal(detail.Info, []byte("null")) || json.Unmarshal(detail.Info, &info) != nil {
		return fallback
	}
	return info
}

// stripURL drops the request URL from transport errors so the access key never reaches a response
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
