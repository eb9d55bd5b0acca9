package external

import "encoding/json"

// WeatherStackErrorResponse is the envelope Weatherstack uses to report a failed lookup,
// sometimes with a 200 status.
type WeatherStackErrorResponse struct {
	Success *bool           `json:"success,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}

// WeatherStackErrorDetail is the content of the "error" key when it is an object
type WeatherStackErrorDetail struct {
	Code int             `json:"code"`
	Type string          `json:"type"`
	Info json.RawMessage `json:"info"`
}
