package entity

import "encoding/json"

// WeatherRecord is a stored lookup: the request fields plus the upstream payload, kept verbatim.
type WeatherRecord struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`
	Location string          `json:"location"`
	Notes    string          `json:"notes"`
	Weather  json.RawMessage `json:"weather" swaggertype:"object"`
}
