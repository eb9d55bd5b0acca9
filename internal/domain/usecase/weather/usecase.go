package weather

import (
	"context"
	"errors"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
)

var (
	// ErrInvalidRequest is returned when date or location is missing.
	ErrInvalidRequest = errors.New("invalid weather request")
	// ErrRecordNotFound is returned when no record matches the requested ID.
	ErrRecordNotFound = errors.New("weather record not found")
)

type UseCase interface {
	// CreateWeatherRecord looks up the current weather for the location and stores it with the request fields
	CreateWeatherRecord(ctx context.Context, dto model.CreateWeatherRecordDTO) (*model.CreateWeatherRecordResponse, error)

	// FindWeatherRecordByID returns a stored record or ErrRecordNotFound
	FindWeatherRecordByID(id string) (*entity.WeatherRecord, error)

	// CountWeatherRecords returns the number of stored records
	CountWeatherRecords() int
}
