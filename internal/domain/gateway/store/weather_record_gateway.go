package store

import (
	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
)

type WeatherRecordGateway interface {
	// Save inserts a record under its ID. IDs must be unique.
	Save(record entity.WeatherRecord) error
	// FindByID returns nil without error when no record has the given ID.
	FindByID(id string) (*entity.WeatherRecord, error)
	CountAll() int
}

type HealthStoreGateway interface {
	Health() model.ComponentHealthStatus
}
