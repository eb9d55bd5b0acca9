package store

import (
	"fmt"
	"strconv"
	"sync"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
	"weather-api/pkg/metrics"
)

// MemoryWeatherRecordGateway keeps weather records in a map guarded by a RWMutex.
type MemoryWeatherRecordGateway struct {
	mu      sync.RWMutex
	records map[string]entity.WeatherRecord
}

// NewMemoryWeatherRecordGateway returns an empty store that lives as long as the process.
func NewMemoryWeatherRecordGateway() *MemoryWeatherRecordGateway {
	return &MemoryWeatherRecordGateway{records: make(map[string]entity.WeatherRecord)}
}

func (g *MemoryWeatherRecordGateway) Save(record entity.WeatherRecord) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.records[record.ID]; exists {
		return fmt.Errorf("weather record %s already exists", record.ID)
	}
	g.records[record.ID] = record
	metrics.RecordsStored.Set(float64(len(g.records)))
	return nil
}

func (g *MemoryWeatherRecordGateway) FindByID(id string) (*entity.WeatherRecord, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	record, exists := g.records[id]
	if !exists {
		return nil, nil
	}
	return &record, nil
}

func (g *MemoryWeatherRecordGateway) CountAll() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.records)
}

func (g *MemoryWeatherRecordGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"type":    "memory",
			"records": strconv.Itoa(g.CountAll()),
		},
	}
}
