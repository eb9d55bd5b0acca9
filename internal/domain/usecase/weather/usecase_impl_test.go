package weather

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	_ "weather-api/configs"
	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/gateway/store"
	"weather-api/internal/domain/model"
	"weather-api/pkg/metrics"
)

type fakeWeatherGateway struct {
	payload   json.RawMessage
	err       error
	calls     int
	locations []string
	deadline  bool
}

func (f *fakeWeatherGateway) GetCurrentWeather(ctx context.Context, location string) (json.RawMessage, error) {
	f.calls++
	f.locations = append(f.locations, location)
	_, f.deadline = ctx.Deadline()
	return f.payload, f.err
}

func newUseCase(gateway api.WeatherGateway) (UseCase, *store.MemoryWeatherRecordGateway) {
	records := store.NewMemoryWeatherRecordGateway()
	return NewWeatherUseCase(time.Second, gateway, records), records
}

func TestCreateWeatherRecordStoresRecord(t *testing.T) {
	gateway := &fakeWeatherGateway{payload: json.RawMessage(`{"current":{"temperature":10}}`)}
	useCase, records := newUseCase(gateway)
	createdBefore := testutil.ToFloat64(metrics.RecordsCreated)

	resp, err := useCase.CreateWeatherRecord(context.Background(), model.CreateWeatherRecordDTO{
		Date: "2024-01-01", Location: "Paris", Notes: "trip",
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID == "" {
		t.Fatalf("expected generated id")
	}
	if gateway.calls != 1 || gateway.locations[0] != "Paris" {
		t.Fatalf("expected exactly one upstream call for Paris, got %v", gateway.locations)
	}
	if !gateway.deadline {
		t.Fatalf("expected upstream call to be bounded by a deadline")
	}

	record, err := useCase.FindWeatherRecordByID(resp.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Date != "2024-01-01" || record.Location != "Paris" || record.Notes != "trip" {
		t.Fatalf("unexpected record %+v", record)
	}
	if string(record.Weather) != `{"current":{"temperature":10}}` {
		t.Fatalf("weather payload changed: %s", record.Weather)
	}
	if records.CountAll() != 1 {
		t.Fatalf("expected one stored record, got %d", records.CountAll())
	}
	if got := testutil.ToFloat64(metrics.RecordsCreated) - createdBefore; got != 1 {
		t.Fatalf("expected created counter to grow by 1, got %v", got)
	}
}

func TestCreateWeatherRecordRequiresDateAndLocation(t *testing.T) {
	tests := []struct {
		name string
		dto  model.CreateWeatherRecordDTO
	}{
		{"missing location", model.CreateWeatherRecordDTO{Date: "2024-01-01"}},
		{"missing date", model.CreateWeatherRecordDTO{Location: "Paris"}},
		{"both missing", model.CreateWeatherRecordDTO{Notes: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &fakeWeatherGateway{payload: json.RawMessage(`{}`)}
			useCase, records := newUseCase(gateway)

			_, err := useCase.CreateWeatherRecord(context.Background(), tt.dto)

			if !errors.Is(err, ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}
			if gateway.calls != 0 {
				t.Fatalf("expected no upstream call, got %d", gateway.calls)
			}
			if records.CountAll() != 0 {
				t.Fatalf("expected empty store")
			}
		})
	}
}

func TestCreateWeatherRecordUpstreamFailuresStoreNothing(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		outcome string
	}{
		{"rejected", &api.WeatherAPIError{StatusCode: 200, Info: "bad location"}, metrics.OutcomeRejected},
		{"transport", &api.WeatherTransportError{Err: errors.New("connection refused")}, metrics.OutcomeTransportError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &fakeWeatherGateway{err: tt.err}
			useCase, records := newUseCase(gateway)
			before := testutil.ToFloat64(metrics.UpstreamRequests.WithLabelValues(tt.outcome))

			_, err := useCase.CreateWeatherRecord(context.Background(), model.CreateWeatherRecordDTO{
				Date: "2024-01-01", Location: "Nowhere",
			})

			if !errors.Is(err, tt.err) {
				t.Fatalf("expected gateway error to be returned, got %v", err)
			}
			if records.CountAll() != 0 {
				t.Fatalf("expected empty store, got %d records", records.CountAll())
			}
			if got := testutil.ToFloat64(metrics.UpstreamRequests.WithLabelValues(tt.outcome)) - before; got != 1 {
				t.Fatalf("expected %s counter to grow by 1, got %v", tt.outcome, got)
			}
		})
	}
}

func TestCreateWeatherRecordGeneratesDistinctIDs(t *testing.T) {
	gateway := &fakeWeatherGateway{payload: json.RawMessage(`{"current":{}}`)}
	useCase, records := newUseCase(gateway)
	dto := model.CreateWeatherRecordDTO{Date: "2024-01-01", Location: "Paris"}

	first, err := useCase.CreateWeatherRecord(context.Background(), dto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := useCase.CreateWeatherRecord(context.Background(), dto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, got %s twice", first.ID)
	}
	if records.CountAll() != 2 {
		t.Fatalf("expected two records, got %d", records.CountAll())
	}
}

func TestFindWeatherRecordByIDNotFound(t *testing.T) {
	useCase, _ := newUseCase(&fakeWeatherGateway{})

	_, err := useCase.FindWeatherRecordByID("unknown")

	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
