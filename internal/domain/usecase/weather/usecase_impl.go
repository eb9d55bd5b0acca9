package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/gateway/store"
	"weather-api/internal/domain/model"
	"weather-api/pkg/log"
	"weather-api/pkg/metrics"
	"weather-api/pkg/msg"
)

var tracer = otel.Tracer("weather-api/usecase/weather")

type weatherUseCase struct {
	timeout      time.Duration
	apiGateway   api.WeatherGateway
	storeGateway store.WeatherRecordGateway
}

// NewWeatherUseCase wires the use case. A positive timeout bounds every upstream call.
func NewWeatherUseCase(timeout time.Duration, apiGateway api.WeatherGateway, storeGateway store.WeatherRecordGateway) UseCase {
	return &weatherUseCase{
		timeout:      timeout,
		apiGateway:   apiGateway,
		storeGateway: storeGateway,
	}
}

func (uc *weatherUseCase) CreateWeatherRecord(ctx context.Context, dto model.CreateWeatherRecordDTO) (*model.CreateWeatherRecordResponse, error) {
	if dto.Location == "" || dto.Date == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, msg.GetMessage("weather.error.required-fields"))
	}

	ctx, span := tracer.Start(ctx, "CreateWeatherRecord")
	defer span.End()
	span.SetAttributes(attribute.String("weather.location", dto.Location))

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	payload, err := uc.apiGateway.GetCurrentWeather(ctx, dto.Location)
	if err != nil {
		uc.recordUpstreamFailure(dto.Location, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "weather lookup failed")
		return nil, err
	}
	metrics.UpstreamRequests.WithLabelValues(metrics.OutcomeSuccess).Inc()

	record := entity.WeatherRecord{
		ID:       uuid.NewString(),
		Date:     dto.Date,
		Location: dto.Location,
		Notes:    dto.Notes,
		Weather:  payload,
	}

	if err := uc.storeGateway.Save(record); err != nil {
		return nil, fmt.Errorf("failed to save weather record: %w", err)
	}
	metrics.RecordsCreated.Inc()
	span.SetAttributes(attribute.String("weather.record_id", record.ID))

	log.Info(msg.GetMessage("weather.created", record.ID, record.Location),
		zap.String("id", record.ID),
		zap.String("location", record.Location),
		zap.String("date", record.Date),
	)

	return &model.CreateWeatherRecordResponse{ID: record.ID}, nil
}

func (uc *weatherUseCase) FindWeatherRecordByID(id string) (*entity.WeatherRecord, error) {
	record, err := uc.storeGateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	return record, nil
}

func (uc *weatherUseCase) CountWeatherRecords() int {
	return uc.storeGateway.CountAll()
}

func (uc *weatherUseCase) recordUpstreamFailure(location string, err error) {
	var apiErr *api.WeatherAPIError
	if errors.As(err, &apiErr) {
		metrics.UpstreamRequests.WithLabelValues(metrics.OutcomeRejected).Inc()
		log.Warn("weather lookup rejected by provider",
			zap.String("location", location),
			zap.Int("status", apiErr.StatusCode),
			zap.String("info", apiErr.Info),
		)
		return
	}

	metrics.UpstreamRequests.WithLabelValues(metrics.OutcomeTransportError).Inc()
	log.Error("weather lookup failed",
		zap.String("location", location),
		zap.Error(err),
	)
}
