package schedule

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-api/internal/domain/usecase/weather"
	"weather-api/pkg/log"
	"weather-api/pkg/metrics"
	"weather-api/pkg/msg"
)

type StoreReportScheduler struct {
	cron    *cron.Cron
	useCase weather.UseCase
}

func NewStoreReportScheduler(useCase weather.UseCase) *StoreReportScheduler {
	return &StoreReportScheduler{cron: cron.New(), useCase: useCase}
}

// InitStoreReportScheduleTasks registers the store report under spec and starts the scheduler
func (scheduler *StoreReportScheduler) InitStoreReportScheduleTasks(spec string) error {
	if _, err := scheduler.cron.AddFunc(spec, scheduler.ReportStoredRecords); err != nil {
		return fmt.Errorf("invalid store report cron %q: %w", spec, err)
	}

	scheduler.cron.Start()
	return nil
}

func (scheduler *StoreReportScheduler) ReportStoredRecords() {
	log.Info(msg.GetMessage("store.cron.start"))

	count := scheduler.useCase.CountWeatherRecords()
	metrics.RecordsStored.Set(float64(count))

	log.Info(msg.GetMessage("store.cron.end", count), zap.Int("records", count))
}

// Stop prevents new runs and returns a context that is done once running jobs finished
func (scheduler *StoreReportScheduler) Stop() context.Context {
	return scheduler.cron.Stop()
}
