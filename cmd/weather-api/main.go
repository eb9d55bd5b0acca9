package main

//go:generate swag init -d ../.. -g cmd/weather-api/main.go -o ../../docs --outputTypes go

import (
	"context"
	"errors"
	nethttp "net/http"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"weather-api/configs"
	"weather-api/docs"
	"weather-api/internal/application/controller"
	"weather-api/internal/application/middleware"
	"weather-api/internal/application/schedule"
	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/gateway/store"
	"weather-api/internal/domain/usecase/health"
	"weather-api/internal/domain/usecase/weather"
	"weather-api/internal/infra/telemetry"
	"weather-api/pkg/http"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
)

// @title Weather Data System
// @version 1.0.0
// @description Stores current weather lookups for a location and date and returns them by identifier.
// @BasePath /
func main() {
	defer log.Sync()

	settings := configs.LoadSettings()
	if err := settings.Validate(); err != nil {
		log.Fatal(err.Error())
	}
	if err := log.SetLevel(settings.LogLevel); err != nil {
		log.Warn(msg.GetMessage("app.error.invalid-log-level", settings.LogLevel))
	}

	log.Info(msg.GetMessage("app.start", settings.ApplicationName, settings.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init infra
	shutdownTracer, err := telemetry.InitTracerProvider(ctx, settings.ApplicationName, settings.Environment, settings.Telemetry.OTLPEndpoint)
	if err != nil {
		log.Fatal(msg.GetMessage("app.error.telemetry", err))
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, settings.AllowedOrigins)
	router := e.Group(settings.ContextPath)

	// Init Gateways
	weatherGateway := api.NewWeatherGateway(settings.WeatherStack.BaseURL, settings.WeatherStack.APIKey, http.ClientOptions{
		ReadTimeout: settings.WeatherStack.Timeout,
	})
	weatherRecordGateway := store.NewMemoryWeatherRecordGateway()

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(weatherRecordGateway)
	weatherUseCase := weather.NewWeatherUseCase(settings.WeatherStack.Timeout, weatherGateway, weatherRecordGateway)

	// Init Controller
	healthController := controller.NewHealthController(router, healthUseCase)
	weatherController := controller.NewWeatherController(router, weatherUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()
	router.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	docs.SwaggerInfo.BasePath = settings.ContextPath + "/"
	router.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	storeReportScheduler := schedule.NewStoreReportScheduler(weatherUseCase)
	if err := storeReportScheduler.InitStoreReportScheduleTasks(settings.StoreReportCron); err != nil {
		log.Fatal(msg.GetMessage("app.error.schedule", err))
	}

	// Start Routes
	go func() {
		log.Info(msg.GetMessage("app.started", settings.Port))
		if err := e.Start(":" + settings.Port); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Error(msg.GetMessage("app.error.server", err), zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.ShutdownTimeout)
	defer cancel()

	<-storeReportScheduler.Stop().Done()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(msg.GetMessage("app.error.shutdown", err), zap.Error(err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Error(msg.GetMessage("app.error.shutdown", err), zap.Error(err))
	}

	log.Info(msg.GetMessage("app.stopped"))
}
