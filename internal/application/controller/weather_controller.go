package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/usecase/weather"
	"weather-api/pkg/msg"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.POST("/weather", controller.CreateWeatherRecord)
	controller.api.GET("/weather/:weather_id", controller.FindWeatherRecordByID)
}

// CreateWeatherRecord godoc
// @Summary Create weather record
// @Description Look up the current weather for a location and store it with the given date and notes
// @Tags weather
// @Accept json
// @Produce json
// @Param record body model.CreateWeatherRecordDTO true "Weather lookup request"
// @Success 201 {object} model.CreateWeatherRecordResponse "Identifier of the stored record"
// @Failure 400 {object} model.ErrorResponse "Invalid body, missing fields or lookup rejected by the provider"
// @Failure 500 {object} model.ErrorResponse "Weather provider unreachable or unreadable"
// @Router /weather [post]
func (controller *WeatherController) CreateWeatherRecord(c echo.Context) error {
	var dto model.CreateWeatherRecordDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Detail: msg.GetMessage("weather.error.invalid-body")})
	}

	if err := c.Validate(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Detail: msg.GetMessage("weather.error.required-fields")})
	}

	response, err := controller.useCase.CreateWeatherRecord(c.Request().Context(), dto)
	if err != nil {
		return c.JSON(statusAndDetail(err))
	}
	return c.JSON(http.StatusCreated, response)
}

// FindWeatherRecordByID godoc
// @Summary Get weather record
// @Description Retrieve a stored weather record by its identifier
// @Tags weather
// @Produce json
// @Param weather_id path string true "Weather record identifier"
// @Success 200 {object} entity.WeatherRecord "Stored weather record"
// @Failure 404 {object} model.ErrorResponse "Weather data not found"
// @Router /weather/{weather_id} [get]
func (controller *WeatherController) FindWeatherRecordByID(c echo.Context) error {
	record, err := controller.useCase.FindWeatherRecordByID(c.Param("weather_id"))
	if err != nil {
		return c.JSON(statusAndDetail(err))
	}
	return c.JSON(http.StatusOK, record)
}

// statusAndDetail maps use case errors to the status and message returned to clients
func statusAndDetail(err error) (int, model.ErrorResponse) {
	var apiErr *api.WeatherAPIError
	var transportErr *api.WeatherTransportError

	switch {
	case errors.Is(err, weather.ErrInvalidRequest):
		return http.StatusBadRequest, model.ErrorResponse{Detail: msg.GetMessage("weather.error.required-fields")}
	case errors.Is(err, weather.ErrRecordNotFound):
		return http.StatusNotFound, model.ErrorResponse{Detail: msg.GetMessage("weather.error.not-found")}
	case errors.As(err, &apiErr):
		return http.StatusBadRequest, model.ErrorResponse{Detail: apiErr.Info}
	case errors.As(err, &transportErr):
		return http.StatusInternalServerError, model.ErrorResponse{Detail: msg.GetMessage("weather.error.api", transportErr.Err)}
	default:
		return http.StatusInternalServerError, model.ErrorResponse{Detail: http.StatusText(http.StatusInternalServerError)}
	}
}
