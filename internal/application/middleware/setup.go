package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Setup registers the validator, the error handler and the global middlewares.
// Logging wraps recovery so panicking requests are still logged.
func Setup(e *echo.Echo, allowedOrigins []string) {
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = HTTPErrorHandler

	SetupRequestLogger(e)
	e.Use(echomw.Recover())
	SetupCORS(e, allowedOrigins)
}
