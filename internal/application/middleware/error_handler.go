package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-api/internal/domain/model"
	"weather-api/pkg/log"
)

// HTTPErrorHandler renders every unhandled error as {"detail": "..."}.
// Errors that are not *echo.HTTPError become a 500 without exposing their text.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	detail := http.StatusText(status)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		detail = http.StatusText(status)
		if message, ok := httpErr.Message.(string); ok && message != "" {
			detail = message
		}
	} else {
		log.Error("unhandled request error",
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, model.ErrorResponse{Detail: detail})
	}
	if writeErr != nil {
		log.Error("failed to write error response", zap.Error(writeErr))
	}
}
