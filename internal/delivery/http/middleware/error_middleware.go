package middleware

import (
	"log/slog"
	"net/http"

	"folio/internal/delivery/http/response"
	domainerrors "folio/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Everything that
// reaches the client is the flat {"error": ...} body; the AppError message is
// the wire message, so internals never leak.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
				slog.String("errorCode", appErr.ErrorCode()),
				slog.Any("error", err),
			)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok {
			message = s
		}
		_ = response.Error(c, httpErr.Code, message)

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.Any("error", err),
	)

	_ = response.Error(c, http.StatusInternalServerError, domainerrors.ErrInternal.Message())
}
