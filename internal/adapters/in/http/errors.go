package http

import (
	"errors"
	"log/slog"
	"net/http"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/services"
	"ordermanagement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps a use-case error to its HTTP status. The in-use check comes
// before the general car check because ErrCarInUse wraps ErrCarUnavailable.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrCarInUse):
		return http.StatusIMUsed
	case errors.Is(err, services.ErrCarUnavailable), errors.Is(err, services.ErrUserIneligible):
		return http.StatusUnprocessableEntity
	case errors.Is(err, order.ErrIllegalReservation):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrOrderIsClosed):
		return http.StatusConflict
	case errors.Is(err, errs.ErrDependencyUnavailable):
		return http.StatusFailedDependency
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as an Error body. Internal failures are logged and
// answered with a generic message.
func (s *Server) writeError(c echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
			slog.Any("error", err),
		)
		message = http.StatusText(http.StatusInternalServerError)
	}
	return c.JSON(status, Error{Code: status, Message: message})
}

// httpErrorHandler renders errors that escape the handlers, such as unknown
// routes and panics, in the same shape as use-case errors.
func httpErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := http.StatusText(status)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		} else {
			logger.ErrorContext(c.Request().Context(), "unhandled error", slog.Any("error", err))
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, Error{Code: status, Message: message})
	}
}
