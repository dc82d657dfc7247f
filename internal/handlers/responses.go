package handlers

import (
	stderrors "errors"
	"log/slog"

	"predial-consulta/internal/errors"
	"predial-consulta/internal/middleware"
	"predial-consulta/internal/services"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError (client errors with a known
// code) or SendSystemError (anything else). Both write the standard
// {"ok":false,...} body and count the error; SendSystemError never exposes
// the underlying error to the client.

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, middleware.GetTraceID(c), opts...)
	status := errorResponse.GetHTTPStatus()
	middleware.RecordAPIError(errorResponse.Code, c.Path(), status)
	return c.JSON(status, errorResponse)
}

// SendSystemError logs err and sends a generic SYSTEM_001 response, or
// SYSTEM_002 when the account store failed
func SendSystemError(c echo.Context, err error) error {
	traceID := middleware.GetTraceID(c)

	wrap := errors.WrapSystemError
	if stderrors.Is(err, services.ErrStoreUnavailable) {
		wrap = errors.WrapDatabaseError
	}
	errorResponse, internalErr := wrap(err, traceID)

	slog.Error("request failed",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", internalErr,
	)

	status := errorResponse.GetHTTPStatus()
	middleware.RecordAPIError(errorResponse.Code, c.Path(), status)
	return c.JSON(status, errorResponse)
}
