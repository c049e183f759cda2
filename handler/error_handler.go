package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/classtym/campaign/pkg/binder"
	"github.com/classtym/campaign/pkg/logger"
	"github.com/classtym/campaign/pkg/requestid"
	"github.com/classtym/campaign/pkg/validator"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

// classifyError maps an error to the status and message shown to the client.
// Messages of unexpected errors are never exposed.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternalServerError.Code,
		Message:    ErrInternalServerError.Message,
	}

	var httpErr HTTPError
	var validationErr validator.ValidationErrors

	switch {
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Message
	case errors.As(err, &validationErr):
		info.StatusCode = http.StatusUnprocessableEntity
		info.Message = "Validation failed"
		if first := validator.FirstError(validationErr); first != nil {
			info.Message = first.Message
		}
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		info.StatusCode = http.StatusUnsupportedMediaType
		info.Message = "Request body must be JSON"
	case errors.Is(err, binder.ErrRequestTooLarge):
		info.StatusCode = http.StatusRequestEntityTooLarge
		info.Message = http.StatusText(http.StatusRequestEntityTooLarge)
	case errors.Is(err, binder.ErrFailedToParseJSON), errors.Is(err, binder.ErrFailedToParsePath):
		info.StatusCode = ErrBadRequest.Code
		info.Message = ErrBadRequest.Message
	}

	info.LogLevel = slog.LevelError
	if info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler creates the error handler shared by all routes. Plain
// requests get a JSON failure body with the classified status; Datastar
// requests get the message patched into the "error" signal with loading
// cleared.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Component("error_handler"),
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
		)

		var resp Response
		if IsDataStar(r) {
			resp = DataStar(WithSignals(map[string]any{"error": info.Message, "loading": false}))
		} else {
			resp = JSON(failureBody{Error: info.Message}, WithJSONStatus(info.StatusCode))
		}

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Component("error_handler"),
				logger.Error(renderErr),
			)
		}
	}
}
