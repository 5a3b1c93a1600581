// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger logs handler failures and shows the user a friendly page
// instead of the raw error.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger creates an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{log: logger}
}

// LogServerError logs err with request context and renders a 500 page with
// userMsg. backURL defaults to "/".
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.log.Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))

	render(w, r, http.StatusInternalServerError, "Error del servidor", userMsg, "", backURL)
}

// LogUnavailable logs err as a warning and renders a 503 page showing the
// cause, so an operator can see why the catalog is missing.
func (e *ErrorLogger) LogUnavailable(w http.ResponseWriter, r *http.Request, msg string, err error, heading, userMsg string) {
	e.log.Warn(msg,
		zap.Error(err),
		zap.String("path", r.URL.Path))

	detail := ""
	if err != nil {
		detail = err.Error()
	}
	RenderUnavailable(w, r, heading, userMsg, detail)
}
