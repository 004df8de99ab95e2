// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrorLogger logs a failure with request context and then renders the
// matching friendly page.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogServerError logs msg and err at error level with a fresh error id and
// renders the 500 page showing userMsg and that id.
func (el *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	errorID := uuid.NewString()
	el.Log.Error(msg,
		zap.Error(err),
		zap.String("error_id", errorID),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	RenderServerError(w, r, userMsg, backURL, errorID)
}

// LogForbidden logs a denied request at info level and renders the 403 page.
func (el *ErrorLogger) LogForbidden(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	el.Log.Info(msg,
		zap.Error(err),
		zap.String("path", r.URL.Path))
	RenderForbidden(w, r, userMsg, backURL)
}
