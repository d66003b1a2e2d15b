// Package shared holds the response envelope and context helpers used by all
// API handlers.
package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/subtrackr/subtrackr-api/internal/redact"
)

// Envelope is the uniform response body for every endpoint:
// {"success": bool, "message": string, "data": ...}.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a success envelope with the given status, message
// and payload.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, message string, data interface{}) {
	writeEnvelope(w, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	}, status)
}

// RespondWithError writes a failure envelope with the given status code and
// message. It also sets the trace ID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	writeEnvelope(w, Envelope{
		Success: false,
		Message: message,
		TraceID: traceID,
	}, status)
}

// RespondWithErrorAndLog writes a failure envelope and logs the underlying
// error. The raw error never reaches the client, and it is redacted before
// logging so credentials and tokens cannot leak either way.
//
// Log level strategy: 5xx at ERROR, 4xx at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	writeEnvelope(w, Envelope{
		Success: false,
		Message: userMessage,
		TraceID: traceID,
	}, status)
}

func writeEnvelope(w http.ResponseWriter, env Envelope, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
