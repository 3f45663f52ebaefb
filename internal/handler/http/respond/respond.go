// Package respond writes JSON responses and maps domain errors to HTTP statuses
// without leaking internal details.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"postboard/internal/domain/entity"
	"postboard/internal/handler/http/pathutil"
	"postboard/internal/observability/logging"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are already sent
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, entity.ErrValidation), errors.Is(err, pathutil.ErrInvalidID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Err writes err using the status from StatusFor.
func Err(w http.ResponseWriter, r *http.Request, err error) {
	SafeError(w, r, StatusFor(err), err)
}

// SafeError writes err with the given status. Client errors carry their message;
// 5xx responses carry a generic message and the sanitized cause is logged.
func SafeError(w http.ResponseWriter, r *http.Request, code int, err error) {
	if err == nil {
		return
	}

	if code >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("internal server error",
			slog.Int("code", code),
			slog.String("path", r.URL.Path),
			slog.String("error", SanitizeError(err)))
		JSON(w, code, ErrorBody{Error: "internal server error"})
		return
	}

	body := ErrorBody{Error: err.Error()}
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		body = ErrorBody{Error: verr.Error(), Field: verr.Field}
	}
	JSON(w, code, body)
}
