package http

import (
	"net/http"

	"postboard/internal/handler/http/respond"
)

// Request limits applied before routing.
const (
	MaxPathLength = 2048
	MaxBodyBytes  = 1 << 20
)

// InputValidation rejects oversized paths and caps request bodies at maxBody bytes.
// Handlers see a body read error once the cap is exceeded.
func InputValidation(maxBody int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > MaxPathLength {
				respond.JSON(w, http.StatusRequestURITooLong, respond.ErrorBody{Error: "URI too long"})
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBody)
			}
			next.ServeHTTP(w, r)
		})
	}
}
