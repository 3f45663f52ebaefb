package respond

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"postboard/internal/domain/entity"
)

// Decode reads a single JSON object from the request body into v.
// Unknown fields, trailing data and oversized bodies are validation errors.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return &entity.ValidationError{Field: "body", Message: "too large"}
		case errors.Is(err, io.EOF):
			return &entity.ValidationError{Field: "body", Message: "is required"}
		default:
			return &entity.ValidationError{Field: "body", Message: "invalid JSON: " + err.Error()}
		}
	}
	if dec.More() {
		return &entity.ValidationError{Field: "body", Message: "must contain a single JSON object"}
	}
	return nil
}
