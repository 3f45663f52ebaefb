package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/domain/entity"
	"postboard/internal/handler/http/pathutil"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: fmt.Errorf("post %q: %w", "9", entity.ErrNotFound), want: http.StatusNotFound},
		{name: "conflict", err: fmt.Errorf("email: %w", entity.ErrConflict), want: http.StatusConflict},
		{name: "validation", err: fmt.Errorf("create: %w", &entity.ValidationError{Field: "post", Message: "x"}), want: http.StatusBadRequest},
		{name: "bad path id", err: pathutil.ErrInvalidID, want: http.StatusBadRequest},
		{name: "invariant", err: entity.ErrInvariantViolation, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestErr_validationCarriesField(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/comments", nil)

	Err(rr, req, fmt.Errorf("create comment: %w",
		&entity.ValidationError{Field: "post", Message: "must reference a published post"}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "post", body.Field)
	assert.Contains(t, body.Error, "published post")
}

func TestSafeError_hidesInternalDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/1/author", nil)

	SafeError(rr, req, http.StatusInternalServerError, errors.New("account test@test.com vanished"))

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Error)
	assert.NotContains(t, rr.Body.String(), "test@test.com")
}

func TestSafeError_nilIsNoop(t *testing.T) {
	rr := httptest.NewRecorder()
	SafeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusBadRequest, nil)
	assert.Zero(t, rr.Body.Len())
}

func TestSanitizeError(t *testing.T) {
	assert.Equal(t, "", SanitizeError(nil))
	assert.Equal(t, `email "****@test.com": entity already exists`,
		SanitizeError(fmt.Errorf("email %q: %w", "Liu@test.com", entity.ErrConflict)))
}
