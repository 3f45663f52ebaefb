package respond

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/domain/entity"
)

func TestDecode(t *testing.T) {
	type payload struct {
		Title *string `json:"title"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "ok", body: `{"title":"x"}`},
		{name: "empty", body: ``, wantErr: "is required"},
		{name: "unknown field", body: `{"titel":"x"}`, wantErr: "invalid JSON"},
		{name: "trailing object", body: `{"title":"x"}{"title":"y"}`, wantErr: "single JSON object"},
		{name: "wrong type", body: `{"title":1}`, wantErr: "invalid JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(tt.body))
			var p payload
			err := Decode(req, &p)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "x", *p.Title)
				return
			}
			assert.ErrorIs(t, err, entity.ErrValidation)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDecode_tooLarge(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"title":"0123456789"}`))
	req.Body = http.MaxBytesReader(rr, req.Body, 4)

	var v map[string]any
	err := Decode(req, &v)
	assert.ErrorContains(t, err, "too large")
}
