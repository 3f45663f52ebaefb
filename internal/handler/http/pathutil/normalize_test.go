package pathutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		"/accounts":                        "/accounts",
		"/accounts/1":                      "/accounts/{id}",
		"/accounts/1/":                     "/accounts/{id}",
		"/accounts/1?query=ch":             "/accounts/{id}",
		"/accounts/6f1c0d6e/posts":         "/accounts/{id}/posts",
		"/posts/13/author":                 "/posts/{id}/author",
		"/posts/13/comments":               "/posts/{id}/comments",
		"/comments/101/post":               "/comments/{id}/post",
		"/subscriptions/posts":             "/subscriptions/posts",
		"/subscriptions/posts/13/comments": "/subscriptions/posts/{id}/comments",
		"/health":                          "/health",
		"/wp-admin/install.php":            "other",
		"/posts/13/unknown":                "other",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizePath(in), "path %q", in)
	}
}

func TestExpectedCardinality(t *testing.T) {
	assert.Equal(t, len(pathPatterns)+len(staticPaths)+1, ExpectedCardinality())
}

func TestID_Validation(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "numeric", id: "13"},
		{name: "uuid", id: "0b6c5a4e-7f0e-4a0b-9a61-1f2e3d4c5b6a"},
		{name: "too long", id: strings.Repeat("x", MaxIDLength+1), wantErr: true},
		{name: "control character", id: "a\x00b", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/posts/x", nil)
			r.SetPathValue("id", tt.id)

			got, err := ID(r)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.id, got)
		})
	}
}

func TestID_missingWildcard(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/posts", nil)
	_, err := ID(r)
	assert.ErrorIs(t, err, ErrInvalidID)
}
