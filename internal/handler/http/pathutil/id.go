// Package pathutil extracts and normalizes URL path components.
package pathutil

import (
	"errors"
	"net/http"
	"unicode"
)

// MaxIDLength bounds path identifiers. Generated ids are 36-character UUIDs.
const MaxIDLength = 128

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ID returns the {id} wildcard of the matched route.
// Ids are opaque, so only emptiness, length and control characters are checked.
//
// Example:
//
//	mux.Handle("DELETE /posts/{id}", h)
//	id, err := pathutil.ID(r) // "13" for DELETE /posts/13
func ID(r *http.Request) (string, error) {
	id := r.PathValue("id")
	if id == "" || len(id) > MaxIDLength {
		return "", ErrInvalidID
	}
	for _, c := range id {
		if unicode.IsControl(c) || c == '/' {
			return "", ErrInvalidID
		}
	}
	return id, nil
}
