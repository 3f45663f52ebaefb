package post

import (
	"net/http"

	"postboard/internal/domain/entity"
	"postboard/internal/handler/http/dto"
	"postboard/internal/handler/http/respond"
)

type CreateHandler struct{ Svc Mutator }

// ServeHTTP creates a post. An unknown author answers 404.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title     string `json:"title"`
		Body      string `json:"body"`
		Published bool   `json:"published"`
		Author    string `json:"author"`
	}
	if err := respond.Decode(r, &req); err != nil {
		respond.Err(w, r, err)
		return
	}

	p, err := h.Svc.CreatePost(r.Context(), entity.NewPost{
		Title:     req.Title,
		Body:      req.Body,
		Published: req.Published,
		AuthorID:  req.Author,
	})
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, dto.FromPost(p))
}
