package post

import (
	"net/http"

	"postboard/internal/handler/http/dto"
	"postboard/internal/handler/http/pathutil"
	"postboard/internal/handler/http/respond"
	"postboard/internal/repository"
)

type ListHandler struct{ Store repository.Reader }

// ServeHTTP lists posts, optionally filtered by ?query= against title or body.
// Drafts are listed too; only notifications are limited to published posts.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	posts := h.Store.ListPosts(r.Context(), r.URL.Query().Get("query"))
	respond.JSON(w, http.StatusOK, dto.FromPosts(posts))
}

type GetHandler struct{ Store repository.Reader }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	p, err := h.Store.GetPost(r.Context(), id)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromPost(p))
}
