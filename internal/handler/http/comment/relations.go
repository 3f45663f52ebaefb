package comment

import (
	"net/http"

	"postboard/internal/handler/http/dto"
	"postboard/internal/handler/http/pathutil"
	"postboard/internal/handler/http/respond"
)

// AuthorHandler returns the account that wrote a comment.
type AuthorHandler struct {
	Rel Relations
}

func (h AuthorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	_, author, err := h.Rel.CommentWithAuthor(r.Context(), id)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromAccount(author))
}

// PostHandler returns the post a comment belongs to.
type PostHandler struct {
	Rel Relations
}

func (h PostHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	_, post, err := h.Rel.CommentWithPost(r.Context(), id)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromPost(post))
}
