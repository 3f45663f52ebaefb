package post

import (
	"net/http"

	"postboard/internal/domain/entity"
	"postboard/internal/handler/http/dto"
	"postboard/internal/handler/http/pathutil"
	"postboard/internal/handler/http/respond"
	"postboard/internal/repository"
)

// AuthorHandler returns the account that wrote a post.
type AuthorHandler struct {
	Rel Relations
}

func (h AuthorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	_, author, err := h.Rel.PostWithAuthor(r.Context(), id)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromAccount(author))
}

// CommentsHandler lists the comments on a post.
type CommentsHandler struct {
	Store repository.Reader
	Rel   Relations
}

func (h CommentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, ok := existingPost(w, r, h.Store)
	if !ok {
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromComments(h.Rel.CommentsByPost(r.Context(), p.ID)))
}

func existingPost(w http.ResponseWriter, r *http.Request, store repository.Reader) (entity.Post, bool) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Err(w, r, err)
		return entity.Post{}, false
	}
	p, err := store.GetPost(r.Context(), id)
	if err != nil {
		respond.Err(w, r, err)
		return entity.Post{}, false
	}
	return p, true
}
