package account

import (
	"net/http"

	"postboard/internal/handler/http/dto"
	"postboard/internal/handler/http/pathutil"
	"postboard/internal/handler/http/respond"
	"postboard/internal/repository"
)

// PostsHandler lists the posts written by an account.
type PostsHandler struct {
	Store repository.Reader
	Rel   Relations
}

func (h PostsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := existingAccount(w, r, h.Store)
	if !ok {
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromPosts(h.Rel.PostsByAuthor(r.Context(), id)))
}

// CommentsHandler lists the comments written by an account.
type CommentsHandler struct {
	Store repository.Reader
	Rel   Relations
}

func (h CommentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := existingAccount(w, r, h.Store)
	if !ok {
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromComments(h.Rel.CommentsByAuthor(r.Context(), id)))
}

// existingAccount resolves the {id} wildcard, answering 400 or 404 itself on failure.
func existingAccount(w http.ResponseWriter, r *http.Request, store repository.Reader) (string, bool) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Err(w, r, err)
		return "", false
	}
	if _, err := store.GetAccount(r.Context(), id); err != nil {
		respond.Err(w, r, err)
		return "", false
	}
	return id, true
}
