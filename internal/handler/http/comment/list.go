package comment

import (
	"net/http"

	"postboard/internal/handler/http/dto"
	"postboard/internal/handler/http/pathutil"
	"postboard/internal/handler/http/respond"
	"postboard/internal/repository"
)

type ListHandler struct{ Store repository.Reader }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, dto.FromComments(h.Store.ListComments(r.Context())))
}

type GetHandler struct{ Store repository.Reader }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	c, err := h.Store.GetComment(r.Context(), id)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromComment(c))
}
