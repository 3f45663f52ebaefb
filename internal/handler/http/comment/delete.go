package comment

import (
	"net/http"

	"postboard/internal/handler/http/dto"
	"postboard/internal/handler/http/pathutil"
	"postboard/internal/handler/http/respond"
)

type DeleteHandler struct{ Svc Mutator }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}

	c, err := h.Svc.DeleteComment(r.Context(), id)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromComment(c))
}
