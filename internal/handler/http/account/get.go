package account

import (
	"net/http"

	"postboard/internal/handler/http/dto"
	"postboard/internal/handler/http/pathutil"
	"postboard/internal/handler/http/respond"
	"postboard/internal/repository"
)

type GetHandler struct{ Store repository.Reader }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	acc, err := h.Store.GetAccount(r.Context(), id)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromAccount(acc))
}
