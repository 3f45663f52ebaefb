package account

import (
	"net/http"

	"postboard/internal/handler/http/dto"
	"postboard/internal/handler/http/pathutil"
	"postboard/internal/handler/http/respond"
)

type DeleteHandler struct{ Svc Mutator }

// ServeHTTP deletes the account and reports every post and comment removed with it.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}

	removal, err := h.Svc.DeleteAccount(r.Context(), id)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromAccountRemoval(removal))
}
