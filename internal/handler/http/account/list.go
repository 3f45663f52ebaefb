package account

import (
	"net/http"

	"postboard/internal/handler/http/dto"
	"postboard/internal/handler/http/respond"
	"postboard/internal/repository"
)

type ListHandler struct{ Store repository.Reader }

// ServeHTTP lists accounts, optionally filtered by ?query= against the name.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	accounts := h.Store.ListAccounts(r.Context(), r.URL.Query().Get("query"))
	respond.JSON(w, http.StatusOK, dto.FromAccounts(accounts))
}
