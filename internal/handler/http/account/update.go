package account

import (
	"net/http"

	"postboard/internal/domain/entity"
	"postboard/internal/handler/http/dto"
	"postboard/internal/handler/http/pathutil"
	"postboard/internal/handler/http/respond"
)

type UpdateHandler struct{ Svc Mutator }

// ServeHTTP applies the fields present in the body. Absent fields are left as they are.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}

	var req struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
		Age   *int    `json:"age"`
	}
	if err := respond.Decode(r, &req); err != nil {
		respond.Err(w, r, err)
		return
	}

	acc, err := h.Svc.UpdateAccount(r.Context(), id, entity.AccountPatch{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromAccount(acc))
}
