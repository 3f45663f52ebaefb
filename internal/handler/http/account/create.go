package account

import (
	"net/http"

	"postboard/internal/domain/entity"
	"postboard/internal/handler/http/dto"
	"postboard/internal/handler/http/respond"
)

type CreateHandler struct{ Svc Mutator }

// ServeHTTP creates an account. A taken email answers 409.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Age   *int   `json:"age"`
	}
	if err := respond.Decode(r, &req); err != nil {
		respond.Err(w, r, err)
		return
	}

	acc, err := h.Svc.CreateAccount(r.Context(), entity.NewAccount{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, dto.FromAccount(acc))
}
