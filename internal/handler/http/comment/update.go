package comment

import (
	"net/http"

	"postboard/internal/domain/entity"
	"postboard/internal/handler/http/dto"
	"postboard/internal/handler/http/pathutil"
	"postboard/internal/handler/http/respond"
)

type UpdateHandler struct{ Svc Mutator }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}

	var req struct {
		Text *string `json:"text"`
	}
	if err := respond.Decode(r, &req); err != nil {
		respond.Err(w, r, err)
		return
	}

	c, err := h.Svc.UpdateComment(r.Context(), id, entity.CommentPatch{Text: req.Text})
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromComment(c))
}
