package comment

import (
	"net/http"

	"postboard/internal/domain/entity"
	"postboard/internal/handler/http/dto"
	"postboard/internal/handler/http/respond"
)

type CreateHandler struct{ Svc Mutator }

// ServeHTTP creates a comment. The author must exist and the post must exist
// and be published, otherwise the request answers 400 naming the field.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text   string `json:"text"`
		Author string `json:"author"`
		Post   string `json:"post"`
	}
	if err := respond.Decode(r, &req); err != nil {
		respond.Err(w, r, err)
		return
	}

	c, err := h.Svc.CreateComment(r.Context(), entity.NewComment{
		Text:     req.Text,
		AuthorID: req.Author,
		PostID:   req.Post,
	})
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, dto.FromComment(c))
}
