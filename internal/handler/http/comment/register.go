// Package comment provides HTTP handlers for comment endpoints.
package comment

import (
	"context"
	"net/http"

	"postboard/internal/domain/entity"
	"postboard/internal/repository"
)

// Mutator performs comment mutations. *notify.Notifier implements it.
type Mutator interface {
	CreateComment(ctx context.Context, in entity.NewComment) (entity.Comment, error)
	UpdateComment(ctx context.Context, id string, patch entity.CommentPatch) (entity.Comment, error)
	DeleteComment(ctx context.Context, id string) (entity.Comment, error)
}

// Relations answers comment relationship queries. *relation.Resolver implements it.
type Relations interface {
	CommentWithAuthor(ctx context.Context, commentID string) (entity.Comment, entity.Account, error)
	CommentWithPost(ctx context.Context, commentID string) (entity.Comment, entity.Post, error)
}

// Register mounts the comment routes on mux.
func Register(mux *http.ServeMux, store repository.Reader, svc Mutator, rel Relations) {
	mux.Handle("GET    /comments", ListHandler{Store: store})
	mux.Handle("GET    /comments/{id}", GetHandler{Store: store})
	mux.Handle("POST   /comments", CreateHandler{Svc: svc})
	mux.Handle("PATCH  /comments/{id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /comments/{id}", DeleteHandler{Svc: svc})

	mux.Handle("GET    /comments/{id}/author", AuthorHandler{Rel: rel})
	mux.Handle("GET    /comments/{id}/post", PostHandler{Rel: rel})
}
