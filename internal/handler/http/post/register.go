// Package post provides HTTP handlers for post endpoints.
package post

import (
	"context"
	"net/http"

	"postboard/internal/domain/entity"
	"postboard/internal/repository"
)

// Mutator performs post mutations. *notify.Notifier implements it.
type Mutator interface {
	CreatePost(ctx context.Context, in entity.NewPost) (entity.Post, error)
	UpdatePost(ctx context.Context, id string, patch entity.PostPatch) (entity.PostChange, error)
	DeletePost(ctx context.Context, id string) (entity.PostRemoval, error)
}

// Relations answers post relationship queries. *relation.Resolver implements it.
type Relations interface {
	PostWithAuthor(ctx context.Context, postID string) (entity.Post, entity.Account, error)
	CommentsByPost(ctx context.Context, postID string) []entity.Comment
}

// Register mounts the post routes on mux.
func Register(mux *http.ServeMux, store repository.Reader, svc Mutator, rel Relations) {
	mux.Handle("GET    /posts", ListHandler{Store: store})
	mux.Handle("GET    /posts/{id}", GetHandler{Store: store})
	mux.Handle("POST   /posts", CreateHandler{Svc: svc})
	mux.Handle("PATCH  /posts/{id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /posts/{id}", DeleteHandler{Svc: svc})

	mux.Handle("GET    /posts/{id}/author", AuthorHandler{Rel: rel})
	mux.Handle("GET    /posts/{id}/comments", CommentsHandler{Store: store, Rel: rel})
}
