// Package account provides HTTP handlers for account endpoints.
package account

import (
	"context"
	"net/http"

	"postboard/internal/domain/entity"
	"postboard/internal/repository"
)

// Mutator performs account mutations. *notify.Notifier implements it.
type Mutator interface {
	CreateAccount(ctx context.Context, in entity.NewAccount) (entity.Account, error)
	UpdateAccount(ctx context.Context, id string, patch entity.AccountPatch) (entity.Account, error)
	DeleteAccount(ctx context.Context, id string) (entity.AccountRemoval, error)
}

// Relations answers account relationship queries. *relation.Resolver implements it.
type Relations interface {
	PostsByAuthor(ctx context.Context, accountID string) []entity.Post
	CommentsByAuthor(ctx context.Context, accountID string) []entity.Comment
}

// Register mounts the account routes on mux.
func Register(mux *http.ServeMux, store repository.Reader, svc Mutator, rel Relations) {
	mux.Handle("GET    /accounts", ListHandler{Store: store})
	mux.Handle("GET    /accounts/{id}", GetHandler{Store: store})
	mux.Handle("POST   /accounts", CreateHandler{Svc: svc})
	mux.Handle("PATCH  /accounts/{id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /accounts/{id}", DeleteHandler{Svc: svc})

	mux.Handle("GET    /accounts/{id}/posts", PostsHandler{Store: store, Rel: rel})
	mux.Handle("GET    /accounts/{id}/comments", CommentsHandler{Store: store, Rel: rel})
}
