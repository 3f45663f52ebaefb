package repository

import (
	"context"

	"postboard/internal/domain/entity"
)

// Reader is the read surface of the entity store.
// Every call returns snapshots computed from the current collections.
type Reader interface {
	ListAccounts(ctx context.Context, query string) []entity.Account
	ListPosts(ctx context.Context, query string) []entity.Post
	ListComments(ctx context.Context) []entity.Comment
	GetAccount(ctx context.Context, id string) (entity.Account, error)
	GetPost(ctx context.Context, id string) (entity.Post, error)
	GetComment(ctx context.Context, id string) (entity.Comment, error)

	// The paired reads below observe both entities in one snapshot.
	// A missing first entity is ErrNotFound; a missing reference is ErrInvariantViolation.
	PostWithAuthor(ctx context.Context, postID string) (entity.Post, entity.Account, error)
	CommentWithAuthor(ctx context.Context, commentID string) (entity.Comment, entity.Account, error)
	CommentWithPost(ctx context.Context, commentID string) (entity.Comment, entity.Post, error)
}

// Store owns the account, post and comment collections.
// Mutations are atomic: a failed call leaves every collection unchanged.
type Store interface {
	Reader

	CreateAccount(ctx context.Context, in entity.NewAccount) (entity.Account, error)
	UpdateAccount(ctx context.Context, id string, patch entity.AccountPatch) (entity.Account, error)
	DeleteAccount(ctx context.Context, id string) (entity.AccountRemoval, error)

	CreatePost(ctx context.Context, in entity.NewPost) (entity.Post, error)
	UpdatePost(ctx context.Context, id string, patch entity.PostPatch) (entity.PostChange, error)
	DeletePost(ctx context.Context, id string) (entity.PostRemoval, error)

	CreateComment(ctx context.Context, in entity.NewComment) (entity.Comment, error)
	UpdateComment(ctx context.Context, id string, patch entity.CommentPatch) (entity.Comment, error)
	DeleteComment(ctx context.Context, id string) (entity.Comment, error)
}
