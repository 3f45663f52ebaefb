// Package relation derives related entities from the current store contents.
// Every call recomputes from the live collections; nothing is cached.
package relation

import (
	"context"
	"errors"
	"fmt"

	"postboard/internal/domain/entity"
	"postboard/internal/repository"
)

// Resolver answers relationship queries over a store.
type Resolver struct {
	Store repository.Reader
}

// PostsByAuthor returns the posts written by accountID.
func (r *Resolver) PostsByAuthor(ctx context.Context, accountID string) []entity.Post {
	var out []entity.Post
	for _, p := range r.Store.ListPosts(ctx, "") {
		if p.AuthorID == accountID {
			out = append(out, p)
		}
	}
	return out
}

// CommentsByAuthor returns the comments written by accountID.
func (r *Resolver) CommentsByAuthor(ctx context.Context, accountID string) []entity.Comment {
	return r.comments(ctx, func(c entity.Comment) bool { return c.AuthorID == accountID })
}

// CommentsByPost returns the comments on postID.
func (r *Resolver) CommentsByPost(ctx context.Context, postID string) []entity.Comment {
	return r.comments(ctx, func(c entity.Comment) bool { return c.PostID == postID })
}

// AuthorOfPost returns the account that wrote post.
// It panics if the account is missing, since the store never allows that.
func (r *Resolver) AuthorOfPost(ctx context.Context, post entity.Post) entity.Account {
	acc, err := r.Store.GetAccount(ctx, post.AuthorID)
	mustResolve(err, "post", post.ID, "author", post.AuthorID)
	return acc
}

// AuthorOfComment returns the account that wrote c.
// It panics if the account is missing.
func (r *Resolver) AuthorOfComment(ctx context.Context, c entity.Comment) entity.Account {
	acc, err := r.Store.GetAccount(ctx, c.AuthorID)
	mustResolve(err, "comment", c.ID, "author", c.AuthorID)
	return acc
}

// PostOfComment returns the post c belongs to.
// It panics if the post is missing.
func (r *Resolver) PostOfComment(ctx context.Context, c entity.Comment) entity.Post {
	post, err := r.Store.GetPost(ctx, c.PostID)
	mustResolve(err, "comment", c.ID, "post", c.PostID)
	return post
}

// PostWithAuthor looks up a post and its author together.
// An unknown post returns ErrNotFound; a missing author panics.
func (r *Resolver) PostWithAuthor(ctx context.Context, postID string) (entity.Post, entity.Account, error) {
	post, acc, err := r.Store.PostWithAuthor(ctx, postID)
	if err != nil {
		mustNotViolate(err)
		return entity.Post{}, entity.Account{}, err
	}
	return post, acc, nil
}

// CommentWithAuthor looks up a comment and its author together.
func (r *Resolver) CommentWithAuthor(ctx context.Context, commentID string) (entity.Comment, entity.Account, error) {
	c, acc, err := r.Store.CommentWithAuthor(ctx, commentID)
	if err != nil {
		mustNotViolate(err)
		return entity.Comment{}, entity.Account{}, err
	}
	return c, acc, nil
}

// CommentWithPost looks up a comment and its post together.
func (r *Resolver) CommentWithPost(ctx context.Context, commentID string) (entity.Comment, entity.Post, error) {
	c, post, err := r.Store.CommentWithPost(ctx, commentID)
	if err != nil {
		mustNotViolate(err)
		return entity.Comment{}, entity.Post{}, err
	}
	return c, post, nil
}

func (r *Resolver) comments(ctx context.Context, keep func(entity.Comment) bool) []entity.Comment {
	var out []entity.Comment
	for _, c := range r.Store.ListComments(ctx) {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// mustResolve turns a dangling reference into a panic carrying ErrInvariantViolation.
// Any other lookup error is a defect too, so it panics the same way.
func mustResolve(err error, kind, id, ref, refID string) {
	if err == nil {
		return
	}
	if errors.Is(err, entity.ErrNotFound) {
		panic(fmt.Errorf("%s %q references missing %s %q: %w", kind, id, ref, refID, entity.ErrInvariantViolation))
	}
	panic(fmt.Errorf("resolve %s of %s %q: %w: %w", ref, kind, id, entity.ErrInvariantViolation, err))
}

func mustNotViolate(err error) {
	if errors.Is(err, entity.ErrInvariantViolation) {
		panic(err)
	}
}
