package memory

import (
	"context"
	"fmt"

	"postboard/internal/domain/entity"
)

// ListComments returns every comment.
func (s *Store) ListComments(ctx context.Context) []entity.Comment {
	defer s.begin(ctx, "list_comments")(nil)

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.comments.filter(nil)
}

// GetComment returns the comment with the given id.
func (s *Store) GetComment(ctx context.Context, id string) (c entity.Comment, err error) {
	defer s.begin(ctx, "get_comment")(&err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments.get(id)
	if !ok {
		return entity.Comment{}, fmt.Errorf("comment %q: %w", id, entity.ErrNotFound)
	}
	return c, nil
}

// CommentWithAuthor returns the comment and its author read under one lock.
// A missing author is reported as ErrInvariantViolation.
func (s *Store) CommentWithAuthor(ctx context.Context, id string) (c entity.Comment, author entity.Account, err error) {
	defer s.begin(ctx, "get_comment_with_author")(&err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments.get(id)
	if !ok {
		return entity.Comment{}, entity.Account{}, fmt.Errorf("comment %q: %w", id, entity.ErrNotFound)
	}
	a, ok := s.accounts.get(c.AuthorID)
	if !ok {
		return entity.Comment{}, entity.Account{}, fmt.Errorf("comment %q author %q: %w", id, c.AuthorID, entity.ErrInvariantViolation)
	}
	return c, a.Clone(), nil
}

// CommentWithPost returns the comment and the post it belongs to, read under one lock.
func (s *Store) CommentWithPost(ctx context.Context, id string) (c entity.Comment, post entity.Post, err error) {
	defer s.begin(ctx, "get_comment_with_post")(&err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments.get(id)
	if !ok {
		return entity.Comment{}, entity.Post{}, fmt.Errorf("comment %q: %w", id, entity.ErrNotFound)
	}
	post, ok = s.posts.get(c.PostID)
	if !ok {
		return entity.Comment{}, entity.Post{}, fmt.Errorf("comment %q post %q: %w", id, c.PostID, entity.ErrInvariantViolation)
	}
	return c, post, nil
}

// CreateComment inserts a new comment.
// Both the author and a published post must exist, otherwise ErrValidation is returned.
func (s *Store) CreateComment(ctx context.Context, in entity.NewComment) (c entity.Comment, err error) {
	defer s.begin(ctx, "create_comment")(&err)

	if err := in.Validate(); err != nil {
		return entity.Comment{}, fmt.Errorf("create comment: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.accounts.has(in.AuthorID) {
		return entity.Comment{}, fmt.Errorf("create comment: %w",
			&entity.ValidationError{Field: "author", Message: "must reference an existing account"})
	}
	if post, ok := s.posts.get(in.PostID); !ok || !post.Published {
		return entity.Comment{}, fmt.Errorf("create comment: %w",
			&entity.ValidationError{Field: "post", Message: "must reference a published post"})
	}

	c = entity.Comment{
		ID:       s.nextID(),
		Text:     in.Text,
		AuthorID: in.AuthorID,
		PostID:   in.PostID,
	}
	s.comments.put(c.ID, c)
	s.syncGauges()

	return c, nil
}

// UpdateComment applies the present patch fields.
func (s *Store) UpdateComment(ctx context.Context, id string, patch entity.CommentPatch) (c entity.Comment, err error) {
	defer s.begin(ctx, "update_comment")(&err)

	if err := patch.Validate(); err != nil {
		return entity.Comment{}, fmt.Errorf("update comment: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments.get(id)
	if !ok {
		return entity.Comment{}, fmt.Errorf("comment %q: %w", id, entity.ErrNotFound)
	}
	patch.Apply(&c)
	s.comments.put(id, c)

	return c, nil
}

// DeleteComment removes the comment and returns its last snapshot.
func (s *Store) DeleteComment(ctx context.Context, id string) (c entity.Comment, err error) {
	defer s.begin(ctx, "delete_comment")(&err)

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments.remove(id)
	if !ok {
		return entity.Comment{}, fmt.Errorf("comment %q: %w", id, entity.ErrNotFound)
	}
	s.syncGauges()

	return c, nil
}
