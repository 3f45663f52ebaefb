package memory

import (
	"context"
	"fmt"

	"postboard/internal/domain/entity"
)

// ListPosts returns all posts, or those whose title or body contains query ignoring case.
func (s *Store) ListPosts(ctx context.Context, query string) []entity.Post {
	defer s.begin(ctx, "list_posts")(nil)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if query == "" {
		return s.posts.filter(nil)
	}
	return s.posts.filter(func(p entity.Post) bool {
		return containsFold(p.Title, query) || containsFold(p.Body, query)
	})
}

// GetPost returns the post with the given id.
func (s *Store) GetPost(ctx context.Context, id string) (post entity.Post, err error) {
	defer s.begin(ctx, "get_post")(&err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts.get(id)
	if !ok {
		return entity.Post{}, fmt.Errorf("post %q: %w", id, entity.ErrNotFound)
	}
	return post, nil
}

// PostWithAuthor returns the post and its author read under one lock.
// A missing author is reported as ErrInvariantViolation.
func (s *Store) PostWithAuthor(ctx context.Context, id string) (post entity.Post, author entity.Account, err error) {
	defer s.begin(ctx, "get_post_with_author")(&err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts.get(id)
	if !ok {
		return entity.Post{}, entity.Account{}, fmt.Errorf("post %q: %w", id, entity.ErrNotFound)
	}
	a, ok := s.accounts.get(post.AuthorID)
	if !ok {
		return entity.Post{}, entity.Account{}, fmt.Errorf("post %q author %q: %w", id, post.AuthorID, entity.ErrInvariantViolation)
	}
	return post, a.Clone(), nil
}

// CreatePost inserts a new post.
// Returns ErrNotFound if the author does not exist.
func (s *Store) CreatePost(ctx context.Context, in entity.NewPost) (post entity.Post, err error) {
	defer s.begin(ctx, "create_post")(&err)

	if err := in.Validate(); err != nil {
		return entity.Post{}, fmt.Errorf("create post: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.accounts.has(in.AuthorID) {
		return entity.Post{}, fmt.Errorf("author %q: %w", in.AuthorID, entity.ErrNotFound)
	}

	post = entity.Post{
		ID:        s.nextID(),
		Title:     in.Title,
		Body:      in.Body,
		Published: in.Published,
		AuthorID:  in.AuthorID,
	}
	s.posts.put(post.ID, post)
	s.syncGauges()

	return post, nil
}

// UpdatePost applies the present patch fields and returns both snapshots.
func (s *Store) UpdatePost(ctx context.Context, id string, patch entity.PostPatch) (change entity.PostChange, err error) {
	defer s.begin(ctx, "update_post")(&err)

	if err := patch.Validate(); err != nil {
		return entity.PostChange{}, fmt.Errorf("update post: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before, ok := s.posts.get(id)
	if !ok {
		return entity.PostChange{}, fmt.Errorf("post %q: %w", id, entity.ErrNotFound)
	}

	after := before
	patch.Apply(&after)
	s.posts.put(id, after)

	return entity.PostChange{Before: before, After: after}, nil
}

// DeletePost removes the post and every comment on it.
func (s *Store) DeletePost(ctx context.Context, id string) (removal entity.PostRemoval, err error) {
	defer s.begin(ctx, "delete_post")(&err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.posts.has(id) {
		return entity.PostRemoval{}, fmt.Errorf("post %q: %w", id, entity.ErrNotFound)
	}

	comments := s.comments.removeWhere(func(c entity.Comment) bool { return c.PostID == id })
	post, _ := s.posts.remove(id)
	s.syncGauges()

	return entity.PostRemoval{Post: post, Comments: comments}, nil
}
