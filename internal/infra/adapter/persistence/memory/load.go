package memory

import (
	"fmt"

	"postboard/internal/domain/entity"
)

// Load inserts pre-built entities with their own ids, typically seed data at startup.
// It checks id uniqueness, email uniqueness and every reference before inserting anything,
// so a rejected dataset leaves the store untouched. Comments on unpublished posts are
// accepted: the published-post rule applies when a comment is created, not afterwards.
func (s *Store) Load(accounts []entity.Account, posts []entity.Post, comments []entity.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make(map[string]struct{})
	claim := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("load %s: %w", kind, &entity.ValidationError{Field: "id", Message: "is required"})
		}
		if _, dup := ids[id]; dup || s.accounts.has(id) || s.posts.has(id) || s.comments.has(id) {
			return fmt.Errorf("load %s %q: id: %w", kind, id, entity.ErrConflict)
		}
		ids[id] = struct{}{}
		return nil
	}

	accountIDs := make(map[string]struct{}, len(accounts))
	emails := make(map[string]struct{}, len(accounts))
	for _, a := range accounts {
		if err := claim("account", a.ID); err != nil {
			return err
		}
		if err := (entity.NewAccount{Name: a.Name, Email: a.Email, Age: a.Age}).Validate(); err != nil {
			return fmt.Errorf("load account %q: %w", a.ID, err)
		}
		if _, taken := s.emails[a.Email]; taken {
			return fmt.Errorf("load account %q: email %q: %w", a.ID, a.Email, entity.ErrConflict)
		}
		if _, taken := emails[a.Email]; taken {
			return fmt.Errorf("load account %q: email %q: %w", a.ID, a.Email, entity.ErrConflict)
		}
		emails[a.Email] = struct{}{}
		accountIDs[a.ID] = struct{}{}
	}
	accountExists := func(id string) bool {
		_, ok := accountIDs[id]
		return ok || s.accounts.has(id)
	}

	postIDs := make(map[string]struct{}, len(posts))
	for _, p := range posts {
		if err := claim("post", p.ID); err != nil {
			return err
		}
		if !accountExists(p.AuthorID) {
			return fmt.Errorf("load post %q: author %q: %w", p.ID, p.AuthorID, entity.ErrNotFound)
		}
		postIDs[p.ID] = struct{}{}
	}

	for _, c := range comments {
		if err := claim("comment", c.ID); err != nil {
			return err
		}
		if !accountExists(c.AuthorID) {
			return fmt.Errorf("load comment %q: author %q: %w", c.ID, c.AuthorID, entity.ErrNotFound)
		}
		if _, ok := postIDs[c.PostID]; !ok && !s.posts.has(c.PostID) {
			return fmt.Errorf("load comment %q: post %q: %w", c.ID, c.PostID, entity.ErrNotFound)
		}
	}

	for _, a := range accounts {
		s.accounts.put(a.ID, a.Clone())
		s.emails[a.Email] = a.ID
	}
	for _, p := range posts {
		s.posts.put(p.ID, p)
	}
	for _, c := range comments {
		s.comments.put(c.ID, c)
	}
	s.syncGauges()

	return nil
}
