package memory

import (
	"context"
	"fmt"

	"postboard/internal/domain/entity"
)

// ListAccounts returns all accounts, or those whose name contains query ignoring case.
func (s *Store) ListAccounts(ctx context.Context, query string) []entity.Account {
	defer s.begin(ctx, "list_accounts")(nil)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var keep func(entity.Account) bool
	if query != "" {
		keep = func(a entity.Account) bool { return containsFold(a.Name, query) }
	}
	out := s.accounts.filter(keep)
	for i := range out {
		out[i] = out[i].Clone()
	}
	return out
}

// GetAccount returns the account with the given id.
func (s *Store) GetAccount(ctx context.Context, id string) (acc entity.Account, err error) {
	defer s.begin(ctx, "get_account")(&err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts.get(id)
	if !ok {
		return entity.Account{}, fmt.Errorf("account %q: %w", id, entity.ErrNotFound)
	}
	return a.Clone(), nil
}

// CreateAccount inserts a new account with a fresh id.
// Returns ErrConflict if the email is already taken.
func (s *Store) CreateAccount(ctx context.Context, in entity.NewAccount) (acc entity.Account, err error) {
	defer s.begin(ctx, "create_account")(&err)

	if err := in.Validate(); err != nil {
		return entity.Account{}, fmt.Errorf("create account: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emails[in.Email]; taken {
		return entity.Account{}, fmt.Errorf("email %q: %w", in.Email, entity.ErrConflict)
	}

	acc = entity.Account{
		ID:    s.nextID(),
		Name:  in.Name,
		Email: in.Email,
		Age:   in.Age,
	}.Clone()
	s.accounts.put(acc.ID, acc)
	s.emails[acc.Email] = acc.ID
	s.syncGauges()

	return acc.Clone(), nil
}

// UpdateAccount applies the present patch fields.
// The email uniqueness check runs before anything is written.
func (s *Store) UpdateAccount(ctx context.Context, id string, patch entity.AccountPatch) (acc entity.Account, err error) {
	defer s.begin(ctx, "update_account")(&err)

	if err := patch.Validate(); err != nil {
		return entity.Account{}, fmt.Errorf("update account: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts.get(id)
	if !ok {
		return entity.Account{}, fmt.Errorf("account %q: %w", id, entity.ErrNotFound)
	}
	if patch.Email != nil {
		if owner, taken := s.emails[*patch.Email]; taken && owner != id {
			return entity.Account{}, fmt.Errorf("email %q: %w", *patch.Email, entity.ErrConflict)
		}
	}

	acc = acc.Clone()
	oldEmail := acc.Email
	patch.Apply(&acc)
	if acc.Email != oldEmail {
		delete(s.emails, oldEmail)
		s.emails[acc.Email] = id
	}
	s.accounts.put(id, acc)

	return acc.Clone(), nil
}

// DeleteAccount removes the account together with its posts, the comments on
// those posts and the comments it wrote, in that order.
func (s *Store) DeleteAccount(ctx context.Context, id string) (removal entity.AccountRemoval, err error) {
	defer s.begin(ctx, "delete_account")(&err)

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts.get(id)
	if !ok {
		return entity.AccountRemoval{}, fmt.Errorf("account %q: %w", id, entity.ErrNotFound)
	}

	posts := s.posts.removeWhere(func(p entity.Post) bool { return p.AuthorID == id })
	removedPosts := make(map[string]struct{}, len(posts))
	for _, p := range posts {
		removedPosts[p.ID] = struct{}{}
	}
	comments := s.comments.removeWhere(func(c entity.Comment) bool {
		_, onRemovedPost := removedPosts[c.PostID]
		return onRemovedPost
	})
	comments = append(comments, s.comments.removeWhere(func(c entity.Comment) bool {
		return c.AuthorID == id
	})...)

	s.accounts.remove(id)
	delete(s.emails, acc.Email)
	s.syncGauges()

	return entity.AccountRemoval{
		Account:  acc.Clone(),
		Posts:    posts,
		Comments: comments,
	}, nil
}
