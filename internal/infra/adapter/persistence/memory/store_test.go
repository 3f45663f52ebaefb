package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/domain/entity"
)

func ptr[T any](v T) *T { return &v }

// sequentialIDs yields "id-1", "id-2", ... for deterministic assertions.
func sequentialIDs() Option {
	var n atomic.Int64
	return WithIDGenerator(func() string {
		return fmt.Sprintf("id-%d", n.Add(1))
	})
}

func seeded(t *testing.T) *Store {
	t.Helper()
	s := New(sequentialIDs())
	require.NoError(t, s.Load(
		[]entity.Account{
			{ID: "1", Name: "Charles", Email: "test@test.com", Age: ptr(19)},
			{ID: "2", Name: "Liu", Email: "Liu@test.com", Age: ptr(3)},
			{ID: "3", Name: "Meow", Email: "Cat@test.com"},
		},
		[]entity.Post{
			{ID: "11", Title: "Charles is cool", Body: "<3", Published: true, AuthorID: "1"},
			{ID: "12", Title: "I love Charles", Published: false, AuthorID: "3"},
			{ID: "13", Title: "Bark bark", Body: ":D", Published: true, AuthorID: "1"},
		},
		[]entity.Comment{
			{ID: "101", Text: "wow", AuthorID: "1", PostID: "13"},
			{ID: "102", Text: "I love Charles", AuthorID: "3", PostID: "13"},
			{ID: "103", Text: "awesome", AuthorID: "3", PostID: "12"},
			{ID: "104", Text: "so cool", AuthorID: "2", PostID: "11"},
		},
	))
	return s
}

type snapshot struct {
	Accounts []entity.Account
	Posts    []entity.Post
	Comments []entity.Comment
}

func snap(s *Store) snapshot {
	ctx := context.Background()
	return snapshot{
		Accounts: s.ListAccounts(ctx, ""),
		Posts:    s.ListPosts(ctx, ""),
		Comments: s.ListComments(ctx),
	}
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func accountID(a entity.Account) string { return a.ID }
func postID(p entity.Post) string       { return p.ID }
func commentID(c entity.Comment) string { return c.ID }

/* ───────── lists ───────── */

func TestStore_ListAccounts_filter(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"1", "2", "3"}},
		{query: "char", want: []string{"1"}},
		{query: "CHARLES", want: []string{"1"}},
		{query: "I", want: []string{"2"}},
		{query: "zzz", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(s.ListAccounts(ctx, tt.query), accountID))
		})
	}
}

func TestStore_ListPosts_filterMatchesTitleOrBody(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	assert.Equal(t, []string{"11", "12"}, ids(s.ListPosts(ctx, "charles"), postID))
	assert.Equal(t, []string{"13"}, ids(s.ListPosts(ctx, ":d"), postID))
	assert.Equal(t, []string{"11", "12", "13"}, ids(s.ListPosts(ctx, ""), postID))
}

func TestStore_ListReturnsCopies(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	accounts := s.ListAccounts(ctx, "Charles")
	require.Len(t, accounts, 1)
	*accounts[0].Age = 99
	accounts[0].Name = "mutated"

	acc, err := s.GetAccount(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Charles", acc.Name)
	assert.Equal(t, 19, *acc.Age)
}

/* ───────── accounts ───────── */

func TestStore_CreateAccount(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	acc, err := s.CreateAccount(ctx, entity.NewAccount{Name: "Zed", Email: "zed@test.com"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", acc.ID)
	assert.Nil(t, acc.Age)

	got, err := s.GetAccount(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, acc, got)
}

func TestStore_CreateAccount_conflictLeavesStoreUnchanged(t *testing.T) {
	s := seeded(t)
	before := snap(s)

	_, err := s.CreateAccount(context.Background(), entity.NewAccount{Name: "Copy", Email: "test@test.com"})
	require.ErrorIs(t, err, entity.ErrConflict)

	if diff := cmp.Diff(before, snap(s)); diff != "" {
		t.Errorf("store changed after failed create (-before +after):\n%s", diff)
	}
}

func TestStore_CreateAccount_emailIsCaseSensitive(t *testing.T) {
	s := seeded(t)

	_, err := s.CreateAccount(context.Background(), entity.NewAccount{Name: "Upper", Email: "TEST@test.com"})
	assert.NoError(t, err)
}

func TestStore_CreateAccount_validation(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		in    entity.NewAccount
		field string
	}{
		{name: "blank name", in: entity.NewAccount{Name: " ", Email: "a@b.com"}, field: "name"},
		{name: "bad email", in: entity.NewAccount{Name: "A", Email: "nope"}, field: "email"},
		{name: "negative age", in: entity.NewAccount{Name: "A", Email: "a@b.com", Age: ptr(-1)}, field: "age"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateAccount(ctx, tt.in)
			var verr *entity.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestStore_UpdateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("only present fields are written", func(t *testing.T) {
		s := seeded(t)
		acc, err := s.UpdateAccount(ctx, "1", entity.AccountPatch{Name: ptr("Chuck")})
		require.NoError(t, err)
		assert.Equal(t, "Chuck", acc.Name)
		assert.Equal(t, "test@test.com", acc.Email)
		assert.Equal(t, 19, *acc.Age)
	})

	t.Run("own email is not a conflict", func(t *testing.T) {
		s := seeded(t)
		_, err := s.UpdateAccount(ctx, "1", entity.AccountPatch{Email: ptr("test@test.com")})
		assert.NoError(t, err)
	})

	t.Run("email conflict writes nothing", func(t *testing.T) {
		s := seeded(t)
		before := snap(s)
		_, err := s.UpdateAccount(ctx, "1", entity.AccountPatch{
			Name:  ptr("Chuck"),
			Email: ptr("Liu@test.com"),
		})
		require.ErrorIs(t, err, entity.ErrConflict)
		assert.Empty(t, cmp.Diff(before, snap(s)))
	})

	t.Run("released email can be reused", func(t *testing.T) {
		s := seeded(t)
		_, err := s.UpdateAccount(ctx, "1", entity.AccountPatch{Email: ptr("new@test.com")})
		require.NoError(t, err)
		_, err = s.CreateAccount(ctx, entity.NewAccount{Name: "B", Email: "test@test.com"})
		assert.NoError(t, err)
		_, err = s.CreateAccount(ctx, entity.NewAccount{Name: "C", Email: "new@test.com"})
		assert.ErrorIs(t, err, entity.ErrConflict)
	})

	t.Run("not found", func(t *testing.T) {
		s := seeded(t)
		_, err := s.UpdateAccount(ctx, "nope", entity.AccountPatch{Name: ptr("x")})
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestStore_DeleteAccount_cascade(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	removal, err := s.DeleteAccount(ctx, "1")
	require.NoError(t, err)

	assert.Equal(t, "1", removal.Account.ID)
	assert.Equal(t, []string{"11", "13"}, ids(removal.Posts, postID))
	// Comments on removed posts first, then the account's own comments elsewhere.
	assert.Equal(t, []string{"101", "102", "104"}, ids(removal.Comments, commentID))

	assert.Equal(t, []string{"12"}, ids(s.ListPosts(ctx, ""), postID))
	assert.Equal(t, []string{"103"}, ids(s.ListComments(ctx), commentID))
	for _, c := range s.ListComments(ctx) {
		assert.NotEqual(t, "1", c.AuthorID)
	}

	_, err = s.CreateAccount(ctx, entity.NewAccount{Name: "Again", Email: "test@test.com"})
	assert.NoError(t, err, "email of a deleted account is free again")

	_, err = s.DeleteAccount(ctx, "1")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestStore_DeleteAccount_directCommentsOnForeignPosts(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	removal, err := s.DeleteAccount(ctx, "3")
	require.NoError(t, err)

	assert.Equal(t, []string{"12"}, ids(removal.Posts, postID))
	assert.Equal(t, []string{"103", "102"}, ids(removal.Comments, commentID))
	assert.Equal(t, []string{"101", "104"}, ids(s.ListComments(ctx), commentID))
}

/* ───────── posts ───────── */

func TestStore_CreatePost(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	_, err := s.CreatePost(ctx, entity.NewPost{Title: "x", AuthorID: "ghost"})
	require.ErrorIs(t, err, entity.ErrNotFound)

	_, err = s.CreatePost(ctx, entity.NewPost{Title: "", AuthorID: "1"})
	require.ErrorIs(t, err, entity.ErrValidation)

	post, err := s.CreatePost(ctx, entity.NewPost{Title: "Fresh", Body: "b", Published: true, AuthorID: "2"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", post.ID)
	assert.Equal(t, "2", post.AuthorID)
}

func TestStore_UpdatePost_bodyOnly(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	post, err := s.CreatePost(ctx, entity.NewPost{Title: "Title", Body: "old", Published: true, AuthorID: "1"})
	require.NoError(t, err)

	change, err := s.UpdatePost(ctx, post.ID, entity.PostPatch{Body: ptr("new")})
	require.NoError(t, err)

	assert.Equal(t, post, change.Before)
	want := post
	want.Body = "new"
	assert.Equal(t, want, change.After)
}

func TestStore_DeletePost_cascade(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	removal, err := s.DeletePost(ctx, "13")
	require.NoError(t, err)
	assert.Equal(t, "Bark bark", removal.Post.Title)
	assert.Equal(t, []string{"101", "102"}, ids(removal.Comments, commentID))

	for _, c := range s.ListComments(ctx) {
		assert.NotEqual(t, "13", c.PostID)
	}
	_, err = s.GetPost(ctx, "13")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = s.DeletePost(ctx, "13")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

/* ───────── comments ───────── */

func TestStore_CreateComment_references(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		in    entity.NewComment
		field string
	}{
		{name: "unknown author", in: entity.NewComment{Text: "hi", AuthorID: "ghost", PostID: "11"}, field: "author"},
		{name: "unknown post", in: entity.NewComment{Text: "hi", AuthorID: "1", PostID: "ghost"}, field: "post"},
		{name: "unpublished post", in: entity.NewComment{Text: "hi", AuthorID: "1", PostID: "12"}, field: "post"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seeded(t)
			before := snap(s)

			_, err := s.CreateComment(ctx, tt.in)
			var verr *entity.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.ErrorIs(t, err, entity.ErrValidation)
			assert.Empty(t, cmp.Diff(before, snap(s)))
		})
	}
}

func TestStore_CommentLifecycle(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	c, err := s.CreateComment(ctx, entity.NewComment{Text: "nice", AuthorID: "2", PostID: "13"})
	require.NoError(t, err)

	updated, err := s.UpdateComment(ctx, c.ID, entity.CommentPatch{Text: ptr("very nice")})
	require.NoError(t, err)
	assert.Equal(t, "very nice", updated.Text)
	assert.Equal(t, c.PostID, updated.PostID)

	removed, err := s.DeleteComment(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, removed)

	_, err = s.GetComment(ctx, c.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	_, err = s.UpdateComment(ctx, c.ID, entity.CommentPatch{Text: ptr("x")})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

/* ───────── load ───────── */

func TestStore_Load_rejectsBadSeed(t *testing.T) {
	acc := entity.Account{ID: "a", Name: "A", Email: "a@x.com"}

	tests := []struct {
		name     string
		accounts []entity.Account
		posts    []entity.Post
		comments []entity.Comment
		want     error
	}{
		{
			name:     "duplicate id across kinds",
			accounts: []entity.Account{acc},
			posts:    []entity.Post{{ID: "a", Title: "t", AuthorID: "a"}},
			want:     entity.ErrConflict,
		},
		{
			name:     "duplicate email",
			accounts: []entity.Account{acc, {ID: "b", Name: "B", Email: "a@x.com"}},
			want:     entity.ErrConflict,
		},
		{
			name:     "dangling post author",
			accounts: []entity.Account{acc},
			posts:    []entity.Post{{ID: "p", Title: "t", AuthorID: "zz"}},
			want:     entity.ErrNotFound,
		},
		{
			name:     "dangling comment post",
			accounts: []entity.Account{acc},
			comments: []entity.Comment{{ID: "c", Text: "t", AuthorID: "a", PostID: "zz"}},
			want:     entity.ErrNotFound,
		},
		{
			name:     "invalid email",
			accounts: []entity.Account{{ID: "a", Name: "A", Email: "bad"}},
			want:     entity.ErrValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			err := s.Load(tt.accounts, tt.posts, tt.comments)
			require.ErrorIs(t, err, tt.want)

			a, p, c := s.Counts()
			assert.Zero(t, a+p+c, "rejected seed must not be partially applied")
		})
	}
}

/* ───────── concurrency ───────── */

func TestStore_ConcurrentCreatesWithSameEmail(t *testing.T) {
	s := New()
	ctx := context.Background()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.CreateAccount(ctx, entity.NewAccount{Name: "racer", Email: "same@x.com"}); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	a, _, _ := s.Counts()
	assert.Equal(t, 1, a)
}

func TestStore_ConcurrentCommentAndPostDelete(t *testing.T) {
	ctx := context.Background()

	for round := 0; round < 20; round++ {
		s := seeded(t)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.CreateComment(ctx, entity.NewComment{Text: "race", AuthorID: "2", PostID: "11"})
		}()
		go func() {
			defer wg.Done()
			_, _ = s.DeletePost(ctx, "11")
		}()
		wg.Wait()

		for _, c := range s.ListComments(ctx) {
			assert.NotEqual(t, "11", c.PostID, "comment survived its post")
		}
	}
}

func TestStore_PairedReads(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	post, author, err := s.PostWithAuthor(ctx, "12")
	require.NoError(t, err)
	assert.Equal(t, "12", post.ID)
	assert.Equal(t, "Meow", author.Name)

	c, author, err := s.CommentWithAuthor(ctx, "104")
	require.NoError(t, err)
	assert.Equal(t, "104", c.ID)
	assert.Equal(t, "Liu", author.Name)

	c, post, err = s.CommentWithPost(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, "101", c.ID)
	assert.Equal(t, "13", post.ID)

	_, _, err = s.PostWithAuthor(ctx, "99")
	assert.ErrorIs(t, err, entity.ErrNotFound)
	_, _, err = s.CommentWithAuthor(ctx, "99")
	assert.ErrorIs(t, err, entity.ErrNotFound)
	_, _, err = s.CommentWithPost(ctx, "99")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestStore_PairedReads_returnCopies(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	_, author, err := s.PostWithAuthor(ctx, "11")
	require.NoError(t, err)
	*author.Age = 99

	again, err := s.GetAccount(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 19, *again.Age)
}

func TestStore_PairedReads_danglingReference(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	// Bypass the cascading deletes to leave references dangling.
	s.accounts.remove("2")
	s.posts.remove("13")

	_, _, err := s.CommentWithAuthor(ctx, "104")
	assert.ErrorIs(t, err, entity.ErrInvariantViolation)
	assert.NotErrorIs(t, err, entity.ErrNotFound)

	_, _, err = s.CommentWithPost(ctx, "101")
	assert.ErrorIs(t, err, entity.ErrInvariantViolation)

	s.accounts.remove("1")
	_, _, err = s.PostWithAuthor(ctx, "11")
	assert.ErrorIs(t, err, entity.ErrInvariantViolation)
}

func TestStore_PostWithAuthor_concurrentAccountDelete(t *testing.T) {
	ctx := context.Background()

	for round := 0; round < 20; round++ {
		s := seeded(t)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			post, author, err := s.PostWithAuthor(ctx, "11")
			if err != nil {
				assert.ErrorIs(t, err, entity.ErrNotFound)
				return
			}
			assert.Equal(t, post.AuthorID, author.ID)
		}()
		go func() {
			defer wg.Done()
			_, _ = s.DeleteAccount(ctx, "1")
		}()
		wg.Wait()
	}
}
