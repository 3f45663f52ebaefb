package post_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/domain/entity"
	"postboard/internal/eventbus"
	"postboard/internal/handler/http/dto"
	"postboard/internal/handler/http/post"
	"postboard/internal/infra/adapter/persistence/memory"
	"postboard/internal/usecase/notify"
	"postboard/internal/usecase/relation"
)

type recordingPublisher struct {
	mu        sync.Mutex
	mutations []eventbus.Mutation
}

func (p *recordingPublisher) Publish(_ eventbus.Topic, ev eventbus.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mutations = append(p.mutations, ev.Mutation)
}

func newMux(t *testing.T) (*http.ServeMux, *recordingPublisher) {
	t.Helper()
	store := memory.New()
	require.NoError(t, store.Load(
		[]entity.Account{{ID: "1", Name: "Charles", Email: "test@test.com"}},
		[]entity.Post{
			{ID: "11", Title: "Charles is cool", Body: "<3", Published: true, AuthorID: "1"},
			{ID: "12", Title: "I love Charles", Published: false, AuthorID: "1"},
		},
		[]entity.Comment{{ID: "104", Text: "so cool", AuthorID: "1", PostID: "11"}},
	))

	pub := &recordingPublisher{}
	mux := http.NewServeMux()
	post.Register(mux, store, notify.NewNotifier(store, pub), &relation.Resolver{Store: store})
	return mux, pub
}

func do(t *testing.T, mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func TestList_filtersTitleAndBody(t *testing.T) {
	mux, _ := newMux(t)

	assert.Len(t, decode[[]dto.Post](t, do(t, mux, http.MethodGet, "/posts", "")), 2)

	got := decode[[]dto.Post](t, do(t, mux, http.MethodGet, "/posts?query=%3C3", ""))
	require.Len(t, got, 1)
	assert.Equal(t, "11", got[0].ID)
}

func TestCreate(t *testing.T) {
	mux, pub := newMux(t)

	rr := do(t, mux, http.MethodPost, "/posts", `{"title":"Draft","author":"1"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.False(t, decode[dto.Post](t, rr).Published)

	rr = do(t, mux, http.MethodPost, "/posts", `{"title":"Live","body":"b","published":true,"author":"1"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(t, mux, http.MethodPost, "/posts", `{"title":"Orphan","author":"9"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, mux, http.MethodPost, "/posts", `{"title":"","author":"1"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	assert.Equal(t, []eventbus.Mutation{eventbus.Created}, pub.mutations)
}

func TestUpdate_publishTransitions(t *testing.T) {
	mux, pub := newMux(t)

	rr := do(t, mux, http.MethodPatch, "/posts/12", `{"published":true}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode[dto.Post](t, rr).Published)

	rr = do(t, mux, http.MethodPatch, "/posts/11", `{"body":"edited"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "edited", decode[dto.Post](t, rr).Body)

	rr = do(t, mux, http.MethodPatch, "/posts/11", `{"published":false}`)
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, []eventbus.Mutation{eventbus.Created, eventbus.Updated, eventbus.Deleted}, pub.mutations)

	assert.Equal(t, http.StatusNotFound, do(t, mux, http.MethodPatch, "/posts/99", `{"body":"x"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, mux, http.MethodPatch, "/posts/11", `{"author":"2"}`).Code,
		"the author reference cannot be changed")
}

func TestDelete(t *testing.T) {
	mux, _ := newMux(t)

	rr := do(t, mux, http.MethodDelete, "/posts/11", "")
	require.Equal(t, http.StatusOK, rr.Code)
	removal := decode[dto.PostRemoval](t, rr)
	assert.Equal(t, "11", removal.Post.ID)
	require.Len(t, removal.Comments, 1)
	assert.Equal(t, "104", removal.Comments[0].ID)

	assert.Equal(t, http.StatusNotFound, do(t, mux, http.MethodGet, "/posts/11", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, mux, http.MethodDelete, "/posts/11", "").Code)
}

func TestRelations(t *testing.T) {
	mux, _ := newMux(t)

	rr := do(t, mux, http.MethodGet, "/posts/11/author", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Charles", decode[dto.Account](t, rr).Name)

	rr = do(t, mux, http.MethodGet, "/posts/11/comments", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]dto.Comment](t, rr), 1)

	rr = do(t, mux, http.MethodGet, "/posts/12/comments", "")
	assert.JSONEq(t, `[]`, rr.Body.String())

	assert.Equal(t, http.StatusNotFound, do(t, mux, http.MethodGet, "/posts/99/author", "").Code)
}

// deletingReader removes the author right after each post read returns.
type deletingReader struct {
	*memory.Store
	authorID string
}

func (d deletingReader) afterRead(ctx context.Context) {
	_, _ = d.Store.DeleteAccount(ctx, d.authorID)
}

func (d deletingReader) GetPost(ctx context.Context, id string) (entity.Post, error) {
	defer d.afterRead(ctx)
	return d.Store.GetPost(ctx, id)
}

func (d deletingReader) PostWithAuthor(ctx context.Context, id string) (entity.Post, entity.Account, error) {
	defer d.afterRead(ctx)
	return d.Store.PostWithAuthor(ctx, id)
}

func TestAuthor_accountDeletedAfterRead(t *testing.T) {
	store := memory.New()
	require.NoError(t, store.Load(
		[]entity.Account{{ID: "1", Name: "Charles", Email: "test@test.com"}},
		[]entity.Post{{ID: "11", Title: "Charles is cool", Published: true, AuthorID: "1"}},
		nil,
	))
	reader := deletingReader{Store: store, authorID: "1"}
	mux := http.NewServeMux()
	post.Register(mux, reader, notify.NewNotifier(store, &recordingPublisher{}), &relation.Resolver{Store: reader})

	var rr *httptest.ResponseRecorder
	require.NotPanics(t, func() { rr = do(t, mux, http.MethodGet, "/posts/11/author", "") })
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Charles", decode[dto.Account](t, rr).Name)

	assert.Equal(t, http.StatusNotFound, do(t, mux, http.MethodGet, "/posts/11/author", "").Code)
}
