// Package notify turns successful store mutations into change events.
// Post events are filtered by visibility: subscribers only ever see published posts.
// Comment events are always published on the topic of the comment's post.
package notify

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"postboard/internal/domain/entity"
	"postboard/internal/eventbus"
	"postboard/internal/observability/tracing"
	"postboard/internal/repository"
)

// Publisher is the part of the event bus the notifier needs.
type Publisher interface {
	Publish(topic eventbus.Topic, ev eventbus.Event)
}

// Notifier wraps every store mutation and publishes the matching events after a
// successful write. Failed calls publish nothing.
//
// The mutex spans the write and the publish, so events leave in commit order.
// It only serializes mutations that publish; CreateAccount and UpdateAccount skip it.
// Publish never blocks.
type Notifier struct {
	store repository.Store
	bus   Publisher
	mu    sync.Mutex
}

// NewNotifier creates a notifier over store publishing to bus.
func NewNotifier(store repository.Store, bus Publisher) *Notifier {
	return &Notifier{store: store, bus: bus}
}

// CreateAccount creates an account. Accounts have no topic, so nothing is published.
func (n *Notifier) CreateAccount(ctx context.Context, in entity.NewAccount) (acc entity.Account, err error) {
	ctx, end := n.begin(ctx, "create_account")
	defer func() { end(err) }()

	return n.store.CreateAccount(ctx, in)
}

// UpdateAccount updates an account. Nothing is published.
func (n *Notifier) UpdateAccount(ctx context.Context, id string, patch entity.AccountPatch) (acc entity.Account, err error) {
	ctx, end := n.begin(ctx, "update_account", attribute.String("account.id", id))
	defer func() { end(err) }()

	return n.store.UpdateAccount(ctx, id, patch)
}

// DeleteAccount deletes an account and announces everything the cascade removed:
// DELETED on "post" for each removed published post, DELETED on the comment topic
// for each removed comment.
func (n *Notifier) DeleteAccount(ctx context.Context, id string) (removal entity.AccountRemoval, err error) {
	ctx, end := n.begin(ctx, "delete_account", attribute.String("account.id", id))
	defer func() { end(err) }()

	n.mu.Lock()
	defer n.mu.Unlock()

	removal, err = n.store.DeleteAccount(ctx, id)
	if err != nil {
		return removal, err
	}
	for _, p := range removal.Posts {
		n.publishPost("delete_account", classifyDeletedPost(p))
	}
	n.publishComments(eventbus.Deleted, removal.Comments...)
	return removal, nil
}

// CreatePost creates a post and announces it if it is published.
func (n *Notifier) CreatePost(ctx context.Context, in entity.NewPost) (post entity.Post, err error) {
	ctx, end := n.begin(ctx, "create_post")
	defer func() { end(err) }()

	n.mu.Lock()
	defer n.mu.Unlock()

	post, err = n.store.CreatePost(ctx, in)
	if err != nil {
		return post, err
	}
	n.publishPost("create_post", classifyCreatedPost(post))
	return post, nil
}

// UpdatePost updates a post and publishes the visibility transition, if any.
func (n *Notifier) UpdatePost(ctx context.Context, id string, patch entity.PostPatch) (change entity.PostChange, err error) {
	ctx, end := n.begin(ctx, "update_post", attribute.String("post.id", id))
	defer func() { end(err) }()

	n.mu.Lock()
	defer n.mu.Unlock()

	change, err = n.store.UpdatePost(ctx, id, patch)
	if err != nil {
		return change, err
	}
	n.publishPost("update_post", classifyUpdatedPost(change))
	return change, nil
}

// DeletePost deletes a post, retracts it if it was published, and announces
// the removal of each of its comments.
func (n *Notifier) DeletePost(ctx context.Context, id string) (removal entity.PostRemoval, err error) {
	ctx, end := n.begin(ctx, "delete_post", attribute.String("post.id", id))
	defer func() { end(err) }()

	n.mu.Lock()
	defer n.mu.Unlock()

	removal, err = n.store.DeletePost(ctx, id)
	if err != nil {
		return removal, err
	}
	n.publishPost("delete_post", classifyDeletedPost(removal.Post))
	n.publishComments(eventbus.Deleted, removal.Comments...)
	return removal, nil
}

// CreateComment creates a comment and publishes CREATED on its post's comment topic.
func (n *Notifier) CreateComment(ctx context.Context, in entity.NewComment) (c entity.Comment, err error) {
	ctx, end := n.begin(ctx, "create_comment", attribute.String("post.id", in.PostID))
	defer func() { end(err) }()

	n.mu.Lock()
	defer n.mu.Unlock()

	c, err = n.store.CreateComment(ctx, in)
	if err != nil {
		return c, err
	}
	n.publishComments(eventbus.Created, c)
	return c, nil
}

// UpdateComment updates a comment and publishes UPDATED.
func (n *Notifier) UpdateComment(ctx context.Context, id string, patch entity.CommentPatch) (c entity.Comment, err error) {
	ctx, end := n.begin(ctx, "update_comment", attribute.String("comment.id", id))
	defer func() { end(err) }()

	n.mu.Lock()
	defer n.mu.Unlock()

	c, err = n.store.UpdateComment(ctx, id, patch)
	if err != nil {
		return c, err
	}
	n.publishComments(eventbus.Updated, c)
	return c, nil
}

// DeleteComment deletes a comment and publishes DELETED.
func (n *Notifier) DeleteComment(ctx context.Context, id string) (c entity.Comment, err error) {
	ctx, end := n.begin(ctx, "delete_comment", attribute.String("comment.id", id))
	defer func() { end(err) }()

	n.mu.Lock()
	defer n.mu.Unlock()

	c, err = n.store.DeleteComment(ctx, id)
	if err != nil {
		return c, err
	}
	n.publishComments(eventbus.Deleted, c)
	return c, nil
}

func (n *Notifier) publishPost(operation string, ev postEvent) {
	if !ev.visible() {
		recordSuppressed(operation)
		return
	}
	n.bus.Publish(eventbus.PostTopic(), eventbus.Event{Mutation: ev.mutation, Data: ev.post})
}

func (n *Notifier) publishComments(mutation eventbus.Mutation, comments ...entity.Comment) {
	for _, c := range comments {
		n.bus.Publish(eventbus.CommentTopic(c.PostID), eventbus.Event{Mutation: mutation, Data: c})
	}
}

// begin opens a span for operation; the returned func closes it and records the outcome.
func (n *Notifier) begin(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, span := tracing.StartSpan(ctx, "notify."+operation, attrs...)
	return ctx, func(err error) {
		recordMutation(operation, err)
		finish(span, err)
	}
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
