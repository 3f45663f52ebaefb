package notify

import (
	"postboard/internal/domain/entity"
	"postboard/internal/eventbus"
)

// postEvent is a post-topic event to publish.
// The zero value means the change is invisible to subscribers.
type postEvent struct {
	mutation eventbus.Mutation
	post     entity.Post
}

func (e postEvent) visible() bool {
	return e.mutation != ""
}

// classifyCreatedPost: only published posts are announced.
func classifyCreatedPost(p entity.Post) postEvent {
	if !p.Published {
		return postEvent{}
	}
	return postEvent{mutation: eventbus.Created, post: p}
}

// classifyDeletedPost: only posts subscribers could see are retracted.
func classifyDeletedPost(p entity.Post) postEvent {
	if !p.Published {
		return postEvent{}
	}
	return postEvent{mutation: eventbus.Deleted, post: p}
}

// classifyUpdatedPost maps the published flag transition to a visibility change:
//
//	false -> true   CREATED with the new snapshot
//	true  -> false  DELETED with the old snapshot
//	true  -> true   UPDATED with the new snapshot
//	false -> false  nothing
func classifyUpdatedPost(change entity.PostChange) postEvent {
	switch was, is := change.Before.Published, change.After.Published; {
	case !was && is:
		return postEvent{mutation: eventbus.Created, post: change.After}
	case was && !is:
		return postEvent{mutation: eventbus.Deleted, post: change.Before}
	case was && is:
		return postEvent{mutation: eventbus.Updated, post: change.After}
	default:
		return postEvent{}
	}
}
