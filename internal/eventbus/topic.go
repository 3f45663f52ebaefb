package eventbus

import (
	"fmt"
	"strings"
)

// TopicKind distinguishes the two families of topics.
type TopicKind int

const (
	// TopicPosts carries visibility changes of published posts.
	TopicPosts TopicKind = iota + 1
	// TopicComments carries comment activity scoped to one post.
	TopicComments
)

// String returns the kind label used in wire names and metrics.
func (k TopicKind) String() string {
	switch k {
	case TopicPosts:
		return "post"
	case TopicComments:
		return "comment"
	default:
		return "unknown"
	}
}

const commentPrefix = "comment "

// Topic is a structured subscription key.
// The zero value is not a valid topic; use PostTopic or CommentTopic.
type Topic struct {
	kind   TopicKind
	postID string
}

// PostTopic is the single topic for post events.
func PostTopic() Topic {
	return Topic{kind: TopicPosts}
}

// CommentTopic is the topic for comments on the given post.
func CommentTopic(postID string) Topic {
	return Topic{kind: TopicComments, postID: postID}
}

// Kind reports which family the topic belongs to.
func (t Topic) Kind() TopicKind {
	return t.kind
}

// PostID returns the post a comment topic is scoped to, or "" for the post topic.
func (t Topic) PostID() string {
	return t.postID
}

// String returns the wire name: "post" or "comment <postID>".
func (t Topic) String() string {
	if t.kind == TopicComments {
		return commentPrefix + t.postID
	}
	return TopicPosts.String()
}

// ParseTopic converts a wire name back into a Topic.
func ParseTopic(s string) (Topic, error) {
	switch {
	case s == TopicPosts.String():
		return PostTopic(), nil
	case strings.HasPrefix(s, commentPrefix) && len(s) > len(commentPrefix):
		return CommentTopic(strings.TrimPrefix(s, commentPrefix)), nil
	default:
		return Topic{}, fmt.Errorf("invalid topic %q", s)
	}
}
