package entity

import "strings"

// Post represents an article written by an account.
// Only published posts are visible to subscribers.
type Post struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
	AuthorID  string `json:"author"`
}

// NewPost holds the fields required to create a post.
type NewPost struct {
	Title     string
	Body      string
	Published bool
	AuthorID  string
}

// Validate checks the input shape. Author existence is checked by the store.
func (in NewPost) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if in.AuthorID == "" {
		return &ValidationError{Field: "author", Message: "is required"}
	}
	return nil
}

// PostPatch carries the fields of a post update.
// The author reference is immutable and therefore absent.
type PostPatch struct {
	Title     *string
	Body      *string
	Published *bool
}

// Validate checks the supplied fields only.
func (p PostPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return &ValidationError{Field: "title", Message: "cannot be empty"}
	}
	return nil
}

// Apply writes the present fields onto post.
func (p PostPatch) Apply(post *Post) {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Body != nil {
		post.Body = *p.Body
	}
	if p.Published != nil {
		post.Published = *p.Published
	}
}

// PostChange pairs the snapshots taken before and after an update.
type PostChange struct {
	Before Post
	After  Post
}

// PostRemoval is the result of deleting a post: the post and the comments removed with it.
type PostRemoval struct {
	Post     Post
	Comments []Comment
}
