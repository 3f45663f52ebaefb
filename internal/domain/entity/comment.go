package entity

import "strings"

// Comment is a remark left by an account on a post.
type Comment struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	AuthorID string `json:"author"`
	PostID   string `json:"post"`
}

// NewComment holds the fields required to create a comment.
type NewComment struct {
	Text     string
	AuthorID string
	PostID   string
}

// Validate checks the input shape. References are checked by the store.
func (in NewComment) Validate() error {
	if strings.TrimSpace(in.Text) == "" {
		return &ValidationError{Field: "text", Message: "is required"}
	}
	return nil
}

// CommentPatch carries the fields of a comment update.
type CommentPatch struct {
	Text *string
}

// Validate checks the supplied fields only.
func (p CommentPatch) Validate() error {
	if p.Text != nil && strings.TrimSpace(*p.Text) == "" {
		return &ValidationError{Field: "text", Message: "cannot be empty"}
	}
	return nil
}

// Apply writes the present fields onto c.
func (p CommentPatch) Apply(c *Comment) {
	if p.Text != nil {
		c.Text = *p.Text
	}
}
