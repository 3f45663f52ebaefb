// Package dto defines the JSON shapes the gateway exchanges with clients.
package dto

import "postboard/internal/domain/entity"

// Account is the wire form of entity.Account.
type Account struct {
	ID    string `json:"id" example:"1"`
	Name  string `json:"name" example:"Charles"`
	Email string `json:"email" example:"test@test.com"`
	Age   *int   `json:"age" example:"19"`
}

// Post is the wire form of entity.Post.
type Post struct {
	ID        string `json:"id" example:"11"`
	Title     string `json:"title" example:"Charles is cool"`
	Body      string `json:"body" example:"<3"`
	Published bool   `json:"published" example:"true"`
	Author    string `json:"author" example:"1"`
}

// Comment is the wire form of entity.Comment.
type Comment struct {
	ID     string `json:"id" example:"101"`
	Text   string `json:"text" example:"wow"`
	Author string `json:"author" example:"1"`
	Post   string `json:"post" example:"13"`
}

// AccountRemoval lists everything deleted with an account.
type AccountRemoval struct {
	Account  Account   `json:"account"`
	Posts    []Post    `json:"posts"`
	Comments []Comment `json:"comments"`
}

// PostRemoval lists everything deleted with a post.
type PostRemoval struct {
	Post     Post      `json:"post"`
	Comments []Comment `json:"comments"`
}

func FromAccount(a entity.Account) Account {
	a = a.Clone()
	return Account{ID: a.ID, Name: a.Name, Email: a.Email, Age: a.Age}
}

func FromPost(p entity.Post) Post {
	return Post{ID: p.ID, Title: p.Title, Body: p.Body, Published: p.Published, Author: p.AuthorID}
}

func FromComment(c entity.Comment) Comment {
	return Comment{ID: c.ID, Text: c.Text, Author: c.AuthorID, Post: c.PostID}
}

func FromAccounts(in []entity.Account) []Account { return mapSlice(in, FromAccount) }

func FromPosts(in []entity.Post) []Post { return mapSlice(in, FromPost) }

func FromComments(in []entity.Comment) []Comment { return mapSlice(in, FromComment) }

func FromAccountRemoval(r entity.AccountRemoval) AccountRemoval {
	return AccountRemoval{
		Account:  FromAccount(r.Account),
		Posts:    FromPosts(r.Posts),
		Comments: FromComments(r.Comments),
	}
}

func FromPostRemoval(r entity.PostRemoval) PostRemoval {
	return PostRemoval{Post: FromPost(r.Post), Comments: FromComments(r.Comments)}
}

// FromEntity converts an event payload. Unknown values pass through unchanged.
func FromEntity(v any) any {
	switch e := v.(type) {
	case entity.Account:
		return FromAccount(e)
	case entity.Post:
		return FromPost(e)
	case entity.Comment:
		return FromComment(e)
	default:
		return v
	}
}

// mapSlice never returns nil so empty lists encode as [].
func mapSlice[S, D any](in []S, fn func(S) D) []D {
	out := make([]D, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
