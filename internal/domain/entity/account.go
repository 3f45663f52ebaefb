// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental records (Account, Post, Comment), the inputs used to create
// and patch them, and the domain-specific errors returned by the store.
package entity

import "strings"

// Account represents a registered author.
// Email is unique across all accounts at any instant.
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   *int   `json:"age,omitempty"`
}

// Clone returns a deep copy so callers never share the Age pointer with the store.
func (a Account) Clone() Account {
	if a.Age != nil {
		age := *a.Age
		a.Age = &age
	}
	return a
}

// NewAccount holds the fields required to create an account.
type NewAccount struct {
	Name  string
	Email string
	Age   *int
}

// Validate checks the input shape.
func (in NewAccount) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if err := ValidateEmail(in.Email); err != nil {
		return err
	}
	return validateAge(in.Age)
}

// AccountPatch carries the fields of an account update.
// A nil field is left untouched.
type AccountPatch struct {
	Name  *string
	Email *string
	Age   *int
}

// Validate checks the supplied fields only.
func (p AccountPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return &ValidationError{Field: "name", Message: "cannot be empty"}
	}
	if p.Email != nil {
		if err := ValidateEmail(*p.Email); err != nil {
			return err
		}
	}
	return validateAge(p.Age)
}

// Apply writes the present fields onto a.
func (p AccountPatch) Apply(a *Account) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.Age != nil {
		age := *p.Age
		a.Age = &age
	}
}

// AccountRemoval is the result of deleting an account: the account itself plus every
// post and comment removed by the cascade, all as pre-deletion snapshots.
type AccountRemoval struct {
	Account  Account
	Posts    []Post
	Comments []Comment
}

func validateAge(age *int) error {
	if age != nil && *age < 0 {
		return &ValidationError{Field: "age", Message: "must be zero or greater"}
	}
	return nil
}
