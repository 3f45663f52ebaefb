package entity

import (
	"fmt"
	"net/mail"
)

// maxEmailLength follows the RFC 5321 path limit.
const maxEmailLength = 254

// ValidateEmail checks that email is a single bare address.
// Returns a ValidationError if the address is empty or malformed.
func ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if len(email) > maxEmailLength {
		return &ValidationError{
			Field:   "email",
			Message: fmt.Sprintf("must not exceed %d characters", maxEmailLength),
		}
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return &ValidationError{Field: "email", Message: "invalid address"}
	}
	return nil
}
