package valueobject

import (
	"errors"
	"regexp"
	"strings"
)

const maxEmailLength = 200

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrEmailTooLong = errors.New("email cannot exceed 200 characters")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail trims and lowercases raw and checks its shape. Mailbox
// existence is not checked.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case len(email) > maxEmailLength:
		return "", ErrEmailTooLong
	case !emailPattern.MatchString(email):
		return "", ErrInvalidEmail
	}
	return email, nil
}
