package identity

import (
	"unicode"

	"github.com/flexo/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is lowered by tests
var bcryptCost = 12

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt ignores bytes past 72
)

func invalidPassword(msg string) error {
	return shared.NewDomainError("INVALID_PASSWORD", msg)
}

// checkPassword wants at least one letter and one digit
func checkPassword(pw string) error {
	if len(pw) < minPasswordLen {
		return invalidPassword("Password must be at least 8 characters")
	}
	if len(pw) > maxPasswordLen {
		return invalidPassword("Password cannot exceed 72 bytes")
	}
	var letter, digit bool
	for _, r := range pw {
		letter = letter || unicode.IsLetter(r)
		digit = digit || unicode.IsDigit(r)
	}
	if !letter || !digit {
		return invalidPassword("Password needs a letter and a digit")
	}
	return nil
}

// hashPassword checks pw against the policy before hashing it
func hashPassword(pw string) (string, error) {
	if err := checkPassword(pw); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcryptCost)
	if err != nil {
		return "", shared.NewDomainError("PASSWORD_HASH_ERROR", "Password could not be stored")
	}
	return string(hash), nil
}

func matchesHash(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
