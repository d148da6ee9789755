package partner

import (
	"regexp"
	"strings"

	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/domain/shared/valueobject"
)

var phoneRegex = regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)

func validateName(field, name string, max int) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", field+" cannot be empty")
	}
	if len(name) > max {
		return shared.NewDomainError("INVALID_NAME", field+" is too long")
	}
	return nil
}

func validatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if len(phone) > 30 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 30 characters")
	}
	if !phoneRegex.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}

// optionalEmail accepts a blank address
func optionalEmail(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	email, err := valueobject.NormalizeEmail(raw)
	if err != nil {
		return "", shared.NewDomainError("INVALID_EMAIL", "Invalid email: "+err.Error())
	}
	return email, nil
}

// parseDocument validates a CNPJ/CPF and returns its digits.
// Empty input is allowed when optional is true.
func parseDocument(raw string, optional bool) (string, error) {
	if strings.TrimSpace(raw) == "" {
		if optional {
			return "", nil
		}
		return "", shared.NewDomainError("INVALID_DOCUMENT", "CNPJ/CPF is required")
	}
	doc, err := valueobject.NewDocument(raw)
	if err != nil {
		return "", shared.NewDomainError("INVALID_DOCUMENT", "Invalid CNPJ/CPF")
	}
	return doc.Digits(), nil
}
