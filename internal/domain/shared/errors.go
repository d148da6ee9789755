package shared

import "errors"

// DomainError is a broken business rule. Code becomes ERR_<Code> in the
// API envelope and picks the HTTP status; Message is shown to the user.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

func (e *DomainError) Error() string { return e.Message }

// Is compares codes, so errors.Is(err, ErrNotFound) holds for any
// NOT_FOUND whatever its message
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	return errors.As(target, &t) && t.Code == e.Code
}

var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInUse               = NewDomainError("IN_USE", "Resource is referenced by other records")
)

// NotFound names the missing record, e.g. NotFound("Printer")
func NotFound(resource string) *DomainError {
	return NewDomainError(ErrNotFound.Code, resource+" not found")
}

// InUse refuses a delete, e.g. InUse("Curve", "profiles")
func InUse(resource, referrer string) *DomainError {
	return NewDomainError(ErrInUse.Code, resource+" is referenced by "+referrer+" and cannot be deleted")
}
