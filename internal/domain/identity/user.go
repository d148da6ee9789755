package identity

import (
	"strings"
	"time"

	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/domain/shared/valueobject"
)

type UserStatus string

const (
	UserStatusActive      UserStatus = "active"
	UserStatusLocked      UserStatus = "locked" // too many failed logins, clears itself
	UserStatusDeactivated UserStatus = "deactivated"
)

const maxUserNameLength = 200

var errInvalidRole = shared.NewDomainError("INVALID_ROLE", "Role must be one of admin, manager, operator, viewer")

// User signs in to the dashboard with Email. AllowedRoutes are resource
// prefixes such as /customer; admins ignore them.
type User struct {
	shared.BaseAggregateRoot
	Name           string
	Email          string
	PasswordHash   string
	Role           Role
	AllowedRoutes  []string
	Status         UserStatus
	LastLoginAt    *time.Time
	LastLoginIP    string
	FailedAttempts int
	LockedUntil    *time.Time
}

// NewUser creates an active user. Without routes the role preset applies.
func NewUser(name, email, password string, role Role, routes []string, presets RolePresets) (*User, error) {
	name, email, err := profile(name, email)
	if err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, errInvalidRole
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		routes = presets.RoutesFor(role)
	}
	routes, err = NormalizeRoutes(routes)
	if err != nil {
		return nil, err
	}

	u := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             email,
		PasswordHash:      hash,
		Role:              role,
		AllowedRoutes:     routes,
		Status:            UserStatusActive,
	}
	u.AddDomainEvent(NewUserCreatedEvent(u))
	return u, nil
}

// profile returns the trimmed name and normalized email
func profile(name, email string) (string, string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", "", shared.NewDomainError("INVALID_NAME", "Name is required")
	case len(name) > maxUserNameLength:
		return "", "", shared.NewDomainError("INVALID_NAME", "Name is too long")
	}
	email, err := valueobject.NormalizeEmail(email)
	if err != nil {
		return "", "", shared.NewDomainError("INVALID_EMAIL", "Invalid email: "+err.Error())
	}
	return name, email, nil
}

func (u *User) Update(name, email string) error {
	name, email, err := profile(name, email)
	if err != nil {
		return err
	}
	u.Name, u.Email = name, email
	u.changed()
	return nil
}

// SetAccess replaces role and routes together; tokens issued before the
// change still carry the old ones and must be revoked by the caller
func (u *User) SetAccess(role Role, routes []string) error {
	if !role.IsValid() {
		return errInvalidRole
	}
	normalized, err := NormalizeRoutes(routes)
	if err != nil {
		return err
	}
	u.Role, u.AllowedRoutes = role, normalized
	u.changed()
	return nil
}

// ChangePassword is the self-service path and needs the current password
func (u *User) ChangePassword(current, next string) error {
	if !u.VerifyPassword(current) {
		return invalidPassword("Current password is incorrect")
	}
	return u.SetPassword(next)
}

// SetPassword is the admin reset
func (u *User) SetPassword(pw string) error {
	hash, err := hashPassword(pw)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.changed()
	return nil
}

func (u *User) VerifyPassword(pw string) bool {
	return matchesHash(u.PasswordHash, pw)
}

// Activate also lifts a lockout
func (u *User) Activate() {
	u.Status = UserStatusActive
	u.unlock()
	u.changed()
}

func (u *User) Deactivate() {
	u.Status = UserStatusDeactivated
	u.changed()
}

func (u *User) RecordLoginSuccess(ip string) {
	now := time.Now()
	u.LastLoginAt, u.LastLoginIP = &now, ip
	if u.Status == UserStatusLocked {
		u.Status = UserStatusActive
	}
	u.unlock()
	u.changed()
}

// RecordLoginFailure counts a bad password and reports whether this
// attempt locked the account. maxAttempts <= 0 never locks. An expired
// lock starts a fresh count.
func (u *User) RecordLoginFailure(maxAttempts int, lockFor time.Duration) bool {
	if u.Status == UserStatusLocked && !u.IsLocked() {
		u.Status = UserStatusActive
		u.unlock()
	}
	u.FailedAttempts++
	u.changed()
	if maxAttempts <= 0 || u.FailedAttempts < maxAttempts {
		return false
	}
	until := time.Now().Add(lockFor)
	u.Status, u.LockedUntil = UserStatusLocked, &until
	return true
}

func (u *User) unlock() {
	u.FailedAttempts, u.LockedUntil = 0, nil
}

// IsLocked is false again once LockedUntil has passed
func (u *User) IsLocked() bool {
	if u.Status != UserStatusLocked {
		return false
	}
	return u.LockedUntil == nil || time.Now().Before(*u.LockedUntil)
}

func (u *User) CanLogin() bool {
	return u.Status != UserStatusDeactivated && !u.IsLocked()
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// CanAccess checks a request path against AllowedRoutes
func (u *User) CanAccess(path string) bool {
	return u.IsAdmin() || CanAccess(u.AllowedRoutes, path)
}

func (u *User) changed() {
	u.Touch()
	u.IncrementVersion()
}
