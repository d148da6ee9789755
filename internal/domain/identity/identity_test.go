package identity

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	bcryptCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func TestCanAccess(t *testing.T) {
	tests := []struct {
		name   string
		routes []string
		path   string
		want   bool
	}{
		{"exact", []string{"/customer"}, "/customer", true},
		{"child segment", []string{"/customer"}, "/customer/42", true},
		{"similar prefix", []string{"/customer"}, "/customers", false},
		{"root grants all", []string{"/"}, "/invoice/1/pay", true},
		{"case and trailing slash", []string{"/Customer/"}, "/CUSTOMER/42/", true},
		{"missing leading slash", []string{"serviceorder"}, "serviceorder/1", true},
		{"query ignored", []string{"/report"}, "/report/orders?from=2024-01-01", true},
		{"no routes", nil, "/customer", false},
		{"other resource", []string{"/customer", "/printer"}, "/invoice", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccess(tt.routes, tt.path))
		})
	}
}

func TestNormalizeRoutes(t *testing.T) {
	got, err := NormalizeRoutes([]string{"/Customer", "customer/", "/printer"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/customer", "/printer"}, got)

	_, err = NormalizeRoutes([]string{" "})
	assert.Error(t, err)
}

func TestNewUser(t *testing.T) {
	presets := DefaultRolePresets()

	t.Run("uses role preset when no routes given", func(t *testing.T) {
		u, err := NewUser("Ana", "Ana@Example.com", "secret123", RoleViewer, nil, presets)
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", u.Email)
		assert.Equal(t, presets[RoleViewer], u.AllowedRoutes)
		assert.True(t, u.VerifyPassword("secret123"))
		assert.False(t, u.VerifyPassword("wrong"))
		assert.Len(t, u.GetDomainEvents(), 1)
	})

	t.Run("explicit routes", func(t *testing.T) {
		u, err := NewUser("Ana", "ana@example.com", "secret123", RoleOperator, []string{"/customer"}, presets)
		require.NoError(t, err)
		assert.True(t, u.CanAccess("/customer/1"))
		assert.False(t, u.CanAccess("/invoice"))
	})

	t.Run("admin bypasses routes", func(t *testing.T) {
		u, err := NewUser("Root", "root@example.com", "secret123", RoleAdmin, []string{"/customer"}, presets)
		require.NoError(t, err)
		assert.True(t, u.CanAccess("/invoice/1"))
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := NewUser("", "a@b.com", "secret123", RoleViewer, nil, presets)
		assert.Error(t, err)
		_, err = NewUser("A", "not-an-email", "secret123", RoleViewer, nil, presets)
		assert.Error(t, err)
		_, err = NewUser("A", "a@b.com", "short1", RoleViewer, nil, presets)
		assert.Error(t, err)
		_, err = NewUser("A", "a@b.com", "onlyletters", RoleViewer, nil, presets)
		assert.Error(t, err)
		_, err = NewUser("A", "a@b.com", "secret123", Role("root"), nil, presets)
		assert.Error(t, err)
	})
}

func TestUser_Passwords(t *testing.T) {
	u, err := NewUser("Ana", "ana@example.com", "secret123", RoleViewer, nil, DefaultRolePresets())
	require.NoError(t, err)

	assert.Error(t, u.ChangePassword("wrong", "another123"))
	require.NoError(t, u.ChangePassword("secret123", "another123"))
	assert.True(t, u.VerifyPassword("another123"))
}

func TestUser_LoginLockout(t *testing.T) {
	u, err := NewUser("Ana", "ana@example.com", "secret123", RoleViewer, nil, DefaultRolePresets())
	require.NoError(t, err)

	assert.False(t, u.RecordLoginFailure(3, time.Minute))
	assert.False(t, u.RecordLoginFailure(3, time.Minute))
	assert.True(t, u.RecordLoginFailure(3, time.Minute))
	assert.True(t, u.IsLocked())
	assert.False(t, u.CanLogin())

	u.Activate()
	assert.True(t, u.CanLogin())

	u.Deactivate()
	assert.False(t, u.CanLogin())
}

func TestUser_ExpiredLockStartsFreshCount(t *testing.T) {
	u, err := NewUser("Ana", "ana@example.com", "secret123", RoleViewer, nil, DefaultRolePresets())
	require.NoError(t, err)

	assert.False(t, u.RecordLoginFailure(2, time.Minute))
	assert.True(t, u.RecordLoginFailure(2, time.Minute))

	past := time.Now().Add(-time.Second)
	u.LockedUntil = &past
	assert.False(t, u.IsLocked())
	assert.True(t, u.CanLogin())

	assert.False(t, u.RecordLoginFailure(2, time.Minute))
	assert.Equal(t, 1, u.FailedAttempts)
	assert.Equal(t, UserStatusActive, u.Status)
}

func TestCheckPassword(t *testing.T) {
	assert.NoError(t, checkPassword("prensa2024"))
	assert.NoError(t, checkPassword("ação12345"))
	for _, pw := range []string{"short1", "onlyletters", "1234567890", strings.Repeat("a1", 37)} {
		assert.Error(t, checkPassword(pw), pw)
	}
}

func TestLoadRolePresets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
roles:
  viewer:
    routes: [/ServiceOrder, /report/]
`), 0o600))

	presets, err := LoadRolePresets(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/serviceorder", "/report"}, presets[RoleViewer])
	assert.Equal(t, []string{"/"}, presets[RoleAdmin])

	_, err = ParseRolePresets([]byte("roles:\n  root:\n    routes: [/]\n"))
	assert.Error(t, err)
}
