package identity

import (
	"context"
	"testing"

	"github.com/flexo/backend/internal/domain/identity"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	users   *MockUserRepository
	events  *MockEventPublisher
	revoked *auth.MemoryRevocations
	service *UserService
}

func newUserFixture() *userFixture {
	f := &userFixture{
		users:   new(MockUserRepository),
		events:  new(MockEventPublisher),
		revoked: auth.NewMemoryRevocations(),
	}
	f.service = NewUserService(f.users, nil, f.revoked, f.events, DefaultAuthServiceConfig(), nil)
	return f
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the role preset", func(t *testing.T) {
		f := newUserFixture()
		f.users.On("ExistsByEmail", ctx, "bruno@grafica.com.br").Return(false, nil)
		f.users.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)
		f.events.On("Publish", ctx, mock.MatchedBy(func(evs []shared.DomainEvent) bool {
			return len(evs) == 1 && evs[0].EventType() == identity.EventTypeUserCreated
		})).Return(nil)

		resp, err := f.service.Create(ctx, CreateUserRequest{
			Name:     "Bruno Lima",
			Email:    "bruno@grafica.com.br",
			Password: testPassword,
			Role:     "viewer",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"/serviceorder", "/notification"}, resp.AllowedRoutes)
		assert.True(t, resp.Active)
		f.events.AssertExpectations(t)
	})

	t.Run("explicit routes are normalized", func(t *testing.T) {
		f := newUserFixture()
		f.users.On("ExistsByEmail", ctx, mock.Anything).Return(false, nil)
		f.users.On("Save", ctx, mock.Anything).Return(nil)
		f.events.On("Publish", ctx, mock.Anything).Return(nil)

		resp, err := f.service.Create(ctx, CreateUserRequest{
			Name:          "Carla",
			Email:         "carla@grafica.com.br",
			Password:      testPassword,
			Role:          "operator",
			AllowedRoutes: []string{"Customer/", "/customer", "/invoice"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"/customer", "/invoice"}, resp.AllowedRoutes)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newUserFixture()
		f.users.On("ExistsByEmail", ctx, "ana@grafica.com.br").Return(true, nil)

		_, err := f.service.Create(ctx, CreateUserRequest{Name: "Ana", Email: "ana@grafica.com.br", Password: testPassword, Role: "viewer"})

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		f.users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("access change revokes tokens", func(t *testing.T) {
		f := newUserFixture()
		u := newUser(t, identity.RoleViewer)
		f.users.On("FindByID", ctx, u.ID).Return(u, nil)
		f.users.On("Save", ctx, u).Return(nil)

		resp, err := f.service.Update(ctx, u.ID, UpdateUserRequest{
			Name:  "Ana Souza",
			Email: "ANA@grafica.com.br",
			Role:  "manager",
		})

		require.NoError(t, err)
		assert.Equal(t, "manager", resp.Role)
		assert.Contains(t, resp.AllowedRoutes, "/invoice")
		assert.Equal(t, 2, resp.Version)
		f.users.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)

		revoked, err := f.revoked.Revoked(ctx, issuedBefore(u))
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("cannot demote the last admin", func(t *testing.T) {
		f := newUserFixture()
		u := newUser(t, identity.RoleAdmin)
		f.users.On("FindByID", ctx, u.ID).Return(u, nil)
		f.users.On("CountActiveByRole", ctx, identity.RoleAdmin).Return(int64(1), nil)

		_, err := f.service.Update(ctx, u.ID, UpdateUserRequest{Name: u.Name, Email: u.Email, Role: "viewer"})

		assert.ErrorIs(t, err, shared.ErrInvalidState)
		assert.Equal(t, identity.RoleAdmin, u.Role)
	})

	t.Run("cannot demote the only active admin beside deactivated ones", func(t *testing.T) {
		f := newUserFixture()
		u := newUser(t, identity.RoleAdmin)
		f.users.On("FindByID", ctx, u.ID).Return(u, nil)
		// a second admin exists but is deactivated, so one can still sign in
		f.users.On("CountActiveByRole", ctx, identity.RoleAdmin).Return(int64(1), nil)

		_, err := f.service.Update(ctx, u.ID, UpdateUserRequest{Name: u.Name, Email: u.Email, Role: "viewer"})

		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "At least one admin must remain", de.Message)
		f.users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestUserService_DeleteAndDeactivate(t *testing.T) {
	ctx := context.Background()

	t.Run("self deletion is refused", func(t *testing.T) {
		f := newUserFixture()
		id := uuid.New()
		err := f.service.Delete(ctx, id, id)
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})

	t.Run("deletes a viewer", func(t *testing.T) {
		f := newUserFixture()
		u := newUser(t, identity.RoleViewer)
		f.users.On("FindByID", ctx, u.ID).Return(u, nil)
		f.users.On("Delete", ctx, u.ID).Return(nil)

		require.NoError(t, f.service.Delete(ctx, uuid.New(), u.ID))
		f.users.AssertExpectations(t)
	})

	t.Run("deactivates another admin when more remain", func(t *testing.T) {
		f := newUserFixture()
		u := newUser(t, identity.RoleAdmin)
		f.users.On("FindByID", ctx, u.ID).Return(u, nil)
		f.users.On("CountActiveByRole", ctx, identity.RoleAdmin).Return(int64(2), nil)
		f.users.On("Save", ctx, u).Return(nil)

		resp, err := f.service.Deactivate(ctx, uuid.New(), u.ID)

		require.NoError(t, err)
		assert.False(t, resp.Active)
		assert.Equal(t, "deactivated", resp.Status)
	})

	t.Run("deletes a deactivated admin while one admin is active", func(t *testing.T) {
		f := newUserFixture()
		u := newUser(t, identity.RoleAdmin)
		u.Deactivate()
		f.users.On("FindByID", ctx, u.ID).Return(u, nil)
		f.users.On("Delete", ctx, u.ID).Return(nil)

		require.NoError(t, f.service.Delete(ctx, uuid.New(), u.ID))
		f.users.AssertNotCalled(t, "CountActiveByRole", mock.Anything, mock.Anything)
	})
}

func TestUserService_List(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()
	f.users.On("FindAll", ctx, mock.MatchedBy(func(filter shared.Filter) bool {
		return filter.Filters["role"] == "operator" && filter.Filters["status"] == "active"
	})).Return([]identity.User{*newUser(t, identity.RoleOperator)}, nil)
	f.users.On("Count", ctx, mock.Anything).Return(int64(1), nil)

	users, total, err := f.service.List(ctx, UserListFilter{Role: "operator", Status: "active"})

	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, int64(1), total)
}
