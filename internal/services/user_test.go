package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventify/internal/models"
	"eventify/internal/services"
	"eventify/internal/storage"
)

func newUserService(t *testing.T) (*services.UserService, *storage.InMemoryStore) {
	store := storage.NewInMemoryStore()
	return services.NewUserService(store, newTestLogger(t)), store
}

func TestUpdateProfileIgnoresRole(t *testing.T) {
	svc, store := newUserService(t)
	user := seedUser(t, store, "alice@example.com")

	name := "Alice Renamed"
	admin := models.RoleAdmin
	updated, err := svc.UpdateProfile(user, &models.UserUpdateRequest{Name: &name, Role: &admin})
	require.NoError(t, err)

	assert.Equal(t, "Alice Renamed", updated.Name)
	assert.Equal(t, models.RoleUser, updated.Role, "self-service updates cannot escalate role")
}

func TestUpdateProfileDuplicateEmail(t *testing.T) {
	svc, store := newUserService(t)
	seedUser(t, store, "taken@example.com")
	user := seedUser(t, store, "alice@example.com")

	email := "taken@example.com"
	_, err := svc.UpdateProfile(user, &models.UserUpdateRequest{Email: &email})
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestAdminUpdateRole(t *testing.T) {
	svc, store := newUserService(t)
	user := seedUser(t, store, "alice@example.com")

	admin := models.RoleAdmin
	updated, err := svc.AdminUpdate(user.ID, &models.UserUpdateRequest{Role: &admin})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	bogus := models.Role("superuser")
	_, err = svc.AdminUpdate(user.ID, &models.UserUpdateRequest{Role: &bogus})
	assert.ErrorIs(t, err, services.ErrInvalidRole)
}

func TestSetActive(t *testing.T) {
	svc, store := newUserService(t)
	user := seedUser(t, store, "alice@example.com")

	updated, err := svc.SetActive(user.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	updated, err = svc.SetActive(user.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
}

func TestDeleteGuardsSelf(t *testing.T) {
	svc, store := newUserService(t)
	admin := seedUser(t, store, "admin@example.com")
	victim := seedUser(t, store, "victim@example.com")

	err := svc.Delete(admin, admin.ID)
	assert.ErrorIs(t, err, services.ErrSelfDelete)

	require.NoError(t, svc.Delete(admin, victim.ID))
	_, err = svc.Get(victim.ID)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}
