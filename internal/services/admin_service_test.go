package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant_dashboard/internal/logger"
	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/internal/utils"
)

func newAdminFixture() (*AdminService, *fakeUserStore, *fakeProfileStore) {
	users := newFakeUserStore()
	profiles := newFakeProfileStore()
	return NewAdminService(users, profiles, logger.Discard()), users, profiles
}

func validAdminInput() CreateAdminInput {
	return CreateAdminInput{
		Email:    "Owner@Example.com",
		Password: "secret123",
		Phone:    "+962700000000",
		FullName: "Lina Haddad",
	}
}

func TestCreateAdmin(t *testing.T) {
	svc, users, profiles := newAdminFixture()

	p, err := svc.CreateAdmin(context.Background(), validAdminInput())
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", p.Email)
	assert.Contains(t, profiles.profiles, p.UserID)

	u, err := users.FindUserByID(context.Background(), p.UserID)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NoError(t, utils.VerifyPassword(u.PasswordHash, "secret123"))

	_, err = svc.CreateAdmin(context.Background(), validAdminInput())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateAdminValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateAdminInput)
		field   string
		wantErr error
	}{
		{"bad email", func(in *CreateAdminInput) { in.Email = "nope" }, "email", ErrInvalidFormat},
		{"short password", func(in *CreateAdminInput) { in.Password = "12345" }, "password", ErrTooShort},
		{"missing phone", func(in *CreateAdminInput) { in.Phone = "" }, "phone", ErrRequired},
		{"missing name", func(in *CreateAdminInput) { in.FullName = "" }, "full_name", ErrRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, _ := newAdminFixture()
			in := validAdminInput()
			tt.mutate(&in)

			_, err := svc.CreateAdmin(context.Background(), in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, users.users)
		})
	}
}

func TestBootstrapOnlyOnEmptyTable(t *testing.T) {
	svc, users, _ := newAdminFixture()

	require.NoError(t, svc.Bootstrap(context.Background(), "", ""))
	assert.Empty(t, users.users)

	require.NoError(t, svc.Bootstrap(context.Background(), "first@example.com", "secret123"))
	assert.Len(t, users.users, 1)

	require.NoError(t, svc.Bootstrap(context.Background(), "second@example.com", "secret123"))
	assert.Len(t, users.users, 1)
}

func TestProfileAndUpdate(t *testing.T) {
	svc, _, profiles := newAdminFixture()
	id := uuid.New()

	_, err := svc.Profile(context.Background(), id)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	_, err = svc.UpdateProfile(context.Background(), id, ProfileInput{FullName: "A", Email: "a@example.com"})
	assert.ErrorIs(t, err, ErrProfileNotFound)

	profiles.profiles[id] = models.AdminProfile{UserID: id, FullName: "Old", Email: "old@example.com"}
	p, err := svc.UpdateProfile(context.Background(), id, ProfileInput{
		FullName: " New Name ",
		Email:    "new@example.com",
		JobTitle: "Manager",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", p.FullName)
	assert.Equal(t, "Manager", p.JobTitle)

	_, err = svc.UpdateProfile(context.Background(), id, ProfileInput{FullName: "x", Email: "bad"})
	assert.ErrorIs(t, err, ErrInvalidFormat)

	ok, err := svc.IsAdmin(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = svc.IsAdmin(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}
