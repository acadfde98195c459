package service

import (
	"context"
	"testing"

	"alpharoot/internal/dto"
	"alpharoot/internal/model"
	"alpharoot/pkg/apperrors"
	"alpharoot/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_LoginWithDemoCredentials(t *testing.T) {
	svc := testAuthService(t)
	ctx := context.Background()

	assert.False(t, svc.IsAuthenticated())

	user, err := svc.Login(ctx, "test@example.com", "password")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Demo User", user.Name)
	assert.NotNil(t, user.LastLogin)
	assert.True(t, svc.IsAuthenticated())
}

func TestAuthService_LoginRejectsOtherCredentials(t *testing.T) {
	svc := testAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "test@example.com", password: "wrong"},
		{name: "wrong email", email: "other@example.com", password: "password"},
		{name: "empty", email: "", password: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.email, tt.password)
			assert.True(t, apperrors.IsAuthentication(err))
			assert.False(t, svc.IsAuthenticated())
			assert.Nil(t, svc.GetCurrentUser())
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	svc := testAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     dto.RegisterRequest
		field   string
		wantErr bool
	}{
		{name: "name too short", req: dto.RegisterRequest{Name: "A", Email: "a@b.co", Password: "secret1"}, field: "name", wantErr: true},
		{name: "bad email", req: dto.RegisterRequest{Name: "Al", Email: "not-an-email", Password: "secret1"}, field: "email", wantErr: true},
		{name: "short password", req: dto.RegisterRequest{Name: "Al", Email: "a@b.co", Password: "12345"}, field: "password", wantErr: true},
		{name: "valid", req: dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Register(ctx, tt.req)
			if tt.wantErr {
				var ve *apperrors.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.field, ve.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.req.Email, user.Email)
			// Registration must not establish a session.
			assert.False(t, svc.IsAuthenticated())
		})
	}
}

func TestAuthService_RegisterAllocatesUniqueIDs(t *testing.T) {
	svc := testAuthService(t)
	ctx := context.Background()

	a, err := svc.Register(ctx, dto.RegisterRequest{Name: "Alice", Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)
	b, err := svc.Register(ctx, dto.RegisterRequest{Name: "Bob", Email: "b@example.com", Password: "secret1"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestAuthService_Logout(t *testing.T) {
	svc := testAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "test@example.com", "password")
	require.NoError(t, err)

	svc.Logout()
	assert.False(t, svc.IsAuthenticated())
	assert.Nil(t, svc.GetCurrentUser())

	// Idempotent.
	svc.Logout()
	assert.False(t, svc.IsAuthenticated())
}

func TestAuthService_SnapshotRestoresSession(t *testing.T) {
	store := testStore(t)
	cfg := testConfig()

	first := NewAuthService(cfg, logger.Nop(), store)
	_, err := first.Login(context.Background(), "test@example.com", "password")
	require.NoError(t, err)

	// A second service over the same store picks up the persisted session.
	second := NewAuthService(cfg, logger.Nop(), store)
	restored := second.GetCurrentUser()
	require.NotNil(t, restored)
	assert.Equal(t, int64(1), restored.ID)
	assert.Equal(t, "test@example.com", restored.Email)
	assert.True(t, second.IsAuthenticated())
}

func TestAuthService_CorruptSnapshotIsDiscarded(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Set("alpharoot_user", []byte(`{"id": "not a number"`)))

	svc := NewAuthService(testConfig(), logger.Nop(), store)
	assert.Nil(t, svc.GetCurrentUser())
	assert.False(t, svc.IsAuthenticated())

	// The broken snapshot is gone.
	var u model.User
	err := store.GetJSON("alpharoot_user", &u)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAuthService_UpdateUser(t *testing.T) {
	svc := testAuthService(t)

	_, err := svc.UpdateUser(dto.UpdateUserRequest{Name: "Renamed"})
	assert.True(t, apperrors.IsAuthentication(err))

	_, err = svc.Login(context.Background(), "test@example.com", "password")
	require.NoError(t, err)

	user, err := svc.UpdateUser(dto.UpdateUserRequest{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", user.Name)
	assert.Equal(t, "Renamed", svc.GetCurrentUser().Name)
}

func TestAuthService_ResetPasswordIsStub(t *testing.T) {
	svc := testAuthService(t)
	assert.Error(t, svc.ResetPassword("test@example.com"))
}

func TestAuthService_InactiveUserIsNotAuthenticated(t *testing.T) {
	store := testStore(t)
	cfg := testConfig()

	first := NewAuthService(cfg, logger.Nop(), store)
	_, err := first.Login(context.Background(), "test@example.com", "password")
	require.NoError(t, err)

	// Persist a deactivated snapshot and reload.
	user := first.GetCurrentUser()
	user.Deactivate()
	require.NoError(t, store.SetJSON("alpharoot_user", user))

	second := NewAuthService(cfg, logger.Nop(), store)
	require.NotNil(t, second.GetCurrentUser())
	assert.False(t, second.IsAuthenticated())
}
