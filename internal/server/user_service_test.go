package server

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/types"
)

func newTestUserService() (*UserService, *memStore) {
	store := newMemStore()
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10}), store
}

func TestConvertDBUserToTypesUser(t *testing.T) {
	assert.Nil(t, convertDBUserToTypesUser(nil))

	id := uuid.New()
	user := convertDBUserToTypesUser(&db.User{ID: id, Name: "Jane", Email: "j@x.com", PasswordHash: "secret-hash"})
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "Jane", user.Name)
}

func TestUserService_Register(t *testing.T) {
	svc, store := newTestUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.RegisterRequest{Name: " Jane ", Email: " Jane@Example.COM ", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.Name)
	assert.Equal(t, "jane@example.com", user.Email)

	stored := store.users[user.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)

	_, err = svc.Register(ctx, &types.RegisterRequest{Name: "Other", Email: "jane@example.com", Password: "password456"})
	var exists *ErrEmailAlreadyExists
	assert.ErrorAs(t, err, &exists)
}

func TestUserService_RegisterPasswordTooLong(t *testing.T) {
	svc, store := newTestUserService()

	_, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: strings.Repeat("p", 80),
	})
	var validation *ErrValidation
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "password", validation.Field)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
	assert.Empty(t, store.users)
}

func TestUserService_Login(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()
	registered, err := svc.Register(ctx, &types.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)

	user, err := svc.Login(ctx, &types.LoginRequest{Email: "JANE@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	var invalid *ErrInvalidCredentials
	_, err = svc.Login(ctx, &types.LoginRequest{Email: "jane@example.com", Password: "nope"})
	assert.ErrorAs(t, err, &invalid)
	_, err = svc.Login(ctx, &types.LoginRequest{Email: "ghost@example.com", Password: "password123"})
	assert.ErrorAs(t, err, &invalid)
}

func TestUserService_GetUser(t *testing.T) {
	svc, _ := newTestUserService()
	var notFound *ErrUserNotFound
	_, err := svc.GetUser(context.Background(), uuid.New())
	assert.ErrorAs(t, err, &notFound)
}
