package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/apiutil"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	store := newTestStore(t)
	userService := NewUserService(store)
	authService := NewAuthService(store, userService)
	ctx := context.Background()

	created, err := userService.CreateUser(ctx, &model.CreateUserModel{
		Name:     "Manager",
		Username: "manager01",
		Password: "s3cret-pass",
		Role:     model.RolePurchaseManager,
	})
	require.NoError(t, err)

	user, err := authService.Login(ctx, "manager01", "s3cret-pass")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, created.ID, user.ID)
	require.Equal(t, model.RolePurchaseManager, user.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newTestStore(t)
	userService := NewUserService(store)
	authService := NewAuthService(store, userService)
	ctx := context.Background()

	_, err := userService.CreateUser(ctx, &model.CreateUserModel{
		Name:     "Manager",
		Username: "manager01",
		Password: "s3cret-pass",
		Role:     model.RolePurchaseManager,
	})
	require.NoError(t, err)

	_, err = authService.Login(ctx, "manager01", "wrong-pass")
	require.Error(t, err)

	var appErr *apiutil.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apiutil.UnauthenticatedCode, appErr.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	store := newTestStore(t)
	userService := NewUserService(store)
	authService := NewAuthService(store, userService)

	_, err := authService.Login(context.Background(), "nobody", "whatever")
	require.Error(t, err)

	var appErr *apiutil.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apiutil.UnauthenticatedCode, appErr.Code)
}
