package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/apiutil"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, username, password string) (*model.UserModel, error)
}

type AuthService struct {
	dbDao       db.IStore
	userService IUserService
}

func NewAuthService(dbDao db.IStore, userService IUserService) IAuthService {
	return &AuthService{
		dbDao:       dbDao,
		userService: userService,
	}
}

// Login 以bcrypt比對密碼, 帳號不存在與密碼錯誤回傳同一個錯誤, 不洩漏帳號是否存在
func (a *AuthService) Login(ctx context.Context, username, password string) (*model.UserModel, error) {
	user, err := a.userService.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apiutil.New(apiutil.UnauthenticatedCode, "invalid username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashPassword), []byte(password)); err != nil {
		return nil, apiutil.New(apiutil.UnauthenticatedCode, "invalid username or password")
	}

	return user, nil
}
