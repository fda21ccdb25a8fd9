package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/apiutil"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/pgutil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	ListUsers(ctx context.Context) ([]model.UserModel, error)
	GetUserByUsername(ctx context.Context, username string) (*model.UserModel, error)
	CreateUser(ctx context.Context, arg *model.CreateUserModel) (*model.UserModel, error)
}

type UserService struct {
	dbDao db.IStore
}

func NewUserService(dbDao db.IStore) IUserService {
	return &UserService{
		dbDao: dbDao,
	}
}

func (u *UserService) ListUsers(ctx context.Context) ([]model.UserModel, error) {
	rows, err := u.dbDao.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]model.UserModel, 0, len(rows))
	for _, r := range rows {
		users = append(users, *convertRepoUserToModel(&r))
	}
	return users, nil
}

func (u *UserService) GetUserByUsername(ctx context.Context, username string) (*model.UserModel, error) {
	userEntity, err := u.dbDao.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return convertRepoUserToModel(&userEntity), nil
}

// CreateUser 密碼以bcrypt雜湊後入庫, 明文不落地
func (u *UserService) CreateUser(ctx context.Context, arg *model.CreateUserModel) (*model.UserModel, error) {
	if arg.Username == "" || arg.Password == "" {
		return nil, apiutil.New(apiutil.BadRequestCode, "username or password is empty")
	}
	if !model.IsValidUserRole(string(arg.Role)) {
		return nil, apiutil.New(apiutil.BadRequestCode, "invalid role: "+string(arg.Role))
	}

	existing, err := u.dbDao.GetUserByUsername(ctx, arg.Username)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err == nil && existing.Username == arg.Username {
		return nil, apiutil.New(apiutil.BadRequestCode, "username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(arg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	userEntity, err := u.dbDao.CreateUser(ctx, sqlc.CreateUserParams{
		ID:           uuid.New().String(),
		Name:         arg.Name,
		Username:     arg.Username,
		PasswordHash: string(hash),
		BranchID:     pgutil.StringToPgText(arg.BranchID),
		Role:         string(arg.Role),
	})
	if err != nil {
		return nil, err
	}

	return convertRepoUserToModel(&userEntity), nil
}

// 將 repository 模型轉換為服務層模型
func convertRepoUserToModel(u *sqlc.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		HashPassword: u.PasswordHash,
		BranchID:     pgutil.PgTextToString(u.BranchID),
		Role:         model.UserRole(u.Role),
	}
}
