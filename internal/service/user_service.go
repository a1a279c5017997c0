package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jonier/api-store/internal/apperr"
	"github.com/jonier/api-store/internal/infra/repository/db"
	"github.com/jonier/api-store/internal/model"
	"github.com/jonier/api-store/internal/util"
)

type IUserService interface {
	// CreateUser is idempotent on (email, userName, telephone): a second call
	// with the same triple returns the existing row with Created=false.
	CreateUser(ctx context.Context, arg *model.CreateUserModel) (*model.CreateUserResult, error)
	GetUser(ctx context.Context, id int64) (*model.UserModel, error)
	GetUserByIdentity(ctx context.Context, identity string) (*model.UserModel, error)
	ListUsers(ctx context.Context) ([]model.UserModel, error)
	UpdateUser(ctx context.Context, arg *model.UpdateUserModel) (*model.UserModel, error)
	DeleteUser(ctx context.Context, id int64) error
}

type UserService struct {
	dbDao db.IStore
}

func NewUserService(dbDao db.IStore) IUserService {
	if dbDao == nil {
		panic("user service initialization failed: dbDao cannot be nil")
	}
	return &UserService{dbDao: dbDao}
}

func (u *UserService) CreateUser(ctx context.Context, arg *model.CreateUserModel) (*model.CreateUserResult, error) {
	hash, err := util.HashPassword(arg.Password)
	if err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, "could not hash password")
	}

	var result model.CreateUserResult
	err = u.dbDao.ExecTx(ctx, func(q db.Querier) error {
		existing, err := q.GetUserByUniqueKeys(ctx, db.GetUserByUniqueKeysParams{
			Email:     arg.Email,
			UserName:  arg.UserName,
			Telephone: arg.Telephone,
		})
		if err == nil {
			result.User = *convertRepoUserToModel(&existing)
			result.Created = false
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		created, err := q.CreateUser(ctx, db.CreateUserParams{
			Email:        arg.Email,
			UserName:     arg.UserName,
			FirstName:    arg.FirstName,
			LastName:     arg.LastName,
			Address:      arg.Address,
			Telephone:    arg.Telephone,
			PasswordHash: hash,
			Photo:        arg.Photo,
		})
		if err != nil {
			return err
		}
		result.User = *convertRepoUserToModel(&created)
		result.Created = true
		return nil
	})
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return &result, nil
}

func (u *UserService) GetUser(ctx context.Context, id int64) (*model.UserModel, error) {
	user, err := u.dbDao.GetUserByID(ctx, id)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return convertRepoUserToModel(&user), nil
}

func (u *UserService) GetUserByIdentity(ctx context.Context, identity string) (*model.UserModel, error) {
	user, err := u.dbDao.GetUserByIdentity(ctx, identity)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return convertRepoUserToModel(&user), nil
}

func (u *UserService) ListUsers(ctx context.Context) ([]model.UserModel, error) {
	users, err := u.dbDao.ListUsers(ctx)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	models := make([]model.UserModel, 0, len(users))
	for i := range users {
		models = append(models, *convertRepoUserToModel(&users[i]))
	}
	return models, nil
}

// UpdateUser overwrites the full mutable field set. When a new password is
// supplied it is re-hashed, otherwise the stored hash is kept.
func (u *UserService) UpdateUser(ctx context.Context, arg *model.UpdateUserModel) (*model.UserModel, error) {
	existing, err := u.dbDao.GetUserByID(ctx, arg.ID)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	hash := existing.PasswordHash
	if arg.Password != "" {
		hash, err = util.HashPassword(arg.Password)
		if err != nil {
			return nil, apperr.New(apperr.InternalErrorCode, "could not hash password")
		}
	}

	updated, err := u.dbDao.UpdateUser(ctx, db.UpdateUserParams{
		ID:           arg.ID,
		Email:        arg.Email,
		UserName:     arg.UserName,
		FirstName:    arg.FirstName,
		LastName:     arg.LastName,
		Address:      arg.Address,
		Telephone:    arg.Telephone,
		PasswordHash: hash,
		Photo:        arg.Photo,
		Active:       arg.Active,
	})
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return convertRepoUserToModel(&updated), nil
}

func (u *UserService) DeleteUser(ctx context.Context, id int64) error {
	if _, err := u.dbDao.GetUserByID(ctx, id); err != nil {
		return translateStoreErr(err)
	}
	if err := u.dbDao.DeleteUser(ctx, id); err != nil {
		return translateStoreErr(err)
	}
	return nil
}

func convertRepoUserToModel(u *db.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID,
		Email:        u.Email,
		UserName:     u.UserName,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Address:      u.Address,
		Telephone:    u.Telephone,
		HashPassword: u.PasswordHash,
		Photo:        u.Photo,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// translateStoreErr maps repository failures to the client-facing taxonomy.
// A missing row becomes NotFound; anything else stays internal so no driver
// detail leaks past the boundary.
func translateStoreErr(err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.New(apperr.NotFoundCode, "The record does not exist")
	}
	return apperr.New(apperr.InternalErrorCode, apperr.ErrStrMap[apperr.InternalErrorCode])
}
