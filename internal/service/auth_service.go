package service

import (
	"context"

	"github.com/jonier/api-store/internal/apperr"
	"github.com/jonier/api-store/internal/constants"
	"github.com/jonier/api-store/internal/model"
	"github.com/jonier/api-store/internal/token"
	"github.com/jonier/api-store/internal/util"
)

type IAuthService interface {
	// Login resolves identity against email or user name, compares the
	// password hash and issues a signed access token. Unknown identity and
	// wrong password both come back as an Unauthenticated error; only the
	// message text differs.
	Login(ctx context.Context, identity, password string) (*model.LoginResponseModel, error)
}

type AuthService struct {
	userService IUserService
	tokenMaker  token.Maker
}

func NewAuthService(userService IUserService, tokenMaker token.Maker) IAuthService {
	if userService == nil {
		panic("auth service initialization failed: userService cannot be nil")
	}
	if tokenMaker == nil {
		panic("auth service initialization failed: tokenMaker cannot be nil")
	}
	return &AuthService{userService: userService, tokenMaker: tokenMaker}
}

func (a *AuthService) Login(ctx context.Context, identity, password string) (*model.LoginResponseModel, error) {
	user, err := a.userService.GetUserByIdentity(ctx, identity)
	if err != nil {
		if apperr.IsCode(err, apperr.NotFoundCode) {
			return nil, apperr.New(apperr.UnauthenticatedCode, "The user does not exist")
		}
		return nil, err
	}

	if err := util.CheckPassword(password, user.HashPassword); err != nil {
		return nil, apperr.New(apperr.UnauthenticatedCode, "The password is not correct")
	}

	accessToken, _, err := a.tokenMaker.CreateToken(user.ID, user.Email, constants.AccessTokenDuration)
	if err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, "could not create access token")
	}

	return &model.LoginResponseModel{
		AccessToken: accessToken,
		User:        *user,
	}, nil
}
