package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"resume/internal/models/db_models"
	"resume/internal/models/request_models"
	"resume/internal/repositories"
	"resume/pkg/utils"
)

type AccountServiceInterface interface {
	// Login checks credentials and returns a session token.
	Login(ctx context.Context, request request_models.LoginRequest) (string, *db_models.User, error)
	// Authenticate resolves a session token to its user. Invalid or expired
	// tokens and deleted users yield utils.ErrInvalidCredentials.
	Authenticate(ctx context.Context, token string) (*db_models.User, error)
	// Register opens a visitor account and signs it in.
	Register(ctx context.Context, request request_models.SignUpRequest) (string, *db_models.User, error)
	SessionTTL() time.Duration
}

type AccountService struct {
	userRepo repositories.UserRepository
	tokens   *utils.TokenIssuer
	log      *zap.Logger
}

func NewAccountService(userRepo repositories.UserRepository, tokens *utils.TokenIssuer, log *zap.Logger) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, *db_models.User, error) {
	startTime := time.Now()

	user, err := a.userRepo.FindByLogin(ctx, request.Login)
	if err != nil {
		if errors.Is(err, utils.ErrAccountNotFound) {
			return "", nil, utils.ErrInvalidCredentials
		}
		a.log.Error("find user for login", zap.Error(err))
		return "", nil, utils.ErrDatabaseError
	}

	if user.PasswordHash == "" || utils.ComparePasswords(user.PasswordHash, request.Password) != nil {
		return "", nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(user.ID, user.IsStaff)
	if err != nil {
		a.log.Error("create session token", zap.Uint("user_id", user.ID), zap.Error(err))
		return "", nil, err
	}

	a.log.Debug("login succeeded", zap.Uint("user_id", user.ID), zap.Duration("took", time.Since(startTime)))
	return token, user, nil
}

func (a *AccountService) Authenticate(ctx context.Context, token string) (*db_models.User, error) {
	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}
	id, err := claims.UserID()
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	user, err := a.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrAccountNotFound) {
			return nil, utils.ErrInvalidCredentials
		}
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (string, *db_models.User, error) {
	verr := &utils.ValidationError{}
	for _, f := range []struct{ field, login, msg string }{
		{"username", request.Username, "A user with that username already exists."},
		{"email", request.Email, "A user with that email already exists."},
	} {
		_, err := a.userRepo.FindByLogin(ctx, f.login)
		switch {
		case err == nil:
			verr.Add(f.field, f.msg)
		case errors.Is(err, utils.ErrAccountNotFound):
			// free
		default:
			a.log.Error("check login is free", zap.String("field", f.field), zap.Error(err))
			return "", nil, utils.ErrDatabaseError
		}
	}
	if !verr.Empty() {
		return "", nil, verr
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return "", nil, utils.ErrDatabaseError
	}
	user := &db_models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: hash,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
	}
	if err := a.userRepo.Create(ctx, user); err != nil {
		a.log.Error("create visitor account", zap.String("username", request.Username), zap.Error(err))
		return "", nil, utils.ErrDatabaseError
	}

	token, err := a.tokens.CreateToken(user.ID, false)
	if err != nil {
		a.log.Error("create session token", zap.Uint("user_id", user.ID), zap.Error(err))
		return "", nil, err
	}
	a.log.Info("visitor account created", zap.Uint("user_id", user.ID))
	return token, user, nil
}

func (a *AccountService) SessionTTL() time.Duration {
	return a.tokens.TTL()
}
