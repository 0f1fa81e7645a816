package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/YOUNSSBOSS/car-rent/internal/errs"
	"github.com/YOUNSSBOSS/car-rent/internal/model"
	"github.com/YOUNSSBOSS/car-rent/internal/repository"
	"github.com/YOUNSSBOSS/car-rent/pkg/auth"
)

type AuthService struct {
	log   *zap.Logger
	users repository.UserRepository
	cfg   auth.Config
}

func NewAuthService(users repository.UserRepository, cfg auth.Config, log *zap.Logger) *AuthService {
	return &AuthService{
		log:   log.Named("auth"),
		users: users,
		cfg:   cfg,
	}
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return model.AuthResponse{}, errors.Wrap(errs.ErrConflict, "user with that email already exists")
	} else if !errors.Is(err, errs.ErrNotFound) {
		return model.AuthResponse{}, err
	}
	if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
		return model.AuthResponse{}, errors.Wrap(errs.ErrConflict, "user with that username already exists")
	} else if !errors.Is(err, errs.ErrNotFound) {
		return model.AuthResponse{}, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}
	user, err := s.users.Create(ctx, model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	})
	if err != nil {
		return model.AuthResponse{}, err
	}
	return s.authResponse(user)
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthResponse{}, errs.ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return model.AuthResponse{}, errs.ErrInvalidCredentials
	}
	return s.authResponse(user)
}

func (s *AuthService) ChangePassword(ctx context.Context, actor auth.Actor, req model.ChangePasswordRequest) error {
	user, err := s.users.GetByUID(ctx, actor.UserUID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return errors.Wrap(errs.ErrInvalidCredentials, "incorrect current password")
	}
	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, actor.UserUID, hash)
}

func (s *AuthService) Me(ctx context.Context, actor auth.Actor) (model.User, error) {
	return s.users.GetByUID(ctx, actor.UserUID)
}

func (s *AuthService) authResponse(user model.User) (model.AuthResponse, error) {
	token, _, err := auth.NewToken(s.cfg, auth.Profile{
		UserUID:  user.UserUID,
		Username: user.Username,
		Role:     string(user.Role),
	}, user.Email)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{
		User:        user,
		AccessToken: token,
		ExpiresIn:   int(s.cfg.TokenTTL.Seconds()),
	}, nil
}
