package service

import (
	"context"
	"errors"

	"github.com/Calvin-77/movie-store-app/internal/auth"
	"github.com/Calvin-77/movie-store-app/internal/constants"
	"github.com/Calvin-77/movie-store-app/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")

type LoginResult struct {
	AccessToken string `json:"accessToken"`
}

type AuthService interface {
	Login(ctx context.Context, cmd LoginCommand) (LoginResult, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager, log *zap.Logger) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, log: log}
}

func (s *authService) Login(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return LoginResult{}, NewServiceError(constants.ErrCodeInvalidCredentials, ErrInvalidCredentials)
		}
		return LoginResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(cmd.Password)); err != nil {
		return LoginResult{}, NewServiceError(constants.ErrCodeInvalidCredentials, ErrInvalidCredentials)
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		s.log.Error("error signing access token", zap.Error(err))
		return LoginResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID))
	return LoginResult{AccessToken: token}, nil
}
