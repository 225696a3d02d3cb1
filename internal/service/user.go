package service

import (
	"context"
	"errors"

	"github.com/Calvin-77/movie-store-app/internal/constants"
	"github.com/Calvin-77/movie-store-app/internal/entity"
	"github.com/Calvin-77/movie-store-app/internal/model"
	"github.com/Calvin-77/movie-store-app/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Profile is the user view without the credential.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Balance  int64  `json:"balance"`
	Role     string `json:"role"`
}

type UserService interface {
	Register(ctx context.Context, cmd RegisterCommand) (Profile, error)
	GetProfile(ctx context.Context, userID string) (Profile, error)
	UpdateProfile(ctx context.Context, cmd UpdateProfileCommand) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{userRepo: userRepo, log: log}
}

func (s *userService) Register(ctx context.Context, cmd RegisterCommand) (Profile, error) {
	register, err := entity.NewRegisterUser(cmd.Username, cmd.Email, cmd.Password)
	if err != nil {
		return Profile{}, NewServiceError(constants.ErrCodeValidationFailed, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(register.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("error hashing password", zap.Error(err))
		return Profile{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	user := model.User{
		ID:       "user-" + uuid.NewString(),
		Username: register.Username,
		Email:    register.Email,
		Password: string(hashed),
		Balance:  0,
		Role:     model.RoleStandard,
	}

	if err := s.userRepo.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return Profile{}, NewServiceError(constants.ErrCodeUsernameTaken, err)
		}
		s.log.Error("error creating user", zap.Error(err))
		return Profile{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.log.Info("User registered", zap.String("user_id", user.ID), zap.String("username", user.Username))
	return profileOf(user), nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Profile{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return Profile{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return profileOf(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, cmd UpdateProfileCommand) error {
	user, err := s.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	user.Username = cmd.Username
	user.Email = cmd.Email

	if cmd.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
		if err != nil {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.UpdateProfile(ctx, &user); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserExists):
			return NewServiceError(constants.ErrCodeUsernameTaken, err)
		case errors.Is(err, repository.ErrUserNotFound):
			return NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		s.log.Error("error updating profile", zap.Error(err))
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return nil
}

func profileOf(user model.User) Profile {
	return Profile{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Balance:  user.Balance,
		Role:     user.Role,
	}
}
