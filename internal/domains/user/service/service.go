package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"openmusic-backend/internal/domains/user/model"
	"openmusic-backend/internal/domains/user/repository"
	"openmusic-backend/internal/shared/utils"
	"openmusic-backend/pkg/jwt"
)

type userService struct {
	userRepo repository.UserRepository
	tokens   *jwt.Manager
}

func NewUserService(userRepo repository.UserRepository, tokens *jwt.Manager) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (string, error) {
	taken, err := s.userRepo.ExistsUsername(ctx, req.Username)
	if err != nil {
		return "", err
	}
	if taken {
		return "", model.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:       utils.NewID("user"),
		Username: req.Username,
		Password: string(hash),
		Fullname: req.Fullname,
	}

	return s.userRepo.Create(ctx, user)
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return "", model.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", model.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
