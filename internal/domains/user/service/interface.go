package service

import (
	"context"

	"openmusic-backend/internal/domains/user/model"
)

type UserService interface {
	// Register hashes the password and persists the user, returning the id.
	Register(ctx context.Context, req model.RegisterRequest) (string, error)

	// Login returns a signed access token for valid credentials.
	Login(ctx context.Context, req model.LoginRequest) (string, error)

	GetByID(ctx context.Context, id string) (*model.User, error)
}
