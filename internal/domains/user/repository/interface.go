package repository

import (
	"context"

	"openmusic-backend/internal/domains/user/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) (string, error)

	GetByID(ctx context.Context, id string) (*model.User, error)

	GetByUsername(ctx context.Context, username string) (*model.User, error)

	ExistsUsername(ctx context.Context, username string) (bool, error)
}
