package repository

import (
	"context"

	"openmusic-backend/internal/domains/song/model"
)

type SongRepository interface {
	Create(ctx context.Context, song *model.Song) (string, error)

	GetByID(ctx context.Context, id string) (*model.Song, error)

	Update(ctx context.Context, song *model.Song) error

	Delete(ctx context.Context, id string) error

	// List filters by title and performer substrings (case-insensitive);
	// empty filters match everything.
	List(ctx context.Context, title, performer string) ([]model.SongSummary, error)
}
